package idgen

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
)

// Generator produces unique 64-bit IDs. Favorites are keyed with these
// rather than a database sequence so rows carry their ID before insert.
type Generator interface {
	GenerateID() int64
}

// SnowflakeGenerator implements Generator on top of Twitter Snowflake
type SnowflakeGenerator struct {
	node *snowflake.Node
	mu   sync.Mutex
}

// NewSnowflakeGenerator builds a generator for the given node.
// nodeID must be unique per running instance (0-1023) or IDs can collide.
func NewSnowflakeGenerator(nodeID int64) (*SnowflakeGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node: %w", err)
	}

	return &SnowflakeGenerator{node: node}, nil
}

// GenerateID returns the next unique ID as an int64
func (g *SnowflakeGenerator) GenerateID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.node.Generate().Int64()
}
