package status

import (
	"context"
	"sync"

	"farefinder/pkg/logger"
)

const (
	HealthPending = "pending"
	HealthOK      = "ok"
	HealthNoKeys  = "no-keys"
)

const (
	ProviderLive = "Amadeus"
	ProviderMock = "Mock Simulator"
)

// Pinger is the slice of the provider client the startup probe needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Status is the API status report returned to callers.
type Status struct {
	RealData bool   `json:"realData"`
	Provider string `json:"provider"`
	Health   string `json:"health"`
}

// State owns the provider health picture: configuration fixed at startup
// plus a single mutable probe-result cell.
type State struct {
	configured bool
	provider   string

	mu     sync.Mutex
	health string
}

func NewState(configured bool) *State {
	s := &State{
		configured: configured,
		provider:   ProviderMock,
		health:     HealthNoKeys,
	}
	if configured {
		s.provider = ProviderLive
		s.health = HealthPending
	}
	return s
}

// Probe runs the one-time startup connectivity check and records the outcome:
// "ok" on success, the extracted error detail otherwise. Unconfigured
// providers keep their "no-keys" health and are never probed.
func (s *State) Probe(ctx context.Context, pinger Pinger, log logger.Client) {
	if !s.configured || pinger == nil {
		return
	}

	if err := pinger.Ping(ctx); err != nil {
		s.setHealth(err.Error())
		log.Error("provider health check failed", logger.Field{Key: "detail", Value: err})
		return
	}
	s.setHealth(HealthOK)
	log.Info("provider health check passed")
}

func (s *State) setHealth(health string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.health = health
}

// Snapshot returns the current status report.
func (s *State) Snapshot() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{
		RealData: s.configured,
		Provider: s.provider,
		Health:   s.health,
	}
}
