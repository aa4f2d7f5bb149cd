package status

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"farefinder/pkg/logger"
)

type stubPinger struct {
	err error
}

func (p *stubPinger) Ping(context.Context) error {
	return p.err
}

func testLogger() logger.Client {
	return logger.NewWithWriter("production", io.Discard)
}

func TestNewState(t *testing.T) {
	t.Run("unconfigured", func(t *testing.T) {
		got := NewState(false).Snapshot()
		assert.Equal(t, Status{RealData: false, Provider: ProviderMock, Health: HealthNoKeys}, got)
	})

	t.Run("configured starts pending", func(t *testing.T) {
		got := NewState(true).Snapshot()
		assert.Equal(t, Status{RealData: true, Provider: ProviderLive, Health: HealthPending}, got)
	})
}

func TestProbe(t *testing.T) {
	t.Run("healthy provider", func(t *testing.T) {
		state := NewState(true)
		state.Probe(context.Background(), &stubPinger{}, testLogger())

		assert.Equal(t, HealthOK, state.Snapshot().Health)
	})

	t.Run("failing provider records detail", func(t *testing.T) {
		state := NewState(true)
		state.Probe(context.Background(), &stubPinger{err: errors.New("Invalid API key")}, testLogger())

		assert.Equal(t, "Invalid API key", state.Snapshot().Health)
	})

	t.Run("unconfigured state is never probed", func(t *testing.T) {
		state := NewState(false)
		state.Probe(context.Background(), &stubPinger{err: errors.New("should not run")}, testLogger())

		assert.Equal(t, HealthNoKeys, state.Snapshot().Health)
	})
}
