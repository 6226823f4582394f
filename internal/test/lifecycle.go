package test

import (
	"go.uber.org/fx"
)

// LifecycleRecorder collects fx hooks so tests can drive OnStart and
// OnStop by hand instead of spinning up a full fx app.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub signals on Called whenever Shutdown is invoked.
type ShutdownerStub struct {
	Called chan struct{}
}

// NewShutdownerStub returns a stub ready to receive one shutdown signal.
func NewShutdownerStub() *ShutdownerStub {
	return &ShutdownerStub{Called: make(chan struct{}, 1)}
}

func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}
