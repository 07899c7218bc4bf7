package test

import (
	"go.uber.org/fx"
)

// LifecycleRecorder collects registered hooks so tests can drive
// OnStart/OnStop directly.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append stores the hook for manual invocation.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub signals on Called when the app requests termination.
type ShutdownerStub struct {
	Called chan struct{}
}

// Shutdown records the request without blocking.
func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}
