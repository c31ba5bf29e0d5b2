package app

import (
	"fmt"
	"sync"

	"openshotx/internal/logger"
)

// Phase is the shell's lifecycle position. Transitions are strictly
// forward, one step at a time; there are no cycles.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseRuntimeReady
	PhaseWindowVisible
	PhaseEventLoopRunning
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseRuntimeReady:
		return "runtime-ready"
	case PhaseWindowVisible:
		return "window-visible"
	case PhaseEventLoopRunning:
		return "event-loop-running"
	case PhaseTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Lifecycle tracks and enforces the shell's phase progression.
type Lifecycle struct {
	log logger.Logger

	mu    sync.Mutex
	phase Phase
}

func NewLifecycle(log logger.Logger) *Lifecycle {
	return &Lifecycle{log: log, phase: PhaseUninitialized}
}

func (l *Lifecycle) Phase() Phase {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.phase
}

// Advance moves the lifecycle to next. Only the immediate successor of
// the current phase is legal.
func (l *Lifecycle) Advance(next Phase) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if next != l.phase+1 {
		return fmt.Errorf("illegal lifecycle transition %s -> %s", l.phase, next)
	}
	l.phase = next

	l.log.Debug("Lifecycle", "phase entered", map[string]interface{}{
		"phase": next.String(),
	})
	return nil
}
