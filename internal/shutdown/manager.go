package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"openshotx/internal/logger"
)

// componentTimeout bounds how long a single component may block the
// shutdown sequence.
const componentTimeout = 5 * time.Second

// Shutdownable is implemented by components that need teardown when
// the process receives a termination signal or the window closes.
type Shutdownable interface {
	Shutdown()
}

// Manager runs registered components' teardown in reverse registration
// order, at most once.
type Manager struct {
	log logger.Logger

	mu         sync.Mutex
	components []Shutdownable
	done       chan struct{}
}

func NewManager(log logger.Logger) *Manager {
	return &Manager{
		log:  log,
		done: make(chan struct{}),
	}
}

func (m *Manager) Register(component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.components = append(m.components, component)
}

// Listen installs the SIGINT/SIGTERM handler. The signal ends the
// event loop through the registered components; it carries no special
// exit code of its own.
func (m *Manager) Listen() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			m.log.Info("Shutdown", "termination signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			m.Shutdown()
		case <-m.done:
		}
	}()
}

func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}

	for i := len(m.components) - 1; i >= 0; i-- {
		component := m.components[i]

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			component.Shutdown()
		}()

		select {
		case <-finished:
		case <-time.After(componentTimeout):
			m.log.Warning("Shutdown", "component teardown timed out", map[string]interface{}{
				"component_index": i,
			})
		}
	}

	m.log.Info("Shutdown", "teardown complete", map[string]interface{}{
		"components": len(m.components),
	})
}

// Done is closed once shutdown has started.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}
