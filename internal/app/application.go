package app

import (
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"openshotx/internal/display"
	"openshotx/internal/gui"
	"openshotx/internal/logger"
	"openshotx/internal/shutdown"
)

const (
	AppID      = "org.openshotx.app"
	AppVersion = "0.1.0"
)

// exitInternalError is reported when the shell's own lifecycle
// invariant breaks before the event loop has run.
const exitInternalError = 1

// Application is the shell around the GUI runtime: it owns the single
// main window, the lifecycle state, and the exit code the process
// reports after the event loop ends.
type Application struct {
	fyneApp     fyne.App
	window      *gui.MainWindow
	log         logger.Logger
	lifecycle   *Lifecycle
	shutdownMgr *shutdown.Manager

	mu      sync.Mutex
	code    int
	codeSet bool
}

// detectDisplay is swapped in tests to simulate a missing session.
var detectDisplay = display.Detect

// NewApplication probes for a display session, initializes the GUI
// runtime, and constructs the main window. When no session is
// reachable it fails with ErrRuntimeUnavailable before any window
// exists. Process arguments are not parsed; the runtime sees them
// untouched.
func NewApplication() (*Application, error) {
	log := logger.NewConsoleLogger(zerolog.InfoLevel)

	backend, err := detectDisplay()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRuntimeUnavailable, err)
	}
	log.Info("Application", "display session detected", map[string]interface{}{
		"backend": backend.String(),
	})

	return newApplication(fyneapp.NewWithID(AppID), log)
}

// newApplication wires the shell around an already constructed GUI
// runtime; tests inject a headless one.
func newApplication(fyneApp fyne.App, log logger.Logger) (*Application, error) {
	lifecycle := NewLifecycle(log)
	if err := lifecycle.Advance(PhaseRuntimeReady); err != nil {
		return nil, err
	}

	window, err := gui.NewMainWindow(fyneApp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResourceExhaustion, err)
	}

	a := &Application{
		fyneApp:   fyneApp,
		window:    window,
		log:       log,
		lifecycle: lifecycle,
	}

	a.shutdownMgr = shutdown.NewManager(log)
	a.shutdownMgr.Register(a)
	a.shutdownMgr.Listen()

	window.SetCloseIntercept(func() {
		log.Info("Application", "window close requested", nil)
		window.Close()
	})

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version": AppVersion,
		"title":   gui.WindowTitle,
	})
	return a, nil
}

// Run shows the window and blocks in the event loop until the window
// closes, Quit is called, or a termination signal arrives. It returns
// the exit code the process should report.
func (a *Application) Run() int {
	a.window.Show()
	if err := a.lifecycle.Advance(PhaseWindowVisible); err != nil {
		a.log.Error("Application", err, nil)
		return exitInternalError
	}

	x, y := a.window.Position()
	width, height := a.window.Size()
	a.log.Info("Application", "window shown", map[string]interface{}{
		"title":    a.window.Title(),
		"position": fmt.Sprintf("%d,%d", x, y),
		"size":     fmt.Sprintf("%dx%d", width, height),
	})

	if err := a.lifecycle.Advance(PhaseEventLoopRunning); err != nil {
		a.log.Error("Application", err, nil)
		return exitInternalError
	}

	a.fyneApp.Run()

	if err := a.lifecycle.Advance(PhaseTerminated); err != nil {
		a.log.Error("Application", err, nil)
	}

	code := a.ExitCode()
	a.log.Info("Application", "event loop finished", map[string]interface{}{
		"exit_code": code,
	})
	return code
}

// Quit ends the event loop and records the exit code the process
// should report. The first request wins.
func (a *Application) Quit(code int) {
	a.mu.Lock()
	if !a.codeSet {
		a.code = code
		a.codeSet = true
	}
	a.mu.Unlock()

	a.fyneApp.Quit()
}

// Shutdown implements shutdown.Shutdownable. A termination signal ends
// the loop the same way a window close does.
func (a *Application) Shutdown() {
	a.Quit(0)
}

func (a *Application) ExitCode() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.code
}

func (a *Application) Phase() Phase {
	return a.lifecycle.Phase()
}

func (a *Application) Window() *gui.MainWindow {
	return a.window
}
