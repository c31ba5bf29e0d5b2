package gui

import (
	"errors"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// WindowTitle is the fixed title of the application's only window.
const WindowTitle = "OpenShot X - Screen Capture Tool"

// ErrWindowAllocation indicates the runtime could not allocate the
// main window.
var ErrWindowAllocation = errors.New("window allocation failed")

// Geometry is the requested on-screen placement of the main window.
// Fyne leaves placement to the desktop window manager, so the origin
// is advisory; width and height are applied through Resize.
type Geometry struct {
	X      int
	Y      int
	Width  int
	Height int
}

func DefaultGeometry() Geometry {
	return Geometry{X: 100, Y: 100, Width: 600, Height: 400}
}

// MainWindow wraps the single top-level window. Exactly one exists per
// process run, owned by the application shell.
type MainWindow struct {
	window   fyne.Window
	geometry Geometry

	mu      sync.Mutex
	visible bool
}

// NewMainWindow constructs the main window with the fixed title and
// default geometry. The window holds no content; it is an empty shell.
func NewMainWindow(fyneApp fyne.App) (*MainWindow, error) {
	window := fyneApp.NewWindow(WindowTitle)
	if window == nil {
		return nil, ErrWindowAllocation
	}

	geometry := DefaultGeometry()
	window.Resize(fyne.NewSize(float32(geometry.Width), float32(geometry.Height)))
	window.SetFixedSize(false)
	window.SetMaster()
	window.SetContent(container.NewWithoutLayout())

	return &MainWindow{
		window:   window,
		geometry: geometry,
	}, nil
}

// Show makes the window visible. Calling it on an already visible
// window is a no-op.
func (w *MainWindow) Show() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.visible {
		return
	}
	w.window.Show()
	w.visible = true
}

func (w *MainWindow) Close() {
	w.window.Close()
}

// SetCloseIntercept installs f as the handler invoked when the user
// requests the window to close.
func (w *MainWindow) SetCloseIntercept(f func()) {
	w.window.SetCloseIntercept(f)
}

func (w *MainWindow) Title() string {
	return w.window.Title()
}

// Position reports the requested window origin. The desktop window
// manager decides final placement.
func (w *MainWindow) Position() (x, y int) {
	return w.geometry.X, w.geometry.Y
}

// Size reports the window's current canvas size, falling back to the
// requested geometry before the canvas has been sized.
func (w *MainWindow) Size() (width, height int) {
	size := w.window.Canvas().Size()
	if size.Width > 0 && size.Height > 0 {
		return int(size.Width), int(size.Height)
	}
	return w.geometry.Width, w.geometry.Height
}

func (w *MainWindow) Visible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible
}
