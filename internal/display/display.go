// Package display probes for a usable window-system session before the
// GUI runtime starts. Absence of a session is a fatal startup
// condition for the application.
package display

import "errors"

// ErrNoSession indicates that no display/window-system session is
// reachable from this process.
var ErrNoSession = errors.New("no display session available")

// Backend identifies the window system a session was found on.
type Backend int

const (
	BackendNone Backend = iota
	BackendWayland
	BackendX11
	BackendNative
)

func (b Backend) String() string {
	switch b {
	case BackendWayland:
		return "wayland"
	case BackendX11:
		return "x11"
	case BackendNative:
		return "native"
	default:
		return "none"
	}
}
