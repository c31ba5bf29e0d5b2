package display

import "github.com/lxn/win"

// Detect reports a native session when at least one monitor is
// attached. Services and detached sessions report none.
func Detect() (Backend, error) {
	if win.GetSystemMetrics(win.SM_CMONITORS) > 0 {
		return BackendNative, nil
	}
	return BackendNone, ErrNoSession
}
