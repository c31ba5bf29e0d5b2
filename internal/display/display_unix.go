//go:build linux || freebsd || openbsd || netbsd

package display

import (
	"os"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Detect reports the first usable session, preferring Wayland over
// X11. Compositors normally expose an X server through Xwayland as
// well, so the order only matters for reporting.
func Detect() (Backend, error) {
	if waylandAvailable() {
		return BackendWayland, nil
	}
	if x11Available() {
		return BackendX11, nil
	}
	return BackendNone, ErrNoSession
}

func waylandAvailable() bool {
	return os.Getenv("WAYLAND_DISPLAY") != ""
}

func x11Available() bool {
	conn, err := xgb.NewConn()
	if err != nil {
		return false
	}
	defer conn.Close()

	screen := xproto.Setup(conn).DefaultScreen(conn)
	return screen != nil
}
