package display

// Detect assumes the WindowServer session that every interactive macOS
// login provides. Launching from a pure SSH session fails later inside
// the GUI runtime instead.
func Detect() (Backend, error) {
	return BackendNative, nil
}
