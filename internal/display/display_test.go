package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectReturnsBackendOrNoSession(t *testing.T) {
	backend, err := Detect()

	if err != nil {
		assert.ErrorIs(t, err, ErrNoSession)
		assert.Equal(t, BackendNone, backend)
		return
	}
	assert.NotEqual(t, BackendNone, backend)
}

func TestBackendString(t *testing.T) {
	assert.Equal(t, "wayland", BackendWayland.String())
	assert.Equal(t, "x11", BackendX11.String())
	assert.Equal(t, "native", BackendNative.String())
	assert.Equal(t, "none", BackendNone.String())
}
