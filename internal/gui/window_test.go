package gui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainWindowHasFixedTitle(t *testing.T) {
	fyneApp := test.NewApp()

	window, err := NewMainWindow(fyneApp)

	require.NoError(t, err)
	assert.Equal(t, "OpenShot X - Screen Capture Tool", window.Title())
}

func TestMainWindowGeometry(t *testing.T) {
	fyneApp := test.NewApp()

	window, err := NewMainWindow(fyneApp)
	require.NoError(t, err)

	x, y := window.Position()
	assert.Equal(t, 100, x)
	assert.Equal(t, 100, y)

	width, height := window.Size()
	assert.Equal(t, 600, width)
	assert.Equal(t, 400, height)
}

func TestSingleWindowPerApplication(t *testing.T) {
	fyneApp := test.NewApp()

	window, err := NewMainWindow(fyneApp)
	require.NoError(t, err)
	window.Show()

	assert.Len(t, fyneApp.Driver().AllWindows(), 1)
}

func TestShowIsIdempotent(t *testing.T) {
	fyneApp := test.NewApp()

	window, err := NewMainWindow(fyneApp)
	require.NoError(t, err)

	window.Show()
	window.Show()

	assert.True(t, window.Visible())
	assert.Len(t, fyneApp.Driver().AllWindows(), 1)
}

func TestSizeTracksToolkitResize(t *testing.T) {
	fyneApp := test.NewApp()

	window, err := NewMainWindow(fyneApp)
	require.NoError(t, err)

	window.window.Resize(fyne.NewSize(800, 500))

	width, height := window.Size()
	assert.Equal(t, 800, width)
	assert.Equal(t, 500, height)
}

func TestWindowNotVisibleBeforeShow(t *testing.T) {
	fyneApp := test.NewApp()

	window, err := NewMainWindow(fyneApp)
	require.NoError(t, err)

	assert.False(t, window.Visible())
}
