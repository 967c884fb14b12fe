package view

import (
	"errors"
	"strings"
	"testing"
	"time"

	"rgbctl/internal/color"
	"rgbctl/internal/tui/model"
	"rgbctl/pkg/logging"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func newTestModel() *model.Model {
	m := model.InitialModel(model.TUIConfig{}, nil)
	m.Width = 100
	m.Height = 40
	return m
}

func TestRender_Initializing(t *testing.T) {
	m := model.InitialModel(model.TUIConfig{}, nil)
	assert.Contains(t, Render(m), "Initializing")
}

func TestRender_Quitting(t *testing.T) {
	m := newTestModel()
	m.CurrentAppMode = model.ModeQuitting
	assert.Contains(t, Render(m), "Bye.")
}

func TestRender_Main(t *testing.T) {
	m := newTestModel()
	out := Render(m)

	assert.Contains(t, out, "Profile 1")
	assert.Contains(t, out, "Profile 2")
	assert.Contains(t, out, "#000000")
	assert.Contains(t, out, "Static")
	assert.Contains(t, out, "pins 9/10/11")
	assert.Equal(t, m.Height, lipgloss.Height(out))
}

func TestRender_StatusMessage(t *testing.T) {
	m := newTestModel()
	m.SetStatusMessage("invalid hex", model.StatusBarError, time.Second)
	assert.Contains(t, Render(m), "invalid hex")
}

func TestRender_RenamePrompt(t *testing.T) {
	m := newTestModel()
	m.CurrentAppMode = model.ModeRenameInput
	m.RenameInput.SetValue("Desk")
	assert.Contains(t, Render(m), "Name: Desk")
}

func TestRender_HelpOverlay(t *testing.T) {
	m := newTestModel()
	m.CurrentAppMode = model.ModeHelpOverlay
	out := Render(m)
	assert.Contains(t, out, "KEYBOARD SHORTCUTS")
	assert.Contains(t, out, "new profile")
	assert.False(t, m.Help.ShowAll)
}

func TestRender_FrameOverlay(t *testing.T) {
	m := newTestModel()
	m.CurrentAppMode = model.ModeFrameOverlay
	m.FrameViewport.SetContent(`s{"color":[0,0,0]}`)
	out := Render(m)
	assert.Contains(t, out, "Device frame: Profile 1")
	assert.Contains(t, out, `s{"color":[0,0,0]}`)
	assert.Greater(t, m.FrameViewport.Width, 0)
}

func TestGradientBar(t *testing.T) {
	g := color.ChannelGradient(color.RGB{0x1a, 0x2b, 0x3c}, color.Red)
	bar := GradientBar(g, 0x1a, 20)
	assert.Equal(t, 20, lipgloss.Width(bar))
	assert.Equal(t, 1, strings.Count(bar, sliderMarker))

	assert.Empty(t, GradientBar(g, 0, 0))
	assert.Empty(t, GradientBar(color.Gradient{"bad", "#ffffff"}, 0, 10))
}

func TestMarkerCell(t *testing.T) {
	assert.Equal(t, 0, MarkerCell(0, 10))
	assert.Equal(t, 9, MarkerCell(255, 10))
	assert.Equal(t, 5, MarkerCell(128, 10))
	assert.Equal(t, 0, MarkerCell(200, 1))
}

func TestSliderWidth(t *testing.T) {
	assert.Equal(t, 16, SliderWidth(10))
	assert.Equal(t, 48, SliderWidth(500))
	assert.Equal(t, 30, SliderWidth(40))
}

func TestTabNameWidth(t *testing.T) {
	assert.Equal(t, minTabNameWidth, tabNameWidth(20, 10))
	assert.Equal(t, 100, tabNameWidth(100, 0))
	assert.Equal(t, 43, tabNameWidth(97, 2))
}

func TestFormatLogEntry(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, time.UTC)
	line := FormatLogEntry(logging.LogEntry{
		Timestamp: ts,
		Level:     logging.LevelWarn,
		Subsystem: "Controller",
		Message:   "rejected",
		Err:       errors.New("boom"),
	})
	assert.Equal(t, "03:04:05.006 [WARN] [Controller] rejected -- Error: boom", line)
}

func TestPrepareLogContent(t *testing.T) {
	out := PrepareLogContent([]string{"a [INFO] x", "b [ERROR] y"})
	assert.Contains(t, out, "a [INFO] x")
	assert.Contains(t, out, "b [ERROR] y")
	assert.Equal(t, 2, lipgloss.Height(out))
}
