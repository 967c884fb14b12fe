package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"rgbctl/internal/cli"
	"rgbctl/internal/color"
	"rgbctl/internal/config"
	"rgbctl/internal/device"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func intPtr(v int) *int { return &v }

func TestBuildWorkspace(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Device.Pins = []int{3, 5, 6}
	cfg.Profiles = []config.ProfileDefinition{
		{Name: "Desk", Color: "#FF8800", Mode: "rainbow", Wait: intPtr(20)},
		{Color: "#000080"},
	}

	ws, err := BuildWorkspace(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"Desk", "Profile 2"}, ws.Names())

	p, err := ws.Profile(0)
	require.NoError(t, err)
	assert.Equal(t, color.RGB{0xff, 0x88, 0x00}, p.Color)
	assert.Equal(t, device.ModeRainbow, p.Mode)
	assert.Equal(t, 20, p.Wait)
	assert.Equal(t, [3]int{3, 5, 6}, p.Pins)

	added := ws.Add()
	_, p = added.Active()
	assert.Equal(t, [3]int{3, 5, 6}, p.Pins, "new tabs use the configured pins")
	assert.Equal(t, color.Black, p.Color)
}

func TestBuildWorkspace_NoProfiles(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Profiles = nil

	ws, err := BuildWorkspace(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"Profile 1", "Profile 2"}, ws.Names())
}

func TestBuildWorkspace_InvalidProfile(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Profiles = []config.ProfileDefinition{{Name: "bad", Color: "#12"}}

	_, err := BuildWorkspace(cfg)
	assert.ErrorIs(t, err, color.ErrInvalidFormat)
}

func TestNewApplication_FromPath(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
globalSettings:
  theme: dark
profiles:
  - name: Desk
    color: "#1a2b3c"
    mode: fade
`)
	cfg := NewConfig(true, false, path)
	a, err := NewApplication(cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"Desk"}, a.Workspace().Names())
	require.NotNil(t, cfg.RgbctlConfig)
	assert.Equal(t, "dark", cfg.RgbctlConfig.GlobalSettings.Theme)
}

func TestNewApplication_DebugFromConfig(t *testing.T) {
	path := writeConfig(t, "config.toml", `
[globalSettings]
debug = true
`)
	cfg := NewConfig(true, false, path)
	_, err := NewApplication(cfg)
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
}

func TestNewApplication_BadPath(t *testing.T) {
	_, err := NewApplication(NewConfig(true, false, filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, err)
}

func TestRun_CLIMode(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
profiles:
  - name: Desk
    color: "#102030"
  - name: Shelf
    mode: strobe
`)
	var buf bytes.Buffer
	cfg := NewConfig(true, false, path)
	cfg.Output = cli.OutputFormatJSON
	cfg.Out = &buf

	a, err := NewApplication(cfg)
	require.NoError(t, err)
	require.NoError(t, a.Run(context.Background()))

	var rows []cli.ProfileRow
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Desk", rows[0].Name)
	assert.Equal(t, "#102030", rows[0].Color)
	assert.Equal(t, "strobe", rows[1].Mode)
	assert.Equal(t, `s{"color":[0,0,0],"pins":[9,10,11],"mode":4,"speed":5}`, rows[1].Frame)
}
