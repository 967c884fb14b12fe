package config

import (
	"testing"

	"rgbctl/internal/color"
	"rgbctl/internal/device"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromPath_Addressable(t *testing.T) {
	path := writeConfigFile(t, t.TempDir(), "config.yaml", `
addressable:
  channels:
    - pin: 6
      wait: 30
      sequence:
        - wait: 100
          strip: ["#010203", "#040506"]
        - wait: 200
          strip: ["#000000", "#FFFFFF"]
`)

	loaded, err := LoadConfigFromPath(path)
	require.NoError(t, err)

	addr, err := loaded.Addressable.ToAddrConfig()
	require.NoError(t, err)
	require.Len(t, addr.Channels, 1)

	ch := addr.Channels[0]
	assert.Equal(t, 6, ch.Pin)
	assert.Equal(t, 30, ch.Wait)
	assert.Equal(t, 2, ch.LedCount, "inferred from the first strip")
	assert.Equal(t, 2, ch.SeqSize())
	assert.Equal(t, device.Cycle{Wait: 200, Strip: []color.RGB{{0, 0, 0}, {255, 255, 255}}}, ch.Sequence[1])
}

func TestLoadConfigFromPath_AddressableTOML(t *testing.T) {
	path := writeConfigFile(t, t.TempDir(), "rgb.toml", `
[[addressable.channels]]
pin = 3
ledCount = 1

[[addressable.channels.sequence]]
wait = 50
strip = ["#ff0000"]
`)

	loaded, err := LoadConfigFromPath(path)
	require.NoError(t, err)

	addr, err := loaded.Addressable.ToAddrConfig()
	require.NoError(t, err)
	require.Len(t, addr.Channels, 1)
	assert.Equal(t, device.DefaultWait, addr.Channels[0].Wait)
	assert.Equal(t, `a[{"pin":3,"speed":5,"ledCount":1,"seqSize":1}]`, addr.Header())
}

func TestValidate_Addressable(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Addressable.Channels = []AddrChannelDefinition{{
		Pin:      6,
		LedCount: 2,
		Sequence: []CycleDefinition{{Wait: 10, Strip: []string{"#000000", "red"}}},
	}}

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, color.ErrInvalidFormat)
	assert.Contains(t, err.Error(), "addressable.channels[0]: sequence[0].strip[1]")
}

func TestToAddrConfig_Empty(t *testing.T) {
	_, err := AddressableConfig{}.ToAddrConfig()
	assert.ErrorIs(t, err, device.ErrNoChannels)
	assert.NoError(t, GetDefaultConfig().Validate(), "the section is optional")
}

func TestMergeConfigs_Addressable(t *testing.T) {
	base := GetDefaultConfig()
	base.Addressable.Channels = []AddrChannelDefinition{{Pin: 1}}

	merged := mergeConfigs(base, RgbctlConfig{})
	assert.Equal(t, base.Addressable, merged.Addressable)

	overlay := RgbctlConfig{Addressable: AddressableConfig{Channels: []AddrChannelDefinition{{Pin: 2}}}}
	merged = mergeConfigs(base, overlay)
	require.Len(t, merged.Addressable.Channels, 1)
	assert.Equal(t, 2, merged.Addressable.Channels[0].Pin)
}
