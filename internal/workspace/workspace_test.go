package workspace

import (
	"testing"

	"rgbctl/internal/color"
	"rgbctl/internal/device"
	"rgbctl/internal/tabs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profileWith(c color.RGB) device.Profile {
	p := device.NewProfile()
	p.Color = c
	return p
}

func threeTabs() Workspace {
	return New(device.NewProfile(),
		Entry{Name: "a", Profile: profileWith(color.RGB{1, 0, 0})},
		Entry{Name: "b", Profile: profileWith(color.RGB{2, 0, 0})},
		Entry{Name: "c", Profile: profileWith(color.RGB{3, 0, 0})},
	)
}

func TestNew_Defaults(t *testing.T) {
	w := New(device.NewProfile())
	assert.Equal(t, []string{"Profile 1", "Profile 2"}, w.Names())
	name, p := w.Active()
	assert.Equal(t, "Profile 1", name)
	assert.Equal(t, device.NewProfile(), p)
}

func TestNew_BlankNamesGetDefaults(t *testing.T) {
	w := New(device.NewProfile(), Entry{}, Entry{Name: "Desk"}, Entry{})
	assert.Equal(t, []string{"Profile 1", "Desk", "Profile 3"}, w.Names())
}

func TestAdd(t *testing.T) {
	tmpl := profileWith(color.RGB{9, 9, 9})
	w := New(tmpl).Add()

	assert.Equal(t, 3, w.Len())
	assert.Equal(t, 2, w.ActiveIndex())
	name, p := w.Active()
	assert.Equal(t, "Profile 3", name)
	assert.Equal(t, tmpl, p)
}

func TestRemove_KeepsActiveProfile(t *testing.T) {
	w, err := threeTabs().Select(2)
	require.NoError(t, err)

	w, err = w.Remove(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, w.Names())
	name, p := w.Active()
	assert.Equal(t, "c", name)
	assert.Equal(t, color.RGB{3, 0, 0}, p.Color)
}

func TestRemove_ActiveTab(t *testing.T) {
	w, _ := threeTabs().Select(1)
	w, err := w.Remove(1)
	require.NoError(t, err)
	name, p := w.Active()
	assert.Equal(t, "c", name, "the tab that moved into the removed position becomes active")
	assert.Equal(t, color.RGB{3, 0, 0}, p.Color)

	w, _ = threeTabs().Select(2)
	w, err = w.Remove(2)
	require.NoError(t, err)
	name, _ = w.Active()
	assert.Equal(t, "b", name)
}

func TestRemove_ActiveFirstTab(t *testing.T) {
	w, err := threeTabs().Remove(0)
	require.NoError(t, err)
	assert.Equal(t, 0, w.ActiveIndex())
	name, p := w.Active()
	assert.Equal(t, "b", name)
	assert.Equal(t, color.RGB{2, 0, 0}, p.Color)
}

func TestRemove_LastRemainingTab(t *testing.T) {
	w := New(device.NewProfile(), Entry{Name: "only"})
	got, err := w.Remove(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, got.Names())
}

func TestRemove_OutOfRange(t *testing.T) {
	w := threeTabs()
	got, err := w.Remove(5)
	assert.ErrorIs(t, err, tabs.ErrIndexOutOfRange)
	assert.Equal(t, w.Names(), got.Names())
}

func TestSelectAndCycle(t *testing.T) {
	w := threeTabs()
	_, err := w.Select(3)
	assert.ErrorIs(t, err, tabs.ErrIndexOutOfRange)

	assert.Equal(t, 2, w.Cycle(-1).ActiveIndex())
	assert.Equal(t, 0, w.Cycle(3).ActiveIndex())
	assert.Equal(t, 1, w.Cycle(1).ActiveIndex())
}

func TestUpdateActive_DoesNotLeakIntoCopies(t *testing.T) {
	before := threeTabs()
	after := before.UpdateActive(profileWith(color.RGB{200, 0, 0}))

	p, err := before.Profile(0)
	require.NoError(t, err)
	assert.Equal(t, color.RGB{1, 0, 0}, p.Color)

	p, err = after.Profile(0)
	require.NoError(t, err)
	assert.Equal(t, color.RGB{200, 0, 0}, p.Color)

	_, err = after.Profile(-1)
	assert.ErrorIs(t, err, tabs.ErrIndexOutOfRange)
}

func TestRename(t *testing.T) {
	w, err := threeTabs().Rename(1, "Desk")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "Desk", "c"}, w.Names())

	_, err = w.Rename(0, "")
	assert.ErrorIs(t, err, tabs.ErrEmptyName)
}
