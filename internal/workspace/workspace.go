// Package workspace ties every tab to its own device profile and tracks which
// tab the picker is editing.
package workspace

import (
	"fmt"

	"rgbctl/internal/device"
	"rgbctl/internal/tabs"
)

// Entry seeds a workspace tab.
type Entry struct {
	Name    string
	Profile device.Profile
}

// Workspace holds the tab list, one profile per tab in the same order, and
// the active tab index. Methods return an updated copy.
type Workspace struct {
	tabs     tabs.List
	profiles []device.Profile
	active   int
	template device.Profile
}

// New creates a workspace from entries. newProfile is the profile given to
// tabs added later. With no entries the default two-tab list is used.
func New(newProfile device.Profile, entries ...Entry) Workspace {
	if len(entries) == 0 {
		l := tabs.New()
		profiles := make([]device.Profile, l.Len())
		for i := range profiles {
			profiles[i] = newProfile
		}
		return Workspace{tabs: l, profiles: profiles, template: newProfile}
	}

	names := make([]string, len(entries))
	profiles := make([]device.Profile, len(entries))
	for i, e := range entries {
		names[i] = e.Name
		if names[i] == "" {
			names[i] = tabs.DefaultName(i + 1)
		}
		profiles[i] = e.Profile
	}
	return Workspace{tabs: tabs.New(names...), profiles: profiles, template: newProfile}
}

// Len returns the number of tabs.
func (w Workspace) Len() int {
	return w.tabs.Len()
}

// Names returns the tab names in order.
func (w Workspace) Names() []string {
	return w.tabs.Names()
}

// ActiveIndex returns the index of the tab being edited.
func (w Workspace) ActiveIndex() int {
	return w.active
}

// Active returns the name and profile of the active tab.
func (w Workspace) Active() (string, device.Profile) {
	name, _ := w.tabs.At(w.active)
	return name, w.profiles[w.active]
}

// Profile returns the profile of tab i.
func (w Workspace) Profile(i int) (device.Profile, error) {
	if i < 0 || i >= len(w.profiles) {
		return device.Profile{}, fmt.Errorf("%w: %d", tabs.ErrIndexOutOfRange, i)
	}
	return w.profiles[i], nil
}

// Add appends a new default tab and makes it active.
func (w Workspace) Add() Workspace {
	w.tabs = w.tabs.Add()
	w.profiles = append(append([]device.Profile(nil), w.profiles...), w.template)
	w.active = w.tabs.Len() - 1
	return w
}

// Remove deletes tab i and its profile. Removing the only tab is a no-op. The
// active tab stays on the same profile when it survives; otherwise the tab now
// at its position, or the new last tab, becomes active.
func (w Workspace) Remove(i int) (Workspace, error) {
	if w.tabs.Len() <= 1 {
		return w, nil
	}
	l, err := w.tabs.Remove(i)
	if err != nil {
		return w, err
	}

	profiles := make([]device.Profile, 0, len(w.profiles)-1)
	profiles = append(profiles, w.profiles[:i]...)
	profiles = append(profiles, w.profiles[i+1:]...)

	w.tabs = l
	w.profiles = profiles
	if w.active > i || w.active >= l.Len() {
		w.active--
	}
	return w, nil
}

// Select makes tab i active.
func (w Workspace) Select(i int) (Workspace, error) {
	if i < 0 || i >= w.tabs.Len() {
		return w, fmt.Errorf("%w: %d not in [0,%d]", tabs.ErrIndexOutOfRange, i, w.tabs.Len()-1)
	}
	w.active = i
	return w, nil
}

// Cycle moves the active tab by step, wrapping around.
func (w Workspace) Cycle(step int) Workspace {
	n := w.tabs.Len()
	w.active = ((w.active+step)%n + n) % n
	return w
}

// Rename renames tab i.
func (w Workspace) Rename(i int, name string) (Workspace, error) {
	l, err := w.tabs.Rename(i, name)
	if err != nil {
		return w, err
	}
	w.tabs = l
	return w, nil
}

// UpdateActive replaces the active tab's profile.
func (w Workspace) UpdateActive(p device.Profile) Workspace {
	profiles := append([]device.Profile(nil), w.profiles...)
	profiles[w.active] = p
	w.profiles = profiles
	return w
}
