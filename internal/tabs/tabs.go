// Package tabs implements the ordered list of profile names shown as tabs.
package tabs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIndexOutOfRange is returned when a tab position does not exist.
	ErrIndexOutOfRange = errors.New("tab index out of range")
	// ErrEmptyName is returned when renaming a tab to a blank name.
	ErrEmptyName = errors.New("tab name must not be empty")
)

// DefaultName is the name given to a tab created at 1-based position n.
func DefaultName(n int) string {
	return fmt.Sprintf("Profile %d", n)
}

// List is an ordered, never empty, list of tab names. Like the picker state it
// is used as a value: operations return the updated List.
type List struct {
	names []string
}

// New returns a list holding names. With no names it starts with the two
// default profiles.
func New(names ...string) List {
	if len(names) == 0 {
		names = []string{DefaultName(1), DefaultName(2)}
	}
	return List{names: append([]string(nil), names...)}
}

// Len returns the number of tabs.
func (l List) Len() int {
	return len(l.names)
}

// Names returns a copy of the tab names in order.
func (l List) Names() []string {
	return append([]string(nil), l.names...)
}

// At returns the name at index i.
func (l List) At(i int) (string, error) {
	if err := l.check(i); err != nil {
		return "", err
	}
	return l.names[i], nil
}

// Add appends a tab named after its position.
func (l List) Add() List {
	return l.AddNamed(DefaultName(len(l.names) + 1))
}

// AddNamed appends a tab with an explicit name.
func (l List) AddNamed(name string) List {
	names := make([]string, len(l.names), len(l.names)+1)
	copy(names, l.names)
	return List{names: append(names, name)}
}

// Remove deletes the tab at index i. The last remaining tab is never removed:
// on a single-tab list Remove is a no-op whatever the index.
func (l List) Remove(i int) (List, error) {
	if len(l.names) <= 1 {
		return l, nil
	}
	if err := l.check(i); err != nil {
		return l, err
	}
	names := make([]string, 0, len(l.names)-1)
	names = append(names, l.names[:i]...)
	names = append(names, l.names[i+1:]...)
	return List{names: names}, nil
}

// Rename replaces the name of the tab at index i.
func (l List) Rename(i int, name string) (List, error) {
	if err := l.check(i); err != nil {
		return l, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return l, ErrEmptyName
	}
	names := l.Names()
	names[i] = name
	return List{names: names}, nil
}

func (l List) check(i int) error {
	if i < 0 || i >= len(l.names) {
		return fmt.Errorf("%w: %d not in [0,%d]", ErrIndexOutOfRange, i, len(l.names)-1)
	}
	return nil
}
