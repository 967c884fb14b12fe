package tabs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	l := New()
	assert.Equal(t, []string{"Profile 1", "Profile 2"}, l.Names())
}

func TestAdd(t *testing.T) {
	l := New()
	for want := 3; want <= 12; want++ {
		before := l.Len()
		l = l.Add()
		require.Equal(t, before+1, l.Len())

		name, err := l.At(l.Len() - 1)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("Profile %d", before+1), name)
		assert.Contains(t, name, fmt.Sprint(want))
	}
}

func TestAdd_DoesNotAliasPrevious(t *testing.T) {
	base := New("a")
	first := base.Add()
	second := base.AddNamed("other")

	assert.Equal(t, []string{"a", "Profile 2"}, first.Names())
	assert.Equal(t, []string{"a", "other"}, second.Names())
	assert.Equal(t, []string{"a"}, base.Names())
}

func TestRemove(t *testing.T) {
	l, err := New("Profile 1", "Profile 2").Remove(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Profile 2"}, l.Names())
}

func TestRemove_KeepsLastTab(t *testing.T) {
	single := New("Profile 1")

	for _, idx := range []int{0, 1, -1, 42} {
		l, err := single.Remove(idx)
		assert.NoError(t, err)
		assert.Equal(t, []string{"Profile 1"}, l.Names())
	}
}

func TestRemove_IndexOutOfRange(t *testing.T) {
	l := New("a", "b", "c")

	for _, idx := range []int{-1, 3, 100} {
		got, err := l.Remove(idx)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		assert.Equal(t, l.Names(), got.Names())
	}
}

func TestRemove_Middle(t *testing.T) {
	l, err := New("a", "b", "c").Remove(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, l.Names())
}

func TestRename(t *testing.T) {
	l, err := New().Rename(1, "  Desk  ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Profile 1", "Desk"}, l.Names())

	_, err = l.Rename(0, "   ")
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = l.Rename(2, "x")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestNames_ReturnsCopy(t *testing.T) {
	l := New("a", "b")
	names := l.Names()
	names[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, l.Names())
}
