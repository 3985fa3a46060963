package ini

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFirstValue_EmptySection(t *testing.T) {
	s := newTestSection(t)
	_, _, it, ok := s.FirstValue()
	require.False(t, ok)
	require.Nil(t, it)
}

func TestIterator_Walk(t *testing.T) {
	s := newTestSection(t, [2]string{"x", "1"}, [2]string{"y", "2"})

	name, value, it, ok := s.FirstValue()
	require.True(t, ok)
	require.Equal(t, "x", name)
	require.Equal(t, "1", value)

	name, value, ok = it.NextValue()
	require.True(t, ok)
	require.Equal(t, "y", name)
	require.Equal(t, "2", value)

	_, _, ok = it.NextValue()
	require.False(t, ok)

	// End of sequence is a sentinel, not a sticky error.
	_, _, ok = it.NextValue()
	require.False(t, ok)

	it.Close()
	_, _, ok = it.NextValue()
	require.False(t, ok)
}

func TestIterator_SingleKey(t *testing.T) {
	s := newTestSection(t, [2]string{"x", "1"})

	name, value, it, ok := s.FirstValue()
	require.True(t, ok)
	require.Equal(t, "x", name)
	require.Equal(t, "1", value)

	_, _, ok = it.NextValue()
	require.False(t, ok)
	it.Close()
}

func TestIterator_InvalidatedByInsert(t *testing.T) {
	s := newTestSection(t, [2]string{"x", "1"}, [2]string{"y", "2"})

	_, _, it, ok := s.FirstValue()
	require.True(t, ok)

	_, err := s.AddKey("z", "3")
	require.NoError(t, err)

	require.Panics(t, func() { it.NextValue() })
}

func TestIterator_SurvivesValueUpdate(t *testing.T) {
	s := newTestSection(t, [2]string{"x", "1"}, [2]string{"y", "2"})

	_, _, it, ok := s.FirstValue()
	require.True(t, ok)

	// Updating an existing key does not move anything; the iterator
	// stays valid and observes the new value.
	_, err := s.AddKey("y", "changed")
	require.NoError(t, err)

	name, value, ok := it.NextValue()
	require.True(t, ok)
	require.Equal(t, "y", name)
	require.Equal(t, "changed", value)
	it.Close()
}
