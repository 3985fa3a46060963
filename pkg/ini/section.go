package ini

import (
	"slices"
	"strings"
)

// InsertionMode selects where InsertKey splices a new key into a section.
type InsertionMode int

const (
	// InsertFirst makes the new key the section's head.
	InsertFirst InsertionMode = iota
	// InsertBefore splices the new key immediately before the anchor.
	// A nil anchor, a foreign anchor, or the current head falls back to
	// InsertFirst.
	InsertBefore
	// InsertAfter splices the new key immediately after the anchor.
	// A nil anchor, a foreign anchor, or the current tail falls back to
	// InsertLast.
	InsertAfter
	// InsertLast makes the new key the section's tail.
	InsertLast
)

// Key is a single name/value entry within a section.
type Key struct {
	name  string
	value string
}

func (k *Key) Name() string  { return k.name }
func (k *Key) Value() string { return k.value }

// Section is a named, ordered group of keys. Key names are unique within
// a section under case-insensitive comparison.
type Section struct {
	name string
	keys []*Key

	// gen counts structural mutations of the key sequence. Iterators
	// snapshot it and fail fast when it moves under them.
	gen uint64
}

func (s *Section) Name() string { return s.name }

// Len reports the number of keys in the section.
func (s *Section) Len() int { return len(s.keys) }

// Keys returns the section's keys in order. The returned slice is a copy;
// the *Key values are live and reflect later value updates.
func (s *Section) Keys() []*Key {
	return slices.Clone(s.keys)
}

func (s *Section) findKey(name string) *Key {
	for _, k := range s.keys {
		if strings.EqualFold(k.name, name) {
			return k
		}
	}
	return nil
}

func (s *Section) indexOf(anchor *Key) int {
	if anchor == nil {
		return -1
	}
	return slices.Index(s.keys, anchor)
}

// GetValue returns the value of the named key, case-insensitively.
func (s *Section) GetValue(name string) (string, error) {
	k := s.findKey(name)
	if k == nil {
		return "", ErrKeyNotFound
	}
	return k.value, nil
}

// AddKey appends a key to the section, or updates the value of an
// existing key with the same name in place.
func (s *Section) AddKey(name, value string) (*Key, error) {
	return s.InsertKey(nil, InsertLast, name, value)
}

// InsertKey adds a key at a position chosen by mode relative to anchor.
// If a key with the same name already exists its value is replaced in
// place and anchor/mode are ignored; the key keeps its position. An empty
// name or value is rejected with ErrEmptyArgument.
//
// Inserting a new key invalidates live iterators over the section;
// updating an existing key's value does not.
func (s *Section) InsertKey(anchor *Key, mode InsertionMode, name, value string) (*Key, error) {
	if name == "" || value == "" {
		return nil, ErrEmptyArgument
	}

	if k := s.findKey(name); k != nil {
		k.value = value
		return k, nil
	}

	idx := len(s.keys)
	switch mode {
	case InsertFirst:
		idx = 0
	case InsertBefore:
		idx = 0
		if i := s.indexOf(anchor); i > 0 {
			idx = i
		}
	case InsertAfter:
		if i := s.indexOf(anchor); i >= 0 {
			idx = i + 1
		}
	}

	k := &Key{name: name, value: value}
	s.keys = slices.Insert(s.keys, idx, k)
	s.gen++
	return k, nil
}
