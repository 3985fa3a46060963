package ini

// Iterator is a transient cursor over a section's keys, obtained from
// Section.FirstValue. It holds a non-owning reference into the cache.
//
// Structurally mutating the section (inserting a key, destroying the
// cache) while an Iterator is live is a programming error: the next
// NextValue call panics instead of walking a stale sequence. Updating an
// existing key's value does not invalidate iterators.
type Iterator struct {
	section *Section
	idx     int
	gen     uint64
}

// FirstValue starts iterating the section, returning the first key's
// name and value. ok is false when the section has no keys.
func (s *Section) FirstValue() (name, value string, it *Iterator, ok bool) {
	if len(s.keys) == 0 {
		return "", "", nil, false
	}
	k := s.keys[0]
	return k.name, k.value, &Iterator{section: s, gen: s.gen}, true
}

// NextValue advances to the next key and returns its name and value.
// ok is false at the end of the sequence, or after Close.
func (it *Iterator) NextValue() (name, value string, ok bool) {
	if it.section == nil {
		return "", "", false
	}
	if it.gen != it.section.gen {
		panic("ini: section modified during iteration")
	}
	it.idx++
	if it.idx >= len(it.section.keys) {
		return "", "", false
	}
	k := it.section.keys[it.idx]
	return k.name, k.value, true
}

// Close releases the cursor. The underlying section is unaffected.
func (it *Iterator) Close() {
	it.section = nil
}
