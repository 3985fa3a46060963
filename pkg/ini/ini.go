// Package ini caches the contents of an INI-style configuration file in
// memory: an ordered list of named sections, each holding an ordered list
// of name/value keys. A cache is built by parsing raw text and can be
// rendered back to text; in between, sections and keys can be looked up,
// added, updated in place and inserted at chosen positions.
//
// Section and key names are matched case-insensitively and are unique
// within their scope: adding a section that already exists returns the
// existing one, and adding a key that already exists updates its value
// without moving it.
//
// Parsing is tolerant by design. Malformed section headers skip forward
// to the next '[' and broken key lines are dropped; neither fails the
// load. Only I/O failures and unreadable input surface as errors — input
// that parses to nothing yields a valid, empty cache.
//
// A Cache must not be used from multiple goroutines without external
// synchronization.
package ini

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Cache is the root of the parsed tree. It owns its sections, which own
// their keys; no section or key is shared between caches.
type Cache struct {
	sections []*Section
	sugar    *zap.SugaredLogger
}

// Option configures a Cache at construction time.
type Option func(*Cache)

// WithLogger routes the cache's diagnostics (skipped lines, rejected
// entries) to the given logger. The default is a nop logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Cache) {
		c.sugar = l.Sugar()
	}
}

// New returns an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{}
	for _, opt := range opts {
		opt(c)
	}
	if c.sugar == nil {
		c.sugar = zap.NewNop().Sugar()
	}
	return c
}

// Load reads and parses the INI file at path. Open and read failures are
// returned as errors; see LoadBytes for the parsing contract.
func Load(path string, quoted bool, opts ...Option) (*Cache, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	c, err := LoadReader(f, quoted, opts...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return c, nil
}

// LoadReader consumes r to the end and parses it. See LoadBytes.
func LoadReader(r io.Reader, quoted bool, opts ...Option) (*Cache, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read ini input: %w", err)
	}
	return LoadBytes(data, quoted, opts...)
}

// LoadBytes parses raw INI bytes into a new cache. The bytes may be
// UTF-8 or, with a byte order mark, UTF-16. With quoted enabled, values
// wrapped in double quotes may contain characters that would otherwise
// terminate them, such as ';'.
//
// Unparseable lines are skipped, not fatal: an input with no usable
// entries parses to an empty cache and a nil error.
func LoadBytes(data []byte, quoted bool, opts ...Option) (*Cache, error) {
	c := New(opts...)
	text, err := decodeText(data)
	if err != nil {
		return nil, err
	}
	c.parse(text, quoted)
	return c, nil
}

// parse drives the scanner over text and fills the store. Every failure
// mode recovers locally: bad headers skip to the next section, bad key
// lines are dropped.
func (c *Cache) parse(text string, quoted bool) {
	sc := newScanner(text)
	var section *Section

	for !sc.eof() {
		if !sc.skipSpace() {
			break
		}

		if sc.peek() == '[' {
			sc.pos++
			name := sc.sectionName()
			sec, err := c.AddSection(name)
			if err != nil {
				c.sugar.Debugf("skipping section with empty name")
				section = nil
				sc.skipToNextSection()
				continue
			}
			section = sec
			continue
		}

		if section == nil {
			// Key material before any section header.
			c.sugar.Debugf("skipping entries outside any section")
			sc.skipToNextSection()
			continue
		}

		name := sc.keyName()
		if name == "" && (sc.eof() || sc.peek() == '[') {
			// Out of key material; the next pass ends the parse or
			// picks up the section header keyName stopped at.
			continue
		}
		// An empty name with input remaining means a line starting
		// with '='. Its value is still consumed so the parse makes
		// progress; the store then rejects the nameless entry, as it
		// rejects an empty value.
		value, ok := sc.keyValue(quoted)
		if !ok {
			c.sugar.Debugf("skipping key %q: no '=' found", name)
			sc.skipLine()
			continue
		}
		if _, err := section.InsertKey(nil, InsertLast, name, value); err != nil {
			c.sugar.Debugf("skipping key %q: %v", name, err)
		}
	}
}

// GetSection returns the first section whose name matches
// case-insensitively, or nil.
func (c *Cache) GetSection(name string) *Section {
	for _, s := range c.sections {
		if strings.EqualFold(s.name, name) {
			return s
		}
	}
	return nil
}

// AddSection returns the existing section with the given name, or
// appends a new one at the end of the cache. An empty name is rejected.
func (c *Cache) AddSection(name string) (*Section, error) {
	if name == "" {
		return nil, ErrEmptyArgument
	}
	if s := c.GetSection(name); s != nil {
		return s, nil
	}
	s := &Section{name: name}
	c.sections = append(c.sections, s)
	return s, nil
}

// Sections returns the cache's sections in order. The returned slice is
// a copy; the *Section values are live.
func (c *Cache) Sections() []*Section {
	out := make([]*Section, len(c.sections))
	copy(out, c.sections)
	return out
}

// Destroy drops the whole tree. Live iterators fail fast on their next
// advance; any previously obtained Section or Key reference is dead and
// using one afterwards is unspecified behavior.
func (c *Cache) Destroy() {
	for _, s := range c.sections {
		s.keys = nil
		s.gen++
	}
	c.sections = nil
}
