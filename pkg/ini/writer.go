package ini

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteTo renders the cache in its canonical text form: each section as
// "[Name]" followed by one "Name=Value" line per key, CR LF line
// terminators, and a single blank line between consecutive sections.
//
// Values are written verbatim with no quoting, whatever the input looked
// like: a value parsed from a quoted source loses its quotes on
// round-trip.
func (c *Cache) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var written int64

	for i, s := range c.sections {
		if i > 0 {
			n, err := fmt.Fprint(bw, "\r\n")
			written += int64(n)
			if err != nil {
				return written, err
			}
		}
		n, err := fmt.Fprintf(bw, "[%s]\r\n", s.name)
		written += int64(n)
		if err != nil {
			return written, err
		}
		for _, k := range s.keys {
			n, err := fmt.Fprintf(bw, "%s=%s\r\n", k.name, k.value)
			written += int64(n)
			if err != nil {
				return written, err
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return written, err
	}
	return written, nil
}

// Save writes the rendered cache to path, replacing any existing file.
func (c *Cache) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
