package ini

// scanner is a cursor over decoded input text. All structural characters
// of the format are ASCII, so the cursor advances byte-wise; multi-byte
// runes only ever appear inside names and values and pass through intact.
type scanner struct {
	src string
	pos int
}

func newScanner(src string) *scanner {
	return &scanner{src: src}
}

func (sc *scanner) eof() bool { return sc.pos >= len(sc.src) }

func (sc *scanner) peek() byte { return sc.src[sc.pos] }

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// skipSpace advances past whitespace, including line breaks. It reports
// false when the input is exhausted.
func (sc *scanner) skipSpace() bool {
	for !sc.eof() && isSpace(sc.peek()) {
		sc.pos++
	}
	return !sc.eof()
}

// skipLine discards the remainder of the current line including its
// terminator.
func (sc *scanner) skipLine() {
	for !sc.eof() && sc.peek() != '\n' {
		sc.pos++
	}
	if !sc.eof() {
		sc.pos++
	}
}

// skipToNextSection advances line by line until a line starting with '['
// is reached. Used for error recovery. Reports false at end of input.
func (sc *scanner) skipToNextSection() bool {
	for !sc.eof() && sc.peek() != '[' {
		sc.skipLine()
	}
	return !sc.eof()
}

// sectionName reads a section name after the caller consumed the opening
// '['. The name runs up to the closing ']'; the rest of the header line
// is discarded.
func (sc *scanner) sectionName() string {
	for !sc.eof() && isSpace(sc.peek()) {
		sc.pos++
	}
	start := sc.pos
	for !sc.eof() && sc.peek() != ']' {
		sc.pos++
	}
	name := sc.src[start:sc.pos]
	if !sc.eof() {
		sc.pos++ // ']'
	}
	sc.skipLine()
	return name
}

// keyName reads the next key name: the run of characters up to the first
// whitespace, '=' or ';'. Lines that turn out to be comments (the name is
// terminated by ';') are discarded whole and scanning moves on to the
// next line; this also covers full-line comments, whose name is empty.
//
// Returns "" in three cases the caller must tell apart by cursor state:
// input exhausted, a section header reached (cursor left on its '[') or
// a line whose first character is '=' (cursor left on the '=').
func (sc *scanner) keyName() string {
	for !sc.eof() {
		if !sc.skipSpace() {
			break
		}
		if sc.peek() == '[' {
			return ""
		}
		start := sc.pos
		for !sc.eof() {
			c := sc.peek()
			if isSpace(c) || c == '=' || c == ';' {
				break
			}
			sc.pos++
		}
		if !sc.eof() && sc.peek() == ';' {
			// Comment: drop the line, any name read included.
			for !sc.eof() && sc.peek() != '\r' && sc.peek() != '\n' {
				sc.pos++
			}
			continue
		}
		return sc.src[start:sc.pos]
	}
	return ""
}

// keyValue reads "= value" after a key name. With quoted enabled and the
// value opening with '"', the value runs to the next '"' (no escapes) and
// the rest of the line is discarded. Otherwise the value runs to the next
// carriage return or ';' — not '\n', a compatibility quirk: on LF-only
// input an unquoted value swallows the line break and the lines after it.
//
// A missing '=' reports ok=false and leaves the cursor where it was, so
// the caller can discard the offending line and carry on.
func (sc *scanner) keyValue(quoted bool) (value string, ok bool) {
	mark := sc.pos

	if !sc.skipSpace() || sc.peek() != '=' {
		sc.pos = mark
		return "", false
	}
	sc.pos++
	sc.skipSpace()

	if quoted && !sc.eof() && sc.peek() == '"' {
		sc.pos++
		start := sc.pos
		for !sc.eof() && sc.peek() != '"' {
			sc.pos++
		}
		value = sc.src[start:sc.pos]
		if !sc.eof() {
			sc.pos++ // closing '"'
		}
		for !sc.eof() && sc.peek() != '\r' && sc.peek() != '\n' {
			sc.pos++
		}
	} else {
		start := sc.pos
		for !sc.eof() && sc.peek() != '\r' && sc.peek() != ';' {
			sc.pos++
		}
		value = sc.src[start:sc.pos]
	}

	if !sc.eof() && sc.peek() == '\r' {
		sc.pos++
	}
	if !sc.eof() && sc.peek() == '\n' {
		sc.pos++
	}
	return value, true
}
