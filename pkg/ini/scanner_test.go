package ini

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScannerSectionName(t *testing.T) {
	sc := newScanner("Section] trailing junk\r\nx=1\r\n")
	name := sc.sectionName()
	require.Equal(t, "Section", name)

	// The rest of the header line is discarded.
	require.Equal(t, "x", sc.keyName())
}

func TestScannerKeyName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Key=1", "Key"},
		{"space terminated", "Key =1", "Key"},
		{"leading blank lines", "\r\n\r\n  Key=1", "Key"},
		{"comment line skipped", "; a comment\r\nKey=1", "Key"},
		{"name glued to comment is dropped", "Key;comment\r\nOther=1", "Other"},
		{"exhausted", "   \r\n\t", ""},
		{"only comments", "; one\r\n; two\r\n", ""},
		{"section header is not a name", "[B]\r\n", ""},
		{"comment then section header", "; one\r\n[B]\r\n", ""},
		{"nameless key line", "=5\r\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := newScanner(tt.input)
			require.Equal(t, tt.want, sc.keyName())
		})
	}
}

func TestScannerKeyNameStopsBeforeHeader(t *testing.T) {
	// After skipping a comment the cursor is left on the '[' so the
	// caller can hand the header back to the section path.
	sc := newScanner("; comment\r\n[B]\r\n")
	require.Equal(t, "", sc.keyName())
	require.False(t, sc.eof())
	require.Equal(t, byte('['), sc.peek())
}

func TestScannerKeyNameEmptyBeforeEquals(t *testing.T) {
	sc := newScanner("=5\r\n")
	require.Equal(t, "", sc.keyName())

	// The cursor stays on the '=' so the value can still be consumed.
	v, ok := sc.keyValue(false)
	require.True(t, ok)
	require.Equal(t, "5", v)
	require.True(t, sc.eof())
}

func TestScannerKeyValue(t *testing.T) {
	sc := newScanner("= hello world\r\n")
	v, ok := sc.keyValue(false)
	require.True(t, ok)
	require.Equal(t, "hello world", v)
	require.True(t, sc.eof())
}

func TestScannerKeyValueStopsAtSemicolon(t *testing.T) {
	sc := newScanner("=1 ; comment\r\n")
	v, ok := sc.keyValue(false)
	require.True(t, ok)
	// Terminated by ';', trailing space before it preserved.
	require.Equal(t, "1 ", v)
}

func TestScannerKeyValueQuoted(t *testing.T) {
	sc := newScanner("= \"a; b\" trailing\r\nNext=1\r\n")
	v, ok := sc.keyValue(true)
	require.True(t, ok)
	require.Equal(t, "a; b", v)

	// Everything after the closing quote is discarded.
	require.Equal(t, "Next", sc.keyName())
}

func TestScannerKeyValueQuotedModeOff(t *testing.T) {
	sc := newScanner("=\"a;b\"\r\n")
	v, ok := sc.keyValue(false)
	require.True(t, ok)
	// Without quoted mode the '"' is ordinary text and ';' terminates.
	require.Equal(t, "\"a", v)
}

func TestScannerKeyValueUnterminatedQuote(t *testing.T) {
	sc := newScanner("=\"never closed")
	v, ok := sc.keyValue(true)
	require.True(t, ok)
	require.Equal(t, "never closed", v)
	require.True(t, sc.eof())
}

func TestScannerKeyValueMissingEquals(t *testing.T) {
	sc := newScanner(" badkey-rest\r\n")
	pos := sc.pos
	_, ok := sc.keyValue(false)
	require.False(t, ok)
	// The cursor stays put so the caller can discard the line.
	require.Equal(t, pos, sc.pos)
}

func TestScannerSkipToNextSection(t *testing.T) {
	sc := newScanner("garbage\r\nmore garbage\r\n[Real]\r\n")
	require.True(t, sc.skipToNextSection())
	require.Equal(t, byte('['), sc.peek())

	sc = newScanner("garbage all the way\r\ndown\r\n")
	require.False(t, sc.skipToNextSection())
}
