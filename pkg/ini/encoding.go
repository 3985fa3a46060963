package ini

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeText converts raw input bytes to the single internal UTF-8
// representation. UTF-16LE, UTF-16BE and UTF-8 inputs are recognized by
// their byte order mark; input without a BOM is taken as UTF-8, with
// invalid bytes replaced rather than rejected. This is the only place a
// second encoding exists; everything past it works on UTF-8 text.
func decodeText(data []byte) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", fmt.Errorf("decode ini text: %w", err)
	}
	return string(out), nil
}
