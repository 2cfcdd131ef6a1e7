package demicode

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/apparebit/demicode/property"
)

// ParseCodePoint converts a code point designator into a rune. It accepts
// the U+XXXX notation, bare hexadecimal of four to six digits, a single
// character, and a character followed by one variation selector (which is
// dropped). The result is always a valid Unicode scalar value.
func ParseCodePoint(s string) (rune, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty designator", property.ErrInvalidCodePoint)
	}

	runes := []rune(s)
	switch {
	case len(runes) == 1:
		return checkCodePoint(runes[0])
	case len(runes) == 2 && (runes[1] == textSelector || runes[1] == emojiSelector):
		return checkCodePoint(runes[0])
	}

	hex := s
	if strings.HasPrefix(s, "U+") || strings.HasPrefix(s, "u+") {
		hex = s[2:]
	}
	if n := len(hex); n < 4 || n > 6 {
		return 0, fmt.Errorf("%w: %q is not a code point designator", property.ErrInvalidCodePoint, s)
	}
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a code point designator", property.ErrInvalidCodePoint, s)
	}
	return checkCodePoint(rune(value))
}

func checkCodePoint(cp rune) (rune, error) {
	if !property.IsValid(cp) {
		return 0, fmt.Errorf("%w: 0x%X", property.ErrInvalidCodePoint, cp)
	}
	return cp, nil
}

// Runes decodes a string into code points without the silent U+FFFD
// substitution of a []rune conversion: malformed UTF-8 fails with
// [property.ErrInvalidCodePoint] instead.
func Runes(s string) ([]rune, error) {
	cps := make([]rune, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return nil, fmt.Errorf("%w: malformed UTF-8 at byte %d", property.ErrInvalidCodePoint, i)
		}
		cps = append(cps, r)
		i += size
	}
	return cps, nil
}
