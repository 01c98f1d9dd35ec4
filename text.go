package runebuf

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

// Strings on the wire use one byte per character in the Windows-1252
// charset, the superset of latin-1 this protocol family has always spoken.
// The original interpreter never validated text; here a byte with no
// cp1252 mapping, or a rune with no cp1252 byte, is a hard decode/encode
// failure rather than silent replacement.

// EncodeText converts s to its single-byte wire representation, without a
// terminator. It fails with ErrInvalidText if any rune has no Windows-1252
// byte.
func EncodeText(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidText, "rune %q", r)
		}
		out = append(out, b)
	}
	return out, nil
}

// DecodeText converts wire bytes (terminator already stripped) to a
// string. It fails with ErrInvalidText on any of the five bytes
// Windows-1252 leaves unmapped.
func DecodeText(p []byte) (string, error) {
	var sb strings.Builder
	sb.Grow(len(p))
	for _, b := range p {
		r := charmap.Windows1252.DecodeByte(b)
		if r == utf8.RuneError {
			return "", errors.Wrapf(ErrInvalidText, "byte %#x", b)
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}
