package location

import (
	"strings"
	"unicode/utf8"
)

// uriReserved lists the characters whose escapes decodeURI keeps intact.
const uriReserved = ";/?:@&=+$,#"

// decodeURI decodes percent escapes except those of reserved characters,
// matching the decodeURI behaviour browsers apply to location paths.
// Malformed input is returned unchanged.
func decodeURI(s string) string {
	if strings.IndexByte(s, '%') < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}

		if i+2 >= len(s) || !isHex(s[i+1]) || !isHex(s[i+2]) {
			return s
		}

		v := unhex(s[i+1])<<4 | unhex(s[i+2])
		if v < utf8.RuneSelf && strings.IndexByte(uriReserved, v) >= 0 {
			b.WriteString(s[i : i+3])
		} else {
			b.WriteByte(v)
		}
		i += 2
	}

	out := b.String()
	if !utf8.ValidString(out) {
		return s
	}

	return out
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
