package pathmatch

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Key describes one parameter token of a pattern.
type Key struct {
	// Name is the parameter name. Unnamed groups and bare asterisks get
	// positional names "0", "1", ...
	Name string
	// Prefix is the delimiter ("/" or ".") written before the value.
	Prefix string
	// Pattern is the expression a single value must satisfy.
	Pattern string
	// Optional reports a "?" or "*" modifier.
	Optional bool
	// Repeat reports a "+" or "*" modifier.
	Repeat bool
	// Asterisk reports a bare "*" token capturing the rest of the path.
	Asterisk bool
}

// delimiter returns the separator used between repeated values.
func (k Key) delimiter() string {
	if k.Prefix != "" {
		return k.Prefix
	}
	return "/"
}

// part is either a literal run of the pattern or a parameter token.
type part struct {
	literal string
	key     *Key
	// valid checks one escaped value of the token.
	valid *regexp.Regexp
}

// parse splits a pattern into literal parts and parameter tokens.
func parse(pattern string) ([]part, error) {
	var (
		parts []part
		lit   strings.Builder
		index int
	)

	seen := make(map[string]bool)

	flush := func() {
		if lit.Len() > 0 {
			parts = append(parts, part{literal: lit.String()})
			lit.Reset()
		}
	}

	// takePrefix moves a trailing "/" or "." of the pending literal into
	// the token about to be emitted.
	takePrefix := func() string {
		s := lit.String()
		n := len(s)
		if n == 0 || (s[n-1] != '/' && s[n-1] != '.') {
			return ""
		}
		lit.Reset()
		lit.WriteString(s[:n-1])
		return s[n-1:]
	}

	addKey := func(k *Key) error {
		if seen[k.Name] {
			return fmt.Errorf("%w: duplicated parameter %q in %q", ErrInvalidPattern, k.Name, pattern)
		}
		seen[k.Name] = true

		expr, valid := expandMacro(k.Pattern)
		if valid == nil {
			var err error
			valid, err = expressions.value(expr, true)
			if err != nil {
				return fmt.Errorf("%w: expression %q of parameter %q: %v", ErrInvalidPattern, expr, k.Name, err)
			}
		}
		k.Pattern = expr

		flush()
		parts = append(parts, part{key: k, valid: valid})
		return nil
	}

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]

		switch c {
		case '\\':
			if i+1 < len(pattern) {
				i++
			}
			lit.WriteByte(pattern[i])

		case ':':
			j := i + 1
			for j < len(pattern) && isNameByte(pattern[j]) {
				j++
			}
			name := pattern[i+1 : j]
			if name == "" {
				return nil, fmt.Errorf("%w: missing parameter name at offset %d in %q", ErrInvalidPattern, i, pattern)
			}

			k := &Key{Name: name, Prefix: takePrefix()}
			i = j - 1

			if j < len(pattern) && pattern[j] == '(' {
				expr, end, err := group(pattern, j)
				if err != nil {
					return nil, err
				}
				k.Pattern = expr
				i = end
			} else {
				k.Pattern = defaultPattern(k.delimiter())
			}

			i = modifier(pattern, i, k)
			if err := addKey(k); err != nil {
				return nil, err
			}

		case '(':
			expr, end, err := group(pattern, i)
			if err != nil {
				return nil, err
			}

			k := &Key{Name: strconv.Itoa(index), Prefix: takePrefix(), Pattern: expr}
			index++
			i = modifier(pattern, end, k)
			if err := addKey(k); err != nil {
				return nil, err
			}

		case ')':
			return nil, fmt.Errorf("%w: unbalanced parenthesis at offset %d in %q", ErrInvalidPattern, i, pattern)

		case '*':
			k := &Key{Name: strconv.Itoa(index), Prefix: takePrefix(), Pattern: ".*", Asterisk: true}
			index++
			if err := addKey(k); err != nil {
				return nil, err
			}

		default:
			lit.WriteByte(c)
		}
	}

	flush()

	return parts, nil
}

// group returns the expression inside the parenthesised group opening at
// start and the index of its closing parenthesis.
func group(pattern string, start int) (string, int, error) {
	level := 0
	for i := start; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++
		case '(':
			level++
		case ')':
			if level--; level == 0 {
				expr := pattern[start+1 : i]
				if expr == "" {
					return "", 0, fmt.Errorf("%w: empty group at offset %d in %q", ErrInvalidPattern, start, pattern)
				}
				return expr, i, nil
			}
		}
	}
	return "", 0, fmt.Errorf("%w: unbalanced parenthesis at offset %d in %q", ErrInvalidPattern, start, pattern)
}

// modifier applies a "?", "*" or "+" following position i to k and
// returns the index of the last consumed byte.
func modifier(pattern string, i int, k *Key) int {
	if i+1 >= len(pattern) {
		return i
	}
	switch pattern[i+1] {
	case '?':
		k.Optional = true
	case '*':
		k.Optional = true
		k.Repeat = true
	case '+':
		k.Repeat = true
	default:
		return i
	}
	return i + 1
}

func defaultPattern(delimiter string) string {
	return "[^" + regexp.QuoteMeta(delimiter) + "]+?"
}

func isNameByte(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}
