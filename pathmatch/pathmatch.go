package pathmatch

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Options control how a pattern is compiled.
type Options struct {
	// Sensitive makes matching case sensitive. When false "/Foo" and
	// "/foo" are treated the same.
	Sensitive bool `yaml:"sensitive"`
	// Strict makes the trailing slash significant. When false "/foo" and
	// "/foo/" are treated the same.
	Strict bool `yaml:"strict"`
	// End anchors the pattern at the end of the path. When false the
	// pattern matches any path it is a segment-aligned prefix of.
	End bool `yaml:"end"`
}

// DefaultOptions returns the options used when none are given:
// case insensitive, non-strict, anchored at the end.
func DefaultOptions() Options {
	return Options{End: true}
}

// Matcher is a compiled pattern. It tests paths and generates paths from
// parameter values. A Matcher is immutable and safe for concurrent use.
type Matcher struct {
	pattern string
	opts    Options
	parts   []part
	keys    []Key
	groups  []int
	re      *regexp.Regexp
}

// Result is the outcome of Matcher.Test.
type Result struct {
	// Matched reports whether the path matched the pattern.
	Matched bool
	// Keys lists the parameter names in pattern order.
	Keys []string
	// Captures holds the captured value of each key, "" when an optional
	// token did not participate.
	Captures []string

	set []bool
}

// Params returns the captured values by parameter name. Optional tokens
// that did not participate in the match are omitted.
func (r Result) Params() map[string]string {
	if !r.Matched {
		return nil
	}
	params := make(map[string]string, len(r.Keys))
	for i, name := range r.Keys {
		if i < len(r.set) && r.set[i] {
			params[name] = r.Captures[i]
		}
	}
	return params
}

// Compile parses pattern and builds its matcher.
//
// Parameter tokens are written ":name" and capture one path segment.
// An expression or macro name may follow in parentheses, ":id(\\d+)" or
// ":id(int)". The modifiers "?", "*" and "+" make a token optional,
// zero-or-more or one-or-more segments. A bare "*" captures the rest of
// the path under a positional name.
func Compile(pattern string, opts Options) (*Matcher, error) {
	parts, err := parse(pattern)
	if err != nil {
		return nil, err
	}

	var (
		src    strings.Builder
		keys   []Key
		groups []string
	)

	for i, p := range parts {
		if p.key == nil {
			src.WriteString(regexp.QuoteMeta(p.literal))
			continue
		}

		if !opts.Sensitive {
			valid, err := expressions.value(p.key.Pattern, false)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
			}
			parts[i].valid = valid
		}

		k := *p.key
		name := fmt.Sprintf("p%d", len(keys))
		prefix := regexp.QuoteMeta(k.Prefix)
		capture := "(?:" + k.Pattern + ")"

		if k.Repeat {
			capture += "(?:" + prefix + capture + ")*"
		}

		if k.Optional {
			capture = "(?:" + prefix + "(?P<" + name + ">" + capture + "))?"
		} else {
			capture = prefix + "(?P<" + name + ">" + capture + ")"
		}

		src.WriteString(capture)
		keys = append(keys, k)
		groups = append(groups, name)
	}

	route := src.String()
	endsWithDelimiter := strings.HasSuffix(route, "/")

	if !opts.Strict && endsWithDelimiter {
		route = strings.TrimSuffix(route, "/")
	}

	switch {
	case opts.End && opts.Strict:
		route += "$"
	case opts.End:
		route += "/?$"
	case opts.Strict && endsWithDelimiter:
		// Prefix match, the pattern already ends on a segment boundary.
	default:
		route += "(?:/.*)?$"
	}

	route = "^" + route
	if !opts.Sensitive {
		route = "(?i)" + route
	}

	re, err := expressions.route(route)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
	}

	m := &Matcher{
		pattern: pattern,
		opts:    opts,
		parts:   parts,
		keys:    keys,
		groups:  make([]int, len(groups)),
		re:      re,
	}

	for i, name := range groups {
		m.groups[i] = re.SubexpIndex(name)
	}

	return m, nil
}

// MustCompile is like Compile but panics if the pattern cannot be parsed.
func MustCompile(pattern string, opts Options) *Matcher {
	m, err := Compile(pattern, opts)
	if err != nil {
		panic(err)
	}
	return m
}

// Pattern returns the source pattern.
func (m *Matcher) Pattern() string {
	return m.pattern
}

// Options returns the options the matcher was compiled with.
func (m *Matcher) Options() Options {
	return m.opts
}

// Keys returns the parameter tokens in pattern order.
func (m *Matcher) Keys() []Key {
	keys := make([]Key, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// String returns the source of the compiled regular expression.
func (m *Matcher) String() string {
	return m.re.String()
}

// Test matches path against the pattern and extracts the captures.
func (m *Matcher) Test(path string) Result {
	idx := m.re.FindStringSubmatchIndex(path)
	if idx == nil {
		return Result{}
	}

	res := Result{
		Matched:  true,
		Keys:     make([]string, len(m.keys)),
		Captures: make([]string, len(m.keys)),
		set:      make([]bool, len(m.keys)),
	}

	for i, k := range m.keys {
		res.Keys[i] = k.Name

		g := m.groups[i]
		start, end := idx[2*g], idx[2*g+1]
		if start < 0 {
			continue
		}
		res.Captures[i] = path[start:end]
		res.set[i] = true
	}

	return res
}

// Generate builds a path from the parameter values. Values are escaped
// per segment; values of repeated and asterisk tokens are split on "/".
// An asterisk accepts an empty value. An empty result is returned as "/".
func (m *Matcher) Generate(params map[string]string) (string, error) {
	var b strings.Builder

	for _, p := range m.parts {
		if p.key == nil {
			b.WriteString(p.literal)
			continue
		}

		k := p.key
		value, ok := params[k.Name]
		if !ok || (value == "" && !k.Asterisk) {
			if k.Optional {
				continue
			}
			return "", fmt.Errorf("%w %q for %q", ErrMissingParameter, k.Name, m.pattern)
		}

		segments := []string{value}
		if k.Repeat || k.Asterisk {
			segments = strings.Split(value, "/")
		}

		for i, s := range segments {
			escaped := url.PathEscape(s)
			if !k.Asterisk && !p.valid.MatchString(escaped) {
				return "", fmt.Errorf("%w: %q = %q does not match %q", ErrInvalidParameter, k.Name, s, k.Pattern)
			}

			switch {
			case i == 0:
				b.WriteString(k.Prefix)
			case k.Asterisk:
				b.WriteByte('/')
			default:
				b.WriteString(k.delimiter())
			}
			b.WriteString(escaped)
		}
	}

	if b.Len() == 0 {
		return "/", nil
	}

	return b.String(), nil
}
