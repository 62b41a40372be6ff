package pathmatch

import (
	"fmt"
	"regexp"
)

// macro holds an expression and its pre-compiled anchored form.
type macro struct {
	pattern string
	matcher *regexp.Regexp
}

// patternMacros maps macro names usable as parameter expressions,
// e.g. /users/:id(int).
var patternMacros = func() map[string]macro {
	raw := map[string]string{
		"uuid":     `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`,
		"int":      `[0-9]+`,
		"float":    `[0-9]*\.?[0-9]+`,
		"slug":     `[a-zA-Z0-9]+(?:-[a-zA-Z0-9]+)*`,
		"alpha":    `[a-zA-Z]+`,
		"alphanum": `[a-zA-Z0-9]+`,
		"date":     `[0-9]{4}-[0-9]{2}-[0-9]{2}`,
		"hex":      `[0-9a-fA-F]+`,
	}

	m := make(map[string]macro, len(raw))
	for name, pattern := range raw {
		m[name] = macro{
			pattern: pattern,
			matcher: regexp.MustCompile(fmt.Sprintf("^(?:%s)$", pattern)),
		}
	}

	return m
}()

// expandMacro returns the expression and its anchored matcher for a macro
// name. Unknown names are returned unchanged with a nil matcher and the
// caller compiles them.
func expandMacro(pattern string) (string, *regexp.Regexp) {
	if m, ok := patternMacros[pattern]; ok {
		return m.pattern, m.matcher
	}

	return pattern, nil
}
