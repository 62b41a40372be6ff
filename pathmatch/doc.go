// Package pathmatch compiles route patterns into matchers that test a path
// and extract its parameters, and generate paths back from parameter values.
//
// # Patterns
//
// Literal text matches itself. Parameters are written with a leading colon
// and capture a single segment:
//
//	m := pathmatch.MustCompile("/resource/:id", pathmatch.DefaultOptions())
//	res := m.Test("/resource/foo")
//	res.Params()["id"] // "foo"
//
// A parameter may be followed by a regular expression or a macro name in
// parentheses, and by a modifier:
//
//	/users/:id(\d+)      digits only
//	/users/:id(int)      same, using the int macro
//	/posts/:slug?        optional segment
//	/:path*              zero or more segments
//	/files/:path+        one or more segments
//	/static/*            rest of the path, captured as "0"
//
// Available macros: uuid, int, float, slug, alpha, alphanum, date, hex.
//
// # Options
//
// Sensitive enables case sensitive matching, Strict makes the trailing
// slash significant and End anchors the pattern at the end of the path.
// DefaultOptions returns {Sensitive: false, Strict: false, End: true}.
//
// # Generating paths
//
//	path, err := m.Generate(map[string]string{"id": "bar"}) // "/resource/bar"
//
// A missing required parameter returns ErrMissingParameter, a value that
// does not satisfy its expression returns ErrInvalidParameter.
package pathmatch
