package pathmatch

import (
	"regexp"
	"sync"
)

// exprCache holds compiled expressions by source. A route recompiles its
// pattern before every match attempt, so the set of sources is bounded by
// the registered patterns and their parameter expressions.
type exprCache struct {
	entries sync.Map // source -> *regexp.Regexp
}

var expressions exprCache

// route returns the compiled route expression src.
func (c *exprCache) route(src string) (*regexp.Regexp, error) {
	if v, ok := c.entries.Load(src); ok {
		return v.(*regexp.Regexp), nil
	}

	re, err := regexp.Compile(src)
	if err != nil {
		return nil, err
	}

	v, _ := c.entries.LoadOrStore(src, re)
	return v.(*regexp.Regexp), nil
}

// value returns expr anchored to match a whole parameter value, ignoring
// case unless sensitive.
func (c *exprCache) value(expr string, sensitive bool) (*regexp.Regexp, error) {
	src := "^(?:" + expr + ")$"
	if !sensitive {
		src = "(?i)" + src
	}
	return c.route(src)
}
