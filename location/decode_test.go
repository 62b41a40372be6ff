package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeURI(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "/home", expected: "/home"},
		{name: "space", input: "/a%20b", expected: "/a b"},
		{name: "utf8", input: "/caf%C3%A9", expected: "/café"},
		{name: "keeps reserved slash", input: "/a%2Fb", expected: "/a%2Fb"},
		{name: "keeps reserved hash", input: "/a%23b", expected: "/a%23b"},
		{name: "keeps reserved question mark", input: "/a%3Fb", expected: "/a%3Fb"},
		{name: "lowercase hex", input: "/%7e", expected: "/~"},
		{name: "malformed escape", input: "/a%2", expected: "/a%2"},
		{name: "malformed hex", input: "/a%zz", expected: "/a%zz"},
		{name: "invalid utf8", input: "/%C3", expected: "/%C3"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, decodeURI(tt.input))
		})
	}
}
