package lexer

import "golang.org/x/exp/slices"

var keywords = map[string]bool{
	"circle":  true,
	"square":  true,
	"move":    true,
	"reset_m": true,
	"color":   true,
	"for":     true,
	"if":      true,
	"else":    true,
	"end":     true,
	"and":     true,
	"or":      true,
	"true":    true,
	"false":   true,
	"sin":     true,
	"cos":     true,
	"time":    true,
}

// IsKeyword returns true if ident is reserved and can not name a variable.
func IsKeyword(ident string) bool {
	return keywords[ident]
}

// Keywords returns the reserved words in sorted order.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for kw := range keywords {
		out = append(out, kw)
	}
	slices.Sort(out)
	return out
}
