package token

import (
	"maps"
	"slices"
)

var keywords = map[string]Kind{
	"fn":     FUNCTION,
	"let":    LET,
	"true":   TRUE,
	"false":  FALSE,
	"if":     IF,
	"else":   ELSE,
	"return": RETURN,
}

// Lookup classifies a scanned identifier run: a keyword kind when text is
// exactly a reserved spelling, IDENT otherwise.
func Lookup(text string) Kind {
	if k, ok := keywords[text]; ok {
		return k
	}
	return IDENT
}

// Keywords returns the reserved spellings in sorted order.
func Keywords() []string {
	return slices.Sorted(maps.Keys(keywords))
}
