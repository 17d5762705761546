package cssbuilder

import (
	"strings"
)

// implements the rendering operation Selector -> string

// String renders the selector. Fragments appear in canonical order
// regardless of the order they were added: elements, then `#`-prefixed
// ids, `.`-prefixed classes, attribute clauses verbatim, `:`-prefixed
// pseudo-classes and `::`-prefixed pseudo-elements. A combined selector
// returns the string precomputed by Combine.
func (s Selector) String() string {
	if s.rank == kindCombined {
		return s.combined
	}

	var b strings.Builder
	for _, e := range s.elements {
		b.WriteString(e)
	}
	writeGroup(&b, "#", s.ids)
	writeGroup(&b, ".", s.classes)
	for _, a := range s.attrs {
		b.WriteString(a)
	}
	writeGroup(&b, ":", s.pseudoClasses)
	writeGroup(&b, "::", s.pseudoElements)
	return b.String()
}

// writeGroup writes each fragment in seq preceded by prefix.
func writeGroup(b *strings.Builder, prefix string, seq []string) {
	for _, v := range seq {
		b.WriteString(prefix)
		b.WriteString(v)
	}
}
