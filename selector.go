// The cssbuilder package assembles CSS selector strings from typed fragments.
package cssbuilder

import (
	"errors"
)

// the Selector type, and functions for creating them

// fragmentKind orders the fragment kinds by their canonical position
// in a CSS selector.
type fragmentKind int

const (
	kindElement fragmentKind = iota
	kindID
	kindClass
	kindAttribute
	kindPseudoClass
	kindPseudoElement

	// kindCombined sits above every fragment kind, so any fragment
	// added to a combined selector fails the ordering check.
	kindCombined
)

// ErrDuplicateFragment is returned when an element, id or pseudo-element
// fragment is added to a selector that already has one.
var ErrDuplicateFragment = errors.New("Element, id and pseudo-element should not occur more then one time inside the selector")

// ErrSelectorOrder is returned when fragments are added out of canonical
// CSS order.
var ErrSelectorOrder = errors.New("Selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element")

// A Selector is an immutable accumulation of CSS selector fragments.
// Fragment-adding methods return a new value and never modify the
// receiver, so a partially built selector can be shared and branched
// into several derived selectors without coordination.
type Selector struct {
	elements       []string
	ids            []string
	classes        []string
	attrs          []string
	pseudoClasses  []string
	pseudoElements []string

	// rank is the highest fragment kind added so far.
	rank fragmentKind

	// combined holds the prerendered form of a combined selector.
	// When rank is kindCombined the fragment slices above are unused.
	combined string
}

// Element returns a selector with a single element fragment.
func Element(value string) Selector {
	s, _ := Selector{}.Element(value)
	return s
}

// ID returns a selector with a single id fragment.
func ID(value string) Selector {
	s, _ := Selector{}.ID(value)
	return s
}

// Class returns a selector with a single class fragment.
func Class(value string) Selector {
	s, _ := Selector{}.Class(value)
	return s
}

// Attr returns a selector with a single attribute fragment. The value is
// rendered verbatim and is expected to carry its own brackets, as in
// `[href$=".png"]`.
func Attr(value string) Selector {
	s, _ := Selector{}.Attr(value)
	return s
}

// PseudoClass returns a selector with a single pseudo-class fragment.
func PseudoClass(value string) Selector {
	s, _ := Selector{}.PseudoClass(value)
	return s
}

// PseudoElement returns a selector with a single pseudo-element fragment.
func PseudoElement(value string) Selector {
	s, _ := Selector{}.PseudoElement(value)
	return s
}

// Element returns a copy of s with an element fragment appended.
// It fails with ErrDuplicateFragment if s already has one.
func (s Selector) Element(value string) (Selector, error) {
	if len(s.elements) > 0 {
		return Selector{}, ErrDuplicateFragment
	}
	return s.add(kindElement, value)
}

// ID returns a copy of s with an id fragment appended.
// It fails with ErrDuplicateFragment if s already has one.
func (s Selector) ID(value string) (Selector, error) {
	if len(s.ids) > 0 {
		return Selector{}, ErrDuplicateFragment
	}
	return s.add(kindID, value)
}

// Class returns a copy of s with a class fragment appended. Classes may
// repeat; each call accumulates another name.
func (s Selector) Class(value string) (Selector, error) {
	return s.add(kindClass, value)
}

// Attr returns a copy of s with an attribute fragment appended.
func (s Selector) Attr(value string) (Selector, error) {
	return s.add(kindAttribute, value)
}

// PseudoClass returns a copy of s with a pseudo-class fragment appended.
func (s Selector) PseudoClass(value string) (Selector, error) {
	return s.add(kindPseudoClass, value)
}

// PseudoElement returns a copy of s with a pseudo-element fragment
// appended. It fails with ErrDuplicateFragment if s already has one.
func (s Selector) PseudoElement(value string) (Selector, error) {
	if len(s.pseudoElements) > 0 {
		return Selector{}, ErrDuplicateFragment
	}
	return s.add(kindPseudoElement, value)
}

// add appends value to the sequence for kind. It fails with
// ErrSelectorOrder if kind renders before a kind already present.
func (s Selector) add(kind fragmentKind, value string) (Selector, error) {
	if kind < s.rank {
		return Selector{}, ErrSelectorOrder
	}

	out := s
	out.rank = kind
	switch kind {
	case kindElement:
		out.elements = appendCopy(s.elements, value)
	case kindID:
		out.ids = appendCopy(s.ids, value)
	case kindClass:
		out.classes = appendCopy(s.classes, value)
	case kindAttribute:
		out.attrs = appendCopy(s.attrs, value)
	case kindPseudoClass:
		out.pseudoClasses = appendCopy(s.pseudoClasses, value)
	case kindPseudoElement:
		out.pseudoElements = appendCopy(s.pseudoElements, value)
	}
	return out, nil
}

// appendCopy returns a fresh slice holding seq plus value. Appending in
// place could share a backing array with selectors already handed out.
func appendCopy(seq []string, value string) []string {
	out := make([]string, len(seq)+1)
	copy(out, seq)
	out[len(seq)] = value
	return out
}

// Combine joins two built selectors with a combinator token (" ", ">",
// "+" or "~"; the token is used verbatim and not validated). The result
// renders as `first combinator second` with single spaces around the
// combinator, and accepts no further fragments.
func Combine(first Selector, combinator string, second Selector) Selector {
	return Selector{
		rank:     kindCombined,
		combined: first.String() + " " + combinator + " " + second.String(),
	}
}

// Must is a helper that panics if err is non-nil. It allows fragment
// calls known to be valid to be chained:
//
//	s := cssbuilder.Must(cssbuilder.Element("a").Attr(`[href$=".png"]`))
func Must(s Selector, err error) Selector {
	if err != nil {
		panic(err)
	}
	return s
}
