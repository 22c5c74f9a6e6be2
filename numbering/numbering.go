// Package numbering implements the self-contained numbering-pattern
// engine: parsing a pattern string like "1.a.i" or "(I)" into a sequence
// of counting pieces, and applying it to a run of numbers to produce
// text, cycling the last piece for numbers beyond the pattern's own
// count. Grounded on the original Typst `numbering.rs` (see
// _examples/original_source/library/src/meta/numbering.rs), adapted into
// the pdf.NumberingStyle idiom (pdf/page.go).
package numbering

import (
	"fmt"
	"strings"
)

// Kind is one of the recognized counting-symbol kinds.
type Kind int

const (
	Arabic Kind = iota
	Letter
	Roman
	Symbol
)

// Case is the letter case a rendered piece should use.
type Case int

const (
	Lower Case = iota
	Upper
)

// kindFromChar maps a lowercased counting character to its Kind.
func kindFromChar(c rune) (Kind, bool) {
	switch c {
	case '1':
		return Arabic, true
	case 'a':
		return Letter, true
	case 'i':
		return Roman, true
	case '*':
		return Symbol, true
	default:
		return 0, false
	}
}

// toChar returns the lowercase counting character for a Kind.
func (k Kind) toChar() rune {
	switch k {
	case Arabic:
		return '1'
	case Letter:
		return 'a'
	case Roman:
		return 'i'
	case Symbol:
		return '*'
	default:
		return '?'
	}
}

// piece is one counting symbol of a parsed pattern: the literal text
// repeated before its rendered number, the symbol kind, and the case to
// render it in.
type piece struct {
	prefix string
	kind   Kind
	cas    Case
}

// Pattern is a parsed numbering pattern: prefix/kind/case pieces plus a
// trailing suffix repeated once at the end.
type Pattern struct {
	pieces  []piece
	suffix  string
	trimmed bool
}

// ParsePattern parses a numbering pattern string such as "1.a.i" or
// "(I)". Counting symbols are 1, a, A, i, I, and *; the text between a
// counting symbol and the one before it (or the start of the pattern) is
// that piece's prefix, and everything after the last counting symbol is
// the shared suffix.
func ParsePattern(pattern string) (*Pattern, error) {
	runes := []rune(pattern)
	var pieces []piece
	handled := 0

	for i, c := range runes {
		kind, ok := kindFromChar(toLowerRune(c))
		if !ok {
			continue
		}
		prefix := string(runes[handled:i])
		cas := Lower
		if isUpperRune(c) {
			cas = Upper
		}
		pieces = append(pieces, piece{prefix: prefix, kind: kind, cas: cas})
		handled = i + 1
	}

	if len(pieces) == 0 {
		return nil, fmt.Errorf("invalid numbering pattern: %q", pattern)
	}

	return &Pattern{pieces: pieces, suffix: string(runes[handled:])}, nil
}

// toLowerRune and isUpperRune avoid pulling in unicode.ToLower for the
// handful of ASCII counting letters this package recognizes; patterns
// are expected to be ASCII control characters even though prefixes and
// suffixes may carry arbitrary Unicode.
func toLowerRune(c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func isUpperRune(c rune) bool {
	return c >= 'A' && c <= 'Z'
}

// Pieces reports how many counting symbols this pattern has.
func (p *Pattern) Pieces() int {
	return len(p.pieces)
}

// Trimmed returns a copy of the pattern with its leading prefix and
// trailing suffix suppressed on the first/last piece of Apply's output.
// Supplemented from numbering.rs's `Numbering::trimmed`, used by callers
// such as footnote markers that want bare apply_kth-style output.
func (p *Pattern) Trimmed() *Pattern {
	cp := *p
	cp.trimmed = true
	return &cp
}

// Apply renders a full run of numbers. When more numbers are given than
// the pattern has pieces, the last piece is repeated cyclically for the
// overflow numbers, with its own prefix (or, if that prefix is empty,
// the pattern's suffix) used as the separator before each.
func (p *Pattern) Apply(numbers ...int) string {
	var b strings.Builder
	n := len(numbers)

	for i := 0; i < len(p.pieces) && i < n; i++ {
		pc := p.pieces[i]
		if i > 0 || !p.trimmed {
			b.WriteString(pc.prefix)
		}
		b.WriteString(render(pc.kind, numbers[i], pc.cas))
	}

	if n > len(p.pieces) {
		last := p.pieces[len(p.pieces)-1]
		for i := len(p.pieces); i < n; i++ {
			if last.prefix == "" {
				b.WriteString(p.suffix)
			} else {
				b.WriteString(last.prefix)
			}
			b.WriteString(render(last.kind, numbers[i], last.cas))
		}
	}

	if !p.trimmed {
		b.WriteString(p.suffix)
	}

	return b.String()
}

// ApplyKth renders only the k-th segment (0-indexed) of the pattern for
// a single number: the pattern's first prefix, the k-th-or-cyclically-
// last piece's rendered number, then the pattern's suffix — regardless
// of Trimmed.
func (p *Pattern) ApplyKth(k, number int) string {
	var b strings.Builder
	if len(p.pieces) > 0 {
		b.WriteString(p.pieces[0].prefix)
	}
	var pc piece
	if k < len(p.pieces) {
		pc = p.pieces[k]
	} else if len(p.pieces) > 0 {
		pc = p.pieces[len(p.pieces)-1]
	} else {
		return b.String()
	}
	b.WriteString(render(pc.kind, number, pc.cas))
	b.WriteString(p.suffix)
	return b.String()
}

// String reconstructs the pattern's original textual form.
func (p *Pattern) String() string {
	var b strings.Builder
	for _, pc := range p.pieces {
		b.WriteString(pc.prefix)
		c := pc.kind.toChar()
		if pc.cas == Upper {
			c = toUpperRune(c)
		}
		b.WriteRune(c)
	}
	b.WriteString(p.suffix)
	return b.String()
}

func toUpperRune(c rune) rune {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// Callable renders a numbering function: an arbitrary collaborator-
// supplied mapping from a sequence of numbers to text. Mirrors
// numbering.rs's `Func` arm of the `Numbering` sum type.
type Callable func(numbers ...int) string

// Numbering is a sum of {Pattern, Callable}. Exactly one of Pattern or
// Func is set.
type Numbering struct {
	Pattern *Pattern
	Func    Callable
}

// FromPattern wraps a parsed pattern as a Numbering.
func FromPattern(p *Pattern) Numbering {
	return Numbering{Pattern: p}
}

// FromFunc wraps a callable as a Numbering.
func FromFunc(f Callable) Numbering {
	return Numbering{Func: f}
}

// Apply renders numbers through whichever variant is set: a Pattern is
// applied directly; a Func receives the numbers forwarded verbatim.
func (n Numbering) Apply(numbers ...int) string {
	if n.Pattern != nil {
		return n.Pattern.Apply(numbers...)
	}
	if n.Func != nil {
		return n.Func(numbers...)
	}
	return ""
}

// Trimmed returns a copy of this Numbering with its Pattern's trimmed
// flag set, a no-op for Func-based numberings.
func (n Numbering) Trimmed() Numbering {
	if n.Pattern == nil {
		return n
	}
	return Numbering{Pattern: n.Pattern.Trimmed()}
}
