// Package content defines the universal content tree and the style chain
// that layout preparation operates over.
//
// This reworks the eval.Content / eval.StyleChain idiom (see
// eval/elements.go, eval/list.go, eval/style_chain.go), scoped down to
// the data model a realization core actually needs: a tagged tree node,
// a persistent style chain, and the capability queries the driver uses
// to route content between scopes.
package content

import "fmt"

// Span identifies the source location an element or diagnostic stems
// from. It is a small, copyable, comparable value — the core never
// allocates one, only carries and forwards whatever span arrived on the
// incoming Content.
type Span struct {
	File  string
	Start int
	End   int
}

// Detached is the zero Span, used for synthesized content that has no
// direct source location (e.g. a container built by a scope builder).
var Detached = Span{}

// IsDetached reports whether the span carries no source location.
func (s Span) IsDetached() bool {
	return s == Detached
}

func (s Span) String() string {
	if s.IsDetached() {
		return "<detached>"
	}
	return fmt.Sprintf("%s:%d-%d", s.File, s.Start, s.End)
}
