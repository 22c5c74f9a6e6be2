package content

// Payload is the marker interface every concrete element kind (text,
// space, list item, paragraph, ...) implements. It carries no methods of
// its own; it exists so Content.Payload is typed without the core having
// to know every kind that exists outside of it.
type Payload interface {
	isPayload()
}

// RootLayoutable is implemented by payload kinds that can be laid out
// into a full Document (one frame per page). Only DocumentElement
// implements it within this core; collaborators outside the core may
// attach it to their own kinds too.
type RootLayoutable interface {
	IsRootLayoutable()
}

// BlockLayoutable is implemented by payload kinds that can be laid out
// into a Fragment (one frame per region): paragraphs, lists, shapes,
// generic blocks, block equations, and so on.
type BlockLayoutable interface {
	IsBlockLayoutable()
}

// MathLayoutable is implemented by payload kinds that carry mathematical
// content not yet wrapped in an equation. The driver auto-wraps these
// (see the realize package's builder.accept, step 1 of the acceptance
// algorithm).
type MathLayoutable interface {
	IsMathLayoutable()
}

// Content is the universal tree node. A single value is exactly one of:
//
//   - a leaf carrying a Payload (e.g. a TextElement),
//   - a Sequence of children,
//   - a Styled wrapper pairing an inner node with locally pushed styles.
//
// Exactly one of Payload, Sequence, or Styled is set; the others are the
// zero value. ToStyled, ToSequence, and the capability query Has below
// are the shape queries callers use to distinguish the three cases.
type Content struct {
	Payload  Payload
	Sequence []*Content
	Styled   *StyledNode
	Span     Span
}

// StyledNode pairs an inner content node with the local style map pushed
// immediately above it.
type StyledNode struct {
	Inner *Content
	Local *Styles
}

// Leaf builds a Content node wrapping a single payload.
func Leaf(p Payload, span Span) *Content {
	return &Content{Payload: p, Span: span}
}

// Seq builds a Content node representing a sequence of children.
func Seq(children []*Content, span Span) *Content {
	return &Content{Sequence: children, Span: span}
}

// WithStyles wraps inner content with a locally pushed style map.
func WithStyles(inner *Content, local *Styles, span Span) *Content {
	return &Content{Styled: &StyledNode{Inner: inner, Local: local}, Span: span}
}

// ToStyled reports whether this node is a styled wrapper, returning its
// inner node and local style map.
func (c *Content) ToStyled() (inner *Content, local *Styles, ok bool) {
	if c == nil || c.Styled == nil {
		return nil, nil, false
	}
	return c.Styled.Inner, c.Styled.Local, true
}

// ToSequence reports whether this node is a sequence, returning its
// children.
func (c *Content) ToSequence() ([]*Content, bool) {
	if c == nil || c.Sequence == nil {
		return nil, false
	}
	return c.Sequence, true
}

// Has reports whether the content's payload satisfies the given
// capability predicate. Callers type-assert the payload directly
// (content.Has(func(p Payload) bool { _, ok := p.(RootLayoutable); return ok })),
// but the three capability-specific helpers below cover the cases the
// driver actually needs.
func (c *Content) Has(capable func(Payload) bool) bool {
	if c == nil || c.Payload == nil {
		return false
	}
	return capable(c.Payload)
}

// CanRootLayout reports whether this leaf's payload is RootLayoutable.
func (c *Content) CanRootLayout() bool {
	return c.Has(func(p Payload) bool { _, ok := p.(RootLayoutable); return ok })
}

// CanBlockLayout reports whether this leaf's payload is BlockLayoutable.
func (c *Content) CanBlockLayout() bool {
	return c.Has(func(p Payload) bool { _, ok := p.(BlockLayoutable); return ok })
}

// CanMathLayout reports whether this leaf's payload is MathLayoutable.
func (c *Content) CanMathLayout() bool {
	return c.Has(func(p Payload) bool { _, ok := p.(MathLayoutable); return ok })
}

// Kind returns the payload's display name, used in "<kind> is not
// allowed here" diagnostics. Driven by a method on Payload instead of a
// type switch, so new kinds defined outside this package still report a
// sensible name.
func (c *Content) Kind() string {
	if c == nil || c.Payload == nil {
		if c != nil && c.Sequence != nil {
			return "sequence"
		}
		if c != nil && c.Styled != nil {
			return "styled"
		}
		return "none"
	}
	if named, ok := c.Payload.(interface{ Kind() string }); ok {
		return named.Kind()
	}
	return "element"
}
