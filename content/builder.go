package content

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Entry pairs a pushed content node with the style chain active when it
// was pushed.
type Entry struct {
	Content *Content
	Chain   *StyleChain
}

// StyledEntry is a finished Entry: the content, plus the residual style
// map it carries once the builder's shared prefix has been factored out.
type StyledEntry struct {
	Content *Content
	Local   *Styles
}

// StyleVecBuilder is an append-only builder pairing each pushed content
// node with the style chain active at push time. On Finish, it factors
// out the longest common prefix of all recorded chains as the "shared"
// style, leaving each entry with only its residual local overrides.
// Generalized from a single-kind list to any content.
type StyleVecBuilder struct {
	entries []Entry
}

// NewStyleVecBuilder creates an empty builder.
func NewStyleVecBuilder() *StyleVecBuilder {
	return &StyleVecBuilder{}
}

// Push appends a content node under the given style chain.
func (b *StyleVecBuilder) Push(c *Content, chain *StyleChain) {
	b.entries = append(b.entries, Entry{Content: c, Chain: chain})
}

// IsEmpty reports whether nothing has been pushed.
func (b *StyleVecBuilder) IsEmpty() bool {
	return len(b.entries) == 0
}

// Len reports how many entries have been pushed.
func (b *StyleVecBuilder) Len() int {
	return len(b.entries)
}

// First returns the first pushed content node, or nil if empty. Used by
// ListBuilder to decide whether an incoming item's kind matches the
// kind already being collected.
func (b *StyleVecBuilder) First() *Content {
	if len(b.entries) == 0 {
		return nil
	}
	return b.entries[0].Content
}

// Elements returns the pushed content nodes in order, without styles.
func (b *StyleVecBuilder) Elements() []*Content {
	out := make([]*Content, len(b.entries))
	for i, e := range b.entries {
		out[i] = e.Content
	}
	return out
}

// Finish computes the shared-prefix chain across every pushed entry and
// returns each entry paired with its residual local style map, in push
// order.
func (b *StyleVecBuilder) Finish() ([]StyledEntry, *StyleChain) {
	if len(b.entries) == 0 {
		return nil, Empty
	}
	chains := make([]*StyleChain, len(b.entries))
	for i, e := range b.entries {
		chains[i] = e.Chain
	}
	shared := SharedPrefix(chains)

	out := make([]StyledEntry, len(b.entries))
	for i, e := range b.entries {
		out[i] = StyledEntry{Content: e.Content, Local: residual(e.Chain, shared)}
	}
	return out, shared
}

// BehavedBuilder is a StyleVecBuilder that additionally classifies
// pushed items as structural vs. metadata, exposing IsBasicallyEmpty:
// true when every pushed item is metadata-only or whitespace-only text.
// Metadata elements are the payload kinds implementing the Metadata
// marker interface below.
type BehavedBuilder struct {
	inner StyleVecBuilder
}

// Metadata is implemented by payload kinds that never count toward
// structural emptiness — markers, labels, and similar bookkeeping
// elements that a ParBuilder should not treat as "real" paragraph
// content.
type Metadata interface {
	IsMetadata()
}

// NewBehavedBuilder creates an empty builder.
func NewBehavedBuilder() *BehavedBuilder {
	return &BehavedBuilder{}
}

// Push appends a content node under the given style chain.
func (b *BehavedBuilder) Push(c *Content, chain *StyleChain) {
	b.inner.Push(c, chain)
}

// IsEmpty reports whether nothing has been pushed.
func (b *BehavedBuilder) IsEmpty() bool {
	return b.inner.IsEmpty()
}

// IsBasicallyEmpty reports whether every pushed item is metadata-only or
// whitespace-only text, walked grapheme cluster by grapheme cluster
// (rather than byte or rune) so combining marks and multi-byte spaces
// are measured the same way the rest of the corpus measures text.
func (b *BehavedBuilder) IsBasicallyEmpty() bool {
	for _, e := range b.inner.entries {
		if e.Content == nil || e.Content.Payload == nil {
			return false
		}
		if _, ok := e.Content.Payload.(Metadata); ok {
			continue
		}
		if t, ok := e.Content.Payload.(*TextElement); ok && isGraphemeWhitespace(t.Text) {
			continue
		}
		return false
	}
	return true
}

// isGraphemeWhitespace reports whether every grapheme cluster in s is
// whitespace.
func isGraphemeWhitespace(s string) bool {
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		if strings.TrimSpace(gr.Str()) != "" {
			return false
		}
	}
	return true
}

// Finish factors out the shared prefix and returns the residual entries,
// exactly like StyleVecBuilder.Finish.
func (b *BehavedBuilder) Finish() ([]StyledEntry, *StyleChain) {
	return b.inner.Finish()
}
