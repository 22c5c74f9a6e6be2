package realize

import (
	"reflect"

	"github.com/typstlab/layoutcore/content"
)

// wrapLocal re-attaches an entry's residual local styles to its content,
// the Go shape of the original StyleVec::to_vec step that turns each
// (Content, local Styles) pair back into a single styled Content.
func wrapLocal(e content.StyledEntry) *content.Content {
	if e.Local.IsEmpty() {
		return e.Content
	}
	return content.WithStyles(e.Content, e.Local, e.Content.Span)
}

func wrapAll(entries []content.StyledEntry) []*content.Content {
	out := make([]*content.Content, len(entries))
	for i, e := range entries {
		out[i] = wrapLocal(e)
	}
	return out
}

// docBuilder accepts pagebreaks and pages into a run of page-level
// content, the root of a document.
type docBuilder struct {
	pages    *content.StyleVecBuilder
	keepNext bool
}

func newDocBuilder() *docBuilder {
	return &docBuilder{pages: content.NewStyleVecBuilder(), keepNext: true}
}

func (b *docBuilder) accept(c *content.Content, chain *content.StyleChain) bool {
	if pb, ok := c.Payload.(*content.PagebreakElement); ok {
		b.keepNext = !pb.IsWeak(chain)
		return true
	}
	if _, ok := c.Payload.(*content.PageElement); ok {
		b.pages.Push(c, chain)
		b.keepNext = false
		return true
	}
	return false
}

// flowBuilder accepts block-level content into a flow, wrapping each
// accepted block with its above/below spacing and, for a tight list
// immediately following non-parbreak content, a leading-sized spacer.
type flowBuilder struct {
	inner           *content.BehavedBuilder
	lastWasParbreak bool
}

func newFlowBuilder() *flowBuilder {
	return &flowBuilder{inner: content.NewBehavedBuilder()}
}

func (b *flowBuilder) isEmpty() bool { return b.inner.IsEmpty() }

func (b *flowBuilder) accept(c *content.Content, chain *content.StyleChain) bool {
	if _, ok := c.Payload.(*content.ParbreakElement); ok {
		b.lastWasParbreak = true
		return true
	}

	lastWasParbreak := b.lastWasParbreak
	b.lastWasParbreak = false

	switch c.Payload.(type) {
	case *content.VerticalSpacingElement, *content.ColumnBreakElement, *content.MetadataElement:
		b.inner.Push(c, chain)
		return true
	}

	if !c.CanBlockLayout() {
		return false
	}

	tight := false
	switch e := c.Payload.(type) {
	case *content.ListElement:
		tight = e.Tight
	case *content.EnumElement:
		tight = e.Tight
	case *content.TermsElement:
		tight = e.Tight
	}

	if !lastWasParbreak && tight {
		leading := chain.GetFloat("par", "leading", 0)
		spacer := content.Leaf(&content.VerticalSpacingElement{Amount: leading}, c.Span)
		b.inner.Push(spacer, chain)
	}

	above := chain.GetFloat("block", "above", 0)
	below := chain.GetFloat("block", "below", 0)
	b.inner.Push(content.Leaf(&content.VerticalSpacingElement{Amount: above}, c.Span), chain)
	b.inner.Push(c, chain)
	b.inner.Push(content.Leaf(&content.VerticalSpacingElement{Amount: below}, c.Span), chain)
	return true
}

func (b *flowBuilder) finish() (*content.Content, *content.StyleChain) {
	entries, shared := b.inner.Finish()
	flow := &content.FlowElement{Children: wrapAll(entries)}
	return content.Leaf(flow, content.Detached), shared
}

// parBuilder accepts inline content into a paragraph.
type parBuilder struct {
	inner *content.BehavedBuilder
}

func newParBuilder() *parBuilder {
	return &parBuilder{inner: content.NewBehavedBuilder()}
}

func (b *parBuilder) isEmpty() bool { return b.inner.IsEmpty() }

func (b *parBuilder) accept(c *content.Content, chain *content.StyleChain) bool {
	if _, ok := c.Payload.(*content.MetadataElement); ok {
		if !b.inner.IsBasicallyEmpty() {
			b.inner.Push(c, chain)
			return true
		}
		return false
	}

	switch e := c.Payload.(type) {
	case *content.SpaceElement, *content.TextElement, *content.HorizontalSpacingElement,
		*content.LinebreakElement, *content.SmartQuoteElement, *content.InlineBoxElement:
		b.inner.Push(c, chain)
		return true
	case *content.EquationElement:
		if !e.Block {
			b.inner.Push(c, chain)
			return true
		}
	}

	return false
}

func (b *parBuilder) finish() (*content.Content, *content.StyleChain) {
	entries, shared := b.inner.Finish()
	par := &content.ParagraphElement{Children: wrapAll(entries)}
	return content.Leaf(par, content.Detached), shared
}

// stagedItem is trailing content staged by a ListBuilder while it is
// still unclear whether the content belongs to the list (a space or
// parbreak immediately after the last item, possibly followed by
// another item of the same kind).
type stagedItem struct {
	content *content.Content
	chain   *content.StyleChain
}

// listBuilder accepts list/enum/term items of one consistent kind,
// staging intervening spaces and parbreaks until either another item of
// the same kind arrives (staged content is discarded) or the list is
// interrupted (staged parbreaks are replayed after the list and staged
// spaces are dropped; see the driver's interruptList). tight flips
// to false the moment a parbreak is staged, whether or not the list goes
// on to accept another item, so a trailing parbreak still marks a
// single-item list as loose once it is interrupted.
type listBuilder struct {
	items  *content.StyleVecBuilder
	tight  bool
	staged []stagedItem
}

func newListBuilder() *listBuilder {
	return &listBuilder{items: content.NewStyleVecBuilder(), tight: true}
}

func (b *listBuilder) itemsEmpty() bool { return b.items.IsEmpty() }

func (b *listBuilder) accept(c *content.Content, chain *content.StyleChain) bool {
	if !b.items.IsEmpty() {
		switch c.Payload.(type) {
		case *content.ParbreakElement:
			b.tight = false
			b.staged = append(b.staged, stagedItem{content: c, chain: chain})
			return true
		case *content.SpaceElement:
			b.staged = append(b.staged, stagedItem{content: c, chain: chain})
			return true
		}
	}

	if !isListItemKind(c.Payload) {
		return false
	}
	if first := b.items.First(); first != nil && reflect.TypeOf(first.Payload) != reflect.TypeOf(c.Payload) {
		return false
	}

	b.items.Push(c, chain)
	b.staged = nil
	return true
}

func isListItemKind(p content.Payload) bool {
	switch p.(type) {
	case *content.ListItemElement, *content.EnumItemElement, *content.TermItemElement:
		return true
	default:
		return false
	}
}

// takeStaged empties and returns the staged trailing content, for the
// driver to replay once the list itself has been committed.
func (b *listBuilder) takeStaged() []stagedItem {
	s := b.staged
	b.staged = nil
	return s
}

func (b *listBuilder) finish() (*content.Content, *content.StyleChain) {
	entries, shared := b.items.Finish()
	if len(entries) == 0 {
		return content.Leaf(&content.ListElement{Tight: b.tight}, content.Detached), shared
	}

	switch entries[0].Content.Payload.(type) {
	case *content.ListItemElement:
		items := make([]*content.ListItemElement, len(entries))
		for i, e := range entries {
			item := e.Content.Payload.(*content.ListItemElement)
			items[i] = &content.ListItemElement{Body: styleBody(item.Body, e.Local)}
		}
		return content.Leaf(&content.ListElement{Items: items, Tight: b.tight}, content.Detached), shared

	case *content.EnumItemElement:
		items := make([]*content.EnumItemElement, len(entries))
		for i, e := range entries {
			item := e.Content.Payload.(*content.EnumItemElement)
			items[i] = &content.EnumItemElement{Body: styleBody(item.Body, e.Local), Number: item.Number}
		}
		return content.Leaf(&content.EnumElement{Items: items, Tight: b.tight}, content.Detached), shared

	default:
		items := make([]*content.TermItemElement, len(entries))
		for i, e := range entries {
			item := e.Content.Payload.(*content.TermItemElement)
			items[i] = &content.TermItemElement{
				Term:        styleBody(item.Term, e.Local),
				Description: styleBody(item.Description, e.Local),
			}
		}
		return content.Leaf(&content.TermsElement{Items: items, Tight: b.tight}, content.Detached), shared
	}
}

// styleBody re-wraps a list item's body/term/description with the
// item's residual local styles, mirroring styled_with_map in
// ListBuilder::finish.
func styleBody(body *content.Content, local *content.Styles) *content.Content {
	if body == nil || local.IsEmpty() {
		return body
	}
	return content.WithStyles(body, local, body.Span)
}
