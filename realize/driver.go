package realize

import "github.com/typstlab/layoutcore/content"

// builder drives the scope-stack state machine: it walks an arbitrary
// content tree once, dispatching each leaf to the innermost scope that
// will accept it (list, then paragraph, then flow, then page/document),
// flushing ("interrupting") an outer scope only when an incompatible
// element or a style change forces it to close. Mirrors the original
// Builder/DocBuilder/FlowBuilder/ParBuilder/ListBuilder split in
// library/src/layout/mod.rs.
type builder struct {
	engine   *Engine
	realizer Realizer
	scratch  *content.Scratch

	doc  *docBuilder // nil for a block-level (non-root) build
	flow *flowBuilder
	par  *parBuilder
	list *listBuilder
}

func newBuilder(engine *Engine, realizer Realizer, scratch *content.Scratch, top bool) *builder {
	b := &builder{
		engine:   engine,
		realizer: realizer,
		scratch:  scratch,
		flow:     newFlowBuilder(),
		par:      newParBuilder(),
		list:     newListBuilder(),
	}
	if top {
		b.doc = newDocBuilder()
	}
	return b
}

// accept walks one content node into the scope stack. It is the single
// recursive entry point: sequences recurse over their children, styled
// wrappers extend the chain and recurse into their inner node, and a
// show-rule rewrite recurses into its own output — which is what gives
// show-rule application its fixed-point semantics, since the rewritten
// node is re-offered to the exact same dispatch on the next call.
func (b *builder) accept(c *content.Content, chain *content.StyleChain) error {
	if c.CanMathLayout() {
		if _, alreadyEquation := c.Payload.(*content.EquationElement); !alreadyEquation {
			wrapped := b.scratch.Content.Alloc(content.Content{
				Payload: &content.EquationElement{Body: c, Block: false},
				Span:    c.Span,
			})
			c = wrapped
		}
	}

	if inner, local, ok := c.ToStyled(); ok {
		return b.styled(inner, local, chain)
	}

	if children, ok := c.ToSequence(); ok {
		for _, child := range children {
			if err := b.accept(child, chain); err != nil {
				return err
			}
		}
		return nil
	}

	if b.realizer != nil && b.realizer.Applicable(c, chain) {
		realized, err := b.realizer.Realize(b.engine, c, chain)
		if err != nil {
			return err
		}
		stored := b.scratch.Content.Alloc(*realized)
		return b.accept(stored, chain)
	}

	if b.list.accept(c, chain) {
		return nil
	}

	if err := b.interruptList(); err != nil {
		return err
	}
	if b.list.accept(c, chain) {
		return nil
	}

	if b.par.accept(c, chain) {
		return nil
	}

	if err := b.interruptPar(); err != nil {
		return err
	}

	if b.flow.accept(c, chain) {
		return nil
	}

	keep, hasKeep := (*content.StyleChain)(nil), false
	if pb, ok := c.Payload.(*content.PagebreakElement); ok && !pb.IsWeak(chain) {
		keep, hasKeep = chain, true
	}
	if err := b.interruptPage(keep, hasKeep); err != nil {
		return err
	}

	if b.doc != nil && b.doc.accept(c, chain) {
		return nil
	}

	if _, ok := c.Payload.(*content.PagebreakElement); ok {
		return diagErr(c.Span, "pagebreaks are not allowed inside of containers")
	}
	return diagErr(c.Span, "%s is not allowed here", c.Kind())
}

// styled extends the chain with a locally pushed style map, checking for
// scope interruptions both before descending (so a rule that must
// appear before any content is caught immediately) and after returning
// (so a rule whose scope has since closed is caught at its true span).
func (b *builder) styled(inner *content.Content, local *content.Styles, chain *content.StyleChain) error {
	// chain may be the nil Empty chain; Arena.Alloc needs a value to
	// copy, so only route through the arena when there is one.
	var storedOuter *content.StyleChain
	if chain != nil {
		storedOuter = b.scratch.Styles.Alloc(*chain)
	}
	extended := storedOuter.Chain(local)

	if err := b.interruptStyle(local, nil, false); err != nil {
		return err
	}
	if err := b.accept(inner, extended); err != nil {
		return err
	}
	return b.interruptStyle(local, extended, true)
}

// interruptStyle closes whichever scope a newly pushed style level's
// marker rules belong to. hasOuter distinguishes "run before descending"
// (false, outer ignored) from "run after returning, with outer the chain
// now active" (true) — the two call sites in styled — so an
// always-nilable *StyleChain can't be mistaken for "not supplied".
func (b *builder) interruptStyle(local *content.Styles, outer *content.StyleChain, hasOuter bool) error {
	if span, ok := local.Interruption(content.MarkerDocument); ok {
		if b.doc == nil {
			return diagErr(span, "document set rules are not allowed inside of containers")
		}
		if !hasOuter && (!b.flow.isEmpty() || !b.par.isEmpty() || !b.list.itemsEmpty()) {
			return diagErr(span, "document set rules must appear before any content")
		}
	}
	if span, ok := local.Interruption(content.MarkerPage); ok {
		if b.doc == nil {
			return diagErr(span, "page configuration is not allowed inside of containers")
		}
		return b.interruptPage(outer, hasOuter)
	}
	if _, ok := local.Interruption(content.MarkerPar); ok {
		return b.interruptPar()
	}
	if _, ok := local.Interruption(content.MarkerAlign); ok {
		return b.interruptPar()
	}
	if _, ok := local.Interruption(content.MarkerList); ok {
		return b.interruptList()
	}
	if _, ok := local.Interruption(content.MarkerEnum); ok {
		return b.interruptList()
	}
	if _, ok := local.Interruption(content.MarkerTerms); ok {
		return b.interruptList()
	}
	return nil
}

// interruptList flushes any in-progress list, then replays its staged
// trailing content after the finished list. A staged parbreak is
// re-accepted (the flow still needs to record that the following
// content is preceded by a parbreak); a staged space that never
// led into another item is plain trailing whitespace and is dropped,
// since replaying it would otherwise seed a new paragraph containing
// nothing but that space.
func (b *builder) interruptList() error {
	if b.list.itemsEmpty() {
		return nil
	}
	staged := b.list.takeStaged()
	listContent, chain := b.list.finish()
	b.list = newListBuilder()

	if err := b.accept(listContent, chain); err != nil {
		return err
	}
	for _, s := range staged {
		if _, isSpace := s.content.Payload.(*content.SpaceElement); isSpace {
			continue
		}
		if err := b.accept(s.content, s.chain); err != nil {
			return err
		}
	}
	return nil
}

// interruptPar flushes any in-progress list, then any in-progress
// paragraph.
func (b *builder) interruptPar() error {
	if err := b.interruptList(); err != nil {
		return err
	}
	if b.par.isEmpty() {
		return nil
	}
	parContent, chain := b.par.finish()
	b.par = newParBuilder()
	return b.accept(parContent, chain)
}

// interruptPage flushes any in-progress paragraph, then packages
// whatever has accumulated in the flow into a page. hasOuter/outer carry
// a style chain to fall back to if the flow turned out to share no style
// of its own (an otherwise page-less document still gets one page built
// from the top-level style chain); hasOuter distinguishes "no chain
// supplied" from "the supplied chain happens to be empty."
func (b *builder) interruptPage(outer *content.StyleChain, hasOuter bool) error {
	if err := b.interruptPar(); err != nil {
		return err
	}
	if b.doc == nil {
		return nil
	}
	if b.flow.isEmpty() && !(b.doc.keepNext && hasOuter) {
		return nil
	}

	flowContent, shared := b.flow.finish()
	b.flow = newFlowBuilder()

	chain := shared
	if chain.IsEmpty() {
		if hasOuter {
			chain = outer
		} else {
			chain = content.Empty
		}
	}

	page := content.Leaf(&content.PageElement{Flow: flowContent}, content.Detached)
	return b.accept(page, chain)
}
