package realize

import "github.com/typstlab/layoutcore/content"

// RealizeRoot turns content into an element capable of root-level
// layout: a DocumentElement wrapping one Page per page run. If the
// content is already root-layoutable and no show rule would rewrite it,
// it is returned unchanged — the short-circuit that lets an
// already-normalized document skip the builder entirely.
func RealizeRoot(engine *Engine, realizer Realizer, c *content.Content, chain *content.StyleChain) (*content.Content, *content.StyleChain, error) {
	if c.CanRootLayout() && !(realizer != nil && realizer.Applicable(c, chain)) {
		return c, chain, nil
	}

	scratch := content.NewScratch()
	b := newBuilder(engine, realizer, scratch, true)

	if err := b.accept(c, chain); err != nil {
		return nil, nil, err
	}
	if err := b.interruptPage(chain, true); err != nil {
		return nil, nil, err
	}

	entries, shared := b.doc.pages.Finish()
	doc := &content.DocumentElement{Pages: wrapAll(entries)}
	return content.Leaf(doc, content.Detached), shared, nil
}

// RealizeBlock turns content into an element capable of block-level
// (region) layout: a FlowElement wrapping the accumulated block
// sequence. Shapes and images (RectangleElement, SquareElement,
// EllipseElement, CircleElement, ImageElement) are intentionally
// re-realized on every call even when already block-layoutable, so their
// containers stay normalized for layout.
func RealizeBlock(engine *Engine, realizer Realizer, c *content.Content, chain *content.StyleChain) (*content.Content, *content.StyleChain, error) {
	if c.CanBlockLayout() && !isReRealizedShape(c.Payload) && !(realizer != nil && realizer.Applicable(c, chain)) {
		return c, chain, nil
	}

	scratch := content.NewScratch()
	b := newBuilder(engine, realizer, scratch, false)

	if err := b.accept(c, chain); err != nil {
		return nil, nil, err
	}
	if err := b.interruptPar(); err != nil {
		return nil, nil, err
	}

	flowContent, shared := b.flow.finish()
	return flowContent, shared, nil
}

func isReRealizedShape(p content.Payload) bool {
	switch p.(type) {
	case *content.RectangleElement, *content.SquareElement, *content.EllipseElement,
		*content.CircleElement, *content.ImageElement:
		return true
	default:
		return false
	}
}
