package layout

import (
	"fmt"

	"github.com/typstlab/layoutcore/content"
	"github.com/typstlab/layoutcore/realize"
)

// RootLayout realizes content into a normalized document and dispatches
// one placeholder page frame per realized page. Populating a page's
// frame with actual positioned glyphs, shapes, and images is the job of
// the element-kind layout algorithms this package hands off to; here we
// only size the frame from the page's resolved style chain.
//
// Cached through the Cache's root map (lookupRoot/storeRoot) on (content
// identity, engine collaborators, chain identity).
func RootLayout(cache *Cache, engine *realize.Engine, realizer realize.Realizer, c *content.Content, chain *content.StyleChain) (*Document, error) {
	if cache != nil {
		if hit, ok := cache.lookupRoot(engine, c, chain); ok {
			return hit, nil
		}
	}

	realized, shared, err := realize.RealizeRoot(engine, realizer, c, chain)
	if err != nil {
		return nil, err
	}

	doc, ok := realized.Payload.(*content.DocumentElement)
	if !ok {
		return nil, fmt.Errorf("realize_root did not produce a document")
	}

	pages := make([]*Frame, len(doc.Pages))
	for i, page := range doc.Pages {
		pages[i] = pageFrame(page, shared)
	}
	result := &Document{Pages: pages}

	if cache != nil {
		cache.storeRoot(engine, c, chain, result)
	}
	return result, nil
}

// RegionLayout realizes content into a normalized flow and dispatches a
// single placeholder frame sized to the first region. Breaking a flow
// across further regions is the page/region-splitting algorithm this
// package hands off to, so only one frame is produced here; a
// region-breaking layouter above this dispatch is expected to call back
// in with the remaining regions once it determines a break point.
//
// Cached through the Cache's region map (lookupRegion/storeRegion) on
// (content identity, engine collaborators, chain identity, regions
// identity).
func RegionLayout(cache *Cache, engine *realize.Engine, realizer realize.Realizer, c *content.Content, chain *content.StyleChain, regions *Regions) (*Fragment, error) {
	if cache != nil {
		if hit, ok := cache.lookupRegion(engine, c, chain, regions); ok {
			return hit, nil
		}
	}

	_, shared, err := realize.RealizeBlock(engine, realizer, c, chain)
	if err != nil {
		return nil, err
	}
	_ = shared

	frag := NewFragment()
	frag.Push(NewFrame(regions.First().Size))

	if cache != nil {
		cache.storeRegion(engine, c, chain, regions, frag)
	}
	return frag, nil
}

// Measure runs a layout call for its size alone: it brackets the call
// with a save/restore on the stability provider so that any identifiers
// it would otherwise have minted (counters, labels) are rolled back once
// the speculative measurement is discarded.
func Measure(engine *realize.Engine, fn func() (*Fragment, error)) (*Fragment, error) {
	if engine.Provider == nil {
		return fn()
	}
	mark := engine.Provider.Save()
	frag, err := fn()
	engine.Provider.Restore(mark)
	return frag, err
}

// pageFrame builds a placeholder frame for one realized page, sized from
// the page's own local styles chained onto the document's shared chain,
// falling back to an unresolved zero size when neither configures one.
func pageFrame(page *content.Content, shared *content.StyleChain) *Frame {
	chain := shared
	if _, local, ok := page.ToStyled(); ok {
		chain = shared.Chain(local)
	}
	width := chain.GetFloat("page", "width", 0)
	height := chain.GetFloat("page", "height", 0)
	return NewFrame(Size{Width: Abs(width), Height: Abs(height)})
}
