// Package realize implements the realization subsystem: the process of
// recursively applying show rules and grouping related content into the
// scope-stack of document, flow, paragraph, and list builders that
// layout needs. It sits between evaluation and layout:
//
//	Content tree → REALIZE → normalized layout tree → Layout
//
// Realization never produces visual output itself; it only reshapes the
// content tree and reports diagnostics for content that cannot appear in
// its context, such as a pagebreak nested inside a container.
package realize

import "github.com/typstlab/layoutcore/content"

// World is the opaque, tracked-read surface a collaborator supplies for
// resolving external resources (fonts, files, packages). The core never
// inspects it; it only threads it through to Realizer implementations.
type World interface{}

// Tracer records diagnostics and informational events raised during
// realization that are not themselves errors.
type Tracer interface {
	Trace(key string)
}

// StabilityMark is an opaque save point returned by StabilityProvider.Save.
type StabilityMark int

// StabilityProvider lets a measuring pass save and restore introspection
// state so that a speculative layout (see layout.Measure) leaves no
// trace once discarded.
type StabilityProvider interface {
	Save() StabilityMark
	Restore(StabilityMark)
}

// Introspector is the opaque, tracked-read surface over already-realized
// document state (for counters, references, and outline queries).
type Introspector interface{}

// Engine bundles the four collaborator surfaces a Realizer needs. The
// core never constructs one; it is supplied by the caller of RealizeRoot
// / RealizeBlock.
type Engine struct {
	World        World
	Tracer       Tracer
	Provider     StabilityProvider
	Introspector Introspector
}

// Realizer is implemented by a collaborator (typically an evaluator
// holding show-rule recipes) that can rewrite a content node under a
// given style chain. Applicable reports whether any such rewrite would
// fire; Realize performs it. The driver calls Applicable before
// accepting an already-root/block-layoutable node unmodified, and calls
// Realize repeatedly (fixed-point) as long as a rewrite keeps firing.
type Realizer interface {
	Applicable(c *content.Content, chain *content.StyleChain) bool
	Realize(engine *Engine, c *content.Content, chain *content.StyleChain) (*content.Content, error)
}
