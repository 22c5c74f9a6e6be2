package layout

import (
	"fmt"
	"sync"

	"github.com/typstlab/layoutcore/content"
	"github.com/typstlab/layoutcore/realize"
)

// Cache memoizes root- and region-layout results keyed by a fingerprint
// of content identity and the collaborator surfaces a call observed
// (world, tracer, introspector, style chain, and — for region layout —
// the regions). Two calls that close over identical observed inputs
// share a result instead of re-running realization.
//
// Guarded the way FileWorld guards its source/file caches: a read takes
// RLock and only a miss escalates to Lock, so independent, non-colliding
// keys never serialize against each other.
type Cache struct {
	mu     sync.RWMutex
	root   map[string]*Document
	region map[string]*Fragment
}

// NewCache creates an empty layout cache.
func NewCache() *Cache {
	return &Cache{
		root:   make(map[string]*Document),
		region: make(map[string]*Fragment),
	}
}

func (ca *Cache) lookupRoot(engine *realize.Engine, c *content.Content, chain *content.StyleChain) (*Document, bool) {
	key := rootKey(engine, c, chain)
	ca.mu.RLock()
	doc, ok := ca.root[key]
	ca.mu.RUnlock()
	return doc, ok
}

func (ca *Cache) storeRoot(engine *realize.Engine, c *content.Content, chain *content.StyleChain, doc *Document) {
	key := rootKey(engine, c, chain)
	ca.mu.Lock()
	ca.root[key] = doc
	ca.mu.Unlock()
}

func (ca *Cache) lookupRegion(engine *realize.Engine, c *content.Content, chain *content.StyleChain, regions *Regions) (*Fragment, bool) {
	key := regionKey(engine, c, chain, regions)
	ca.mu.RLock()
	frag, ok := ca.region[key]
	ca.mu.RUnlock()
	return frag, ok
}

func (ca *Cache) storeRegion(engine *realize.Engine, c *content.Content, chain *content.StyleChain, regions *Regions, frag *Fragment) {
	key := regionKey(engine, c, chain, regions)
	ca.mu.Lock()
	ca.region[key] = frag
	ca.mu.Unlock()
}

// Invalidate drops every cached result. Call when the collaborator
// surfaces (world, introspector) have been mutated out from under an
// otherwise-unchanged content identity, such as between incremental
// recompilations.
func (ca *Cache) Invalidate() {
	ca.mu.Lock()
	defer ca.mu.Unlock()
	ca.root = make(map[string]*Document)
	ca.region = make(map[string]*Fragment)
}

// rootKey and regionKey fingerprint a call by the identity (pointer
// address) of each observed collaborator. Content and style chains are
// arena-allocated and never mutated in place, so pointer identity is a
// sound proxy for value identity within one compilation.
func rootKey(engine *realize.Engine, c *content.Content, chain *content.StyleChain) string {
	return fmt.Sprintf("%p|%p|%p|%p|%p", c, chain, engine.World, engine.Tracer, engine.Introspector)
}

func regionKey(engine *realize.Engine, c *content.Content, chain *content.StyleChain, regions *Regions) string {
	return rootKey(engine, c, chain) + fmt.Sprintf("|%p", regions)
}
