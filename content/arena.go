package content

// Arena is a single-lifetime bump allocator for owning a batch of values
// for the duration of one call without reference counting. A realize
// call allocates exactly two: one for synthesized Content, one for
// extended StyleChains. Everything Alloc'd from an Arena is valid only
// for the lifetime of the top-level call that created it; no reference
// may escape past that call returning.
type Arena[T any] struct {
	items []*T
}

// NewArena creates an empty arena.
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Alloc stores v and returns a stable pointer to it, valid for the
// arena's lifetime.
func (a *Arena[T]) Alloc(v T) *T {
	p := new(T)
	*p = v
	a.items = append(a.items, p)
	return p
}

// Len reports how many values have been allocated.
func (a *Arena[T]) Len() int {
	return len(a.items)
}

// Scratch bundles the two arenas a single top-level realize call needs:
// one for content synthesized by show-rule realization or by the scope
// builders' packaging steps, one for extended style chains created when
// descending into a styled wrapper.
type Scratch struct {
	Content *Arena[Content]
	Styles  *Arena[StyleChain]
}

// NewScratch creates a fresh pair of arenas for one top-level call.
func NewScratch() *Scratch {
	return &Scratch{Content: NewArena[Content](), Styles: NewArena[StyleChain]()}
}
