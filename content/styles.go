package content

// MarkerKind names the scope-defining element kinds whose set rules the
// driver's interrupt_style must detect interruptions for.
type MarkerKind int

const (
	MarkerNone MarkerKind = iota
	MarkerDocument
	MarkerPage
	MarkerPar
	MarkerAlign
	MarkerList
	MarkerEnum
	MarkerTerms
)

// StyleRule is a single pushed property assignment: "property Prop of
// element Kind is set to Value". Kind/Prop are looked up by StyleChain.Get;
// Marker, when non-zero, additionally means this rule interrupts the
// corresponding scope and should be reported at Span if that scope is
// invalid at the point the rule is pushed.
type StyleRule struct {
	Kind   string
	Prop   string
	Value  any
	Marker MarkerKind
	Span   Span
}

// Styles is one level of a style chain: the set of rules pushed together
// by a single set-rule application or styled-wrapper. Matches
// eval.Styles (a flat rule list), trimmed to what this core needs to
// resolve properties and detect interruptions.
type Styles struct {
	Rules []StyleRule
}

// NewStyles builds a Styles value from the given rules.
func NewStyles(rules ...StyleRule) *Styles {
	return &Styles{Rules: rules}
}

// IsEmpty reports whether this level carries no rules.
func (s *Styles) IsEmpty() bool {
	return s == nil || len(s.Rules) == 0
}

// Interruption reports whether this (single, local) style level sets any
// property belonging to the given marker scope, returning the span of
// the first such rule. This is the local-only query interrupt_style
// uses — it never walks the rest of the chain.
func (s *Styles) Interruption(marker MarkerKind) (Span, bool) {
	if s == nil {
		return Detached, false
	}
	for _, r := range s.Rules {
		if r.Marker == marker {
			return r.Span, true
		}
	}
	return Detached, false
}

// StyleChain is a persistent, immutably-shared stack of Styles levels,
// resolved nearest-wins. Extending a chain is O(1) and never mutates an
// existing chain.
type StyleChain struct {
	styles *Styles
	parent *StyleChain
}

// Empty is the chain with no pushed styles.
var Empty = (*StyleChain)(nil)

// NewChain wraps a single Styles level with no parent.
func NewChain(styles *Styles) *StyleChain {
	return &StyleChain{styles: styles}
}

// Chain extends the receiver with an additional, more specific level of
// styles. A nil or empty level returns the receiver unchanged so empty
// styled-wrappers never grow the chain.
func (s *StyleChain) Chain(styles *Styles) *StyleChain {
	if styles.IsEmpty() {
		return s
	}
	return &StyleChain{styles: styles, parent: s}
}

// IsEmpty reports whether the chain (at any level) carries no rules.
func (s *StyleChain) IsEmpty() bool {
	for c := s; c != nil; c = c.parent {
		if !c.styles.IsEmpty() {
			return false
		}
	}
	return true
}

// Depth returns the number of levels in the chain.
func (s *StyleChain) Depth() int {
	n := 0
	for c := s; c != nil; c = c.parent {
		n++
	}
	return n
}

// Get resolves a property, walking from innermost to outermost and
// returning the first match.
func (s *StyleChain) Get(kind, prop string) (any, bool) {
	for c := s; c != nil; c = c.parent {
		if c.styles == nil {
			continue
		}
		for i := len(c.styles.Rules) - 1; i >= 0; i-- {
			r := c.styles.Rules[i]
			if r.Kind == kind && r.Prop == prop {
				return r.Value, true
			}
		}
	}
	return nil, false
}

// GetWithDefault resolves a property, falling back to def when unset
// anywhere in the chain.
func (s *StyleChain) GetWithDefault(kind, prop string, def any) any {
	if v, ok := s.Get(kind, prop); ok {
		return v
	}
	return def
}

// GetBool is a typed convenience wrapper over Get.
func (s *StyleChain) GetBool(kind, prop string, def bool) bool {
	v := s.GetWithDefault(kind, prop, def)
	if b, ok := v.(bool); ok {
		return b
	}
	return def
}

// GetFloat is a typed convenience wrapper over Get.
func (s *StyleChain) GetFloat(kind, prop string, def float64) float64 {
	v := s.GetWithDefault(kind, prop, def)
	if f, ok := v.(float64); ok {
		return f
	}
	return def
}

// commonPrefix returns the deepest StyleChain node shared by a and b —
// the same shape as the classic "intersection of two linked lists"
// problem, since chain nodes are shared immutably and therefore safe to
// compare by identity.
func commonPrefix(a, b *StyleChain) *StyleChain {
	da, db := a.Depth(), b.Depth()
	for da > db {
		a = a.parent
		da--
	}
	for db > da {
		b = b.parent
		db--
	}
	for a != b {
		a = a.parent
		b = b.parent
	}
	return a
}

// SharedPrefix returns the deepest chain shared by every chain in chains.
// Used by StyleVecBuilder.Finish to compute the shared-prefix chain that
// BehavedBuilder.Finish returns alongside its residual entries.
func SharedPrefix(chains []*StyleChain) *StyleChain {
	if len(chains) == 0 {
		return Empty
	}
	shared := chains[0]
	for _, c := range chains[1:] {
		shared = commonPrefix(shared, c)
	}
	return shared
}

// residual collects the rules pushed between shared (exclusive) and
// chain (inclusive), in root-to-leaf order, merged into a single Styles
// value. This is the "residual local overrides" each BehavedBuilder
// entry retains after Finish computes the shared prefix.
func residual(chain, shared *StyleChain) *Styles {
	var levels []*Styles
	for c := chain; c != shared; c = c.parent {
		if c == nil {
			break
		}
		if !c.styles.IsEmpty() {
			levels = append(levels, c.styles)
		}
	}
	merged := &Styles{}
	for i := len(levels) - 1; i >= 0; i-- {
		merged.Rules = append(merged.Rules, levels[i].Rules...)
	}
	return merged
}
