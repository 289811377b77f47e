package narrate

import "strings"

// ChoiceFilter selects which authored choices are presentable at a given
// point (spec.md §4.5) and evaluates the conditions that gate them
// (spec.md §4.6).
type ChoiceFilter struct {
	resolver *AddressResolver
}

// NewChoiceFilter creates a filter bound to graph via its own resolver.
func NewChoiceFilter(graph *StoryGraph) *ChoiceFilter {
	return &ChoiceFilter{resolver: NewAddressResolver(graph)}
}

// Presentable returns the non-fallback choices a user should see right now,
// in authored order, each carrying its authored index.
func (f *ChoiceFilter) Presentable(branches []*ChoiceBranch, current Location) ([]Choice, error) {
	return f.evaluate(branches, current, false)
}

// Fallback returns the fallback choices available right now. The caller
// auto-selects the first entry when the non-fallback presentable list is
// empty (spec.md §4.3/§4.5); ChoiceFilter itself makes no selection.
func (f *ChoiceFilter) Fallback(branches []*ChoiceBranch, current Location) ([]Choice, error) {
	return f.evaluate(branches, current, true)
}

func (f *ChoiceFilter) evaluate(branches []*ChoiceBranch, current Location, wantFallback bool) ([]Choice, error) {
	var out []Choice
	for i, b := range branches {
		ok, err := f.passes(b, current, wantFallback)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, makeChoice(b, i))
		}
	}
	return out, nil
}

// passes reports whether branch b would be shown in non-fallback
// (wantFallback=false) or fallback (wantFallback=true) mode. Sticky/visit
// filtering applies identically in both modes — a non-sticky fallback that
// has already fired once is exhausted just like any other choice.
func (f *ChoiceFilter) passes(b *ChoiceBranch, current Location, wantFallback bool) (bool, error) {
	for _, cond := range b.Data.Conditions {
		ok, err := evaluateCondition(cond, current, f.resolver)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	if !(b.Data.IsSticky || b.NumVisited == 0) {
		return false, nil
	}
	return b.Data.IsFallback == wantFallback, nil
}

// AllWithShown evaluates every authored branch in non-fallback mode and
// reports whether each would have been shown, regardless of outcome. The
// facade uses this to enrich InvalidChoiceError with the full authored list
// (spec.md §4.5, "Rich error enrichment").
func (f *ChoiceFilter) AllWithShown(branches []*ChoiceBranch, current Location) ([]PresentedChoice, error) {
	out := make([]PresentedChoice, len(branches))
	for i, b := range branches {
		shown, err := f.passes(b, current, false)
		if err != nil {
			return nil, err
		}
		out[i] = PresentedChoice{Shown: shown, Choice: makeChoice(b, i)}
	}
	return out, nil
}

func makeChoice(b *ChoiceBranch, index int) Choice {
	return Choice{
		Text:  strings.TrimSpace(b.Data.SelectionText.Text()),
		Tags:  b.Data.SelectionText.Tags,
		Index: index,
	}
}

// evaluateCondition evaluates a single Condition against the current
// address (spec.md §4.6). Only NumVisits is understood by the core; any
// other Condition implementation is an InternalError since the sealed
// interface guarantees exhaustiveness for types defined in this module.
func evaluateCondition(cond Condition, current Location, resolver *AddressResolver) (bool, error) {
	switch c := cond.(type) {
	case NumVisitsCondition:
		addr, err := resolver.Resolve(c.Target, current)
		if err != nil {
			return false, err
		}
		stitch, ok := resolver.graph.Stitch(addr.Location)
		if !ok {
			return false, InternalError{Msg: "validated address does not resolve to a stitch"}
		}
		v := int32(stitch.NumVisited)
		result := compareOrdering(v, c.RHS, c.Order)
		if c.Negate {
			result = !result
		}
		return result, nil
	default:
		return false, InternalError{Msg: "unrecognized Condition variant"}
	}
}

func compareOrdering(v, rhs int32, order Ordering) bool {
	switch order {
	case OrderingLess:
		return v < rhs
	case OrderingEqual:
		return v == rhs
	case OrderingGreater:
		return v > rhs
	default:
		return false
	}
}
