package narrate

// Knot is a named top-level container. Knots are created once at parse time
// and never mutated afterward; only the Stitches they own carry runtime
// state (visit counters).
type Knot struct {
	Name          KnotName
	DefaultStitch StitchName
	Stitches      map[StitchName]*Stitch
}

// Stitch is a named sub-section of a Knot. Root is always a SequenceNode.
// NumVisited is the only mutable field in the static graph topology: it is
// incremented by the follow engine each time the stitch is entered from
// outside (a divert or initial entry), never on fallthrough from a sibling
// stitch in the same knot.
type Stitch struct {
	Name       StitchName
	Root       ContentNode
	NumVisited uint32
}

// StoryGraph holds every knot produced by the structural parser, keyed by
// name. Cross-knot references are represented as Address values resolved
// against this map — never as embedded pointers — so the graph stays a flat,
// acyclic-in-the-Go-value-graph-sense structure even though the narrative it
// describes is freely cyclic (knots diverting to each other and themselves).
type StoryGraph struct {
	RootKnot KnotName
	Knots    map[KnotName]*Knot
}

// NewStoryGraph wraps a root knot name and knot map produced by the
// structural parser into a StoryGraph.
func NewStoryGraph(rootKnot KnotName, knots map[KnotName]*Knot) *StoryGraph {
	return &StoryGraph{RootKnot: rootKnot, Knots: knots}
}

// Stitch looks up a stitch by Location, returning (nil, false) if either the
// knot or the stitch is missing. Callers that already hold a ValidatedAddress
// should never see false here; a false result from a validated address is an
// InternalError at the call site.
func (g *StoryGraph) Stitch(loc Location) (*Stitch, bool) {
	knot, ok := g.Knots[loc.Knot]
	if !ok {
		return nil, false
	}
	stitch, ok := knot.Stitches[loc.Stitch]
	return stitch, ok
}

// StartLocation returns the location the facade enters on Start(): the root
// knot's default stitch.
func (g *StoryGraph) StartLocation() (Location, error) {
	knot, ok := g.Knots[g.RootKnot]
	if !ok {
		return Location{}, InternalError{Msg: "root knot missing from story graph"}
	}
	return Location{Knot: knot.Name, Stitch: knot.DefaultStitch}, nil
}
