package narrate

// Outcome is the sealed result of running the follow engine to its next
// suspension point (spec.md §4.3). It mirrors the source's
// EncounteredEvent, but as an explicit stack machine rather than recursive
// control flow — the redesign spec.md §9 calls mandatory for predictable
// suspension at choice points.
type Outcome interface {
	isOutcome()
}

// DoneOutcome reports the stack ran out: no more content anywhere.
type DoneOutcome struct{}

func (DoneOutcome) isOutcome() {}

// DivertOutcome reports an unconditional jump; the facade re-enters the
// engine at Address.
type DivertOutcome struct {
	Address Location
}

func (DivertOutcome) isOutcome() {}

// BranchingOutcome reports a suspension at a ChoiceSet with at least one
// presentable choice.
type BranchingOutcome struct {
	Choices []Choice
}

func (BranchingOutcome) isOutcome() {}

var (
	_ Outcome = DoneOutcome{}
	_ Outcome = DivertOutcome{}
	_ Outcome = BranchingOutcome{}
)

// frame is one level of the explicit cursor stack: a SequenceNode (every
// stitch root and every choice branch body is one, by construction of
// buildSequence) plus the index of the child about to be processed.
type frame struct {
	seq   SequenceNode
	index int
}

// FollowEngine walks a stitch's content tree, maintaining an explicit stack
// of frames, collecting lines into a buffer, suspending at branching
// choices, and handling diverts across stitches (spec.md §4.3).
type FollowEngine struct {
	graph    *StoryGraph
	resolver *AddressResolver
	filter   *ChoiceFilter

	stack   []frame
	current Location

	// suspendedBranches is the full authored branch list of the ChoiceSet
	// the engine is currently suspended at, nil when not suspended. It is
	// what MakeChoice validates its selection against and what the facade
	// uses to enrich InvalidChoiceError.
	suspendedBranches []*ChoiceBranch

	// pending is the branch MakeChoice selected, awaiting Resume to push
	// its body and continue the run loop.
	pending *ChoiceBranch
}

// NewFollowEngine creates an engine bound to graph.
func NewFollowEngine(graph *StoryGraph) *FollowEngine {
	return &FollowEngine{
		graph:    graph,
		resolver: NewAddressResolver(graph),
		filter:   NewChoiceFilter(graph),
	}
}

// Suspended reports whether the engine is parked at a ChoiceSet awaiting
// MakeChoice.
func (e *FollowEngine) Suspended() bool { return e.suspendedBranches != nil }

// SuspendedBranches returns the authored branch list at the current
// suspension point, or nil if not suspended.
func (e *FollowEngine) SuspendedBranches() []*ChoiceBranch { return e.suspendedBranches }

// CurrentLocation returns the stitch the engine is currently executing (or
// was last suspended/diverted at).
func (e *FollowEngine) CurrentLocation() Location { return e.current }

// Enter starts (or re-starts, after a divert) the engine at loc, clearing
// any previous stack and incrementing the stitch's visit counter — entry
// from outside is the only way a stitch is ever reached in this
// implementation, so the counter always increments on Enter (spec.md
// §4.2's fall-through exemption never arises: see DESIGN.md).
func (e *FollowEngine) Enter(loc Location, buffer *[]*InternalLine) (Outcome, error) {
	stitch, ok := e.graph.Stitch(loc)
	if !ok {
		return nil, InternalError{Msg: "Enter called with an address that does not resolve to a stitch"}
	}
	stitch.NumVisited++
	e.current = loc
	e.suspendedBranches = nil
	e.pending = nil
	e.stack = []frame{{seq: asSequence(stitch.Root), index: 0}}
	return e.run(buffer)
}

// MakeChoice validates selection against the branch list captured at the
// last suspension and records it as pending for the next Resume. It does
// not itself advance the engine (spec.md's facade contract: make_choice
// must be followed by resume).
func (e *FollowEngine) MakeChoice(selection int) error {
	if e.suspendedBranches == nil {
		return MadeChoiceWithoutChoiceError{}
	}
	if selection < 0 || selection >= len(e.suspendedBranches) {
		presented, err := e.filter.AllWithShown(e.suspendedBranches, e.current)
		if err != nil {
			return err
		}
		return InvalidChoiceError{Selection: selection, PresentedChoices: presented}
	}
	e.pending = e.suspendedBranches[selection]
	e.suspendedBranches = nil
	return nil
}

// Resume continues the run loop. If a choice is pending (from MakeChoice)
// it is applied first: the branch's display text is appended, its visit
// counter incremented, and its body pushed on the stack.
func (e *FollowEngine) Resume(buffer *[]*InternalLine) (Outcome, error) {
	if e.pending != nil {
		branch := e.pending
		e.pending = nil
		*buffer = append(*buffer, branch.Data.DisplayText)
		branch.NumVisited++
		e.stack = append(e.stack, frame{seq: asSequence(branch.Body), index: 0})
	}
	return e.run(buffer)
}

// run drives the explicit-stack state machine until it hits a suspension
// point (BranchingOutcome), a divert, or runs out of stack (Done).
func (e *FollowEngine) run(buffer *[]*InternalLine) (Outcome, error) {
	for {
		if len(e.stack) == 0 {
			return DoneOutcome{}, nil
		}
		top := &e.stack[len(e.stack)-1]

		if top.index >= len(top.seq.Children) {
			e.stack = e.stack[:len(e.stack)-1]
			continue
		}

		child := top.seq.Children[top.index]
		switch c := child.(type) {
		case LineNode:
			if c.Line.IsDivert() {
				addr, err := e.resolver.Resolve(c.Line.Divert, e.current)
				if err != nil {
					return nil, err
				}
				e.stack = nil
				return DivertOutcome{Address: addr.Location}, nil
			}
			*buffer = append(*buffer, c.Line)
			top.index++

		case ChoiceSetNode:
			top.index++

			presentable, err := e.filter.Presentable(c.Branches, e.current)
			if err != nil {
				return nil, err
			}
			if len(presentable) > 0 {
				e.suspendedBranches = c.Branches
				return BranchingOutcome{Choices: presentable}, nil
			}

			fallback, err := e.filter.Fallback(c.Branches, e.current)
			if err != nil {
				return nil, err
			}
			if len(fallback) > 0 {
				chosen := c.Branches[fallback[0].Index]
				*buffer = append(*buffer, chosen.Data.DisplayText)
				chosen.NumVisited++
				e.stack = append(e.stack, frame{seq: asSequence(chosen.Body), index: 0})
				continue
			}

			return nil, OutOfChoicesError{Address: e.current}

		default:
			return nil, InternalError{Msg: "unrecognized ContentNode variant in follow engine"}
		}
	}
}

// asSequence asserts node is a SequenceNode. Every stitch root and every
// ChoiceBranch body is built as one by buildSequence; any other shape
// reaching here is an InternalError-worthy invariant breach, surfaced as a
// panic only in this narrow, construction-guaranteed spot rather than
// threading an error through every frame push.
func asSequence(node ContentNode) SequenceNode {
	seq, ok := node.(SequenceNode)
	if !ok {
		panic("narrate: content node is not a sequence; story graph was not built by buildSequence")
	}
	return seq
}
