package narrate

import "github.com/google/uuid"

// Prompt is what a caller's turn produces (spec.md §6): either the story is
// finished, or it is suspended at a set of choices with the text emitted so
// far this turn.
type Prompt struct {
	Done    bool
	Choices []Choice
	Lines   []Line
}

// Story is the synchronous driver exposed to embedders (spec.md §4's
// StoryFacade). It owns the StoryGraph for the life of the play session;
// external callers never hold a reference into the graph itself, only into
// Story and the Prompts/Choices it returns.
type Story struct {
	// ID stamps this play session for diagnostic log correlation — not
	// part of the core state machine, just a correlation handle for
	// embedders. The CLI does not use it: it tags its diag.Sink with a
	// session ID of its own, created before the Story exists.
	ID string

	graph  *StoryGraph
	engine *FollowEngine
	sink   DiagSink

	started bool
}

// FromSource parses source with tok (the external LineTokenizer
// collaborator, spec.md §6) and returns a ready-to-Start Story. Parse
// failures are terminal for this source — there is nothing a retry can fix.
func FromSource(source string, tok LineTokenizer, opts ...StoryOption) (*Story, error) {
	cfg := storyConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	parser := NewStructuralParser(tok, cfg.sink)
	rootName, knots, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}

	graph := NewStoryGraph(rootName, knots)
	return &Story{
		ID:     uuid.NewString(),
		graph:  graph,
		engine: NewFollowEngine(graph),
		sink:   parser.Sink,
	}, nil
}

// Start begins the play session at the root knot's default stitch. It may
// only be called once per Story.
func (s *Story) Start() (Prompt, error) {
	if s.started {
		return Prompt{}, StartOnStoryInProgressError{}
	}
	s.started = true

	loc, err := s.graph.StartLocation()
	if err != nil {
		return Prompt{}, err
	}
	return s.drive(func(buf *[]*InternalLine) (Outcome, error) {
		return s.engine.Enter(loc, buf)
	})
}

// Resume continues the story after a made choice (or after Start/MoveTo, if
// the engine has more content to walk through before its next suspension —
// calling Resume with nothing pending simply continues the current stack).
func (s *Story) Resume() (Prompt, error) {
	if !s.started {
		return Prompt{}, ResumeBeforeStartError{}
	}
	return s.drive(s.engine.Resume)
}

// MakeChoice records the caller's selection. It must be followed by Resume;
// it does not itself advance the story.
func (s *Story) MakeChoice(index int) error {
	if !s.started {
		return ResumeBeforeStartError{}
	}
	return s.engine.MakeChoice(index)
}

// MoveTo resolves addr against the current location, diverts there, and
// resumes. Unlike the Rust original's ambiguity on this point (not
// documented), this implementation requires the story to already be
// started — see DESIGN.md's Open Question log.
func (s *Story) MoveTo(addr string) (Prompt, error) {
	if !s.started {
		return Prompt{}, ResumeBeforeStartError{}
	}
	resolver := NewAddressResolver(s.graph)
	resolved, err := resolver.Resolve(Reference(addr), s.engine.CurrentLocation())
	if err != nil {
		return Prompt{}, err
	}
	return s.drive(func(buf *[]*InternalLine) (Outcome, error) {
		return s.engine.Enter(resolved.Location, buf)
	})
}

// drive runs step once, then follows any chain of Divert outcomes
// internally (the facade's job per spec.md §2: "follows the divert" is not
// caller-visible — only Done and BranchingChoice are), accumulating output
// into one buffer for the whole turn, and finally runs that buffer through
// Assemble before returning to the caller.
func (s *Story) drive(step func(*[]*InternalLine) (Outcome, error)) (Prompt, error) {
	var buffer []*InternalLine

	outcome, err := step(&buffer)
	if err != nil {
		return Prompt{}, err
	}

	for {
		switch o := outcome.(type) {
		case DoneOutcome:
			return Prompt{Done: true, Lines: Assemble(buffer)}, nil

		case BranchingOutcome:
			return Prompt{Choices: o.Choices, Lines: Assemble(buffer)}, nil

		case DivertOutcome:
			outcome, err = s.engine.Enter(o.Address, &buffer)
			if err != nil {
				return Prompt{}, err
			}

		default:
			return Prompt{}, InternalError{Msg: "follow engine returned an unrecognized Outcome"}
		}
	}
}
