package narrate

// ContentNode is the sealed tagged variant that makes up a stitch's content
// tree (spec.md §3). The unexported marker method follows the same pattern
// as Address and InklingError above: it seals the interface so the follow
// engine's type switch in follow.go is guaranteed exhaustive.
type ContentNode interface {
	isContentNode()
}

// LineNode is a leaf: a single inline text line.
type LineNode struct {
	Line *InternalLine
}

func (LineNode) isContentNode() {}

// SequenceNode is an ordered list of child nodes executed in order.
type SequenceNode struct {
	Children []ContentNode
}

func (SequenceNode) isContentNode() {}

// ChoiceSetNode is a branching point: an ordered list of authored branches.
type ChoiceSetNode struct {
	Branches []*ChoiceBranch
}

func (ChoiceSetNode) isContentNode() {}

// Interface compliance checks.
var (
	_ ContentNode = LineNode{}
	_ ContentNode = SequenceNode{}
	_ ContentNode = ChoiceSetNode{}
)

// InternalLine is produced by the LineTokenizer collaborator (spec.md §6).
// The core treats its text as opaque except for the glue flags it inspects
// directly; TextAssembler is the only component that mutates RawText (it
// rewrites the authored text into its normalized, glue-joined form in
// place — see assemble.go).
type InternalLine struct {
	RawText   string
	Tags      []string
	GlueBegin bool
	GlueEnd   bool

	// Divert is non-empty when this line is a divert target rather than
	// ordinary text (spec.md §4.3 point 4). The follow engine checks this
	// before appending the line to the output buffer.
	Divert Reference
}

// Text returns the line's current text, reflecting any in-place rewrite
// TextAssembler has already applied.
func (l *InternalLine) Text() string { return l.RawText }

// IsDivert reports whether this line represents an unconditional jump
// rather than emittable text.
func (l *InternalLine) IsDivert() bool { return l.Divert != "" }

// ChoiceBranch is one authored option within a ChoiceSetNode.
type ChoiceBranch struct {
	Data       *InternalChoice
	Body       ContentNode
	NumVisited uint32
}

// InternalChoice carries everything the choice filter and follow engine need
// about an authored choice (spec.md §3).
type InternalChoice struct {
	SelectionText *InternalLine // shown in the choice menu
	DisplayText   *InternalLine // appended to output when the branch is taken
	Conditions    []Condition
	IsSticky      bool
	IsFallback    bool
}

// Condition is the sealed tagged variant of spec.md §3/§4.6. The core only
// understands NumVisitsCondition; richer expressions are the expression
// collaborator's concern and are out of scope here.
type Condition interface {
	isCondition()
}

// Ordering mirrors Rust's Ordering enum for NumVisits comparisons.
type Ordering int

const (
	OrderingLess Ordering = iota
	OrderingEqual
	OrderingGreater
)

// NumVisitsCondition evaluates Target's visit count against RHS under
// Ordering, optionally negated.
type NumVisitsCondition struct {
	Target Reference
	RHS    int32
	Order  Ordering
	Negate bool
}

func (NumVisitsCondition) isCondition() {}

var _ Condition = NumVisitsCondition{}

// Choice is the caller-visible presentation of one authored ChoiceBranch.
// Index is the branch's position in the authored ChoiceSet, not its
// position in the filtered, presented list — that is how MakeChoice's
// selection argument lines up with the story graph regardless of which
// choices were hidden.
type Choice struct {
	Text  string
	Tags  []string
	Index int
}
