package narrate

// TaggedLineKind exports taggedLineKind for tree-building tests.
type TaggedLineKind = taggedLineKind

// BuildSequence exports buildSequence for tree-building tests.
func BuildSequence(lines []TaggedLineKind, pos int, minDepth uint8) (ContentNode, int, error) {
	return buildSequence(lines, pos, minDepth)
}

// NewTaggedLineKind builds a TaggedLineKind for a test fixture.
func NewTaggedLineKind(kind LineKind, line int) TaggedLineKind {
	return taggedLineKind{kind: kind, line: line}
}
