package narrate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stringhandler/narrate"
)

func TestBuildSequence_PlainLines(t *testing.T) {
	t.Parallel()
	lines := []narrate.TaggedLineKind{
		narrate.NewTaggedLineKind(narrate.TextLineKind{Line: &narrate.InternalLine{RawText: "One."}}, 1),
		narrate.NewTaggedLineKind(narrate.TextLineKind{Line: &narrate.InternalLine{RawText: "Two."}}, 2),
	}
	node, pos, err := narrate.BuildSequence(lines, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, pos)
	seq, ok := node.(narrate.SequenceNode)
	require.True(t, ok)
	require.Len(t, seq.Children, 2)
}

func TestBuildSequence_Divert(t *testing.T) {
	t.Parallel()
	lines := []narrate.TaggedLineKind{
		narrate.NewTaggedLineKind(narrate.DivertLineKind{Target: "chapter_two"}, 1),
	}
	node, _, err := narrate.BuildSequence(lines, 0, 0)
	require.NoError(t, err)
	seq := node.(narrate.SequenceNode)
	require.Len(t, seq.Children, 1)
	line := seq.Children[0].(narrate.LineNode)
	assert.Equal(t, narrate.Reference("chapter_two"), line.Line.Divert)
}

func TestBuildSequence_GatherEndsAnEnclosingChoiceBody(t *testing.T) {
	t.Parallel()
	// Depth-1 choice body ends when a depth-0 gather appears.
	lines := []narrate.TaggedLineKind{
		narrate.NewTaggedLineKind(narrate.TextLineKind{Line: &narrate.InternalLine{RawText: "Inside the branch."}}, 1),
		narrate.NewTaggedLineKind(narrate.GatherLineKind{Line: &narrate.InternalLine{RawText: "Back together."}, Depth: 0}, 2),
	}
	node, pos, err := narrate.BuildSequence(lines, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, pos, "should stop before the depth-0 gather")
	seq := node.(narrate.SequenceNode)
	require.Len(t, seq.Children, 1)
}

func TestBuildSequence_ChoiceSet(t *testing.T) {
	t.Parallel()
	north := &narrate.InternalChoice{SelectionText: &narrate.InternalLine{RawText: "Go north"}, DisplayText: &narrate.InternalLine{RawText: "Go north"}}
	south := &narrate.InternalChoice{SelectionText: &narrate.InternalLine{RawText: "Go south"}, DisplayText: &narrate.InternalLine{RawText: "Go south"}}

	lines := []narrate.TaggedLineKind{
		narrate.NewTaggedLineKind(narrate.ChoiceLineKind{Choice: north, Depth: 1}, 1),
		narrate.NewTaggedLineKind(narrate.TextLineKind{Line: &narrate.InternalLine{RawText: "Cold wind."}}, 2),
		narrate.NewTaggedLineKind(narrate.ChoiceLineKind{Choice: south, Depth: 1}, 3),
		narrate.NewTaggedLineKind(narrate.TextLineKind{Line: &narrate.InternalLine{RawText: "Warm sun."}}, 4),
	}
	node, pos, err := narrate.BuildSequence(lines, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, pos)
	seq := node.(narrate.SequenceNode)
	require.Len(t, seq.Children, 1)
	set := seq.Children[0].(narrate.ChoiceSetNode)
	require.Len(t, set.Branches, 2)

	northBody := set.Branches[0].Body.(narrate.SequenceNode)
	require.Len(t, northBody.Children, 1)
	assert.Equal(t, "Cold wind.", northBody.Children[0].(narrate.LineNode).Line.RawText)
}
