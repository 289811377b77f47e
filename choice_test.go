package narrate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stringhandler/narrate"
)

func lineBranch(text string, sticky, fallback bool, conds ...narrate.Condition) *narrate.ChoiceBranch {
	l := &narrate.InternalLine{RawText: text}
	return &narrate.ChoiceBranch{
		Data: &narrate.InternalChoice{
			SelectionText: l,
			DisplayText:   l,
			Conditions:    conds,
			IsSticky:      sticky,
			IsFallback:    fallback,
		},
		Body: narrate.SequenceNode{},
	}
}

func TestChoiceFilter_Presentable(t *testing.T) {
	t.Parallel()
	graph := testGraph()
	filter := narrate.NewChoiceFilter(graph)
	current := narrate.Location{Knot: "intro", Stitch: "start"}

	t.Run("unconditional non-sticky choices are presentable once", func(t *testing.T) {
		t.Parallel()
		a := lineBranch("Go north", false, false)
		b := lineBranch("Go south", false, false)
		got, err := filter.Presentable([]*narrate.ChoiceBranch{a, b}, current)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Go north", got[0].Text)
		assert.Equal(t, 1, got[1].Index)
	})

	t.Run("a non-sticky choice disappears after it is taken", func(t *testing.T) {
		t.Parallel()
		a := lineBranch("Go north", false, false)
		a.NumVisited = 1
		got, err := filter.Presentable([]*narrate.ChoiceBranch{a}, current)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("a sticky choice keeps appearing", func(t *testing.T) {
		t.Parallel()
		a := lineBranch("Ask again", true, false)
		a.NumVisited = 3
		got, err := filter.Presentable([]*narrate.ChoiceBranch{a}, current)
		require.NoError(t, err)
		require.Len(t, got, 1)
	})

	t.Run("fallback branches are excluded from Presentable", func(t *testing.T) {
		t.Parallel()
		a := lineBranch("", false, true)
		got, err := filter.Presentable([]*narrate.ChoiceBranch{a}, current)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("a condition gates visibility", func(t *testing.T) {
		t.Parallel()
		cond := narrate.NumVisitsCondition{Target: "intro.door", Order: narrate.OrderingGreater, RHS: 0}
		a := lineBranch("Ask about the door", false, false, cond)
		got, err := filter.Presentable([]*narrate.ChoiceBranch{a}, current)
		require.NoError(t, err)
		assert.Empty(t, got)

		stitch, _ := graph.Stitch(narrate.Location{Knot: "intro", Stitch: "door"})
		stitch.NumVisited = 1
		got, err = filter.Presentable([]*narrate.ChoiceBranch{a}, current)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("an invalid target reference propagates as InvalidAddressError", func(t *testing.T) {
		t.Parallel()
		cond := narrate.NumVisitsCondition{Target: "nowhere", Order: narrate.OrderingEqual, RHS: 0}
		a := lineBranch("Ask", false, false, cond)
		_, err := filter.Presentable([]*narrate.ChoiceBranch{a}, current)
		assert.ErrorIs(t, err, narrate.ErrInvalidAddress)
	})
}

func TestChoiceFilter_Fallback(t *testing.T) {
	t.Parallel()
	graph := testGraph()
	filter := narrate.NewChoiceFilter(graph)
	current := narrate.Location{Knot: "intro", Stitch: "start"}

	a := lineBranch("", false, true)
	got, err := filter.Fallback([]*narrate.ChoiceBranch{a}, current)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].Index)
}

func TestChoiceFilter_AllWithShown(t *testing.T) {
	t.Parallel()
	graph := testGraph()
	filter := narrate.NewChoiceFilter(graph)
	current := narrate.Location{Knot: "intro", Stitch: "start"}

	shown := lineBranch("Go north", false, false)
	hidden := lineBranch("Go north again", false, false)
	hidden.NumVisited = 1

	got, err := filter.AllWithShown([]*narrate.ChoiceBranch{shown, hidden}, current)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Shown)
	assert.False(t, got[1].Shown)
}
