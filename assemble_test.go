package narrate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stringhandler/narrate"
)

func TestAssemble(t *testing.T) {
	t.Parallel()

	t.Run("drops blank lines", func(t *testing.T) {
		t.Parallel()
		buf := []*narrate.InternalLine{
			{RawText: "Hello."},
			{RawText: "   "},
			{RawText: "World."},
		}
		out := narrate.Assemble(buf)
		require.Len(t, out, 2)
		assert.Equal(t, "Hello.\n", out[0].Text)
		assert.Equal(t, "World.\n", out[1].Text)
	})

	t.Run("glues adjacent lines without a space when neither side has one", func(t *testing.T) {
		t.Parallel()
		buf := []*narrate.InternalLine{
			{RawText: "Hello", GlueEnd: true},
			{RawText: "World."},
		}
		out := narrate.Assemble(buf)
		require.Len(t, out, 2)
		assert.Equal(t, "Hello", out[0].Text)
		assert.Equal(t, "World.\n", out[1].Text)
	})

	t.Run("glues adjacent lines keeping an authored space", func(t *testing.T) {
		t.Parallel()
		buf := []*narrate.InternalLine{
			{RawText: "Hello ", GlueEnd: true},
			{RawText: "World."},
		}
		out := narrate.Assemble(buf)
		require.Len(t, out, 2)
		assert.Equal(t, "Hello ", out[0].Text)
		assert.Equal(t, "World.\n", out[1].Text)
	})

	t.Run("glue_begin on the following line has the same effect as glue_end", func(t *testing.T) {
		t.Parallel()
		buf := []*narrate.InternalLine{
			{RawText: "Hello"},
			{RawText: "World.", GlueBegin: true},
		}
		out := narrate.Assemble(buf)
		require.Len(t, out, 2)
		assert.Equal(t, "Hello", out[0].Text)
	})

	t.Run("preserves tags per line", func(t *testing.T) {
		t.Parallel()
		buf := []*narrate.InternalLine{
			{RawText: "Hello.", Tags: []string{"mood:tense"}},
		}
		out := narrate.Assemble(buf)
		require.Len(t, out, 1)
		assert.Equal(t, []string{"mood:tense"}, out[0].Tags)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()
		buf := []*narrate.InternalLine{
			{RawText: "Hello ", GlueEnd: true},
			{RawText: "World."},
		}
		first := narrate.Assemble(buf)
		second := narrate.Assemble(buf)
		assert.Equal(t, first, second)
	})
}
