package narrate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stringhandler/narrate"
	"github.com/stringhandler/narrate/mock"
)

// textTokenizer builds a LineTokenizer that treats every non-marker line as
// plain text and rejects any line it doesn't recognize as a name.
func textTokenizer() *mock.LineTokenizer {
	return &mock.LineTokenizer{
		ParseLineFn: func(raw string) (narrate.LineKind, error) {
			return narrate.TextLineKind{Line: &narrate.InternalLine{RawText: raw}}, nil
		},
		ReadKnotNameFn: func(raw string) (string, error) {
			return "", narrate.KnotNameErrorNoNamePresent
		},
		ReadStitchNameFn: func(raw string) (string, error) {
			return "", narrate.KnotNameErrorNoNamePresent
		},
	}
}

type diagRecorder struct {
	lines []string
}

func (d *diagRecorder) TODO(text string, line int) {
	d.lines = append(d.lines, text)
}

func TestStructuralParser_Parse_EmptySource(t *testing.T) {
	t.Parallel()
	p := narrate.NewStructuralParser(textTokenizer(), nil)
	_, _, err := p.Parse("   \n\n  \t\n")
	var parseErr *narrate.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.True(t, parseErr.Empty)
}

func TestStructuralParser_Parse_FiltersCommentsAndEchoesTodos(t *testing.T) {
	t.Parallel()
	sink := &diagRecorder{}
	p := narrate.NewStructuralParser(textTokenizer(), sink)

	source := "// a remark\nFirst line.\nTODO: fix this later\nSecond line.\n"
	root, knots, err := p.Parse(source)
	require.NoError(t, err)
	require.Len(t, sink.lines, 1)
	assert.Contains(t, sink.lines[0], "fix this later")

	knot, ok := knots[root]
	require.True(t, ok)
	seq, ok := knot.Stitches[knot.DefaultStitch].Root.(narrate.SequenceNode)
	require.True(t, ok)
	require.Len(t, seq.Children, 2)
	assert.Equal(t, "First line.", seq.Children[0].(narrate.LineNode).Line.RawText)
	assert.Equal(t, "Second line.", seq.Children[1].(narrate.LineNode).Line.RawText)
}

func TestStructuralParser_Parse_NoMarkersIsTheUnnamedRoot(t *testing.T) {
	t.Parallel()
	p := narrate.NewStructuralParser(textTokenizer(), nil)
	root, knots, err := p.Parse("Just one line, no knots or stitches at all.\n")
	require.NoError(t, err)
	assert.Equal(t, narrate.RootName, root)
	require.Contains(t, knots, narrate.RootName)
	knot := knots[narrate.RootName]
	assert.Equal(t, narrate.RootName, knot.DefaultStitch)
	seq := knot.Stitches[narrate.RootName].Root.(narrate.SequenceNode)
	require.Len(t, seq.Children, 1)
}

func TestStructuralParser_Parse_ExplicitKnotAndStitchNames(t *testing.T) {
	t.Parallel()
	tok := &mock.LineTokenizer{
		ParseLineFn: func(raw string) (narrate.LineKind, error) {
			return narrate.TextLineKind{Line: &narrate.InternalLine{RawText: raw}}, nil
		},
		ReadKnotNameFn: func(raw string) (string, error) {
			if raw == "== chapter_one ==" {
				return "chapter_one", nil
			}
			return "", narrate.KnotNameErrorNoNamePresent
		},
		ReadStitchNameFn: func(raw string) (string, error) {
			if raw == "= arrival" {
				return "arrival", nil
			}
			return "", narrate.KnotNameErrorNoNamePresent
		},
	}
	p := narrate.NewStructuralParser(tok, nil)
	source := "== chapter_one ==\n= arrival\nYou arrive.\n"
	root, knots, err := p.Parse(source)
	require.NoError(t, err)
	assert.Equal(t, "chapter_one", root)
	knot := knots["chapter_one"]
	require.NotNil(t, knot)
	assert.Equal(t, "arrival", knot.DefaultStitch)
	assert.Contains(t, knot.Stitches, "arrival")
}

func TestStructuralParser_Parse_InvalidKnotNamePropagates(t *testing.T) {
	t.Parallel()
	wantErr := errors.New("bad identifier")
	tok := &mock.LineTokenizer{
		ParseLineFn: func(raw string) (narrate.LineKind, error) {
			return narrate.TextLineKind{Line: &narrate.InternalLine{RawText: raw}}, nil
		},
		ReadKnotNameFn: func(raw string) (string, error) {
			return "", wantErr
		},
		ReadStitchNameFn: func(raw string) (string, error) {
			return "", narrate.KnotNameErrorNoNamePresent
		},
	}
	p := narrate.NewStructuralParser(tok, nil)
	_, _, err := p.Parse("== 1bad ==\nSome text.\n")

	var parseErr *narrate.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.NotNil(t, parseErr.Knot)
	require.NotNil(t, parseErr.Knot.InvalidName)
	assert.Equal(t, narrate.NameKindKnot, parseErr.Knot.InvalidName.Kind)
	assert.Contains(t, parseErr.Knot.InvalidName.Reason, "bad identifier")
}

func TestStructuralParser_Parse_NamelessKnotMarkerAfterTheFirstGroupIsInternal(t *testing.T) {
	t.Parallel()
	tok := &mock.LineTokenizer{
		ParseLineFn: func(raw string) (narrate.LineKind, error) {
			return narrate.TextLineKind{Line: &narrate.InternalLine{RawText: raw}}, nil
		},
		ReadKnotNameFn: func(raw string) (string, error) {
			if raw == "== chapter_one ==" {
				return "chapter_one", nil
			}
			return "", narrate.KnotNameErrorNoNamePresent
		},
		ReadStitchNameFn: func(raw string) (string, error) {
			return "", narrate.KnotNameErrorNoNamePresent
		},
	}
	p := narrate.NewStructuralParser(tok, nil)
	_, _, err := p.Parse("== chapter_one ==\nSome text.\n==\nMore text.\n")

	var parseErr *narrate.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.NotNil(t, parseErr.Knot)
	assert.Nil(t, parseErr.Knot.InvalidName, "a nameless marker past the first group is an internal contradiction, not a malformed name")
	assert.ErrorIs(t, parseErr.Knot, narrate.ErrInternal)
}

func TestStructuralParser_Parse_NamelessStitchMarkerAfterTheFirstGroupIsInternal(t *testing.T) {
	t.Parallel()
	tok := &mock.LineTokenizer{
		ParseLineFn: func(raw string) (narrate.LineKind, error) {
			return narrate.TextLineKind{Line: &narrate.InternalLine{RawText: raw}}, nil
		},
		ReadKnotNameFn: func(raw string) (string, error) {
			return "", narrate.KnotNameErrorNoNamePresent
		},
		ReadStitchNameFn: func(raw string) (string, error) {
			return "", narrate.KnotNameErrorNoNamePresent
		},
	}
	p := narrate.NewStructuralParser(tok, nil)
	_, _, err := p.Parse("First line.\n=\nSecond line.\n")

	var parseErr *narrate.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.NotNil(t, parseErr.Knot)
	assert.Nil(t, parseErr.Knot.InvalidName)
	assert.ErrorIs(t, parseErr.Knot, narrate.ErrInternal)
}

func TestStructuralParser_Parse_TokenizerFailurePropagatesAsKnotError(t *testing.T) {
	t.Parallel()
	wantErr := errors.New("malformed choice line")
	tok := &mock.LineTokenizer{
		ParseLineFn: func(raw string) (narrate.LineKind, error) {
			if raw == "* broken" {
				return nil, wantErr
			}
			return narrate.TextLineKind{Line: &narrate.InternalLine{RawText: raw}}, nil
		},
		ReadKnotNameFn: func(raw string) (string, error) {
			return "", narrate.KnotNameErrorNoNamePresent
		},
		ReadStitchNameFn: func(raw string) (string, error) {
			return "", narrate.KnotNameErrorNoNamePresent
		},
	}
	p := narrate.NewStructuralParser(tok, nil)
	_, _, err := p.Parse("Intro line.\n* broken\n")

	var parseErr *narrate.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.NotNil(t, parseErr.Knot)
	assert.ErrorIs(t, parseErr.Knot, wantErr)
}
