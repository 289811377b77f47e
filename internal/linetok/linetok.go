// Package linetok is the reference LineTokenizer (spec.md §6): it turns one
// already-filtered source line into a narrate.LineKind, following Ink's
// surface syntax. It is grounded on original_source/src/story/parse.rs'
// get_knot_name/get_stitch_identifier/divide_lines_at_marker vocabulary and
// original_source/src/story/process.rs' choice-filtering fields
// (is_sticky/is_fallback/num_visited), supplemented here with concrete
// textual grammar the distilled spec leaves to the collaborator.
package linetok

import (
	"strings"

	"github.com/stringhandler/narrate"
)

// Tokenizer is stateless: every raw line is self-describing.
type Tokenizer struct{}

// New returns a ready-to-use Tokenizer.
func New() *Tokenizer { return &Tokenizer{} }

var _ narrate.LineTokenizer = (*Tokenizer)(nil)

// ParseLine classifies one raw, already-filtered line:
//
//	-> target            divert
//	-, --, ...  text      gather, depth = marker run length
//	*, **, ...  text      choice, depth = marker run length, non-sticky
//	+, ++, ...  text      choice, depth = marker run length, sticky
//	anything else         ordinary text
func (t *Tokenizer) ParseLine(raw string) (narrate.LineKind, error) {
	s := strings.TrimLeft(raw, " \t")

	switch {
	case strings.HasPrefix(s, "->"):
		target := strings.TrimSpace(s[2:])
		return narrate.DivertLineKind{Target: narrate.Reference(target)}, nil

	case len(s) > 0 && s[0] == '-':
		depth := runLength(s, '-')
		line := buildLine(strings.TrimLeft(s[depth:], " \t"))
		return narrate.GatherLineKind{Line: line, Depth: depth}, nil

	case len(s) > 0 && (s[0] == '*' || s[0] == '+'):
		choice, depth, err := parseChoiceLine(s)
		if err != nil {
			return nil, err
		}
		return narrate.ChoiceLineKind{Choice: choice, Depth: depth}, nil

	default:
		return narrate.TextLineKind{Line: buildLine(s)}, nil
	}
}

func runLength(s string, marker byte) uint8 {
	n := uint8(0)
	for int(n) < len(s) && s[n] == marker {
		n++
	}
	return n
}
