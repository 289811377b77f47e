package linetok

import (
	"strings"

	"github.com/stringhandler/narrate"
)

// parseChoiceLine reads a choice declaration: a run of uniform "*" (normal)
// or "+" (sticky) markers giving the nesting depth, an optional run of
// "{condition}" blocks, and finally the choice text itself.
//
// The text may contain one "[bracketed]" section: the part before the
// brackets plus the bracketed part is shown in the choice menu; the part
// before plus the part after is appended to the story when the branch is
// taken. A choice whose menu text is empty once trimmed (e.g. a bare "*"
// line) is a fallback branch, auto-selected when nothing else passes its
// filter. A divert written after the markers ("* -> target") is not parsed
// here: it is kept as the choice's menu text.
func parseChoiceLine(s string) (*narrate.InternalChoice, uint8, error) {
	marker := s[0]
	depth := uint8(0)
	for depth < uint8(len(s)) && s[depth] == marker {
		depth++
	}
	rest := strings.TrimLeft(s[depth:], " \t")

	conds, rest, err := parseConditions(rest)
	if err != nil {
		return nil, 0, err
	}

	selectionRaw, displayRaw := splitBracket(rest)
	selection := buildLine(selectionRaw)
	display := buildLine(displayRaw)

	return &narrate.InternalChoice{
		SelectionText: selection,
		DisplayText:   display,
		Conditions:    conds,
		IsSticky:      marker == '+',
		IsFallback:    strings.TrimSpace(selection.RawText) == "",
	}, depth, nil
}

// splitBracket implements Ink's "before[bracket]after" choice-text split. A
// line with no brackets yields identical selection and display text.
func splitBracket(s string) (selection, display string) {
	open := strings.IndexByte(s, '[')
	if open < 0 {
		return s, s
	}
	closeIdx := strings.IndexByte(s[open:], ']')
	if closeIdx < 0 {
		return s, s
	}
	closeIdx += open

	before := s[:open]
	bracket := s[open+1 : closeIdx]
	after := s[closeIdx+1:]

	return before + bracket, before + after
}
