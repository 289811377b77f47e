package narrate

import (
	"errors"
	"fmt"
	"strings"
)

// KnotMarker and StitchMarker are the structural markers recognized after
// left-trimming a raw line (spec.md §6). KnotMarker is checked first so a
// knot declaration is never mistaken for a stitch declaration.
const (
	KnotMarker      = "=="
	KnotMarkerAlt   = "==="
	StitchMarker    = "="
	LineCommentMark = "//"
	TodoCommentMark = "TODO:"
)

// DiagSink receives TODO-comment lines dropped during filtering (spec.md
// §6's "Diagnostic sink"). The default, used when none is supplied, writes
// to standard error; see internal/diag.Sink for the zerolog-backed
// implementation wired in by the CLI and TUI.
type DiagSink interface {
	TODO(text string, line int)
}

// stderrSink is the zero-value fallback DiagSink; NewStructuralParser (and
// so FromSource) uses it when the caller supplies none.
type stderrSink struct{}

func (stderrSink) TODO(text string, line int) {
	println(text + " (line " + itoa(line) + ")")
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// RawLine pairs a line's 1-based source position with its text — carried
// through the structural parser so errors can cite source lines (spec.md's
// Open Questions recommend this over losing line numbers to filtering).
type RawLine struct {
	Number int
	Text   string
}

// StructuralParser groups raw source lines into knots and stitches
// (spec.md §4.1). It depends on a LineTokenizer to read name lines and to
// classify each surviving content line.
type StructuralParser struct {
	Tokenizer LineTokenizer
	Sink      DiagSink
}

// NewStructuralParser creates a parser. sink may be nil, in which case
// TODO-comments are written to standard error.
func NewStructuralParser(tok LineTokenizer, sink DiagSink) *StructuralParser {
	if sink == nil {
		sink = stderrSink{}
	}
	return &StructuralParser{Tokenizer: tok, Sink: sink}
}

// Parse runs the full structural parse: split, filter, partition into knot
// groups, and within each knot, partition into stitch groups and build each
// stitch's content tree.
func (p *StructuralParser) Parse(source string) (KnotName, map[KnotName]*Knot, error) {
	lines := splitLines(source)
	lines = p.filterLines(lines)
	if len(lines) == 0 {
		return "", nil, &ParseError{Empty: true}
	}

	knotGroups := partitionAt(lines, isKnotMarkerLine)

	rootName := ""
	knots := make(map[KnotName]*Knot, len(knotGroups))
	for i, group := range knotGroups {
		name, knot, err := p.parseKnot(group, i)
		if err != nil {
			return "", nil, &ParseError{Knot: err.(*KnotError)}
		}
		if i == 0 {
			rootName = name
		}
		knots[name] = knot
	}
	return rootName, knots, nil
}

// splitLines splits source on '\n', stripping the '\r' of a "\r\n" line
// ending, and tags each line with its 1-based line number.
func splitLines(source string) []RawLine {
	raw := strings.Split(source, "\n")
	lines := make([]RawLine, 0, len(raw))
	for i, text := range raw {
		text = strings.TrimSuffix(text, "\r")
		lines = append(lines, RawLine{Number: i + 1, Text: text})
	}
	return lines
}

// filterLines drops whitespace-only lines, `//` comments, and `TODO:`
// comments (echoing the latter to the sink). A line starting with `TODO`
// but lacking the colon is ordinary content and is retained.
func (p *StructuralParser) filterLines(lines []RawLine) []RawLine {
	out := make([]RawLine, 0, len(lines))
	for _, l := range lines {
		trimmed := strings.TrimSpace(l.Text)
		switch {
		case trimmed == "":
			continue
		case strings.HasPrefix(trimmed, LineCommentMark):
			continue
		case strings.HasPrefix(trimmed, TodoCommentMark):
			p.Sink.TODO(trimmed, l.Number)
			continue
		default:
			out = append(out, l)
		}
	}
	return out
}

// isKnotMarkerLine reports whether a trimmed line opens a new knot group.
func isKnotMarkerLine(l RawLine) bool {
	return hasMarkerPrefix(l.Text, KnotMarker)
}

// isStitchMarkerLine reports whether a trimmed line opens a new stitch
// group. `==` takes precedence, so a knot marker line never counts.
func isStitchMarkerLine(l RawLine) bool {
	trimmed := strings.TrimLeft(l.Text, " \t")
	return strings.HasPrefix(trimmed, StitchMarker) && !strings.HasPrefix(trimmed, KnotMarker)
}

func hasMarkerPrefix(text, marker string) bool {
	trimmed := strings.TrimLeft(text, " \t")
	return strings.HasPrefix(trimmed, marker)
}

// partitionAt splits lines into groups, starting a new group at every line
// for which isMarker returns true. Lines before the first marker form an
// implicit leading group; when the first line is itself a marker there is
// no leading group. Empty input yields a single empty group.
func partitionAt(lines []RawLine, isMarker func(RawLine) bool) [][]RawLine {
	var groups [][]RawLine
	var current []RawLine
	started := false
	for _, l := range lines {
		if isMarker(l) {
			if started || len(current) > 0 {
				groups = append(groups, current)
			}
			current = []RawLine{l}
			started = true
			continue
		}
		current = append(current, l)
	}
	groups = append(groups, current)
	return groups
}

// parseKnot reads one knot group: its name (or the root sentinel for the
// leading implicit group) and its stitches.
func (p *StructuralParser) parseKnot(group []RawLine, index int) (KnotName, *Knot, error) {
	if len(group) == 0 {
		return "", nil, &KnotError{Empty: true}
	}

	name, rest, err := p.readGroupName(group, index, NameKindKnot, isKnotMarkerLine, p.Tokenizer.ReadKnotName)
	if err != nil {
		return "", nil, err
	}

	stitchGroups := partitionAt(rest, isStitchMarkerLine)
	stitches := make(map[StitchName]*Stitch, len(stitchGroups))
	var defaultStitch StitchName
	for j, sg := range stitchGroups {
		stitchName, stitchRest, err := p.readGroupName(sg, j, NameKindStitch, isStitchMarkerLine, p.Tokenizer.ReadStitchName)
		if err != nil {
			return "", nil, err
		}
		root, buildErr := p.buildStitchRoot(stitchRest)
		if buildErr != nil {
			return "", nil, &KnotError{Err: buildErr, Line: firstLineNumber(sg)}
		}
		stitches[stitchName] = &Stitch{Name: stitchName, Root: root}
		if j == 0 {
			defaultStitch = stitchName
		}
	}

	return name, &Knot{Name: name, DefaultStitch: defaultStitch, Stitches: stitches}, nil
}

// readGroupName reads the name line at the head of a knot or stitch group.
// A group's head line is only a name line when it is actually marker-shaped
// (partitionAt guarantees this for every group but the leading, implicit
// one): an unmarked leading group — the common case of a story with no
// knot/stitch declarations at all, spec.md's scenario 1 — is the unnamed
// root and its head line is ordinary content, not consumed here.
func (p *StructuralParser) readGroupName(group []RawLine, index int, kind NameKind, isMarker func(RawLine) bool, read func(string) (string, error)) (string, []RawLine, error) {
	if len(group) == 0 {
		return "", nil, &KnotError{Empty: true}
	}

	head := group[0]
	if !isMarker(head) {
		if index == 0 {
			return RootName, group, nil
		}
		// Unreachable: partitionAt starts every non-leading group exactly
		// at a line isMarker accepts.
		return "", nil, &KnotError{InvalidName: &InvalidNameError{Kind: kind, Reason: "group does not open with its marker"}, Line: head.Number}
	}

	name, err := read(head.Text)
	switch {
	case err == nil:
		return name, group[1:], nil
	case errors.Is(err, KnotNameErrorNoNamePresent):
		if index == 0 {
			// The marker is present (e.g. a bare "==") but carries no name:
			// treat the group as the unnamed root, discarding the marker
			// line.
			return RootName, group[1:], nil
		}
		// A marker with no name at index > 0 is not the root — it has
		// nothing else to be. spec.md treats this as an internal
		// contradiction rather than silently aliasing it onto RootName.
		return "", nil, &KnotError{Err: InternalError{Msg: fmt.Sprintf("%s marker with no name at group index %d", kind, index)}, Line: head.Number}
	default:
		return "", nil, &KnotError{InvalidName: &InvalidNameError{Kind: kind, Reason: err.Error()}, Line: head.Number}
	}
}

func firstLineNumber(lines []RawLine) int {
	if len(lines) == 0 {
		return 0
	}
	return lines[0].Number
}

// buildStitchRoot tokenizes a stitch's remaining lines and assembles them
// into a ContentNode tree (the core's half of the two-phase transformation;
// see buildSequence in tree.go).
func (p *StructuralParser) buildStitchRoot(lines []RawLine) (ContentNode, error) {
	kinds := make([]taggedLineKind, 0, len(lines))
	for _, l := range lines {
		kind, err := p.Tokenizer.ParseLine(l.Text)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, taggedLineKind{kind: kind, line: l.Number})
	}
	root, _, err := buildSequence(kinds, 0, 0)
	return root, err
}
