package narrate

import "strings"

// Line is one user-visible output line after glue/whitespace assembly
// (spec.md §4.4).
type Line struct {
	Text string
	Tags []string
}

// Assemble runs the glue pipeline over a turn's collected line buffer: drop
// blank lines, then join adjacent lines under the glue rules. Exactly one
// '\n' separates unglued lines; glued lines are concatenated with at most
// one intervening space. Tags are preserved per line, never merged.
//
// Running Assemble twice over the same buffer yields the same Lines:
// InternalLine.RawText is rewritten in place by the first pass (spec.md §8's
// round-trip law), and the glue flags are left untouched, so the second pass
// makes the same glue decisions. An unglued line's text is trimmed and gets
// its '\n' back; a glued line's text ends in a space exactly when the first
// pass kept one, so the "ends with space" check reproduces it.
func Assemble(buffer []*InternalLine) []Line {
	surviving := make([]*InternalLine, 0, len(buffer))
	for _, l := range buffer {
		if strings.TrimSpace(l.RawText) != "" {
			surviving = append(surviving, l)
		}
	}

	out := make([]Line, 0, len(surviving))
	for i, l := range surviving {
		var next *InternalLine
		if i+1 < len(surviving) {
			next = surviving[i+1]
		}

		glued := next != nil && (l.GlueEnd || next.GlueBegin)
		keepSpace := glued && (strings.HasSuffix(l.RawText, " ") || (next != nil && strings.HasPrefix(next.RawText, " ")))

		rewritten := strings.TrimSpace(l.RawText)
		if keepSpace {
			rewritten += " "
		}
		if !glued {
			rewritten += "\n"
		}
		l.RawText = rewritten

		out = append(out, Line{Text: l.RawText, Tags: l.Tags})
	}

	return out
}
