package linetok

import (
	"strings"

	"github.com/stringhandler/narrate"
)

// glueMarker is Ink's "<>" no-whitespace-join marker.
const glueMarker = "<>"

// splitGlueAndTags strips a leading and/or trailing glue marker and any
// trailing "#"-introduced tags from s, returning the remaining text. The
// glue_begin/glue_end flags and tag list are reported separately so the
// caller can assemble an *narrate.InternalLine.
//
// Trailing whitespace that sits between the text and a "<>" marker is kept
// (e.g. "Hello <>" strips to "Hello ", preserving the author's explicit
// space), matching assemble.go's "ends with space" glue-joining check.
// Whitespace after the marker itself is insignificant and dropped.
func splitGlueAndTags(raw string) (text string, glueBegin, glueEnd bool, tags []string) {
	s := strings.TrimLeft(raw, " \t")

	if strings.HasPrefix(s, glueMarker) {
		glueBegin = true
		s = s[len(glueMarker):]
	}

	rtrimmed := strings.TrimRight(s, " \t")
	if strings.HasSuffix(rtrimmed, glueMarker) {
		glueEnd = true
		s = rtrimmed[:len(rtrimmed)-len(glueMarker)]
	} else {
		s = rtrimmed
	}

	if idx := strings.IndexByte(s, '#'); idx >= 0 {
		tagPart := s[idx+1:]
		s = s[:idx]
		for _, t := range strings.Split(tagPart, "#") {
			t = strings.TrimSpace(t)
			if t != "" {
				tags = append(tags, t)
			}
		}
	}

	return s, glueBegin, glueEnd, tags
}

// buildLine runs the glue/tag pipeline over raw and wraps the result in an
// *narrate.InternalLine.
func buildLine(raw string) *narrate.InternalLine {
	text, glueBegin, glueEnd, tags := splitGlueAndTags(raw)
	return &narrate.InternalLine{
		RawText:   text,
		Tags:      tags,
		GlueBegin: glueBegin,
		GlueEnd:   glueEnd,
	}
}
