// Package markdown renders the markdown subset authors may embed in story
// text (emphasis, inline code, headings, lists) to ANSI-styled terminal
// output for the tui player. It consolidates the teacher's two near-
// duplicate markdown/goldmark packages into one: rendering is presentation
// only and never feeds back into the glue/assembly semantics in the root
// package, so story text is rendered after Assemble has already produced
// its final Line.Text.
package markdown

// Render parses source as markdown and returns ANSI-styled terminal output
// word-wrapped to width. Code blocks are rendered at full width without
// reflow. An empty source returns an empty string.
func Render(source string, width int) string {
	if source == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r := newRenderer()
	return r.render([]byte(source), width)
}
