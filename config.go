package narrate

// StoryOption configures a Story at construction time, mirroring the
// teacher's functional-options pattern for per-run configuration
// (pipe.RunOption / pipe.WithEventHandler / pipe.WithModel).
type StoryOption func(*storyConfig)

type storyConfig struct {
	sink DiagSink
}

// WithDiagSink sets the sink that receives TODO-comment diagnostics found
// while parsing (spec.md §6). The default writes to standard error.
func WithDiagSink(sink DiagSink) StoryOption {
	return func(c *storyConfig) {
		c.sink = sink
	}
}
