// Package diag provides the zerolog-backed diagnostic sink wired into the
// CLI and tui packages (spec.md §6's "Diagnostic sink"). It satisfies
// narrate.DiagSink structurally — TODO(text string, line int) — without
// importing the narrate package.
package diag

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Sink writes TODO-comment diagnostics through a zerolog.Logger, formatted
// "<line> (line <N>)" per spec.md §6.
type Sink struct {
	log zerolog.Logger
}

// NewSink creates a Sink writing to w (os.Stderr if nil), tagged with
// sessionID for correlation across a play session's log lines.
func NewSink(w io.Writer, sessionID string) *Sink {
	if w == nil {
		w = os.Stderr
	}
	log := zerolog.New(w).With().Timestamp().Str("session", sessionID).Logger()
	return &Sink{log: log}
}

// TODO logs one dropped TODO-comment line at warn level.
func (s *Sink) TODO(text string, line int) {
	s.log.Warn().Int("line", line).Msgf("%s (line %d)", text, line)
}

// Debugf logs a free-form debug line, used by the tui package to log the
// target address of each /goto jump.
func (s *Sink) Debugf(format string, args ...any) {
	s.log.Debug().Msgf(format, args...)
}
