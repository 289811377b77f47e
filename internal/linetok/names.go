package linetok

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/stringhandler/narrate"
)

var identifierRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ReadKnotName reads a "== name ==" (or "===") declaration line, consuming
// the marker. Trailing '=' characters are decorative and ignored.
func (t *Tokenizer) ReadKnotName(raw string) (string, error) {
	return readMarkerName(raw, 2)
}

// ReadStitchName reads a "= name" declaration line, consuming the marker.
func (t *Tokenizer) ReadStitchName(raw string) (string, error) {
	return readMarkerName(raw, 1)
}

// readMarkerName strips a leading run of at least minLen '=' characters and
// any trailing run of '=' characters, then validates the remaining
// identifier. A bare marker with nothing left over signals
// KnotNameErrorNoNamePresent, which the structural parser treats specially
// at group index 0.
func readMarkerName(raw string, minLen int) (string, error) {
	trimmed := strings.TrimLeft(raw, " \t")

	n := 0
	for n < len(trimmed) && trimmed[n] == '=' {
		n++
	}
	if n < minLen {
		return "", fmt.Errorf("line does not open with a %d-character marker", minLen)
	}
	rest := strings.TrimRight(trimmed[n:], " \t")
	rest = strings.TrimRight(rest, "=")
	rest = strings.TrimSpace(rest)

	if rest == "" {
		return "", narrate.KnotNameErrorNoNamePresent
	}
	if !identifierRE.MatchString(rest) {
		return "", fmt.Errorf("invalid identifier %q", rest)
	}
	return rest, nil
}
