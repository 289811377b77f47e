package narrate

import "fmt"

// ParseError is returned by FromSource / StructuralParser.Parse for failures that
// are terminal for a given source — there is nothing a retry can fix.
type ParseError struct {
	// Empty is set when no content survived comment/blank filtering.
	Empty bool
	// Line is the 1-based source line the error was detected at, 0 when
	// unavailable (spec.md's Open Questions acknowledge line numbers can be
	// lost to filtering in the worst case).
	Line int
	// Knot, when non-nil, wraps a failure inside a specific knot group.
	Knot *KnotError
}

func (e *ParseError) Error() string {
	if e.Empty {
		return "parse: source has no content after filtering comments and blank lines"
	}
	if e.Knot != nil {
		return fmt.Sprintf("parse: %v", e.Knot)
	}
	return "parse: unknown error"
}

// KnotError reports a failure while reading one knot group (spec.md §4.1).
type KnotError struct {
	// Empty is set when the knot group has no lines at all.
	Empty bool
	// InvalidName is set for a malformed name line.
	InvalidName *InvalidNameError
	Line        int
	// Err wraps a failure that isn't a malformed name line: a LineTokenizer
	// failure while building a stitch's content tree, or an internal
	// contradiction such as a marker-with-no-name group at index > 0 (see
	// readGroupName).
	Err error
}

func (e *KnotError) Error() string {
	if e.Empty {
		return "knot group has no content"
	}
	if e.InvalidName != nil {
		return fmt.Sprintf("invalid name: %v", e.InvalidName)
	}
	if e.Err != nil {
		return fmt.Sprintf("%v", e.Err)
	}
	return "unknown knot error"
}

func (e *KnotError) Unwrap() error { return e.Err }

// NameKind distinguishes a knot-name failure from a stitch-name failure in
// InvalidNameError diagnostics.
type NameKind int

const (
	NameKindKnot NameKind = iota
	NameKindStitch
)

func (k NameKind) String() string {
	if k == NameKindStitch {
		return "stitch"
	}
	return "knot"
}

// InvalidNameError reports a malformed knot/stitch name line: the marker was
// present but the underlying tokenizer rejected the identifier that
// followed it (not the "no name present" signal, which is handled
// separately — see KnotNameErrorNoNamePresent).
type InvalidNameError struct {
	Kind   NameKind
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("%s name: %s", e.Kind, e.Reason)
}
