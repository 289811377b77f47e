package narrate

import "fmt"

// KnotName and StitchName are plain identifiers. Both are aliases of string,
// not distinct types: they only make call sites read clearly, and the
// compiler treats them as interchangeable with string and with each other.
type KnotName = string
type StitchName = string

// RootName is the reserved sentinel for the implicit unnamed knot and the
// implicit unnamed (first) stitch of any knot. Authored source must not
// declare a knot or stitch with this name.
const RootName = "$ROOT$"

// Reference is an unresolved textual address as it appears in authored
// source: a divert target or a NumVisits condition target, not yet checked
// against the story graph.
type Reference string

// Location is a fully validated (knot, stitch) pair — the only form the
// follow engine ever dereferences.
type Location struct {
	Knot   KnotName
	Stitch StitchName
}

func (l Location) String() string {
	return fmt.Sprintf("%s.%s", l.Knot, l.Stitch)
}

// Address is the sealed tagged variant from spec.md §3: either a Raw,
// unvalidated placeholder produced at parse time, or a Validated location
// produced by the AddressResolver. The marker method mirrors the pattern
// used throughout this module (see Message in the teacher's pipe package)
// for every sealed interface.
type Address interface {
	isAddress()
}

// RawAddress is a parse-time placeholder: a textual reference that has not
// yet been checked against the story graph.
type RawAddress struct {
	Ref Reference
}

func (RawAddress) isAddress() {}

// ValidatedAddress wraps a Location that has been checked to exist in the
// story graph. The follow engine only ever dereferences this variant;
// attempting to dereference a RawAddress anywhere else is an InternalError.
type ValidatedAddress struct {
	Location Location
}

func (ValidatedAddress) isAddress() {}

// Interface compliance checks.
var (
	_ Address = RawAddress{}
	_ Address = ValidatedAddress{}
)

// AddressResolver resolves textual References against the story graph,
// relative to a caller-supplied current location (spec.md §4.2).
type AddressResolver struct {
	graph *StoryGraph
}

// NewAddressResolver creates a resolver bound to graph.
func NewAddressResolver(graph *StoryGraph) *AddressResolver {
	return &AddressResolver{graph: graph}
}

// Resolve turns ref into a ValidatedAddress relative to current, or returns
// an InvalidAddressError. A "knot" reference resolves to the knot's default
// stitch; a "knot.stitch" reference requires both to exist; a bare "stitch"
// reference first tries the current knot, then falls back to treating the
// bare name as a knot.
func (r *AddressResolver) Resolve(ref Reference, current Location) (ValidatedAddress, error) {
	name := string(ref)
	if name == "" {
		return ValidatedAddress{}, InvalidAddressError{Knot: "", Stitch: ""}
	}

	if knotName, stitchName, ok := splitReference(name); ok {
		knot, exists := r.graph.Knots[knotName]
		if !exists {
			return ValidatedAddress{}, InvalidAddressError{Knot: knotName}
		}
		if _, exists := knot.Stitches[stitchName]; !exists {
			return ValidatedAddress{}, InvalidAddressError{Knot: knotName, Stitch: stitchName}
		}
		return ValidatedAddress{Location: Location{Knot: knotName, Stitch: stitchName}}, nil
	}

	if knot, exists := r.graph.Knots[current.Knot]; exists {
		if _, exists := knot.Stitches[name]; exists {
			return ValidatedAddress{Location: Location{Knot: current.Knot, Stitch: name}}, nil
		}
	}

	if knot, exists := r.graph.Knots[name]; exists {
		return ValidatedAddress{Location: Location{Knot: name, Stitch: knot.DefaultStitch}}, nil
	}

	return ValidatedAddress{}, InvalidAddressError{Knot: name}
}

// splitReference splits "knot.stitch" into its parts. ok is false for a
// bare name (no dot).
func splitReference(name string) (knot, stitch string, ok bool) {
	for i := 0; i < len(name); i++ {
		if name[i] == '.' {
			return name[:i], name[i+1:], true
		}
	}
	return "", "", false
}
