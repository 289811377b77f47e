// Package mock provides function-field test doubles for narrate's external
// collaborators, following the teacher's mock.ToolExecutor pattern.
package mock

import "github.com/stringhandler/narrate"

// Interface compliance check.
var _ narrate.LineTokenizer = (*LineTokenizer)(nil)

// LineTokenizer is a test double for narrate.LineTokenizer. Set the Fn
// fields needed by the test; calling a method whose Fn is nil panics.
type LineTokenizer struct {
	ParseLineFn      func(raw string) (narrate.LineKind, error)
	ReadKnotNameFn   func(raw string) (string, error)
	ReadStitchNameFn func(raw string) (string, error)
}

// ParseLine delegates to ParseLineFn.
func (t *LineTokenizer) ParseLine(raw string) (narrate.LineKind, error) {
	return t.ParseLineFn(raw)
}

// ReadKnotName delegates to ReadKnotNameFn.
func (t *LineTokenizer) ReadKnotName(raw string) (string, error) {
	return t.ReadKnotNameFn(raw)
}

// ReadStitchName delegates to ReadStitchNameFn.
func (t *LineTokenizer) ReadStitchName(raw string) (string, error) {
	return t.ReadStitchNameFn(raw)
}
