package diag_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stringhandler/narrate/internal/diag"
)

func TestSink_TODO(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	sink := diag.NewSink(&buf, "session-123")

	sink.TODO("fix this later", 42)

	out := buf.String()
	assert.Contains(t, out, "fix this later")
	assert.Contains(t, out, "session-123")
	assert.Contains(t, out, "42")
}

func TestSink_Debugf(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	sink := diag.NewSink(&buf, "session-456")

	sink.Debugf("goto %s", "chapter_two.arrival")

	assert.Contains(t, buf.String(), "chapter_two.arrival")
}

func TestSink_NilWriterDefaultsToStderr(t *testing.T) {
	t.Parallel()
	assert.NotPanics(t, func() {
		diag.NewSink(nil, "session-789")
	})
}
