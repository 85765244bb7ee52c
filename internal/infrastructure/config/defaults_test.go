package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultDocument(t *testing.T) {
	doc := DefaultDocument()

	assert.Equal(t, Bool(true), doc.Settings.ResetPointerOnEnter)
	assert.NotSame(t, doc, DefaultDocument(), "callers may mutate their copy")

	seen := make(map[string]bool, len(doc.Bindings))
	for _, b := range doc.Bindings {
		assert.False(t, seen[b.Input], "duplicate default binding for %s", b.Input)
		seen[b.Input] = true
	}
}
