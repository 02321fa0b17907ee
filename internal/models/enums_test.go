package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOverlayKind(t *testing.T) {
	t.Parallel()
	for _, k := range AllOverlayKinds() {
		got, ok := ParseOverlayKind(k.String())
		assert.True(t, ok, k)
		assert.Equal(t, k, got)
	}

	_, ok := ParseOverlayKind("ndvi")
	assert.False(t, ok, "parsing is case sensitive")
	_, ok = ParseOverlayKind("")
	assert.False(t, ok)
}
