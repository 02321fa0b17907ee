package icons

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEveryIconResolves(t *testing.T) {
	t.Parallel()
	seen := make(map[string]Icon)
	for _, i := range All() {
		name := i.String()
		assert.NotEmpty(t, paths[i], "icon %s has no glyph", name)
		assert.NotEmpty(t, name)
		if prev, dup := seen[name]; dup {
			t.Errorf("icons %d and %d share name %q", prev, i, name)
		}
		seen[name] = i

		svg := string(Glyph(i, "h-4 w-4"))
		assert.True(t, strings.HasPrefix(svg, "<svg"), "glyph for %s", name)
		assert.Contains(t, svg, "icon-"+name)
	}
}

func TestGlyphNone(t *testing.T) {
	t.Parallel()
	assert.Empty(t, Glyph(None, "x"))
	assert.Empty(t, Glyph(numIcons, "x"))
}

func TestGlyphEscapesClass(t *testing.T) {
	t.Parallel()
	svg := string(Glyph(Leaf, `"><script>`))
	assert.NotContains(t, svg, "<script>")
}

func TestNamedRoundTrips(t *testing.T) {
	t.Parallel()
	for _, i := range All() {
		got, ok := Named(i.String())
		assert.True(t, ok, i.String())
		assert.Equal(t, i, got)
	}
	_, ok := Named("none")
	assert.False(t, ok)
	_, ok = Named("unicorn")
	assert.False(t, ok)
}

func TestIconTextRoundTrip(t *testing.T) {
	t.Parallel()
	for _, i := range All() {
		b, err := i.MarshalText()
		assert.NoError(t, err)
		var got Icon
		assert.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, i, got)
	}

	var none Icon
	assert.NoError(t, none.UnmarshalText([]byte("none")))
	assert.Equal(t, None, none)
	assert.Error(t, none.UnmarshalText([]byte("tractor-beam")))
}
