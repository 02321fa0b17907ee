package imagegen

import (
	"bytes"
	"errors"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOGImage(t *testing.T) {
	t.Parallel()
	data, err := GenerateOGImage(OGImageData{Score: 87, Headline: "Farm Health Score", Caption: "Soil moisture 64%"})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, OGWidth, img.Bounds().Dx())
	assert.Equal(t, OGHeight, img.Bounds().Dy())

	// top of the ring is filled with the leaf colour for a healthy score
	r, g, b, _ := img.At(940, 315-170).RGBA()
	assert.Equal(t, []uint32{0x4C, 0xAF, 0x50}, []uint32{r >> 8, g >> 8, b >> 8})
}

func TestScoreColourThresholds(t *testing.T) {
	t.Parallel()
	assert.Equal(t, scoreColour(61), scoreColour(100))
	assert.NotEqual(t, scoreColour(61), scoreColour(60))
	assert.Equal(t, scoreColour(60), scoreColour(41))
	assert.NotEqual(t, scoreColour(41), scoreColour(40))
}

func TestOGImageCache(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 2, 17, 6, 0, 0, 0, time.UTC)
	c := NewOGImageCache(time.Minute)
	c.now = func() time.Time { return now }

	_, ok := c.Get()
	assert.False(t, ok)

	calls := 0
	gen := func() ([]byte, error) {
		calls++
		return []byte{byte(calls)}, nil
	}

	data, hit, err := c.GetOrGenerate(gen)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, []byte{1}, data)

	data, hit, err = c.GetOrGenerate(gen)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []byte{1}, data)
	cached, ok := c.Get()
	assert.True(t, ok)
	assert.Equal(t, []byte{1}, cached)

	now = now.Add(2 * time.Minute)
	data, _, err = c.GetOrGenerate(gen)
	require.NoError(t, err)
	assert.Equal(t, []byte{2}, data)

	now = now.Add(2 * time.Minute)
	_, _, err = c.GetOrGenerate(func() ([]byte, error) { return nil, errors.New("boom") })
	assert.Error(t, err)
	_, ok = c.Get()
	assert.False(t, ok)
}
