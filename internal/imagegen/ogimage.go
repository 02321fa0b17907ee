// Package imagegen draws the dashboard's Open Graph preview image.
package imagegen

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// OGImageData contains the dynamic data for the OG image.
type OGImageData struct {
	Score    int    // Farm health score out of 100
	Headline string // e.g. "Farm Health Score"
	Caption  string // e.g. "Soil moisture 64% · Crop health 91%"
}

// OGWidth and OGHeight are the standard Open Graph image dimensions.
const (
	OGWidth  = 1200
	OGHeight = 630
)

var (
	white     = color.RGBA{255, 255, 255, 255}
	lightLeaf = color.RGBA{210, 235, 205, 255}
	track     = color.RGBA{255, 255, 255, 60}
)

// GenerateOGImage renders the preview: a green gradient, a score ring and
// the headline text.
func GenerateOGImage(data OGImageData) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, OGWidth, OGHeight))

	// Leaf-to-forest vertical gradient
	for y := 0; y < OGHeight; y++ {
		p := float64(y) / float64(OGHeight)
		c := color.RGBA{uint8(46 - p*20), uint8(125 - p*45), uint8(50 - p*15), 255}
		for x := 0; x < OGWidth; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	drawRing(img, 940, 315, 170, 26, float64(data.Score)/100, scoreColour(data.Score))
	drawScaledText(img, fmt.Sprintf("%d", data.Score), 940, 340, 10, white, true)

	drawScaledText(img, data.Headline, 80, 250, 6, white, false)
	if data.Caption != "" {
		drawScaledText(img, data.Caption, 80, 340, 3, lightLeaf, false)
	}
	drawScaledText(img, "AgriMind", 80, OGHeight-60, 3, lightLeaf, false)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode OG image: %w", err)
	}
	return buf.Bytes(), nil
}

// scoreColour follows the dashboard gauge thresholds.
func scoreColour(score int) color.RGBA {
	switch {
	case score > 60:
		return color.RGBA{0x4C, 0xAF, 0x50, 255}
	case score > 40:
		return color.RGBA{0xE7, 0xB0, 0x08, 255}
	default:
		return color.RGBA{0xDC, 0x28, 0x28, 255}
	}
}

// drawRing draws a clockwise arc from 12 o'clock covering frac of the ring.
func drawRing(img *image.RGBA, cx, cy, r, width int, frac float64, col color.RGBA) {
	frac = math.Min(math.Max(frac, 0), 1)
	inner := float64(r - width/2)
	outer := float64(r + width/2)
	for y := cy - r - width; y <= cy+r+width; y++ {
		for x := cx - r - width; x <= cx+r+width; x++ {
			dx, dy := float64(x-cx), float64(y-cy)
			d := math.Hypot(dx, dy)
			if d < inner || d > outer {
				continue
			}
			// angle measured clockwise from the top, in [0, 1)
			a := math.Atan2(dx, -dy) / (2 * math.Pi)
			if a < 0 {
				a++
			}
			if a <= frac {
				img.SetRGBA(x, y, col)
			} else {
				blend(img, x, y, track)
			}
		}
	}
}

func blend(img *image.RGBA, x, y int, c color.RGBA) {
	o := img.RGBAAt(x, y)
	a := float64(c.A) / 255
	o.R = uint8(float64(o.R)*(1-a) + float64(c.R)*a)
	o.G = uint8(float64(o.G)*(1-a) + float64(c.G)*a)
	o.B = uint8(float64(o.B)*(1-a) + float64(c.B)*a)
	img.SetRGBA(x, y, o)
}

// drawScaledText renders text with the 7x13 bitmap face and scales it up
// nearest-neighbour so it stays crisp. y is the baseline. When centred, x is
// the horizontal centre.
func drawScaledText(dst *image.RGBA, text string, x, y, scale int, col color.Color, centred bool) {
	face := basicfont.Face7x13
	w := font.MeasureString(face, text).Ceil()
	if w == 0 {
		return
	}
	h := face.Height
	small := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: fixed.I(face.Ascent)},
	}
	d.DrawString(text)

	left := x
	if centred {
		left = x - w*scale/2
	}
	top := y - face.Ascent*scale
	rect := image.Rect(left, top, left+w*scale, top+h*scale)
	draw.NearestNeighbor.Scale(dst, rect, small, small.Bounds(), draw.Over, nil)
}
