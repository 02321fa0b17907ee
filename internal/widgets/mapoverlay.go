package widgets

import (
	"fmt"
	"slices"
	"time"

	"github.com/lox/agrimind/internal/models"
)

const (
	MapWidth  = 600
	MapHeight = 300
	mapGrid   = 50

	dimmedOpacity = 0.35
)

// Ramp is the low/mid/high colour ramp for an overlay.
func Ramp(kind models.OverlayKind) [3]string {
	switch kind {
	case models.OverlaySatellite:
		return Theme.Satellite
	case models.OverlayNDVI:
		return [3]string{Theme.Destructive, Theme.Warning, Theme.Leaf}
	case models.OverlayMoisture:
		return [3]string{Theme.Dry, Theme.Moderate, Theme.Blue}
	case models.OverlayTemperature:
		return [3]string{Theme.Blue, Theme.Warning, Theme.Destructive}
	}
	panic(fmt.Sprintf("widgets: unknown overlay %q", kind))
}

type LegendEntry struct {
	Label  string `json:"label"`
	Colour string `json:"colour"`
}

// Legend is either a list of swatches or, for composite imagery, a caption.
type Legend struct {
	Overlay models.OverlayKind `json:"overlay"`
	Caption string             `json:"caption,omitempty"`
	Entries []LegendEntry      `json:"entries,omitempty"`
}

// LegendFor returns the one legend that matches an overlay.
func LegendFor(kind models.OverlayKind) Legend {
	r := Ramp(kind)
	swatches := func(low, mid, high string) []LegendEntry {
		return []LegendEntry{{low, r[0]}, {mid, r[1]}, {high, r[2]}}
	}
	switch kind {
	case models.OverlaySatellite:
		return Legend{Overlay: kind, Caption: "RGB Composite View"}
	case models.OverlayNDVI:
		return Legend{Overlay: kind, Entries: swatches("Low", "Medium", "High")}
	case models.OverlayMoisture:
		return Legend{Overlay: kind, Entries: swatches("Dry", "Moderate", "Wet")}
	case models.OverlayTemperature:
		return Legend{Overlay: kind, Entries: swatches("Cool", "Warm", "Hot")}
	}
	panic(fmt.Sprintf("widgets: unknown overlay %q", kind))
}

type GradientStop struct {
	Offset  string
	Colour  string
	Opacity float64
}

// Gradient is an SVG linear gradient. X1..Y2 are percentages of the
// bounding box.
type Gradient struct {
	ID             string
	X1, Y1, X2, Y2 int
	Stops          []GradientStop
}

type MapRegion struct {
	Name     string
	Points   string
	LabelX   int
	LabelY   int
	Stroke   string
	Dash     string
	Gradient string
	Opacity  float64
	Active   bool
	Fade     Transition
}

type MapPin struct{ X, Y int }

// MapView is a fully resolved field map for one overlay.
type MapView struct {
	Overlay   models.OverlayKind
	Width     int
	Height    int
	Gradients []Gradient
	Regions   []MapRegion
	Pins      []MapPin
	GridX     []int
	GridY     []int
	Legend    Legend
	Fade      Transition
}

type regionShape struct {
	name     string
	points   string
	lx, ly   int
	stroke   func() string
	dash     string
	gradient int
}

var regionShapes = []regionShape{
	{name: "Field A", points: "50,40 220,30 240,140 60,150", lx: 130, ly: 95, stroke: func() string { return Theme.Leaf }, gradient: 0},
	{name: "Field B", points: "260,25 440,35 430,160 250,145", lx: 340, ly: 95, stroke: func() string { return Theme.Warning }, gradient: 1},
	{name: "Field C", points: "460,40 570,50 560,155 450,148", lx: 510, ly: 100, stroke: func() string { return Theme.Blue }, gradient: 2},
	{name: "Field D", points: "80,170 350,165 340,270 70,275", lx: 200, ly: 225, stroke: func() string { return Theme.Leaf }, dash: "6 3", gradient: 0},
}

type stopSpec struct {
	offset  int
	ramp    int
	opacity float64
}

// gradientStops are the direction and stops (offset, ramp index, opacity)
// of the three region fills.
var gradientStops = [3]struct {
	x1, y1, x2, y2 int
	stops          [3]stopSpec
}{
	{0, 0, 100, 100, [3]stopSpec{{0, 2, 0.8}, {50, 1, 0.7}, {100, 2, 0.9}}},
	{0, 100, 100, 0, [3]stopSpec{{0, 1, 0.7}, {60, 0, 0.6}, {100, 1, 0.8}}},
	{100, 0, 0, 100, [3]stopSpec{{0, 2, 0.9}, {40, 1, 0.6}, {100, 0, 0.5}}},
}

var mapPins = []MapPin{{140, 85}, {340, 85}, {510, 90}}

// MapRegionNames lists the drawable fields in paint order.
func MapRegionNames() []string {
	out := make([]string, len(regionShapes))
	for i, s := range regionShapes {
		out[i] = s.name
	}
	return out
}

// RenderMap resolves the stylized field map for an overlay. When highlight
// names a region, that region stays at full opacity and the rest are dimmed;
// any other value leaves every region at full opacity.
func RenderMap(kind models.OverlayKind, highlight string) MapView {
	ramp := Ramp(kind)
	prefix := "ov-" + string(kind)

	grads := make([]Gradient, len(gradientStops))
	for i, spec := range gradientStops {
		g := Gradient{
			ID: fmt.Sprintf("%s-grad%d", prefix, i+1),
			X1: spec.x1, Y1: spec.y1, X2: spec.x2, Y2: spec.y2,
		}
		for _, s := range spec.stops {
			g.Stops = append(g.Stops, GradientStop{
				Offset:  fmt.Sprintf("%d%%", s.offset),
				Colour:  ramp[s.ramp],
				Opacity: s.opacity,
			})
		}
		grads[i] = g
	}

	matched := slices.Contains(MapRegionNames(), highlight)

	regions := make([]MapRegion, len(regionShapes))
	for i, s := range regionShapes {
		r := MapRegion{
			Name:     s.name,
			Points:   s.points,
			LabelX:   s.lx,
			LabelY:   s.ly,
			Stroke:   s.stroke(),
			Dash:     s.dash,
			Gradient: grads[s.gradient].ID,
			Opacity:  1,
			Active:   !matched || s.name == highlight,
			Fade: Transition{
				Property: "opacity",
				From:     0,
				To:       1,
				Duration: 600 * time.Millisecond,
				Delay:    time.Duration(i) * 150 * time.Millisecond,
			},
		}
		if !r.Active {
			r.Opacity = dimmedOpacity
		}
		regions[i] = r
	}

	var gx, gy []int
	for x := mapGrid; x < MapWidth; x += mapGrid {
		gx = append(gx, x)
	}
	for y := mapGrid; y < MapHeight; y += mapGrid {
		gy = append(gy, y)
	}

	return MapView{
		Overlay:   kind,
		Width:     MapWidth,
		Height:    MapHeight,
		Gradients: grads,
		Regions:   regions,
		Pins:      append([]MapPin(nil), mapPins...),
		GridX:     gx,
		GridY:     gy,
		Legend:    LegendFor(kind),
		Fade:      Transition{Property: "opacity", From: 0, To: 1, Duration: 300 * time.Millisecond},
	}
}
