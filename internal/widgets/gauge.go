package widgets

import (
	"math"
	"strconv"
	"time"
)

const (
	gaugeRadius = 54
	gaugeSize   = 130
	gaugeStroke = 10
)

// Gauge is a circular percentage ring.
type Gauge struct {
	Value         float64
	Unit          string
	Label         string
	Colour        string
	Track         string
	Radius        float64
	Size          int
	Stroke        int
	Circumference float64
	// Offset is the stroke-dashoffset of the filled arc; Circumference means empty.
	Offset float64
	Sweep  Transition
}

// Centre is the gauge centre coordinate in its own viewBox.
func (g Gauge) Centre() float64 { return float64(g.Size) / 2 }

// NewGauge builds a gauge for a 0-100 value. Out-of-range values clamp the
// arc but keep the raw value in the label and colour choice.
func NewGauge(value float64, unit string) Gauge {
	c := 2 * math.Pi * gaugeRadius
	frac := math.Min(math.Max(value/100, 0), 1)
	offset := c - frac*c
	return Gauge{
		Value:         value,
		Unit:          unit,
		Label:         strconv.FormatFloat(value, 'f', -1, 64),
		Colour:        GaugeColour(value),
		Track:         Theme.Grid,
		Radius:        gaugeRadius,
		Size:          gaugeSize,
		Stroke:        gaugeStroke,
		Circumference: c,
		Offset:        offset,
		Sweep: Transition{
			Property: "stroke-dashoffset",
			From:     c,
			To:       offset,
			Duration: time.Second,
		},
	}
}

// GaugeColour is leaf above 60, warning above 40, destructive otherwise.
func GaugeColour(value float64) string {
	switch {
	case value > 60:
		return Theme.Leaf
	case value > 40:
		return Theme.Warning
	default:
		return Theme.Destructive
	}
}
