// Package widgets turns domain records into render-ready view models: the
// field map, moisture gauges, charts, sensor cards, alert rows and stat
// cards. Nothing here does I/O except RenderSVG, which writes to the
// caller's writer.
package widgets

import (
	"fmt"

	"github.com/lox/agrimind/internal/models"
)

// Palette defines the dashboard colour tokens.
type Palette struct {
	// Leaf is the healthy / primary green
	Leaf string
	// Primary is the darker brand green used for headings and active nav
	Primary string
	// Warning is the caution yellow
	Warning string
	// Destructive is the alarm red
	Destructive string
	// Accent is the warm highlight
	Accent string
	// Sky is the water / moisture blue
	Sky string
	// Blue is the cold end of temperature and the wet end of moisture
	Blue string
	// Dry is the dry end of moisture
	Dry string
	// Moderate sits between Dry and Blue
	Moderate string
	Earth    string
	Muted    string
	// Grid is chart grid lines and gauge tracks
	Grid string
	// Axis is chart axis text
	Axis string
	// MapBackground fills the field map canvas
	MapBackground string
	// Satellite is the three-stop green composite ramp
	Satellite [3]string
}

// Theme is the single light theme the dashboard ships with.
var Theme = Palette{
	Leaf:          "#4CAF50",
	Primary:       "#2E7D32",
	Warning:       "#E7B008",
	Destructive:   "#DC2828",
	Accent:        "#D98A3D",
	Sky:           "#0EA2E7",
	Blue:          "#1A72D1",
	Dry:           "#CC8033",
	Moderate:      "#53A1C6",
	Earth:         "#8B6B4A",
	Muted:         "#6C7F6C",
	Grid:          "#DFE4DD",
	Axis:          "#6C7F6C",
	MapBackground: "#EFF2EE",
	Satellite:     [3]string{"#3E743E", "#698F56", "#94A375"},
}

// ToneColour resolves a tone to its hex colour.
func (p Palette) ToneColour(t models.Tone) string {
	switch t {
	case models.ToneLeaf:
		return p.Leaf
	case models.ToneSky:
		return p.Sky
	case models.TonePrimary:
		return p.Primary
	case models.ToneWarning:
		return p.Warning
	case models.ToneDestructive:
		return p.Destructive
	case models.ToneAccent:
		return p.Accent
	case "":
		return p.Muted
	}
	panic(fmt.Sprintf("widgets: unknown tone %q", t))
}
