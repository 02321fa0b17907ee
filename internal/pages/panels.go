// Package pages composes datasets, widgets and selection state into the view
// models the dashboard templates render. Builders are pure: the same
// selection always yields the same view.
package pages

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/lox/agrimind/internal/models"
	"github.com/lox/agrimind/internal/selection"
	"github.com/lox/agrimind/internal/widgets"
)

// Fragment IDs patched by the action endpoints. Each matches the id of the
// panel's root element.
const (
	FragmentIrrigation = "precision-irrigation"
	FragmentTrend      = "precision-trend"
	FragmentFertilizer = "precision-fertilizer"
	FragmentMap        = "crop-map"
	FragmentHealth     = "crop-health"
	FragmentGauge      = "crop-gauge"
)

// ChartPanel is a rendered chart plus its series legend.
type ChartPanel struct {
	Title  string
	Config widgets.Config
	SVG    template.HTML
}

func chartPanel(title string, spec widgets.ChartSpec) (ChartPanel, error) {
	cfg, err := widgets.Build(spec)
	if err != nil {
		return ChartPanel{}, fmt.Errorf("build %s chart: %w", title, err)
	}
	var buf bytes.Buffer
	if err := widgets.RenderSVG(cfg, &buf); err != nil {
		return ChartPanel{}, fmt.Errorf("render %s chart: %w", title, err)
	}
	return ChartPanel{Title: title, Config: cfg, SVG: template.HTML(buf.String())}, nil
}

// Option is a rendered picker option.
type Option struct {
	Value    string
	Selected bool
}

func options[T ~string](c selection.Control[T]) []Option {
	cs := c.Choices()
	out := make([]Option, len(cs))
	for i, ch := range cs {
		out[i] = Option{Value: string(ch.Value), Selected: ch.Selected}
	}
	return out
}

// AlertFeed is an alert list with its header count.
type AlertFeed struct {
	Items  []widgets.AlertItem
	Active int
}

func alertFeed(alerts []models.Alert) AlertFeed {
	return AlertFeed{Items: widgets.AlertItems(alerts), Active: len(alerts)}
}
