package widgets

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"math"
	"strconv"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/lox/agrimind/internal/models"
)

type ChartStyle string

const (
	StyleLine ChartStyle = "line"
	StyleArea ChartStyle = "area"
	StyleBar  ChartStyle = "bar"
)

const (
	defaultChartWidth  = 560
	defaultChartHeight = 260
)

var (
	ErrNoPoints     = errors.New("chart has no points")
	ErrNoSeries     = errors.New("chart has no series keys")
	ErrMissingValue = errors.New("series value missing")
	ErrChartStyle   = errors.New("unknown chart style")
	ErrDomain       = errors.New("chart domain min must be below max")
)

// SeriesKey selects one value column from the points. In an area chart a
// dashed series is drawn as a line without fill. An empty Colour draws in
// the leaf colour.
type SeriesKey struct {
	Key    string
	Name   string
	Colour string
	Dashed bool
}

// Domain is the shared value axis range.
type Domain struct {
	Min float64
	Max float64
}

type ChartSpec struct {
	Points []models.TimeSeriesPoint
	Keys   []SeriesKey
	// Domain overrides the data-derived axis range when set.
	Domain *Domain
	Style  ChartStyle
	Width  int
	Height int
}

type Series struct {
	SeriesKey
	Values []float64
}

// Config is the extracted, render-ready chart description.
type Config struct {
	Labels []string
	Series []Series
	Domain Domain
	Style  ChartStyle
	Width  int
	Height int
}

// Build extracts labels and per-key values in input order. Values are passed
// through untouched: no sorting, interpolation or smoothing.
func Build(spec ChartSpec) (Config, error) {
	if len(spec.Points) == 0 {
		return Config{}, ErrNoPoints
	}
	if len(spec.Keys) == 0 {
		return Config{}, ErrNoSeries
	}
	style := spec.Style
	switch style {
	case "":
		style = StyleLine
	case StyleLine, StyleArea, StyleBar:
	default:
		return Config{}, fmt.Errorf("%w %q", ErrChartStyle, style)
	}
	if d := spec.Domain; d != nil && !(d.Min < d.Max) {
		return Config{}, fmt.Errorf("%w: got %g..%g", ErrDomain, d.Min, d.Max)
	}
	if style == StyleBar && len(spec.Keys) != 1 {
		return Config{}, fmt.Errorf("bar chart takes exactly one series, got %d", len(spec.Keys))
	}

	cfg := Config{
		Labels: make([]string, len(spec.Points)),
		Style:  style,
		Width:  spec.Width,
		Height: spec.Height,
	}
	if cfg.Width == 0 {
		cfg.Width = defaultChartWidth
	}
	if cfg.Height == 0 {
		cfg.Height = defaultChartHeight
	}
	for i, p := range spec.Points {
		cfg.Labels[i] = p.Label
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, k := range spec.Keys {
		s := Series{SeriesKey: k, Values: make([]float64, len(spec.Points))}
		if s.Name == "" {
			s.Name = k.Key
		}
		if s.Colour == "" {
			s.Colour = Theme.Leaf
		}
		for i, p := range spec.Points {
			v, ok := p.Values[k.Key]
			if !ok {
				return Config{}, fmt.Errorf("%w: point %q key %q", ErrMissingValue, p.Label, k.Key)
			}
			s.Values[i] = v
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		cfg.Series = append(cfg.Series, s)
	}

	if spec.Domain != nil {
		cfg.Domain = *spec.Domain
	} else {
		if lo == hi {
			lo, hi = lo-1, hi+1
		}
		cfg.Domain = Domain{Min: lo, Max: hi}
	}
	return cfg, nil
}

// RenderSVG draws the chart with go-chart and appends a hover layer whose
// <title> elements carry the exact input values per category.
func RenderSVG(cfg Config, w io.Writer) error {
	var buf bytes.Buffer
	var err error
	if cfg.Style == StyleBar {
		err = barChart(cfg).Render(chart.SVG, &buf)
	} else {
		err = lineChart(cfg).Render(chart.SVG, &buf)
	}
	if err != nil {
		return fmt.Errorf("render %s chart: %w", cfg.Style, err)
	}

	out := buf.Bytes()
	end := bytes.LastIndex(out, []byte("</svg>"))
	if end < 0 {
		return errors.New("render chart: no svg root in renderer output")
	}
	if _, err := w.Write(out[:end]); err != nil {
		return err
	}
	if _, err := io.WriteString(w, tooltipLayer(cfg)); err != nil {
		return err
	}
	_, err = w.Write(out[end:])
	return err
}

// Tooltip is the hover text for one category.
func (cfg Config) Tooltip(i int) string {
	parts := []string{cfg.Labels[i]}
	for _, s := range cfg.Series {
		parts = append(parts, s.Name+": "+strconv.FormatFloat(s.Values[i], 'f', -1, 64))
	}
	return strings.Join(parts, " · ")
}

func tooltipLayer(cfg Config) string {
	var b strings.Builder
	b.WriteString(`<g class="chart-tips">`)
	band := float64(cfg.Width) / float64(len(cfg.Labels))
	for i := range cfg.Labels {
		fmt.Fprintf(&b, `<rect x="%.1f" y="0" width="%.1f" height="%d" fill="transparent"><title>%s</title></rect>`,
			float64(i)*band, band, cfg.Height, html.EscapeString(cfg.Tooltip(i)))
	}
	b.WriteString(`</g>`)
	return b.String()
}

func colour(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

func axisStyle() chart.Style {
	return chart.Style{
		FontSize:    9,
		FontColor:   colour(Theme.Axis),
		StrokeColor: colour(Theme.Grid),
	}
}

func yAxis(d Domain) chart.YAxis {
	step := (d.Max - d.Min) / 4
	ticks := make([]chart.Tick, 5)
	for i := range ticks {
		v := d.Min + float64(i)*step
		ticks[i] = chart.Tick{Value: v, Label: strconv.FormatFloat(math.Round(v), 'f', -1, 64)}
	}
	return chart.YAxis{
		Style:          axisStyle(),
		Range:          &chart.ContinuousRange{Min: d.Min, Max: d.Max},
		Ticks:          ticks,
		GridMajorStyle: chart.Style{StrokeColor: colour(Theme.Grid), StrokeWidth: 1, StrokeDashArray: []float64{3, 3}},
	}
}

func lineChart(cfg Config) chart.Chart {
	xs := make([]float64, len(cfg.Labels))
	ticks := make([]chart.Tick, len(cfg.Labels))
	for i, l := range cfg.Labels {
		xs[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i), Label: l}
	}
	// go-chart needs two x values; a single category is drawn as a flat
	// segment across the plot.
	single := len(xs) == 1
	if single {
		xs = []float64{0, 1}
	}
	xr := &chart.ContinuousRange{Min: 0, Max: float64(len(xs) - 1)}

	series := make([]chart.Series, 0, len(cfg.Series))
	for _, s := range cfg.Series {
		ys := s.Values
		if single {
			ys = []float64{ys[0], ys[0]}
		}
		st := chart.Style{
			StrokeColor: colour(s.Colour),
			StrokeWidth: 2.5,
		}
		if s.Dashed {
			st.StrokeDashArray = []float64{5, 5}
		} else if cfg.Style == StyleArea {
			st.FillColor = colour(s.Colour).WithAlpha(64)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style:   st,
		})
	}

	c := chart.Chart{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Background: chart.Style{Padding: chart.Box{Top: 12, Left: 8, Right: 12, Bottom: 8}},
		XAxis:      chart.XAxis{Style: axisStyle(), Range: xr, Ticks: ticks},
		YAxis:      yAxis(cfg.Domain),
		Series:     series,
	}
	if len(series) > 1 {
		c.Elements = []chart.Renderable{chart.Legend(&c)}
	}
	return c
}

func barChart(cfg Config) chart.BarChart {
	s := cfg.Series[0]
	bars := make([]chart.Value, len(cfg.Labels))
	for i, l := range cfg.Labels {
		bars[i] = chart.Value{
			Label: l,
			Value: s.Values[i],
			Style: chart.Style{FillColor: colour(s.Colour), StrokeColor: colour(s.Colour), StrokeWidth: 0},
		}
	}
	width := cfg.Width / (3 * len(bars))
	return chart.BarChart{
		Width:      cfg.Width,
		Height:     cfg.Height,
		BarWidth:   width,
		BarSpacing: width,
		Background: chart.Style{Padding: chart.Box{Top: 12, Left: 8, Right: 12, Bottom: 8}},
		XAxis:      axisStyle(),
		YAxis:      yAxis(cfg.Domain),
		Bars:       bars,
	}
}
