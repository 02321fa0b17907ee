package pages

import (
	"fmt"

	"github.com/lox/agrimind/internal/mockdata"
	"github.com/lox/agrimind/internal/models"
	"github.com/lox/agrimind/internal/selection"
	"github.com/lox/agrimind/internal/widgets"
)

// Irrigation is the recommendation card and moisture gauge bound to the
// precision page's Field control.
type Irrigation struct {
	Field      string
	Fields     []Option
	Advice     mockdata.Advice
	Gauge      widgets.Gauge
	Forecast   []models.WeatherDay
	QuickStats []mockdata.QuickStat
}

// MoistureTrend is the per-field moisture chart bound to Range.
type MoistureTrend struct {
	Range  models.TimeRange
	Ranges []Option
	Chart  ChartPanel
}

// Fertilizer is the nutrient card bound to FertilizerField.
type Fertilizer struct {
	Field  string
	Fields []Option
	Bars   []widgets.NutrientBar
	Advice mockdata.Advice
}

type Precision struct {
	Signals    selection.PrecisionSignals
	Irrigation Irrigation
	Trend      MoistureTrend
	Fertilizer Fertilizer
	Sensors    []widgets.SensorCard
	Alerts     AlertFeed
}

func BuildPrecision(s selection.Precision) (Precision, error) {
	trend, err := BuildMoistureTrend(s)
	if err != nil {
		return Precision{}, err
	}
	irr, err := BuildIrrigation(s)
	if err != nil {
		return Precision{}, err
	}
	fert, err := BuildFertilizer(s)
	if err != nil {
		return Precision{}, err
	}
	return Precision{
		Signals:    s.Signals(),
		Irrigation: irr,
		Trend:      trend,
		Fertilizer: fert,
		Sensors:    widgets.SensorCards(mockdata.Sensors()),
		Alerts:     alertFeed(mockdata.PrecisionAlerts()),
	}, nil
}

func BuildIrrigation(s selection.Precision) (Irrigation, error) {
	field := s.Field.Current
	level, ok := mockdata.MoistureLevel(field)
	if !ok {
		return Irrigation{}, fmt.Errorf("no moisture reading for %s", field)
	}
	return Irrigation{
		Field:      field,
		Fields:     options(s.Field),
		Advice:     mockdata.IrrigationAdvice(field),
		Gauge:      widgets.NewGauge(level, "%"),
		Forecast:   mockdata.WeatherForecast(),
		QuickStats: mockdata.IrrigationQuickStats(),
	}, nil
}

func BuildMoistureTrend(s selection.Precision) (MoistureTrend, error) {
	chart, err := chartPanel("Soil Moisture Trend", widgets.ChartSpec{
		Points: mockdata.MoistureTrend(s.Range.Current),
		Keys: []widgets.SeriesKey{
			{Key: mockdata.KeyFieldA, Name: mockdata.FieldA, Colour: widgets.Theme.Leaf},
			{Key: mockdata.KeyFieldB, Name: mockdata.FieldB, Colour: widgets.Theme.Sky},
			{Key: mockdata.KeyFieldC, Name: mockdata.FieldC, Colour: widgets.Theme.Warning},
		},
		Domain: &widgets.Domain{Min: 30, Max: 100},
		Style:  widgets.StyleLine,
	})
	if err != nil {
		return MoistureTrend{}, err
	}
	return MoistureTrend{Range: s.Range.Current, Ranges: options(s.Range), Chart: chart}, nil
}

func BuildFertilizer(s selection.Precision) (Fertilizer, error) {
	field := s.Fertilizer.Current
	ns, ok := mockdata.Nutrients(field)
	if !ok {
		return Fertilizer{}, fmt.Errorf("no nutrient readings for %s", field)
	}
	advice, _ := mockdata.FertilizerAdvice(field)
	return Fertilizer{
		Field:  field,
		Fields: options(s.Fertilizer),
		Bars:   widgets.NutrientBars(ns),
		Advice: advice,
	}, nil
}
