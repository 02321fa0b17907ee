package pages

import (
	"github.com/lox/agrimind/internal/mockdata"
	"github.com/lox/agrimind/internal/models"
	"github.com/lox/agrimind/internal/widgets"
)

type Overview struct {
	Greeting   string
	Subtitle   string
	Stats      []widgets.OverviewCard
	Yield      ChartPanel
	Weather    mockdata.CurrentWeather
	Soil       ChartPanel
	CropHealth ChartPanel
	Insights   []widgets.InsightItem
	Locked     []string
}

func BuildOverview() (Overview, error) {
	yield, err := chartPanel("Yield Prediction", widgets.ChartSpec{
		Points: mockdata.YieldTrend(),
		Keys: []widgets.SeriesKey{
			{Key: mockdata.KeyYield, Name: "Actual", Colour: widgets.Theme.Leaf},
			{Key: mockdata.KeyPredicted, Name: "AI Predicted", Colour: widgets.Theme.Sky, Dashed: true},
		},
		Style: widgets.StyleArea,
	})
	if err != nil {
		return Overview{}, err
	}

	soil, err := chartPanel("Soil Moisture Today", widgets.ChartSpec{
		Points: mockdata.SoilToday(),
		Keys: []widgets.SeriesKey{
			{Key: mockdata.KeyMoisture, Name: "Moisture %", Colour: widgets.Theme.Sky},
			{Key: mockdata.KeySoilTemp, Name: "Temp °C", Colour: widgets.Theme.Warning},
		},
		Style: widgets.StyleLine,
	})
	if err != nil {
		return Overview{}, err
	}

	var health []models.TimeSeriesPoint
	for _, c := range mockdata.CropHealth() {
		health = append(health, models.TimeSeriesPoint{Label: c.Name, Values: map[string]float64{mockdata.KeyHealth: c.Health}})
	}
	crops, err := chartPanel("Crop Health", widgets.ChartSpec{
		Points: health,
		Keys:   []widgets.SeriesKey{{Key: mockdata.KeyHealth, Name: "Health", Colour: widgets.Theme.Leaf}},
		Domain: &widgets.Domain{Min: 0, Max: 100},
		Style:  widgets.StyleBar,
	})
	if err != nil {
		return Overview{}, err
	}

	return Overview{
		Greeting:   "Good morning, John 👋",
		Subtitle:   "Here's what's happening on your farm today.",
		Stats:      widgets.OverviewCards(mockdata.OverviewStats()),
		Yield:      yield,
		Weather:    mockdata.Weather(),
		Soil:       soil,
		CropHealth: crops,
		Insights:   widgets.InsightItems(mockdata.Insights()),
		Locked:     mockdata.PremiumModules(),
	}, nil
}
