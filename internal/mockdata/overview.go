package mockdata

import (
	"slices"

	"github.com/lox/agrimind/internal/icons"
	"github.com/lox/agrimind/internal/models"
)

// Series keys for the overview charts.
const (
	KeyYield     = "yield"
	KeyPredicted = "predicted"
	KeyMoisture  = "moisture"
	KeySoilTemp  = "temp"
)

var (
	yieldTrend = points(
		[]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"},
		map[string][]float64{
			KeyYield:     {65, 72, 78, 85, 92, 88},
			KeyPredicted: {68, 70, 80, 88, 95, 90},
		})
	soilToday = points(
		[]string{"6am", "9am", "12pm", "3pm", "6pm", "9pm"},
		map[string][]float64{
			KeyMoisture: {72, 68, 55, 48, 52, 60},
			KeySoilTemp: {18, 22, 28, 32, 26, 20},
		})
)

// YieldTrend is actual versus AI-predicted yield by month.
func YieldTrend() []models.TimeSeriesPoint { return clonePoints(yieldTrend) }

// SoilToday is today's soil moisture and temperature readings.
func SoilToday() []models.TimeSeriesPoint { return clonePoints(soilToday) }

var cropHealth = []models.CropHealth{
	{Name: "Wheat", Health: 92},
	{Name: "Corn", Health: 87},
	{Name: "Soybean", Health: 78},
	{Name: "Rice", Health: 95},
}

func CropHealth() []models.CropHealth { return slices.Clone(cropHealth) }

var overviewStats = []models.OverviewStat{
	{Icon: icons.Heart, Label: "Farm Health Score", Value: "87/100", Change: "+3%", Tone: models.ToneLeaf},
	{Icon: icons.Droplets, Label: "Soil Moisture", Value: "64%", Change: "+5%", Tone: models.ToneSky},
	{Icon: icons.Leaf, Label: "Crop Health Index", Value: "91%", Change: "+2%", Tone: models.TonePrimary},
	{Icon: icons.ThermometerSun, Label: "Soil Temp", Value: "24°C", Change: "+1°", Tone: models.ToneWarning},
}

func OverviewStats() []models.OverviewStat { return slices.Clone(overviewStats) }

// FarmHealthScore is the headline score shown on the overview and preview image.
const FarmHealthScore = 87

var insights = []models.Insight{
	{Icon: icons.AlertTriangle, Text: "Pest risk detected in Field B — wheat section", Kind: models.InsightWarning},
	{Icon: icons.Droplets, Text: "Irrigation needed in Zone 3 within 4 hours", Kind: models.InsightInfo},
	{Icon: icons.TrendingUp, Text: "Corn yield forecast increased by 8%", Kind: models.InsightSuccess},
}

func Insights() []models.Insight { return slices.Clone(insights) }

// CurrentWeather is the overview weather widget reading.
type CurrentWeather struct {
	Temp      string
	Condition string
	Humidity  string
	Wind      string
	Rain      string
}

func Weather() CurrentWeather {
	return CurrentWeather{Temp: "28°C", Condition: "Partly Cloudy", Humidity: "65%", Wind: "12 km/h", Rain: "20%"}
}

// PremiumModules are the locked cards shown to free-plan users.
func PremiumModules() []string {
	return []string{"Precision Farming", "Autonomous Machinery", "Livestock Monitoring"}
}

// QuickStat is a label/value row on the irrigation card.
type QuickStat struct {
	Label string
	Value string
	Tone  models.Tone
}

func IrrigationQuickStats() []QuickStat {
	return []QuickStat{
		{Label: "Last Irrigated", Value: "2 days ago"},
		{Label: "Water Saved", Value: "1,240 L", Tone: models.ToneLeaf},
		{Label: "Next Window", Value: "Tomorrow 6AM", Tone: models.ToneAccent},
	}
}
