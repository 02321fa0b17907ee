package widgets

import (
	"math"

	"github.com/lox/agrimind/internal/icons"
	"github.com/lox/agrimind/internal/models"
)

type StatCard struct {
	models.FieldStat
	TrendIcon   icons.Icon
	TrendColour string
}

// TrendGood reports whether a stat's movement is favourable. Inverted stats
// are good when they fall.
func TrendGood(s models.FieldStat) bool {
	return (s.Direction == models.TrendUp) != s.Inverted
}

func StatCards(stats []models.FieldStat) []StatCard {
	out := make([]StatCard, len(stats))
	for i, s := range stats {
		c := StatCard{FieldStat: s, TrendIcon: icons.ArrowUpRight, TrendColour: Theme.Leaf}
		if s.Direction == models.TrendDown {
			c.TrendIcon = icons.ArrowDownRight
		}
		if !TrendGood(s) {
			c.TrendColour = Theme.Destructive
		}
		out[i] = c
	}
	return out
}

type OverviewCard struct {
	models.OverviewStat
	Colour string
}

func OverviewCards(stats []models.OverviewStat) []OverviewCard {
	out := make([]OverviewCard, len(stats))
	for i, s := range stats {
		out[i] = OverviewCard{OverviewStat: s, Colour: Theme.ToneColour(s.Tone)}
	}
	return out
}

// NutrientBar is a current-versus-optimal bar. Width is capped at 100%.
type NutrientBar struct {
	models.Nutrient
	WidthPct float64
	Over     bool
	Colour   string
}

func NutrientBars(ns []models.Nutrient) []NutrientBar {
	out := make([]NutrientBar, len(ns))
	for i, n := range ns {
		b := NutrientBar{Nutrient: n, Colour: Theme.Leaf}
		if n.Optimal > 0 {
			b.WidthPct = math.Min(n.Current/n.Optimal*100, 100)
		}
		if n.Current > n.Optimal {
			b.Over = true
			b.Colour = Theme.Warning
		}
		out[i] = b
	}
	return out
}
