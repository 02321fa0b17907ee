package widgets

import (
	"fmt"

	"github.com/lox/agrimind/internal/models"
)

// AlertStyle is the left border and icon colour of an alert row.
type AlertStyle struct {
	Border string
	Icon   string
}

func SeverityStyle(s models.Severity) AlertStyle {
	switch s {
	case models.SeverityInfo:
		return AlertStyle{Border: Theme.Sky, Icon: Theme.Sky}
	case models.SeverityWarning:
		return AlertStyle{Border: Theme.Warning, Icon: Theme.Warning}
	case models.SeverityError:
		return AlertStyle{Border: Theme.Destructive, Icon: Theme.Destructive}
	}
	panic(fmt.Sprintf("widgets: unknown severity %q", s))
}

type AlertItem struct {
	models.Alert
	Style AlertStyle
}

// AlertItems keeps the feed order; feeds arrive newest first.
func AlertItems(alerts []models.Alert) []AlertItem {
	out := make([]AlertItem, len(alerts))
	for i, a := range alerts {
		out[i] = AlertItem{Alert: a, Style: SeverityStyle(a.Severity)}
	}
	return out
}

func RiskBadge(r models.RiskLevel) Badge {
	switch r {
	case models.RiskHigh:
		return Badge{Label: "High Risk", Tone: models.ToneDestructive}
	case models.RiskMedium:
		return Badge{Label: "Medium Risk", Tone: models.ToneWarning}
	case models.RiskLow:
		return Badge{Label: "Low Risk", Tone: models.ToneLeaf}
	}
	panic(fmt.Sprintf("widgets: unknown risk level %q", r))
}

type DiseaseCard struct {
	models.DiseaseAlert
	Badge Badge
}

func DiseaseCards(alerts []models.DiseaseAlert) []DiseaseCard {
	out := make([]DiseaseCard, len(alerts))
	for i, a := range alerts {
		out[i] = DiseaseCard{DiseaseAlert: a, Badge: RiskBadge(a.Risk)}
	}
	return out
}

func CaptureTagBadge(t models.CaptureTag) Badge {
	switch t {
	case models.TagHealthy:
		return Badge{Label: string(t), Tone: models.ToneLeaf}
	case models.TagStress:
		return Badge{Label: string(t), Tone: models.ToneWarning}
	case models.TagDisease:
		return Badge{Label: string(t), Tone: models.ToneDestructive}
	}
	panic(fmt.Sprintf("widgets: unknown capture tag %q", t))
}

type CaptureTile struct {
	models.DroneCapture
	Badge Badge
}

func CaptureTiles(captures []models.DroneCapture) []CaptureTile {
	out := make([]CaptureTile, len(captures))
	for i, c := range captures {
		out[i] = CaptureTile{DroneCapture: c, Badge: CaptureTagBadge(c.Tag)}
	}
	return out
}

func InsightTone(k models.InsightKind) models.Tone {
	switch k {
	case models.InsightInfo:
		return models.ToneSky
	case models.InsightWarning:
		return models.ToneWarning
	case models.InsightSuccess:
		return models.ToneLeaf
	}
	panic(fmt.Sprintf("widgets: unknown insight kind %q", k))
}

type InsightItem struct {
	models.Insight
	Colour string
}

func InsightItems(in []models.Insight) []InsightItem {
	out := make([]InsightItem, len(in))
	for i, n := range in {
		out[i] = InsightItem{Insight: n, Colour: Theme.ToneColour(InsightTone(n.Kind))}
	}
	return out
}
