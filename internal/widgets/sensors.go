package widgets

import (
	"fmt"

	"github.com/lox/agrimind/internal/icons"
	"github.com/lox/agrimind/internal/models"
)

type BatteryLevel string

const (
	BatteryFull   BatteryLevel = "full"
	BatteryMedium BatteryLevel = "medium"
	BatteryLow    BatteryLevel = "low"
)

// BatteryTier buckets a charge percentage: above 60 full, above 20 medium.
func BatteryTier(pct int) BatteryLevel {
	switch {
	case pct > 60:
		return BatteryFull
	case pct > 20:
		return BatteryMedium
	default:
		return BatteryLow
	}
}

func (b BatteryLevel) Icon() icons.Icon {
	switch b {
	case BatteryFull:
		return icons.BatteryFull
	case BatteryMedium:
		return icons.BatteryMedium
	case BatteryLow:
		return icons.BatteryLow
	}
	panic(fmt.Sprintf("widgets: unknown battery level %q", b))
}

func (b BatteryLevel) Tone() models.Tone {
	switch b {
	case BatteryFull:
		return models.ToneLeaf
	case BatteryMedium:
		return models.ToneWarning
	case BatteryLow:
		return models.ToneDestructive
	}
	panic(fmt.Sprintf("widgets: unknown battery level %q", b))
}

// SignalGlyph shows a disconnected glyph only when there is no signal.
func SignalGlyph(level models.SignalLevel) icons.Icon {
	switch level {
	case models.SignalNone:
		return icons.WifiOff
	case models.SignalWeak, models.SignalMedium, models.SignalStrong:
		return icons.Wifi
	}
	panic(fmt.Sprintf("widgets: unknown signal level %q", level))
}

// Badge is a small coloured pill.
type Badge struct {
	Label string
	Tone  models.Tone
}

func (b Badge) Colour() string { return Theme.ToneColour(b.Tone) }

func StatusBadge(s models.SensorStatus) Badge {
	switch s {
	case models.StatusHealthy:
		return Badge{Label: "Healthy", Tone: models.ToneLeaf}
	case models.StatusWarning:
		return Badge{Label: "Warning", Tone: models.ToneWarning}
	case models.StatusOffline:
		return Badge{Label: "Offline", Tone: models.ToneDestructive}
	}
	panic(fmt.Sprintf("widgets: unknown sensor status %q", s))
}

type SensorCard struct {
	models.Sensor
	Battery BatteryLevel
	Signal  icons.Icon
	Badge   Badge
}

// BatteryColour is the fill colour of the battery bar.
func (c SensorCard) BatteryColour() string { return Theme.ToneColour(c.Battery.Tone()) }

// BatteryIconColour flags a battery at or below 20%.
func (c SensorCard) BatteryIconColour() string {
	if c.BatteryPct <= 20 {
		return Theme.Destructive
	}
	return Theme.Muted
}

func (c SensorCard) SignalColour() string {
	switch c.Sensor.Signal {
	case models.SignalNone:
		return Theme.Destructive
	case models.SignalWeak:
		return Theme.Warning
	default:
		return Theme.Muted
	}
}

// SensorCards renders sensors in the order given.
func SensorCards(sensors []models.Sensor) []SensorCard {
	out := make([]SensorCard, len(sensors))
	for i, s := range sensors {
		out[i] = SensorCard{
			Sensor:  s,
			Battery: BatteryTier(s.BatteryPct),
			Signal:  SignalGlyph(s.Signal),
			Badge:   StatusBadge(s.Status),
		}
	}
	return out
}
