package selection

import (
	"errors"
	"fmt"

	"github.com/lox/agrimind/internal/mockdata"
	"github.com/lox/agrimind/internal/models"
)

// ErrUnknownControl is returned by Apply for a control name the page lacks.
var ErrUnknownControl = errors.New("unknown control")

// Control names as they appear in action URLs.
const (
	ControlField      = "field"
	ControlFertilizer = "fertilizer"
	ControlRange      = "range"
	ControlOverlay    = "overlay"
	ControlPeriod     = "period"
)

// PrecisionSignals is the client-side signal shape for the precision page.
type PrecisionSignals struct {
	Field      string `json:"field"`
	Fertilizer string `json:"fertilizer"`
	Range      string `json:"range"`
}

// Precision is the precision farming page state. The moisture gauge and
// irrigation card follow Field; the nutrient card has its own selector.
type Precision struct {
	Field      Control[string]
	Fertilizer Control[string]
	Range      Control[models.TimeRange]
}

func DefaultPrecision() Precision {
	return Precision{
		Field:      NewControl(ControlField, mockdata.PrecisionFields(), mockdata.FieldA),
		Fertilizer: NewControl(ControlFertilizer, mockdata.PrecisionFields(), mockdata.FieldB),
		Range:      NewControl(ControlRange, models.AllTimeRanges(), models.Range7d),
	}
}

// Apply changes exactly one control.
func (p *Precision) Apply(control, value string) error {
	switch control {
	case ControlField:
		return p.Field.Select(value)
	case ControlFertilizer:
		return p.Fertilizer.Select(value)
	case ControlRange:
		return p.Range.Select(models.TimeRange(value))
	}
	return fmt.Errorf("precision: %w %q", ErrUnknownControl, control)
}

// PrecisionFromSignals rebuilds the state from client signals. Missing or
// invalid values fall back to the page defaults.
func PrecisionFromSignals(s PrecisionSignals) Precision {
	p := DefaultPrecision()
	_ = p.Field.Select(s.Field)
	_ = p.Fertilizer.Select(s.Fertilizer)
	_ = p.Range.Select(models.TimeRange(s.Range))
	return p
}

func (p Precision) Signals() PrecisionSignals {
	return PrecisionSignals{
		Field:      p.Field.Current,
		Fertilizer: p.Fertilizer.Current,
		Range:      string(p.Range.Current),
	}
}

// CropSignals is the client-side signal shape for the crop monitoring page.
type CropSignals struct {
	Field   string `json:"field"`
	Overlay string `json:"overlay"`
	Period  string `json:"period"`
}

// Crop is the crop monitoring page state.
type Crop struct {
	Field   Control[string]
	Overlay Control[models.OverlayKind]
	Period  Control[models.TrendPeriod]
}

func DefaultCrop() Crop {
	return Crop{
		Field:   NewControl(ControlField, mockdata.CropFields(), mockdata.AllFields),
		Overlay: NewControl(ControlOverlay, models.AllOverlayKinds(), models.OverlayNDVI),
		Period:  NewControl(ControlPeriod, models.AllTrendPeriods(), models.PeriodWeekly),
	}
}

func (c *Crop) Apply(control, value string) error {
	switch control {
	case ControlField:
		return c.Field.Select(value)
	case ControlOverlay:
		return c.Overlay.Select(models.OverlayKind(value))
	case ControlPeriod:
		return c.Period.Select(models.TrendPeriod(value))
	}
	return fmt.Errorf("crop: %w %q", ErrUnknownControl, control)
}

func CropFromSignals(s CropSignals) Crop {
	c := DefaultCrop()
	_ = c.Field.Select(s.Field)
	_ = c.Overlay.Select(models.OverlayKind(s.Overlay))
	_ = c.Period.Select(models.TrendPeriod(s.Period))
	return c
}

func (c Crop) Signals() CropSignals {
	return CropSignals{
		Field:   c.Field.Current,
		Overlay: string(c.Overlay.Current),
		Period:  string(c.Period.Current),
	}
}
