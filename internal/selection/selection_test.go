package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/agrimind/internal/models"
)

func TestControlSelect(t *testing.T) {
	t.Parallel()
	c := NewControl("size", []string{"s", "m", "l"}, "m")

	require.NoError(t, c.Select("l"))
	assert.Equal(t, "l", c.Current)

	err := c.Select("xl")
	assert.ErrorIs(t, err, ErrInvalidChoice)
	assert.Equal(t, "l", c.Current)
}

func TestControlChoicesFlagCurrent(t *testing.T) {
	t.Parallel()
	c := NewControl("size", []string{"s", "m", "l"}, "m")
	assert.Equal(t, []Choice[string]{{"s", false}, {"m", true}, {"l", false}}, c.Choices())
}

func TestNewControlRejectsForeignInitial(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { NewControl("size", []string{"s"}, "m") })
}

func TestDefaults(t *testing.T) {
	t.Parallel()
	assert.Equal(t, PrecisionSignals{Field: "Field A", Fertilizer: "Field B", Range: "7d"}, DefaultPrecision().Signals())
	assert.Equal(t, CropSignals{Field: "All Fields", Overlay: "NDVI", Period: "Weekly"}, DefaultCrop().Signals())
}

func TestPrecisionApplyChangesOneControl(t *testing.T) {
	t.Parallel()
	tests := []struct {
		control, value string
		want           PrecisionSignals
	}{
		{ControlField, "Field C", PrecisionSignals{"Field C", "Field B", "7d"}},
		{ControlFertilizer, "Field A", PrecisionSignals{"Field A", "Field A", "7d"}},
		{ControlRange, "90d", PrecisionSignals{"Field A", "Field B", "90d"}},
	}
	for _, tt := range tests {
		t.Run(tt.control, func(t *testing.T) {
			p := DefaultPrecision()
			require.NoError(t, p.Apply(tt.control, tt.value))
			assert.Equal(t, tt.want, p.Signals())
		})
	}
}

func TestApplyRejectsInvalidValues(t *testing.T) {
	t.Parallel()
	p := DefaultPrecision()
	assert.ErrorIs(t, p.Apply(ControlField, "Field D"), ErrInvalidChoice)
	assert.ErrorIs(t, p.Apply(ControlRange, "1y"), ErrInvalidChoice)
	assert.ErrorIs(t, p.Apply("overlay", "NDVI"), ErrUnknownControl)
	assert.Equal(t, DefaultPrecision().Signals(), p.Signals())

	c := DefaultCrop()
	assert.ErrorIs(t, c.Apply(ControlOverlay, "Infrared"), ErrInvalidChoice)
	assert.ErrorIs(t, c.Apply(ControlPeriod, "Daily"), ErrInvalidChoice)
	assert.Equal(t, DefaultCrop().Signals(), c.Signals())
}

func TestCropApplyEveryOverlay(t *testing.T) {
	t.Parallel()
	for _, k := range models.AllOverlayKinds() {
		c := DefaultCrop()
		require.NoError(t, c.Apply(ControlOverlay, string(k)))
		assert.Equal(t, k, c.Overlay.Current)
		assert.Equal(t, "All Fields", c.Field.Current)
		assert.Equal(t, models.PeriodWeekly, c.Period.Current)
	}
}

func TestFromSignalsFallsBackPerField(t *testing.T) {
	t.Parallel()
	c := CropFromSignals(CropSignals{Field: "Field D", Overlay: "bogus", Period: "Monthly"})
	assert.Equal(t, CropSignals{Field: "Field D", Overlay: "NDVI", Period: "Monthly"}, c.Signals())

	p := PrecisionFromSignals(PrecisionSignals{})
	assert.Equal(t, DefaultPrecision().Signals(), p.Signals())
}

func TestStatesAreIndependent(t *testing.T) {
	t.Parallel()
	a := DefaultCrop()
	b := DefaultCrop()
	require.NoError(t, a.Apply(ControlField, "Field B"))
	assert.Equal(t, "All Fields", b.Field.Current)
}
