package charts

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildToolComparisonRadar_FixedAxes(t *testing.T) {
	desc := BuildToolComparisonRadar(nil)

	assert.Equal(t, KindRadar, desc.Kind)
	assert.Equal(t, []string{
		"Scanning",
		"Manual Testing",
		"Automation",
		"Reporting",
		"Ease of Use",
	}, desc.Labels)
	assert.Empty(t, desc.Series, "empty tool list yields zero series")
}

func TestBuildToolComparisonRadar_OmittedCapabilitiesDefaultIndividually(t *testing.T) {
	desc := BuildToolComparisonRadar([]ToolRecord{{
		Name:         "X",
		Capabilities: CapabilityRatings{Scanning: 8},
	}})

	require.Len(t, desc.Series, 1)
	assert.Equal(t, []float64{8, 0, 0, 0, 0}, desc.Series[0].Values)
}

func TestBuildToolComparisonRadar_PaletteCycles(t *testing.T) {
	tools := make([]ToolRecord, 7)
	for i := range tools {
		tools[i] = ToolRecord{Name: fmt.Sprintf("tool-%d", i)}
	}

	desc := BuildToolComparisonRadar(tools)
	require.Len(t, desc.Series, 7)

	// Palette length is 5, so series 6 and 7 reuse positions 0 and 1.
	assert.Equal(t, desc.Series[0].StrokeColor, desc.Series[5].StrokeColor)
	assert.Equal(t, desc.Series[1].StrokeColor, desc.Series[6].StrokeColor)
	assert.NotEqual(t, desc.Series[0].StrokeColor, desc.Series[1].StrokeColor)
}

func TestBuildToolComparisonRadar_FillIsStrokeAtReducedAlpha(t *testing.T) {
	desc := BuildToolComparisonRadar([]ToolRecord{{Name: "A"}})

	require.Len(t, desc.Series, 1)
	stroke := toolColor(0)
	assert.Equal(t, stroke.String(), desc.Series[0].StrokeColor)
	assert.Equal(t, stroke.WithAlpha(0.2).String(), desc.Series[0].FillColor)
}

func TestBuildToolComparisonRadar_FixedScale(t *testing.T) {
	desc := BuildToolComparisonRadar(nil)

	require.NotNil(t, desc.Style.RScale)
	require.NotNil(t, desc.Style.RScale.Min)
	require.NotNil(t, desc.Style.RScale.Max)
	assert.Equal(t, float64(0), *desc.Style.RScale.Min)
	assert.Equal(t, float64(10), *desc.Style.RScale.Max)
}
