package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSeverityDoughnut_Defaults(t *testing.T) {
	desc := BuildSeverityDoughnut(DistributionInput{})

	assert.Equal(t, KindDoughnut, desc.Kind)
	assert.Equal(t, []string{"Critical", "High", "Medium", "Low"}, desc.Labels)
	require.Len(t, desc.Series, 1)
	assert.Equal(t, []float64{0, 0, 0, 0}, desc.Series[0].Values)
	assert.Len(t, desc.Series[0].SliceColors, 4)
	assert.True(t, desc.Style.Tooltip.ShowPercent)
}

func TestBuildSeverityDoughnut_ColorsArePositional(t *testing.T) {
	custom := BuildSeverityDoughnut(DistributionInput{
		Labels: []string{"Sev1", "Sev2", "Sev3", "Sev4"},
		Data:   []float64{1, 2, 3, 4},
	})
	stock := BuildSeverityDoughnut(DistributionInput{})

	// Renamed buckets keep the Critical/High/Medium/Low color order.
	assert.Equal(t, stock.Series[0].SliceColors, custom.Series[0].SliceColors)
}

func TestSlicePercent(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		series []float64
		want   int
	}{
		{name: "proportional share", value: 20, series: []float64{10, 20, 30, 40}, want: 20},
		{name: "rounds to nearest", value: 1, series: []float64{1, 2}, want: 33},
		{name: "rounds up", value: 2, series: []float64{1, 2}, want: 67},
		{name: "full share", value: 5, series: []float64{5}, want: 100},
		{name: "zero sum guards division", value: 0, series: []float64{0, 0, 0, 0}, want: 0},
		{name: "zero sum with nonzero value", value: 7, series: []float64{0, 0}, want: 0},
		{name: "empty series", value: 3, series: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SlicePercent(tt.value, tt.series))
		})
	}
}
