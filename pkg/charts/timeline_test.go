package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTimelineSeries_AlignsLabelsAndValues(t *testing.T) {
	desc := BuildTimelineSeries(TimelineInput{
		Labels: []string{"2025-01-01", "2025-01-02"},
		Data:   []float64{3, 5},
	})

	assert.Equal(t, KindLine, desc.Kind)
	assert.Equal(t, []string{"2025-01-01", "2025-01-02"}, desc.Labels)
	require.Len(t, desc.Series, 1)
	assert.Equal(t, []float64{3, 5}, desc.Series[0].Values)
}

func TestBuildTimelineSeries_EmptyInput(t *testing.T) {
	desc := BuildTimelineSeries(TimelineInput{})

	assert.Empty(t, desc.Labels)
	require.Len(t, desc.Series, 1)
	assert.Empty(t, desc.Series[0].Values)
}

func TestBuildTimelineSeries_Smoothing(t *testing.T) {
	desc := BuildTimelineSeries(TimelineInput{Labels: []string{"a"}, Data: []float64{1}})

	assert.InDelta(t, 0.4, desc.Series[0].Tension, 0.001)
	assert.True(t, desc.Series[0].Fill)
	assert.Equal(t, 6, desc.Series[0].PointHoverRadius)
}

func TestResolveStyle_ScaleKeysPerKind(t *testing.T) {
	radar := ResolveStyle(KindRadar, BrandPrimary)
	assert.NotNil(t, radar.RScale)
	assert.Nil(t, radar.XScale)

	line := ResolveStyle(KindLine, BrandPrimary)
	assert.Nil(t, line.RScale)
	assert.NotNil(t, line.XScale)
	assert.NotNil(t, line.YScale)

	doughnut := ResolveStyle(KindDoughnut, ThreatRed)
	assert.Nil(t, doughnut.RScale)
	assert.Nil(t, doughnut.XScale)
	assert.Equal(t, ThreatRed.String(), doughnut.Accent)
}
