package charts

// severityLabels are the four default severity buckets, in fixed order.
var severityLabels = []string{"Critical", "High", "Medium", "Low"}

// BuildSeverityDoughnut shapes a four-bucket severity breakdown into a
// doughnut descriptor. Slice colors apply by position in the fixed
// Critical/High/Medium/Low order even when the caller supplies its own
// labels. The mapping is positional, never a lookup by name.
func BuildSeverityDoughnut(in DistributionInput) *Descriptor {
	labels := in.Labels
	if labels == nil {
		labels = append([]string(nil), severityLabels...)
	}
	data := in.Data
	if data == nil {
		data = make([]float64, len(severityLabels))
	}

	slices := make([]string, len(severitySlices))
	for i, c := range severitySlices {
		slices[i] = c.String()
	}

	style := ResolveStyle(KindDoughnut, BrandPrimary)
	style.Legend.Position = "bottom"
	style.Tooltip.ShowPercent = true

	return &Descriptor{
		Kind:   KindDoughnut,
		Labels: labels,
		Series: []Series{{
			Name:        "Findings",
			Values:      data,
			SliceColors: slices,
		}},
		Style: style,
	}
}
