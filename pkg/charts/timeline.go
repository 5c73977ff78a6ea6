package charts

// lineTension is the cosmetic smoothing factor for timeline curves. It
// does not alter the data.
const lineTension = 0.4

// TimelineInput feeds BuildTimelineSeries: period labels positionally
// zipped with counts. Nil slices resolve to empty sequences.
type TimelineInput struct {
	Labels []string
	Data   []float64
}

// BuildTimelineSeries shapes counts over labeled periods into a single
// filled, smoothed line descriptor with enlarged hover markers. Empty
// input yields a descriptor with zero data points.
func BuildTimelineSeries(in TimelineInput) *Descriptor {
	labels := in.Labels
	if labels == nil {
		labels = []string{}
	}
	data := in.Data
	if data == nil {
		data = []float64{}
	}

	style := ResolveStyle(KindLine, BrandPrimary)
	style.YScale.SuggestedMin = fptr(0)

	return &Descriptor{
		Kind:   KindLine,
		Labels: labels,
		Series: []Series{{
			Name:             "Items",
			Values:           data,
			Fill:             true,
			FillColor:        BrandPrimary.WithAlpha(0.2).String(),
			StrokeColor:      BrandPrimary.String(),
			PointFill:        BrandPrimary.String(),
			PointStroke:      pointStrokeWhite.String(),
			Tension:          lineTension,
			PointHoverRadius: 6,
		}},
		Style: style,
	}
}
