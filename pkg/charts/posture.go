package charts

// postureLabels are the six fixed security-domain axes used when the
// caller supplies none.
var postureLabels = []string{
	"Access Control",
	"Data Protection",
	"Network Security",
	"Incident Response",
	"Compliance",
	"Security Awareness",
}

// PostureInput feeds BuildPostureRadar. Nil slices mean "absent" and
// resolve to defaults; a non-nil slice is taken as supplied, so a
// legitimately zero-valued score is never replaced.
type PostureInput struct {
	Labels    []string
	Scores    []float64
	Benchmark []float64
}

// BuildPostureRadar shapes one security score vector into a radar
// descriptor. A present Benchmark adds a dashed gray overlay series;
// otherwise the descriptor carries a single series. The 0-100 scale is
// suggested, not clamped.
func BuildPostureRadar(in PostureInput) *Descriptor {
	labels := in.Labels
	if labels == nil {
		labels = append([]string(nil), postureLabels...)
	}
	scores := in.Scores
	if scores == nil {
		scores = make([]float64, len(postureLabels))
	}

	series := []Series{{
		Name:        "Your Score",
		Values:      scores,
		Fill:        true,
		FillColor:   BrandPrimary.WithAlpha(0.2).String(),
		StrokeColor: BrandPrimary.String(),
		PointFill:   BrandPrimary.String(),
		PointStroke: pointStrokeWhite.String(),
	}}

	if in.Benchmark != nil {
		series = append(series, Series{
			Name:        "Industry Average",
			Values:      in.Benchmark,
			Fill:        true,
			FillColor:   NeutralGray.WithAlpha(0.15).String(),
			StrokeColor: NeutralGray.String(),
			PointFill:   NeutralGray.String(),
			PointStroke: pointStrokeWhite.String(),
			StrokeDash:  []int{5, 5},
		})
	}

	style := ResolveStyle(KindRadar, BrandPrimary)
	style.RScale.SuggestedMin = fptr(0)
	style.RScale.SuggestedMax = fptr(100)

	return &Descriptor{
		Kind:   KindRadar,
		Labels: labels,
		Series: series,
		Style:  style,
	}
}
