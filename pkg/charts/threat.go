package charts

// threatCategories are the six default threat-category axes.
var threatCategories = []string{
	"Web Application",
	"Network",
	"Authentication",
	"Privilege Escalation",
	"Code Execution",
	"Data Exposure",
}

// DistributionInput feeds the distribution builders: labels positionally
// zipped with counts. Nil slices resolve to the builder's defaults.
type DistributionInput struct {
	Labels []string
	Data   []float64
}

// BuildThreatDistributionRadar shapes threat-category counts into a single
// red-toned radar series. The legend is always suppressed; context comes
// from the surrounding page. The axis floor is fixed at 0 and the ceiling
// auto-scales to the data.
func BuildThreatDistributionRadar(in DistributionInput) *Descriptor {
	labels := in.Labels
	if labels == nil {
		labels = append([]string(nil), threatCategories...)
	}
	data := in.Data
	if data == nil {
		data = make([]float64, len(threatCategories))
	}

	style := ResolveStyle(KindRadar, ThreatRed)
	style.Legend.Display = false
	style.RScale.Min = fptr(0)

	return &Descriptor{
		Kind:   KindRadar,
		Labels: labels,
		Series: []Series{{
			Name:        "Threats",
			Values:      data,
			Fill:        true,
			FillColor:   ThreatRed.WithAlpha(0.2).String(),
			StrokeColor: ThreatRed.String(),
			PointFill:   ThreatRed.String(),
			PointStroke: pointStrokeWhite.String(),
		}},
		Style: style,
	}
}
