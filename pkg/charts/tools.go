package charts

// capabilityAxes are the five fixed comparison axes, in this order, for
// every tool comparison chart. They are not configurable.
var capabilityAxes = []string{
	"Scanning",
	"Manual Testing",
	"Automation",
	"Reporting",
	"Ease of Use",
}

// CapabilityRatings rates one tool on the five fixed axes, 0-10.
// An omitted rating is 0; the whole record never falls back as a unit.
type CapabilityRatings struct {
	Scanning      float64
	ManualTesting float64
	Automation    float64
	Reporting     float64
	EaseOfUse     float64
}

// ToolRecord is one tool to plot in a comparison radar.
type ToolRecord struct {
	Name         string
	Capabilities CapabilityRatings
}

// BuildToolComparisonRadar shapes N tools into an N-series radar over the
// fixed capability axes. Colors cycle through the five-entry palette by
// series position; an empty tool list yields a descriptor with zero series.
func BuildToolComparisonRadar(tools []ToolRecord) *Descriptor {
	series := make([]Series, 0, len(tools))
	for i, tool := range tools {
		c := tool.Capabilities
		stroke := toolColor(i)
		series = append(series, Series{
			Name: tool.Name,
			Values: []float64{
				c.Scanning,
				c.ManualTesting,
				c.Automation,
				c.Reporting,
				c.EaseOfUse,
			},
			Fill:        true,
			FillColor:   stroke.WithAlpha(0.2).String(),
			StrokeColor: stroke.String(),
			PointFill:   stroke.String(),
			PointStroke: pointStrokeWhite.String(),
		})
	}

	style := ResolveStyle(KindRadar, BrandPrimary)
	style.RScale.Min = fptr(0)
	style.RScale.Max = fptr(10)

	return &Descriptor{
		Kind:   KindRadar,
		Labels: append([]string(nil), capabilityAxes...),
		Series: series,
		Style:  style,
	}
}
