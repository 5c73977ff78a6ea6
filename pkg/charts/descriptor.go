package charts

// Kind selects the visualization the rendering engine draws.
type Kind string

const (
	KindRadar    Kind = "radar"
	KindDoughnut Kind = "doughnut"
	KindLine     Kind = "line"
)

// Series is one plotted data set, aligned positionally with the
// descriptor's labels. Value/label length agreement is the caller's
// responsibility; the builders pass mismatches through unvalidated.
type Series struct {
	Name             string    `json:"name"`
	Values           []float64 `json:"values"`
	Fill             bool      `json:"fill"`
	FillColor        string    `json:"fillColor,omitempty"`
	StrokeColor      string    `json:"strokeColor,omitempty"`
	PointFill        string    `json:"pointFill,omitempty"`
	PointStroke      string    `json:"pointStroke,omitempty"`
	StrokeDash       []int     `json:"strokeDash,omitempty"`
	SliceColors      []string  `json:"sliceColors,omitempty"`
	Tension          float64   `json:"tension,omitempty"`
	PointHoverRadius int       `json:"pointHoverRadius,omitempty"`
}

// Descriptor is the complete configuration handed to the rendering engine
// to draw one chart.
type Descriptor struct {
	Kind   Kind     `json:"kind"`
	Labels []string `json:"labels"`
	Series []Series `json:"series"`
	Style  Style    `json:"style"`
}
