package charts

// Scale describes axis bounds handed to the rendering engine. Suggested
// bounds are hints: values outside the range pass through unmodified and
// the engine extrapolates.
type Scale struct {
	Min          *float64 `json:"min,omitempty"`
	Max          *float64 `json:"max,omitempty"`
	SuggestedMin *float64 `json:"suggestedMin,omitempty"`
	SuggestedMax *float64 `json:"suggestedMax,omitempty"`
}

type Legend struct {
	Display  bool   `json:"display"`
	Position string `json:"position,omitempty"`
}

type Tooltip struct {
	Background string `json:"background"`
	TitleColor string `json:"titleColor"`
	BodyColor  string `json:"bodyColor"`
	// ShowPercent tells the renderer to label hovered values with their
	// share of the series total, computed by SlicePercent.
	ShowPercent bool `json:"showPercent,omitempty"`
}

// Style is the shared look-and-feel fragment every builder embeds in its
// descriptor. Radial kinds carry an r-scale, cartesian kinds x/y-scales.
type Style struct {
	GridColor  string  `json:"gridColor"`
	LabelColor string  `json:"labelColor"`
	FontFamily string  `json:"fontFamily"`
	FontSize   int     `json:"fontSize"`
	Accent     string  `json:"accent"`
	Legend     Legend  `json:"legend"`
	Tooltip    Tooltip `json:"tooltip"`
	RScale     *Scale  `json:"rScale,omitempty"`
	XScale     *Scale  `json:"xScale,omitempty"`
	YScale     *Scale  `json:"yScale,omitempty"`
}

// ResolveStyle produces the theming substrate for one chart kind. It is a
// pure function of (kind, accent); builders adjust scale bounds and legend
// visibility on the returned value.
func ResolveStyle(kind Kind, accent Color) Style {
	s := Style{
		GridColor:  RGB(148, 163, 184).WithAlpha(0.2).String(),
		LabelColor: "#94a3b8",
		FontFamily: "'Inter', 'Helvetica Neue', sans-serif",
		FontSize:   12,
		Accent:     accent.String(),
		Legend:     Legend{Display: true, Position: "top"},
		Tooltip: Tooltip{
			Background: RGB(15, 23, 42).WithAlpha(0.9).String(),
			TitleColor: "#f8fafc",
			BodyColor:  "#cbd5e1",
		},
	}

	switch kind {
	case KindRadar:
		s.RScale = &Scale{}
	case KindLine:
		s.XScale = &Scale{}
		s.YScale = &Scale{}
	case KindDoughnut:
		// proportional charts carry no axis scales
	}

	return s
}

func fptr(v float64) *float64 {
	return &v
}
