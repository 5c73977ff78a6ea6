package charts

import "fmt"

// Color is an RGB triple with an alpha channel, rendered as a CSS
// rgb()/rgba() string on the wire.
type Color struct {
	R, G, B uint8
	A       float64
}

func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// WithAlpha returns the same color at a different opacity.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

func (c Color) String() string {
	if c.A == 1 {
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, c.A)
}

var (
	// BrandPrimary is the default accent for score and timeline charts.
	BrandPrimary = RGB(59, 130, 246)
	// NeutralGray styles benchmark overlays.
	NeutralGray = RGB(148, 163, 184)
	// ThreatRed accents danger-oriented charts.
	ThreatRed = RGB(239, 68, 68)

	pointStrokeWhite = RGB(255, 255, 255)
)

// severitySlices maps positionally onto Critical, High, Medium, Low.
// Assignment is by position, never by label content.
var severitySlices = []Color{
	RGB(220, 38, 38),
	RGB(249, 115, 22),
	RGB(250, 204, 21),
	RGB(34, 197, 94),
}

// toolPalette holds the five stroke colors for tool comparison series.
// Strokes sit at 0.6 alpha; fills reuse the stroke at 0.2 alpha.
var toolPalette = []Color{
	RGB(59, 130, 246).WithAlpha(0.6),
	RGB(239, 68, 68).WithAlpha(0.6),
	RGB(34, 197, 94).WithAlpha(0.6),
	RGB(245, 158, 11).WithAlpha(0.6),
	RGB(139, 92, 246).WithAlpha(0.6),
}

// toolColor cycles through the palette when more series than colors are
// plotted.
func toolColor(index int) Color {
	return toolPalette[index%len(toolPalette)]
}
