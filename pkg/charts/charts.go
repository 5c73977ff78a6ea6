// Package charts builds renderable chart descriptors from security digest
// data. Builders normalize and default their inputs, shape them into a
// Descriptor, and hand the result to a downstream Renderer; they never
// fetch data and never fail: missing fields resolve to documented
// defaults and an unresolvable target is a silent no-op.
package charts

// Target identifies the drawable surface a chart is rendered into.
type Target string

// Renderer is the downstream engine that draws descriptors. Implementations
// own pixels, animation, and hover behavior; this package stops at the
// descriptor hand-off.
type Renderer interface {
	// Resolve reports whether the target maps to a live surface.
	Resolve(target Target) bool
	// Render draws one descriptor onto the target.
	Render(target Target, desc *Descriptor)
}

// Builder couples the descriptor constructors to a Renderer.
type Builder struct {
	renderer Renderer
}

func NewBuilder(r Renderer) *Builder {
	return &Builder{renderer: r}
}

// render gates every builder on target resolution: a target that does not
// resolve produces no descriptor and no render call.
func (b *Builder) render(target Target, build func() *Descriptor) {
	if b.renderer == nil || !b.renderer.Resolve(target) {
		return
	}
	b.renderer.Render(target, build())
}

// SecurityPostureRadar draws a radar of one security score vector,
// overlaid with an industry benchmark when one is supplied.
func (b *Builder) SecurityPostureRadar(target Target, in PostureInput) {
	b.render(target, func() *Descriptor { return BuildPostureRadar(in) })
}

// ToolComparisonRadar draws one radar polygon per tool across the five
// fixed capability axes.
func (b *Builder) ToolComparisonRadar(target Target, tools []ToolRecord) {
	b.render(target, func() *Descriptor { return BuildToolComparisonRadar(tools) })
}

// ThreatDistributionRadar draws threat-category counts as a single
// red-toned radar series.
func (b *Builder) ThreatDistributionRadar(target Target, in DistributionInput) {
	b.render(target, func() *Descriptor { return BuildThreatDistributionRadar(in) })
}

// SeverityDoughnut draws the four-bucket severity breakdown.
func (b *Builder) SeverityDoughnut(target Target, in DistributionInput) {
	b.render(target, func() *Descriptor { return BuildSeverityDoughnut(in) })
}

// TimelineSeries draws counts over labeled periods as a smoothed line.
func (b *Builder) TimelineSeries(target Target, in TimelineInput) {
	b.render(target, func() *Descriptor { return BuildTimelineSeries(in) })
}
