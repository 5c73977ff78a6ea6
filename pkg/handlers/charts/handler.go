package charts

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/risk-digest/risk-digest/pkg/charts"
	"github.com/risk-digest/risk-digest/pkg/models/api"
	"github.com/risk-digest/risk-digest/pkg/models/domain"
	assessmentsvc "github.com/risk-digest/risk-digest/pkg/services/assessment"
	digestsvc "github.com/risk-digest/risk-digest/pkg/services/digest"
	"github.com/risk-digest/risk-digest/pkg/services/threatfeed"
	toolssvc "github.com/risk-digest/risk-digest/pkg/services/tools"
	"github.com/rs/zerolog"
)

const (
	distributionDays = 30
	// timelinePoints caps how many digests the activity line plots.
	timelinePoints = 30
)

// Handler serves ready-to-draw chart descriptors so every page renders
// charts from one shaping path.
type Handler struct {
	digests    digestsvc.Service
	calculator *assessmentsvc.Calculator
	feed       threatfeed.Service
	directory  toolssvc.Directory
}

func NewHandler(
	digests digestsvc.Service,
	calculator *assessmentsvc.Calculator,
	feed threatfeed.Service,
	directory toolssvc.Directory,
) *Handler {
	return &Handler{
		digests:    digests,
		calculator: calculator,
		feed:       feed,
		directory:  directory,
	}
}

// Posture scores the submitted answers and returns the posture radar
// with the industry benchmark overlay.
func (h *Handler) Posture(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var req api.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report := h.calculator.Score(domain.AssessmentResponse{
		Answers:     req.Answers,
		Industry:    req.Industry,
		CompanySize: req.CompanySize,
	})

	desc := charts.BuildPostureRadar(charts.PostureInput{
		Labels:    report.Radar.Labels,
		Scores:    report.Radar.Scores,
		Benchmark: report.Radar.Benchmark,
	})
	writeDescriptor(w, logger, desc)
}

func (h *Handler) Severity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	dist, err := h.feed.SeverityDistribution(ctx, distributionDays)
	if err != nil {
		logger.Error().Err(err).Msg("failed to compute severity distribution")
		writeError(w, http.StatusInternalServerError, "failed to build chart")
		return
	}

	desc := charts.BuildSeverityDoughnut(charts.DistributionInput{
		Labels: dist.Labels,
		Data:   toFloats(dist.Counts),
	})
	writeDescriptor(w, logger, desc)
}

func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	dist, err := h.feed.CategoryDistribution(ctx, distributionDays)
	if err != nil {
		logger.Error().Err(err).Msg("failed to compute category distribution")
		writeError(w, http.StatusInternalServerError, "failed to build chart")
		return
	}

	desc := charts.BuildThreatDistributionRadar(charts.DistributionInput{
		Labels: dist.Labels,
		Data:   toFloats(dist.Counts),
	})
	writeDescriptor(w, logger, desc)
}

// Timeline plots digest item counts per date, oldest first.
func (h *Handler) Timeline(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	activity, err := h.digests.Activity(ctx, timelinePoints)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load digest activity")
		writeError(w, http.StatusInternalServerError, "failed to build chart")
		return
	}

	labels := make([]string, 0, len(activity))
	data := make([]float64, 0, len(activity))
	for _, point := range activity {
		labels = append(labels, point.Date)
		data = append(data, float64(point.Items))
	}

	writeDescriptor(w, logger, charts.BuildTimelineSeries(charts.TimelineInput{
		Labels: labels,
		Data:   data,
	}))
}

// ToolComparison plots one radar polygon per requested tool. The ids
// query parameter is a comma-separated list; when absent, the whole
// catalog is plotted. Unknown IDs are skipped.
func (h *Handler) ToolComparison(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	tools, err := h.directory.All(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load tools")
		writeError(w, http.StatusInternalServerError, "failed to build chart")
		return
	}

	if raw := r.URL.Query().Get("ids"); raw != "" {
		wanted := make(map[string]bool)
		for _, id := range strings.Split(raw, ",") {
			wanted[strings.TrimSpace(id)] = true
		}
		selected := make([]domain.Tool, 0, len(wanted))
		for _, tool := range tools {
			if wanted[tool.ID] {
				selected = append(selected, tool)
			}
		}
		tools = selected
	}

	records := make([]charts.ToolRecord, 0, len(tools))
	for _, tool := range tools {
		records = append(records, charts.ToolRecord{
			Name: tool.Name,
			Capabilities: charts.CapabilityRatings{
				Scanning:      tool.Capabilities.Scanning,
				ManualTesting: tool.Capabilities.ManualTesting,
				Automation:    tool.Capabilities.Automation,
				Reporting:     tool.Capabilities.Reporting,
				EaseOfUse:     tool.Capabilities.EaseOfUse,
			},
		})
	}

	writeDescriptor(w, logger, charts.BuildToolComparisonRadar(records))
}

func toFloats(counts []int) []float64 {
	values := make([]float64, len(counts))
	for i, c := range counts {
		values[i] = float64(c)
	}
	return values
}

func writeDescriptor(w http.ResponseWriter, logger *zerolog.Logger, desc *charts.Descriptor) {
	if err := json.NewEncoder(w).Encode(desc); err != nil {
		logger.Error().Err(err).Msg("failed to encode chart descriptor")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
