package assessment

import (
	"encoding/json"
	"net/http"

	"github.com/risk-digest/risk-digest/pkg/models/api"
	"github.com/risk-digest/risk-digest/pkg/models/domain"
	assessmentsvc "github.com/risk-digest/risk-digest/pkg/services/assessment"
	"github.com/rs/zerolog"
)

type Handler struct {
	calculator *assessmentsvc.Calculator
}

func NewHandler(calculator *assessmentsvc.Calculator) *Handler {
	return &Handler{calculator: calculator}
}

// Questions returns the full weighted questionnaire grouped by category.
func (h *Handler) Questions(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	response := make(map[string][]api.Question)
	for category, questions := range h.calculator.Questions() {
		group := make([]api.Question, 0, len(questions))
		for _, q := range questions {
			group = append(group, api.Question{ID: q.ID, Question: q.Text, Weight: q.Weight})
		}
		response[category] = group
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode assessment questions")
	}
}

// Score computes a posture report from submitted yes/no answers.
func (h *Handler) Score(w http.ResponseWriter, r *http.Request) {
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

	if err := json.NewEncoder(w).Encode(toAPI(report)); err != nil {
		logger.Error().Err(err).Msg("failed to encode score report")
	}
}

func toAPI(report domain.ScoreReport) api.ScoreReport {
	recs := make([]api.Recommendation, 0, len(report.Recommendations))
	for _, rec := range report.Recommendations {
		recs = append(recs, api.Recommendation{
			Category: rec.Category,
			Score:    rec.Score,
			Priority: string(rec.Priority),
			Message:  rec.Message,
		})
	}
	return api.ScoreReport{
		OverallScore:   report.OverallScore,
		CategoryScores: report.CategoryScores,
		RadarData: api.RadarData{
			Labels:    report.Radar.Labels,
			Scores:    report.Radar.Scores,
			Benchmark: report.Radar.Benchmark,
		},
		Benchmark:       report.Benchmark,
		Recommendations: recs,
		Grade:           report.Grade,
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
