package threats

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/risk-digest/risk-digest/pkg/models/api"
	"github.com/risk-digest/risk-digest/pkg/models/domain"
	"github.com/risk-digest/risk-digest/pkg/services/threatfeed"
	"github.com/rs/zerolog"
)

const (
	defaultDays  = 7
	defaultLimit = 10
	// Distribution endpoints look further back to smooth out slow weeks.
	distributionDays = 30
)

type Handler struct {
	feed threatfeed.Service
}

func NewHandler(feed threatfeed.Service) *Handler {
	return &Handler{feed: feed}
}

func (h *Handler) Recent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	days := queryInt(r, "days", defaultDays)
	limit := queryInt(r, "limit", defaultLimit)

	threats, err := h.feed.Recent(ctx, days, limit)
	if err != nil {
		logger.Error().Err(err).Msg("failed to fetch recent threats")
		writeError(w, http.StatusInternalServerError, "failed to fetch threats")
		return
	}

	response := make([]api.Threat, 0, len(threats))
	for _, t := range threats {
		response = append(response, toAPI(t))
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode threats")
	}
}

func (h *Handler) SeverityDistribution(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	dist, err := h.feed.SeverityDistribution(ctx, queryInt(r, "days", distributionDays))
	if err != nil {
		logger.Error().Err(err).Msg("failed to compute severity distribution")
		writeError(w, http.StatusInternalServerError, "failed to compute distribution")
		return
	}

	response := api.SeverityDistribution{
		Labels:      dist.Labels,
		Data:        dist.Counts,
		Percentages: dist.Percentages,
		Total:       dist.Total,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode severity distribution")
	}
}

func (h *Handler) CategoryDistribution(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	dist, err := h.feed.CategoryDistribution(ctx, queryInt(r, "days", distributionDays))
	if err != nil {
		logger.Error().Err(err).Msg("failed to compute category distribution")
		writeError(w, http.StatusInternalServerError, "failed to compute distribution")
		return
	}

	response := api.CategoryDistribution{Labels: dist.Labels, Data: dist.Counts}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode category distribution")
	}
}

func toAPI(t domain.Threat) api.Threat {
	refs := make([]api.ThreatReference, 0, len(t.References))
	for _, ref := range t.References {
		refs = append(refs, api.ThreatReference{URL: ref.URL, Source: ref.Source})
	}
	return api.Threat{
		ID:          t.ID,
		Description: t.Description,
		CVSSScore:   t.CVSSScore,
		Severity:    t.Severity,
		Published:   t.Published,
		References:  refs,
	}
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
