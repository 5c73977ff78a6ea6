package digest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/risk-digest/risk-digest/pkg/models/api"
	"github.com/risk-digest/risk-digest/pkg/models/domain"
	digestsvc "github.com/risk-digest/risk-digest/pkg/services/digest"
	digeststore "github.com/risk-digest/risk-digest/pkg/store/digest"
	"github.com/rs/zerolog"
)

type Handler struct {
	digests digestsvc.Service
}

func NewHandler(digests digestsvc.Service) *Handler {
	return &Handler{digests: digests}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	summaries, err := h.digests.History(ctx, 0)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list digests")
		writeError(w, http.StatusInternalServerError, "failed to list digests")
		return
	}

	response := make([]api.DigestSummary, 0, len(summaries))
	for _, s := range summaries {
		response = append(response, api.DigestSummary{Date: s.Date, Headline: s.Headline})
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode digest list")
	}
}

func (h *Handler) Latest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	d, err := h.digests.Latest(ctx)
	if err != nil {
		if errors.Is(err, digeststore.ErrNotFound) {
			writeError(w, http.StatusNotFound, "no digests available")
			return
		}
		logger.Error().Err(err).Msg("failed to load latest digest")
		writeError(w, http.StatusInternalServerError, "failed to load digest")
		return
	}

	if err := json.NewEncoder(w).Encode(toAPI(d)); err != nil {
		logger.Error().Err(err).Msg("failed to encode digest")
	}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	date := chi.URLParam(r, "date")

	d, err := h.digests.Get(ctx, date)
	if err != nil {
		if errors.Is(err, digeststore.ErrNotFound) {
			writeError(w, http.StatusNotFound, "digest not found")
			return
		}
		logger.Error().Err(err).Str("date", date).Msg("failed to load digest")
		writeError(w, http.StatusInternalServerError, "failed to load digest")
		return
	}

	if err := json.NewEncoder(w).Encode(toAPI(d)); err != nil {
		logger.Error().Err(err).Str("date", date).Msg("failed to encode digest")
	}
}

func toAPI(d *domain.Digest) api.Digest {
	items := make([]api.DigestItem, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, api.DigestItem{
			Type:  string(item.Type),
			Title: item.Title,
			Why:   item.Why,
			Fix:   item.Fix,
		})
	}
	return api.Digest{Date: d.Date, Headline: d.Headline, Items: items}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
