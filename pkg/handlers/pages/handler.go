package pages

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/Masterminds/sprig/v3"
	"github.com/go-chi/chi/v5"
	"github.com/risk-digest/risk-digest/pkg/models/domain"
	digestsvc "github.com/risk-digest/risk-digest/pkg/services/digest"
	"github.com/risk-digest/risk-digest/pkg/services/threatfeed"
	digeststore "github.com/risk-digest/risk-digest/pkg/store/digest"
	"github.com/risk-digest/risk-digest/templates"
	"github.com/rs/zerolog"
)

const (
	homeThreats = 5
	homeHistory = 14
)

// Handler renders the server-side HTML pages from the embedded templates.
type Handler struct {
	digests digestsvc.Service
	feed    threatfeed.Service
	tmpl    *template.Template
}

func NewHandler(digests digestsvc.Service, feed threatfeed.Service) (*Handler, error) {
	tmpl, err := template.New("pages").Funcs(sprig.HtmlFuncMap()).ParseFS(templates.FS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	return &Handler{digests: digests, feed: feed, tmpl: tmpl}, nil
}

type homeData struct {
	Digest  *domain.Digest
	Threats []domain.Threat
	History []domain.DigestSummary
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	data := homeData{}

	latest, err := h.digests.Latest(ctx)
	if err != nil && !errors.Is(err, digeststore.ErrNotFound) {
		logger.Error().Err(err).Msg("failed to load latest digest")
		http.Error(w, "failed to load digest", http.StatusInternalServerError)
		return
	}
	data.Digest = latest

	// The page still renders when the threat feed or archive misbehave.
	if threats, err := h.feed.Recent(ctx, 7, homeThreats); err == nil {
		data.Threats = threats
	} else {
		logger.Warn().Err(err).Msg("failed to load recent threats")
	}
	if history, err := h.digests.History(ctx, homeHistory); err == nil {
		data.History = history
	} else {
		logger.Warn().Err(err).Msg("failed to load digest history")
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		logger.Error().Err(err).Msg("failed to render home page")
	}
}

func (h *Handler) Digest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	date := chi.URLParam(r, "date")

	d, err := h.digests.Get(ctx, date)
	if err != nil {
		if errors.Is(err, digeststore.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		logger.Error().Err(err).Str("date", date).Msg("failed to load digest")
		http.Error(w, "failed to load digest", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "digest.html", struct{ Digest *domain.Digest }{d}); err != nil {
		logger.Error().Err(err).Str("date", date).Msg("failed to render digest page")
	}
}
