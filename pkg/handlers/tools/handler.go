package tools

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/risk-digest/risk-digest/pkg/models/api"
	"github.com/risk-digest/risk-digest/pkg/models/domain"
	toolssvc "github.com/risk-digest/risk-digest/pkg/services/tools"
	"github.com/rs/zerolog"
)

type Handler struct {
	directory toolssvc.Directory
}

func NewHandler(directory toolssvc.Directory) *Handler {
	return &Handler{directory: directory}
}

// List returns the catalog, optionally narrowed by the category and
// search query parameters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	category := r.URL.Query().Get("category")
	search := r.URL.Query().Get("search")

	tools, err := h.directory.Filter(ctx, category, search)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list tools")
		writeError(w, http.StatusInternalServerError, "failed to list tools")
		return
	}

	response := make([]api.Tool, 0, len(tools))
	for _, tool := range tools {
		response = append(response, toAPI(tool))
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode tools")
	}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "id")

	tool, err := h.directory.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, toolssvc.ErrNotFound) {
			writeError(w, http.StatusNotFound, "tool not found")
			return
		}
		logger.Error().Err(err).Str("id", id).Msg("failed to load tool")
		writeError(w, http.StatusInternalServerError, "failed to load tool")
		return
	}

	if err := json.NewEncoder(w).Encode(toAPI(*tool)); err != nil {
		logger.Error().Err(err).Str("id", id).Msg("failed to encode tool")
	}
}

func toAPI(tool domain.Tool) api.Tool {
	return api.Tool{
		ID:          tool.ID,
		Name:        tool.Name,
		Category:    tool.Category,
		Description: tool.Description,
		Website:     tool.Website,
		Pricing:     tool.Pricing,
		Tags:        tool.Tags,
		Capabilities: api.ToolCapabilities{
			Scanning:      tool.Capabilities.Scanning,
			ManualTesting: tool.Capabilities.ManualTesting,
			Automation:    tool.Capabilities.Automation,
			Reporting:     tool.Capabilities.Reporting,
			EaseOfUse:     tool.Capabilities.EaseOfUse,
		},
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
