package handler

import (
	"encoding/json"
	"net/http"

	"menu-board/internal/model"
	"menu-board/internal/service"

	"github.com/rs/zerolog"
)

// MenuGroupHandler handles menu-group-related HTTP requests.
type MenuGroupHandler struct {
	service service.MenuGroupService
	logger  zerolog.Logger
}

// NewMenuGroupHandler creates a new menu group handler.
func NewMenuGroupHandler(service service.MenuGroupService, logger zerolog.Logger) *MenuGroupHandler {
	return &MenuGroupHandler{
		service: service,
		logger:  logger.With().Str("handler", "menu-group").Logger(),
	}
}

// Create handles POST /api/menu-groups requests.
func (h *MenuGroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.MenuGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	group, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, group)
}

// GetAll handles GET /api/menu-groups requests.
func (h *MenuGroupHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	groups, err := h.service.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	if groups == nil {
		groups = []model.MenuGroup{}
	}

	writeJSON(w, http.StatusOK, groups)
}
