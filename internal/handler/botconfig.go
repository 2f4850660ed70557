package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/ankur09868/whatsapp-automation/internal/apperrors"
	"github.com/ankur09868/whatsapp-automation/internal/models"
)

// AddBotConfig handles POST /bot_details/add_bot_config.
func (h *Handler) AddBotConfig(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := h.tenantID(w, r)
	if !ok {
		return
	}

	var req models.BotConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, r, apperrors.Validation("invalid request body"))
		return
	}

	id, err := h.service.BotConfig.Create(r.Context(), tenantID, &req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, CreatedResponse{
		Message: "Bot config saved successfully",
		ID:      id,
	})
}

// GetBotConfig handles GET /bot_details/get_bot_config. Each config carries
// its most recent activity logs.
func (h *Handler) GetBotConfig(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := h.tenantID(w, r)
	if !ok {
		return
	}

	configs, err := h.service.BotConfig.List(r.Context(), tenantID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"bot_configs": configs,
	})
}

// UpdateBotConfig handles PUT /bot_details/update_bot_config/{id}. Fields
// omitted from the body keep their stored values.
func (h *Handler) UpdateBotConfig(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := h.tenantID(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.handleError(w, r, apperrors.Validation("invalid bot config id"))
		return
	}

	var patch models.BotConfigPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.handleError(w, r, apperrors.Validation("invalid request body"))
		return
	}

	if err := h.service.BotConfig.Update(r.Context(), id, tenantID, &patch); err != nil {
		h.handleError(w, r, err)
		return
	}

	render.JSON(w, r, StatusResponse{Message: "Bot config updated successfully"})
}

// DeleteBotConfig handles DELETE /bot_details/delete_bot_config/{id}.
func (h *Handler) DeleteBotConfig(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := h.tenantID(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.handleError(w, r, apperrors.Validation("invalid bot config id"))
		return
	}

	if err := h.service.BotConfig.Delete(r.Context(), id, tenantID); err != nil {
		h.handleError(w, r, err)
		return
	}

	render.JSON(w, r, StatusResponse{Message: "Bot config deleted successfully"})
}
