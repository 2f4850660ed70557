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

// CreateScheduleMessage handles POST /schedule_message/create_schedule_message.
func (h *Handler) CreateScheduleMessage(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := h.tenantID(w, r)
	if !ok {
		return
	}

	var req models.ScheduleMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, r, apperrors.Validation("invalid request body"))
		return
	}

	id, err := h.service.ScheduleMessage.Create(r.Context(), tenantID, &req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, CreatedResponse{
		Message: "Scheduled message saved successfully",
		ID:      id,
	})
}

// GetScheduleMessages handles GET /schedule_message/get_schedule_messages.
func (h *Handler) GetScheduleMessages(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := h.tenantID(w, r)
	if !ok {
		return
	}

	messages, err := h.service.ScheduleMessage.List(r.Context(), tenantID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"scheduled_messages": messages,
	})
}

// UpdateScheduleMessage handles PUT /schedule_message/update_schedule_message/{id}.
func (h *Handler) UpdateScheduleMessage(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := h.tenantID(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.handleError(w, r, apperrors.Validation("invalid message id"))
		return
	}

	var req models.ScheduleMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, r, apperrors.Validation("invalid request body"))
		return
	}

	if err := h.service.ScheduleMessage.Update(r.Context(), id, tenantID, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	render.JSON(w, r, StatusResponse{Message: "Scheduled message updated successfully"})
}

// DeleteScheduleMessage handles DELETE /schedule_message/delete_schedule_message/{id}.
func (h *Handler) DeleteScheduleMessage(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := h.tenantID(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.handleError(w, r, apperrors.Validation("invalid message id"))
		return
	}

	if err := h.service.ScheduleMessage.Delete(r.Context(), id, tenantID); err != nil {
		h.handleError(w, r, err)
		return
	}

	render.JSON(w, r, StatusResponse{Message: "Scheduled message deleted successfully"})
}
