package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/ankur09868/whatsapp-automation/internal/apperrors"
)

// GetGroups handles GET /group_details/get_groups.
func (h *Handler) GetGroups(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := h.tenantID(w, r)
	if !ok {
		return
	}

	groups, err := h.service.Directory.Groups(r.Context(), tenantID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"groups": groups,
	})
}

// GetMembers handles GET /group_details/get_members.
func (h *Handler) GetMembers(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := h.tenantID(w, r)
	if !ok {
		return
	}

	members, err := h.service.Directory.Members(r.Context(), tenantID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"members": members,
	})
}

// GetGroupDetails handles GET /group_details/get_group_details/{id}.
func (h *Handler) GetGroupDetails(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := h.tenantID(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.handleError(w, r, apperrors.Validation("invalid group id"))
		return
	}

	details, err := h.service.Directory.GroupDetails(r.Context(), tenantID, id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	render.JSON(w, r, details)
}

// GetGroupActivity handles GET /group_details/get_group_activity/{group_name}.
func (h *Handler) GetGroupActivity(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := h.tenantID(w, r)
	if !ok {
		return
	}

	groupName := chi.URLParam(r, "group_name")
	if groupName == "" {
		h.handleError(w, r, apperrors.Validation("group name is required"))
		return
	}

	activity, err := h.service.Directory.GroupActivity(r.Context(), tenantID, groupName)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	render.JSON(w, r, activity)
}

// GetDashboard handles GET /dashboard. The aggregate is cached per tenant.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := h.tenantID(w, r)
	if !ok {
		return
	}

	groups, err := h.service.Directory.Dashboard(r.Context(), tenantID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"dashboard": groups,
	})
}
