// Package handler provides HTTP request handlers for the application.
package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/ankur09868/whatsapp-automation/internal/apperrors"
	"github.com/ankur09868/whatsapp-automation/internal/middleware"
	"github.com/ankur09868/whatsapp-automation/internal/service"
)

const (
	errorCodeValidation = "VALIDATION_ERROR"
	errorCodeNotFound   = "NOT_FOUND"
)

type Handler struct {
	service *service.Service
	logger  *zap.Logger
}

// NewHandler creates a new handler instance.
func NewHandler(service *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ErrorResponse is the envelope for every failed request.
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// CreatedResponse acknowledges a successful create with the new id.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// StatusResponse acknowledges a successful update or delete.
type StatusResponse struct {
	Message string `json:"message"`
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{
		Error:     errorCode,
		Message:   message,
		Timestamp: time.Now(),
	})
}

// handleError maps an application error to its transport representation.
// Persistence faults are logged with their cause; the caller only sees the
// generic message.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, apperrors.MessageOf(err))
	case apperrors.KindNotFound:
		h.sendError(w, r, http.StatusNotFound, errorCodeNotFound, apperrors.MessageOf(err))
	case apperrors.KindMissingTenant:
		h.sendError(w, r, http.StatusBadRequest, middleware.ErrorCodeMissingTenant, apperrors.MessageOf(err))
	default:
		h.logger.Error("Request failed",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, apperrors.MessageOf(err))
	}
}

// tenantID extracts the tenant set by the tenant middleware. An empty value
// means the route was mounted without it, which is a server wiring bug, but
// it is still reported as the client-correctable missing-tenant error.
func (h *Handler) tenantID(w http.ResponseWriter, r *http.Request) (string, bool) {
	tenantID := middleware.GetTenantID(r.Context())
	if tenantID == "" {
		h.handleError(w, r, apperrors.MissingTenant())
		return "", false
	}
	return tenantID, true
}
