package handler

import (
	"io"
	"net/http"
)

// GetQR handles GET /worker/get-qr. The worker VM responds with the login QR
// payload for the tenant session.
func (h *Handler) GetQR(w http.ResponseWriter, r *http.Request) {
	h.forwardToWorker(w, r, http.MethodGet, "/get-qr")
}

// StartTracking handles POST /worker/tracking/start.
func (h *Handler) StartTracking(w http.ResponseWriter, r *http.Request) {
	h.forwardToWorker(w, r, http.MethodPost, "/tracking/start")
}

// StopTracking handles POST /worker/tracking/stop.
func (h *Handler) StopTracking(w http.ResponseWriter, r *http.Request) {
	h.forwardToWorker(w, r, http.MethodPost, "/tracking/stop")
}

func (h *Handler) forwardToWorker(w http.ResponseWriter, r *http.Request, method, path string) {
	if _, ok := h.tenantID(w, r); !ok {
		return
	}

	var body []byte
	if r.Body != nil {
		b, err := io.ReadAll(r.Body)
		if err == nil {
			body = b
		}
	}

	status, respBody, err := h.service.Worker.Forward(r.Context(), method, path, body)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(respBody)
}
