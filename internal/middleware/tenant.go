package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/render"
)

const (
	TenantIDKey    contextKey = "tenantID"
	TenantIDHeader string     = "X-Tenant-ID"
)

// Tenant middleware resolves the tenant identifier from the request header.
// Every store operation downstream is scoped by it, so a request without a
// tenant is rejected up front as a client error.
func Tenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID := strings.TrimSpace(r.Header.Get(TenantIDHeader))

		if tenantID == "" {
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, map[string]interface{}{
				"error":   ErrorCodeMissingTenant,
				"message": ErrorMessageMissingTenant,
			})
			return
		}

		ctx := context.WithValue(r.Context(), TenantIDKey, tenantID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetTenantID(ctx context.Context) string {
	if tenantID, ok := ctx.Value(TenantIDKey).(string); ok {
		return tenantID
	}
	return ""
}
