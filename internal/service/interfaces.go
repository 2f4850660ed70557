package service

import (
	"context"

	"github.com/ankur09868/whatsapp-automation/internal/models"
)

// ScheduleMessageService validates, normalizes and persists scheduled
// messages. Every operation is tenant-scoped.
type ScheduleMessageService interface {
	Create(ctx context.Context, tenantID string, req *models.ScheduleMessageRequest) (int64, error)
	List(ctx context.Context, tenantID string) ([]models.ScheduledMessageResponse, error)
	Update(ctx context.Context, id int64, tenantID string, req *models.ScheduleMessageRequest) error
	Delete(ctx context.Context, id int64, tenantID string) error
}

// BotConfigService manages per-tenant spam-filter configurations.
type BotConfigService interface {
	Create(ctx context.Context, tenantID string, req *models.BotConfigRequest) (int64, error)
	List(ctx context.Context, tenantID string) ([]models.BotConfigResponse, error)
	Update(ctx context.Context, id int64, tenantID string, patch *models.BotConfigPatch) error
	Delete(ctx context.Context, id int64, tenantID string) error
}

// DirectoryService serves group/member directory reads and the engagement
// dashboard.
type DirectoryService interface {
	Groups(ctx context.Context, tenantID string) ([]models.Group, error)
	Members(ctx context.Context, tenantID string) ([]models.GroupMember, error)
	GroupDetails(ctx context.Context, tenantID string, groupID int64) (*models.GroupDetails, error)
	GroupActivity(ctx context.Context, tenantID, groupName string) (*models.GroupActivity, error)
	Dashboard(ctx context.Context, tenantID string) ([]models.DashboardGroup, error)
}

// WorkerService forwards requests to the external messaging VM through a
// circuit breaker.
type WorkerService interface {
	Forward(ctx context.Context, method, path string, body []byte) (int, []byte, error)
	GetCircuitBreakerStatus() (state string, requests, failures uint32)
}

// HealthService reports the aggregate health of the service dependencies.
type HealthService interface {
	GetHealth() *HealthStatus
}
