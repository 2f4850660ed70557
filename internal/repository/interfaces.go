package repository

import (
	"context"
	"errors"

	"github.com/ankur09868/whatsapp-automation/internal/models"
)

// ErrNotFound is returned when no row matched the (id, tenant) pair.
var ErrNotFound = errors.New("record not found")

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks database connectivity
	Ping() error

	// ScheduledMessages returns the scheduled message repository
	ScheduledMessages() ScheduledMessageRepository

	// BotConfigs returns the bot configuration repository
	BotConfigs() BotConfigRepository

	// Directory returns the group/member/engagement read repository
	Directory() DirectoryRepository
}

// ScheduledMessageRepository owns persistence of scheduled messages. Every
// method takes the tenant identifier so a tenant-unscoped statement cannot be
// issued through this interface.
type ScheduledMessageRepository interface {
	Create(ctx context.Context, tenantID string, msg *models.ScheduledMessage) (int64, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*models.ScheduledMessage, error)
	Update(ctx context.Context, id int64, tenantID string, msg *models.ScheduledMessage) error
	Delete(ctx context.Context, id int64, tenantID string) error
}

// BotConfigRepository owns persistence of bot spam-filter configurations.
type BotConfigRepository interface {
	Create(ctx context.Context, tenantID string, cfg *models.BotConfig) (int64, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*models.BotConfig, error)
	RecentLogs(ctx context.Context, configIDs []int64, perConfig int) (map[int64][]models.BotLog, error)
	Update(ctx context.Context, id int64, tenantID string, patch *models.BotConfigPatch, keywordsJSON []byte) error
	Delete(ctx context.Context, id int64, tenantID string) error
}

// DirectoryRepository serves the read-only group/member/engagement queries.
// The underlying tables are written by the live bot runtime and the analysis
// batch job, never by this service.
type DirectoryRepository interface {
	ListGroups(ctx context.Context, tenantID string) ([]models.Group, error)
	ListMembers(ctx context.Context, tenantID string) ([]models.GroupMember, error)
	GetGroupDetails(ctx context.Context, tenantID string, groupID int64) (*models.GroupDetails, error)
	GroupActivity(ctx context.Context, tenantID, groupName string) (*models.GroupActivity, error)
	MessageGroupNames(ctx context.Context, tenantID string) ([]string, error)
	SentimentByGroup(ctx context.Context, tenantID, groupName string) ([]models.SentimentPoint, error)
	TopTopics(ctx context.Context, tenantID, groupName string, limit int) ([]models.TopicFrequency, error)
}
