package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/ankur09868/whatsapp-automation/internal/apperrors"
	"github.com/ankur09868/whatsapp-automation/internal/config"
	"github.com/ankur09868/whatsapp-automation/internal/models"
	"github.com/ankur09868/whatsapp-automation/internal/repository"
)

const topTopicsLimit = 10

type directoryService struct {
	repo        repository.Repository
	redisClient *redis.Client
	cacheTTL    time.Duration
	logger      *zap.Logger
}

func NewDirectoryService(
	cfg *config.Config,
	repo repository.Repository,
	redisClient *redis.Client,
	logger *zap.Logger,
) DirectoryService {
	return &directoryService{
		repo:        repo,
		redisClient: redisClient,
		cacheTTL:    time.Duration(cfg.Dashboard.CacheTTLSeconds) * time.Second,
		logger:      logger,
	}
}

func (s *directoryService) Groups(ctx context.Context, tenantID string) ([]models.Group, error) {
	groups, err := s.repo.Directory().ListGroups(ctx, tenantID)
	if err != nil {
		s.logger.Error("Failed to list groups", zap.String("tenant_id", tenantID), zap.Error(err))
		return nil, apperrors.Persistence("failed to fetch groups", err)
	}
	return groups, nil
}

func (s *directoryService) Members(ctx context.Context, tenantID string) ([]models.GroupMember, error) {
	members, err := s.repo.Directory().ListMembers(ctx, tenantID)
	if err != nil {
		s.logger.Error("Failed to list members", zap.String("tenant_id", tenantID), zap.Error(err))
		return nil, apperrors.Persistence("failed to fetch members", err)
	}
	return members, nil
}

func (s *directoryService) GroupDetails(ctx context.Context, tenantID string, groupID int64) (*models.GroupDetails, error) {
	details, err := s.repo.Directory().GetGroupDetails(ctx, tenantID, groupID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("group %d not found", groupID)
		}
		s.logger.Error("Failed to get group details",
			zap.String("tenant_id", tenantID),
			zap.Int64("group_id", groupID),
			zap.Error(err))
		return nil, apperrors.Persistence("failed to fetch group details", err)
	}
	return details, nil
}

func (s *directoryService) GroupActivity(ctx context.Context, tenantID, groupName string) (*models.GroupActivity, error) {
	activity, err := s.repo.Directory().GroupActivity(ctx, tenantID, groupName)
	if err != nil {
		s.logger.Error("Failed to get group activity",
			zap.String("tenant_id", tenantID),
			zap.String("group_name", groupName),
			zap.Error(err))
		return nil, apperrors.Persistence("failed to fetch group activity", err)
	}
	return activity, nil
}

// Dashboard assembles the engagement view for every group the tenant has
// classified messages in. The assembled result is cached in redis per tenant;
// cache faults fall through to the database.
func (s *directoryService) Dashboard(ctx context.Context, tenantID string) ([]models.DashboardGroup, error) {
	cacheKey := fmt.Sprintf("dashboard:%s", tenantID)

	if cached, err := s.redisClient.Get(ctx, cacheKey).Result(); err == nil {
		var dashboard []models.DashboardGroup
		if err := json.Unmarshal([]byte(cached), &dashboard); err == nil {
			return dashboard, nil
		}
		s.logger.Warn("Failed to decode cached dashboard, rebuilding",
			zap.String("tenant_id", tenantID))
	}

	names, err := s.repo.Directory().MessageGroupNames(ctx, tenantID)
	if err != nil {
		s.logger.Error("Failed to list dashboard groups", zap.String("tenant_id", tenantID), zap.Error(err))
		return nil, apperrors.Persistence("failed to fetch dashboard data", err)
	}

	dashboard := make([]models.DashboardGroup, 0, len(names))
	for _, name := range names {
		sentiment, err := s.repo.Directory().SentimentByGroup(ctx, tenantID, name)
		if err != nil {
			s.logger.Error("Failed to get sentiment data",
				zap.String("tenant_id", tenantID),
				zap.String("group_name", name),
				zap.Error(err))
			return nil, apperrors.Persistence("failed to fetch dashboard data", err)
		}

		topics, err := s.repo.Directory().TopTopics(ctx, tenantID, name, topTopicsLimit)
		if err != nil {
			s.logger.Error("Failed to get topic data",
				zap.String("tenant_id", tenantID),
				zap.String("group_name", name),
				zap.Error(err))
			return nil, apperrors.Persistence("failed to fetch dashboard data", err)
		}

		dashboard = append(dashboard, models.DashboardGroup{
			Name:          name,
			SentimentData: sentiment,
			TopicsData:    topics,
		})
	}

	if raw, err := json.Marshal(dashboard); err == nil {
		if err := s.redisClient.Set(ctx, cacheKey, raw, s.cacheTTL).Err(); err != nil {
			s.logger.Warn("Failed to cache dashboard",
				zap.String("tenant_id", tenantID),
				zap.Error(err))
		}
	}

	return dashboard, nil
}
