package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ankur09868/whatsapp-automation/internal/apperrors"
	"github.com/ankur09868/whatsapp-automation/internal/models"
	"github.com/ankur09868/whatsapp-automation/internal/repository"
)

// recentLogsPerConfig caps the joined log entries returned per configuration.
const recentLogsPerConfig = 10

var allowedSpamActions = map[string]bool{
	models.SpamActionWarn:   true,
	models.SpamActionRemove: true,
	models.SpamActionMute:   true,
}

type botConfigService struct {
	repo     repository.Repository
	validate *validator.Validate
	logger   *zap.Logger
}

func NewBotConfigService(repo repository.Repository, logger *zap.Logger) BotConfigService {
	return &botConfigService{
		repo:     repo,
		validate: validator.New(),
		logger:   logger,
	}
}

// validateKeywordActions checks every keyword→action pair against the action
// tags the live bot runtime understands.
func validateKeywordActions(mapping map[string]string) error {
	for keyword, action := range mapping {
		if strings.TrimSpace(keyword) == "" {
			return apperrors.Validation("spam keywords cannot be blank")
		}
		if !allowedSpamActions[action] {
			return apperrors.Validation("unsupported spam action '%s' for keyword '%s'", action, keyword)
		}
	}
	return nil
}

func (s *botConfigService) Create(ctx context.Context, tenantID string, req *models.BotConfigRequest) (int64, error) {
	if req == nil {
		return 0, apperrors.Validation("request body is required")
	}
	if err := s.validate.Struct(req); err != nil {
		return 0, apperrors.Validation("invalid bot config: %v", err)
	}
	if err := validateKeywordActions(req.SpamKeywordsActions); err != nil {
		return 0, err
	}

	keywords := req.SpamKeywordsActions
	if keywords == nil {
		keywords = map[string]string{}
	}
	keywordsJSON, err := json.Marshal(keywords)
	if err != nil {
		return 0, apperrors.Persistence("failed to serialize spam keywords", err)
	}

	cfg := &models.BotConfig{
		Name:               req.Name,
		IsBotEnabled:       req.IsBotEnabled,
		KeywordsJSON:       keywordsJSON,
		MessageLimit:       req.MessageLimit,
		ReplyMessage:       req.ReplyMessage,
		AIDetection:        req.AIDetection,
		AIReply:            req.AIReply,
		AISpamActionPrompt: req.AISpamActionPrompt,
	}

	id, err := s.repo.BotConfigs().Create(ctx, tenantID, cfg)
	if err != nil {
		s.logger.Error("Failed to create bot config",
			zap.String("tenant_id", tenantID),
			zap.Error(err))
		return 0, apperrors.Persistence("failed to save bot configuration", err)
	}

	s.logger.Info("Bot config created",
		zap.Int64("id", id),
		zap.String("tenant_id", tenantID))

	return id, nil
}

// List returns every bot configuration for the tenant joined with its ten
// most recent log entries. A record whose stored keyword mapping is corrupt
// is returned with an empty mapping so the rest of the list stays readable.
func (s *botConfigService) List(ctx context.Context, tenantID string) ([]models.BotConfigResponse, error) {
	configs, err := s.repo.BotConfigs().ListByTenant(ctx, tenantID)
	if err != nil {
		s.logger.Error("Failed to list bot configs",
			zap.String("tenant_id", tenantID),
			zap.Error(err))
		return nil, apperrors.Persistence("failed to fetch bot configurations", err)
	}

	ids := make([]int64, 0, len(configs))
	for _, cfg := range configs {
		ids = append(ids, cfg.ID)
	}

	logsByConfig, err := s.repo.BotConfigs().RecentLogs(ctx, ids, recentLogsPerConfig)
	if err != nil {
		s.logger.Error("Failed to list bot logs",
			zap.String("tenant_id", tenantID),
			zap.Error(err))
		return nil, apperrors.Persistence("failed to fetch bot logs", err)
	}

	responses := make([]models.BotConfigResponse, 0, len(configs))
	for _, cfg := range configs {
		responses = append(responses, models.BotConfigResponse{
			ID:                  cfg.ID,
			Name:                cfg.Name,
			IsBotEnabled:        cfg.IsBotEnabled,
			SpamKeywordsActions: s.decodeKeywords(cfg),
			MessageLimit:        cfg.MessageLimit,
			ReplyMessage:        cfg.ReplyMessage,
			AIDetection:         cfg.AIDetection,
			AIReply:             cfg.AIReply,
			AISpamActionPrompt:  cfg.AISpamActionPrompt,
			Logs:                logsFor(logsByConfig, cfg.ID),
			CreatedAt:           cfg.CreatedAt,
			UpdatedAt:           cfg.UpdatedAt,
		})
	}

	return responses, nil
}

// Update applies a partial update; nil fields preserve stored values.
func (s *botConfigService) Update(ctx context.Context, id int64, tenantID string, patch *models.BotConfigPatch) error {
	if patch == nil {
		return apperrors.Validation("request body is required")
	}
	if err := s.validate.Struct(patch); err != nil {
		return apperrors.Validation("invalid bot config: %v", err)
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return apperrors.Validation("name cannot be blank")
	}

	var keywordsJSON []byte
	if patch.SpamKeywordsActions != nil {
		if err := validateKeywordActions(*patch.SpamKeywordsActions); err != nil {
			return err
		}
		raw, err := json.Marshal(*patch.SpamKeywordsActions)
		if err != nil {
			return apperrors.Persistence("failed to serialize spam keywords", err)
		}
		keywordsJSON = raw
	}

	if err := s.repo.BotConfigs().Update(ctx, id, tenantID, patch, keywordsJSON); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("bot config %d not found", id)
		}
		s.logger.Error("Failed to update bot config",
			zap.Int64("id", id),
			zap.String("tenant_id", tenantID),
			zap.Error(err))
		return apperrors.Persistence("failed to update bot configuration", err)
	}

	return nil
}

func (s *botConfigService) Delete(ctx context.Context, id int64, tenantID string) error {
	if err := s.repo.BotConfigs().Delete(ctx, id, tenantID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("bot config %d not found", id)
		}
		s.logger.Error("Failed to delete bot config",
			zap.Int64("id", id),
			zap.String("tenant_id", tenantID),
			zap.Error(err))
		return apperrors.Persistence("failed to delete bot configuration", err)
	}

	return nil
}

// decodeKeywords applies the lenient-read policy for the stored keyword
// mapping: corrupt JSON degrades to an empty map with a warning.
func (s *botConfigService) decodeKeywords(cfg *models.BotConfig) map[string]string {
	mapping := map[string]string{}
	if len(cfg.KeywordsJSON) == 0 {
		return mapping
	}
	if err := json.Unmarshal(cfg.KeywordsJSON, &mapping); err != nil {
		s.logger.Warn("Failed to decode stored spam keywords, returning empty mapping",
			zap.Int64("id", cfg.ID),
			zap.String("tenant_id", cfg.TenantID),
			zap.Error(err))
		return map[string]string{}
	}
	return mapping
}

func logsFor(byConfig map[int64][]models.BotLog, id int64) []models.BotLog {
	if logs, ok := byConfig[id]; ok {
		return logs
	}
	return []models.BotLog{}
}
