package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ankur09868/whatsapp-automation/internal/apperrors"
	"github.com/ankur09868/whatsapp-automation/internal/models"
	"github.com/ankur09868/whatsapp-automation/internal/repository"
)

// groupsSeparator joins the ordered group list into its stored form.
const groupsSeparator = ", "

type scheduleMessageService struct {
	repo     repository.Repository
	validate *validator.Validate
	logger   *zap.Logger
}

func NewScheduleMessageService(repo repository.Repository, logger *zap.Logger) ScheduleMessageService {
	return &scheduleMessageService{
		repo:     repo,
		validate: validator.New(),
		logger:   logger,
	}
}

// normalizeRequest runs the full validation pipeline shared by create and
// update: groups, media descriptor, text content, schedule time.
func (s *scheduleMessageService) normalizeRequest(req *models.ScheduleMessageRequest) (*models.ScheduledMessage, error) {
	if req == nil {
		return nil, apperrors.Validation("request body is required")
	}
	if len(req.Groups) == 0 {
		return nil, apperrors.Validation("groups must be provided as a non-empty list")
	}
	for _, g := range req.Groups {
		if strings.TrimSpace(g) == "" {
			return nil, apperrors.Validation("group names cannot be blank")
		}
	}

	media, err := NormalizeMedia(s.validate, req.MessageType, req.Media)
	if err != nil {
		return nil, err
	}

	if req.MessageType == models.MessageTypeText && strings.TrimSpace(req.Content) == "" {
		return nil, apperrors.Validation("message content cannot be empty for text messages")
	}

	scheduleTime, err := NormalizeScheduleTime(req.ScheduledTime)
	if err != nil {
		return nil, err
	}

	msg := &models.ScheduledMessage{
		Groups:       strings.Join(req.Groups, groupsSeparator),
		MessageType:  req.MessageType,
		Content:      req.Content,
		ScheduleTime: scheduleTime,
	}

	if media != nil {
		raw, err := json.Marshal(media)
		if err != nil {
			return nil, apperrors.Persistence("failed to serialize media descriptor", err)
		}
		msg.MediaJSON = sql.NullString{String: string(raw), Valid: true}
	}

	return msg, nil
}

// Create validates and persists a new scheduled message with status pending.
func (s *scheduleMessageService) Create(ctx context.Context, tenantID string, req *models.ScheduleMessageRequest) (int64, error) {
	msg, err := s.normalizeRequest(req)
	if err != nil {
		return 0, err
	}

	id, err := s.repo.ScheduledMessages().Create(ctx, tenantID, msg)
	if err != nil {
		s.logger.Error("Failed to create scheduled message",
			zap.String("tenant_id", tenantID),
			zap.Error(err))
		return 0, apperrors.Persistence("failed to save the scheduled message", err)
	}

	s.logger.Info("Scheduled message created",
		zap.Int64("id", id),
		zap.String("tenant_id", tenantID),
		zap.String("message_type", string(msg.MessageType)))

	return id, nil
}

// List returns every scheduled message for the tenant. An unknown tenant
// yields an empty slice, never an error.
func (s *scheduleMessageService) List(ctx context.Context, tenantID string) ([]models.ScheduledMessageResponse, error) {
	rows, err := s.repo.ScheduledMessages().ListByTenant(ctx, tenantID)
	if err != nil {
		s.logger.Error("Failed to list scheduled messages",
			zap.String("tenant_id", tenantID),
			zap.Error(err))
		return nil, apperrors.Persistence("failed to fetch scheduled messages", err)
	}

	responses := make([]models.ScheduledMessageResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, s.toResponse(row))
	}

	return responses, nil
}

// Update re-validates the full payload and replaces all mutable fields of the
// row matched by (id, tenant). Media and schedule time are re-normalized on
// every update.
func (s *scheduleMessageService) Update(ctx context.Context, id int64, tenantID string, req *models.ScheduleMessageRequest) error {
	msg, err := s.normalizeRequest(req)
	if err != nil {
		return err
	}

	if err := s.repo.ScheduledMessages().Update(ctx, id, tenantID, msg); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("scheduled message %d not found", id)
		}
		s.logger.Error("Failed to update scheduled message",
			zap.Int64("id", id),
			zap.String("tenant_id", tenantID),
			zap.Error(err))
		return apperrors.Persistence("failed to update the scheduled message", err)
	}

	return nil
}

// Delete removes the row matched by (id, tenant).
func (s *scheduleMessageService) Delete(ctx context.Context, id int64, tenantID string) error {
	if err := s.repo.ScheduledMessages().Delete(ctx, id, tenantID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("scheduled message %d not found", id)
		}
		s.logger.Error("Failed to delete scheduled message",
			zap.Int64("id", id),
			zap.String("tenant_id", tenantID),
			zap.Error(err))
		return apperrors.Persistence("failed to delete the scheduled message", err)
	}

	return nil
}

// toResponse converts a stored row into its API shape, splitting groups back
// into list form and decoding the media descriptor.
func (s *scheduleMessageService) toResponse(row *models.ScheduledMessage) models.ScheduledMessageResponse {
	resp := models.ScheduledMessageResponse{
		ID:           row.ID,
		Groups:       strings.Split(row.Groups, groupsSeparator),
		MessageType:  row.MessageType,
		Content:      row.Content,
		ScheduleTime: row.ScheduleTime,
		Status:       row.Status,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}

	if row.MediaJSON.Valid {
		var media models.Media
		if err := json.Unmarshal([]byte(row.MediaJSON.String), &media); err != nil {
			// One corrupt descriptor must not break the whole listing.
			s.logger.Warn("Failed to decode stored media descriptor",
				zap.Int64("id", row.ID),
				zap.Error(err))
		} else {
			resp.Media = &media
		}
	}

	return resp
}
