package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/ankur09868/whatsapp-automation/internal/apperrors"
	"github.com/ankur09868/whatsapp-automation/internal/models"
	"github.com/ankur09868/whatsapp-automation/internal/repository"
	"github.com/ankur09868/whatsapp-automation/internal/repository/mocks"
)

func newScheduleServiceForTest(t *testing.T) (ScheduleMessageService, *mocks.MockScheduledMessageRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	msgRepo := mocks.NewMockScheduledMessageRepository(ctrl)
	repo.EXPECT().ScheduledMessages().Return(msgRepo).AnyTimes()

	return NewScheduleMessageService(repo, zap.NewNop()), msgRepo
}

func validTextRequest() *models.ScheduleMessageRequest {
	return &models.ScheduleMessageRequest{
		Groups:        []string{"Engineering", "Sales"},
		MessageType:   models.MessageTypeText,
		Content:       "Standup in five minutes",
		ScheduledTime: "2024-06-01 10:00:00",
	}
}

func TestScheduleMessageService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("text message persisted with joined groups", func(t *testing.T) {
		svc, msgRepo := newScheduleServiceForTest(t)

		msgRepo.EXPECT().
			Create(gomock.Any(), "tenant-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, msg *models.ScheduledMessage) (int64, error) {
				assert.Equal(t, "Engineering, Sales", msg.Groups)
				assert.Equal(t, models.MessageTypeText, msg.MessageType)
				assert.False(t, msg.MediaJSON.Valid)
				assert.True(t, msg.ScheduleTime.Equal(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)))
				return 42, nil
			})

		id, err := svc.Create(ctx, "tenant-1", validTextRequest())
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("image message stores media descriptor", func(t *testing.T) {
		svc, msgRepo := newScheduleServiceForTest(t)

		req := &models.ScheduleMessageRequest{
			Groups:      []string{"Engineering"},
			MessageType: models.MessageTypeImage,
			Media: &models.MediaInput{
				URL:  "https://cdn.example.com/pic",
				Type: "image/jpeg",
				Name: "team photo",
			},
			ScheduledTime: "2024-06-01 10:00:00",
		}

		msgRepo.EXPECT().
			Create(gomock.Any(), "tenant-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, msg *models.ScheduledMessage) (int64, error) {
				require.True(t, msg.MediaJSON.Valid)

				var media models.Media
				require.NoError(t, json.Unmarshal([]byte(msg.MediaJSON.String), &media))
				assert.Equal(t, "https://cdn.example.com/pic", media.URL)
				assert.Equal(t, ".jpg", media.FileExtension)
				return 7, nil
			})

		id, err := svc.Create(ctx, "tenant-1", req)
		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
	})

	t.Run("validation failures never reach the repository", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(req *models.ScheduleMessageRequest)
		}{
			{"empty groups", func(req *models.ScheduleMessageRequest) { req.Groups = nil }},
			{"blank group name", func(req *models.ScheduleMessageRequest) { req.Groups = []string{"Engineering", "  "} }},
			{"blank text content", func(req *models.ScheduleMessageRequest) { req.Content = "   " }},
			{"missing schedule time", func(req *models.ScheduleMessageRequest) { req.ScheduledTime = "" }},
			{"bad schedule time", func(req *models.ScheduleMessageRequest) { req.ScheduledTime = "tomorrow" }},
			{"media on text message", func(req *models.ScheduleMessageRequest) {
				req.Media = &models.MediaInput{URL: "https://cdn.example.com/pic", Type: "image/png", Name: "x"}
			}},
			{"image without media", func(req *models.ScheduleMessageRequest) {
				req.MessageType = models.MessageTypeImage
				req.Content = ""
			}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc, _ := newScheduleServiceForTest(t)

				req := validTextRequest()
				tt.mutate(req)

				_, err := svc.Create(ctx, "tenant-1", req)
				require.Error(t, err)
				assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
			})
		}
	})

	t.Run("repository failure surfaces as persistence error", func(t *testing.T) {
		svc, msgRepo := newScheduleServiceForTest(t)

		msgRepo.EXPECT().
			Create(gomock.Any(), "tenant-1", gomock.Any()).
			Return(int64(0), errors.New("connection refused"))

		_, err := svc.Create(ctx, "tenant-1", validTextRequest())
		require.Error(t, err)
		assert.Equal(t, apperrors.KindPersistence, apperrors.KindOf(err))
	})
}

func TestScheduleMessageService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("rows mapped back into API shape", func(t *testing.T) {
		svc, msgRepo := newScheduleServiceForTest(t)

		mediaJSON, err := json.Marshal(models.Media{
			URL: "https://cdn.example.com/pic", Type: "image/jpeg", Name: "pic", FileExtension: ".jpg",
		})
		require.NoError(t, err)

		msgRepo.EXPECT().
			ListByTenant(gomock.Any(), "tenant-1").
			Return([]*models.ScheduledMessage{
				{
					ID:          1,
					Groups:      "Engineering, Sales",
					MessageType: models.MessageTypeText,
					Content:     "hello",
					Status:      models.MessageStatusPending,
				},
				{
					ID:          2,
					Groups:      "Engineering",
					MessageType: models.MessageTypeImage,
					MediaJSON:   sql.NullString{String: string(mediaJSON), Valid: true},
					Status:      models.MessageStatusSent,
				},
			}, nil)

		got, err := svc.List(ctx, "tenant-1")
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.Equal(t, []string{"Engineering", "Sales"}, got[0].Groups)
		assert.Nil(t, got[0].Media)

		require.NotNil(t, got[1].Media)
		assert.Equal(t, ".jpg", got[1].Media.FileExtension)
		assert.Equal(t, models.MessageStatusSent, got[1].Status)
	})

	t.Run("corrupt media descriptor does not break listing", func(t *testing.T) {
		svc, msgRepo := newScheduleServiceForTest(t)

		msgRepo.EXPECT().
			ListByTenant(gomock.Any(), "tenant-1").
			Return([]*models.ScheduledMessage{
				{
					ID:          3,
					Groups:      "Engineering",
					MessageType: models.MessageTypeImage,
					MediaJSON:   sql.NullString{String: "{not json", Valid: true},
					Status:      models.MessageStatusPending,
				},
			}, nil)

		got, err := svc.List(ctx, "tenant-1")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Nil(t, got[0].Media)
	})

	t.Run("unknown tenant yields empty slice", func(t *testing.T) {
		svc, msgRepo := newScheduleServiceForTest(t)

		msgRepo.EXPECT().
			ListByTenant(gomock.Any(), "nobody").
			Return([]*models.ScheduledMessage{}, nil)

		got, err := svc.List(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestScheduleMessageService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("full payload re-validated and applied", func(t *testing.T) {
		svc, msgRepo := newScheduleServiceForTest(t)

		msgRepo.EXPECT().
			Update(gomock.Any(), int64(5), "tenant-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, _ string, msg *models.ScheduledMessage) error {
				assert.Equal(t, "Engineering, Sales", msg.Groups)
				// Status is never set through update.
				assert.Empty(t, msg.Status)
				return nil
			})

		require.NoError(t, svc.Update(ctx, 5, "tenant-1", validTextRequest()))
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		svc, msgRepo := newScheduleServiceForTest(t)

		msgRepo.EXPECT().
			Update(gomock.Any(), int64(99), "tenant-1", gomock.Any()).
			Return(repository.ErrNotFound)

		err := svc.Update(ctx, 99, "tenant-1", validTextRequest())
		require.Error(t, err)
		assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	})
}

func TestScheduleMessageService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, msgRepo := newScheduleServiceForTest(t)

		msgRepo.EXPECT().
			Delete(gomock.Any(), int64(5), "tenant-1").
			Return(nil)

		require.NoError(t, svc.Delete(ctx, 5, "tenant-1"))
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		svc, msgRepo := newScheduleServiceForTest(t)

		msgRepo.EXPECT().
			Delete(gomock.Any(), int64(99), "tenant-1").
			Return(repository.ErrNotFound)

		err := svc.Delete(ctx, 99, "tenant-1")
		require.Error(t, err)
		assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	})

	t.Run("repository failure maps to persistence", func(t *testing.T) {
		svc, msgRepo := newScheduleServiceForTest(t)

		msgRepo.EXPECT().
			Delete(gomock.Any(), int64(5), "tenant-1").
			Return(errors.New("connection refused"))

		err := svc.Delete(ctx, 5, "tenant-1")
		require.Error(t, err)
		assert.Equal(t, apperrors.KindPersistence, apperrors.KindOf(err))
	})
}
