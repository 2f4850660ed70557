package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ankur09868/whatsapp-automation/internal/models"
)

type scheduledMessageRepository struct {
	db *sqlx.DB
}

func NewScheduledMessageRepository(db *sqlx.DB) ScheduledMessageRepository {
	return &scheduledMessageRepository{
		db: db,
	}
}

// ensureTenant registers the tenant row so the tenant_id foreign keys hold.
// Runs inside the caller's transaction.
func ensureTenant(ctx context.Context, tx *sqlx.Tx, tenantID string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO tenants (id, created_at) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
		tenantID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to ensure tenant: %w", err)
	}
	return nil
}

// Create inserts a scheduled message with status pending and returns the
// generated id. The insert and the tenant upsert share one transaction.
func (r *scheduledMessageRepository) Create(ctx context.Context, tenantID string, msg *models.ScheduledMessage) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := ensureTenant(ctx, tx, tenantID); err != nil {
		return 0, err
	}

	query := `
		INSERT INTO whatsapp_scheduled_messages
			(tenant_id, groups, message_type, message_content, schedule_time, media, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	now := time.Now()
	var id int64
	err = tx.QueryRowxContext(ctx, query,
		tenantID, msg.Groups, msg.MessageType, msg.Content, msg.ScheduleTime,
		msg.MediaJSON, models.MessageStatusPending, now, now,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create scheduled message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit scheduled message: %w", err)
	}

	return id, nil
}

// ListByTenant retrieves every scheduled message belonging to the tenant.
func (r *scheduledMessageRepository) ListByTenant(ctx context.Context, tenantID string) ([]*models.ScheduledMessage, error) {
	query := `
		SELECT id, tenant_id, groups, message_type, message_content, schedule_time, media, status, created_at, updated_at
		FROM whatsapp_scheduled_messages
		WHERE tenant_id = $1
		ORDER BY schedule_time ASC
	`

	messages := []*models.ScheduledMessage{}
	err := r.db.SelectContext(ctx, &messages, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled messages: %w", err)
	}

	return messages, nil
}

// Update replaces all mutable fields of the row matched by (id, tenant_id).
// Status is deliberately left untouched so worker-set terminal states cannot
// be reverted through this path.
func (r *scheduledMessageRepository) Update(ctx context.Context, id int64, tenantID string, msg *models.ScheduledMessage) error {
	query := `
		UPDATE whatsapp_scheduled_messages
		SET groups = $3,
		    message_type = $4,
		    message_content = $5,
		    schedule_time = $6,
		    media = $7,
		    updated_at = $8
		WHERE id = $1 AND tenant_id = $2
	`

	res, err := r.db.ExecContext(ctx, query,
		id, tenantID, msg.Groups, msg.MessageType, msg.Content, msg.ScheduleTime,
		msg.MediaJSON, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update scheduled message: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes the row matched by (id, tenant_id).
func (r *scheduledMessageRepository) Delete(ctx context.Context, id int64, tenantID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM whatsapp_scheduled_messages WHERE id = $1 AND tenant_id = $2`,
		id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete scheduled message: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
