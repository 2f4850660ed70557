package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/ankur09868/whatsapp-automation/internal/models"
)

type botConfigRepository struct {
	db *sqlx.DB
}

func NewBotConfigRepository(db *sqlx.DB) BotConfigRepository {
	return &botConfigRepository{
		db: db,
	}
}

// Create inserts a bot configuration and returns the generated id.
func (r *botConfigRepository) Create(ctx context.Context, tenantID string, cfg *models.BotConfig) (int64, error) {
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
		INSERT INTO whatsapp_bot_configs
			(tenant_id, name, is_bot_enabled, spam_keywords_actions, message_limit,
			 reply_message, ai_detection, ai_reply, ai_spam_action_prompt, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	now := time.Now()
	var id int64
	err = tx.QueryRowxContext(ctx, query,
		tenantID, cfg.Name, cfg.IsBotEnabled, cfg.KeywordsJSON, cfg.MessageLimit,
		cfg.ReplyMessage, cfg.AIDetection, cfg.AIReply, cfg.AISpamActionPrompt, now, now,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create bot config: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit bot config: %w", err)
	}

	return id, nil
}

// ListByTenant retrieves every bot configuration belonging to the tenant.
// The spam_keywords_actions column is returned raw; the service decodes it
// leniently per record.
func (r *botConfigRepository) ListByTenant(ctx context.Context, tenantID string) ([]*models.BotConfig, error) {
	query := `
		SELECT id, tenant_id, name, is_bot_enabled, spam_keywords_actions, message_limit,
		       reply_message, ai_detection, ai_reply, ai_spam_action_prompt, created_at, updated_at
		FROM whatsapp_bot_configs
		WHERE tenant_id = $1
		ORDER BY id ASC
	`

	configs := []*models.BotConfig{}
	err := r.db.SelectContext(ctx, &configs, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bot configs: %w", err)
	}

	return configs, nil
}

// RecentLogs returns up to perConfig most recent log entries for each of the
// given config ids, most recent first.
func (r *botConfigRepository) RecentLogs(ctx context.Context, configIDs []int64, perConfig int) (map[int64][]models.BotLog, error) {
	result := make(map[int64][]models.BotLog, len(configIDs))
	if len(configIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT id, bot_config_id, message, action, phone_or_name, group_name, log_time
		FROM (
			SELECT l.*, ROW_NUMBER() OVER (PARTITION BY l.bot_config_id ORDER BY l.log_time DESC) AS rn
			FROM whatsapp_bot_logs l
			WHERE l.bot_config_id = ANY($1)
		) ranked
		WHERE rn <= $2
		ORDER BY bot_config_id, log_time DESC
	`

	var logs []models.BotLog
	err := r.db.SelectContext(ctx, &logs, query, pq.Array(configIDs), perConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to list bot logs: %w", err)
	}

	for _, l := range logs {
		result[l.BotConfigID] = append(result[l.BotConfigID], l)
	}

	return result, nil
}

// Update applies a partial update; nil patch fields keep the stored value via
// COALESCE. keywordsJSON is the pre-serialized replacement mapping, or nil to
// preserve the stored one.
func (r *botConfigRepository) Update(ctx context.Context, id int64, tenantID string, patch *models.BotConfigPatch, keywordsJSON []byte) error {
	query := `
		UPDATE whatsapp_bot_configs
		SET name = COALESCE($3, name),
		    is_bot_enabled = COALESCE($4, is_bot_enabled),
		    spam_keywords_actions = COALESCE($5, spam_keywords_actions),
		    message_limit = COALESCE($6, message_limit),
		    reply_message = COALESCE($7, reply_message),
		    ai_detection = COALESCE($8, ai_detection),
		    ai_reply = COALESCE($9, ai_reply),
		    ai_spam_action_prompt = COALESCE($10, ai_spam_action_prompt),
		    updated_at = $11
		WHERE id = $1 AND tenant_id = $2
	`

	res, err := r.db.ExecContext(ctx, query,
		id, tenantID, patch.Name, patch.IsBotEnabled, keywordsJSON,
		patch.MessageLimit, patch.ReplyMessage, patch.AIDetection, patch.AIReply,
		patch.AISpamActionPrompt, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update bot config: %w", err)
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

// Delete removes the config matched by (id, tenant_id); its logs go with it
// through the foreign key cascade.
func (r *botConfigRepository) Delete(ctx context.Context, id int64, tenantID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM whatsapp_bot_configs WHERE id = $1 AND tenant_id = $2`,
		id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete bot config: %w", err)
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
