package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ankur09868/whatsapp-automation/internal/models"
)

type directoryRepository struct {
	db *sqlx.DB
}

func NewDirectoryRepository(db *sqlx.DB) DirectoryRepository {
	return &directoryRepository{
		db: db,
	}
}

func (r *directoryRepository) ListGroups(ctx context.Context, tenantID string) ([]models.Group, error) {
	query := `
		SELECT id, tenant_id, group_name, group_description, created_at
		FROM whatsapp_groups
		WHERE tenant_id = $1
		ORDER BY group_name ASC
	`

	groups := []models.Group{}
	if err := r.db.SelectContext(ctx, &groups, query, tenantID); err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	return groups, nil
}

func (r *directoryRepository) ListMembers(ctx context.Context, tenantID string) ([]models.GroupMember, error) {
	query := `
		SELECT m.id, m.group_id, m.name, m.phone_number, m.role, m.status, m.rating, m.avatar
		FROM whatsapp_group_members m
		JOIN whatsapp_groups g ON g.id = m.group_id
		WHERE g.tenant_id = $1
		ORDER BY m.name ASC
	`

	members := []models.GroupMember{}
	if err := r.db.SelectContext(ctx, &members, query, tenantID); err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	return members, nil
}

// GetGroupDetails returns a group with its member list, or ErrNotFound when
// no group matched (id, tenant).
func (r *directoryRepository) GetGroupDetails(ctx context.Context, tenantID string, groupID int64) (*models.GroupDetails, error) {
	var group models.Group
	err := r.db.GetContext(ctx, &group,
		`SELECT id, tenant_id, group_name, group_description, created_at
		 FROM whatsapp_groups WHERE id = $1 AND tenant_id = $2`,
		groupID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	members := []models.GroupMember{}
	err = r.db.SelectContext(ctx, &members,
		`SELECT id, group_id, name, phone_number, role, status, rating, avatar
		 FROM whatsapp_group_members WHERE group_id = $1 ORDER BY id ASC`,
		groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get group members: %w", err)
	}

	return &models.GroupDetails{
		GroupName:        group.Name,
		GroupDescription: group.Description,
		Members:          members,
	}, nil
}

// activeMemberWindowDays is how many trailing calendar days a member must
// have posted on, every day, to count as active.
const activeMemberWindowDays = 2

// GroupActivity returns the engagement summary for one group: daily message
// counts, the total, members active on every day of the trailing window, and
// the top sender.
func (r *directoryRepository) GroupActivity(ctx context.Context, tenantID, groupName string) (*models.GroupActivity, error) {
	perDay, err := r.messagesPerDay(ctx, tenantID, groupName)
	if err != nil {
		return nil, err
	}

	var total int
	err = r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM whatsapp_messages WHERE tenant_id = $1 AND group_name = $2`,
		tenantID, groupName)
	if err != nil {
		return nil, fmt.Errorf("failed to count group messages: %w", err)
	}

	active := []string{}
	err = r.db.SelectContext(ctx, &active,
		`SELECT sender
		 FROM whatsapp_messages
		 WHERE tenant_id = $1 AND group_name = $2
		   AND message_time >= NOW() - $3 * INTERVAL '1 day'
		 GROUP BY sender
		 HAVING COUNT(DISTINCT message_time::date) >= $3
		 ORDER BY sender`,
		tenantID, groupName, activeMemberWindowDays)
	if err != nil {
		return nil, fmt.Errorf("failed to get active members: %w", err)
	}

	var top models.TopMember
	err = r.db.GetContext(ctx, &top,
		`SELECT sender, COUNT(*) AS message_count
		 FROM whatsapp_messages
		 WHERE tenant_id = $1 AND group_name = $2
		 GROUP BY sender
		 ORDER BY message_count DESC
		 LIMIT 1`,
		tenantID, groupName)
	topMember := &top
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("failed to get top member: %w", err)
		}
		topMember = nil
	}

	return &models.GroupActivity{
		GroupName:      groupName,
		MessagesPerDay: perDay,
		TotalMessages:  total,
		ActiveMembers:  active,
		TopMember:      topMember,
	}, nil
}

func (r *directoryRepository) messagesPerDay(ctx context.Context, tenantID, groupName string) ([]models.GroupActivityPoint, error) {
	query := `
		SELECT message_time::date AS day_date, COUNT(*) AS messages
		FROM whatsapp_messages
		WHERE tenant_id = $1 AND group_name = $2
		GROUP BY message_time::date
		ORDER BY message_time::date
	`

	rows, err := r.db.QueryxContext(ctx, query, tenantID, groupName)
	if err != nil {
		return nil, fmt.Errorf("failed to get group activity: %w", err)
	}
	defer rows.Close()

	points := []models.GroupActivityPoint{}
	for rows.Next() {
		var day time.Time
		var count int
		if err := rows.Scan(&day, &count); err != nil {
			return nil, fmt.Errorf("failed to scan group activity: %w", err)
		}
		points = append(points, models.GroupActivityPoint{
			MessageDate:  day.Format("2006-01-02"),
			MessageCount: count,
		})
	}

	return points, rows.Err()
}

func (r *directoryRepository) MessageGroupNames(ctx context.Context, tenantID string) ([]string, error) {
	names := []string{}
	err := r.db.SelectContext(ctx, &names,
		`SELECT DISTINCT group_name FROM whatsapp_messages WHERE tenant_id = $1 ORDER BY group_name`,
		tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list message group names: %w", err)
	}

	return names, nil
}

// SentimentByGroup aggregates classified messages per message_time for one
// group. The sentiment_data column is written by the external analysis job.
func (r *directoryRepository) SentimentByGroup(ctx context.Context, tenantID, groupName string) ([]models.SentimentPoint, error) {
	query := `
		SELECT message_time,
		       SUM(CASE WHEN sentiment_data->>'sentiment' = 'Positive' THEN 1 ELSE 0 END) AS positive,
		       SUM(CASE WHEN sentiment_data->>'sentiment' = 'Neutral' THEN 1 ELSE 0 END) AS neutral,
		       SUM(CASE WHEN sentiment_data->>'sentiment' = 'Negative' THEN 1 ELSE 0 END) AS negative,
		       SUM(CASE WHEN sentiment_data->>'sentiment' = 'Commercial' THEN 1 ELSE 0 END) AS commercial
		FROM whatsapp_messages
		WHERE tenant_id = $1 AND group_name = $2
		GROUP BY message_time
		ORDER BY message_time
	`

	rows, err := r.db.QueryxContext(ctx, query, tenantID, groupName)
	if err != nil {
		return nil, fmt.Errorf("failed to get sentiment data: %w", err)
	}
	defer rows.Close()

	points := []models.SentimentPoint{}
	for rows.Next() {
		var messageTime time.Time
		var p models.SentimentPoint
		if err := rows.Scan(&messageTime, &p.Positive, &p.Neutral, &p.Negative, &p.Commercial); err != nil {
			return nil, fmt.Errorf("failed to scan sentiment data: %w", err)
		}
		p.Day = messageTime.Weekday().String()
		points = append(points, p)
	}

	return points, rows.Err()
}

func (r *directoryRepository) TopTopics(ctx context.Context, tenantID, groupName string, limit int) ([]models.TopicFrequency, error) {
	query := `
		SELECT topic_data AS topic, COUNT(*) AS frequency
		FROM whatsapp_messages
		WHERE tenant_id = $1 AND group_name = $2 AND topic_data IS NOT NULL
		GROUP BY topic_data
		ORDER BY frequency DESC
		LIMIT $3
	`

	topics := []models.TopicFrequency{}
	if err := r.db.SelectContext(ctx, &topics, query, tenantID, groupName, limit); err != nil {
		return nil, fmt.Errorf("failed to get top topics: %w", err)
	}

	return topics, nil
}
