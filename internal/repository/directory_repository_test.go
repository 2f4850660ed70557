package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankur09868/whatsapp-automation/internal/repository"
)

func seedGroup(t *testing.T, db *sqlx.DB, tenantID, name string) int64 {
	t.Helper()

	_, err := db.Exec(`INSERT INTO tenants (id) VALUES ($1) ON CONFLICT (id) DO NOTHING`, tenantID)
	require.NoError(t, err)

	var id int64
	err = db.Get(&id,
		`INSERT INTO whatsapp_groups (tenant_id, group_name, group_description) VALUES ($1, $2, 'test group') RETURNING id`,
		tenantID, name)
	require.NoError(t, err)
	return id
}

func seedMessage(t *testing.T, db *sqlx.DB, tenantID, groupName, sentiment string, at time.Time) {
	seedMessageFrom(t, db, tenantID, groupName, "someone", sentiment, at)
}

func seedMessageFrom(t *testing.T, db *sqlx.DB, tenantID, groupName, sender, sentiment string, at time.Time) {
	t.Helper()

	_, err := db.Exec(`INSERT INTO tenants (id) VALUES ($1) ON CONFLICT (id) DO NOTHING`, tenantID)
	require.NoError(t, err)

	_, err = db.Exec(
		`INSERT INTO whatsapp_messages (tenant_id, group_name, sender, message_text, message_time, sentiment_data, topic_data)
		 VALUES ($1, $2, $3, 'hi', $4, $5, 'pricing')`,
		tenantID, groupName, sender, at, `{"sentiment":"`+sentiment+`"}`)
	require.NoError(t, err)
}

func TestDirectoryRepository_GroupsAndMembers(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewDirectoryRepository(db)
	ctx := context.Background()

	t.Run("groups listed per tenant", func(t *testing.T) {
		defer cleanupTestData(db)

		seedGroup(t, db, "tenant-a", "Engineering")
		seedGroup(t, db, "tenant-b", "Sales")

		groups, err := repo.ListGroups(ctx, "tenant-a")
		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.Equal(t, "Engineering", groups[0].Name)
	})

	t.Run("members joined through their group's tenant", func(t *testing.T) {
		defer cleanupTestData(db)

		groupID := seedGroup(t, db, "tenant-a", "Engineering")
		otherID := seedGroup(t, db, "tenant-b", "Sales")

		_, err := db.Exec(
			`INSERT INTO whatsapp_group_members (group_id, name, phone_number, role) VALUES ($1, 'Asha', '+911234567890', 'admin')`,
			groupID)
		require.NoError(t, err)
		_, err = db.Exec(
			`INSERT INTO whatsapp_group_members (group_id, name) VALUES ($1, 'Outsider')`,
			otherID)
		require.NoError(t, err)

		members, err := repo.ListMembers(ctx, "tenant-a")
		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, "Asha", members[0].Name.String)
	})

	t.Run("group details include members", func(t *testing.T) {
		defer cleanupTestData(db)

		groupID := seedGroup(t, db, "tenant-a", "Engineering")
		_, err := db.Exec(
			`INSERT INTO whatsapp_group_members (group_id, name) VALUES ($1, 'Asha'), ($1, 'Ravi')`,
			groupID)
		require.NoError(t, err)

		details, err := repo.GetGroupDetails(ctx, "tenant-a", groupID)
		require.NoError(t, err)
		assert.Equal(t, "Engineering", details.GroupName)
		assert.Len(t, details.Members, 2)
	})

	t.Run("group details scoped to tenant", func(t *testing.T) {
		defer cleanupTestData(db)

		groupID := seedGroup(t, db, "tenant-a", "Engineering")

		_, err := repo.GetGroupDetails(ctx, "tenant-b", groupID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestDirectoryRepository_MessageAggregates(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewDirectoryRepository(db)
	ctx := context.Background()

	t.Run("activity counts messages per calendar date", func(t *testing.T) {
		defer cleanupTestData(db)

		monday := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
		seedMessage(t, db, "tenant-a", "Engineering", "Positive", monday)
		seedMessage(t, db, "tenant-a", "Engineering", "Neutral", monday.Add(time.Hour))
		seedMessage(t, db, "tenant-a", "Engineering", "Negative", monday.Add(24*time.Hour))

		activity, err := repo.GroupActivity(ctx, "tenant-a", "Engineering")
		require.NoError(t, err)
		assert.Equal(t, "Engineering", activity.GroupName)
		require.Len(t, activity.MessagesPerDay, 2)
		assert.Equal(t, "2024-06-03", activity.MessagesPerDay[0].MessageDate)
		assert.Equal(t, 2, activity.MessagesPerDay[0].MessageCount)
		assert.Equal(t, "2024-06-04", activity.MessagesPerDay[1].MessageDate)
		assert.Equal(t, 1, activity.MessagesPerDay[1].MessageCount)
		assert.Equal(t, 3, activity.TotalMessages)
	})

	t.Run("activity reports top member and daily-active members", func(t *testing.T) {
		defer cleanupTestData(db)

		now := time.Now()
		// alice posts today and yesterday, bob only today, carol only last month.
		seedMessageFrom(t, db, "tenant-a", "Engineering", "alice", "Neutral", now)
		seedMessageFrom(t, db, "tenant-a", "Engineering", "alice", "Neutral", now.Add(-24*time.Hour))
		seedMessageFrom(t, db, "tenant-a", "Engineering", "alice", "Neutral", now.Add(-25*time.Hour))
		seedMessageFrom(t, db, "tenant-a", "Engineering", "bob", "Neutral", now)
		seedMessageFrom(t, db, "tenant-a", "Engineering", "carol", "Neutral", now.AddDate(0, -1, 0))

		activity, err := repo.GroupActivity(ctx, "tenant-a", "Engineering")
		require.NoError(t, err)
		assert.Equal(t, 5, activity.TotalMessages)
		assert.Equal(t, []string{"alice"}, activity.ActiveMembers)
		require.NotNil(t, activity.TopMember)
		assert.Equal(t, "alice", activity.TopMember.Sender)
		assert.Equal(t, 3, activity.TopMember.MessageCount)
	})

	t.Run("activity for silent group has empty aggregates", func(t *testing.T) {
		defer cleanupTestData(db)

		activity, err := repo.GroupActivity(ctx, "tenant-a", "Ghost Town")
		require.NoError(t, err)
		assert.Empty(t, activity.MessagesPerDay)
		assert.Zero(t, activity.TotalMessages)
		assert.Empty(t, activity.ActiveMembers)
		assert.Nil(t, activity.TopMember)
	})

	t.Run("sentiment buckets counted per message time", func(t *testing.T) {
		defer cleanupTestData(db)

		at := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
		seedMessage(t, db, "tenant-a", "Engineering", "Positive", at)
		seedMessage(t, db, "tenant-a", "Engineering", "Commercial", at)

		points, err := repo.SentimentByGroup(ctx, "tenant-a", "Engineering")
		require.NoError(t, err)
		require.Len(t, points, 1)
		assert.Equal(t, 1, points[0].Positive)
		assert.Equal(t, 1, points[0].Commercial)
		assert.Equal(t, 0, points[0].Negative)
	})

	t.Run("distinct group names and top topics", func(t *testing.T) {
		defer cleanupTestData(db)

		at := time.Now()
		seedMessage(t, db, "tenant-a", "Engineering", "Neutral", at)
		seedMessage(t, db, "tenant-a", "Engineering", "Neutral", at)
		seedMessage(t, db, "tenant-a", "Sales", "Neutral", at)

		names, err := repo.MessageGroupNames(ctx, "tenant-a")
		require.NoError(t, err)
		assert.Equal(t, []string{"Engineering", "Sales"}, names)

		topics, err := repo.TopTopics(ctx, "tenant-a", "Engineering", 10)
		require.NoError(t, err)
		require.Len(t, topics, 1)
		assert.Equal(t, "pricing", topics[0].Topic)
		assert.Equal(t, 2, topics[0].Frequency)
	})
}
