package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// repositoryImpl is the concrete implementation of Repository interface.
type repositoryImpl struct {
	db        *sqlx.DB
	scheduled ScheduledMessageRepository
	botConfig BotConfigRepository
	directory DirectoryRepository
}

// NewRepository creates a new repository instance.
func NewRepository(db *sqlx.DB) Repository {
	return &repositoryImpl{
		db:        db,
		scheduled: NewScheduledMessageRepository(db),
		botConfig: NewBotConfigRepository(db),
		directory: NewDirectoryRepository(db),
	}
}

// ScheduledMessages returns the scheduled message repository.
func (r *repositoryImpl) ScheduledMessages() ScheduledMessageRepository {
	return r.scheduled
}

// BotConfigs returns the bot configuration repository.
func (r *repositoryImpl) BotConfigs() BotConfigRepository {
	return r.botConfig
}

// Directory returns the directory read repository.
func (r *repositoryImpl) Directory() DirectoryRepository {
	return r.directory
}

// Ping checks if the database connection is healthy.
func (r *repositoryImpl) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return r.db.PingContext(ctx)
}
