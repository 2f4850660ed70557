package service

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/ankur09868/whatsapp-automation/internal/config"
	"github.com/ankur09868/whatsapp-automation/internal/repository"
)

type Service struct {
	ScheduleMessage ScheduleMessageService
	BotConfig       BotConfigService
	Directory       DirectoryService
	Worker          WorkerService
	Health          HealthService
}

func NewService(
	cfg *config.Config,
	repo repository.Repository,
	redisClient *redis.Client,
	logger *zap.Logger,
) *Service {
	scheduleService := NewScheduleMessageService(repo, logger)
	botConfigService := NewBotConfigService(repo, logger)
	directoryService := NewDirectoryService(cfg, repo, redisClient, logger)
	workerService := NewWorkerService(cfg, logger)
	healthService := NewHealthService(repo, redisClient, workerService)

	return &Service{
		ScheduleMessage: scheduleService,
		BotConfig:       botConfigService,
		Directory:       directoryService,
		Worker:          workerService,
		Health:          healthService,
	}
}
