package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/ankur09868/whatsapp-automation/internal/repository"
)

type healthService struct {
	repo          repository.Repository
	redisClient   *redis.Client
	workerService WorkerService
}

func NewHealthService(
	repo repository.Repository,
	redisClient *redis.Client,
	workerService WorkerService,
) HealthService {
	return &healthService{
		repo:          repo,
		redisClient:   redisClient,
		workerService: workerService,
	}
}

func (s *healthService) GetHealth() *HealthStatus {
	status := &HealthStatus{
		Status: HealthStatusHealthy,
	}

	status.DatabaseStatus = s.checkDatabaseHealth()
	status.RedisStatus = s.checkRedisHealth()

	state, requests, failures := s.workerService.GetCircuitBreakerStatus()
	status.CircuitBreakerState = state
	if requests > 0 {
		failureRate := float64(failures) / float64(requests) * 100
		status.CircuitBreakerStatus = fmt.Sprintf("Requests: %d, Failures: %d (%.1f%%)", requests, failures, failureRate)
	} else {
		status.CircuitBreakerStatus = "No requests yet"
	}

	// Determine overall health
	if status.DatabaseStatus != DependencyStatusConnected || status.RedisStatus != DependencyStatusConnected {
		status.Status = HealthStatusUnhealthy
	}

	// An open breaker means the worker VM is unreachable but this service can
	// still serve reads and writes.
	if status.Status == HealthStatusHealthy && state == CircuitBreakerOpen {
		status.Status = HealthStatusDegraded
	}

	return status
}

func (s *healthService) checkDatabaseHealth() string {
	if err := s.repo.Ping(); err != nil {
		return DependencyStatusDisconnected
	}
	return DependencyStatusConnected
}

func (s *healthService) checkRedisHealth() string {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		return DependencyStatusDisconnected
	}
	return DependencyStatusConnected
}
