package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/EliandyDumortier/Cycling-App/internal/logger"
	"github.com/EliandyDumortier/Cycling-App/internal/repository"
)

// Cache keys for the leaderboard aggregates.
const (
	statsKeyVO2Max        = "stats:vo2max"
	statsKeyPPO           = "stats:ppo"
	statsKeyPowerToWeight = "stats:weightpower"
)

// StatsService serves the leaderboard aggregates with a short-lived redis
// cache in front of the database queries.
type StatsService interface {
	BestVO2Max(ctx context.Context) (*repository.StatResult, error)
	BestPPO(ctx context.Context) (*repository.StatResult, error)
	BestPowerToWeight(ctx context.Context) (*repository.StatResult, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
	redis     *redis.Client
	cacheTTL  time.Duration
}

// NewStatsService creates a new StatsService instance.
func NewStatsService(statsRepo repository.StatsRepository, redisClient *redis.Client, cacheTTL time.Duration) StatsService {
	return &statsService{
		statsRepo: statsRepo,
		redis:     redisClient,
		cacheTTL:  cacheTTL,
	}
}

func (s *statsService) BestVO2Max(ctx context.Context) (*repository.StatResult, error) {
	return s.cached(ctx, statsKeyVO2Max, s.statsRepo.BestVO2Max)
}

func (s *statsService) BestPPO(ctx context.Context) (*repository.StatResult, error) {
	return s.cached(ctx, statsKeyPPO, s.statsRepo.BestPPO)
}

func (s *statsService) BestPowerToWeight(ctx context.Context) (*repository.StatResult, error) {
	return s.cached(ctx, statsKeyPowerToWeight, s.statsRepo.BestPowerToWeight)
}

// cached reads the key from redis, falling back to the query on a miss or
// any redis failure. The result is written back best-effort: the cache is
// an optimization, never a dependency.
func (s *statsService) cached(ctx context.Context, key string, query func(context.Context) (*repository.StatResult, error)) (*repository.StatResult, error) {
	if raw, err := s.redis.Get(ctx, key).Result(); err == nil {
		var result repository.StatResult
		if err := json.Unmarshal([]byte(raw), &result); err == nil {
			return &result, nil
		}
		logger.Warningf("stats: discarding unreadable cache entry %s", key)
	}

	result, err := query(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(result); err == nil {
		if err := s.redis.Set(ctx, key, raw, s.cacheTTL).Err(); err != nil {
			logger.Warningf("stats: failed to cache %s: %v", key, err)
		}
	}

	return result, nil
}
