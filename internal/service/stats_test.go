package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/EliandyDumortier/Cycling-App/internal/repository"
)

// =============================================================================
// Mock StatsRepository
// =============================================================================

type mockStatsRepository struct {
	queries int
	result  *repository.StatResult
	err     error
}

func (m *mockStatsRepository) BestVO2Max(ctx context.Context) (*repository.StatResult, error) {
	m.queries++
	return m.result, m.err
}

func (m *mockStatsRepository) BestPPO(ctx context.Context) (*repository.StatResult, error) {
	m.queries++
	return m.result, m.err
}

func (m *mockStatsRepository) BestPowerToWeight(ctx context.Context) (*repository.StatResult, error) {
	m.queries++
	return m.result, m.err
}

func setupStatsService(t *testing.T, repo repository.StatsRepository) (StatsService, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to create miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewStatsService(repo, client, time.Minute), mr
}

// =============================================================================
// Cache Behaviour Tests
// =============================================================================

func TestStats_CachesLeaderboard(t *testing.T) {
	repo := &mockStatsRepository{
		result: &repository.StatResult{AthleteID: 3, Name: "Ana", Value: 71.5},
	}
	svc, mr := setupStatsService(t, repo)

	first, err := svc.BestVO2Max(context.Background())
	if err != nil {
		t.Fatalf("BestVO2Max() error = %v", err)
	}
	second, err := svc.BestVO2Max(context.Background())
	if err != nil {
		t.Fatalf("BestVO2Max() second call error = %v", err)
	}

	if repo.queries != 1 {
		t.Errorf("database queried %d times, want 1", repo.queries)
	}
	if *first != *second {
		t.Errorf("cached result %+v differs from original %+v", second, first)
	}
	if !mr.Exists("stats:vo2max") {
		t.Error("leaderboard result was not written to the cache")
	}
}

func TestStats_CacheExpiry(t *testing.T) {
	repo := &mockStatsRepository{
		result: &repository.StatResult{AthleteID: 3, Name: "Ana", Value: 402},
	}
	svc, mr := setupStatsService(t, repo)

	if _, err := svc.BestPPO(context.Background()); err != nil {
		t.Fatalf("BestPPO() error = %v", err)
	}
	mr.FastForward(2 * time.Minute)
	if _, err := svc.BestPPO(context.Background()); err != nil {
		t.Fatalf("BestPPO() after expiry error = %v", err)
	}

	if repo.queries != 2 {
		t.Errorf("database queried %d times after cache expiry, want 2", repo.queries)
	}
}

func TestStats_RedisDownFallsBack(t *testing.T) {
	repo := &mockStatsRepository{
		result: &repository.StatResult{AthleteID: 3, Name: "Ana", Value: 5.2},
	}
	svc, mr := setupStatsService(t, repo)
	mr.Close()

	result, err := svc.BestPowerToWeight(context.Background())
	if err != nil {
		t.Fatalf("BestPowerToWeight() error = %v, cache must not be a dependency", err)
	}
	if result.Name != "Ana" {
		t.Errorf("result = %+v, want the database row", result)
	}
}

func TestStats_CorruptCacheEntry(t *testing.T) {
	repo := &mockStatsRepository{
		result: &repository.StatResult{AthleteID: 3, Name: "Ana", Value: 71.5},
	}
	svc, mr := setupStatsService(t, repo)

	if err := mr.Set("stats:vo2max", "{not json"); err != nil {
		t.Fatalf("Failed to seed cache: %v", err)
	}

	result, err := svc.BestVO2Max(context.Background())
	if err != nil {
		t.Fatalf("BestVO2Max() error = %v", err)
	}
	if repo.queries != 1 {
		t.Errorf("database queried %d times, want 1 after discarding corrupt entry", repo.queries)
	}
	if result.AthleteID != 3 {
		t.Errorf("result = %+v, want the database row", result)
	}
}

func TestStats_NoPerformances(t *testing.T) {
	repo := &mockStatsRepository{err: repository.ErrNoPerformances}
	svc, _ := setupStatsService(t, repo)

	if _, err := svc.BestVO2Max(context.Background()); !errors.Is(err, repository.ErrNoPerformances) {
		t.Errorf("BestVO2Max() error = %v, want ErrNoPerformances", err)
	}
}
