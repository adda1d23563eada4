package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/EliandyDumortier/Cycling-App/internal/models"
)

// ErrNoPerformances is returned by leaderboard queries when no performance
// rows exist yet.
var ErrNoPerformances = errors.New("no performances recorded")

// StatResult is one leaderboard row: the athlete and their best value for
// the queried metric.
type StatResult struct {
	AthleteID int64   `json:"athlete_id"`
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
}

// StatsRepository runs the leaderboard aggregates over performances.
type StatsRepository interface {
	BestVO2Max(ctx context.Context) (*StatResult, error)
	BestPPO(ctx context.Context) (*StatResult, error)
	BestPowerToWeight(ctx context.Context) (*StatResult, error)
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new StatsRepository instance.
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) BestVO2Max(ctx context.Context) (*StatResult, error) {
	return r.best(ctx, "MAX(performances.vo2max)")
}

func (r *statsRepository) BestPPO(ctx context.Context) (*StatResult, error) {
	return r.best(ctx, "MAX(performances.ppo)")
}

func (r *statsRepository) BestPowerToWeight(ctx context.Context) (*StatResult, error) {
	return r.best(ctx, "MAX(performances.ppo / athletes.weight)")
}

func (r *statsRepository) best(ctx context.Context, aggregate string) (*StatResult, error) {
	var result StatResult
	err := r.db.WithContext(ctx).
		Model(&models.Performance{}).
		Select("performances.athlete_id AS athlete_id, athletes.name AS name, "+aggregate+" AS value").
		Joins("JOIN athletes ON athletes.id = performances.athlete_id").
		Group("performances.athlete_id, athletes.name").
		Order("value DESC").
		Limit(1).
		Scan(&result).Error
	if err != nil {
		return nil, fmt.Errorf("failed to run leaderboard query: %w", err)
	}
	if result.AthleteID == 0 {
		return nil, ErrNoPerformances
	}
	return &result, nil
}
