package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/EliandyDumortier/Cycling-App/internal/models"
)

// PerformanceRepository defines the interface for performance data operations.
type PerformanceRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Performance, error)
	List(ctx context.Context) ([]models.Performance, error)
	ListByAthleteID(ctx context.Context, athleteID int64) ([]models.Performance, error)
	Create(ctx context.Context, performance *models.Performance) error
	Update(ctx context.Context, performance *models.Performance) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type performanceRepository struct {
	db *gorm.DB
}

// NewPerformanceRepository creates a new PerformanceRepository instance.
func NewPerformanceRepository(db *gorm.DB) PerformanceRepository {
	return &performanceRepository{db: db}
}

func (r *performanceRepository) FindByID(ctx context.Context, id int64) (*models.Performance, error) {
	var performance models.Performance
	err := r.db.WithContext(ctx).First(&performance, id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find performance by id %d: %w", id, err)
	}
	return &performance, nil
}

func (r *performanceRepository) List(ctx context.Context) ([]models.Performance, error) {
	var performances []models.Performance
	if err := r.db.WithContext(ctx).Order("id").Find(&performances).Error; err != nil {
		return nil, fmt.Errorf("failed to list performances: %w", err)
	}
	return performances, nil
}

func (r *performanceRepository) ListByAthleteID(ctx context.Context, athleteID int64) ([]models.Performance, error) {
	var performances []models.Performance
	err := r.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Order("id").
		Find(&performances).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list performances for athlete %d: %w", athleteID, err)
	}
	return performances, nil
}

func (r *performanceRepository) Create(ctx context.Context, performance *models.Performance) error {
	if err := r.db.WithContext(ctx).Create(performance).Error; err != nil {
		return fmt.Errorf("failed to create performance: %w", err)
	}
	return nil
}

func (r *performanceRepository) Update(ctx context.Context, performance *models.Performance) error {
	if err := r.db.WithContext(ctx).Save(performance).Error; err != nil {
		return fmt.Errorf("failed to update performance id %d: %w", performance.ID, err)
	}
	return nil
}

// Delete removes the performance row and reports whether a row existed.
func (r *performanceRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Performance{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete performance id %d: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}
