package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/EliandyDumortier/Cycling-App/internal/models"
)

// AthleteRepository defines the interface for athlete data operations.
type AthleteRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Athlete, error)
	FindByUserID(ctx context.Context, userID int64) (*models.Athlete, error)
	List(ctx context.Context) ([]models.Athlete, error)
	Create(ctx context.Context, athlete *models.Athlete) error
	Update(ctx context.Context, athlete *models.Athlete) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type athleteRepository struct {
	db *gorm.DB
}

// NewAthleteRepository creates a new AthleteRepository instance.
func NewAthleteRepository(db *gorm.DB) AthleteRepository {
	return &athleteRepository{db: db}
}

func (r *athleteRepository) FindByID(ctx context.Context, id int64) (*models.Athlete, error) {
	var athlete models.Athlete
	err := r.db.WithContext(ctx).First(&athlete, id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find athlete by id %d: %w", id, err)
	}
	return &athlete, nil
}

func (r *athleteRepository) FindByUserID(ctx context.Context, userID int64) (*models.Athlete, error) {
	var athlete models.Athlete
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&athlete).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find athlete by user id %d: %w", userID, err)
	}
	return &athlete, nil
}

func (r *athleteRepository) List(ctx context.Context) ([]models.Athlete, error) {
	var athletes []models.Athlete
	if err := r.db.WithContext(ctx).Order("id").Find(&athletes).Error; err != nil {
		return nil, fmt.Errorf("failed to list athletes: %w", err)
	}
	return athletes, nil
}

func (r *athleteRepository) Create(ctx context.Context, athlete *models.Athlete) error {
	if err := r.db.WithContext(ctx).Create(athlete).Error; err != nil {
		return fmt.Errorf("failed to create athlete: %w", err)
	}
	return nil
}

func (r *athleteRepository) Update(ctx context.Context, athlete *models.Athlete) error {
	if err := r.db.WithContext(ctx).Save(athlete).Error; err != nil {
		return fmt.Errorf("failed to update athlete id %d: %w", athlete.ID, err)
	}
	return nil
}

// Delete removes the athlete row and reports whether a row existed.
func (r *athleteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Athlete{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete athlete id %d: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}
