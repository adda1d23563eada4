package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/EliandyDumortier/Cycling-App/internal/models"
)

// ActionLogRepository persists audit records.
type ActionLogRepository interface {
	Create(ctx context.Context, entry *models.ActionLog) error
}

type actionLogRepository struct {
	db *gorm.DB
}

// NewActionLogRepository creates a new ActionLogRepository instance.
func NewActionLogRepository(db *gorm.DB) ActionLogRepository {
	return &actionLogRepository{db: db}
}

func (r *actionLogRepository) Create(ctx context.Context, entry *models.ActionLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create action log: %w", err)
	}
	return nil
}
