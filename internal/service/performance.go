package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/EliandyDumortier/Cycling-App/internal/models"
	"github.com/EliandyDumortier/Cycling-App/internal/repository"
)

// PerformanceInput carries the mutable fields of a performance record.
type PerformanceInput struct {
	VO2Max     float64
	HRMax      float64
	RFMax      float64
	CadenceMax float64
	PPO        float64
	P1         float64
	P2         float64
	P3         float64
	AthleteID  int64
}

// PerformanceService manages performance test records.
type PerformanceService interface {
	Create(ctx context.Context, input PerformanceInput) (*models.Performance, error)
	// ListFor returns all performances for coaches and admins; for athletes
	// it returns only the rows of the caller's own athlete profile. The
	// caller must already have passed the role check.
	ListFor(ctx context.Context, caller *models.User) ([]models.Performance, error)
	Update(ctx context.Context, id int64, input PerformanceInput) (*models.Performance, error)
	Delete(ctx context.Context, id int64) error
}

type performanceService struct {
	performanceRepo repository.PerformanceRepository
	athleteRepo     repository.AthleteRepository
}

// NewPerformanceService creates a new PerformanceService instance.
func NewPerformanceService(performanceRepo repository.PerformanceRepository, athleteRepo repository.AthleteRepository) PerformanceService {
	return &performanceService{
		performanceRepo: performanceRepo,
		athleteRepo:     athleteRepo,
	}
}

func (s *performanceService) Create(ctx context.Context, input PerformanceInput) (*models.Performance, error) {
	if _, err := s.athleteRepo.FindByID(ctx, input.AthleteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAthleteMissing
		}
		return nil, fmt.Errorf("athlete lookup failed: %w", err)
	}

	performance := s.fromInput(input)
	if err := s.performanceRepo.Create(ctx, performance); err != nil {
		return nil, err
	}
	return performance, nil
}

func (s *performanceService) ListFor(ctx context.Context, caller *models.User) ([]models.Performance, error) {
	if caller.Role != models.RoleAthlete {
		return s.performanceRepo.List(ctx)
	}

	athlete, err := s.athleteRepo.FindByUserID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// An athlete account without a profile owns no rows yet.
			return []models.Performance{}, nil
		}
		return nil, err
	}
	return s.performanceRepo.ListByAthleteID(ctx, athlete.ID)
}

func (s *performanceService) Update(ctx context.Context, id int64, input PerformanceInput) (*models.Performance, error) {
	performance, err := s.performanceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPerformanceNotFound
		}
		return nil, err
	}

	updated := s.fromInput(input)
	updated.ID = performance.ID
	updated.CreatedAt = performance.CreatedAt

	if err := s.performanceRepo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *performanceService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.performanceRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPerformanceNotFound
	}
	return nil
}

func (s *performanceService) fromInput(input PerformanceInput) *models.Performance {
	return &models.Performance{
		VO2Max:     input.VO2Max,
		HRMax:      input.HRMax,
		RFMax:      input.RFMax,
		CadenceMax: input.CadenceMax,
		PPO:        input.PPO,
		P1:         input.P1,
		P2:         input.P2,
		P3:         input.P3,
		AthleteID:  input.AthleteID,
	}
}
