package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/EliandyDumortier/Cycling-App/internal/models"
	"github.com/EliandyDumortier/Cycling-App/internal/repository"
)

// AthleteInput carries the mutable fields of an athlete profile.
type AthleteInput struct {
	Name   string
	Gender string
	Age    int
	Weight float64
	Height float64
	UserID int64
}

// AthleteService manages athlete profiles.
type AthleteService interface {
	Create(ctx context.Context, input AthleteInput) (*models.Athlete, error)
	List(ctx context.Context) ([]models.Athlete, error)
	Update(ctx context.Context, id int64, input AthleteInput) (*models.Athlete, error)
	Delete(ctx context.Context, id int64) error
}

type athleteService struct {
	athleteRepo repository.AthleteRepository
	userRepo    repository.UserRepository
}

// NewAthleteService creates a new AthleteService instance.
func NewAthleteService(athleteRepo repository.AthleteRepository, userRepo repository.UserRepository) AthleteService {
	return &athleteService{
		athleteRepo: athleteRepo,
		userRepo:    userRepo,
	}
}

func (s *athleteService) Create(ctx context.Context, input AthleteInput) (*models.Athlete, error) {
	if _, err := s.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserMissing
		}
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}

	athlete := &models.Athlete{
		Name:   input.Name,
		Gender: input.Gender,
		Age:    input.Age,
		Weight: input.Weight,
		Height: input.Height,
		UserID: input.UserID,
	}
	if err := s.athleteRepo.Create(ctx, athlete); err != nil {
		return nil, err
	}
	return athlete, nil
}

func (s *athleteService) List(ctx context.Context) ([]models.Athlete, error) {
	return s.athleteRepo.List(ctx)
}

func (s *athleteService) Update(ctx context.Context, id int64, input AthleteInput) (*models.Athlete, error) {
	athlete, err := s.athleteRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAthleteNotFound
		}
		return nil, err
	}

	athlete.Name = input.Name
	athlete.Gender = input.Gender
	athlete.Age = input.Age
	athlete.Weight = input.Weight
	athlete.Height = input.Height
	athlete.UserID = input.UserID

	if err := s.athleteRepo.Update(ctx, athlete); err != nil {
		return nil, err
	}
	return athlete, nil
}

func (s *athleteService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.athleteRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAthleteNotFound
	}
	return nil
}
