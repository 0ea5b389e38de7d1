package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Adarshcode-012/ActivityHub/internal/domain"
	"github.com/Adarshcode-012/ActivityHub/internal/service/ports"
	"github.com/Adarshcode-012/ActivityHub/internal/validator"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type ActivityService struct {
	repo   ports.ActivityRepo
	logger logger.Logger
}

func NewActivityService(repo ports.ActivityRepo, logger logger.Logger) *ActivityService {
	return &ActivityService{repo: repo, logger: logger}
}

func (s *ActivityService) Create(ctx context.Context, input domain.CreateActivityInput) (*domain.ActivityAvailability, error) {
	input.Title = strings.TrimSpace(input.Title)
	if err := validator.Validate(ctx, input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	activity := &domain.Activity{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date.UTC(),
		Capacity:    input.Capacity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("create activity: %w", err)
	}

	s.logger.Info("activity created",
		logger.String("activity_id", activity.ID),
		logger.Int("capacity", activity.Capacity),
	)

	return s.withSlots(*activity, 0)
}

func (s *ActivityService) Get(ctx context.Context, id string) (*domain.ActivityAvailability, error) {
	activity, count, err := s.repo.GetWithCount(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.withSlots(*activity, count)
}

func (s *ActivityService) List(ctx context.Context) ([]*domain.ActivityAvailability, error) {
	rows, err := s.repo.ListWithCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	res := make([]*domain.ActivityAvailability, 0, len(rows))
	for _, row := range rows {
		av, err := s.withSlots(row.Activity, row.BookingCount)
		if err != nil {
			return nil, err
		}
		res = append(res, av)
	}

	return res, nil
}

func (s *ActivityService) Update(ctx context.Context, id string, input domain.UpdateActivityInput) (*domain.ActivityAvailability, error) {
	if input.Empty() {
		return nil, fmt.Errorf("%w: at least one field must be provided", domain.ErrValidation)
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		input.Title = &title
	}
	if err := validator.Validate(ctx, input); err != nil {
		return nil, err
	}
	if input.Date != nil {
		date := input.Date.UTC()
		input.Date = &date
	}

	activity, count, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, fmt.Errorf("update activity: %w", err)
	}

	s.logger.Info("activity updated",
		logger.String("activity_id", activity.ID),
		logger.Int("capacity", activity.Capacity),
		logger.Int("bookings", count),
	)

	return s.withSlots(*activity, count)
}

func (s *ActivityService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}

	s.logger.Info("activity deleted", logger.String("activity_id", id))

	return nil
}

func (s *ActivityService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// AuditCapacity reports activities holding more bookings than seats.
func (s *ActivityService) AuditCapacity(ctx context.Context) ([]domain.ActivityCount, error) {
	overbooked, err := s.repo.ListOverbooked(ctx)
	if err != nil {
		return nil, fmt.Errorf("audit capacity: %w", err)
	}

	for _, row := range overbooked {
		s.logger.Error("activity overbooked",
			logger.String("activity_id", row.Activity.ID),
			logger.Int("capacity", row.Activity.Capacity),
			logger.Int("bookings", row.BookingCount),
		)
	}

	return overbooked, nil
}

func (s *ActivityService) withSlots(a domain.Activity, count int) (*domain.ActivityAvailability, error) {
	av, err := domain.NewActivityAvailability(a, count)
	if err != nil {
		s.logger.Error("availability invariant violated",
			logger.String("activity_id", a.ID),
			logger.Int("capacity", a.Capacity),
			logger.Int("bookings", count),
		)
		return nil, err
	}

	return av, nil
}
