package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Adarshcode-012/ActivityHub/internal/domain"
	"github.com/Adarshcode-012/ActivityHub/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo  ports.BookingRepo
	activityRepo ports.ActivityRepo
	userRepo     ports.UserRepo
	notifier     ports.BookingNotifier
	logger       logger.Logger

	// pending tracks notification goroutines still running.
	pending sync.WaitGroup
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	activityRepo ports.ActivityRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		activityRepo: activityRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

// Book reserves one seat of the activity for the user.
// The duplicate and capacity checks are enforced by the repository inside a
// single locked transaction; the lookups here only provide the not-found
// outcomes and the activity projection returned to the caller.
func (s *BookingService) Book(ctx context.Context, userID, activityID string) (*domain.Booking, error) {
	activity, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("check activity: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	booking := &domain.Booking{
		ID:         uuid.New().String(),
		UserID:     userID,
		ActivityID: activityID,
		CreatedAt:  time.Now().UTC(),
	}

	remaining, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	booking.Activity = domain.SummaryOf(activity)

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("activity_id", activityID),
		logger.String("user_id", userID),
		logger.Int("slots_left", remaining),
	)

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		s.notify(context.WithoutCancel(ctx), user, activity, booking, remaining)
	}()

	return booking, nil
}

func (s *BookingService) notify(ctx context.Context, user *domain.User, activity *domain.Activity, booking *domain.Booking, remaining int) {
	s.notifier.NotifyBookingCreated(ctx, user, activity, booking)
	if remaining == 0 {
		s.notifier.NotifyActivityFull(ctx, activity)
	}
}

// Wait blocks until in-flight notifications finish or ctx is done.
func (s *BookingService) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	bookings, err := s.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return bookings, nil
}
