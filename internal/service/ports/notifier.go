package ports

import (
	"context"

	"github.com/Adarshcode-012/ActivityHub/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, user *domain.User, activity *domain.Activity, booking *domain.Booking)
	NotifyActivityFull(ctx context.Context, activity *domain.Activity)
}
