package notification

import (
	"context"

	"github.com/Adarshcode-012/ActivityHub/internal/domain"
	"github.com/Adarshcode-012/ActivityHub/internal/service/ports"
)

// Fanout delivers every notification to each wrapped notifier in order.
type Fanout []ports.BookingNotifier

func (f Fanout) NotifyBookingCreated(ctx context.Context, user *domain.User, activity *domain.Activity, booking *domain.Booking) {
	for _, n := range f {
		n.NotifyBookingCreated(ctx, user, activity, booking)
	}
}

func (f Fanout) NotifyActivityFull(ctx context.Context, activity *domain.Activity) {
	for _, n := range f {
		n.NotifyActivityFull(ctx, activity)
	}
}
