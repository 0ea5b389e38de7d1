package ports

import (
	"context"

	"github.com/Adarshcode-012/ActivityHub/internal/domain"
)

type BookingRepo interface {
	// Create returns the number of slots left after the booking.
	Create(ctx context.Context, b *domain.Booking) (int, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
}
