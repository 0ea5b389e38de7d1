package ports

import (
	"context"

	"github.com/Adarshcode-012/ActivityHub/internal/domain"
)

type ActivityRepo interface {
	Create(ctx context.Context, a *domain.Activity) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	GetWithCount(ctx context.Context, id string) (*domain.Activity, int, error)
	ListWithCounts(ctx context.Context) ([]domain.ActivityCount, error)
	ListOverbooked(ctx context.Context) ([]domain.ActivityCount, error)
	Update(ctx context.Context, id string, in domain.UpdateActivityInput) (*domain.Activity, int, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
