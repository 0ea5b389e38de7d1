// Package seed populates an empty installation with accounts and sample activities.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/Adarshcode-012/ActivityHub/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type userEnsurer interface {
	Ensure(ctx context.Context, input domain.CreateUserInput) (*domain.User, bool, error)
}

type activityCatalog interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, input domain.CreateActivityInput) (*domain.ActivityAvailability, error)
}

type sample struct {
	title       string
	description string
	inDays      int
	hour        int
	capacity    int
}

var samples = []sample{
	{"Morning Yoga Session", "Start your day with a rejuvenating yoga class suitable for all levels. Includes meditation and breathing exercises.", 7, 9, 20},
	{"Hiking Adventure", "Join us for a scenic 5-mile hike through beautiful mountain trails. Moderate difficulty level.", 9, 8, 15},
	{"Cooking Workshop", "Learn to cook authentic Italian pasta dishes from scratch with our expert chef.", 11, 18, 12},
	{"Photography Walk", "Explore the city and improve your photography skills with professional guidance.", 13, 14, 10},
	{"Pottery Class", "Hands-on pottery workshop where you'll create your own ceramic pieces on the wheel.", 16, 16, 8},
	{"Dance Workshop", "Learn salsa dancing basics in this fun and energetic beginner-friendly class.", 18, 19, 25},
	{"Rock Climbing", "Indoor rock climbing session with equipment provided. Safety instruction included.", 21, 10, 12},
	{"Wine Tasting", "Sample a selection of premium wines while learning about tasting techniques and wine regions.", 23, 17, 20},
}

type Seeder struct {
	users      userEnsurer
	activities activityCatalog
	logger     logger.Logger
	now        func() time.Time
}

func New(users userEnsurer, activities activityCatalog, logger logger.Logger) *Seeder {
	return &Seeder{
		users:      users,
		activities: activities,
		logger:     logger,
		now:        time.Now,
	}
}

// Run ensures every account exists and fills the catalogue when it is empty.
// It is safe to run repeatedly.
func (s *Seeder) Run(ctx context.Context, accounts []domain.CreateUserInput) error {
	for _, acc := range accounts {
		user, created, err := s.users.Ensure(ctx, acc)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", acc.Email, err)
		}
		if created {
			s.logger.Info("user created",
				logger.String("email", user.Email),
				logger.String("role", string(user.Role)),
			)
		}
	}

	count, err := s.activities.Count(ctx)
	if err != nil {
		return fmt.Errorf("count activities: %w", err)
	}
	if count > 0 {
		s.logger.Info("activities already present, skipping samples", logger.Int("count", count))
		return nil
	}

	base := s.now().UTC().Truncate(24 * time.Hour)
	for _, smp := range samples {
		date := base.AddDate(0, 0, smp.inDays).Add(time.Duration(smp.hour) * time.Hour)
		a, err := s.activities.Create(ctx, domain.CreateActivityInput{
			Title:       smp.title,
			Description: smp.description,
			Date:        date,
			Capacity:    smp.capacity,
		})
		if err != nil {
			return fmt.Errorf("seed activity %q: %w", smp.title, err)
		}
		s.logger.Info("activity created",
			logger.String("id", a.Activity.ID),
			logger.String("title", a.Activity.Title),
		)
	}

	return nil
}
