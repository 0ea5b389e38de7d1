package scheduler

import (
	"context"
	"time"

	"github.com/Adarshcode-012/ActivityHub/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type capacityAuditor interface {
	AuditCapacity(ctx context.Context) ([]domain.ActivityCount, error)
}

// Scheduler periodically checks that no activity holds more bookings than seats.
type Scheduler struct {
	auditor  capacityAuditor
	interval time.Duration
	logger   logger.Logger
}

func New(
	auditor capacityAuditor,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		auditor:  auditor,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("capacity audit scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("capacity audit scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	overbooked, err := s.auditor.AuditCapacity(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Error("capacity audit failed",
			logger.String("error", err.Error()),
		)
		return
	}

	if len(overbooked) == 0 {
		s.logger.Debug("capacity audit passed")
		return
	}

	s.logger.Warn("capacity audit found overbooked activities",
		logger.Int("count", len(overbooked)),
	)
}
