package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Adarshcode-012/ActivityHub/internal/domain"
	"github.com/Adarshcode-012/ActivityHub/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

var _ capacityAuditor = (*mocks.MockCapacityAuditor)(nil)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func signal(ch chan<- struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

// runUntil starts the scheduler and cancels it once the auditor was called n times.
func runUntil(t *testing.T, s *Scheduler, called <-chan struct{}, n int) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	for i := 0; i < n; i++ {
		select {
		case <-called:
		case <-time.After(2 * time.Second):
			t.Fatalf("auditor called %d times, want %d", i, n)
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_Tick_ReportsOverbooked(t *testing.T) {
	auditor := mocks.NewMockCapacityAuditor(t)
	s := New(auditor, 10*time.Millisecond, newTestLogger(t))

	called := make(chan struct{}, 8)
	overbooked := []domain.ActivityCount{
		{Activity: domain.Activity{ID: "a1", Capacity: 1}, BookingCount: 2},
	}
	auditor.EXPECT().AuditCapacity(mock.Anything).
		Run(func(context.Context) { signal(called) }).
		Return(overbooked, nil)

	runUntil(t, s, called, 1)

	assert.GreaterOrEqual(t, len(auditor.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	auditor := mocks.NewMockCapacityAuditor(t)
	s := New(auditor, 10*time.Millisecond, newTestLogger(t))

	called := make(chan struct{}, 8)
	auditor.EXPECT().AuditCapacity(mock.Anything).
		Run(func(context.Context) { signal(called) }).
		Return(nil, errors.New("db error"))

	runUntil(t, s, called, 2)

	assert.GreaterOrEqual(t, len(auditor.Calls), 2)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	auditor := mocks.NewMockCapacityAuditor(t)
	s := New(auditor, time.Hour, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
	assert.Empty(t, auditor.Calls)
}

func TestScheduler_MultipleTicks(t *testing.T) {
	auditor := mocks.NewMockCapacityAuditor(t)
	s := New(auditor, 10*time.Millisecond, newTestLogger(t))

	called := make(chan struct{}, 16)
	auditor.EXPECT().AuditCapacity(mock.Anything).
		Run(func(context.Context) { signal(called) }).
		Return(nil, nil)

	runUntil(t, s, called, 3)

	assert.GreaterOrEqual(t, len(auditor.Calls), 3)
}
