package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Adarshcode-012/ActivityHub/internal/domain"
	"github.com/Adarshcode-012/ActivityHub/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestActivityService_Create_Success(t *testing.T) {
	repo := mocks.NewMockActivityRepo(t)
	svc := NewActivityService(repo, newTestLogger(t))

	date := time.Date(2030, 11, 3, 8, 0, 0, 0, time.FixedZone("CET", 3600))
	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(a *domain.Activity) bool {
		return a.Title == "Hiking Adventure" && a.Capacity == 15 && a.Date.Location() == time.UTC
	})).Return(nil)

	av, err := svc.Create(context.Background(), domain.CreateActivityInput{
		Title:    "  Hiking Adventure ",
		Date:     date,
		Capacity: 15,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, av.Activity.ID)
	assert.Equal(t, 15, av.AvailableSlots)
	assert.Equal(t, 0, av.BookingCount)
	assert.True(t, av.Activity.Date.Equal(date))
}

func TestActivityService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.CreateActivityInput
	}{
		{name: "missing title", input: domain.CreateActivityInput{Date: time.Now(), Capacity: 1}},
		{name: "blank title", input: domain.CreateActivityInput{Title: "   ", Date: time.Now(), Capacity: 1}},
		{name: "zero capacity", input: domain.CreateActivityInput{Title: "X", Date: time.Now()}},
		{name: "negative capacity", input: domain.CreateActivityInput{Title: "X", Date: time.Now(), Capacity: -3}},
		{name: "missing date", input: domain.CreateActivityInput{Title: "X", Capacity: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockActivityRepo(t)
			svc := NewActivityService(repo, newTestLogger(t))

			_, err := svc.Create(context.Background(), tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestActivityService_Get_Success(t *testing.T) {
	repo := mocks.NewMockActivityRepo(t)
	svc := NewActivityService(repo, newTestLogger(t))

	repo.EXPECT().GetWithCount(mock.Anything, "a1").Return(&domain.Activity{ID: "a1", Capacity: 12}, 5, nil)

	av, err := svc.Get(context.Background(), "a1")

	require.NoError(t, err)
	assert.Equal(t, 7, av.AvailableSlots)
	assert.Equal(t, 5, av.BookingCount)
}

func TestActivityService_Get_NotFound(t *testing.T) {
	repo := mocks.NewMockActivityRepo(t)
	svc := NewActivityService(repo, newTestLogger(t))

	repo.EXPECT().GetWithCount(mock.Anything, "missing").Return(nil, 0, domain.ErrActivityNotFound)

	_, err := svc.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestActivityService_Get_Overbooked(t *testing.T) {
	repo := mocks.NewMockActivityRepo(t)
	svc := NewActivityService(repo, newTestLogger(t))

	repo.EXPECT().GetWithCount(mock.Anything, "a1").Return(&domain.Activity{ID: "a1", Capacity: 2}, 3, nil)

	_, err := svc.Get(context.Background(), "a1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacityInvariant)
}

func TestActivityService_List(t *testing.T) {
	repo := mocks.NewMockActivityRepo(t)
	svc := NewActivityService(repo, newTestLogger(t))

	repo.EXPECT().ListWithCounts(mock.Anything).Return([]domain.ActivityCount{
		{Activity: domain.Activity{ID: "a1", Capacity: 20}, BookingCount: 0},
		{Activity: domain.Activity{ID: "a2", Capacity: 8}, BookingCount: 8},
	}, nil)

	list, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 20, list[0].AvailableSlots)
	assert.Equal(t, 0, list[1].AvailableSlots)
}

func TestActivityService_List_Empty(t *testing.T) {
	repo := mocks.NewMockActivityRepo(t)
	svc := NewActivityService(repo, newTestLogger(t))

	repo.EXPECT().ListWithCounts(mock.Anything).Return(nil, nil)

	list, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestActivityService_Update_Success(t *testing.T) {
	repo := mocks.NewMockActivityRepo(t)
	svc := NewActivityService(repo, newTestLogger(t))

	input := domain.UpdateActivityInput{Title: ptr(" Salsa "), Capacity: ptr(30)}
	repo.EXPECT().Update(mock.Anything, "a1", mock.MatchedBy(func(in domain.UpdateActivityInput) bool {
		return *in.Title == "Salsa" && *in.Capacity == 30
	})).Return(&domain.Activity{ID: "a1", Title: "Salsa", Capacity: 30}, 4, nil)

	av, err := svc.Update(context.Background(), "a1", input)

	require.NoError(t, err)
	assert.Equal(t, 26, av.AvailableSlots)
}

func TestActivityService_Update_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.UpdateActivityInput
	}{
		{name: "empty patch", input: domain.UpdateActivityInput{}},
		{name: "blank title", input: domain.UpdateActivityInput{Title: ptr(" ")}},
		{name: "long title", input: domain.UpdateActivityInput{Title: ptr(strings.Repeat("x", 201))}},
		{name: "zero capacity", input: domain.UpdateActivityInput{Capacity: ptr(0)}},
		{name: "zero date", input: domain.UpdateActivityInput{Date: &time.Time{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockActivityRepo(t)
			svc := NewActivityService(repo, newTestLogger(t))

			_, err := svc.Update(context.Background(), "a1", tt.input)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestActivityService_MultiByteTitleAtLimit(t *testing.T) {
	title := strings.Repeat("日", 200)

	t.Run("create", func(t *testing.T) {
		repo := mocks.NewMockActivityRepo(t)
		svc := NewActivityService(repo, newTestLogger(t))
		repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

		_, err := svc.Create(context.Background(), domain.CreateActivityInput{
			Title:    title,
			Date:     time.Now().Add(time.Hour),
			Capacity: 5,
		})
		require.NoError(t, err)
	})

	t.Run("update", func(t *testing.T) {
		repo := mocks.NewMockActivityRepo(t)
		svc := NewActivityService(repo, newTestLogger(t))
		repo.EXPECT().Update(mock.Anything, "a1", mock.MatchedBy(func(in domain.UpdateActivityInput) bool {
			return *in.Title == title
		})).Return(&domain.Activity{ID: "a1", Title: title, Capacity: 5}, 0, nil)

		_, err := svc.Update(context.Background(), "a1", domain.UpdateActivityInput{Title: ptr(title)})
		require.NoError(t, err)
	})

	t.Run("one rune over is rejected on both paths", func(t *testing.T) {
		repo := mocks.NewMockActivityRepo(t)
		svc := NewActivityService(repo, newTestLogger(t))
		long := title + "日"

		_, err := svc.Create(context.Background(), domain.CreateActivityInput{
			Title:    long,
			Date:     time.Now().Add(time.Hour),
			Capacity: 5,
		})
		assert.ErrorIs(t, err, domain.ErrValidation)

		_, err = svc.Update(context.Background(), "a1", domain.UpdateActivityInput{Title: ptr(long)})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestActivityService_Update_NormalizesDate(t *testing.T) {
	repo := mocks.NewMockActivityRepo(t)
	svc := NewActivityService(repo, newTestLogger(t))

	date := time.Date(2030, 11, 3, 9, 0, 0, 0, time.FixedZone("CET", 3600))
	repo.EXPECT().Update(mock.Anything, "a1", mock.MatchedBy(func(in domain.UpdateActivityInput) bool {
		return in.Date.Location() == time.UTC && in.Date.Equal(date)
	})).Return(&domain.Activity{ID: "a1", Date: date.UTC(), Capacity: 5}, 0, nil)

	_, err := svc.Update(context.Background(), "a1", domain.UpdateActivityInput{Date: &date})
	require.NoError(t, err)
}

func TestActivityService_Update_CapacityBelowBookings(t *testing.T) {
	repo := mocks.NewMockActivityRepo(t)
	svc := NewActivityService(repo, newTestLogger(t))

	repo.EXPECT().Update(mock.Anything, "a1", mock.Anything).Return(nil, 0, domain.ErrCapacityBelowBookings)

	_, err := svc.Update(context.Background(), "a1", domain.UpdateActivityInput{Capacity: ptr(1)})

	assert.ErrorIs(t, err, domain.ErrCapacityBelowBookings)
}

func TestActivityService_Delete(t *testing.T) {
	repo := mocks.NewMockActivityRepo(t)
	svc := NewActivityService(repo, newTestLogger(t))

	repo.EXPECT().Delete(mock.Anything, "a1").Return(nil)
	repo.EXPECT().Delete(mock.Anything, "missing").Return(domain.ErrActivityNotFound)

	require.NoError(t, svc.Delete(context.Background(), "a1"))
	assert.ErrorIs(t, svc.Delete(context.Background(), "missing"), domain.ErrActivityNotFound)
}

func TestActivityService_AuditCapacity(t *testing.T) {
	repo := mocks.NewMockActivityRepo(t)
	svc := NewActivityService(repo, newTestLogger(t))

	overbooked := []domain.ActivityCount{{Activity: domain.Activity{ID: "a1", Capacity: 1}, BookingCount: 2}}
	repo.EXPECT().ListOverbooked(mock.Anything).Return(overbooked, nil).Once()
	repo.EXPECT().ListOverbooked(mock.Anything).Return(nil, errors.New("db error")).Once()

	res, err := svc.AuditCapacity(context.Background())
	require.NoError(t, err)
	assert.Equal(t, overbooked, res)

	_, err = svc.AuditCapacity(context.Background())
	require.Error(t, err)
}
