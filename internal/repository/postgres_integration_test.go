package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Adarshcode-012/ActivityHub/internal/domain"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

func setupPostgres(t *testing.T) *dbpg.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("integration test skipped in -short mode")
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	if err = pool.Client.Ping(); err != nil {
		t.Skipf("docker unavailable: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=activityhub_test",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("host=localhost port=%s user=postgres password=postgres dbname=activityhub_test sslmode=disable",
		resource.GetPort("5432/tcp"))

	pool.MaxWait = time.Minute
	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	raw, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(raw, migrationsDir))
	require.NoError(t, raw.Close())

	db, err := dbpg.New(dsn, nil, &dbpg.Options{MaxOpenConns: 20, MaxIdleConns: 5})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Master.Close() })

	return db
}

func newUser(t *testing.T, repo *UserRepository, email string) *domain.User {
	t.Helper()
	now := time.Now().UTC()
	u := &domain.User{
		ID:           uuid.NewString(),
		Name:         "Test " + email,
		Email:        email,
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func newActivity(t *testing.T, repo *ActivityRepository, capacity int) *domain.Activity {
	t.Helper()
	now := time.Now().UTC()
	a := &domain.Activity{
		ID:        uuid.NewString(),
		Title:     "Pottery Class",
		Date:      now.Add(72 * time.Hour).Truncate(time.Second),
		Capacity:  capacity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.Create(context.Background(), a))
	return a
}

func book(repo *BookingRepository, userID, activityID string) (int, error) {
	return repo.Create(context.Background(), &domain.Booking{
		ID:         uuid.NewString(),
		UserID:     userID,
		ActivityID: activityID,
		CreatedAt:  time.Now().UTC(),
	})
}

func TestRepositoryIntegration(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	users := NewUserRepo(db)
	activities := NewActivityRepo(db)
	bookings := NewBookingRepo(db)

	t.Run("users", func(t *testing.T) {
		u := newUser(t, users, "Alice@Example.com")

		got, err := users.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)

		err = users.Create(ctx, &domain.User{
			ID: uuid.NewString(), Name: "dup", Email: "ALICE@example.com",
			PasswordHash: "x", Role: domain.RoleUser, CreatedAt: time.Now(), UpdatedAt: time.Now(),
		})
		assert.ErrorIs(t, err, domain.ErrEmailTaken)

		_, err = users.GetByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("booking outcomes", func(t *testing.T) {
		a := newActivity(t, activities, 2)
		u1 := newUser(t, users, "b1@example.com")
		u2 := newUser(t, users, "b2@example.com")
		u3 := newUser(t, users, "b3@example.com")

		remaining, err := book(bookings, u1.ID, a.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, remaining)

		_, err = book(bookings, u1.ID, a.ID)
		assert.ErrorIs(t, err, domain.ErrAlreadyBooked)

		remaining, err = book(bookings, u2.ID, a.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, remaining)

		_, err = book(bookings, u3.ID, a.ID)
		assert.ErrorIs(t, err, domain.ErrFullyBooked)

		// a full activity still reports the duplicate first
		_, err = book(bookings, u2.ID, a.ID)
		assert.ErrorIs(t, err, domain.ErrAlreadyBooked)

		_, err = book(bookings, u1.ID, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrActivityNotFound)

		_, err = book(bookings, uuid.NewString(), newActivity(t, activities, 1).ID)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)

		_, count, err := activities.GetWithCount(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		list, err := bookings.ListByUser(ctx, u1.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.NotNil(t, list[0].Activity)
		assert.Equal(t, a.Title, list[0].Activity.Title)
		assert.Equal(t, 2, list[0].Activity.Capacity)
	})

	t.Run("cancelled request does not book", func(t *testing.T) {
		a := newActivity(t, activities, 1)
		u := newUser(t, users, "cancelled@example.com")

		cctx, cancel := context.WithCancel(ctx)
		cancel()

		start := time.Now()
		_, err := bookings.Create(cctx, &domain.Booking{
			ID: uuid.NewString(), UserID: u.ID, ActivityID: a.ID, CreatedAt: time.Now().UTC(),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Less(t, time.Since(start), time.Second)

		_, count, err := activities.GetWithCount(ctx, a.ID)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("concurrent bookers never exceed capacity", func(t *testing.T) {
		const capacity, bookers = 3, 20
		a := newActivity(t, activities, capacity)

		ids := make([]string, bookers)
		for i := range ids {
			ids[i] = newUser(t, users, fmt.Sprintf("c%d@example.com", i)).ID
		}

		var (
			wg              sync.WaitGroup
			mu              sync.Mutex
			ok, full, other int
		)
		start := make(chan struct{})
		for _, id := range ids {
			wg.Add(1)
			go func(userID string) {
				defer wg.Done()
				<-start
				_, err := book(bookings, userID, a.ID)
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					ok++
				case errors.Is(err, domain.ErrFullyBooked):
					full++
				default:
					other++
				}
			}(id)
		}
		close(start)
		wg.Wait()

		assert.Equal(t, capacity, ok)
		assert.Equal(t, bookers-capacity, full)
		assert.Zero(t, other)

		_, count, err := activities.GetWithCount(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, capacity, count)
	})

	t.Run("same user racing with itself books once", func(t *testing.T) {
		a := newActivity(t, activities, 5)
		u := newUser(t, users, "racer@example.com")

		var wg sync.WaitGroup
		errs := make(chan error, 10)
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := book(bookings, u.ID, a.ID)
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		var ok, dup int
		for err := range errs {
			switch {
			case err == nil:
				ok++
			case errors.Is(err, domain.ErrAlreadyBooked):
				dup++
			}
		}
		assert.Equal(t, 1, ok)
		assert.Equal(t, 9, dup)
	})

	t.Run("capacity update respects bookings", func(t *testing.T) {
		a := newActivity(t, activities, 3)
		_, err := book(bookings, newUser(t, users, "u1@example.com").ID, a.ID)
		require.NoError(t, err)
		_, err = book(bookings, newUser(t, users, "u2@example.com").ID, a.ID)
		require.NoError(t, err)

		one := 1
		_, _, err = activities.Update(ctx, a.ID, domain.UpdateActivityInput{Capacity: &one})
		assert.ErrorIs(t, err, domain.ErrCapacityBelowBookings)

		two := 2
		title := "Advanced Pottery"
		updated, count, err := activities.Update(ctx, a.ID, domain.UpdateActivityInput{Capacity: &two, Title: &title})
		require.NoError(t, err)
		assert.Equal(t, 2, updated.Capacity)
		assert.Equal(t, "Advanced Pottery", updated.Title)
		assert.Equal(t, 2, count)

		_, err = book(bookings, newUser(t, users, "u3@example.com").ID, a.ID)
		assert.ErrorIs(t, err, domain.ErrFullyBooked)

		_, _, err = activities.Update(ctx, uuid.NewString(), domain.UpdateActivityInput{Capacity: &two})
		assert.ErrorIs(t, err, domain.ErrActivityNotFound)
	})

	t.Run("delete cascades bookings", func(t *testing.T) {
		a := newActivity(t, activities, 4)
		u := newUser(t, users, "cascade@example.com")
		_, err := book(bookings, u.ID, a.ID)
		require.NoError(t, err)

		require.NoError(t, activities.Delete(ctx, a.ID))
		assert.ErrorIs(t, activities.Delete(ctx, a.ID), domain.ErrActivityNotFound)

		list, err := bookings.ListByUser(ctx, u.ID)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("listing and audit", func(t *testing.T) {
		rows, err := activities.ListWithCounts(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, rows)
		for i := 1; i < len(rows); i++ {
			assert.False(t, rows[i].Activity.Date.Before(rows[i-1].Activity.Date))
		}

		overbooked, err := activities.ListOverbooked(ctx)
		require.NoError(t, err)
		assert.Empty(t, overbooked)

		n, err := activities.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, len(rows), n)
	})
}
