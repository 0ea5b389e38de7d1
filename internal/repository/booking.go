package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Adarshcode-012/ActivityHub/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
	// txStrategy replays the booking transaction after a serialization failure or deadlock.
	txStrategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
		txStrategy: retry.Strategy{
			Attempts: 3,
			Delay:    20 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create records the booking and returns the number of slots left afterwards.
// The activity row is locked for the whole transaction, so concurrent bookers of
// the same activity are serialized by Postgres; the insert itself is conditional
// on the live count and the (user_id, activity_id) unique key backs up the
// duplicate check.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) (int, error) {
	var (
		remaining int
		outcome   error
	)

	err := retry.DoContext(ctx, r.txStrategy, func() error {
		n, err := r.create(ctx, b)
		if err != nil && isRetryable(err) {
			return err
		}
		remaining, outcome = n, err
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("create booking: %w", err)
	}

	return remaining, outcome
}

func (r *BookingRepository) create(ctx context.Context, b *domain.Booking) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var capacity int
	lockQuery := `SELECT capacity FROM activities WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, b.ActivityID).Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrActivityNotFound
		}
		return 0, fmt.Errorf("lock activity: %w", err)
	}

	var total, own int
	countQuery := `SELECT COUNT(*), COUNT(*) FILTER (WHERE user_id = $2)
				   FROM bookings
				   WHERE activity_id = $1`
	if err = tx.QueryRowContext(ctx, countQuery, b.ActivityID, b.UserID).Scan(&total, &own); err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	if own > 0 {
		return 0, domain.ErrAlreadyBooked
	}

	insertQuery := `INSERT INTO bookings (id, user_id, activity_id, created_at)
					SELECT $1, $2, a.id, $4
					FROM activities a
					WHERE a.id = $3
					  AND (SELECT COUNT(*) FROM bookings WHERE activity_id = a.id) < a.capacity`
	res, err := tx.ExecContext(ctx, insertQuery, b.ID, b.UserID, b.ActivityID, b.CreatedAt)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return 0, domain.ErrAlreadyBooked
		case isForeignKeyViolation(err):
			return 0, domain.ErrUserNotFound
		}
		return 0, fmt.Errorf("insert booking: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("booking rows affected: %w", err)
	}
	if inserted == 0 {
		return 0, domain.ErrFullyBooked
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	return capacity - total - 1, nil
}

// ListByUser returns the user's bookings newest first, each with its activity.
func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT b.id, b.user_id, b.activity_id, b.created_at,
					 a.id, a.title, COALESCE(a.description, ''), a.date, a.capacity
			  FROM bookings b
			  JOIN activities a ON a.id = b.activity_id
			  WHERE b.user_id = $1
			  ORDER BY b.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		var a domain.ActivitySummary
		if err = rows.Scan(
			&b.ID, &b.UserID, &b.ActivityID, &b.CreatedAt,
			&a.ID, &a.Title, &a.Description, &a.Date, &a.Capacity,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		b.Activity = &a
		res = append(res, &b)
	}

	return res, rows.Err()
}
