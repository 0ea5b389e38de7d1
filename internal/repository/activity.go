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

type ActivityRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewActivityRepo(db *dbpg.DB) *ActivityRepository {
	return &ActivityRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *ActivityRepository) Create(ctx context.Context, a *domain.Activity) error {
	query := `INSERT INTO activities (id, title, description, date, capacity, created_at, updated_at)
			  VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		a.ID, a.Title, a.Description, a.Date, a.Capacity, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}

	return nil
}

func (r *ActivityRepository) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	query := `SELECT id, title, COALESCE(description, ''), date, capacity, created_at, updated_at
			  FROM activities
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get activity: %w", err)
	}

	var a domain.Activity
	if err = row.Scan(&a.ID, &a.Title, &a.Description, &a.Date, &a.Capacity, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, fmt.Errorf("scan activity: %w", err)
	}

	return &a, nil
}

// GetWithCount returns the activity and its current number of bookings.
func (r *ActivityRepository) GetWithCount(ctx context.Context, id string) (*domain.Activity, int, error) {
	query := `
		SELECT a.id, a.title, COALESCE(a.description, ''), a.date, a.capacity,
		       a.created_at, a.updated_at, COUNT(b.id)
		FROM activities a
		LEFT JOIN bookings b ON b.activity_id = a.id
		WHERE a.id = $1
		GROUP BY a.id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, 0, fmt.Errorf("get activity with count: %w", err)
	}

	var a domain.Activity
	var count int
	if err = row.Scan(
		&a.ID, &a.Title, &a.Description, &a.Date, &a.Capacity,
		&a.CreatedAt, &a.UpdatedAt, &count,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, domain.ErrActivityNotFound
		}
		return nil, 0, fmt.Errorf("scan activity with count: %w", err)
	}

	return &a, count, nil
}

// ListWithCounts returns every activity ordered by date with one grouped count per activity.
func (r *ActivityRepository) ListWithCounts(ctx context.Context) ([]domain.ActivityCount, error) {
	query := `
		SELECT a.id, a.title, COALESCE(a.description, ''), a.date, a.capacity,
		       a.created_at, a.updated_at, COUNT(b.id)
		FROM activities a
		LEFT JOIN bookings b ON b.activity_id = a.id
		GROUP BY a.id
		ORDER BY a.date ASC`

	return r.listCounts(ctx, query)
}

// ListOverbooked returns activities holding more bookings than seats.
func (r *ActivityRepository) ListOverbooked(ctx context.Context) ([]domain.ActivityCount, error) {
	query := `
		SELECT a.id, a.title, COALESCE(a.description, ''), a.date, a.capacity,
		       a.created_at, a.updated_at, COUNT(b.id)
		FROM activities a
		JOIN bookings b ON b.activity_id = a.id
		GROUP BY a.id
		HAVING COUNT(b.id) > a.capacity
		ORDER BY a.date ASC`

	return r.listCounts(ctx, query)
}

func (r *ActivityRepository) listCounts(ctx context.Context, query string) ([]domain.ActivityCount, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var res []domain.ActivityCount
	for rows.Next() {
		var ac domain.ActivityCount
		a := &ac.Activity
		if err = rows.Scan(
			&a.ID, &a.Title, &a.Description, &a.Date, &a.Capacity,
			&a.CreatedAt, &a.UpdatedAt, &ac.BookingCount,
		); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		res = append(res, ac)
	}

	return res, rows.Err()
}

// Update applies the patch under the same row lock bookers take, so a capacity
// decrease cannot race with a concurrent booking.
func (r *ActivityRepository) Update(ctx context.Context, id string, in domain.UpdateActivityInput) (*domain.Activity, int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT id, title, COALESCE(description, ''), date, capacity, created_at, updated_at
				  FROM activities
				  WHERE id = $1
				  FOR UPDATE`
	var a domain.Activity
	if err = tx.QueryRowContext(ctx, lockQuery, id).Scan(
		&a.ID, &a.Title, &a.Description, &a.Date, &a.Capacity, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, domain.ErrActivityNotFound
		}
		return nil, 0, fmt.Errorf("lock activity: %w", err)
	}

	var count int
	countQuery := `SELECT COUNT(*) FROM bookings WHERE activity_id = $1`
	if err = tx.QueryRowContext(ctx, countQuery, id).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("count bookings: %w", err)
	}

	in.Apply(&a)
	if a.Capacity < count {
		return nil, 0, domain.ErrCapacityBelowBookings
	}
	a.UpdatedAt = time.Now().UTC()

	updateQuery := `UPDATE activities
					SET title = $2, description = NULLIF($3, ''), date = $4, capacity = $5, updated_at = $6
					WHERE id = $1`
	if _, err = tx.ExecContext(
		ctx, updateQuery,
		a.ID, a.Title, a.Description, a.Date, a.Capacity, a.UpdatedAt,
	); err != nil {
		return nil, 0, fmt.Errorf("update activity: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, 0, fmt.Errorf("commit: %w", err)
	}

	return &a, count, nil
}

// Delete removes the activity; its bookings go with it via ON DELETE CASCADE.
func (r *ActivityRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM activities WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("activity rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrActivityNotFound
	}

	return nil
}

func (r *ActivityRepository) Count(ctx context.Context) (int, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT COUNT(*) FROM activities`)
	if err != nil {
		return 0, fmt.Errorf("count activities: %w", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan activity count: %w", err)
	}

	return n, nil
}
