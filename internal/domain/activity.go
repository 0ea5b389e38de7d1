package domain

import (
	"fmt"
	"time"
)

type Activity struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Capacity    int       `json:"capacity"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ActivityAvailability is an activity together with its live booking count.
type ActivityAvailability struct {
	Activity       Activity `json:"activity"`
	BookingCount   int      `json:"booking_count"`
	AvailableSlots int      `json:"available_slots"`
}

type CreateActivityInput struct {
	Title       string    `validate:"required,notblank,max=200"`
	Description string    `validate:"max=2000"`
	Date        time.Time `validate:"required"`
	Capacity    int       `validate:"gt=0"`
}

// UpdateActivityInput is a partial update; nil fields are left unchanged.
type UpdateActivityInput struct {
	Title       *string    `validate:"omitnil,notblank,max=200"`
	Description *string    `validate:"omitnil,max=2000"`
	Date        *time.Time `validate:"omitnil,notzero"`
	Capacity    *int       `validate:"omitnil,gt=0"`
}

func (in UpdateActivityInput) Empty() bool {
	return in.Title == nil && in.Description == nil && in.Date == nil && in.Capacity == nil
}

// Apply copies the set fields of the patch onto a.
func (in UpdateActivityInput) Apply(a *Activity) {
	if in.Title != nil {
		a.Title = *in.Title
	}
	if in.Description != nil {
		a.Description = *in.Description
	}
	if in.Date != nil {
		a.Date = *in.Date
	}
	if in.Capacity != nil {
		a.Capacity = *in.Capacity
	}
}

// AvailableSlots derives the remaining capacity of an activity.
// A negative result means the overbooking invariant was broken somewhere.
func AvailableSlots(capacity, bookingCount int) (int, error) {
	slots := capacity - bookingCount
	if slots < 0 {
		return 0, fmt.Errorf("%w: capacity %d, bookings %d", ErrCapacityInvariant, capacity, bookingCount)
	}
	return slots, nil
}

// NewActivityAvailability builds the availability view, failing on a broken invariant.
func NewActivityAvailability(a Activity, bookingCount int) (*ActivityAvailability, error) {
	slots, err := AvailableSlots(a.Capacity, bookingCount)
	if err != nil {
		return nil, fmt.Errorf("activity %s: %w", a.ID, err)
	}
	return &ActivityAvailability{
		Activity:       a,
		BookingCount:   bookingCount,
		AvailableSlots: slots,
	}, nil
}

// ActivityCount is an activity row paired with its raw booking count, as read from storage.
type ActivityCount struct {
	Activity     Activity
	BookingCount int
}
