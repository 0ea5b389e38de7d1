package domain

import "time"

type Booking struct {
	ID         string           `json:"id"`
	UserID     string           `json:"user_id"`
	ActivityID string           `json:"activity_id"`
	CreatedAt  time.Time        `json:"created_at"`
	Activity   *ActivitySummary `json:"activity,omitempty"`
}

// ActivitySummary is the projection of an activity nested in booking responses.
type ActivitySummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Capacity    int       `json:"capacity"`
}

func SummaryOf(a *Activity) *ActivitySummary {
	return &ActivitySummary{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Date:        a.Date,
		Capacity:    a.Capacity,
	}
}
