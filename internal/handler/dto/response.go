package dto

import (
	"time"

	"github.com/Adarshcode-012/ActivityHub/internal/domain"
)

type ActivityResponse struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Date           string `json:"date"`
	Capacity       int    `json:"capacity"`
	AvailableSlots int    `json:"availableSlots"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

type ActivitySummaryResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Capacity    *int   `json:"capacity,omitempty"`
}

type BookingResponse struct {
	ID         string                   `json:"id"`
	UserID     string                   `json:"userId"`
	ActivityID string                   `json:"activityId"`
	CreatedAt  string                   `json:"createdAt"`
	Activity   *ActivitySummaryResponse `json:"activity,omitempty"`
}

type CreateBookingResponse struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToActivityResponse(a *domain.ActivityAvailability) ActivityResponse {
	return ActivityResponse{
		ID:             a.Activity.ID,
		Title:          a.Activity.Title,
		Description:    a.Activity.Description,
		Date:           a.Activity.Date.UTC().Format(time.RFC3339),
		Capacity:       a.Activity.Capacity,
		AvailableSlots: a.AvailableSlots,
		CreatedAt:      a.Activity.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      a.Activity.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToActivityResponses(items []*domain.ActivityAvailability) []ActivityResponse {
	resp := make([]ActivityResponse, 0, len(items))
	for _, a := range items {
		resp = append(resp, ToActivityResponse(a))
	}
	return resp
}

// ToBookingResponse renders a booking. withCapacity controls whether the
// nested activity exposes its capacity.
func ToBookingResponse(b *domain.Booking, withCapacity bool) BookingResponse {
	resp := BookingResponse{
		ID:         b.ID,
		UserID:     b.UserID,
		ActivityID: b.ActivityID,
		CreatedAt:  b.CreatedAt.UTC().Format(time.RFC3339),
	}

	if b.Activity != nil {
		summary := &ActivitySummaryResponse{
			ID:          b.Activity.ID,
			Title:       b.Activity.Title,
			Description: b.Activity.Description,
			Date:        b.Activity.Date.UTC().Format(time.RFC3339),
		}
		if withCapacity {
			capacity := b.Activity.Capacity
			summary.Capacity = &capacity
		}
		resp.Activity = summary
	}

	return resp
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
	}
}
