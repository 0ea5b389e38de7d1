package dto

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateActivityRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required"`
	Capacity    int    `json:"capacity" binding:"required,gt=0"`
}

// UpdateActivityRequest carries a partial update; absent fields stay nil.
type UpdateActivityRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Capacity    *int    `json:"capacity"`
}

type CreateBookingRequest struct {
	ActivityID string `json:"activityId" binding:"required,uuid"`
}

type ActivityURI struct {
	ID string `uri:"id" binding:"required,uuid"`
}
