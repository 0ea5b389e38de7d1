package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Adarshcode-012/ActivityHub/internal/domain"
	"github.com/Adarshcode-012/ActivityHub/internal/handler/dto"
	"github.com/Adarshcode-012/ActivityHub/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type ActivitySvc interface {
	Create(ctx context.Context, input domain.CreateActivityInput) (*domain.ActivityAvailability, error)
	Get(ctx context.Context, id string) (*domain.ActivityAvailability, error)
	List(ctx context.Context) ([]*domain.ActivityAvailability, error)
	Update(ctx context.Context, id string, input domain.UpdateActivityInput) (*domain.ActivityAvailability, error)
	Delete(ctx context.Context, id string) error
}

type BookingSvc interface {
	Book(ctx context.Context, userID, activityID string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
}

type AuthSvc interface {
	Login(ctx context.Context, input domain.LoginInput) (string, *domain.User, error)
}

type UserSvc interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type Handler struct {
	activityService ActivitySvc
	bookingService  BookingSvc
	authService     AuthSvc
	userService     UserSvc
}

func NewHandler(activityService ActivitySvc, bookingService BookingSvc, authService AuthSvc, userService UserSvc) *Handler {
	return &Handler{
		activityService: activityService,
		bookingService:  bookingService,
		authService:     authService,
		userService:     userService,
	}
}

// Auth

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), domain.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    dto.ToUserResponse(user),
	})
}

func (h *Handler) Me(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthenticated)
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), identity.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Activities

func (h *Handler) ListActivities(c *ginext.Context) {
	activities, err := h.activityService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityResponses(activities))
}

func (h *Handler) GetActivity(c *ginext.Context) {
	id, ok := h.activityID(c)
	if !ok {
		return
	}

	activity, err := h.activityService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityResponse(activity))
}

func (h *Handler) CreateActivity(c *ginext.Context) {
	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	activity, err := h.activityService.Create(c.Request.Context(), domain.CreateActivityInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Capacity:    req.Capacity,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToActivityResponse(activity))
}

func (h *Handler) UpdateActivity(c *ginext.Context) {
	id, ok := h.activityID(c)
	if !ok {
		return
	}

	var req dto.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	input := domain.UpdateActivityInput{
		Title:       req.Title,
		Description: req.Description,
		Capacity:    req.Capacity,
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			h.badRequest(c, err)
			return
		}
		input.Date = &date
	}

	activity, err := h.activityService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityResponse(activity))
}

func (h *Handler) DeleteActivity(c *ginext.Context) {
	id, ok := h.activityID(c)
	if !ok {
		return
	}

	if err := h.activityService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Activity deleted successfully"})
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthenticated)
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	booking, err := h.bookingService.Book(c.Request.Context(), identity.UserID, req.ActivityID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateBookingResponse{
		Message: "Booking created successfully",
		Booking: dto.ToBookingResponse(booking, false),
	})
}

func (h *Handler) MyBookings(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthenticated)
		return
	}

	bookings, err := h.bookingService.ListByUser(c.Request.Context(), identity.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b, true))
	}

	c.JSON(http.StatusOK, resp)
}

// activityID accepts only the canonical 8-4-4-4-12 form Postgres stores.
func (h *Handler) activityID(c *ginext.Context) (string, bool) {
	var uri dto.ActivityURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.Set("error", err.Error())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid activity id"})
		return "", false
	}
	return uri.ID, true
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date format, expected RFC3339", domain.ErrValidation)
	}
	return t.UTC(), nil
}

func (h *Handler) badRequest(c *ginext.Context, err error) {
	c.Set("error", err.Error())
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: rootMessage(err, domain.ErrUnauthenticated, domain.ErrInvalidCredentials)})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: domain.ErrForbidden.Error()})

	case errors.Is(err, domain.ErrActivityNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: rootMessage(err, domain.ErrActivityNotFound, domain.ErrUserNotFound)})

	case errors.Is(err, domain.ErrAlreadyBooked),
		errors.Is(err, domain.ErrFullyBooked),
		errors.Is(err, domain.ErrCapacityBelowBookings),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: rootMessage(err,
			domain.ErrAlreadyBooked, domain.ErrFullyBooked, domain.ErrCapacityBelowBookings, domain.ErrEmailTaken)})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

// rootMessage returns the message of the first matching sentinel so wrapped
// context such as ids stays out of client responses.
func rootMessage(err error, sentinels ...error) string {
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return err.Error()
}
