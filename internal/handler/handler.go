package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/kiddovents/kiddovents/internal/domain"
	"github.com/kiddovents/kiddovents/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04:05", "2006-01-02"}

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
}

type PackageSvc interface {
	List(ctx context.Context) ([]*domain.Package, error)
}

type BookingSvc interface {
	CreateBooking(ctx context.Context, in domain.CreateBookingInput) (*domain.BookingResult, error)
	HandlePaymentWebhook(ctx context.Context, p domain.WebhookPayload) (domain.WebhookOutcome, error)
}

type Handler struct {
	eventService   EventSvc
	packageService PackageSvc
	bookingService BookingSvc
	logger         logger.Logger
}

func NewHandler(eventService EventSvc, packageService PackageSvc, bookingService BookingSvc, logger logger.Logger) *Handler {
	return &Handler{
		eventService:   eventService,
		packageService: packageService,
		bookingService: bookingService,
		logger:         logger,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid JSON body"})
		return
	}

	input := domain.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
	}
	if strings.TrimSpace(req.Date) != "" {
		date, ok := parseDate(req.Date)
		if !ok {
			h.handleError(c, &domain.ValidationError{Field: "date", Reason: "must be RFC3339 or YYYY-MM-DD"})
			return
		}
		input.Date = date
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateEventResponse{
		Message: "Event created successfully!",
		EventID: event.ID,
	})
}

// ListEvents never fails: clients always get an array.
func (h *Handler) ListEvents(c *ginext.Context) {
	resp := make([]dto.EventResponse, 0)

	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		c.Set("error", err.Error())
		h.logger.Error("list events failed", logger.String("error", err.Error()))
		c.JSON(http.StatusOK, resp)
		return
	}

	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

// Packages

func (h *Handler) ListPackages(c *ginext.Context) {
	packages, err := h.packageService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PackageResponse, 0, len(packages))
	for _, p := range packages {
		resp = append(resp, dto.ToPackageResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

// Bookings

func (h *Handler) Book(c *ginext.Context) {
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid JSON body"})
		return
	}

	result, err := h.bookingService.CreateBooking(c.Request.Context(), domain.CreateBookingInput{
		EventID:          req.EventID,
		PackageID:        req.PackageID,
		ParentName:       req.ParentName,
		ParentEmail:      req.ParentEmail,
		ParentPhone:      req.ParentPhone,
		ChildName:        req.ChildName,
		AgeRange:         req.AgeRange,
		EventLocation:    req.EventLocation,
		EventDescription: req.EventDescription,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(result))
}

func (h *Handler) PaymentWebhook(c *ginext.Context) {
	var req dto.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid JSON body"})
		return
	}

	outcome, err := h.bookingService.HandlePaymentWebhook(c.Request.Context(), domain.WebhookPayload{
		Status:            req.Status,
		ExternalReference: req.Reference(),
		PaymentReference:  req.Payment(),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.WebhookMessage(outcome)})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: verr.Error(), Field: verr.Field})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidReference):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorizedWebhook):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrUnauthorizedWebhook.Error()})

	case errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: domain.ErrBookingNotFound.Error()})

	case errors.Is(err, domain.ErrDelivery):
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "ticket email could not be delivered"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
