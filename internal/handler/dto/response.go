package dto

import (
	"time"

	"github.com/kiddovents/kiddovents/internal/domain"
)

type EventResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Location    string  `json:"location"`
	ImageURL    *string `json:"image_url"`
}

type PackageResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Features    []string `json:"features"`
	Icon        string   `json:"icon"`
	IsPopular   bool     `json:"is_popular"`
}

type CreateEventResponse struct {
	Message string `json:"message"`
	EventID string `json:"event_id"`
}

type BookingResponse struct {
	Message          string   `json:"message"`
	BookingID        string   `json:"booking_id"`
	ConfirmationCode string   `json:"confirmation_code"`
	PaymentStatus    string   `json:"payment_status"`
	PaymentReference string   `json:"payment_reference,omitempty"`
	PaymentURL       string   `json:"payment_url,omitempty"`
	Amount           *float64 `json:"amount,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date.Format(time.RFC3339),
		Location:    e.Location,
		ImageURL:    e.ImageURL,
	}
}

func ToPackageResponse(p *domain.Package) PackageResponse {
	features := p.Features
	if features == nil {
		features = []string{}
	}
	return PackageResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Features:    features,
		Icon:        p.Icon,
		IsPopular:   p.IsPopular,
	}
}

func ToBookingResponse(r *domain.BookingResult) BookingResponse {
	return BookingResponse{
		Message:          bookingMessage(r.PaymentStatus),
		BookingID:        r.Booking.ID,
		ConfirmationCode: r.Booking.ConfirmationCode,
		PaymentStatus:    string(r.PaymentStatus),
		PaymentReference: r.PaymentReference,
		PaymentURL:       r.PaymentURL,
		Amount:           r.Amount,
	}
}

func bookingMessage(s domain.PaymentStatus) string {
	switch s {
	case domain.PaymentInitiated:
		return "Booking created. Approve the MoMo payment prompt on your phone."
	case domain.PaymentFailed:
		return "Booking created, but the MoMo payment could not be initiated."
	default:
		return "Booking created. Your ticket is emailed once payment is confirmed."
	}
}

func WebhookMessage(o domain.WebhookOutcome) string {
	switch o {
	case domain.WebhookConfirmed:
		return "Payment confirmed, ticket dispatched."
	case domain.WebhookDuplicate:
		return "Payment already confirmed."
	default:
		return "Payment status ignored."
	}
}
