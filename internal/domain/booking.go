package domain

import "time"

type TargetKind string

const (
	TargetEvent   TargetKind = "event"
	TargetPackage TargetKind = "package"
)

// BookingTarget references exactly one event or one package.
type BookingTarget struct {
	Kind TargetKind `json:"kind"`
	ID   string     `json:"id"`
}

func EventTarget(id string) BookingTarget {
	return BookingTarget{Kind: TargetEvent, ID: id}
}

func PackageTarget(id string) BookingTarget {
	return BookingTarget{Kind: TargetPackage, ID: id}
}

func (t BookingTarget) IsPackage() bool { return t.Kind == TargetPackage }

type Booking struct {
	ID               string        `json:"id"`
	Target           BookingTarget `json:"target"`
	ParentName       *string       `json:"parent_name,omitempty"`
	ParentEmail      string        `json:"parent_email"`
	ParentPhone      *string       `json:"parent_phone,omitempty"`
	ChildName        string        `json:"child_name"`
	AgeRange         string        `json:"age_range"`
	EventLocation    string        `json:"event_location"`
	EventDescription *string       `json:"event_description,omitempty"`
	ConfirmationCode string        `json:"confirmation_code"`
	Paid             bool          `json:"paid"`
	PaymentReference *string       `json:"payment_reference,omitempty"`
	PaidAt           *time.Time    `json:"paid_at,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
}

// CreateBookingInput carries the guardian request. Field names in the
// validate errors are the JSON names clients send.
type CreateBookingInput struct {
	EventID          string `json:"event_id"          validate:"required_without=PackageID,excluded_with=PackageID,omitempty,uuid"`
	PackageID        string `json:"package_id"        validate:"required_without=EventID,excluded_with=EventID,omitempty,uuid"`
	ParentName       string `json:"parent_name"       validate:"max=255"`
	ParentEmail      string `json:"parent_email"      validate:"required,email"`
	ParentPhone      string `json:"parent_phone"      validate:"required_with=PackageID,max=32"`
	ChildName        string `json:"child_name"        validate:"required,max=255"`
	AgeRange         string `json:"age_range"         validate:"required,max=64"`
	EventLocation    string `json:"event_location"    validate:"required,max=255"`
	EventDescription string `json:"event_description"`
}

func (in CreateBookingInput) Target() BookingTarget {
	if in.PackageID != "" {
		return PackageTarget(in.PackageID)
	}
	return EventTarget(in.EventID)
}

type PaymentStatus string

const (
	PaymentInitiated    PaymentStatus = "initiated"
	PaymentFailed       PaymentStatus = "failed"
	PaymentNotInitiated PaymentStatus = "not_initiated"
)

// BookingResult is returned to the guardian. A failed payment initiation
// does not undo the booking.
type BookingResult struct {
	Booking          *Booking
	PaymentStatus    PaymentStatus
	PaymentReference string
	PaymentURL       string
	Amount           *float64
}
