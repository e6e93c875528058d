package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrPackageNotFound = errors.New("package not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrValidation         = errors.New("validation error")
	ErrInvalidReference   = errors.New("invalid reference")
	ErrBookingAlreadyPaid = errors.New("booking is already paid")
)

var (
	ErrGatewayNotConfigured = errors.New("payment gateway is not configured")
	ErrAuthentication       = errors.New("payment gateway authentication failed")
	ErrPaymentRequest       = errors.New("payment request failed")
)

var (
	ErrEncoding = errors.New("ticket encoding failed")
	ErrDelivery = errors.New("email delivery failed")
)

var (
	ErrUnauthorizedWebhook = errors.New("webhook signature is missing or invalid")
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrValidation, e.Reason)
	}
	return fmt.Sprintf("%s: %s %s", ErrValidation, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// PaymentRequestError keeps the provider's response body for logs.
type PaymentRequestError struct {
	StatusCode int
	Body       string
}

func (e *PaymentRequestError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", ErrPaymentRequest, e.StatusCode, e.Body)
}

func (e *PaymentRequestError) Unwrap() error { return ErrPaymentRequest }
