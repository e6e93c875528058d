package domain

import "strings"

type PaymentRequest struct {
	Amount            float64
	PayerPhone        string
	ExternalReference string
	PayerMessage      string
	PayeeNote         string
	CallbackURL       string
}

// PaymentInitiation is the gateway's answer to a request-to-pay. PaymentURL is
// empty for push-to-phone providers.
type PaymentInitiation struct {
	ReferenceID string
	PaymentURL  string
}

type WebhookPayload struct {
	Status            string
	ExternalReference string
	PaymentReference  string
}

func (p WebhookPayload) Succeeded() bool {
	switch strings.ToUpper(strings.TrimSpace(p.Status)) {
	case "SUCCESSFUL", "SUCCESS":
		return true
	default:
		return false
	}
}

type WebhookOutcome string

const (
	WebhookIgnored   WebhookOutcome = "ignored"
	WebhookConfirmed WebhookOutcome = "confirmed"
	WebhookDuplicate WebhookOutcome = "duplicate"
)
