package dto

type CreateEventRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Location    string  `json:"location"`
	ImageURL    *string `json:"image_url"`
}

type BookRequest struct {
	EventID          string `json:"event_id"`
	PackageID        string `json:"package_id"`
	ParentName       string `json:"parent_name"`
	ParentEmail      string `json:"parent_email"`
	ParentPhone      string `json:"parent_phone"`
	ChildName        string `json:"child_name"`
	AgeRange         string `json:"age_range"`
	EventLocation    string `json:"event_location"`
	EventDescription string `json:"event_description"`
}

// WebhookRequest accepts both the documented shape and the provider's
// native request-to-pay callback.
type WebhookRequest struct {
	Status            string `json:"status"`
	ExternalReference string `json:"external_reference"`
	PaymentReference  string `json:"payment_reference"`

	ExternalID             string `json:"externalId"`
	FinancialTransactionID string `json:"financialTransactionId"`
}

func (r WebhookRequest) Reference() string {
	if r.ExternalReference != "" {
		return r.ExternalReference
	}
	return r.ExternalID
}

func (r WebhookRequest) Payment() string {
	if r.PaymentReference != "" {
		return r.PaymentReference
	}
	return r.FinancialTransactionID
}
