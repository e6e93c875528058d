package domain

import "time"

const TicketFilename = "ticket-qr.png"

type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

type Email struct {
	To          string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// TicketDetails is what the ticket email shows about the booked target.
type TicketDetails struct {
	Title    string
	Date     *time.Time
	Location string
	Price    *float64
}
