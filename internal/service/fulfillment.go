package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strconv"
	"time"

	"github.com/kiddovents/kiddovents/internal/domain"
	"github.com/kiddovents/kiddovents/internal/metrics"
	"github.com/kiddovents/kiddovents/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const defaultFulfillmentTimeout = 30 * time.Second

var errBookingNotPaid = errors.New("booking is not paid")

var ticketTemplate = template.Must(template.New("ticket").Parse(`<h2>Thank you for booking {{.Title}}!</h2>
<p>Child: {{.ChildName}} ({{.AgeRange}})<br>
{{if .Date}}Event Date: {{.Date}}<br>{{end}}Location: {{.Location}}{{if .Price}}<br>
Amount paid: {{.Price}}{{end}}</p>
<p><b>Confirmation Code:</b> {{.Code}}</p>
<p>Scan the attached QR code at the event gate.</p>`))

type ticketView struct {
	Title     string
	ChildName string
	AgeRange  string
	Date      string
	Location  string
	Price     string
	Code      string
}

// FulfillmentService turns a paid booking into an emailed QR ticket.
type FulfillmentService struct {
	bookingRepo ports.BookingRepo
	eventRepo   ports.EventRepo
	packageRepo ports.PackageRepo
	encoder     ports.TicketEncoder
	mailer      ports.Mailer
	timeout     time.Duration
	logger      logger.Logger
}

func NewFulfillmentService(
	bookingRepo ports.BookingRepo,
	eventRepo ports.EventRepo,
	packageRepo ports.PackageRepo,
	encoder ports.TicketEncoder,
	mailer ports.Mailer,
	timeout time.Duration,
	logger logger.Logger,
) *FulfillmentService {
	if timeout <= 0 {
		timeout = defaultFulfillmentTimeout
	}
	return &FulfillmentService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		packageRepo: packageRepo,
		encoder:     encoder,
		mailer:      mailer,
		timeout:     timeout,
		logger:      logger,
	}
}

// Dispatch fulfills inline. The work is detached from the caller's
// cancellation so a dropped callback connection does not cut the email short.
func (s *FulfillmentService) Dispatch(ctx context.Context, b *domain.Booking) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	if err := s.fulfill(ctx, b); err != nil {
		metrics.Ticket("failed")
		s.logger.Error("ticket fulfillment failed",
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
		return err
	}

	metrics.Ticket("sent")
	s.logger.Info("ticket sent",
		logger.String("booking_id", b.ID),
		logger.String("confirmation_code", b.ConfirmationCode),
	)
	return nil
}

// FulfillByCode is the broker entry point: the message carries only the code.
func (s *FulfillmentService) FulfillByCode(ctx context.Context, code string) error {
	b, err := s.bookingRepo.GetByConfirmationCode(ctx, code)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}
	if !b.Paid {
		return fmt.Errorf("%w: %s", errBookingNotPaid, code)
	}

	return s.Dispatch(ctx, b)
}

func (s *FulfillmentService) fulfill(ctx context.Context, b *domain.Booking) error {
	details, err := s.ticketDetails(ctx, b)
	if err != nil {
		return err
	}

	png, err := s.encoder.Encode(b.ConfirmationCode)
	if err != nil {
		return fmt.Errorf("encode ticket: %w", err)
	}

	email, err := composeTicketEmail(b, details, png)
	if err != nil {
		return err
	}

	if err = s.mailer.Send(ctx, email); err != nil {
		if !errors.Is(err, domain.ErrDelivery) {
			err = fmt.Errorf("%w: %w", domain.ErrDelivery, err)
		}
		return fmt.Errorf("send ticket: %w", err)
	}

	return nil
}

func (s *FulfillmentService) ticketDetails(ctx context.Context, b *domain.Booking) (domain.TicketDetails, error) {
	if b.Target.IsPackage() {
		p, err := s.packageRepo.GetByID(ctx, b.Target.ID)
		if err != nil {
			return domain.TicketDetails{}, fmt.Errorf("get package: %w", err)
		}
		price := p.Price
		return domain.TicketDetails{Title: p.Name, Location: b.EventLocation, Price: &price}, nil
	}

	e, err := s.eventRepo.GetByID(ctx, b.Target.ID)
	if err != nil {
		return domain.TicketDetails{}, fmt.Errorf("get event: %w", err)
	}
	date := e.Date
	return domain.TicketDetails{Title: e.Title, Date: &date, Location: e.Location}, nil
}

func composeTicketEmail(b *domain.Booking, d domain.TicketDetails, png []byte) (domain.Email, error) {
	view := ticketView{
		Title:     d.Title,
		ChildName: b.ChildName,
		AgeRange:  b.AgeRange,
		Location:  d.Location,
		Code:      b.ConfirmationCode,
	}
	if d.Date != nil {
		view.Date = d.Date.Format("Monday, 02 January 2006 15:04")
	}
	if d.Price != nil {
		view.Price = strconv.FormatFloat(*d.Price, 'f', 2, 64)
	}

	var body bytes.Buffer
	if err := ticketTemplate.Execute(&body, view); err != nil {
		return domain.Email{}, fmt.Errorf("render ticket email: %w", err)
	}

	return domain.Email{
		To:      b.ParentEmail,
		Subject: fmt.Sprintf("Your Ticket for %s", d.Title),
		HTML:    body.String(),
		Attachments: []domain.Attachment{{
			Filename:    domain.TicketFilename,
			ContentType: "image/png",
			Content:     png,
		}},
	}, nil
}
