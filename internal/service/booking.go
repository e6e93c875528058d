package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/kiddovents/kiddovents/internal/domain"
	"github.com/kiddovents/kiddovents/internal/metrics"
	"github.com/kiddovents/kiddovents/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	eventRepo   ports.EventRepo
	packageRepo ports.PackageRepo
	gateway     ports.PaymentGateway
	dispatcher  ports.TicketDispatcher
	notifier    ports.BookingNotifier
	callbackURL string
	validate    *validator.Validate
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	eventRepo ports.EventRepo,
	packageRepo ports.PackageRepo,
	gateway ports.PaymentGateway,
	dispatcher ports.TicketDispatcher,
	notifier ports.BookingNotifier,
	callbackURL string,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		packageRepo: packageRepo,
		gateway:     gateway,
		dispatcher:  dispatcher,
		notifier:    notifier,
		callbackURL: callbackURL,
		validate:    newValidator(),
		logger:      logger,
	}
}

// CreateBooking persists an unpaid booking and, for packages, asks the gateway
// to debit the guardian's phone. A gateway failure is reported in the result,
// the booking stays.
func (s *BookingService) CreateBooking(ctx context.Context, in domain.CreateBookingInput) (*domain.BookingResult, error) {
	in = normalizeBookingInput(in)
	if err := validateStruct(s.validate, in); err != nil {
		return nil, err
	}

	target := in.Target()
	var (
		pkg   *domain.Package
		title string
	)
	if target.IsPackage() {
		p, err := s.packageRepo.GetByID(ctx, target.ID)
		if err != nil {
			return nil, resolveErr(err, domain.ErrPackageNotFound, "package", target.ID)
		}
		pkg, title = p, p.Name
	} else {
		e, err := s.eventRepo.GetByID(ctx, target.ID)
		if err != nil {
			return nil, resolveErr(err, domain.ErrEventNotFound, "event", target.ID)
		}
		title = e.Title
	}

	booking := &domain.Booking{
		ID:               uuid.New().String(),
		Target:           target,
		ParentName:       optional(in.ParentName),
		ParentEmail:      in.ParentEmail,
		ParentPhone:      optional(in.ParentPhone),
		ChildName:        in.ChildName,
		AgeRange:         in.AgeRange,
		EventLocation:    in.EventLocation,
		EventDescription: optional(in.EventDescription),
		ConfirmationCode: uuid.New().String(),
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	metrics.BookingCreated(string(target.Kind))
	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("target", string(target.Kind)),
		logger.String("target_id", target.ID),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking, title)

	result := &domain.BookingResult{
		Booking:       booking,
		PaymentStatus: domain.PaymentNotInitiated,
	}
	if pkg != nil {
		s.initiatePayment(ctx, booking, pkg, result)
	}

	return result, nil
}

func (s *BookingService) initiatePayment(
	ctx context.Context,
	b *domain.Booking,
	pkg *domain.Package,
	result *domain.BookingResult,
) {
	amount := pkg.Price
	result.Amount = &amount

	initiation, err := s.gateway.RequestPayment(ctx, domain.PaymentRequest{
		Amount:            amount,
		PayerPhone:        *b.ParentPhone,
		ExternalReference: b.ConfirmationCode,
		PayerMessage:      fmt.Sprintf("Payment for %s", pkg.Name),
		PayeeNote:         fmt.Sprintf("%s booking for %s", pkg.Name, b.ChildName),
		CallbackURL:       s.callbackURL,
	})
	if err != nil {
		metrics.PaymentRequest("failed")
		s.logger.Error("payment initiation failed",
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
		result.PaymentStatus = domain.PaymentFailed
		return
	}

	metrics.PaymentRequest("initiated")
	s.logger.Info("payment initiated",
		logger.String("booking_id", b.ID),
		logger.String("payment_reference", initiation.ReferenceID),
	)
	result.PaymentStatus = domain.PaymentInitiated
	result.PaymentReference = initiation.ReferenceID
	result.PaymentURL = initiation.PaymentURL
}

// HandlePaymentWebhook settles a booking from a gateway callback. Only the
// delivery that flips the paid flag fulfills; replays are acknowledged.
func (s *BookingService) HandlePaymentWebhook(ctx context.Context, p domain.WebhookPayload) (domain.WebhookOutcome, error) {
	p.ExternalReference = strings.TrimSpace(p.ExternalReference)
	if p.ExternalReference == "" {
		return "", &domain.ValidationError{Field: "external_reference", Reason: "is required"}
	}

	booking, err := s.bookingRepo.GetByConfirmationCode(ctx, p.ExternalReference)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			metrics.Webhook("not_found")
		}
		return "", fmt.Errorf("get booking: %w", err)
	}

	if !p.Succeeded() {
		metrics.Webhook(string(domain.WebhookIgnored))
		s.logger.Info("payment status ignored",
			logger.String("booking_id", booking.ID),
			logger.String("status", p.Status),
		)
		return domain.WebhookIgnored, nil
	}

	if booking.Paid {
		return s.duplicate(booking), nil
	}

	paid, err := s.bookingRepo.MarkPaid(ctx, p.ExternalReference, strings.TrimSpace(p.PaymentReference))
	if err != nil {
		if errors.Is(err, domain.ErrBookingAlreadyPaid) {
			return s.duplicate(booking), nil
		}
		return "", fmt.Errorf("mark paid: %w", err)
	}

	metrics.Webhook(string(domain.WebhookConfirmed))
	s.logger.Info("booking paid",
		logger.String("booking_id", paid.ID),
		logger.String("confirmation_code", paid.ConfirmationCode),
	)

	go s.notifier.NotifyBookingPaid(context.WithoutCancel(ctx), paid)

	if err = s.dispatcher.Dispatch(ctx, paid); err != nil {
		return domain.WebhookConfirmed, fmt.Errorf("dispatch ticket: %w", err)
	}

	return domain.WebhookConfirmed, nil
}

func (s *BookingService) duplicate(b *domain.Booking) domain.WebhookOutcome {
	metrics.Webhook(string(domain.WebhookDuplicate))
	s.logger.Info("duplicate settlement acknowledged",
		logger.String("booking_id", b.ID),
	)
	return domain.WebhookDuplicate
}

func resolveErr(err, notFound error, kind, id string) error {
	if errors.Is(err, notFound) {
		return fmt.Errorf("%w: %s %s: %w", domain.ErrInvalidReference, kind, id, err)
	}
	return fmt.Errorf("resolve %s: %w", kind, err)
}

func normalizeBookingInput(in domain.CreateBookingInput) domain.CreateBookingInput {
	in.EventID = strings.TrimSpace(in.EventID)
	in.PackageID = strings.TrimSpace(in.PackageID)
	in.ParentName = strings.TrimSpace(in.ParentName)
	in.ParentEmail = strings.TrimSpace(in.ParentEmail)
	in.ParentPhone = strings.TrimSpace(in.ParentPhone)
	in.ChildName = strings.TrimSpace(in.ChildName)
	in.AgeRange = strings.TrimSpace(in.AgeRange)
	in.EventLocation = strings.TrimSpace(in.EventLocation)
	in.EventDescription = strings.TrimSpace(in.EventDescription)
	return in
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
