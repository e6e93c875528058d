package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/kiddovents/kiddovents/internal/domain"
	"github.com/kiddovents/kiddovents/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

const testCallbackURL = "https://api.example.com/webhook/momo?token=secret"

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingDeps struct {
	bookings   *mocks.MockBookingRepo
	events     *mocks.MockEventRepo
	packages   *mocks.MockPackageRepo
	gateway    *mocks.MockPaymentGateway
	dispatcher *mocks.MockTicketDispatcher
	notifier   *mocks.MockBookingNotifier
}

func newBookingService(t *testing.T) (*BookingService, bookingDeps) {
	t.Helper()
	d := bookingDeps{
		bookings:   mocks.NewMockBookingRepo(t),
		events:     mocks.NewMockEventRepo(t),
		packages:   mocks.NewMockPackageRepo(t),
		gateway:    mocks.NewMockPaymentGateway(t),
		dispatcher: mocks.NewMockTicketDispatcher(t),
		notifier:   mocks.NewMockBookingNotifier(t),
	}
	svc := NewBookingService(d.bookings, d.events, d.packages, d.gateway, d.dispatcher, d.notifier, testCallbackURL, newTestLogger(t))
	return svc, d
}

func validEventInput(eventID string) domain.CreateBookingInput {
	return domain.CreateBookingInput{
		EventID:       eventID,
		ParentEmail:   gofakeit.Email(),
		ChildName:     gofakeit.FirstName(),
		AgeRange:      "5-7",
		EventLocation: gofakeit.City(),
	}
}

func validPackageInput(packageID string) domain.CreateBookingInput {
	return domain.CreateBookingInput{
		PackageID:     packageID,
		ParentName:    gofakeit.Name(),
		ParentEmail:   gofakeit.Email(),
		ParentPhone:   "055-123-4567",
		ChildName:     gofakeit.FirstName(),
		AgeRange:      "8-10",
		EventLocation: gofakeit.City(),
	}
}

func TestBookingService_CreateBooking_Event(t *testing.T) {
	svc, d := newBookingService(t)

	eventID := uuid.NewString()
	event := &domain.Event{ID: eventID, Title: "Summer Fun Day"}

	var stored *domain.Booking
	d.events.EXPECT().GetByID(mock.Anything, eventID).Return(event, nil)
	d.bookings.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, b *domain.Booking) { stored = b }).
		Return(nil)
	notified := make(chan string, 1)
	d.notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, "Summer Fun Day").
		Run(func(_ context.Context, _ *domain.Booking, title string) { notified <- title }).
		Return()

	in := validEventInput(eventID)
	result, err := svc.CreateBooking(context.Background(), in)

	require.NoError(t, err)
	require.NotNil(t, result.Booking)
	assert.Same(t, stored, result.Booking)
	assert.Equal(t, domain.EventTarget(eventID), result.Booking.Target)
	assert.NotEmpty(t, result.Booking.ID)
	assert.NotEmpty(t, result.Booking.ConfirmationCode)
	assert.False(t, result.Booking.Paid)
	assert.Nil(t, result.Booking.PaymentReference)
	assert.Equal(t, in.ParentEmail, result.Booking.ParentEmail)
	assert.Equal(t, domain.PaymentNotInitiated, result.PaymentStatus)
	assert.Nil(t, result.Amount)

	select {
	case <-notified:
	case <-time.After(time.Second):
		t.Fatal("organizer notification not sent")
	}
}

func TestBookingService_CreateBooking_UniqueCodes(t *testing.T) {
	svc, d := newBookingService(t)

	eventID := uuid.NewString()
	d.events.EXPECT().GetByID(mock.Anything, eventID).Return(&domain.Event{ID: eventID}, nil)
	d.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	d.notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		result, err := svc.CreateBooking(context.Background(), validEventInput(eventID))
		require.NoError(t, err)
		_, dup := seen[result.Booking.ConfirmationCode]
		require.False(t, dup, "confirmation code reused")
		seen[result.Booking.ConfirmationCode] = struct{}{}
	}
}

func TestBookingService_CreateBooking_Validation(t *testing.T) {
	eventID := uuid.NewString()
	packageID := uuid.NewString()

	tests := []struct {
		name  string
		input func() domain.CreateBookingInput
		field string
	}{
		{
			name: "missing child name",
			input: func() domain.CreateBookingInput {
				in := validEventInput(eventID)
				in.ChildName = "  "
				return in
			},
			field: "child_name",
		},
		{
			name: "missing parent email",
			input: func() domain.CreateBookingInput {
				in := validEventInput(eventID)
				in.ParentEmail = ""
				return in
			},
			field: "parent_email",
		},
		{
			name: "malformed email",
			input: func() domain.CreateBookingInput {
				in := validEventInput(eventID)
				in.ParentEmail = "not-an-email"
				return in
			},
			field: "parent_email",
		},
		{
			name: "missing age range",
			input: func() domain.CreateBookingInput {
				in := validEventInput(eventID)
				in.AgeRange = ""
				return in
			},
			field: "age_range",
		},
		{
			name: "missing location",
			input: func() domain.CreateBookingInput {
				in := validEventInput(eventID)
				in.EventLocation = ""
				return in
			},
			field: "event_location",
		},
		{
			name: "no target",
			input: func() domain.CreateBookingInput {
				in := validEventInput("")
				return in
			},
			field: "event_id",
		},
		{
			name: "both targets",
			input: func() domain.CreateBookingInput {
				in := validPackageInput(packageID)
				in.EventID = eventID
				return in
			},
			field: "event_id",
		},
		{
			name: "package without phone",
			input: func() domain.CreateBookingInput {
				in := validPackageInput(packageID)
				in.ParentPhone = ""
				return in
			},
			field: "parent_phone",
		},
		{
			name: "malformed target id",
			input: func() domain.CreateBookingInput {
				return validEventInput("event-1")
			},
			field: "event_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newBookingService(t)

			_, err := svc.CreateBooking(context.Background(), tt.input())

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestBookingService_CreateBooking_UnknownPackage(t *testing.T) {
	svc, d := newBookingService(t)

	packageID := uuid.NewString()
	d.packages.EXPECT().GetByID(mock.Anything, packageID).Return(nil, domain.ErrPackageNotFound)

	_, err := svc.CreateBooking(context.Background(), validPackageInput(packageID))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
	assert.ErrorIs(t, err, domain.ErrPackageNotFound)
}

func TestBookingService_CreateBooking_UnknownEvent(t *testing.T) {
	svc, d := newBookingService(t)

	eventID := uuid.NewString()
	d.events.EXPECT().GetByID(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	_, err := svc.CreateBooking(context.Background(), validEventInput(eventID))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestBookingService_CreateBooking_LookupError(t *testing.T) {
	svc, d := newBookingService(t)

	eventID := uuid.NewString()
	d.events.EXPECT().GetByID(mock.Anything, eventID).Return(nil, errors.New("connection refused"))

	_, err := svc.CreateBooking(context.Background(), validEventInput(eventID))

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidReference)
}

func TestBookingService_CreateBooking_PersistError(t *testing.T) {
	svc, d := newBookingService(t)

	eventID := uuid.NewString()
	d.events.EXPECT().GetByID(mock.Anything, eventID).Return(&domain.Event{ID: eventID}, nil)
	d.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db down"))

	_, err := svc.CreateBooking(context.Background(), validEventInput(eventID))

	require.Error(t, err)
}

func TestBookingService_CreateBooking_PackageInitiatesPayment(t *testing.T) {
	svc, d := newBookingService(t)

	packageID := uuid.NewString()
	pkg := &domain.Package{ID: packageID, Name: "Basic Fun", Price: 50.00}

	var req domain.PaymentRequest
	d.packages.EXPECT().GetByID(mock.Anything, packageID).Return(pkg, nil)
	d.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	d.notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, "Basic Fun").Return().Maybe()
	d.gateway.EXPECT().RequestPayment(mock.Anything, mock.Anything).
		Run(func(_ context.Context, r domain.PaymentRequest) { req = r }).
		Return(&domain.PaymentInitiation{ReferenceID: "ref-123"}, nil)

	in := validPackageInput(packageID)
	in.ParentPhone = "0551234567"
	result, err := svc.CreateBooking(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, domain.PackageTarget(packageID), result.Booking.Target)
	assert.Equal(t, domain.PaymentInitiated, result.PaymentStatus)
	assert.Equal(t, "ref-123", result.PaymentReference)
	assert.Empty(t, result.PaymentURL)
	require.NotNil(t, result.Amount)
	assert.InDelta(t, 50.00, *result.Amount, 0.001)

	assert.InDelta(t, 50.00, req.Amount, 0.001)
	assert.Equal(t, "0551234567", req.PayerPhone)
	assert.Equal(t, result.Booking.ConfirmationCode, req.ExternalReference)
	assert.Equal(t, "Payment for Basic Fun", req.PayerMessage)
	assert.Contains(t, req.PayeeNote, in.ChildName)
	assert.Equal(t, testCallbackURL, req.CallbackURL)
}

func TestBookingService_CreateBooking_PaymentFailureKeepsBooking(t *testing.T) {
	svc, d := newBookingService(t)

	packageID := uuid.NewString()
	d.packages.EXPECT().GetByID(mock.Anything, packageID).Return(&domain.Package{ID: packageID, Name: "Adventure", Price: 120}, nil)
	d.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	d.notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	d.gateway.EXPECT().RequestPayment(mock.Anything, mock.Anything).
		Return(nil, &domain.PaymentRequestError{StatusCode: 500, Body: "boom"})

	result, err := svc.CreateBooking(context.Background(), validPackageInput(packageID))

	require.NoError(t, err)
	assert.NotEmpty(t, result.Booking.ConfirmationCode)
	assert.False(t, result.Booking.Paid)
	assert.Equal(t, domain.PaymentFailed, result.PaymentStatus)
	assert.Empty(t, result.PaymentReference)
}

func TestBookingService_CreateBooking_GatewayNotConfigured(t *testing.T) {
	svc, d := newBookingService(t)

	packageID := uuid.NewString()
	d.packages.EXPECT().GetByID(mock.Anything, packageID).Return(&domain.Package{ID: packageID, Name: "Basic Fun", Price: 50}, nil)
	d.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	d.notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	d.gateway.EXPECT().RequestPayment(mock.Anything, mock.Anything).Return(nil, domain.ErrGatewayNotConfigured)

	result, err := svc.CreateBooking(context.Background(), validPackageInput(packageID))

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentFailed, result.PaymentStatus)
}

// --- Webhook ---

func unpaidBooking() *domain.Booking {
	return &domain.Booking{
		ID:               uuid.NewString(),
		Target:           domain.PackageTarget(uuid.NewString()),
		ParentEmail:      gofakeit.Email(),
		ChildName:        gofakeit.FirstName(),
		ConfirmationCode: uuid.NewString(),
	}
}

func TestBookingService_HandlePaymentWebhook_Success(t *testing.T) {
	svc, d := newBookingService(t)

	b := unpaidBooking()
	paidAt := time.Now().UTC()
	ref := "fin-1"
	paid := *b
	paid.Paid, paid.PaidAt, paid.PaymentReference = true, &paidAt, &ref

	d.bookings.EXPECT().GetByConfirmationCode(mock.Anything, b.ConfirmationCode).Return(b, nil)
	d.bookings.EXPECT().MarkPaid(mock.Anything, b.ConfirmationCode, "fin-1").Return(&paid, nil).Once()
	d.dispatcher.EXPECT().Dispatch(mock.Anything, &paid).Return(nil).Once()
	d.notifier.EXPECT().NotifyBookingPaid(mock.Anything, &paid).Return().Maybe()

	outcome, err := svc.HandlePaymentWebhook(context.Background(), domain.WebhookPayload{
		Status:            "SUCCESSFUL",
		ExternalReference: b.ConfirmationCode,
		PaymentReference:  "fin-1",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.WebhookConfirmed, outcome)
}

func TestBookingService_HandlePaymentWebhook_LowercaseSuccess(t *testing.T) {
	svc, d := newBookingService(t)

	b := unpaidBooking()
	paid := *b
	paid.Paid = true

	d.bookings.EXPECT().GetByConfirmationCode(mock.Anything, b.ConfirmationCode).Return(b, nil)
	d.bookings.EXPECT().MarkPaid(mock.Anything, b.ConfirmationCode, "").Return(&paid, nil)
	d.dispatcher.EXPECT().Dispatch(mock.Anything, &paid).Return(nil)
	d.notifier.EXPECT().NotifyBookingPaid(mock.Anything, mock.Anything).Return().Maybe()

	outcome, err := svc.HandlePaymentWebhook(context.Background(), domain.WebhookPayload{
		Status:            "success",
		ExternalReference: b.ConfirmationCode,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.WebhookConfirmed, outcome)
}

func TestBookingService_HandlePaymentWebhook_NotFound(t *testing.T) {
	svc, d := newBookingService(t)

	d.bookings.EXPECT().GetByConfirmationCode(mock.Anything, "unknown").Return(nil, domain.ErrBookingNotFound)

	_, err := svc.HandlePaymentWebhook(context.Background(), domain.WebhookPayload{
		Status:            "SUCCESSFUL",
		ExternalReference: "unknown",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_HandlePaymentWebhook_MissingReference(t *testing.T) {
	svc, _ := newBookingService(t)

	_, err := svc.HandlePaymentWebhook(context.Background(), domain.WebhookPayload{Status: "SUCCESSFUL"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_HandlePaymentWebhook_IgnoredStatus(t *testing.T) {
	for _, status := range []string{"FAILED", "PENDING", ""} {
		t.Run(status, func(t *testing.T) {
			svc, d := newBookingService(t)

			b := unpaidBooking()
			d.bookings.EXPECT().GetByConfirmationCode(mock.Anything, b.ConfirmationCode).Return(b, nil)

			outcome, err := svc.HandlePaymentWebhook(context.Background(), domain.WebhookPayload{
				Status:            status,
				ExternalReference: b.ConfirmationCode,
			})

			require.NoError(t, err)
			assert.Equal(t, domain.WebhookIgnored, outcome)
			assert.False(t, b.Paid)
		})
	}
}

func TestBookingService_HandlePaymentWebhook_AlreadyPaid(t *testing.T) {
	svc, d := newBookingService(t)

	b := unpaidBooking()
	b.Paid = true
	d.bookings.EXPECT().GetByConfirmationCode(mock.Anything, b.ConfirmationCode).Return(b, nil)

	outcome, err := svc.HandlePaymentWebhook(context.Background(), domain.WebhookPayload{
		Status:            "SUCCESSFUL",
		ExternalReference: b.ConfirmationCode,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.WebhookDuplicate, outcome)
}

func TestBookingService_HandlePaymentWebhook_LostRace(t *testing.T) {
	svc, d := newBookingService(t)

	b := unpaidBooking()
	d.bookings.EXPECT().GetByConfirmationCode(mock.Anything, b.ConfirmationCode).Return(b, nil)
	d.bookings.EXPECT().MarkPaid(mock.Anything, b.ConfirmationCode, "").Return(nil, domain.ErrBookingAlreadyPaid)

	outcome, err := svc.HandlePaymentWebhook(context.Background(), domain.WebhookPayload{
		Status:            "SUCCESSFUL",
		ExternalReference: b.ConfirmationCode,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.WebhookDuplicate, outcome)
}

func TestBookingService_HandlePaymentWebhook_DispatchError(t *testing.T) {
	svc, d := newBookingService(t)

	b := unpaidBooking()
	paid := *b
	paid.Paid = true

	d.bookings.EXPECT().GetByConfirmationCode(mock.Anything, b.ConfirmationCode).Return(b, nil)
	d.bookings.EXPECT().MarkPaid(mock.Anything, b.ConfirmationCode, "").Return(&paid, nil)
	d.dispatcher.EXPECT().Dispatch(mock.Anything, &paid).Return(domain.ErrDelivery)
	d.notifier.EXPECT().NotifyBookingPaid(mock.Anything, mock.Anything).Return().Maybe()

	outcome, err := svc.HandlePaymentWebhook(context.Background(), domain.WebhookPayload{
		Status:            "SUCCESSFUL",
		ExternalReference: b.ConfirmationCode,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDelivery)
	assert.Equal(t, domain.WebhookConfirmed, outcome)
}

// memoryBookingRepo applies the paid transition under a lock, mirroring the
// conditional update in the postgres repository.
type memoryBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*domain.Booking
}

func (r *memoryBookingRepo) Create(_ context.Context, b *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[b.ConfirmationCode] = b
	return nil
}

func (r *memoryBookingRepo) GetByConfirmationCode(_ context.Context, code string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[code]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *memoryBookingRepo) MarkPaid(_ context.Context, code, paymentRef string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[code]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	if b.Paid {
		return nil, domain.ErrBookingAlreadyPaid
	}
	now := time.Now().UTC()
	b.Paid, b.PaidAt = true, &now
	if paymentRef != "" {
		b.PaymentReference = &paymentRef
	}
	cp := *b
	return &cp, nil
}

func TestBookingService_HandlePaymentWebhook_ConcurrentDeliveries(t *testing.T) {
	b := unpaidBooking()
	repo := &memoryBookingRepo{bookings: map[string]*domain.Booking{b.ConfirmationCode: b}}
	dispatcher := mocks.NewMockTicketDispatcher(t)
	notifier := mocks.NewMockBookingNotifier(t)

	dispatcher.EXPECT().Dispatch(mock.Anything, mock.Anything).Return(nil).Once()
	notifier.EXPECT().NotifyBookingPaid(mock.Anything, mock.Anything).Return().Maybe()

	svc := NewBookingService(repo, mocks.NewMockEventRepo(t), mocks.NewMockPackageRepo(t),
		mocks.NewMockPaymentGateway(t), dispatcher, notifier, testCallbackURL, newTestLogger(t))

	const deliveries = 8
	outcomes := make([]domain.WebhookOutcome, deliveries)
	var wg sync.WaitGroup
	for i := 0; i < deliveries; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outcome, err := svc.HandlePaymentWebhook(context.Background(), domain.WebhookPayload{
				Status:            "SUCCESSFUL",
				ExternalReference: b.ConfirmationCode,
				PaymentReference:  "fin-42",
			})
			assert.NoError(t, err)
			outcomes[i] = outcome
		}(i)
	}
	wg.Wait()

	confirmed := 0
	for _, o := range outcomes {
		if o == domain.WebhookConfirmed {
			confirmed++
		} else {
			assert.Equal(t, domain.WebhookDuplicate, o)
		}
	}
	assert.Equal(t, 1, confirmed)

	stored, err := repo.GetByConfirmationCode(context.Background(), b.ConfirmationCode)
	require.NoError(t, err)
	assert.True(t, stored.Paid)
	require.NotNil(t, stored.PaymentReference)
	assert.Equal(t, "fin-42", *stored.PaymentReference)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}
