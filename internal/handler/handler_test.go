package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kiddovents/kiddovents/internal/domain"
	"github.com/kiddovents/kiddovents/internal/handler/dto"
	hmocks "github.com/kiddovents/kiddovents/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func setupRouter(t *testing.T) (*hmocks.MockEventSvc, *hmocks.MockPackageSvc, *hmocks.MockBookingSvc, http.Handler) {
	t.Helper()
	eventSvc := hmocks.NewMockEventSvc(t)
	packageSvc := hmocks.NewMockPackageSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)

	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	h := NewHandler(eventSvc, packageSvc, bookingSvc, log)

	r := ginext.New("test")
	r.GET("/events", h.ListEvents)
	r.POST("/events", h.CreateEvent)
	r.GET("/packages", h.ListPackages)
	r.POST("/book", h.Book)
	r.POST("/webhook/momo", h.PaymentWebhook)

	return eventSvc, packageSvc, bookingSvc, r
}

func do(r http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	date := time.Date(2026, 8, 1, 15, 0, 0, 0, time.UTC)
	event := &domain.Event{ID: uuid.New().String(), Title: "Summer Fun Day", Date: date}

	var got domain.CreateEventInput
	eventSvc.EXPECT().CreateEvent(mock.Anything, mock.Anything).
		Run(func(_ context.Context, in domain.CreateEventInput) { got = in }).
		Return(event, nil)

	body, _ := json.Marshal(dto.CreateEventRequest{
		Title:       "Summer Fun Day",
		Description: "Games",
		Date:        date.Format(time.RFC3339),
		Location:    "Accra Mall",
	})

	w := do(r, http.MethodPost, "/events", body)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CreateEventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, event.ID, resp.EventID)
	assert.Equal(t, "Event created successfully!", resp.Message)
	assert.True(t, date.Equal(got.Date))
}

func TestHandler_CreateEvent_DateOnly(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	var got domain.CreateEventInput
	eventSvc.EXPECT().CreateEvent(mock.Anything, mock.Anything).
		Run(func(_ context.Context, in domain.CreateEventInput) { got = in }).
		Return(&domain.Event{ID: "e1"}, nil)

	w := do(r, http.MethodPost, "/events",
		[]byte(`{"title":"X","description":"Y","date":"2026-09-20","location":"Z"}`))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC), got.Date)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := do(r, http.MethodPost, "/events",
		[]byte(`{"title":"X","description":"Y","date":"not-a-date","location":"Z"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "date", resp.Field)
}

func TestHandler_CreateEvent_ValidationError(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventSvc.EXPECT().CreateEvent(mock.Anything, mock.Anything).
		Return(nil, &domain.ValidationError{Field: "title", Reason: "is required"})

	w := do(r, http.MethodPost, "/events", []byte(`{"title":""}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "title", resp.Field)
}

func TestHandler_CreateEvent_MalformedJSON(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := do(r, http.MethodPost, "/events", []byte(`{"title":`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListEvents_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	events := []*domain.Event{
		{ID: "e1", Title: "Event 1", Date: time.Now()},
		{ID: "e2", Title: "Event 2", Date: time.Now()},
	}
	eventSvc.EXPECT().List(mock.Anything).Return(events, nil)

	w := do(r, http.MethodGet, "/events", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "e1", resp[0].ID)
}

func TestHandler_ListEvents_BackendFailureReturnsEmpty(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventSvc.EXPECT().List(mock.Anything).Return(nil, errors.New("db down"))

	w := do(r, http.MethodGet, "/events", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

// --- Packages ---

func TestHandler_ListPackages(t *testing.T) {
	_, packageSvc, _, r := setupRouter(t)

	packageSvc.EXPECT().List(mock.Anything).Return([]*domain.Package{
		{ID: "p1", Name: "Basic Fun", Price: 50, Features: []string{"Games", "Snacks"}},
		{ID: "p2", Name: "Adventure", Price: 120, IsPopular: true},
	}, nil)

	w := do(r, http.MethodGet, "/packages", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.PackageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, []string{"Games", "Snacks"}, resp[0].Features)
	assert.Equal(t, []string{}, resp[1].Features)
	assert.True(t, resp[1].IsPopular)
}

func TestHandler_ListPackages_Error(t *testing.T) {
	_, packageSvc, _, r := setupRouter(t)

	packageSvc.EXPECT().List(mock.Anything).Return(nil, errors.New("db down"))

	w := do(r, http.MethodGet, "/packages", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// --- Bookings ---

func TestHandler_Book_Package(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	packageID := uuid.New().String()
	amount := 50.0
	result := &domain.BookingResult{
		Booking: &domain.Booking{
			ID:               uuid.New().String(),
			Target:           domain.PackageTarget(packageID),
			ConfirmationCode: uuid.New().String(),
		},
		PaymentStatus:    domain.PaymentInitiated,
		PaymentReference: "ref-1",
		Amount:           &amount,
	}

	bookingSvc.EXPECT().CreateBooking(mock.Anything, mock.MatchedBy(func(in domain.CreateBookingInput) bool {
		return in.PackageID == packageID && in.ParentPhone == "0551234567"
	})).Return(result, nil)

	body, _ := json.Marshal(dto.BookRequest{
		PackageID:     packageID,
		ParentEmail:   "ama@example.com",
		ParentPhone:   "0551234567",
		ChildName:     "Kofi",
		AgeRange:      "5-7",
		EventLocation: "Accra",
	})

	w := do(r, http.MethodPost, "/book", body)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, result.Booking.ID, resp.BookingID)
	assert.Equal(t, result.Booking.ConfirmationCode, resp.ConfirmationCode)
	assert.Equal(t, "initiated", resp.PaymentStatus)
	assert.Equal(t, "ref-1", resp.PaymentReference)
	require.NotNil(t, resp.Amount)
	assert.InDelta(t, 50.0, *resp.Amount, 0.001)
}

func TestHandler_Book_ValidationError(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().CreateBooking(mock.Anything, mock.Anything).
		Return(nil, &domain.ValidationError{Field: "child_name", Reason: "is required"})

	w := do(r, http.MethodPost, "/book", []byte(`{"event_id":"x"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "child_name", resp.Field)
}

func TestHandler_Book_InvalidReference(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().CreateBooking(mock.Anything, mock.Anything).
		Return(nil, domain.ErrInvalidReference)

	w := do(r, http.MethodPost, "/book", []byte(`{}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Book_InternalError(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().CreateBooking(mock.Anything, mock.Anything).
		Return(nil, errors.New("pq: connection refused"))

	w := do(r, http.MethodPost, "/book", []byte(`{}`))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "pq:")
}

// --- Webhook ---

func TestHandler_PaymentWebhook_Confirmed(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().HandlePaymentWebhook(mock.Anything, domain.WebhookPayload{
		Status:            "SUCCESSFUL",
		ExternalReference: "code-1",
		PaymentReference:  "fin-1",
	}).Return(domain.WebhookConfirmed, nil)

	w := do(r, http.MethodPost, "/webhook/momo",
		[]byte(`{"status":"SUCCESSFUL","external_reference":"code-1","payment_reference":"fin-1"}`))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Payment confirmed, ticket dispatched.", resp.Message)
}

func TestHandler_PaymentWebhook_ProviderShape(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().HandlePaymentWebhook(mock.Anything, domain.WebhookPayload{
		Status:            "SUCCESSFUL",
		ExternalReference: "code-2",
		PaymentReference:  "12345",
	}).Return(domain.WebhookDuplicate, nil)

	w := do(r, http.MethodPost, "/webhook/momo",
		[]byte(`{"status":"SUCCESSFUL","externalId":"code-2","financialTransactionId":"12345"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Payment already confirmed.")
}

func TestHandler_PaymentWebhook_NotFound(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().HandlePaymentWebhook(mock.Anything, mock.Anything).
		Return(domain.WebhookOutcome(""), domain.ErrBookingNotFound)

	w := do(r, http.MethodPost, "/webhook/momo", []byte(`{"status":"SUCCESSFUL","external_reference":"nope"}`))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_PaymentWebhook_DeliveryFailure(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().HandlePaymentWebhook(mock.Anything, mock.Anything).
		Return(domain.WebhookConfirmed, domain.ErrDelivery)

	w := do(r, http.MethodPost, "/webhook/momo", []byte(`{"status":"SUCCESSFUL","external_reference":"c"}`))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ticket email could not be delivered", resp.Error)
}
