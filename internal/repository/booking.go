package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/kiddovents/kiddovents/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const uniqueViolation = "23505"

const bookingColumns = `id, event_id, package_id, parent_name, parent_email, parent_phone,
			  child_name, age_range, event_location, event_description,
			  confirmation_code, paid, payment_reference, paid_at, created_at`

var errDuplicateBooking = errors.New("duplicate booking identifier")

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// Create inserts an unpaid booking. It is not retried: a retry after a lost
// commit acknowledgement would hit the unique confirmation code.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	eventID, packageID := targetColumns(b.Target)
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO bookings (id, event_id, package_id, parent_name, parent_email, parent_phone,
			  child_name, age_range, event_location, event_description,
			  confirmation_code, paid, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, FALSE, $12)`
	_, err := r.db.Master.ExecContext(
		ctx, query,
		b.ID, eventID, packageID, b.ParentName, b.ParentEmail, b.ParentPhone,
		b.ChildName, b.AgeRange, b.EventLocation, b.EventDescription,
		b.ConfirmationCode, b.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("insert booking: %w", errDuplicateBooking)
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByConfirmationCode(ctx context.Context, code string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE confirmation_code=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, code)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// MarkPaid flips paid exactly once. Concurrent callers race on the row lock of
// a single UPDATE and only the first one gets a row back.
func (r *BookingRepository) MarkPaid(ctx context.Context, code, paymentRef string) (*domain.Booking, error) {
	var ref *string
	if paymentRef != "" {
		ref = &paymentRef
	}

	query := `UPDATE bookings
			  SET paid = TRUE, payment_reference = $2, paid_at = NOW()
			  WHERE confirmation_code = $1 AND paid = FALSE
			  RETURNING ` + bookingColumns

	b, err := scanBooking(r.db.Master.QueryRowContext(ctx, query, code, ref))
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("mark booking paid: %w", err)
	}

	// Nothing updated: either the code is unknown or another delivery won.
	var exists bool
	checkQuery := `SELECT EXISTS (SELECT 1 FROM bookings WHERE confirmation_code = $1)`
	if err = r.db.Master.QueryRowContext(ctx, checkQuery, code).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check booking: %w", err)
	}
	if !exists {
		return nil, domain.ErrBookingNotFound
	}

	return nil, domain.ErrBookingAlreadyPaid
}

func targetColumns(t domain.BookingTarget) (eventID, packageID *string) {
	id := t.ID
	if t.IsPackage() {
		return nil, &id
	}
	return &id, nil
}

func scanBooking(s scanner) (*domain.Booking, error) {
	var (
		b                  domain.Booking
		eventID, packageID sql.NullString
	)
	if err := s.Scan(
		&b.ID, &eventID, &packageID, &b.ParentName, &b.ParentEmail, &b.ParentPhone,
		&b.ChildName, &b.AgeRange, &b.EventLocation, &b.EventDescription,
		&b.ConfirmationCode, &b.Paid, &b.PaymentReference, &b.PaidAt, &b.CreatedAt,
	); err != nil {
		return nil, err
	}

	if packageID.Valid {
		b.Target = domain.PackageTarget(packageID.String)
	} else {
		b.Target = domain.EventTarget(eventID.String)
	}

	return &b, nil
}
