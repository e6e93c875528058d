package ports

import (
	"context"

	"github.com/kiddovents/kiddovents/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByConfirmationCode(ctx context.Context, code string) (*domain.Booking, error)
	MarkPaid(ctx context.Context, code, paymentRef string) (*domain.Booking, error)
}
