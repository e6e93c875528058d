package ports

import (
	"context"

	"github.com/kiddovents/kiddovents/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking, title string)
	NotifyBookingPaid(ctx context.Context, b *domain.Booking)
}
