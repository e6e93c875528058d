package ports

import (
	"context"

	"github.com/kiddovents/kiddovents/internal/domain"
)

// TicketDispatcher hands a freshly paid booking over to fulfillment, either
// inline or through the broker.
type TicketDispatcher interface {
	Dispatch(ctx context.Context, b *domain.Booking) error
}

type TicketEncoder interface {
	Encode(code string) ([]byte, error)
}

type Mailer interface {
	Send(ctx context.Context, email domain.Email) error
}
