package ports

import (
	"context"

	"github.com/kiddovents/kiddovents/internal/domain"
)

type PaymentGateway interface {
	RequestPayment(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentInitiation, error)
}
