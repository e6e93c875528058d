package ports

import (
	"context"

	"github.com/kiddovents/kiddovents/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
}

type PackageRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Package, error)
	List(ctx context.Context) ([]*domain.Package, error)
}
