package service

import (
	"context"

	"github.com/kiddovents/kiddovents/internal/domain"
	"github.com/kiddovents/kiddovents/internal/service/ports"
)

type PackageService struct {
	repo ports.PackageRepo
}

func NewPackageService(repo ports.PackageRepo) *PackageService {
	return &PackageService{repo: repo}
}

// List returns packages cheapest first.
func (s *PackageService) List(ctx context.Context) ([]*domain.Package, error) {
	return s.repo.List(ctx)
}
