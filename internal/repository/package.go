package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/kiddovents/kiddovents/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const featureSeparator = ","

type PackageRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPackageRepo(db *dbpg.DB) *PackageRepository {
	return &PackageRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *PackageRepository) GetByID(ctx context.Context, id string) (*domain.Package, error) {
	query := `SELECT id, name, description, price, features, icon, is_popular
			  FROM packages
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get package: %w", err)
	}

	p, err := scanPackage(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPackageNotFound
		}
		return nil, fmt.Errorf("scan package: %w", err)
	}

	return p, nil
}

func (r *PackageRepository) List(ctx context.Context) ([]*domain.Package, error) {
	query := `SELECT id, name, description, price, features, icon, is_popular
			  FROM packages
			  ORDER BY price ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	defer rows.Close()

	var res []*domain.Package
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan package: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPackage(s scanner) (*domain.Package, error) {
	var (
		p        domain.Package
		features string
	)
	if err := s.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price,
		&features, &p.Icon, &p.IsPopular,
	); err != nil {
		return nil, err
	}
	p.Features = splitFeatures(features)

	return &p, nil
}

func splitFeatures(raw string) []string {
	res := make([]string, 0)
	for _, f := range strings.Split(raw, featureSeparator) {
		if f = strings.TrimSpace(f); f != "" {
			res = append(res, f)
		}
	}
	return res
}
