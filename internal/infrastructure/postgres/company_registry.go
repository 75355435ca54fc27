package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/execution-hub/presentation-hub/internal/domain/company"
)

// CompanyRegistry implements company.Registry over the companies table.
type CompanyRegistry struct {
	pool *pgxpool.Pool
}

func NewCompanyRegistry(pool *pgxpool.Pool) *CompanyRegistry {
	return &CompanyRegistry{pool: pool}
}

func (r *CompanyRegistry) ResolveStaticID(ctx context.Context, node string) (string, error) {
	var staticID string
	err := r.pool.QueryRow(ctx, `SELECT static_id FROM companies WHERE node=$1`, company.NormalizeNode(node)).Scan(&staticID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("resolve company node: %w", err)
	}
	return staticID, nil
}

func (r *CompanyRegistry) GetDisplayName(ctx context.Context, companyID string) (string, error) {
	var name string
	err := r.pool.QueryRow(ctx, `SELECT display_name FROM companies WHERE static_id=$1`, companyID).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return companyID, nil
		}
		return "", fmt.Errorf("get company display name: %w", err)
	}
	return name, nil
}

// Register upserts a company, deriving its node from the static id.
func (r *CompanyRegistry) Register(ctx context.Context, c *company.Company) error {
	if c.Node == "" {
		c.Node = company.NodeHash(c.StaticID)
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO companies (static_id, node, display_name) VALUES ($1,$2,$3)
		ON CONFLICT (static_id) DO UPDATE SET node=EXCLUDED.node, display_name=EXCLUDED.display_name
	`, c.StaticID, company.NormalizeNode(c.Node), c.DisplayName)
	if err != nil {
		return fmt.Errorf("register company: %w", err)
	}
	return nil
}
