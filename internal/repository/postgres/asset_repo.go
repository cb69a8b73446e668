package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"aqari/internal/domain"
	"aqari/internal/port"
)

type assetRepo struct {
	db *sqlx.DB
}

// NewAssetRepo creates a new PostgreSQL-backed AssetRepository.
func NewAssetRepo(db *sqlx.DB) port.AssetRepository {
	return &assetRepo{db: db}
}

func (r *assetRepo) Create(ctx context.Context, asset *domain.Asset) error {
	asset.ID = uuid.New()
	now := time.Now().UTC()
	asset.CreatedAt = now
	asset.UpdatedAt = now

	query := `INSERT INTO assets (id, tenant_id, property_id, name, serial_number,
		purchase_cost, condition, warranty_expiry, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		asset.ID, asset.TenantID, asset.PropertyID, asset.Name, asset.SerialNumber,
		asset.PurchaseCost, asset.Condition, asset.WarrantyExpiry,
		asset.CreatedAt, asset.UpdatedAt)
	if err != nil {
		return fmt.Errorf("assetRepo.Create: %w", err)
	}
	return nil
}

func (r *assetRepo) GetByID(ctx context.Context, tenantID, assetID uuid.UUID) (*domain.Asset, error) {
	var asset domain.Asset
	err := r.db.GetContext(ctx, &asset,
		"SELECT * FROM assets WHERE id = $1 AND tenant_id = $2", assetID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("assetRepo.GetByID: %w", err)
	}
	return &asset, nil
}

func (r *assetRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Asset, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM assets WHERE tenant_id = $1", tenantID)
	if err != nil {
		return nil, 0, fmt.Errorf("assetRepo.ListByTenant count: %w", err)
	}

	var assets []domain.Asset
	err = r.db.SelectContext(ctx, &assets,
		"SELECT * FROM assets WHERE tenant_id = $1 ORDER BY name LIMIT $2 OFFSET $3",
		tenantID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("assetRepo.ListByTenant: %w", err)
	}
	return assets, total, nil
}

func (r *assetRepo) ListByProperty(ctx context.Context, tenantID, propertyID uuid.UUID, offset, limit int) ([]domain.Asset, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM assets WHERE tenant_id = $1 AND property_id = $2",
		tenantID, propertyID)
	if err != nil {
		return nil, 0, fmt.Errorf("assetRepo.ListByProperty count: %w", err)
	}

	var assets []domain.Asset
	err = r.db.SelectContext(ctx, &assets,
		`SELECT * FROM assets WHERE tenant_id = $1 AND property_id = $2
		 ORDER BY name LIMIT $3 OFFSET $4`,
		tenantID, propertyID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("assetRepo.ListByProperty: %w", err)
	}
	return assets, total, nil
}

func (r *assetRepo) Update(ctx context.Context, asset *domain.Asset) error {
	asset.UpdatedAt = time.Now().UTC()
	query := `UPDATE assets SET property_id = $1, name = $2, serial_number = $3,
		purchase_cost = $4, condition = $5, warranty_expiry = $6, updated_at = $7
		WHERE id = $8 AND tenant_id = $9`
	result, err := r.db.ExecContext(ctx, query,
		asset.PropertyID, asset.Name, asset.SerialNumber, asset.PurchaseCost,
		asset.Condition, asset.WarrantyExpiry, asset.UpdatedAt,
		asset.ID, asset.TenantID)
	if err != nil {
		return fmt.Errorf("assetRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *assetRepo) Delete(ctx context.Context, tenantID, assetID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM assets WHERE id = $1 AND tenant_id = $2", assetID, tenantID)
	if err != nil {
		return fmt.Errorf("assetRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
