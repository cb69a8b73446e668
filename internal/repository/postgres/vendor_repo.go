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

type vendorRepo struct {
	db *sqlx.DB
}

// NewVendorRepo creates a new PostgreSQL-backed VendorRepository.
func NewVendorRepo(db *sqlx.DB) port.VendorRepository {
	return &vendorRepo{db: db}
}

func (r *vendorRepo) Create(ctx context.Context, vendor *domain.Vendor) error {
	vendor.ID = uuid.New()
	now := time.Now().UTC()
	vendor.CreatedAt = now
	vendor.UpdatedAt = now

	query := `INSERT INTO vendors (id, tenant_id, name, category, contact_phone, contact_email,
		trn, license_number, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		vendor.ID, vendor.TenantID, vendor.Name, vendor.Category,
		vendor.ContactPhone, vendor.ContactEmail, vendor.TRN, vendor.LicenseNumber,
		vendor.IsActive, vendor.CreatedAt, vendor.UpdatedAt)
	if err != nil {
		return fmt.Errorf("vendorRepo.Create: %w", err)
	}
	return nil
}

func (r *vendorRepo) GetByID(ctx context.Context, tenantID, vendorID uuid.UUID) (*domain.Vendor, error) {
	var vendor domain.Vendor
	err := r.db.GetContext(ctx, &vendor,
		"SELECT * FROM vendors WHERE id = $1 AND tenant_id = $2", vendorID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("vendorRepo.GetByID: %w", err)
	}
	return &vendor, nil
}

func (r *vendorRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Vendor, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM vendors WHERE tenant_id = $1", tenantID)
	if err != nil {
		return nil, 0, fmt.Errorf("vendorRepo.ListByTenant count: %w", err)
	}

	var vendors []domain.Vendor
	err = r.db.SelectContext(ctx, &vendors,
		"SELECT * FROM vendors WHERE tenant_id = $1 ORDER BY name LIMIT $2 OFFSET $3",
		tenantID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("vendorRepo.ListByTenant: %w", err)
	}
	return vendors, total, nil
}

func (r *vendorRepo) Update(ctx context.Context, vendor *domain.Vendor) error {
	vendor.UpdatedAt = time.Now().UTC()
	query := `UPDATE vendors SET name = $1, category = $2, contact_phone = $3, contact_email = $4,
		trn = $5, license_number = $6, is_active = $7, updated_at = $8
		WHERE id = $9 AND tenant_id = $10`
	result, err := r.db.ExecContext(ctx, query,
		vendor.Name, vendor.Category, vendor.ContactPhone, vendor.ContactEmail,
		vendor.TRN, vendor.LicenseNumber, vendor.IsActive, vendor.UpdatedAt,
		vendor.ID, vendor.TenantID)
	if err != nil {
		return fmt.Errorf("vendorRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *vendorRepo) Delete(ctx context.Context, tenantID, vendorID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM vendors WHERE id = $1 AND tenant_id = $2", vendorID, tenantID)
	if err != nil {
		return fmt.Errorf("vendorRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
