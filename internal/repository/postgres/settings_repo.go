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

type companyProfileRepo struct {
	db *sqlx.DB
}

// NewCompanyProfileRepo creates a new PostgreSQL-backed CompanyProfileRepository.
func NewCompanyProfileRepo(db *sqlx.DB) port.CompanyProfileRepository {
	return &companyProfileRepo{db: db}
}

func (r *companyProfileRepo) Get(ctx context.Context, tenantID uuid.UUID) (*domain.CompanyProfile, error) {
	var profile domain.CompanyProfile
	err := r.db.GetContext(ctx, &profile,
		"SELECT * FROM company_profiles WHERE tenant_id = $1", tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("companyProfileRepo.Get: %w", err)
	}
	return &profile, nil
}

func (r *companyProfileRepo) Upsert(ctx context.Context, profile *domain.CompanyProfile) error {
	profile.UpdatedAt = time.Now().UTC()
	query := `INSERT INTO company_profiles (tenant_id, legal_name, address, city, country, trn, phone, email, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (tenant_id) DO UPDATE SET
			legal_name = EXCLUDED.legal_name, address = EXCLUDED.address, city = EXCLUDED.city,
			country = EXCLUDED.country, trn = EXCLUDED.trn, phone = EXCLUDED.phone,
			email = EXCLUDED.email, updated_at = EXCLUDED.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		profile.TenantID, profile.LegalName, profile.Address, profile.City,
		profile.Country, profile.TRN, profile.Phone, profile.Email, profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("companyProfileRepo.Upsert: %w", err)
	}
	return nil
}

type bankAccountRepo struct {
	db *sqlx.DB
}

// NewBankAccountRepo creates a new PostgreSQL-backed BankAccountRepository.
func NewBankAccountRepo(db *sqlx.DB) port.BankAccountRepository {
	return &bankAccountRepo{db: db}
}

func (r *bankAccountRepo) Create(ctx context.Context, account *domain.BankAccount) error {
	account.ID = uuid.New()
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now

	query := `INSERT INTO bank_accounts (id, tenant_id, bank_name, account_holder, iban, swift, currency, is_default, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, query,
		account.ID, account.TenantID, account.BankName, account.AccountHolder,
		account.IBAN, account.SWIFT, account.Currency, account.IsDefault,
		account.CreatedAt, account.UpdatedAt)
	if err != nil {
		return fmt.Errorf("bankAccountRepo.Create: %w", err)
	}
	return nil
}

func (r *bankAccountRepo) GetByID(ctx context.Context, tenantID, accountID uuid.UUID) (*domain.BankAccount, error) {
	var account domain.BankAccount
	err := r.db.GetContext(ctx, &account,
		"SELECT * FROM bank_accounts WHERE id = $1 AND tenant_id = $2", accountID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("bankAccountRepo.GetByID: %w", err)
	}
	return &account, nil
}

func (r *bankAccountRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.BankAccount, error) {
	var accounts []domain.BankAccount
	err := r.db.SelectContext(ctx, &accounts,
		"SELECT * FROM bank_accounts WHERE tenant_id = $1 ORDER BY is_default DESC, bank_name", tenantID)
	if err != nil {
		return nil, fmt.Errorf("bankAccountRepo.ListByTenant: %w", err)
	}
	return accounts, nil
}

func (r *bankAccountRepo) Update(ctx context.Context, account *domain.BankAccount) error {
	account.UpdatedAt = time.Now().UTC()
	query := `UPDATE bank_accounts SET bank_name = $1, account_holder = $2, iban = $3,
		swift = $4, currency = $5, updated_at = $6
		WHERE id = $7 AND tenant_id = $8`
	result, err := r.db.ExecContext(ctx, query,
		account.BankName, account.AccountHolder, account.IBAN, account.SWIFT,
		account.Currency, account.UpdatedAt, account.ID, account.TenantID)
	if err != nil {
		return fmt.Errorf("bankAccountRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *bankAccountRepo) SetDefault(ctx context.Context, tenantID, accountID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("bankAccountRepo.SetDefault begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"UPDATE bank_accounts SET is_default = false, updated_at = NOW() WHERE tenant_id = $1", tenantID); err != nil {
		return fmt.Errorf("bankAccountRepo.SetDefault clear: %w", err)
	}
	result, err := tx.ExecContext(ctx,
		"UPDATE bank_accounts SET is_default = true, updated_at = NOW() WHERE id = $1 AND tenant_id = $2",
		accountID, tenantID)
	if err != nil {
		return fmt.Errorf("bankAccountRepo.SetDefault: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("bankAccountRepo.SetDefault commit: %w", err)
	}
	return nil
}

func (r *bankAccountRepo) Delete(ctx context.Context, tenantID, accountID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM bank_accounts WHERE id = $1 AND tenant_id = $2", accountID, tenantID)
	if err != nil {
		return fmt.Errorf("bankAccountRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
