package service

import (
	"context"

	"github.com/google/uuid"

	"aqari/internal/domain"
	"aqari/internal/port"
	"aqari/internal/validator/forms"
)

// SettingsService defines the tenant settings contract: the single company
// profile row plus the payout bank accounts.
type SettingsService interface {
	GetCompanyProfile(ctx context.Context, tenantID uuid.UUID) (*domain.CompanyProfile, error)
	SaveCompanyProfile(ctx context.Context, tenantID uuid.UUID, form forms.CompanyProfileForm) (*domain.CompanyProfile, error)

	CreateBankAccount(ctx context.Context, tenantID uuid.UUID, form forms.BankAccountForm) (*domain.BankAccount, error)
	GetBankAccount(ctx context.Context, tenantID, accountID uuid.UUID) (*domain.BankAccount, error)
	ListBankAccounts(ctx context.Context, tenantID uuid.UUID) ([]domain.BankAccount, error)
	UpdateBankAccount(ctx context.Context, tenantID, accountID uuid.UUID, form forms.BankAccountForm) (*domain.BankAccount, error)
	SetDefaultBankAccount(ctx context.Context, tenantID, accountID uuid.UUID) error
	DeleteBankAccount(ctx context.Context, tenantID, accountID uuid.UUID) error
}

type settingsService struct {
	profiles port.CompanyProfileRepository
	accounts port.BankAccountRepository
}

// NewSettingsService creates a new SettingsService implementation.
func NewSettingsService(
	profiles port.CompanyProfileRepository,
	accounts port.BankAccountRepository,
) SettingsService {
	return &settingsService{profiles: profiles, accounts: accounts}
}

func (s *settingsService) GetCompanyProfile(ctx context.Context, tenantID uuid.UUID) (*domain.CompanyProfile, error) {
	return s.profiles.Get(ctx, tenantID)
}

// SaveCompanyProfile validates and upserts the profile. The stored values are
// the normalized ones: trimmed fields, lowercased email.
func (s *settingsService) SaveCompanyProfile(ctx context.Context, tenantID uuid.UUID, form forms.CompanyProfileForm) (*domain.CompanyProfile, error) {
	if err := form.Validate().Err(); err != nil {
		return nil, err
	}

	req := form.ToRequest()
	profile := &domain.CompanyProfile{
		TenantID:  tenantID,
		LegalName: req.LegalName,
		Address:   req.Address,
		City:      req.City,
		Country:   req.Country,
		TRN:       req.TRN,
		Phone:     req.Phone,
		Email:     req.Email,
	}
	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *settingsService) CreateBankAccount(ctx context.Context, tenantID uuid.UUID, form forms.BankAccountForm) (*domain.BankAccount, error) {
	if err := form.Validate().Err(); err != nil {
		return nil, err
	}

	rec := form.ToRecord()
	rec.TenantID = tenantID
	if err := s.accounts.Create(ctx, &rec); err != nil {
		return nil, err
	}
	if rec.IsDefault {
		if err := s.accounts.SetDefault(ctx, tenantID, rec.ID); err != nil {
			return nil, err
		}
	}
	return &rec, nil
}

func (s *settingsService) GetBankAccount(ctx context.Context, tenantID, accountID uuid.UUID) (*domain.BankAccount, error) {
	return s.accounts.GetByID(ctx, tenantID, accountID)
}

func (s *settingsService) ListBankAccounts(ctx context.Context, tenantID uuid.UUID) ([]domain.BankAccount, error) {
	return s.accounts.ListByTenant(ctx, tenantID)
}

func (s *settingsService) UpdateBankAccount(ctx context.Context, tenantID, accountID uuid.UUID, form forms.BankAccountForm) (*domain.BankAccount, error) {
	existing, err := s.accounts.GetByID(ctx, tenantID, accountID)
	if err != nil {
		return nil, err
	}
	if err := form.Validate().Err(); err != nil {
		return nil, err
	}

	rec := form.ToRecord()
	rec.ID = existing.ID
	rec.TenantID = existing.TenantID
	rec.IsDefault = existing.IsDefault
	rec.CreatedAt = existing.CreatedAt
	if err := s.accounts.Update(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *settingsService) SetDefaultBankAccount(ctx context.Context, tenantID, accountID uuid.UUID) error {
	return s.accounts.SetDefault(ctx, tenantID, accountID)
}

func (s *settingsService) DeleteBankAccount(ctx context.Context, tenantID, accountID uuid.UUID) error {
	return s.accounts.Delete(ctx, tenantID, accountID)
}
