package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"aqari/internal/domain"
	"aqari/internal/service"
	"aqari/internal/validator/forms"
	"aqari/mocks"
)

func validCompanyProfileForm() forms.CompanyProfileForm {
	return forms.CompanyProfileForm{
		LegalName: "  Gulf Property Management LLC ",
		Address:   "Office 1204, Marina Plaza",
		City:      "Dubai",
		Country:   "AE",
		TRN:       "100123456789012",
		Phone:     "+971501234567",
		Email:     "Finance@Gulf.AE",
	}
}

func TestSettingsService_SaveCompanyProfile_Normalizes(t *testing.T) {
	profiles := new(mocks.MockCompanyProfileRepo)
	accounts := new(mocks.MockBankAccountRepo)
	svc := service.NewSettingsService(profiles, accounts)

	tenantID := uuid.New()
	profiles.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.CompanyProfile")).Return(nil)

	saved, err := svc.SaveCompanyProfile(context.Background(), tenantID, validCompanyProfileForm())
	require.NoError(t, err)
	assert.Equal(t, tenantID, saved.TenantID)
	assert.Equal(t, "Gulf Property Management LLC", saved.LegalName)
	assert.Equal(t, "finance@gulf.ae", saved.Email)
	profiles.AssertExpectations(t)
}

func TestSettingsService_SaveCompanyProfile_RejectsBadTRN(t *testing.T) {
	svc := service.NewSettingsService(new(mocks.MockCompanyProfileRepo), new(mocks.MockBankAccountRepo))

	form := validCompanyProfileForm()
	form.TRN = "200123456789012" // wrong prefix

	_, err := svc.SaveCompanyProfile(context.Background(), uuid.New(), form)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "trn")
}

func TestSettingsService_CreateBankAccount_SetsDefault(t *testing.T) {
	accounts := new(mocks.MockBankAccountRepo)
	svc := service.NewSettingsService(new(mocks.MockCompanyProfileRepo), accounts)

	tenantID := uuid.New()
	accounts.On("Create", mock.Anything, mock.AnythingOfType("*domain.BankAccount")).Return(nil)
	accounts.On("SetDefault", mock.Anything, tenantID, mock.Anything).Return(nil)

	form := forms.BankAccountForm{
		BankName:      "Emirates NBD",
		AccountHolder: "Gulf Property Management LLC",
		IBAN:          "ae070331234567890123456",
		Currency:      "aed",
		IsDefault:     true,
	}
	account, err := svc.CreateBankAccount(context.Background(), tenantID, form)
	require.NoError(t, err)
	assert.Equal(t, "AE070331234567890123456", account.IBAN)
	assert.Equal(t, "AED", account.Currency)
	accounts.AssertExpectations(t)
}

func TestSettingsService_CreateBankAccount_NonDefaultSkipsSetDefault(t *testing.T) {
	accounts := new(mocks.MockBankAccountRepo)
	svc := service.NewSettingsService(new(mocks.MockCompanyProfileRepo), accounts)

	accounts.On("Create", mock.Anything, mock.AnythingOfType("*domain.BankAccount")).Return(nil)

	form := forms.BankAccountForm{
		BankName:      "FAB",
		AccountHolder: "Gulf Property Management LLC",
		IBAN:          "AE070331234567890123456",
	}
	_, err := svc.CreateBankAccount(context.Background(), uuid.New(), form)
	require.NoError(t, err)
	accounts.AssertNotCalled(t, "SetDefault", mock.Anything, mock.Anything, mock.Anything)
}

func TestSettingsService_CreateBankAccount_BadSWIFTIsOnlyAWarning(t *testing.T) {
	accounts := new(mocks.MockBankAccountRepo)
	svc := service.NewSettingsService(new(mocks.MockCompanyProfileRepo), accounts)

	accounts.On("Create", mock.Anything, mock.AnythingOfType("*domain.BankAccount")).Return(nil)

	form := forms.BankAccountForm{
		BankName:      "FAB",
		AccountHolder: "Gulf Property Management LLC",
		IBAN:          "AE070331234567890123456",
		SWIFT:         "BAD",
	}
	_, err := svc.CreateBankAccount(context.Background(), uuid.New(), form)
	assert.NoError(t, err)
}

func TestSettingsService_UpdateBankAccount_PreservesDefaultFlag(t *testing.T) {
	accounts := new(mocks.MockBankAccountRepo)
	svc := service.NewSettingsService(new(mocks.MockCompanyProfileRepo), accounts)

	tenantID := uuid.New()
	accountID := uuid.New()
	existing := &domain.BankAccount{ID: accountID, TenantID: tenantID, IsDefault: true}

	accounts.On("GetByID", mock.Anything, tenantID, accountID).Return(existing, nil)
	accounts.On("Update", mock.Anything, mock.AnythingOfType("*domain.BankAccount")).Return(nil)

	form := forms.BankAccountForm{
		BankName:      "Mashreq",
		AccountHolder: "Gulf Property Management LLC",
		IBAN:          "AE070331234567890123456",
		IsDefault:     false, // the flag is managed through SetDefault, not the form
	}
	updated, err := svc.UpdateBankAccount(context.Background(), tenantID, accountID, form)
	require.NoError(t, err)
	assert.True(t, updated.IsDefault)
	assert.Equal(t, accountID, updated.ID)
}
