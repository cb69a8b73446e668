package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aqari/internal/domain"
)

func TestChequeWorkbook(t *testing.T) {
	cheques := []domain.PostDatedCheque{
		{
			ChequeNumber: "000777",
			BankName:     "ADCB",
			Amount:       15000,
			DueDate:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			Status:       domain.PdcStatusReceived,
			CreatedAt:    time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	f, err := ChequeWorkbook(cheques)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Cheques")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Cheque Number", rows[0][0])
	assert.Equal(t, "000777", rows[1][0])
	assert.Equal(t, "ADCB", rows[1][1])
	assert.Equal(t, "RECEIVED", rows[1][5])
}

func TestPortfolioWorkbook(t *testing.T) {
	kpis := &domain.PortfolioKpis{
		Properties:       3,
		Units:            120,
		PdcDueSoon:       5,
		FinesOutstanding: 8500,
	}
	aging := []domain.PdcAgingRow{
		{Bucket: "0-30", Count: 4, Amount: 60000},
		{Bucket: "overdue", Count: 1, Amount: 12000},
	}
	violations := []domain.ViolationSummaryRow{
		{PropertyName: "Marina Heights", Violations: 2, FinesIssued: 8500},
	}

	f, err := PortfolioWorkbook(kpis, aging, violations)
	require.NoError(t, err)
	defer f.Close()

	kpiRows, err := f.GetRows("KPIs")
	require.NoError(t, err)
	require.Len(t, kpiRows, 9)
	assert.Equal(t, []string{"Properties", "3"}, kpiRows[1][:2])

	agingRows, err := f.GetRows("Cheque Aging")
	require.NoError(t, err)
	require.Len(t, agingRows, 3)
	assert.Equal(t, "0-30", agingRows[1][0])
	assert.Equal(t, "83.3", agingRows[1][3])
	assert.Equal(t, "16.7", agingRows[2][3])

	violationRows, err := f.GetRows("Violations")
	require.NoError(t, err)
	require.Len(t, violationRows, 2)
	assert.Equal(t, "Marina Heights", violationRows[1][0])
}
