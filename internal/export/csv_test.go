package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aqari/internal/domain"
)

func TestWriteChequeHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteChequeHeader())
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Len(t, row, 10)
	assert.Equal(t, "Cheque Number", row[0])
	assert.Equal(t, "Created At", row[9])
}

func TestWriteCheques(t *testing.T) {
	deposited := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	cheques := []domain.PostDatedCheque{
		{
			ChequeNumber: "000123",
			BankName:     "Emirates NBD",
			LeaseRef:     "L-2026-014",
			Amount:       42500,
			DueDate:      time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			Status:       domain.PdcStatusDeposited,
			DepositedAt:  &deposited,
			CreatedAt:    time.Date(2026, 1, 10, 8, 30, 0, 0, time.UTC),
		},
		{
			ChequeNumber: "000124",
			BankName:     "FAB",
			Amount:       9999.5,
			DueDate:      time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
			Status:       domain.PdcStatusReceived,
			CreatedAt:    time.Date(2026, 1, 10, 8, 31, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteChequeHeader())
	require.NoError(t, w.WriteCheques(cheques))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	first := rows[1]
	assert.Equal(t, "000123", first[0])
	assert.Equal(t, "Emirates NBD", first[1])
	assert.Equal(t, "L-2026-014", first[2])
	assert.Equal(t, "42500.00", first[3])
	assert.Equal(t, "2026-03-01", first[4])
	assert.Equal(t, "DEPOSITED", first[5])
	assert.Equal(t, "2026-03-02T10:00:00Z", first[7])
	assert.Empty(t, first[8])

	second := rows[2]
	assert.Equal(t, "9999.50", second[3])
	assert.Empty(t, second[7])
	assert.Empty(t, second[8])
}

func TestWriteViolationSummary(t *testing.T) {
	rows := []domain.ViolationSummaryRow{
		{
			PropertyName: "Marina Heights",
			Violations:   4,
			FinesIssued:  12000,
			FinesPaid:    5000,
			FinesPending: 7000,
		},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteViolationHeader())
	require.NoError(t, w.WriteViolationSummary(rows))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	out, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, []string{"Marina Heights", "4", "12000.00", "5000.00", "7000.00"}, out[1])
}

func TestBOMPrefix(t *testing.T) {
	var buf bytes.Buffer
	_, err := buf.Write(BOM)
	require.NoError(t, err)
	w := NewWriter(&buf)
	require.NoError(t, w.WriteChequeHeader())
	w.Flush()

	raw := buf.Bytes()
	require.True(t, len(raw) > 3)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, raw[:3])
}

func TestWriteComplianceOverview(t *testing.T) {
	rows := []domain.ComplianceOverviewRow{
		{RequirementName: "Civil Defense Certificate", Category: "CIVIL_DEFENSE", Scheduled: 4, Passed: 3, Failed: 1},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteComplianceHeader())
	require.NoError(t, w.WriteComplianceOverview(rows))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"Requirement", "Category", "Scheduled", "Passed", "Failed"}, records[0])
	assert.Equal(t, []string{"Civil Defense Certificate", "CIVIL_DEFENSE", "4", "3", "1"}, records[1])
}
