package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"aqari/internal/domain"
)

// BOM is the UTF-8 byte order mark, written ahead of the CSV body for Excel
// compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// chequeColumns defines the cheque register CSV header row.
var chequeColumns = []string{
	"Cheque Number",
	"Bank",
	"Lease Ref",
	"Amount",
	"Due Date",
	"Status",
	"Status Notes",
	"Deposited At",
	"Settled At",
	"Created At",
}

// violationColumns defines the violation summary CSV header row.
var violationColumns = []string{
	"Property",
	"Violations",
	"Fines Issued",
	"Fines Paid",
	"Fines Pending",
}

// complianceColumns defines the compliance overview CSV header row.
var complianceColumns = []string{
	"Requirement",
	"Category",
	"Scheduled",
	"Passed",
	"Failed",
}

// Writer wraps csv.Writer for exporting report rows as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w. The caller is responsible
// for writing BOM first if the consumer is Excel.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteChequeHeader writes the cheque register header row.
func (w *Writer) WriteChequeHeader() error {
	return w.csv.Write(chequeColumns)
}

// WriteCheques converts a batch of cheques to CSV rows and writes them.
func (w *Writer) WriteCheques(cheques []domain.PostDatedCheque) error {
	for i := range cheques {
		if err := w.csv.Write(chequeToRow(&cheques[i])); err != nil {
			return err
		}
	}
	return nil
}

// WriteViolationHeader writes the violation summary header row.
func (w *Writer) WriteViolationHeader() error {
	return w.csv.Write(violationColumns)
}

// WriteViolationSummary converts violation summary rows to CSV and writes them.
func (w *Writer) WriteViolationSummary(rows []domain.ViolationSummaryRow) error {
	for i := range rows {
		if err := w.csv.Write(violationToRow(&rows[i])); err != nil {
			return err
		}
	}
	return nil
}

// WriteComplianceHeader writes the compliance overview header row.
func (w *Writer) WriteComplianceHeader() error {
	return w.csv.Write(complianceColumns)
}

// WriteComplianceOverview converts compliance overview rows to CSV and writes them.
func (w *Writer) WriteComplianceOverview(rows []domain.ComplianceOverviewRow) error {
	for i := range rows {
		if err := w.csv.Write(complianceToRow(&rows[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func chequeToRow(c *domain.PostDatedCheque) []string {
	row := make([]string, len(chequeColumns))
	row[0] = c.ChequeNumber
	row[1] = c.BankName
	row[2] = c.LeaseRef
	row[3] = formatAmount(c.Amount)
	row[4] = c.DueDate.Format("2006-01-02")
	row[5] = string(c.Status)
	row[6] = c.StatusNotes
	row[7] = formatTime(c.DepositedAt)
	row[8] = formatTime(c.SettledAt)
	row[9] = c.CreatedAt.Format(time.RFC3339)
	return row
}

func violationToRow(r *domain.ViolationSummaryRow) []string {
	row := make([]string, len(violationColumns))
	row[0] = r.PropertyName
	row[1] = strconv.Itoa(r.Violations)
	row[2] = formatAmount(r.FinesIssued)
	row[3] = formatAmount(r.FinesPaid)
	row[4] = formatAmount(r.FinesPending)
	return row
}

func complianceToRow(r *domain.ComplianceOverviewRow) []string {
	row := make([]string, len(complianceColumns))
	row[0] = r.RequirementName
	row[1] = r.Category
	row[2] = strconv.Itoa(r.Scheduled)
	row[3] = strconv.Itoa(r.Passed)
	row[4] = strconv.Itoa(r.Failed)
	return row
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
