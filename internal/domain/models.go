package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tenant represents an isolated property-management company.
type Tenant struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// User represents an authenticated user belonging to a tenant.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	TenantID     uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Property represents a managed building or community.
type Property struct {
	ID        uuid.UUID    `db:"id" json:"id"`
	TenantID  uuid.UUID    `db:"tenant_id" json:"tenant_id"`
	Name      string       `db:"name" json:"name"`
	Type      PropertyType `db:"type" json:"type"`
	Address   string       `db:"address" json:"address"`
	City      string       `db:"city" json:"city"`
	UnitCount int          `db:"unit_count" json:"unit_count"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt time.Time    `db:"updated_at" json:"updated_at"`
}

// CompanyProfile holds the tenant's legal and contact details shown on
// settings pages and printed on statements.
type CompanyProfile struct {
	TenantID  uuid.UUID `db:"tenant_id" json:"tenant_id"`
	LegalName string    `db:"legal_name" json:"legal_name"`
	Address   string    `db:"address" json:"address"`
	City      string    `db:"city" json:"city"`
	Country   string    `db:"country" json:"country"`
	TRN       string    `db:"trn" json:"trn"`
	Phone     string    `db:"phone" json:"phone"`
	Email     string    `db:"email" json:"email"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// BankAccount is a payout account configured under settings.
type BankAccount struct {
	ID            uuid.UUID `db:"id" json:"id"`
	TenantID      uuid.UUID `db:"tenant_id" json:"tenant_id"`
	BankName      string    `db:"bank_name" json:"bank_name"`
	AccountHolder string    `db:"account_holder" json:"account_holder"`
	IBAN          string    `db:"iban" json:"iban"`
	SWIFT         string    `db:"swift" json:"swift"`
	Currency      string    `db:"currency" json:"currency"`
	IsDefault     bool      `db:"is_default" json:"is_default"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// PostDatedCheque tracks a rent cheque through its deposit lifecycle.
type PostDatedCheque struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	TenantID     uuid.UUID  `db:"tenant_id" json:"tenant_id"`
	PropertyID   uuid.UUID  `db:"property_id" json:"property_id"`
	LeaseRef     string     `db:"lease_ref" json:"lease_ref"`
	ChequeNumber string     `db:"cheque_number" json:"cheque_number"`
	BankName     string     `db:"bank_name" json:"bank_name"`
	Amount       float64    `db:"amount" json:"amount"`
	DueDate      time.Time  `db:"due_date" json:"due_date"`
	Status       PdcStatus  `db:"status" json:"status"`
	StatusNotes  string     `db:"status_notes" json:"status_notes"`
	DepositedAt  *time.Time `db:"deposited_at" json:"deposited_at"`
	SettledAt    *time.Time `db:"settled_at" json:"settled_at"`
	CreatedBy    uuid.UUID  `db:"created_by" json:"created_by"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// ComplianceRequirement is a recurring obligation (civil defense cert,
// elevator inspection, ...) applied to some or all properties.
// ApplicableProperties nil means "all properties".
type ComplianceRequirement struct {
	ID                   uuid.UUID           `db:"id" json:"id"`
	TenantID             uuid.UUID           `db:"tenant_id" json:"tenant_id"`
	Name                 string              `db:"name" json:"name"`
	Category             ComplianceCategory  `db:"category" json:"category"`
	Frequency            ComplianceFrequency `db:"frequency" json:"frequency"`
	ApplicableProperties []uuid.UUID         `db:"-" json:"applicable_properties"`
	Status               ComplianceStatus    `db:"status" json:"status"`
	CreatedBy            uuid.UUID           `db:"created_by" json:"created_by"`
	CreatedAt            time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time           `db:"updated_at" json:"updated_at"`
}

// Inspection is a scheduled visit against a property, optionally tied to a
// compliance requirement.
type Inspection struct {
	ID            uuid.UUID        `db:"id" json:"id"`
	TenantID      uuid.UUID        `db:"tenant_id" json:"tenant_id"`
	PropertyID    uuid.UUID        `db:"property_id" json:"property_id"`
	RequirementID *uuid.UUID       `db:"requirement_id" json:"requirement_id"`
	ScheduledDate time.Time        `db:"scheduled_date" json:"scheduled_date"`
	Inspector     string           `db:"inspector" json:"inspector"`
	Status        InspectionStatus `db:"status" json:"status"`
	Result        *InspectionResult `db:"result" json:"result"`
	IssuesFound   string           `db:"issues_found" json:"issues_found"`
	CompletedAt   *time.Time       `db:"completed_at" json:"completed_at"`
	CreatedBy     uuid.UUID        `db:"created_by" json:"created_by"`
	CreatedAt     time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time        `db:"updated_at" json:"updated_at"`
}

// Violation records a breach observed on a property, with an optional fine.
type Violation struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	TenantID      uuid.UUID  `db:"tenant_id" json:"tenant_id"`
	PropertyID    uuid.UUID  `db:"property_id" json:"property_id"`
	ViolationDate time.Time  `db:"violation_date" json:"violation_date"`
	Description   string     `db:"description" json:"description"`
	FineAmount    *float64   `db:"fine_amount" json:"fine_amount"`
	FineStatus    FineStatus `db:"fine_status" json:"fine_status"`
	CreatedBy     uuid.UUID  `db:"created_by" json:"created_by"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

// CheckoutCase is a tenant move-out: notice, inspection, and deposit refund.
type CheckoutCase struct {
	ID              uuid.UUID     `db:"id" json:"id"`
	TenantID        uuid.UUID     `db:"tenant_id" json:"tenant_id"`
	PropertyID      uuid.UUID     `db:"property_id" json:"property_id"`
	UnitRef         string        `db:"unit_ref" json:"unit_ref"`
	NoticeDate      time.Time     `db:"notice_date" json:"notice_date"`
	MoveOutDate     time.Time     `db:"move_out_date" json:"move_out_date"`
	InspectionDate  *time.Time    `db:"inspection_date" json:"inspection_date"`
	NoticeReason    NoticeReason  `db:"notice_reason" json:"notice_reason"`
	ReasonNotes     string        `db:"reason_notes" json:"reason_notes"`
	RefundMethod    *RefundMethod `db:"refund_method" json:"refund_method"`
	RefundBankName  string        `db:"refund_bank_name" json:"refund_bank_name"`
	RefundHolder    string        `db:"refund_holder" json:"refund_holder"`
	RefundIBAN      string        `db:"refund_iban" json:"refund_iban"`
	RefundAmount    *float64      `db:"refund_amount" json:"refund_amount"`
	RefundIssuedAt  *time.Time    `db:"refund_issued_at" json:"refund_issued_at"`
	CreatedBy       uuid.UUID     `db:"created_by" json:"created_by"`
	CreatedAt       time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at" json:"updated_at"`
}

// Vendor is a contracted service provider.
type Vendor struct {
	ID            uuid.UUID      `db:"id" json:"id"`
	TenantID      uuid.UUID      `db:"tenant_id" json:"tenant_id"`
	Name          string         `db:"name" json:"name"`
	Category      VendorCategory `db:"category" json:"category"`
	ContactPhone  string         `db:"contact_phone" json:"contact_phone"`
	ContactEmail  string         `db:"contact_email" json:"contact_email"`
	TRN           string         `db:"trn" json:"trn"`
	LicenseNumber string         `db:"license_number" json:"license_number"`
	IsActive      bool           `db:"is_active" json:"is_active"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updated_at"`
}

// Asset is a tracked piece of equipment installed at a property.
type Asset struct {
	ID             uuid.UUID      `db:"id" json:"id"`
	TenantID       uuid.UUID      `db:"tenant_id" json:"tenant_id"`
	PropertyID     uuid.UUID      `db:"property_id" json:"property_id"`
	Name           string         `db:"name" json:"name"`
	SerialNumber   string         `db:"serial_number" json:"serial_number"`
	PurchaseCost   *float64       `db:"purchase_cost" json:"purchase_cost"`
	Condition      AssetCondition `db:"condition" json:"condition"`
	WarrantyExpiry *time.Time     `db:"warranty_expiry" json:"warranty_expiry"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updated_at"`
}

// Announcement is a broadcast message to a tenant audience.
type Announcement struct {
	ID        uuid.UUID            `db:"id" json:"id"`
	TenantID  uuid.UUID            `db:"tenant_id" json:"tenant_id"`
	Title     string               `db:"title" json:"title"`
	Body      string               `db:"body" json:"body"`
	Audience  AnnouncementAudience `db:"audience" json:"audience"`
	Status    AnnouncementStatus   `db:"status" json:"status"`
	PublishAt *time.Time           `db:"publish_at" json:"publish_at"`
	ExpiresAt *time.Time           `db:"expires_at" json:"expires_at"`
	CreatedBy uuid.UUID            `db:"created_by" json:"created_by"`
	CreatedAt time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt time.Time            `db:"updated_at" json:"updated_at"`
}

// Attachment stores metadata about an uploaded file (inspection photos,
// cheque scans, licence copies).
type Attachment struct {
	ID           uuid.UUID `db:"id" json:"id"`
	TenantID     uuid.UUID `db:"tenant_id" json:"tenant_id"`
	OwnerID      uuid.UUID `db:"owner_id" json:"owner_id"`
	OwnerKind    string    `db:"owner_kind" json:"owner_kind"`
	FileName     string    `db:"file_name" json:"file_name"`
	OriginalName string    `db:"original_name" json:"original_name"`
	FileType     FileType  `db:"file_type" json:"file_type"`
	FileSize     int64     `db:"file_size" json:"file_size"`
	S3Bucket     string    `db:"s3_bucket" json:"s3_bucket"`
	S3Key        string    `db:"s3_key" json:"s3_key"`
	ContentType  string    `db:"content_type" json:"content_type"`
	UploadedBy   uuid.UUID `db:"uploaded_by" json:"uploaded_by"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
