package domain

// UserRole defines the role hierarchy within a tenant.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleMember  UserRole = "member"
)

// PdcStatus represents the lifecycle state of a post-dated cheque.
// Enum values are SCREAMING_SNAKE on the wire; the form layer preserves
// the original API contract's convention.
type PdcStatus string

const (
	PdcStatusReceived  PdcStatus = "RECEIVED"
	PdcStatusDeposited PdcStatus = "DEPOSITED"
	PdcStatusCleared   PdcStatus = "CLEARED"
	PdcStatusBounced   PdcStatus = "BOUNCED"
	PdcStatusReplaced  PdcStatus = "REPLACED"
	PdcStatusWithdrawn PdcStatus = "WITHDRAWN"
	PdcStatusCancelled PdcStatus = "CANCELLED"
)

// InspectionStatus represents the scheduling state of an inspection.
type InspectionStatus string

const (
	InspectionStatusScheduled  InspectionStatus = "SCHEDULED"
	InspectionStatusInProgress InspectionStatus = "IN_PROGRESS"
	InspectionStatusPassed     InspectionStatus = "PASSED"
	InspectionStatusFailed     InspectionStatus = "FAILED"
	InspectionStatusCancelled  InspectionStatus = "CANCELLED"
)

// Terminal reports whether the status demands a recorded result.
func (s InspectionStatus) Terminal() bool {
	return s == InspectionStatusPassed || s == InspectionStatusFailed
}

// InspectionResult is the recorded outcome of a completed inspection.
type InspectionResult string

const (
	InspectionResultPassed      InspectionResult = "PASSED"
	InspectionResultFailed      InspectionResult = "FAILED"
	InspectionResultPartialPass InspectionResult = "PARTIAL_PASS"
)

// RequiresIssues reports whether the result demands a non-empty issues list.
func (r InspectionResult) RequiresIssues() bool {
	return r == InspectionResultFailed || r == InspectionResultPartialPass
}

// FineStatus represents the payment state of a violation fine.
type FineStatus string

const (
	FineStatusPending  FineStatus = "PENDING"
	FineStatusPaid     FineStatus = "PAID"
	FineStatusWaived   FineStatus = "WAIVED"
	FineStatusDisputed FineStatus = "DISPUTED"
)

// RefundMethod is how a checkout security-deposit refund is paid out.
type RefundMethod string

const (
	RefundMethodBankTransfer RefundMethod = "BANK_TRANSFER"
	RefundMethodCash         RefundMethod = "CASH"
	RefundMethodCheque       RefundMethod = "CHEQUE"
)

// NoticeReason is the stated reason for a tenant's move-out notice.
type NoticeReason string

const (
	NoticeReasonEndOfTerm  NoticeReason = "END_OF_TERM"
	NoticeReasonRelocation NoticeReason = "RELOCATION"
	NoticeReasonPurchase   NoticeReason = "PURCHASE"
	NoticeReasonOther      NoticeReason = "OTHER"
)

// ComplianceCategory classifies a compliance requirement.
type ComplianceCategory string

const (
	ComplianceCategoryFireSafety   ComplianceCategory = "FIRE_SAFETY"
	ComplianceCategoryElevator     ComplianceCategory = "ELEVATOR"
	ComplianceCategoryHVAC         ComplianceCategory = "HVAC"
	ComplianceCategoryElectrical   ComplianceCategory = "ELECTRICAL"
	ComplianceCategoryPlumbing     ComplianceCategory = "PLUMBING"
	ComplianceCategoryCivilDefense ComplianceCategory = "CIVIL_DEFENSE"
	ComplianceCategoryGeneral      ComplianceCategory = "GENERAL"
)

// ComplianceFrequency is how often a requirement recurs.
type ComplianceFrequency string

const (
	ComplianceFrequencyMonthly    ComplianceFrequency = "MONTHLY"
	ComplianceFrequencyQuarterly  ComplianceFrequency = "QUARTERLY"
	ComplianceFrequencySemiAnnual ComplianceFrequency = "SEMI_ANNUAL"
	ComplianceFrequencyAnnual     ComplianceFrequency = "ANNUAL"
)

// ComplianceStatus toggles a requirement on or off.
type ComplianceStatus string

const (
	ComplianceStatusActive   ComplianceStatus = "ACTIVE"
	ComplianceStatusInactive ComplianceStatus = "INACTIVE"
)

// AssetCondition grades the physical state of an asset.
type AssetCondition string

const (
	AssetConditionNew  AssetCondition = "NEW"
	AssetConditionGood AssetCondition = "GOOD"
	AssetConditionFair AssetCondition = "FAIR"
	AssetConditionPoor AssetCondition = "POOR"
)

// VendorCategory classifies a vendor's trade.
type VendorCategory string

const (
	VendorCategoryMaintenance VendorCategory = "MAINTENANCE"
	VendorCategoryCleaning    VendorCategory = "CLEANING"
	VendorCategorySecurity    VendorCategory = "SECURITY"
	VendorCategoryLandscaping VendorCategory = "LANDSCAPING"
	VendorCategoryPestControl VendorCategory = "PEST_CONTROL"
	VendorCategoryOther       VendorCategory = "OTHER"
)

// AnnouncementAudience selects who sees an announcement.
type AnnouncementAudience string

const (
	AudienceAll     AnnouncementAudience = "ALL"
	AudienceTenants AnnouncementAudience = "TENANTS"
	AudienceOwners  AnnouncementAudience = "OWNERS"
	AudienceVendors AnnouncementAudience = "VENDORS"
)

// AnnouncementStatus represents the publication state of an announcement.
type AnnouncementStatus string

const (
	AnnouncementStatusDraft     AnnouncementStatus = "DRAFT"
	AnnouncementStatusPublished AnnouncementStatus = "PUBLISHED"
	AnnouncementStatusArchived  AnnouncementStatus = "ARCHIVED"
)

// PropertyType classifies a managed property.
type PropertyType string

const (
	PropertyTypeApartment PropertyType = "APARTMENT"
	PropertyTypeVilla     PropertyType = "VILLA"
	PropertyTypeOffice    PropertyType = "OFFICE"
	PropertyTypeRetail    PropertyType = "RETAIL"
	PropertyTypeWarehouse PropertyType = "WAREHOUSE"
)

// RuleKind classifies a validation rule. Format, range, and cross-field
// failures are reported identically: a field path plus a message.
type RuleKind string

const (
	RuleKindRequired   RuleKind = "required"
	RuleKindFormat     RuleKind = "format"
	RuleKindRange      RuleKind = "range"
	RuleKindCrossField RuleKind = "cross_field"
)

// RuleSeverity distinguishes blocking errors from advisory warnings.
type RuleSeverity string

const (
	RuleSeverityError   RuleSeverity = "error"
	RuleSeverityWarning RuleSeverity = "warning"
)

// FileType represents the allowed attachment types for upload.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
	"image/jpeg":      FileTypeJPG,
	"image/png":       FileTypePNG,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
	"png":  FileTypePNG,
}

// FileContentTypes maps FileType to the canonical MIME type stored with the
// object.
var FileContentTypes = map[FileType]string{
	FileTypePDF: "application/pdf",
	FileTypeJPG: "image/jpeg",
	FileTypePNG: "image/png",
}
