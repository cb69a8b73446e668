package forms

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"aqari/internal/domain"
	"aqari/internal/validator"
)

// AssetForm is a tracked piece of equipment as submitted. PurchaseCost
// accepts a number or numeric string; a failed coercion reads as null.
type AssetForm struct {
	PropertyID     string                `json:"property_id"`
	Name           string                `json:"name"`
	SerialNumber   string                `json:"serial_number"`
	PurchaseCost   validator.FlexNumber  `json:"purchase_cost"`
	Condition      domain.AssetCondition `json:"condition"`
	WarrantyExpiry string                `json:"warranty_expiry"`
}

var assetConditions = []domain.AssetCondition{
	domain.AssetConditionNew,
	domain.AssetConditionGood,
	domain.AssetConditionFair,
	domain.AssetConditionPoor,
}

// AssetSchema validates an asset form.
var AssetSchema = validator.Schema[AssetForm]{
	Entity: "asset",
	Fields: []validator.Rule[AssetForm]{
		{
			Key: "req.asset.property", Name: "Required: Property", Kind: domain.RuleKindRequired,
			Check: func(f *AssetForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("property_id", f.PropertyID, "Required: Property"))
			},
		},
		{
			Key: "fmt.asset.property", Name: "Format: Property ID", Kind: domain.RuleKindFormat,
			Check: func(f *AssetForm) []validator.ValidationResult {
				return one(uuidCheck("property_id", f.PropertyID, "Format: Property ID"))
			},
		},
		{
			Key: "req.asset.name", Name: "Required: Name", Kind: domain.RuleKindRequired,
			Check: func(f *AssetForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("name", f.Name, "Required: Name"))
			},
		},
		{
			Key: "len.asset.name", Name: "Length: Name", Kind: domain.RuleKindRange,
			Check: func(f *AssetForm) []validator.ValidationResult {
				return one(validator.LengthCheck("name", f.Name, 2, 120, "Length: Name"))
			},
		},
		{
			Key: "len.asset.serial", Name: "Length: Serial Number", Kind: domain.RuleKindRange,
			Check: func(f *AssetForm) []validator.ValidationResult {
				return one(validator.LengthCheck("serial_number", f.SerialNumber, 0, 80, "Length: Serial Number"))
			},
		},
		{
			Key: "range.asset.cost", Name: "Range: Purchase Cost", Kind: domain.RuleKindRange,
			Check: func(f *AssetForm) []validator.ValidationResult {
				return one(validator.RangeCheck("purchase_cost", f.PurchaseCost.Float(), 0, math.MaxFloat64, false, "Range: Purchase Cost"))
			},
		},
		{
			Key: "enum.asset.condition", Name: "Enum: Condition", Kind: domain.RuleKindFormat,
			Check: func(f *AssetForm) []validator.ValidationResult {
				return one(validator.EnumCheck("condition", f.Condition, assetConditions, "Enum: Condition"))
			},
		},
		{
			Key: "fmt.asset.warranty", Name: "Format: Warranty Expiry", Kind: domain.RuleKindFormat,
			Check: func(f *AssetForm) []validator.ValidationResult {
				return one(validator.DateCheck("warranty_expiry", f.WarrantyExpiry, "Format: Warranty Expiry"))
			},
		},
	},
}

// Validate runs the asset schema.
func (f *AssetForm) Validate() *validator.Report {
	return AssetSchema.Validate(f)
}

// ToRecord maps the form onto a domain record. Call only after validation.
func (f *AssetForm) ToRecord() domain.Asset {
	rec := domain.Asset{
		Name:         strings.TrimSpace(f.Name),
		SerialNumber: strings.TrimSpace(f.SerialNumber),
		PurchaseCost: f.PurchaseCost.Float(),
		Condition:    f.Condition,
	}
	if id, err := uuid.Parse(f.PropertyID); err == nil {
		rec.PropertyID = id
	}
	if f.WarrantyExpiry != "" {
		if d, err := validator.ParseDate(f.WarrantyExpiry); err == nil {
			rec.WarrantyExpiry = &d
		}
	}
	return rec
}

// DefaultAssetForm returns create-mode initial values: condition GOOD.
func DefaultAssetForm() AssetForm {
	return AssetForm{Condition: domain.AssetConditionGood}
}

// AssetFormFromRecord maps an existing asset into form shape.
func AssetFormFromRecord(a *domain.Asset) AssetForm {
	f := AssetForm{
		PropertyID:   a.PropertyID.String(),
		Name:         a.Name,
		SerialNumber: a.SerialNumber,
		Condition:    a.Condition,
	}
	if a.PurchaseCost != nil {
		f.PurchaseCost = validator.Num(*a.PurchaseCost)
	}
	if a.WarrantyExpiry != nil {
		f.WarrantyExpiry = a.WarrantyExpiry.Format(validator.DateLayout)
	}
	if f.Condition == "" {
		f.Condition = domain.AssetConditionGood
	}
	return f
}
