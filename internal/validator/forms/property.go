package forms

import (
	"strings"

	"aqari/internal/domain"
	"aqari/internal/validator"
)

// PropertyForm is a managed building or community as submitted. UnitCount
// accepts a number or numeric string.
type PropertyForm struct {
	Name      string               `json:"name"`
	Type      domain.PropertyType  `json:"type"`
	Address   string               `json:"address"`
	City      string               `json:"city"`
	UnitCount validator.FlexNumber `json:"unit_count"`
}

var propertyTypes = []domain.PropertyType{
	domain.PropertyTypeApartment,
	domain.PropertyTypeVilla,
	domain.PropertyTypeOffice,
	domain.PropertyTypeRetail,
	domain.PropertyTypeWarehouse,
}

// PropertySchema validates a property form.
var PropertySchema = validator.Schema[PropertyForm]{
	Entity: "property",
	Fields: []validator.Rule[PropertyForm]{
		{
			Key: "req.property.name", Name: "Required: Name", Kind: domain.RuleKindRequired,
			Check: func(f *PropertyForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("name", f.Name, "Required: Name"))
			},
		},
		{
			Key: "len.property.name", Name: "Length: Name", Kind: domain.RuleKindRange,
			Check: func(f *PropertyForm) []validator.ValidationResult {
				return one(validator.LengthCheck("name", f.Name, 2, 120, "Length: Name"))
			},
		},
		{
			Key: "req.property.type", Name: "Required: Type", Kind: domain.RuleKindRequired,
			Check: func(f *PropertyForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("type", string(f.Type), "Required: Type"))
			},
		},
		{
			Key: "enum.property.type", Name: "Enum: Type", Kind: domain.RuleKindFormat,
			Check: func(f *PropertyForm) []validator.ValidationResult {
				return one(validator.EnumCheck("type", f.Type, propertyTypes, "Enum: Type"))
			},
		},
		{
			Key: "req.property.address", Name: "Required: Address", Kind: domain.RuleKindRequired,
			Check: func(f *PropertyForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("address", f.Address, "Required: Address"))
			},
		},
		{
			Key: "req.property.city", Name: "Required: City", Kind: domain.RuleKindRequired,
			Check: func(f *PropertyForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("city", f.City, "Required: City"))
			},
		},
		{
			Key: "range.property.units", Name: "Range: Unit Count", Kind: domain.RuleKindRange,
			Check: func(f *PropertyForm) []validator.ValidationResult {
				return one(validator.RangeCheck("unit_count", f.UnitCount.Float(), 1, 10000, true, "Range: Unit Count"))
			},
		},
	},
}

// Validate runs the property schema.
func (f *PropertyForm) Validate() *validator.Report {
	return PropertySchema.Validate(f)
}

// ToRecord maps the form onto a domain record. Call only after validation.
func (f *PropertyForm) ToRecord() domain.Property {
	rec := domain.Property{
		Name:    strings.TrimSpace(f.Name),
		Type:    f.Type,
		Address: strings.TrimSpace(f.Address),
		City:    strings.TrimSpace(f.City),
	}
	if v := f.UnitCount.Float(); v != nil {
		rec.UnitCount = int(*v)
	}
	return rec
}

// DefaultPropertyForm returns create-mode initial values.
func DefaultPropertyForm() PropertyForm {
	return PropertyForm{
		Type:      domain.PropertyTypeApartment,
		UnitCount: validator.Num(1),
	}
}

// PropertyFormFromRecord maps an existing property into form shape.
func PropertyFormFromRecord(p *domain.Property) PropertyForm {
	f := PropertyForm{
		Name:      p.Name,
		Type:      p.Type,
		Address:   p.Address,
		City:      p.City,
		UnitCount: validator.Num(float64(p.UnitCount)),
	}
	if f.Type == "" {
		f.Type = domain.PropertyTypeApartment
	}
	return f
}
