package forms

import (
	"aqari/internal/domain"
	"aqari/internal/validator"
	"strings"
)

// AnnouncementForm is a broadcast message as submitted from the composer.
type AnnouncementForm struct {
	Title     string                      `json:"title"`
	Body      string                      `json:"body"`
	Audience  domain.AnnouncementAudience `json:"audience"`
	PublishAt string                      `json:"publish_at"`
	ExpiresAt string                      `json:"expires_at"`
}

var announcementAudiences = []domain.AnnouncementAudience{
	domain.AudienceAll,
	domain.AudienceTenants,
	domain.AudienceOwners,
	domain.AudienceVendors,
}

// AnnouncementSchema validates an announcement form. Expiry must not precede
// the publish date when both are set.
var AnnouncementSchema = validator.Schema[AnnouncementForm]{
	Entity: "announcement",
	Fields: []validator.Rule[AnnouncementForm]{
		{
			Key: "req.announcement.title", Name: "Required: Title", Kind: domain.RuleKindRequired,
			Check: func(f *AnnouncementForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("title", f.Title, "Required: Title"))
			},
		},
		{
			Key: "len.announcement.title", Name: "Length: Title", Kind: domain.RuleKindRange,
			Check: func(f *AnnouncementForm) []validator.ValidationResult {
				return one(validator.LengthCheck("title", f.Title, 3, 150, "Length: Title"))
			},
		},
		{
			Key: "req.announcement.body", Name: "Required: Body", Kind: domain.RuleKindRequired,
			Check: func(f *AnnouncementForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("body", f.Body, "Required: Body"))
			},
		},
		{
			Key: "len.announcement.body", Name: "Length: Body", Kind: domain.RuleKindRange,
			Check: func(f *AnnouncementForm) []validator.ValidationResult {
				return one(validator.LengthCheck("body", f.Body, 10, 5000, "Length: Body"))
			},
		},
		{
			Key: "req.announcement.audience", Name: "Required: Audience", Kind: domain.RuleKindRequired,
			Check: func(f *AnnouncementForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("audience", string(f.Audience), "Required: Audience"))
			},
		},
		{
			Key: "enum.announcement.audience", Name: "Enum: Audience", Kind: domain.RuleKindFormat,
			Check: func(f *AnnouncementForm) []validator.ValidationResult {
				return one(validator.EnumCheck("audience", f.Audience, announcementAudiences, "Enum: Audience"))
			},
		},
		{
			Key: "fmt.announcement.publish_at", Name: "Format: Publish Date", Kind: domain.RuleKindFormat,
			Check: func(f *AnnouncementForm) []validator.ValidationResult {
				return one(validator.DateCheck("publish_at", f.PublishAt, "Format: Publish Date"))
			},
		},
		{
			Key: "fmt.announcement.expires_at", Name: "Format: Expiry Date", Kind: domain.RuleKindFormat,
			Check: func(f *AnnouncementForm) []validator.ValidationResult {
				return one(validator.DateCheck("expires_at", f.ExpiresAt, "Format: Expiry Date"))
			},
		},
	},
	Cross: []validator.Rule[AnnouncementForm]{
		{
			Key: "xf.announcement.expiry_after_publish", Name: "Cross-field: Expiry After Publish", Kind: domain.RuleKindCrossField,
			Check: func(f *AnnouncementForm) []validator.ValidationResult {
				return one(dateOrder("publish_at", f.PublishAt, "expires_at", f.ExpiresAt, "Cross-field: Expiry After Publish"))
			},
		},
	},
}

// Validate runs the announcement schema.
func (f *AnnouncementForm) Validate() *validator.Report {
	return AnnouncementSchema.Validate(f)
}

// ToRecord maps the form onto a domain record. Call only after validation.
func (f *AnnouncementForm) ToRecord() domain.Announcement {
	rec := domain.Announcement{
		Title:    strings.TrimSpace(f.Title),
		Body:     strings.TrimSpace(f.Body),
		Audience: f.Audience,
	}
	if f.PublishAt != "" {
		if d, err := validator.ParseDate(f.PublishAt); err == nil {
			rec.PublishAt = &d
		}
	}
	if f.ExpiresAt != "" {
		if d, err := validator.ParseDate(f.ExpiresAt); err == nil {
			rec.ExpiresAt = &d
		}
	}
	return rec
}

// DefaultAnnouncementForm returns create-mode initial values: audience ALL.
func DefaultAnnouncementForm() AnnouncementForm {
	return AnnouncementForm{Audience: domain.AudienceAll}
}

// AnnouncementFormFromRecord maps an existing announcement into form shape.
func AnnouncementFormFromRecord(a *domain.Announcement) AnnouncementForm {
	f := AnnouncementForm{
		Title:    a.Title,
		Body:     a.Body,
		Audience: a.Audience,
	}
	if a.PublishAt != nil {
		f.PublishAt = a.PublishAt.Format(validator.DateLayout)
	}
	if a.ExpiresAt != nil {
		f.ExpiresAt = a.ExpiresAt.Format(validator.DateLayout)
	}
	if f.Audience == "" {
		f.Audience = domain.AudienceAll
	}
	return f
}
