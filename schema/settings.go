package schema

// SystemSettings is a single-row table of marketplace-wide knobs.
type SystemSettings struct {
	ID                    uint    `json:"-" gorm:"primary_key"`
	AllowedEmailDomain    string  `json:"allowed_email_domain" gorm:"default:'cvru.ac.in'"`
	AdminApprovalRequired bool    `json:"admin_approval_required" gorm:"default:false"`
	CommissionPercentage  float64 `json:"commission_percentage" gorm:"default:10"`
	PaymentSystemEnabled  bool    `json:"payment_system_enabled" gorm:"default:true"`
	PlatformNotice        string  `json:"platform_notice"`
}

// SettingsUpdate is a partial update of SystemSettings: one optional slot per
// mutable field, applied field-by-field. A nil slot leaves the stored value
// untouched.
type SettingsUpdate struct {
	AllowedEmailDomain    *string  `json:"allowed_email_domain"`
	AdminApprovalRequired *bool    `json:"admin_approval_required"`
	CommissionPercentage  *float64 `json:"commission_percentage"`
	PaymentSystemEnabled  *bool    `json:"payment_system_enabled"`
	PlatformNotice        *string  `json:"platform_notice"`
}
