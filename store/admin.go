package store

import (
	"time"

	"github.com/jinzhu/gorm"

	"github.com/acadmate/acadmate-api/schema"
)

// AdminOverview is the aggregate report behind the admin dashboard.
type AdminOverview struct {
	TotalUsers           int     `json:"total_users"`
	TotalHelpers         int     `json:"total_helpers"`
	TotalStudents        int     `json:"total_students"`
	PendingVerifications int     `json:"pending_verifications"`
	ActiveRequests       int     `json:"active_requests"`
	CompletedRequests    int     `json:"completed_requests"`
	TotalTransactions    int     `json:"total_transactions"`
	RevenueSummary       float64 `json:"revenue_summary"`
}

// LogActivity appends an audit record for an admin-initiated mutation.
// Callers must not fail their primary operation when this errors.
func (s *AcadmateStore) LogActivity(userID uint, action, details string) error {
	entry := schema.ActivityLog{
		UserID:    userID,
		Action:    action,
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
	return s.ormDB.Create(&entry).Error
}

// ListActivityLogs returns the most recent audit records.
func (s *AcadmateStore) ListActivityLogs(limit int) ([]schema.ActivityLog, error) {
	logs := []schema.ActivityLog{}

	if err := s.ormDB.
		Order("timestamp desc").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, err
	}

	return logs, nil
}

// GetSettings returns the marketplace settings row, creating the default row
// on first access.
func (s *AcadmateStore) GetSettings() (*schema.SystemSettings, error) {
	var settings schema.SystemSettings

	err := s.ormDB.First(&settings).Error
	if gorm.IsRecordNotFoundError(err) {
		settings = defaultSettings()
		if err := s.ormDB.Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}

	return &settings, nil
}

// UpdateSettings applies a partial update, field by field. Unset slots keep
// their stored value.
func (s *AcadmateStore) UpdateSettings(update schema.SettingsUpdate) (*schema.SystemSettings, error) {
	settings, err := s.GetSettings()
	if err != nil {
		return nil, err
	}

	if update.AllowedEmailDomain != nil {
		settings.AllowedEmailDomain = *update.AllowedEmailDomain
	}
	if update.AdminApprovalRequired != nil {
		settings.AdminApprovalRequired = *update.AdminApprovalRequired
	}
	if update.CommissionPercentage != nil {
		settings.CommissionPercentage = *update.CommissionPercentage
	}
	if update.PaymentSystemEnabled != nil {
		settings.PaymentSystemEnabled = *update.PaymentSystemEnabled
	}
	if update.PlatformNotice != nil {
		settings.PlatformNotice = *update.PlatformNotice
	}

	if err := s.ormDB.Save(settings).Error; err != nil {
		return nil, err
	}

	return settings, nil
}

// Overview aggregates the marketplace counters for the admin dashboard.
func (s *AcadmateStore) Overview() (*AdminOverview, error) {
	var o AdminOverview

	userCounts := []struct {
		Role  schema.UserRole
		Count int
	}{}
	if err := s.ormDB.Model(schema.User{}).
		Select("role, count(*) as count").
		Group("role").
		Scan(&userCounts).Error; err != nil {
		return nil, err
	}
	for _, c := range userCounts {
		o.TotalUsers += c.Count
		switch c.Role {
		case schema.RoleHelper:
			o.TotalHelpers = c.Count
		case schema.RoleStudent:
			o.TotalStudents = c.Count
		case schema.RoleAdmin:
		}
	}

	if err := s.ormDB.Model(schema.User{}).
		Where("is_verified = ?", false).
		Count(&o.PendingVerifications).Error; err != nil {
		return nil, err
	}

	if err := s.ormDB.Model(schema.HelpRequest{}).
		Where("status = ?", schema.RequestInProgress).
		Count(&o.ActiveRequests).Error; err != nil {
		return nil, err
	}
	if err := s.ormDB.Model(schema.HelpRequest{}).
		Where("status = ?", schema.RequestCompleted).
		Count(&o.CompletedRequests).Error; err != nil {
		return nil, err
	}
	if err := s.ormDB.Model(schema.HelpRequest{}).
		Where("advance_paid = ?", true).
		Count(&o.TotalTransactions).Error; err != nil {
		return nil, err
	}

	var revenue struct{ Total float64 }
	if err := s.ormDB.Model(schema.HelpRequest{}).
		Select("coalesce(sum(budget), 0) as total").
		Where("status = ?", schema.RequestCompleted).
		Scan(&revenue).Error; err != nil {
		return nil, err
	}

	settings, err := s.GetSettings()
	if err != nil {
		return nil, err
	}
	o.RevenueSummary = revenue.Total * settings.CommissionPercentage / 100

	return &o, nil
}

func defaultSettings() schema.SystemSettings {
	return schema.SystemSettings{
		AllowedEmailDomain:   "cvru.ac.in",
		CommissionPercentage: 10.0,
		PaymentSystemEnabled: true,
	}
}
