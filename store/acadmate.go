package store

import (
	"github.com/jinzhu/gorm"

	"github.com/acadmate/acadmate-api/schema"
)

// acadmate main datastore
type AcadmateCore interface {
	Ping() error

	// User
	CreateUser(name, email, password string, role schema.UserRole, phoneNumber string) (*schema.User, error)
	GetUser(id uint) (*schema.User, error)
	GetUserByEmail(email string) (*schema.User, error)
	VerifyCredentials(email, password string) (*schema.User, error)
	ListUsers(role *schema.UserRole, verified *bool) ([]schema.User, error)
	SetUserStatus(id uint, suspended, verified *bool) error
	DeleteUser(id uint) error

	// Help request lifecycle
	CreateRequest(studentID uint, params RequestParams) (*schema.HelpRequest, error)
	GetRequest(requestID uint) (*schema.HelpRequest, error)
	ListOpenRequests() ([]schema.HelpRequest, error)
	ListRequestsByParticipant(user *schema.User) ([]schema.HelpRequest, error)
	ListRequests(status *schema.RequestStatus) ([]schema.HelpRequest, error)
	AcceptRequest(helperID, requestID uint) error
	PayAdvance(studentID, requestID uint) error
	CompleteRequest(studentID, requestID uint) error
	CancelRequest(actorID, requestID uint) error
	ReassignHelper(requestID, helperID uint) error

	// Message
	CreateMessage(requestID, senderID uint, content string) (*schema.Message, error)
	ListMessages(requestID uint) ([]schema.Message, error)
	DeleteMessage(messageID uint) error

	// Admin
	LogActivity(userID uint, action, details string) error
	ListActivityLogs(limit int) ([]schema.ActivityLog, error)
	GetSettings() (*schema.SystemSettings, error)
	UpdateSettings(update schema.SettingsUpdate) (*schema.SystemSettings, error)
	Overview() (*AdminOverview, error)
}

// AcadmateStore is an implementation of AcadmateCore
type AcadmateStore struct {
	ormDB *gorm.DB
}

func NewAcadmateStore(ormDB *gorm.DB) *AcadmateStore {
	return &AcadmateStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *AcadmateStore) Ping() error {
	return s.ormDB.DB().Ping()
}
