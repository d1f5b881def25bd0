package store

import (
	"fmt"

	"github.com/jinzhu/gorm"
	"golang.org/x/crypto/bcrypt"

	"github.com/acadmate/acadmate-api/schema"
)

var (
	ErrUserNotFound       = fmt.Errorf("the user does not exist")
	ErrEmailTaken         = fmt.Errorf("the email has already been registered")
	ErrInvalidCredentials = fmt.Errorf("invalid email or password")
)

// CreateUser registers a user with a bcrypt-hashed password.
func (s *AcadmateStore) CreateUser(name, email, password string, role schema.UserRole, phoneNumber string) (*schema.User, error) {
	var existing schema.User
	err := s.ormDB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !gorm.IsRecordNotFoundError(err) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := schema.User{
		Name:           name,
		Email:          email,
		HashedPassword: string(hashed),
		Role:           role,
		PhoneNumber:    phoneNumber,
	}

	if err := s.ormDB.Create(&u).Error; err != nil {
		return nil, err
	}

	return &u, nil
}

// GetUser returns a user by id.
func (s *AcadmateStore) GetUser(id uint) (*schema.User, error) {
	var u schema.User
	if err := s.ormDB.Where("id = ?", id).First(&u).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetUserByEmail returns a user by email.
func (s *AcadmateStore) GetUserByEmail(email string) (*schema.User, error) {
	var u schema.User
	if err := s.ormDB.Where("email = ?", email).First(&u).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// VerifyCredentials checks an email/password pair. The error is identical for
// an unknown email and a wrong password.
func (s *AcadmateStore) VerifyCredentials(email, password string) (*schema.User, error) {
	u, err := s.GetUserByEmail(email)
	if err != nil {
		if err == ErrUserNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

// ListUsers returns users, optionally filtered by role and verification.
func (s *AcadmateStore) ListUsers(role *schema.UserRole, verified *bool) ([]schema.User, error) {
	users := []schema.User{}

	query := s.ormDB.Order("created_at desc")
	if role != nil {
		query = query.Where("role = ?", *role)
	}
	if verified != nil {
		query = query.Where("is_verified = ?", *verified)
	}

	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

// SetUserStatus flips the suspension and verification flags. A nil flag
// leaves the stored value untouched.
func (s *AcadmateStore) SetUserStatus(id uint, suspended, verified *bool) error {
	updates := map[string]interface{}{}
	if suspended != nil {
		updates["is_suspended"] = *suspended
	}
	if verified != nil {
		updates["is_verified"] = *verified
	}
	if len(updates) == 0 {
		return nil
	}

	result := s.ormDB.Model(schema.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// DeleteUser removes a user permanently.
func (s *AcadmateStore) DeleteUser(id uint) error {
	result := s.ormDB.Delete(schema.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}
