package store

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"

	"github.com/acadmate/acadmate-api/schema"
)

var (
	ErrRequestNotFound    = fmt.Errorf("the request does not exist")
	ErrRequestUnavailable = fmt.Errorf("the request is no longer available")
	ErrNotRequestOwner    = fmt.Errorf("only the requesting student can perform this action")
	ErrNotParticipant     = fmt.Errorf("the user is not a participant of this request")
	ErrHelperNotFound     = fmt.Errorf("the helper does not exist")
)

// StateError indicates an operation that is not legal from the request's
// current lifecycle state.
type StateError struct {
	Expected schema.RequestStatus
	Actual   schema.RequestStatus
}

func (e *StateError) Error() string {
	return fmt.Sprintf("request is %s, expected %s", e.Actual, e.Expected)
}

// RequestParams carries the descriptive attributes of a new help request.
// Lifecycle fields are not settable at creation.
type RequestParams struct {
	Title       string
	Subject     string
	Description string
	Deadline    time.Time
	Budget      *float64
	Attachments []string
}

// CreateRequest creates a help request owned by the given student. A new
// request always starts open with no helper and no advance paid.
func (s *AcadmateStore) CreateRequest(studentID uint, params RequestParams) (*schema.HelpRequest, error) {
	req := schema.HelpRequest{
		Title:       params.Title,
		Subject:     params.Subject,
		Description: params.Description,
		Deadline:    params.Deadline,
		Budget:      params.Budget,
		Attachments: schema.Attachments(params.Attachments),
		Status:      schema.RequestOpen,
		StudentID:   studentID,
	}

	if err := s.ormDB.Create(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// GetRequest returns a request by its id.
func (s *AcadmateStore) GetRequest(requestID uint) (*schema.HelpRequest, error) {
	var req schema.HelpRequest

	if err := s.ormDB.Where("id = ?", requestID).First(&req).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	return &req, nil
}

// ListOpenRequests returns requests that are still claimable. The filter
// checks both status and helper assignment so that a record with a stale
// helper never shows up as available.
func (s *AcadmateStore) ListOpenRequests() ([]schema.HelpRequest, error) {
	reqs := []schema.HelpRequest{}

	if err := s.ormDB.
		Where("status = ? AND helper_id IS NULL", schema.RequestOpen).
		Order("created_at desc").
		Find(&reqs).Error; err != nil {
		return nil, err
	}

	return reqs, nil
}

// ListRequestsByParticipant returns the requests a user takes part in: the
// ones they created for students, the ones they accepted for helpers.
func (s *AcadmateStore) ListRequestsByParticipant(user *schema.User) ([]schema.HelpRequest, error) {
	reqs := []schema.HelpRequest{}

	query := s.ormDB.Order("created_at desc")
	switch user.Role {
	case schema.RoleStudent:
		query = query.Where("student_id = ?", user.ID)
	case schema.RoleHelper:
		query = query.Where("helper_id = ?", user.ID)
	case schema.RoleAdmin:
		// an admin participates in nothing; the admin surface has its own listing
		return reqs, nil
	default:
		return reqs, nil
	}

	if err := query.Find(&reqs).Error; err != nil {
		return nil, err
	}

	return reqs, nil
}

// ListRequests returns all requests, optionally filtered by status.
func (s *AcadmateStore) ListRequests(status *schema.RequestStatus) ([]schema.HelpRequest, error) {
	reqs := []schema.HelpRequest{}

	query := s.ormDB.Order("created_at desc")
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Find(&reqs).Error; err != nil {
		return nil, err
	}

	return reqs, nil
}

// AcceptRequest assigns a helper to an open request and moves it to
// in_progress. The write is a single conditional update so that two helpers
// racing for the same request cannot both win: the condition re-checks status
// and helper assignment at write time, and the loser observes zero affected
// rows.
func (s *AcadmateStore) AcceptRequest(helperID, requestID uint) error {
	result := s.ormDB.Model(schema.HelpRequest{}).
		Where("id = ? AND status = ? AND helper_id IS NULL", requestID, schema.RequestOpen).
		Updates(map[string]interface{}{
			"status":    schema.RequestInProgress,
			"helper_id": helperID,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrRequestUnavailable
	}

	return nil
}

// PayAdvance marks the advance as settled for an in-progress request. Only
// the owning student may pay. Paying twice is a no-op, not an error.
func (s *AcadmateStore) PayAdvance(studentID, requestID uint) error {
	req, err := s.GetRequest(requestID)
	if err != nil {
		return err
	}

	if req.StudentID != studentID {
		return ErrNotRequestOwner
	}
	if req.Status != schema.RequestInProgress {
		return &StateError{Expected: schema.RequestInProgress, Actual: req.Status}
	}

	result := s.ormDB.Model(schema.HelpRequest{}).
		Where("id = ? AND status = ?", requestID, schema.RequestInProgress).
		Update("advance_paid", true)
	if result.Error != nil {
		return result.Error
	}

	// the request left in_progress between the read and the write
	if result.RowsAffected == 0 {
		return ErrRequestUnavailable
	}

	return nil
}

// CompleteRequest moves an in-progress request to completed and bumps the
// helper's completed task counter. Both writes happen in one transaction, and
// the status flip is conditional on status and helper assignment, so a
// retried Complete can never increment the counter twice and the counter
// always belongs to the helper on the completed record: if an admin reassign
// lands between the read and the flip, the flip misses and the caller sees
// the request as unavailable instead of crediting the stale helper.
func (s *AcadmateStore) CompleteRequest(studentID, requestID uint) error {
	req, err := s.GetRequest(requestID)
	if err != nil {
		return err
	}

	if req.StudentID != studentID {
		return ErrNotRequestOwner
	}
	if req.Status != schema.RequestInProgress {
		return &StateError{Expected: schema.RequestInProgress, Actual: req.Status}
	}

	return s.completeAssigned(req)
}

// completeAssigned performs the transactional flip-and-credit for a request
// snapshot already validated as in_progress and owned by the caller. The flip
// condition re-checks the helper assignment so that a snapshot made stale by
// a concurrent reassign misses and nothing is credited.
func (s *AcadmateStore) completeAssigned(req *schema.HelpRequest) error {
	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	flip := tx.Model(schema.HelpRequest{}).
		Where("id = ? AND student_id = ? AND status = ?", req.ID, req.StudentID, schema.RequestInProgress)
	if req.HelperID != nil {
		flip = flip.Where("helper_id = ?", *req.HelperID)
	} else {
		flip = flip.Where("helper_id IS NULL")
	}

	result := flip.Update("status", schema.RequestCompleted)
	if result.Error != nil {
		tx.Rollback()
		return result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return ErrRequestUnavailable
	}

	if req.HelperID != nil {
		if err := tx.Model(schema.User{}).
			Where("id = ?", *req.HelperID).
			UpdateColumn("completed_tasks", gorm.Expr("completed_tasks + 1")).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit().Error
}

// CancelRequest cancels a request on behalf of either participant. A
// completed request cannot be cancelled; re-cancelling a cancelled request is
// tolerated since it rewrites the same terminal state.
func (s *AcadmateStore) CancelRequest(actorID, requestID uint) error {
	req, err := s.GetRequest(requestID)
	if err != nil {
		return err
	}

	participant := req.StudentID == actorID ||
		(req.HelperID != nil && *req.HelperID == actorID)
	if !participant {
		return ErrNotParticipant
	}

	if req.Status == schema.RequestCompleted {
		return &StateError{Expected: schema.RequestInProgress, Actual: req.Status}
	}

	result := s.ormDB.Model(schema.HelpRequest{}).
		Where("id = ? AND status <> ?", requestID, schema.RequestCompleted).
		Update("status", schema.RequestCancelled)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestUnavailable
	}

	return nil
}

// ReassignHelper is the admin override: it sets the helper on any request
// regardless of its current status or prior assignment, bypassing every
// Accept precondition. The target must exist and be a helper.
func (s *AcadmateStore) ReassignHelper(requestID, helperID uint) error {
	var helper schema.User
	if err := s.ormDB.Where("id = ? AND role = ?", helperID, schema.RoleHelper).First(&helper).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return ErrHelperNotFound
		}
		return err
	}

	result := s.ormDB.Model(schema.HelpRequest{}).
		Where("id = ?", requestID).
		Update("helper_id", helperID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}

	return nil
}
