package store

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/suite"

	"github.com/acadmate/acadmate-api/schema"
)

type RequestTestSuite struct {
	suite.Suite
	db    *gorm.DB
	store *AcadmateStore
}

func (s *RequestTestSuite) SetupTest() {
	db, err := gorm.Open("sqlite3", ":memory:")
	if err != nil {
		s.T().Fatalf("open test database with error: %s", err)
	}

	// sqlite serializes concurrent writers through a single connection
	db.DB().SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&schema.User{},
		&schema.HelpRequest{},
		&schema.Message{},
		&schema.ActivityLog{},
		&schema.SystemSettings{},
	).Error; err != nil {
		s.T().Fatalf("migrate test database with error: %s", err)
	}

	s.db = db
	s.store = NewAcadmateStore(db)
}

func (s *RequestTestSuite) TearDownTest() {
	s.db.Close()
}

func (s *RequestTestSuite) createUser(role schema.UserRole, phone string) *schema.User {
	u, err := s.store.CreateUser(
		fmt.Sprintf("%s-%d", role, rand.Int()),
		fmt.Sprintf("user-%d@cvru.ac.in", rand.Int()),
		"correct-horse-battery",
		role,
		phone,
	)
	s.Require().NoError(err)
	return u
}

func (s *RequestTestSuite) createOpenRequest(student *schema.User) *schema.HelpRequest {
	req, err := s.store.CreateRequest(student.ID, RequestParams{
		Title:       "calculus worksheet",
		Subject:     "math",
		Description: "need help with limits",
		Deadline:    time.Now().Add(48 * time.Hour),
	})
	s.Require().NoError(err)
	return req
}

func (s *RequestTestSuite) TestCreateRequestDefaults() {
	student := s.createUser(schema.RoleStudent, "111")

	budget := 50.0
	req, err := s.store.CreateRequest(student.ID, RequestParams{
		Title:       "essay review",
		Subject:     "english",
		Description: "two pages",
		Deadline:    time.Now().Add(time.Hour),
		Budget:      &budget,
		Attachments: []string{"/uploads/draft.pdf"},
	})
	s.NoError(err)

	s.Equal(schema.RequestOpen, req.Status)
	s.Equal(student.ID, req.StudentID)
	s.Nil(req.HelperID)
	s.False(req.AdvancePaid)

	stored, err := s.store.GetRequest(req.ID)
	s.NoError(err)
	s.Equal(schema.Attachments{"/uploads/draft.pdf"}, stored.Attachments)
}

func (s *RequestTestSuite) TestAcceptAssignsHelper() {
	student := s.createUser(schema.RoleStudent, "111")
	helper := s.createUser(schema.RoleHelper, "222")
	req := s.createOpenRequest(student)

	s.NoError(s.store.AcceptRequest(helper.ID, req.ID))

	stored, err := s.store.GetRequest(req.ID)
	s.NoError(err)
	s.Equal(schema.RequestInProgress, stored.Status)
	s.Require().NotNil(stored.HelperID)
	s.Equal(helper.ID, *stored.HelperID)
}

func (s *RequestTestSuite) TestAcceptTakenRequest() {
	student := s.createUser(schema.RoleStudent, "111")
	first := s.createUser(schema.RoleHelper, "222")
	second := s.createUser(schema.RoleHelper, "333")
	req := s.createOpenRequest(student)

	s.NoError(s.store.AcceptRequest(first.ID, req.ID))
	s.Equal(ErrRequestUnavailable, s.store.AcceptRequest(second.ID, req.ID))

	stored, err := s.store.GetRequest(req.ID)
	s.NoError(err)
	s.Equal(first.ID, *stored.HelperID)
}

// TestAcceptExactlyOnce races many helpers for the same open request and
// checks that the conditional update lets exactly one through.
func (s *RequestTestSuite) TestAcceptExactlyOnce() {
	student := s.createUser(schema.RoleStudent, "111")
	req := s.createOpenRequest(student)

	const helpers = 8
	ids := make([]uint, helpers)
	for i := range ids {
		ids[i] = s.createUser(schema.RoleHelper, "222").ID
	}

	errs := make([]error, helpers)
	var wg sync.WaitGroup
	for i := 0; i < helpers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.store.AcceptRequest(ids[i], req.ID)
		}(i)
	}
	wg.Wait()

	won := 0
	for _, err := range errs {
		switch err {
		case nil:
			won++
		case ErrRequestUnavailable:
		default:
			s.Failf("unexpected accept error", "%s", err)
		}
	}
	s.Equal(1, won)

	stored, err := s.store.GetRequest(req.ID)
	s.NoError(err)
	s.Equal(schema.RequestInProgress, stored.Status)
	s.NotNil(stored.HelperID)
}

func (s *RequestTestSuite) TestPayAdvance() {
	student := s.createUser(schema.RoleStudent, "111")
	other := s.createUser(schema.RoleStudent, "444")
	helper := s.createUser(schema.RoleHelper, "222")
	req := s.createOpenRequest(student)

	var stateErr *StateError
	s.ErrorAs(s.store.PayAdvance(student.ID, req.ID), &stateErr)
	s.Equal(schema.RequestOpen, stateErr.Actual)

	s.NoError(s.store.AcceptRequest(helper.ID, req.ID))

	s.Equal(ErrNotRequestOwner, s.store.PayAdvance(other.ID, req.ID))

	s.NoError(s.store.PayAdvance(student.ID, req.ID))
	// re-invocation is a no-op, not an error
	s.NoError(s.store.PayAdvance(student.ID, req.ID))

	stored, err := s.store.GetRequest(req.ID)
	s.NoError(err)
	s.True(stored.AdvancePaid)
}

func (s *RequestTestSuite) TestCompleteIncrementsCounterOnce() {
	student := s.createUser(schema.RoleStudent, "111")
	helper := s.createUser(schema.RoleHelper, "222")
	req := s.createOpenRequest(student)

	s.NoError(s.store.AcceptRequest(helper.ID, req.ID))
	s.NoError(s.store.CompleteRequest(student.ID, req.ID))

	// a client retrying after a timeout must not bump the counter again
	var stateErr *StateError
	s.ErrorAs(s.store.CompleteRequest(student.ID, req.ID), &stateErr)
	s.Equal(schema.RequestCompleted, stateErr.Actual)

	stored, err := s.store.GetRequest(req.ID)
	s.NoError(err)
	s.Equal(schema.RequestCompleted, stored.Status)

	u, err := s.store.GetUser(helper.ID)
	s.NoError(err)
	s.Equal(1, u.CompletedTasks)
}

// TestCompleteStaleHelperSnapshot simulates a reassign landing between
// Complete's read and its transaction: the flip must miss and nothing may be
// credited, so the counter can never end up on a helper who is no longer on
// the record.
func (s *RequestTestSuite) TestCompleteStaleHelperSnapshot() {
	student := s.createUser(schema.RoleStudent, "111")
	first := s.createUser(schema.RoleHelper, "222")
	second := s.createUser(schema.RoleHelper, "333")
	req := s.createOpenRequest(student)

	s.NoError(s.store.AcceptRequest(first.ID, req.ID))

	stale, err := s.store.GetRequest(req.ID)
	s.Require().NoError(err)

	s.NoError(s.store.ReassignHelper(req.ID, second.ID))

	s.Equal(ErrRequestUnavailable, s.store.completeAssigned(stale))

	stored, err := s.store.GetRequest(req.ID)
	s.NoError(err)
	s.Equal(schema.RequestInProgress, stored.Status)

	for _, helperID := range []uint{first.ID, second.ID} {
		u, err := s.store.GetUser(helperID)
		s.NoError(err)
		s.Equal(0, u.CompletedTasks)
	}

	// a fresh Complete sees the new assignment and credits the right helper
	s.NoError(s.store.CompleteRequest(student.ID, req.ID))

	u, err := s.store.GetUser(second.ID)
	s.NoError(err)
	s.Equal(1, u.CompletedTasks)

	u, err = s.store.GetUser(first.ID)
	s.NoError(err)
	s.Equal(0, u.CompletedTasks)
}

func (s *RequestTestSuite) TestCompleteRequiresOwner() {
	student := s.createUser(schema.RoleStudent, "111")
	helper := s.createUser(schema.RoleHelper, "222")
	req := s.createOpenRequest(student)

	s.NoError(s.store.AcceptRequest(helper.ID, req.ID))
	s.Equal(ErrNotRequestOwner, s.store.CompleteRequest(helper.ID, req.ID))
}

func (s *RequestTestSuite) TestCancel() {
	student := s.createUser(schema.RoleStudent, "111")
	helper := s.createUser(schema.RoleHelper, "222")
	outsider := s.createUser(schema.RoleHelper, "333")

	req := s.createOpenRequest(student)
	s.NoError(s.store.AcceptRequest(helper.ID, req.ID))

	s.Equal(ErrNotParticipant, s.store.CancelRequest(outsider.ID, req.ID))

	s.NoError(s.store.CancelRequest(helper.ID, req.ID))
	stored, err := s.store.GetRequest(req.ID)
	s.NoError(err)
	s.Equal(schema.RequestCancelled, stored.Status)
}

func (s *RequestTestSuite) TestCancelCompletedRequest() {
	student := s.createUser(schema.RoleStudent, "111")
	helper := s.createUser(schema.RoleHelper, "222")
	req := s.createOpenRequest(student)

	s.NoError(s.store.AcceptRequest(helper.ID, req.ID))
	s.NoError(s.store.CompleteRequest(student.ID, req.ID))

	var stateErr *StateError
	s.ErrorAs(s.store.CancelRequest(helper.ID, req.ID), &stateErr)
	s.Equal(schema.RequestCompleted, stateErr.Actual)
}

func (s *RequestTestSuite) TestOpenListExcludesAssigned() {
	student := s.createUser(schema.RoleStudent, "111")
	helper := s.createUser(schema.RoleHelper, "222")

	open := s.createOpenRequest(student)
	taken := s.createOpenRequest(student)
	s.NoError(s.store.AcceptRequest(helper.ID, taken.ID))

	reqs, err := s.store.ListOpenRequests()
	s.NoError(err)
	s.Require().Len(reqs, 1)
	s.Equal(open.ID, reqs[0].ID)
}

func (s *RequestTestSuite) TestReassignHelperBypassesPreconditions() {
	student := s.createUser(schema.RoleStudent, "111")
	first := s.createUser(schema.RoleHelper, "222")
	second := s.createUser(schema.RoleHelper, "333")
	req := s.createOpenRequest(student)

	s.NoError(s.store.AcceptRequest(first.ID, req.ID))
	s.NoError(s.store.CompleteRequest(student.ID, req.ID))

	// a completed request would reject Accept, the override goes through
	s.NoError(s.store.ReassignHelper(req.ID, second.ID))

	stored, err := s.store.GetRequest(req.ID)
	s.NoError(err)
	s.Equal(second.ID, *stored.HelperID)

	s.Equal(ErrHelperNotFound, s.store.ReassignHelper(req.ID, student.ID))
	s.Equal(ErrRequestNotFound, s.store.ReassignHelper(9999, second.ID))
}

// TestLifecycleInvariantHolds drives random operation sequences and checks
// the status/helper invariant after every step: open implies no helper,
// in_progress or completed implies a helper.
func (s *RequestTestSuite) TestLifecycleInvariantHolds() {
	rng := rand.New(rand.NewSource(42))

	students := []*schema.User{
		s.createUser(schema.RoleStudent, "111"),
		s.createUser(schema.RoleStudent, "112"),
	}
	helpers := []*schema.User{
		s.createUser(schema.RoleHelper, "221"),
		s.createUser(schema.RoleHelper, "222"),
		s.createUser(schema.RoleHelper, "223"),
	}

	var requests []uint
	for i := 0; i < 200; i++ {
		student := students[rng.Intn(len(students))]
		helper := helpers[rng.Intn(len(helpers))]

		switch op := rng.Intn(5); {
		case op == 0 || len(requests) == 0:
			req := s.createOpenRequest(student)
			requests = append(requests, req.ID)
		case op == 1:
			s.tolerateLifecycleError(s.store.AcceptRequest(helper.ID, requests[rng.Intn(len(requests))]))
		case op == 2:
			s.tolerateLifecycleError(s.store.PayAdvance(student.ID, requests[rng.Intn(len(requests))]))
		case op == 3:
			s.tolerateLifecycleError(s.store.CompleteRequest(student.ID, requests[rng.Intn(len(requests))]))
		default:
			s.tolerateLifecycleError(s.store.CancelRequest(student.ID, requests[rng.Intn(len(requests))]))
		}

		all, err := s.store.ListRequests(nil)
		s.Require().NoError(err)
		for _, r := range all {
			switch r.Status {
			case schema.RequestOpen:
				s.Nil(r.HelperID, "open request %d must have no helper", r.ID)
			case schema.RequestInProgress, schema.RequestCompleted:
				s.NotNil(r.HelperID, "request %d in state %s must have a helper", r.ID, r.Status)
			}
			if r.AdvancePaid {
				s.NotEqual(schema.RequestOpen, r.Status)
			}
		}
	}
}

// tolerateLifecycleError accepts the domain rejections a random driver is
// expected to hit, and fails on anything else.
func (s *RequestTestSuite) tolerateLifecycleError(err error) {
	if err == nil {
		return
	}

	var stateErr *StateError
	switch {
	case err == ErrRequestUnavailable,
		err == ErrNotRequestOwner,
		err == ErrNotParticipant,
		err == ErrRequestNotFound:
	case errors.As(err, &stateErr):
	default:
		s.Failf("unexpected lifecycle error", "%s", err)
	}
}

// TestEndToEndScenario walks the full happy path with one losing helper.
func (s *RequestTestSuite) TestEndToEndScenario() {
	student := s.createUser(schema.RoleStudent, "555-0100")
	h1 := s.createUser(schema.RoleHelper, "555-0201")
	h2 := s.createUser(schema.RoleHelper, "555-0202")

	req := s.createOpenRequest(student)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i, h := range []*schema.User{h1, h2} {
		wg.Add(1)
		go func(i int, helperID uint) {
			defer wg.Done()
			errs[i] = s.store.AcceptRequest(helperID, req.ID)
		}(i, h.ID)
	}
	wg.Wait()

	var winner, loser uint
	switch {
	case errs[0] == nil:
		s.Equal(ErrRequestUnavailable, errs[1])
		winner, loser = h1.ID, h2.ID
	case errs[1] == nil:
		s.Equal(ErrRequestUnavailable, errs[0])
		winner, loser = h2.ID, h1.ID
	default:
		s.Fail("no helper won the accept race")
	}
	_ = loser

	s.NoError(s.store.PayAdvance(student.ID, req.ID))

	stored, err := s.store.GetRequest(req.ID)
	s.NoError(err)
	s.True(stored.AdvancePaid)
	s.Equal(winner, *stored.HelperID)

	s.NoError(s.store.CompleteRequest(student.ID, req.ID))
	u, err := s.store.GetUser(winner)
	s.NoError(err)
	s.Equal(1, u.CompletedTasks)

	var stateErr *StateError
	s.ErrorAs(s.store.CancelRequest(winner, req.ID), &stateErr)
}

func TestRequestTestSuite(t *testing.T) {
	suite.Run(t, new(RequestTestSuite))
}
