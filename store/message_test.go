package store

import (
	"testing"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/suite"

	"github.com/acadmate/acadmate-api/schema"
)

type MessageTestSuite struct {
	suite.Suite
	db    *gorm.DB
	store *AcadmateStore
}

func (s *MessageTestSuite) SetupTest() {
	db, err := gorm.Open("sqlite3", ":memory:")
	if err != nil {
		s.T().Fatalf("open test database with error: %s", err)
	}
	db.DB().SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&schema.User{},
		&schema.HelpRequest{},
		&schema.Message{},
	).Error; err != nil {
		s.T().Fatalf("migrate test database with error: %s", err)
	}

	s.db = db
	s.store = NewAcadmateStore(db)
}

func (s *MessageTestSuite) TearDownTest() {
	s.db.Close()
}

func (s *MessageTestSuite) TestCreateMessageRequiresParent() {
	_, err := s.store.CreateMessage(42, 1, "hello?")
	s.Equal(ErrRequestNotFound, err)
}

func (s *MessageTestSuite) TestAppendAndList() {
	student, err := s.store.CreateUser("Priya", "priya@cvru.ac.in", "secret-password", schema.RoleStudent, "")
	s.Require().NoError(err)

	req, err := s.store.CreateRequest(student.ID, RequestParams{
		Title:       "homework",
		Subject:     "math",
		Description: "question 4",
		Deadline:    time.Now().Add(time.Hour),
	})
	s.Require().NoError(err)

	first, err := s.store.CreateMessage(req.ID, student.ID, "anyone free tonight?")
	s.NoError(err)
	s.Equal(req.ID, first.RequestID)

	_, err = s.store.CreateMessage(req.ID, student.ID, "bump")
	s.NoError(err)

	msgs, err := s.store.ListMessages(req.ID)
	s.NoError(err)
	s.Require().Len(msgs, 2)
	s.Equal("anyone free tonight?", msgs[0].Content)

	s.NoError(s.store.DeleteMessage(first.ID))
	s.Equal(ErrMessageNotFound, s.store.DeleteMessage(first.ID))

	msgs, err = s.store.ListMessages(req.ID)
	s.NoError(err)
	s.Len(msgs, 1)
}

func TestMessageTestSuite(t *testing.T) {
	suite.Run(t, new(MessageTestSuite))
}
