package api

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/acadmate/acadmate-api/schema"
)

func TestBuildRequestViewDisclosure(t *testing.T) {
	student := &schema.User{ID: 3, Name: "Asha", PhoneNumber: "111-2222"}
	helper := &schema.User{ID: 7, Name: "Bikram", PhoneNumber: "333-4444"}

	paid := schema.HelpRequest{
		ID:          1,
		Status:      schema.RequestInProgress,
		AdvancePaid: true,
		StudentID:   student.ID,
		HelperID:    uintPtr(helper.ID),
	}
	unpaid := paid
	unpaid.AdvancePaid = false

	testCases := []struct {
		name      string
		req       schema.HelpRequest
		student   *schema.User
		helper    *schema.User
		viewerID  uint
		peerPhone string
	}{
		{"paid, viewed by the student", paid, student, helper, student.ID, helper.PhoneNumber},
		{"paid, viewed by the helper", paid, student, helper, helper.ID, student.PhoneNumber},
		{"paid, viewed by an outsider", paid, student, helper, 42, ""},
		{"unpaid, viewed by the student", unpaid, student, helper, student.ID, ""},
		{"unpaid, viewed by the helper", unpaid, student, helper, helper.ID, ""},
		{"paid but helper record missing", paid, student, nil, student.ID, ""},
		{"paid but student record missing", paid, nil, helper, helper.ID, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			view := buildRequestView(tc.req, tc.student, tc.helper, tc.viewerID)
			assert.Equal(t, tc.peerPhone, view.PeerPhone)
		})
	}
}

func TestBuildRequestViewNoHelperAssigned(t *testing.T) {
	student := &schema.User{ID: 3, Name: "Asha", PhoneNumber: "111-2222"}
	req := schema.HelpRequest{
		ID:        1,
		Status:    schema.RequestOpen,
		StudentID: student.ID,
	}

	view := buildRequestView(req, student, nil, student.ID)
	assert.Equal(t, "Asha", view.StudentName)
	assert.Empty(t, view.HelperName)
	assert.Empty(t, view.PeerPhone)
}
