package api

import (
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/acadmate/acadmate-api/api/mocks"
	"github.com/acadmate/acadmate-api/realtime"
	"github.com/acadmate/acadmate-api/schema"
)

func TestDeliverMessageBroadcastsToRoom(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAcadmateCore(ctl)
	s := Server{store: a, hub: realtime.NewHub()}

	sender := &schema.User{ID: 7, Role: schema.RoleHelper}
	stored := &schema.Message{ID: 1, RequestID: 12, SenderID: sender.ID, Content: "done with part one"}
	a.EXPECT().CreateMessage(uint(12), uint(7), "done with part one").Return(stored, nil).Times(1)

	member := s.hub.Subscribe(1)
	defer s.hub.Unsubscribe(member)
	s.hub.Join(member, 12)

	s.deliverMessage(sender, clientFrame{Type: "send_message", RequestID: 12, Content: "done with part one"})

	select {
	case evt := <-member:
		assert.Equal(t, "new_message", evt.Name)
		assert.Equal(t, stored, evt.Payload)
	default:
		t.Fatal("room member missed the message")
	}

	// exactly one event per delivery
	select {
	case <-member:
		t.Fatal("message was broadcast more than once")
	default:
	}
}

func TestDeliverMessageAppendFailureSuppressesBroadcast(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAcadmateCore(ctl)
	s := Server{store: a, hub: realtime.NewHub()}

	sender := &schema.User{ID: 7, Role: schema.RoleHelper}
	a.EXPECT().CreateMessage(uint(12), uint(7), "hello").
		Return(nil, fmt.Errorf("database is down")).Times(1)

	member := s.hub.Subscribe(1)
	defer s.hub.Unsubscribe(member)
	s.hub.Join(member, 12)

	s.deliverMessage(sender, clientFrame{Type: "send_message", RequestID: 12, Content: "hello"})

	// the durable append failed, so no client may see a phantom message
	select {
	case <-member:
		t.Fatal("broadcast a message that was never stored")
	default:
	}
}
