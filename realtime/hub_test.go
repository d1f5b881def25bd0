package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlobalBroadcastReachesAllSubscribers(t *testing.T) {
	hub := NewHub()

	first := hub.Subscribe(1)
	second := hub.Subscribe(1)
	defer hub.Unsubscribe(first)
	defer hub.Unsubscribe(second)

	hub.BroadcastGlobal(NewEvent("request_accepted", map[string]interface{}{"request_id": 12}))

	for _, sub := range []Subscriber{first, second} {
		select {
		case evt := <-sub:
			assert.Equal(t, "request_accepted", evt.Name)
		default:
			t.Fatal("subscriber missed a global event")
		}
	}
}

func TestRoomBroadcastIsScoped(t *testing.T) {
	hub := NewHub()

	member := hub.Subscribe(1)
	outsider := hub.Subscribe(1)
	defer hub.Unsubscribe(member)
	defer hub.Unsubscribe(outsider)

	hub.Join(member, 12)

	hub.BroadcastRoom(12, NewEvent("new_message", map[string]interface{}{"content": "hi"}))

	select {
	case evt := <-member:
		assert.Equal(t, "new_message", evt.Name)
	default:
		t.Fatal("room member missed the event")
	}

	select {
	case <-outsider:
		t.Fatal("event leaked outside the room")
	default:
	}
}

func TestUnsubscribePurgesRoomMembership(t *testing.T) {
	hub := NewHub()

	sub := hub.Subscribe(1)
	hub.Join(sub, 12)
	hub.Unsubscribe(sub)

	// liveness: broadcasting after the purge must not panic or block
	hub.BroadcastRoom(12, NewEvent("new_message", nil))
	hub.BroadcastGlobal(NewEvent("request_accepted", nil))

	// the channel is closed on unsubscribe
	_, open := <-sub
	assert.False(t, open)
}

func TestSlowSubscriberDoesNotBlockBroadcast(t *testing.T) {
	hub := NewHub()

	slow := hub.Subscribe(1)
	defer hub.Unsubscribe(slow)

	// fill the buffer and keep broadcasting; later events are dropped for
	// this subscriber instead of stalling the hub
	hub.BroadcastGlobal(NewEvent("request_accepted", map[string]interface{}{"request_id": 1}))
	hub.BroadcastGlobal(NewEvent("request_accepted", map[string]interface{}{"request_id": 2}))
	hub.BroadcastGlobal(NewEvent("request_accepted", map[string]interface{}{"request_id": 3}))

	evt := <-slow
	assert.Equal(t, "request_accepted", evt.Name)

	select {
	case <-slow:
		t.Fatal("overflow event should have been dropped")
	default:
	}
}
