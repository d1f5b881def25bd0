// Package realtime fans lifecycle events out to connected clients. Membership
// lives only in process memory: it is rebuilt from client connections after a
// restart, while message history stays durable in the store.
package realtime

import "sync"

// Event is a single fanout frame.
type Event struct {
	Name    string      `json:"event"`
	Payload interface{} `json:"payload"`
}

func NewEvent(name string, payload interface{}) Event {
	return Event{Name: name, Payload: payload}
}

// Subscriber receives events for one connected client.
type Subscriber chan Event

// Hub tracks the global feed plus one logical room per help request.
type Hub struct {
	mu      sync.RWMutex
	global  map[Subscriber]struct{}
	rooms   map[uint]map[Subscriber]struct{}
	members map[Subscriber]map[uint]struct{}
}

func NewHub() *Hub {
	return &Hub{
		global:  map[Subscriber]struct{}{},
		rooms:   map[uint]map[Subscriber]struct{}{},
		members: map[Subscriber]map[uint]struct{}{},
	}
}

// Subscribe registers a client on the global feed and returns its channel.
func (h *Hub) Subscribe(buffer int) Subscriber {
	sub := make(Subscriber, buffer)

	h.mu.Lock()
	h.global[sub] = struct{}{}
	h.members[sub] = map[uint]struct{}{}
	h.mu.Unlock()

	return sub
}

// Unsubscribe purges a client from the global feed and every room it joined,
// then closes its channel.
func (h *Hub) Unsubscribe(sub Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.global[sub]; !ok {
		return
	}
	delete(h.global, sub)

	for roomID := range h.members[sub] {
		delete(h.rooms[roomID], sub)
		if len(h.rooms[roomID]) == 0 {
			delete(h.rooms, roomID)
		}
	}
	delete(h.members, sub)

	close(sub)
}

// Join adds a subscribed client to a request's room. Joining twice is a no-op.
func (h *Hub) Join(sub Subscriber, roomID uint) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.global[sub]; !ok {
		return
	}

	room, ok := h.rooms[roomID]
	if !ok {
		room = map[Subscriber]struct{}{}
		h.rooms[roomID] = room
	}
	room[sub] = struct{}{}
	h.members[sub][roomID] = struct{}{}
}

// BroadcastGlobal delivers an event to every connected client. Delivery is
// best effort: a client whose buffer is full misses the event and is expected
// to re-fetch a snapshot on reconnect.
func (h *Hub) BroadcastGlobal(evt Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.global {
		select {
		case sub <- evt:
		default:
		}
	}
}

// BroadcastRoom delivers an event to the current members of one room, best
// effort.
func (h *Hub) BroadcastRoom(roomID uint, evt Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.rooms[roomID] {
		select {
		case sub <- evt:
		default:
		}
	}
}
