package adventure

import (
	"github.com/google/uuid"
)

// World keeps track of every room in the game map. Rooms are registered
// under stable string IDs so that exits and trapdoor links can be written
// out as handles instead of pointers; the room graph is free to contain
// cycles.
type World interface {
	NewRoom(description string) *Room
	NewTrapdoorRoom(description string) *Room
	AddRoom(room *Room) string
	PutRoom(id string, room *Room)
	GetRoom(id string) *Room
	RoomID(room *Room) string
	Rooms() []*Room
	RoomIDs() []string
	SpawnRoom() *Room
	SetSpawnRoom(room *Room)
}

type memWorld struct {
	rooms   map[string]*Room
	ids     map[*Room]string
	order   []string
	spawnID string
}

// NewRoom constructs a room and registers it under a fresh ID.
func (w *memWorld) NewRoom(description string) *Room {
	room := NewRoom(description)
	w.AddRoom(room)
	return room
}

// NewTrapdoorRoom constructs a trapdoor room and registers it under a fresh
// ID.
func (w *memWorld) NewTrapdoorRoom(description string) *Room {
	room := NewTrapdoorRoom(description)
	w.AddRoom(room)
	return room
}

// AddRoom registers a room and returns its ID. Registering a room twice
// returns the ID it already has.
func (w *memWorld) AddRoom(room *Room) string {
	if id, exists := w.ids[room]; exists {
		return id
	}

	id := uuid.New().String()
	w.PutRoom(id, room)
	return id
}

// PutRoom registers a room under a caller-chosen ID. The persistence layer
// uses this to rebuild a world with the IDs it was saved under.
func (w *memWorld) PutRoom(id string, room *Room) {
	if _, exists := w.rooms[id]; !exists {
		w.order = append(w.order, id)
	}
	w.rooms[id] = room
	w.ids[room] = id
}

// GetRoom looks a room up by ID, nil if unknown.
func (w *memWorld) GetRoom(id string) *Room {
	return w.rooms[id]
}

// RoomID returns the ID a room was registered under, "" for an unregistered
// room.
func (w *memWorld) RoomID(room *Room) string {
	return w.ids[room]
}

// Rooms returns every registered room in registration order.
func (w *memWorld) Rooms() []*Room {
	rooms := make([]*Room, 0, len(w.order))
	for _, id := range w.order {
		rooms = append(rooms, w.rooms[id])
	}
	return rooms
}

// RoomIDs returns every room ID in registration order.
func (w *memWorld) RoomIDs() []string {
	ids := make([]string, len(w.order))
	copy(ids, w.order)
	return ids
}

// SpawnRoom returns the room players start in, nil until one is set.
func (w *memWorld) SpawnRoom() *Room {
	return w.rooms[w.spawnID]
}

// SetSpawnRoom marks the room players start in, registering it if needed.
func (w *memWorld) SetSpawnRoom(room *Room) {
	w.spawnID = w.AddRoom(room)
}

// NewWorld creates an empty in-memory world.
func NewWorld() World {
	return &memWorld{
		rooms: make(map[string]*Room),
		ids:   make(map[*Room]string)}
}
