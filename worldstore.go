package adventure

import (
	"fmt"
	"log"

	bolt "github.com/coreos/bbolt"
)

// roomRecord is the msgpack-serializable form of a Room. Neighbors show up
// as room IDs rather than pointers, so cyclic maps round-trip without any
// special handling.
type roomRecord struct {
	ID          string       `json:""`
	Description string       `json:""`
	IsTrapdoor  bool         `json:""`
	Exits       []exitRecord `json:""`
	Items       []Item       `json:""`
	Actors      []Actor      `json:""`
	RequiredKey *Item        `json:",omitempty"`
	TrapdoorIDs []string     `json:""`
}

// exitRecord is one direction-to-room edge. A slice rather than a map keeps
// the exit order the room was built with.
type exitRecord struct {
	Direction string `json:""`
	RoomID    string `json:""`
}

// WorldStore persists a world into an on-disk bolt database.
type WorldStore struct {
	filename string
	database *bolt.DB
}

// OpenWorldStore opens (creating if needed) the world database at filename.
func OpenWorldStore(filename string) (*WorldStore, error) {
	db, err := bolt.Open(filename, 0600, nil)
	if err != nil {
		return nil, err
	}

	// Make default tables
	err = db.Update(func(tx *bolt.Tx) error {
		buckets := []string{"rooms", "worldmeta"}

		for _, bucket := range buckets {
			_, err := tx.CreateBucketIfNotExists([]byte(bucket))

			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		db.Close()
		return nil, err
	}

	return &WorldStore{filename: filename, database: db}, nil
}

// Close closes the underlying database.
func (s *WorldStore) Close() {
	if s.database != nil {
		s.database.Close()
	}
}

func recordForRoom(world World, room *Room) roomRecord {
	record := roomRecord{
		ID:          world.RoomID(room),
		Description: room.GetShortDescription(),
		IsTrapdoor:  room.IsTrapdoor(),
		RequiredKey: room.GetRequiredKey()}

	for _, direction := range room.exitOrder {
		record.Exits = append(record.Exits, exitRecord{
			Direction: direction,
			RoomID:    world.RoomID(room.exits[direction])})
	}

	for _, item := range room.GetItems() {
		record.Items = append(record.Items, *item)
	}

	for _, actor := range room.GetActors() {
		record.Actors = append(record.Actors, *actor)
	}

	for _, destination := range room.GetTrapdoorDestinations() {
		record.TrapdoorIDs = append(record.TrapdoorIDs, world.RoomID(destination))
	}

	return record
}

// SaveWorld writes every room of the world, plus the spawn marker, to the
// database. A room that was never registered with the world aborts the save.
func (s *WorldStore) SaveWorld(world World) error {
	return s.database.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte("rooms"))

		for _, room := range world.Rooms() {
			record := recordForRoom(world, room)

			if record.ID == "" {
				return fmt.Errorf("room %q is not registered with the world", room.GetShortDescription())
			}

			packed, err := MSGPack(record)
			if err != nil {
				return err
			}

			if err := bucket.Put([]byte(record.ID), packed); err != nil {
				return err
			}
		}

		meta := tx.Bucket([]byte("worldmeta"))
		spawn := world.SpawnRoom()
		if spawn != nil {
			return meta.Put([]byte("spawn"), []byte(world.RoomID(spawn)))
		}

		return nil
	})
}

// LoadWorld reads the database back into a fresh in-memory world. Rooms are
// rebuilt first, then wired together by ID, so exit cycles come back intact.
// Item identity is not preserved across a round-trip: an item listed in two
// rooms loads as two items.
func (s *WorldStore) LoadWorld() (World, error) {
	world := NewWorld()
	records := make([]roomRecord, 0)
	var spawnID string

	err := s.database.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte("rooms"))

		err := bucket.ForEach(func(k, v []byte) error {
			var record roomRecord
			if err := MSGUnpack(v, &record); err != nil {
				return err
			}
			records = append(records, record)
			return nil
		})

		if err != nil {
			return err
		}

		meta := tx.Bucket([]byte("worldmeta"))
		spawnID = string(meta.Get([]byte("spawn")))

		return nil
	})

	if err != nil {
		return nil, err
	}

	for _, record := range records {
		room := newRoom(record.Description, record.IsTrapdoor)
		room.SetRequiredKey(record.RequiredKey)

		for i := range record.Items {
			item := record.Items[i]
			room.AddItem(&item)
		}

		for i := range record.Actors {
			actor := record.Actors[i]
			room.SetActor(&actor)
		}

		world.PutRoom(record.ID, room)
	}

	for _, record := range records {
		room := world.GetRoom(record.ID)

		for _, exit := range record.Exits {
			neighbor := world.GetRoom(exit.RoomID)
			if neighbor == nil {
				log.Printf("Room %s has a dangling %s exit to %s", record.ID, exit.Direction, exit.RoomID)
				continue
			}
			room.SetExit(exit.Direction, neighbor)
		}

		for _, destinationID := range record.TrapdoorIDs {
			destination := world.GetRoom(destinationID)
			if destination == nil {
				log.Printf("Room %s has a dangling trapdoor link to %s", record.ID, destinationID)
				continue
			}
			room.AddTrapdoorDestination(destination)
		}
	}

	if spawn := world.GetRoom(spawnID); spawn != nil {
		world.SetSpawnRoom(spawn)
	}

	return world, nil
}
