package adventure

import (
	"log"
	"strings"
)

// MoveResult is the outcome of a MoveActor call.
type MoveResult int

// Outcomes for MoveActor
const (
	Moved MoveResult = iota
	ActorNotFound
	InvalidDestination
)

// Room represents one location in the scenery of the game. It is connected
// to other rooms via named exits; for each exit it stores a reference to the
// neighboring room. Rooms may link back to their ancestors, so the exit map
// and the trapdoor destination list form a general directed graph.
//
// Exits and actors iterate in insertion order so that rendered descriptions
// are stable between runs.
type Room struct {
	description          string
	exits                map[string]*Room
	exitOrder            []string
	isTrapdoor           bool
	trapdoorDestinations []*Room
	items                []*Item
	requiredKey          *Item
	actors               map[string]*Actor
	actorOrder           []string
}

func newRoom(description string, isTrapdoor bool) *Room {
	return &Room{
		description: description,
		exits:       make(map[string]*Room),
		isTrapdoor:  isTrapdoor,
		actors:      make(map[string]*Actor)}
}

// NewRoom creates a room described "description", which reads as a fragment
// like "a kitchen" or "an open court yard". Initially it has no exits.
func NewRoom(description string) *Room {
	return newRoom(description, false)
}

// NewTrapdoorRoom creates a room whose floor may give way, sending an
// occupant to one of the rooms registered with AddTrapdoorDestination.
func NewTrapdoorRoom(description string) *Room {
	return newRoom(description, true)
}

// IsTrapdoor reports whether this room was built with a trapdoor.
func (r *Room) IsTrapdoor() bool {
	return r.isTrapdoor
}

// GetExit returns the room reached by going in the given direction, or nil
// if there is no exit that way.
func (r *Room) GetExit(direction string) *Room {
	return r.exits[direction]
}

// SetExit defines an exit from this room, replacing any exit already set for
// that direction.
func (r *Room) SetExit(direction string, neighbor *Room) {
	if _, exists := r.exits[direction]; !exists {
		r.exitOrder = append(r.exitOrder, direction)
	}
	r.exits[direction] = neighbor
}

// AddTrapdoorDestination registers a room the trapdoor may drop an occupant
// into. Destinations accumulate in insertion order and are not deduplicated.
func (r *Room) AddTrapdoorDestination(room *Room) {
	r.trapdoorDestinations = append(r.trapdoorDestinations, room)
}

// GetTrapdoorDestinations returns the candidate rooms the trapdoor may lead
// to, in the order they were added.
func (r *Room) GetTrapdoorDestinations() []*Room {
	destinations := make([]*Room, len(r.trapdoorDestinations))
	copy(destinations, r.trapdoorDestinations)
	return destinations
}

// AddItem places an item in the room.
func (r *Room) AddItem(item *Item) {
	r.items = append(r.items, item)
}

// RemoveItem takes an item out of the room. Removing an item that is not in
// the room does nothing.
func (r *Room) RemoveItem(item *Item) {
	for i, candidate := range r.items {
		if candidate == item {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return
		}
	}
}

// GetItems returns a snapshot of the items in the room.
func (r *Room) GetItems() []*Item {
	items := make([]*Item, len(r.items))
	copy(items, r.items)
	return items
}

// FindItemByName returns the first item in the room with the given name, or
// nil if no item matches. Names compare exactly, case included.
func (r *Room) FindItemByName(itemName string) *Item {
	for _, item := range r.items {
		if item.Name == itemName {
			return item
		}
	}
	return nil
}

// GetShortDescription returns the description the room was built with.
func (r *Room) GetShortDescription() string {
	return r.description
}

// SetDescription replaces the room's description.
func (r *Room) SetDescription(description string) {
	r.description = description
}

// GetLongDescription renders the room as prose in the form:
//
//	You are in the kitchen.
//	There is a(n) sword laying around. shiny.
//	A(n) goblin is in the room.
//	Exits: north west
//
// The exact phrasing, including "There are" for uncountable singular nouns,
// is load-bearing: clients diff against it.
func (r *Room) GetLongDescription() string {
	var longDescription strings.Builder
	longDescription.WriteString("You are " + r.description + ".\n")

	for _, item := range r.items {
		// Proper grammar for singular and plural
		if item.Count != 1 {
			longDescription.WriteString("There are " + item.Name + " laying around.")
		} else {
			longDescription.WriteString("There is a(n) " + item.Name + " laying around.")
		}

		if strings.TrimSpace(item.ItemDescription) != "" {
			longDescription.WriteString(" " + item.ItemDescription + ".\n")
		} else {
			longDescription.WriteString("\n")
		}
	}

	for _, name := range r.actorOrder {
		actor := r.actors[name]
		longDescription.WriteString("A(n) " + actor.Name + " is in the room. ")
		if actor.Description != "" {
			longDescription.WriteString(actor.Description + "\n")
		} else {
			longDescription.WriteString("\n")
		}
	}

	longDescription.WriteString(r.getExitString())

	return longDescription.String()
}

// getExitString lists the room's exits, e.g. "Exits: north west".
func (r *Room) getExitString() string {
	returnString := "Exits:"
	for _, direction := range r.exitOrder {
		returnString += " " + direction
	}
	return returnString
}

// GetRequiredKey returns the item needed to enter this room, or nil if the
// room is not locked. The room only stores the key; gating happens in
// whatever drives the player around.
func (r *Room) GetRequiredKey() *Item {
	return r.requiredKey
}

// SetRequiredKey sets the item needed to enter this room.
func (r *Room) SetRequiredKey(key *Item) {
	r.requiredKey = key
}

// SetActor puts an actor in the room, keyed by its name. An actor already
// present under the same name is silently replaced; last write wins.
func (r *Room) SetActor(actor *Actor) {
	if _, exists := r.actors[actor.Name]; !exists {
		r.actorOrder = append(r.actorOrder, actor.Name)
	}
	r.actors[actor.Name] = actor
}

// GetActor looks an actor up by name. Returns nil if no such actor is here.
func (r *Room) GetActor(name string) *Actor {
	return r.actors[name]
}

// GetActors returns a snapshot of the actors in the room, in the order they
// arrived.
func (r *Room) GetActors() []*Actor {
	actors := make([]*Actor, 0, len(r.actorOrder))
	for _, name := range r.actorOrder {
		actors = append(actors, r.actors[name])
	}
	return actors
}

// RemoveActor removes an actor from the room, sending it to the shadow
// realm. Cannot be undone. Removing a name that is not here does nothing.
func (r *Room) RemoveActor(name string) {
	if _, exists := r.actors[name]; !exists {
		return
	}
	delete(r.actors, name)
	for i, candidate := range r.actorOrder {
		if candidate == name {
			r.actorOrder = append(r.actorOrder[:i], r.actorOrder[i+1:]...)
			break
		}
	}
}

// MoveActor relocates the named actor from this room to the given room. If
// the actor is not here, or the destination does not exist, nothing moves:
// the failure is logged and reported in the result, never raised. Callers
// that do not care may ignore the result.
func (r *Room) MoveActor(actorName string, room *Room) MoveResult {
	actor, exists := r.actors[actorName]

	if !exists {
		log.Printf("Not moving %q: no such actor in this room", actorName)
		return ActorNotFound
	}

	if room == nil {
		log.Printf("Not moving %q: destination room does not exist", actorName)
		return InvalidDestination
	}

	r.RemoveActor(actor.Name)
	room.SetActor(actor)

	return Moved
}
