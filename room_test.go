package adventure

import (
	"testing"
)

func TestGetExitReturnsNilForUnknownDirection(t *testing.T) {
	room := NewRoom("a kitchen")

	if room.GetExit("north") != nil {
		t.Errorf("An unset direction should have no exit.")
	}
}

func TestSetExitOverwritesPriorNeighbor(t *testing.T) {
	room := NewRoom("a kitchen")
	first := NewRoom("a pantry")
	second := NewRoom("a hallway")

	room.SetExit("north", first)
	room.SetExit("north", second)

	if room.GetExit("north") != second {
		t.Errorf("SetExit should replace the prior neighbor.")
	}

	if len(room.exitOrder) != 1 {
		t.Errorf("Overwriting an exit should not duplicate its direction, got %v", room.exitOrder)
	}
}

func TestExitsCanFormCycles(t *testing.T) {
	a := NewRoom("room a")
	b := NewRoom("room b")

	a.SetExit("east", b)
	b.SetExit("west", a)
	a.SetExit("self", a)

	if a.GetExit("east").GetExit("west") != a {
		t.Errorf("Walking east then west should land back in room a.")
	}

	if a.GetExit("self") != a {
		t.Errorf("A room should be allowed to exit into itself.")
	}
}

func TestAddThenRemoveItemRestoresSequence(t *testing.T) {
	room := NewRoom("a kitchen")
	staying := &Item{Name: "apples", Count: 3}
	passing := &Item{Name: "pear", Count: 1}

	room.AddItem(staying)
	room.AddItem(passing)
	room.RemoveItem(passing)

	items := room.GetItems()
	if len(items) != 1 || items[0] != staying {
		t.Errorf("Add then remove should restore the prior sequence, got %v", items)
	}
}

func TestRemoveItemIgnoresNonMember(t *testing.T) {
	room := NewRoom("a kitchen")
	item := &Item{Name: "apples", Count: 3}
	stranger := &Item{Name: "apples", Count: 3}

	room.AddItem(item)
	room.RemoveItem(stranger)

	if len(room.GetItems()) != 1 {
		t.Errorf("Removing a non-member item should leave the sequence unchanged.")
	}
}

func TestFindItemByNameReturnsFirstMatch(t *testing.T) {
	room := NewRoom("a kitchen")
	first := &Item{Name: "sword", Count: 1}
	second := &Item{Name: "sword", Count: 1}

	room.AddItem(first)
	room.AddItem(second)

	if room.FindItemByName("sword") != first {
		t.Errorf("Should return the first item sharing the name.")
	}

	if room.FindItemByName("Sword") != nil {
		t.Errorf("Name matching is case-sensitive.")
	}

	if room.FindItemByName("shield") != nil {
		t.Errorf("Should return nil when nothing matches.")
	}
}

func TestGetItemsReturnsSnapshot(t *testing.T) {
	room := NewRoom("a kitchen")
	room.AddItem(&Item{Name: "apples", Count: 3})

	items := room.GetItems()
	items[0] = nil

	if room.GetItems()[0] == nil {
		t.Errorf("Mutating the returned slice should not touch room state.")
	}
}

func TestLongDescriptionPluralItemAndExit(t *testing.T) {
	room := NewRoom("a kitchen")
	room.AddItem(&Item{Name: "apples", Count: 3})
	room.SetExit("north", NewRoom("a pantry"))

	want := "You are a kitchen.\nThere are apples laying around.\nExits: north"
	if got := room.GetLongDescription(); got != want {
		t.Errorf("Long description mismatch.\ngot:  %q\nwant: %q", got, want)
	}
}

func TestLongDescriptionSingularItemWithDescription(t *testing.T) {
	room := NewRoom("an armory")
	room.AddItem(&Item{Name: "sword", Count: 1, ItemDescription: "shiny"})

	want := "You are an armory.\nThere is a(n) sword laying around. shiny.\nExits:"
	if got := room.GetLongDescription(); got != want {
		t.Errorf("Long description mismatch.\ngot:  %q\nwant: %q", got, want)
	}
}

func TestLongDescriptionBlankItemDescriptionIsSuppressed(t *testing.T) {
	room := NewRoom("an armory")
	room.AddItem(&Item{Name: "sword", Count: 1, ItemDescription: "   "})

	want := "You are an armory.\nThere is a(n) sword laying around.\nExits:"
	if got := room.GetLongDescription(); got != want {
		t.Errorf("Whitespace-only item descriptions should render as a bare line break.\ngot: %q", got)
	}
}

func TestLongDescriptionActors(t *testing.T) {
	room := NewRoom("a cellar")
	room.SetActor(&Actor{Name: "goblin", Description: "It looks hungry."})
	room.SetActor(&Actor{Name: "rat"})
	room.SetExit("up", NewRoom("a pub"))

	want := "You are a cellar.\n" +
		"A(n) goblin is in the room. It looks hungry.\n" +
		"A(n) rat is in the room. \n" +
		"Exits: up"
	if got := room.GetLongDescription(); got != want {
		t.Errorf("Long description mismatch.\ngot:  %q\nwant: %q", got, want)
	}
}

func TestExitStringKeepsInsertionOrder(t *testing.T) {
	room := NewRoom("a crossroads")
	room.SetExit("west", NewRoom("w"))
	room.SetExit("north", NewRoom("n"))
	room.SetExit("east", NewRoom("e"))

	want := "You are a crossroads.\nExits: west north east"
	if got := room.GetLongDescription(); got != want {
		t.Errorf("Exits should list in insertion order.\ngot: %q", got)
	}
}

func TestSetActorSameNameReplacesLastWriteWins(t *testing.T) {
	room := NewRoom("a cellar")
	older := &Actor{Name: "goblin", Description: "old"}
	newer := &Actor{Name: "goblin", Description: "new"}

	room.SetActor(older)
	room.SetActor(newer)

	actors := room.GetActors()
	if len(actors) != 1 || actors[0] != newer {
		t.Errorf("Setting a same-named actor should silently replace, got %v", actors)
	}
}

func TestRemoveActorIsNoOpWhenAbsent(t *testing.T) {
	room := NewRoom("a cellar")
	room.SetActor(&Actor{Name: "goblin"})

	room.RemoveActor("dragon")

	if len(room.GetActors()) != 1 {
		t.Errorf("Removing an absent actor should do nothing.")
	}

	room.RemoveActor("goblin")

	if room.GetActor("goblin") != nil {
		t.Errorf("Removed actor should be gone.")
	}
}

func TestMoveActorRelocates(t *testing.T) {
	roomA := NewRoom("room a")
	roomB := NewRoom("room b")
	goblin := &Actor{Name: "Goblin"}
	roomA.SetActor(goblin)

	if result := roomA.MoveActor("Goblin", roomB); result != Moved {
		t.Errorf("Expected Moved, got %v", result)
	}

	if roomA.GetActor("Goblin") != nil {
		t.Errorf("Goblin should have left room a.")
	}

	if roomB.GetActor("Goblin") != goblin {
		t.Errorf("Goblin should have arrived in room b.")
	}
}

func TestMoveActorMissingActorIsNoOp(t *testing.T) {
	roomA := NewRoom("room a")
	roomB := NewRoom("room b")
	roomB.SetActor(&Actor{Name: "rat"})

	if result := roomA.MoveActor("Goblin", roomB); result != ActorNotFound {
		t.Errorf("Expected ActorNotFound, got %v", result)
	}

	if len(roomA.GetActors()) != 0 || len(roomB.GetActors()) != 1 {
		t.Errorf("A failed move should not mutate either room.")
	}
}

func TestMoveActorNilDestinationIsNoOp(t *testing.T) {
	roomA := NewRoom("room a")
	goblin := &Actor{Name: "Goblin"}
	roomA.SetActor(goblin)

	if result := roomA.MoveActor("Goblin", nil); result != InvalidDestination {
		t.Errorf("Expected InvalidDestination, got %v", result)
	}

	if roomA.GetActor("Goblin") != goblin {
		t.Errorf("Goblin should still be in room a after a failed move.")
	}
}

func TestMoveActorToSameRoomKeepsActor(t *testing.T) {
	room := NewRoom("room a")
	goblin := &Actor{Name: "Goblin"}
	room.SetActor(goblin)

	if result := room.MoveActor("Goblin", room); result != Moved {
		t.Errorf("Expected Moved, got %v", result)
	}

	if room.GetActor("Goblin") != goblin {
		t.Errorf("Moving to the same room should degenerate to a no-op relocation.")
	}
}

func TestTrapdoorDestinationsAppendWithoutDedup(t *testing.T) {
	cellar := NewTrapdoorRoom("a wine cellar")
	pit := NewRoom("a pit")

	if !cellar.IsTrapdoor() {
		t.Errorf("Room should report its trapdoor flag.")
	}

	cellar.AddTrapdoorDestination(pit)
	cellar.AddTrapdoorDestination(pit)

	destinations := cellar.GetTrapdoorDestinations()
	if len(destinations) != 2 || destinations[0] != pit || destinations[1] != pit {
		t.Errorf("Destinations should keep insertion order and duplicates, got %v", destinations)
	}
}

func TestSetDescriptionReplacesShortDescription(t *testing.T) {
	room := NewRoom("a kitchen")
	room.SetDescription("a burned-out kitchen")

	if room.GetShortDescription() != "a burned-out kitchen" {
		t.Errorf("SetDescription should replace the description.")
	}
}

func TestRequiredKeyIsStoredNotEnforced(t *testing.T) {
	room := NewRoom("an office")
	key := &Item{Name: "brass key", Count: 1}

	if room.GetRequiredKey() != nil {
		t.Errorf("A fresh room should have no required key.")
	}

	room.SetRequiredKey(key)

	if room.GetRequiredKey() != key {
		t.Errorf("The stored key should come back as-is.")
	}
}
