package adventure

import "log"

// LoadOrBuildWorld loads the world from the database at filename, falling
// back to building (and saving) the default world when the database is
// empty. An empty filename skips persistence entirely.
func LoadOrBuildWorld(filename string, seed int64) (World, error) {
	if filename == "" {
		return BuildDefaultWorld(NewWorld(), seed), nil
	}

	store, err := OpenWorldStore(filename)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	world, err := store.LoadWorld()
	if err != nil {
		return nil, err
	}

	if world.SpawnRoom() != nil {
		log.Printf("Loaded %d rooms from %s", len(world.RoomIDs()), filename)
		return world, nil
	}

	world = BuildDefaultWorld(NewWorld(), seed)
	if err := store.SaveWorld(world); err != nil {
		return nil, err
	}
	log.Printf("Built a fresh world into %s", filename)

	return world, nil
}

// BuildDefaultWorld fills the world with the campus map: a courtyard ringed
// by a theater, a pub, a lab and a locked office, with a trapdoor-riddled
// wine cellar below that drops unlucky visitors into a generated
// undercellar. Returns the world for chaining. Seed fixes the undercellar
// layout.
func BuildDefaultWorld(world World, seed int64) World {
	outside := world.NewRoom("outside the main entrance of the university")
	theater := world.NewRoom("in a lecture theater")
	pub := world.NewRoom("in the campus pub")
	lab := world.NewRoom("in a computing lab")
	office := world.NewRoom("in the computing admin office")
	cellar := world.NewTrapdoorRoom("in the wine cellar under the pub")

	outside.SetExit(DirectionEast, theater)
	outside.SetExit(DirectionSouth, lab)
	outside.SetExit(DirectionWest, pub)
	theater.SetExit(DirectionWest, outside)
	pub.SetExit(DirectionEast, outside)
	pub.SetExit("down", cellar)
	lab.SetExit(DirectionNorth, outside)
	lab.SetExit(DirectionEast, office)
	office.SetExit(DirectionWest, lab)
	cellar.SetExit("up", pub)

	officeKey := &Item{Name: "brass key", Count: 1, Weight: 0.1,
		ItemDescription: "it looks like it fits the admin office door"}
	pub.AddItem(officeKey)
	office.SetRequiredKey(officeKey)

	pub.AddItem(&Item{Name: "beer", Count: 2, Weight: 1.0})
	lab.AddItem(&Item{Name: "notebook", Count: 1, Weight: 0.5,
		ItemDescription: "full of scribbled exam answers"})
	outside.AddItem(&Item{Name: "apples", Count: 3, Weight: 0.2})

	theater.SetActor(&Actor{Name: "professor",
		Description: "He is scribbling on the blackboard and ignoring you."})
	cellar.SetActor(&Actor{Name: "cellar goblin",
		Description: "It eyes your coin pouch hungrily."})

	undercellar := GenerateCellar(world, 5, 5, seed)
	cellar.AddTrapdoorDestination(undercellar)
	for _, room := range []*Room{undercellar.GetExit(DirectionEast), undercellar.GetExit(DirectionSouth)} {
		if room != nil {
			cellar.AddTrapdoorDestination(room)
		}
	}
	undercellar.SetExit("up", cellar)

	world.SetSpawnRoom(outside)

	return world
}
