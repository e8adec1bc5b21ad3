package adventure

import (
	"encoding/json"
	"io/ioutil"
	"log"
)

// ActorTypes is a mapping of string IDs to actor templates, loaded from
// bestiary.json.
var ActorTypes map[string]Actor

// Actor is a named NPC occupying a room. The name doubles as the actor's key
// in the room it stands in, so two actors sharing a name cannot share a
// room. Description may be empty.
type Actor struct {
	Name        string `json:""`
	Description string `json:",omitempty"`
}

// SpawnActor makes a fresh actor from the template registered under the
// given ID, or nil if the bestiary has no such entry.
func SpawnActor(id string) *Actor {
	template, ok := ActorTypes[id]
	if !ok {
		return nil
	}

	actor := template
	return &actor
}

func loadActorTypes(actorInfoFile string) {
	data, err := ioutil.ReadFile(actorInfoFile)

	if err == nil {
		err = json.Unmarshal(data, &ActorTypes)
	}

	if err != nil {
		log.Printf("Error parsing %s: %v", actorInfoFile, err)
	}
}

func init() {
	ActorTypes = make(map[string]Actor)
}
