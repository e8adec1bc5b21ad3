package adventure

import (
	"encoding/json"
	"io/ioutil"
	"log"
)

// ItemTypes is a mapping of string IDs to item templates, loaded from
// items.json.
var ItemTypes map[string]Item

// Item is a thing laying around in a room or carried by the player. Weight
// is per unit; a stack of Count items weighs Count times that.
type Item struct {
	Name            string  `json:""`
	Count           int     `json:""`
	Weight          float64 `json:""`
	ItemDescription string  `json:""`
}

// StackWeight is the weight of the whole stack.
func (item *Item) StackWeight() float64 {
	return item.Weight * float64(item.Count)
}

// SpawnItem makes a fresh item from the template registered under the given
// ID, or nil if the catalog has no such entry.
func SpawnItem(id string) *Item {
	template, ok := ItemTypes[id]
	if !ok {
		return nil
	}

	item := template
	return &item
}

func loadItemTypes(itemInfoFile string) {
	data, err := ioutil.ReadFile(itemInfoFile)

	if err == nil {
		err = json.Unmarshal(data, &ItemTypes)
	}

	if err != nil {
		log.Printf("Error parsing %s: %v", itemInfoFile, err)
	}
}

func init() {
	ItemTypes = make(map[string]Item)
}
