package adventure

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/ojrac/opensimplex-go"
)

// Cardinal directions used by generated maps. Hand-built maps are free to
// use any labels they like.
const (
	DirectionNorth = "north"
	DirectionEast  = "east"
	DirectionSouth = "south"
	DirectionWest  = "west"
)

// OppositeDirection gives the direction walking back, "" for a label it
// does not know.
func OppositeDirection(direction string) string {
	switch direction {
	case DirectionNorth:
		return DirectionSouth
	case DirectionSouth:
		return DirectionNorth
	case DirectionEast:
		return DirectionWest
	case DirectionWest:
		return DirectionEast
	}

	return ""
}

// Flavor fragments for generated cellar rooms, ordered from driest to
// dampest. Noise picks one per cell.
var cellarFlavors = []string{
	"in a dusty storage vault",
	"in a cobwebbed passage",
	"in a low brick tunnel",
	"in a dripping limestone gallery",
	"in a flooded cistern chamber",
}

// Item and actor template IDs sprinkled into generated cellars. Fixed
// slices, not catalog map iteration, keep generation deterministic per seed.
var cellarItemIDs = []string{"candle", "coin-purse", "rusty-key"}
var cellarActorIDs = []string{"rat", "ghoul"}

var genOnsets = []string{"gr", "dr", "thr", "k", "v", "m", "sk", "b"}
var genVowels = []string{"a", "e", "o", "u", "ei", "au"}
var genCodae = []string{"rn", "lm", "st", "ck", "mb", "th", "x", ""}
var genSuffixes = []string{" deep", " hollow", " undercroft", " warren", " crypt", " sump"}

// randomPlaceName invents a name for a stretch of cellar, like "Graulmb
// undercroft".
func randomPlaceName(rng *rand.Rand) string {
	name := ""
	for i := 0; i < 1+rng.Intn(2); i++ {
		name += genOnsets[rng.Intn(len(genOnsets))]
		name += genVowels[rng.Intn(len(genVowels))]
		name += genCodae[rng.Intn(len(genCodae))]
	}
	name += genSuffixes[rng.Intn(len(genSuffixes))]

	return strings.Title(name)
}

// GenerateCellar builds a width by height grid of connected rooms under a
// shared place name and registers them with the world. Dampness noise picks
// each room's flavor; the dampest cells get trapdoors that drop the occupant
// somewhere else in the grid, the driest collect loot and vermin from the
// catalogs. Returns the entry room at the north-west corner. The same seed
// always produces the same cellar.
func GenerateCellar(world World, width, height int, seed int64) *Room {
	noise := opensimplex.NewWithSeed(seed)
	rng := rand.New(rand.NewSource(seed))
	placeName := randomPlaceName(rng)

	rooms := make([][]*Room, height)
	trapdoors := make([]*Room, 0)

	for y := 0; y < height; y++ {
		rooms[y] = make([]*Room, width)
		for x := 0; x < width; x++ {
			dampness := noise.Eval2(float64(x)/3.0, float64(y)/3.0)

			flavor := flavorForDampness(dampness)
			description := fmt.Sprintf("%s of %s", flavor, placeName)

			var room *Room
			if dampness > 0.55 {
				room = world.NewTrapdoorRoom(description)
				trapdoors = append(trapdoors, room)
			} else {
				room = world.NewRoom(description)
			}

			if dampness < -0.55 {
				itemID := cellarItemIDs[rng.Intn(len(cellarItemIDs))]
				if item := SpawnItem(itemID); item != nil {
					room.AddItem(item)
				}
			}

			if dampness > 0.2 && dampness <= 0.55 {
				actorID := cellarActorIDs[rng.Intn(len(cellarActorIDs))]
				if actor := SpawnActor(actorID); actor != nil {
					actor.Name = fmt.Sprintf("%s %d-%d", actor.Name, x, y)
					room.SetActor(actor)
				}
			}

			rooms[y][x] = room

			if x > 0 {
				room.SetExit(DirectionWest, rooms[y][x-1])
				rooms[y][x-1].SetExit(DirectionEast, room)
			}
			if y > 0 {
				room.SetExit(DirectionNorth, rooms[y-1][x])
				rooms[y-1][x].SetExit(DirectionSouth, room)
			}
		}
	}

	for _, trapdoor := range trapdoors {
		for i := 0; i < 2; i++ {
			destination := rooms[rng.Intn(height)][rng.Intn(width)]
			trapdoor.AddTrapdoorDestination(destination)
		}
	}

	return rooms[0][0]
}

func flavorForDampness(dampness float64) string {
	// Noise lands in [-1, 1]; bucket it across the flavor list.
	index := int((dampness + 1.0) / 2.0 * float64(len(cellarFlavors)))
	if index >= len(cellarFlavors) {
		index = len(cellarFlavors) - 1
	}
	if index < 0 {
		index = 0
	}
	return cellarFlavors[index]
}
