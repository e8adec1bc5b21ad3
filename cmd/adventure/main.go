package main

import (
	"flag"
	"log"
	"os"

	"github.com/mudkit/adventure"
)

func main() {
	worldFile := flag.String("world", "", "world database to load or create (empty for in-memory only)")
	seed := flag.Int64("seed", 42, "seed for the generated undercellar")
	flag.Parse()

	adventure.LoadResources()

	world, err := adventure.LoadOrBuildWorld(*worldFile, *seed)
	if err != nil {
		log.Fatalf("Could not set up world: %v", err)
	}

	game := adventure.NewGame(world, os.Stdout)
	game.Run(os.Stdin)
}
