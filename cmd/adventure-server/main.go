package main

import (
	"flag"
	"log"

	"github.com/mudkit/adventure"
)

func main() {
	listen := flag.String("listen", ":2222", "address for the SSH server")
	worldFile := flag.String("world", "./world.db", "world database to load or create")
	seed := flag.Int64("seed", 42, "seed for the generated undercellar")
	flag.Parse()

	adventure.LoadResources()

	world, err := adventure.LoadOrBuildWorld(*worldFile, *seed)
	if err != nil {
		log.Fatalf("Could not set up world: %v", err)
	}

	log.Fatal(adventure.ServeSSH(*listen, world))
}
