package adventure

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/mgutz/ansi"
)

const helpText = `Commands:
  go <direction>   walk through an exit
  back             retrace your last step
  look             describe the room again
  take <item>      pick an item up
  drop <item>      put a carried item down
  inventory        list what you carry
  coins            count your coin pouch
  quit             leave the game`

type commandHandler func(game *Game, args string)

var commandHandlers = map[string]commandHandler{
	"go":        doGo,
	"back":      doBack,
	"look":      doLook,
	"l":         doLook,
	"take":      doTake,
	"drop":      doDrop,
	"inventory": doInventory,
	"i":         doInventory,
	"coins":     doCoins,
	"help":      doHelp,
	"quit":      doQuit,
}

// Game drives one player's session against a shared world. All output goes
// to out; Run reads commands line by line from any reader, so the same loop
// serves a local terminal and an SSH session.
type Game struct {
	world         World
	player        *Player
	out           io.Writer
	rng           *rand.Rand
	quitRequested bool
}

// NewGame starts a session with a fresh player standing in the world's
// spawn room.
func NewGame(world World, out io.Writer) *Game {
	game := &Game{
		world:  world,
		player: NewPlayer(DefaultCarryWeight),
		out:    out,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano()))}

	game.player.MoveTo(world.SpawnRoom())

	return game
}

// Player returns the player this session belongs to.
func (g *Game) Player() *Player {
	return g.player
}

// HandleCommand parses and executes one input line. A verb matching an exit
// of the current room works as a shortcut for "go <verb>".
func (g *Game) HandleCommand(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	tokenized := strings.SplitN(line, " ", 2)
	verb := tokenized[0]
	args := ""
	if len(tokenized) > 1 {
		args = strings.TrimSpace(tokenized[1])
	}

	handler, isKeyword := commandHandlers[verb]

	if !isKeyword {
		if here := g.player.Location(); here != nil && here.GetExit(verb) != nil {
			doGo(g, verb)
			return
		}

		fmt.Fprintln(g.out, "I don't know what you mean...")
		return
	}

	handler(g, args)
}

// Run plays the game loop until quit or the input runs dry.
func (g *Game) Run(in io.Reader) {
	title := ansi.ColorFunc("white+b")
	fmt.Fprintln(g.out, title("Welcome to the cellar!"))
	fmt.Fprintln(g.out, "Type 'help' if you need help.")
	fmt.Fprintln(g.out, "")
	fmt.Fprintln(g.out, g.player.Location().GetLongDescription())

	prompt := ansi.ColorCode("green+b") + "> " + ansi.ColorCode("reset")
	scanner := bufio.NewScanner(in)

	for {
		io.WriteString(g.out, prompt)

		if !scanner.Scan() {
			return
		}

		g.HandleCommand(scanner.Text())

		if g.quitRequested {
			return
		}
	}
}

// enterRoom finishes a move into a room: a trapdoor may immediately drop
// the player elsewhere, and there is no walking back up out of a fall.
func (g *Game) enterRoom(room *Room) {
	if room.IsTrapdoor() {
		destinations := room.GetTrapdoorDestinations()
		if len(destinations) > 0 {
			fmt.Fprintln(g.out, "The floor gives way beneath you!")
			room = destinations[g.rng.Intn(len(destinations))]
			g.player.MoveTo(room)
			g.player.DropTrail()
		}
	}

	fmt.Fprintln(g.out, room.GetLongDescription())
}

func doGo(g *Game, args string) {
	direction := strings.Fields(args)
	if len(direction) == 0 {
		fmt.Fprintln(g.out, "Go where?")
		return
	}

	here := g.player.Location()
	next := here.GetExit(direction[0])

	if next == nil {
		fmt.Fprintln(g.out, "There is no exit that way!")
		return
	}

	if key := next.GetRequiredKey(); key != nil && g.player.FindItemByName(key.Name) == nil {
		fmt.Fprintf(g.out, "The door is locked. You need the %s to enter.\n", key.Name)
		return
	}

	g.player.MoveTo(next)
	g.enterRoom(next)
}

func doBack(g *Game, args string) {
	room := g.player.GoBack()
	if room == nil {
		fmt.Fprintln(g.out, "You can't go back from here.")
		return
	}

	fmt.Fprintln(g.out, room.GetLongDescription())
}

func doLook(g *Game, args string) {
	fmt.Fprintln(g.out, g.player.Location().GetLongDescription())
}

func doTake(g *Game, args string) {
	if args == "" {
		fmt.Fprintln(g.out, "Take what?")
		return
	}

	here := g.player.Location()
	item := here.FindItemByName(args)

	if item == nil {
		fmt.Fprintf(g.out, "There is no %s here.\n", args)
		return
	}

	if item.Name == "coin-purse" {
		here.RemoveItem(item)
		g.player.AddCoins(10 * item.Count)
		fmt.Fprintln(g.out, "You empty the purse into your coin pouch.")
		return
	}

	if !g.player.Take(item) {
		fmt.Fprintf(g.out, "The %s is too heavy to carry.\n", item.Name)
		return
	}

	here.RemoveItem(item)
	fmt.Fprintf(g.out, "You take the %s.\n", item.Name)
}

func doDrop(g *Game, args string) {
	if args == "" {
		fmt.Fprintln(g.out, "Drop what?")
		return
	}

	item := g.player.FindItemByName(args)
	if item == nil {
		fmt.Fprintf(g.out, "You are not carrying %s.\n", args)
		return
	}

	g.player.Drop(item)
	g.player.Location().AddItem(item)
	fmt.Fprintf(g.out, "You drop the %s.\n", item.Name)
}

func doInventory(g *Game, args string) {
	items := g.player.GetItems()
	if len(items) == 0 {
		fmt.Fprintln(g.out, "You are carrying nothing.")
		return
	}

	for _, item := range items {
		fmt.Fprintf(g.out, "  %s (%.1f)\n", item.Name, item.StackWeight())
	}
	fmt.Fprintf(g.out, "Carrying %.1f of %.1f.\n", g.player.CarriedWeight(), g.player.MaxWeight())
}

func doCoins(g *Game, args string) {
	fmt.Fprintf(g.out, "Your pouch holds %d coins.\n", g.player.Coins())
}

func doHelp(g *Game, args string) {
	fmt.Fprintln(g.out, helpText)
}

func doQuit(g *Game, args string) {
	fmt.Fprintln(g.out, "Thank you for playing. Good bye.")
	g.quitRequested = true
}
