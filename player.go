package adventure

// DefaultCarryWeight is the weight a fresh player can haul around.
const DefaultCarryWeight = 25.0

// Player holds the state belonging to the person playing: the room they
// stand in, an inventory capped by a maximum carry weight, a coin pouch
// capped only by greed, and the trail of rooms walked through so "back"
// can retrace it.
type Player struct {
	location  *Room
	trail     []*Room
	items     []*Item
	maxWeight float64
	coins     int
}

// NewPlayer creates a player able to carry maxWeight worth of items. A
// non-positive maxWeight falls back to DefaultCarryWeight.
func NewPlayer(maxWeight float64) *Player {
	if maxWeight <= 0 {
		maxWeight = DefaultCarryWeight
	}
	return &Player{maxWeight: maxWeight}
}

// Location returns the room the player is in, nil before the first MoveTo.
func (p *Player) Location() *Room {
	return p.location
}

// MoveTo walks the player into a room, remembering where they came from.
func (p *Player) MoveTo(room *Room) {
	if p.location != nil {
		p.trail = append(p.trail, p.location)
	}
	p.location = room
}

// GoBack retraces the last step of the trail and returns the room stepped
// into, or nil when there is nowhere to go back to.
func (p *Player) GoBack() *Room {
	if len(p.trail) == 0 {
		return nil
	}

	room := p.trail[len(p.trail)-1]
	p.trail = p.trail[:len(p.trail)-1]
	p.location = room
	return room
}

// DropTrail forgets the way back. Falling through a trapdoor does this:
// there is no retracing a fall.
func (p *Player) DropTrail() {
	p.trail = nil
}

// Take puts an item into the inventory. Returns false, leaving the
// inventory untouched, when the item would push the carried weight past the
// maximum.
func (p *Player) Take(item *Item) bool {
	if p.CarriedWeight()+item.StackWeight() > p.maxWeight {
		return false
	}

	p.items = append(p.items, item)
	return true
}

// Drop removes an item from the inventory. Dropping an item the player does
// not carry does nothing.
func (p *Player) Drop(item *Item) {
	for i, candidate := range p.items {
		if candidate == item {
			p.items = append(p.items[:i], p.items[i+1:]...)
			return
		}
	}
}

// FindItemByName returns the first carried item with the given name, or nil.
func (p *Player) FindItemByName(itemName string) *Item {
	for _, item := range p.items {
		if item.Name == itemName {
			return item
		}
	}
	return nil
}

// GetItems returns a snapshot of the inventory.
func (p *Player) GetItems() []*Item {
	items := make([]*Item, len(p.items))
	copy(items, p.items)
	return items
}

// CarriedWeight sums the weight of everything in the inventory.
func (p *Player) CarriedWeight() float64 {
	total := 0.0
	for _, item := range p.items {
		total += item.StackWeight()
	}
	return total
}

// MaxWeight returns the carry limit.
func (p *Player) MaxWeight() float64 {
	return p.maxWeight
}

// Coins returns the contents of the coin pouch.
func (p *Player) Coins() int {
	return p.coins
}

// AddCoins drops coins into the pouch.
func (p *Player) AddCoins(amount int) {
	p.coins += amount
}

// SpendCoins takes coins out of the pouch. Returns false, leaving the pouch
// untouched, when it holds fewer than the asked amount.
func (p *Player) SpendCoins(amount int) bool {
	if amount > p.coins {
		return false
	}
	p.coins -= amount
	return true
}
