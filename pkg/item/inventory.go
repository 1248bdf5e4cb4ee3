package item

import (
	"errors"
	"strings"
)

// DefaultSlots is the pack capacity used when a campaign does not set one.
const DefaultSlots = 10

var (
	// ErrPackFull indicates the pack has no free slot for another item.
	ErrPackFull = errors.New("pack is full")
	// ErrItemNotFound indicates no item in the pack matches the given name.
	ErrItemNotFound = errors.New("item not found in pack")
	// ErrInsufficientGold indicates a spend larger than the gold held.
	ErrInsufficientGold = errors.New("not enough gold")
)

// Inventory is the hero's bounded item pack and gold purse.
type Inventory struct {
	slots int
	items []Item
	gold  int
}

// NewInventory creates an empty inventory. Non-positive slot counts fall
// back to DefaultSlots.
func NewInventory(slots int) *Inventory {
	if slots <= 0 {
		slots = DefaultSlots
	}
	return &Inventory{slots: slots}
}

// Add places an item into the pack.
func (inv *Inventory) Add(it Item) error {
	if len(inv.items) >= inv.slots {
		return ErrPackFull
	}
	inv.items = append(inv.items, it)
	return nil
}

// Find returns the first item matching name. Matching ignores case.
func (inv *Inventory) Find(name string) (Item, bool) {
	for _, it := range inv.items {
		if strings.EqualFold(it.Name, name) {
			return it, true
		}
	}
	return Item{}, false
}

// Remove takes the first item matching name out of the pack.
func (inv *Inventory) Remove(name string) (Item, error) {
	for i, it := range inv.items {
		if strings.EqualFold(it.Name, name) {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			return it, nil
		}
	}
	return Item{}, ErrItemNotFound
}

// Items returns a copy of the pack contents in carry order.
func (inv *Inventory) Items() []Item {
	out := make([]Item, len(inv.items))
	copy(out, inv.items)
	return out
}

// Len returns the number of occupied slots.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Slots returns the pack capacity.
func (inv *Inventory) Slots() int {
	return inv.slots
}

// IsFull reports whether every slot is occupied.
func (inv *Inventory) IsFull() bool {
	return len(inv.items) >= inv.slots
}

// Gold returns the gold held.
func (inv *Inventory) Gold() int {
	return inv.gold
}

// AddGold credits gold to the purse. Non-positive amounts are ignored.
func (inv *Inventory) AddGold(n int) {
	if n <= 0 {
		return
	}
	inv.gold += n
}

// SpendGold debits gold from the purse.
func (inv *Inventory) SpendGold(n int) error {
	if n <= 0 {
		return nil
	}
	if n > inv.gold {
		return ErrInsufficientGold
	}
	inv.gold -= n
	return nil
}
