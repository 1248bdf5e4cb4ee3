// Package item holds the weapons, usable items, and the hero's pack.
package item

import (
	"errors"
	"fmt"
)

// Kind discriminates the item variants a pack slot can hold.
type Kind string

const (
	// KindPotion restores health when consumed.
	KindPotion Kind = "potion"
	// KindKey opens a named location and is never consumed.
	KindKey Kind = "key"
)

// ErrUnknownKind indicates an item with a kind the game does not recognize.
var ErrUnknownKind = errors.New("unknown item kind")

// Weapon grants its wielder a flat bonus to attack damage.
type Weapon struct {
	Name        string `json:"name"`
	DamageBonus int    `json:"damage_bonus"`
}

// Item is a single carryable object. The Kind field selects which of the
// optional fields apply: Heal for potions, Opens for keys.
type Item struct {
	Name        string `json:"name"`
	Kind        Kind   `json:"kind"`
	Description string `json:"description,omitempty"`
	Heal        int    `json:"heal,omitempty"`
	Opens       string `json:"opens,omitempty"`
}

// Validate checks that the item is well formed for its kind.
func (it Item) Validate() error {
	if it.Name == "" {
		return fmt.Errorf("item must have a name")
	}
	switch it.Kind {
	case KindPotion:
		if it.Heal <= 0 {
			return fmt.Errorf("potion %q must have positive heal", it.Name)
		}
	case KindKey:
		if it.Opens == "" {
			return fmt.Errorf("key %q must name what it opens", it.Name)
		}
	default:
		return fmt.Errorf("item %q: %w: %q", it.Name, ErrUnknownKind, it.Kind)
	}
	return nil
}

// Consumable reports whether using the item removes it from the pack.
func (it Item) Consumable() bool {
	return it.Kind == KindPotion
}
