// Package actor defines the combat participants of a campaign.
package actor

import (
	"fmt"
	"maps"
	"strings"

	"github.com/jwebster45206/d20"
	"github.com/jwebster45206/realmquest/pkg/item"
)

// Kind discriminates combat participants. Boss behavior is data on the
// spec rather than a subtype, so the combat resolver can interpret it.
type Kind string

const (
	// KindAdventurer is the player's hero.
	KindAdventurer Kind = "adventurer"
	// KindBoss is an enemy with bonus damage and follow-up strikes.
	KindBoss Kind = "boss"
)

// AttrAttack is the attribute key holding a character's base attack power.
const AttrAttack = "attack"

// BossTrait carries the extra combat behavior of boss enemies.
type BossTrait struct {
	BonusDamage    int     `json:"bonus_damage,omitempty"`
	FollowupChance float64 `json:"followup_chance,omitempty"`
}

// CharacterSpec is the serializable definition of a combat participant.
// Campaigns ship specs; the runtime Character is built from one.
type CharacterSpec struct {
	ID          string         `json:"id,omitempty"`
	Name        string         `json:"name"`
	Kind        Kind           `json:"kind,omitempty"`
	Description string         `json:"description,omitempty"`
	MaxHealth   int            `json:"max_health"`
	Health      int            `json:"health,omitempty"`
	Attack      int            `json:"attack"`
	AC          int            `json:"ac,omitempty"`
	CritChance  float64        `json:"crit_chance,omitempty"`
	Weapon      *item.Weapon   `json:"weapon,omitempty"`
	Attributes  map[string]int `json:"attributes,omitempty"`
	Boss        *BossTrait     `json:"boss,omitempty"`
}

// Clone returns a deep copy of the spec, so campaign templates stay
// pristine when a session customizes its own copy.
func (s CharacterSpec) Clone() CharacterSpec {
	out := s
	if s.Attributes != nil {
		out.Attributes = maps.Clone(s.Attributes)
	}
	if s.Weapon != nil {
		w := *s.Weapon
		out.Weapon = &w
	}
	if s.Boss != nil {
		b := *s.Boss
		out.Boss = &b
	}
	return out
}

// Character is the runtime form of a combat participant. The d20 sheet
// carries the static character sheet (max health, armor, attributes, and
// weapon combat modifiers); live health is tracked here and clamped to
// [0, MaxHealth] on every mutation.
type Character struct {
	spec   CharacterSpec
	sheet  *d20.Actor
	health int
}

// NewCharacter builds a Character from its spec. A zero Health on the spec
// means full health; out-of-range values are clamped.
func NewCharacter(spec CharacterSpec) (*Character, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("character must have a name")
	}
	if spec.MaxHealth <= 0 {
		return nil, fmt.Errorf("character %q must have positive max health", spec.Name)
	}
	if spec.CritChance < 0 || spec.CritChance > 1 {
		return nil, fmt.Errorf("character %q crit chance must be within [0, 1]", spec.Name)
	}
	if spec.Kind == "" {
		spec.Kind = KindAdventurer
	}
	if spec.Kind != KindAdventurer && spec.Kind != KindBoss {
		return nil, fmt.Errorf("character %q has unknown kind %q", spec.Name, spec.Kind)
	}

	health := spec.Health
	switch {
	case health < 0:
		health = 0
	case health == 0 || health > spec.MaxHealth:
		health = spec.MaxHealth
	}

	c := &Character{
		spec:   spec.Clone(),
		health: health,
	}

	sheet, err := buildSheet(c.spec, c.health)
	if err != nil {
		return nil, err
	}
	c.sheet = sheet

	return c, nil
}

// buildSheet constructs the d20 actor behind a character. The base attack
// power rides as an attribute and the weapon as a combat modifier, so
// damage math can read everything back off the sheet.
func buildSheet(spec CharacterSpec, health int) (*d20.Actor, error) {
	attrs := map[string]int{AttrAttack: spec.Attack}
	maps.Copy(attrs, spec.Attributes)

	mods := make(map[string]int)
	if spec.Weapon != nil {
		mods[spec.Weapon.Name] = spec.Weapon.DamageBonus
	}

	sheet, err := d20.NewActor(sheetID(spec)).
		WithHP(spec.MaxHealth).
		WithAC(spec.AC).
		WithAttributes(attrs).
		WithCombatModifiers(mods).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build sheet for %q: %w", spec.Name, err)
	}

	if health != spec.MaxHealth && health > 0 {
		if err := sheet.SetHP(health); err != nil {
			return nil, fmt.Errorf("failed to set sheet health for %q: %w", spec.Name, err)
		}
	}

	return sheet, nil
}

// sheetID derives a stable actor ID when the spec does not carry one.
func sheetID(spec CharacterSpec) string {
	if spec.ID != "" {
		return spec.ID
	}
	return strings.ReplaceAll(strings.ToLower(spec.Name), " ", "_")
}

// Name returns the character's display name.
func (c *Character) Name() string {
	return c.spec.Name
}

// Kind returns the character's variant.
func (c *Character) Kind() Kind {
	return c.spec.Kind
}

// IsBoss reports whether the character fights with boss behavior.
func (c *Character) IsBoss() bool {
	return c.spec.Kind == KindBoss
}

// Boss returns the boss trait, or nil for characters without one.
func (c *Character) Boss() *BossTrait {
	if c.spec.Boss == nil {
		return nil
	}
	b := *c.spec.Boss
	return &b
}

// Description returns the character's flavor description.
func (c *Character) Description() string {
	return c.spec.Description
}

// Health returns the character's current health.
func (c *Character) Health() int {
	return c.health
}

// MaxHealth returns the character's maximum health.
func (c *Character) MaxHealth() int {
	return c.sheet.MaxHP()
}

// AC returns the character's armor class.
func (c *Character) AC() int {
	return c.sheet.AC()
}

// CritChance returns the character's critical hit probability.
func (c *Character) CritChance() float64 {
	return c.spec.CritChance
}

// Weapon returns the equipped weapon, if any.
func (c *Character) Weapon() (item.Weapon, bool) {
	if c.spec.Weapon == nil {
		return item.Weapon{}, false
	}
	return *c.spec.Weapon, true
}

// AttackDamage returns the damage of a plain strike: the attack attribute
// plus every combat modifier on the sheet.
func (c *Character) AttackDamage() int {
	dmg := 0
	if v, ok := c.sheet.Attribute(AttrAttack); ok {
		dmg = v
	}
	for _, mod := range c.sheet.GetCombatModifiers() {
		dmg += mod.Value
	}
	return dmg
}

// Equip replaces the character's weapon. The sheet is rebuilt so the new
// weapon's combat modifier takes effect; current health is preserved.
func (c *Character) Equip(w item.Weapon) error {
	if w.Name == "" {
		return fmt.Errorf("weapon must have a name")
	}

	weapon := w
	prev := c.spec.Weapon
	c.spec.Weapon = &weapon

	sheet, err := buildSheet(c.spec, c.health)
	if err != nil {
		c.spec.Weapon = prev
		return fmt.Errorf("failed to equip %q: %w", w.Name, err)
	}
	c.sheet = sheet

	return nil
}

// ApplyDamage reduces the character's health by the specified amount.
// Health cannot go below 0.
func (c *Character) ApplyDamage(n int) {
	if n <= 0 {
		return
	}
	c.health -= n
	if c.health < 0 {
		c.health = 0
	}
}

// Heal increases the character's health by the specified amount.
// Health cannot exceed MaxHealth.
func (c *Character) Heal(n int) {
	if n <= 0 {
		return
	}
	c.health += n
	if max := c.MaxHealth(); c.health > max {
		c.health = max
	}
}

// IsDefeated returns true if the character's health is 0 or less.
func (c *Character) IsDefeated() bool {
	return c.health <= 0
}
