// Package campaign defines the JSON content format for an adventure: the
// hero template, the weapon rack, the boss roster, and the narration text.
package campaign

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/realmquest/pkg/actor"
	"github.com/jwebster45206/realmquest/pkg/item"
)

// Reward is granted when a boss falls.
type Reward struct {
	Gold  int         `json:"gold,omitempty"`
	Items []item.Item `json:"items,omitempty"`
}

// Boss pairs a boss character with its staging in the campaign.
type Boss struct {
	Character actor.CharacterSpec `json:"character"`
	Intro     string              `json:"intro"`
	Reward    Reward              `json:"reward,omitempty"`
}

// Messages holds the campaign's narration templates. Templates may carry
// {player} and {enemy} placeholders.
type Messages struct {
	Welcome      string   `json:"welcome"`
	Intro        string   `json:"intro"`
	BattleWon    string   `json:"battle_won"`
	Defeat       string   `json:"defeat"`
	GameWon      string   `json:"game_won"`
	GameOver     string   `json:"game_over"`
	AttackFlavor []string `json:"attack_flavor,omitempty"`
}

// Campaign is the complete content definition for one adventure.
type Campaign struct {
	Name          string              `json:"name"`
	FileName      string              `json:"file_name,omitempty"`
	Description   string              `json:"description,omitempty"`
	Hero          actor.CharacterSpec `json:"hero"`
	Weapons       []item.Weapon       `json:"weapons"`
	StartingItems []item.Item         `json:"starting_items,omitempty"`
	StartingGold  int                 `json:"starting_gold,omitempty"`
	PackSlots     int                 `json:"pack_slots,omitempty"`
	Bosses        []Boss              `json:"bosses"`
	Messages      Messages            `json:"messages"`
}

// WeaponByName returns the rack weapon matching name. Matching ignores case.
func (c *Campaign) WeaponByName(name string) (item.Weapon, bool) {
	for _, w := range c.Weapons {
		if strings.EqualFold(w.Name, name) {
			return w, true
		}
	}
	return item.Weapon{}, false
}

// Validate checks the campaign content for problems that would break a
// session at runtime.
func (c *Campaign) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("campaign must have a name")
	}
	if c.Messages.Welcome == "" {
		return fmt.Errorf("campaign %q must have a welcome message", c.Name)
	}

	if err := validateSpec(c.Hero); err != nil {
		return fmt.Errorf("hero: %w", err)
	}
	if c.Hero.Kind == actor.KindBoss {
		return fmt.Errorf("hero cannot be a boss")
	}

	if len(c.Weapons) == 0 {
		return fmt.Errorf("campaign %q must offer at least one weapon", c.Name)
	}
	seen := make(map[string]bool, len(c.Weapons))
	for _, w := range c.Weapons {
		if w.Name == "" {
			return fmt.Errorf("campaign %q has a weapon without a name", c.Name)
		}
		key := strings.ToLower(w.Name)
		if seen[key] {
			return fmt.Errorf("campaign %q has duplicate weapon %q", c.Name, w.Name)
		}
		seen[key] = true
	}

	if len(c.Bosses) == 0 {
		return fmt.Errorf("campaign %q must have at least one boss", c.Name)
	}
	for i, b := range c.Bosses {
		if err := validateSpec(b.Character); err != nil {
			return fmt.Errorf("boss %d: %w", i+1, err)
		}
		if b.Character.Kind != actor.KindBoss {
			return fmt.Errorf("boss %d (%q) must have kind %q", i+1, b.Character.Name, actor.KindBoss)
		}
		if b.Intro == "" {
			return fmt.Errorf("boss %d (%q) must have an intro", i+1, b.Character.Name)
		}
		if err := validateReward(b.Reward); err != nil {
			return fmt.Errorf("boss %d (%q) reward: %w", i+1, b.Character.Name, err)
		}
	}

	for _, it := range c.StartingItems {
		if err := it.Validate(); err != nil {
			return fmt.Errorf("starting item: %w", err)
		}
	}
	if c.StartingGold < 0 {
		return fmt.Errorf("campaign %q starting gold cannot be negative", c.Name)
	}
	if c.PackSlots < 0 {
		return fmt.Errorf("campaign %q pack slots cannot be negative", c.Name)
	}

	return nil
}

func validateSpec(spec actor.CharacterSpec) error {
	if spec.Name == "" {
		return fmt.Errorf("character must have a name")
	}
	if spec.MaxHealth <= 0 {
		return fmt.Errorf("character %q must have positive max health", spec.Name)
	}
	if spec.Attack <= 0 {
		return fmt.Errorf("character %q must have positive attack", spec.Name)
	}
	if spec.CritChance < 0 || spec.CritChance > 1 {
		return fmt.Errorf("character %q crit chance must be within [0, 1]", spec.Name)
	}
	if spec.Boss != nil {
		if spec.Boss.BonusDamage < 0 {
			return fmt.Errorf("character %q bonus damage cannot be negative", spec.Name)
		}
		if spec.Boss.FollowupChance < 0 || spec.Boss.FollowupChance > 1 {
			return fmt.Errorf("character %q followup chance must be within [0, 1]", spec.Name)
		}
	}
	return nil
}

func validateReward(r Reward) error {
	if r.Gold < 0 {
		return fmt.Errorf("gold cannot be negative")
	}
	for _, it := range r.Items {
		if err := it.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Expand substitutes {placeholder} markers in a narration template.
func Expand(tmpl string, vars map[string]string) string {
	if len(vars) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
