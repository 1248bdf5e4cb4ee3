// Package combatlog records what happened during a combat session and can
// mirror the record to a plain-text file.
package combatlog

import (
	"fmt"
	"time"
)

// EventType classifies combat log events.
type EventType string

const (
	EventAttack  EventType = "attack"
	EventSpecial EventType = "special"
	EventItem    EventType = "item"
	EventDefeat  EventType = "defeat"
	EventReward  EventType = "reward"
)

// Event is a single combat log entry.
type Event struct {
	Time     time.Time `json:"time"`
	Type     EventType `json:"type"`
	Attacker string    `json:"attacker,omitempty"`
	Defender string    `json:"defender,omitempty"`
	Damage   int       `json:"damage,omitempty"`
	Critical bool      `json:"critical,omitempty"`
	Message  string    `json:"message"`
}

// String renders the event as one plain log line.
func (e Event) String() string {
	return fmt.Sprintf("[%s] COMBAT: %s", e.Time.Format("15:04:05"), e.Message)
}

// Attack records one landed strike.
func Attack(attacker, defender string, damage int, critical bool) Event {
	criticalText := ""
	if critical {
		criticalText = " CRITICAL HIT!"
	}
	return Event{
		Type:     EventAttack,
		Attacker: attacker,
		Defender: defender,
		Damage:   damage,
		Critical: critical,
		Message: fmt.Sprintf("%s attacked %s for %d damage%s",
			attacker, defender, damage, criticalText),
	}
}

// Special records a boss's bonus damage rider.
func Special(attacker, defender string, damage int) Event {
	return Event{
		Type:     EventSpecial,
		Attacker: attacker,
		Defender: defender,
		Damage:   damage,
		Message: fmt.Sprintf("%s used a special attack on %s for %d damage",
			attacker, defender, damage),
	}
}

// ItemUse records an item being used.
func ItemUse(user, itemName, effect string) Event {
	return Event{
		Type:     EventItem,
		Attacker: user,
		Message:  fmt.Sprintf("%s used %s: %s", user, itemName, effect),
	}
}

// Defeat records a participant falling.
func Defeat(name string) Event {
	return Event{
		Type:     EventDefeat,
		Defender: name,
		Message:  fmt.Sprintf("%s was defeated", name),
	}
}

// Reward records loot granted after a battle.
func Reward(name, loot string) Event {
	return Event{
		Type:     EventReward,
		Attacker: name,
		Message:  fmt.Sprintf("%s received %s", name, loot),
	}
}
