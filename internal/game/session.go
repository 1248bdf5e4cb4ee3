// Package game drives a single-player adventure: one hero working through a
// campaign's boss roster, one battle at a time.
package game

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jwebster45206/realmquest/internal/logger"
	"github.com/jwebster45206/realmquest/pkg/actor"
	"github.com/jwebster45206/realmquest/pkg/campaign"
	"github.com/jwebster45206/realmquest/pkg/combat"
	"github.com/jwebster45206/realmquest/pkg/combatlog"
	"github.com/jwebster45206/realmquest/pkg/dice"
	"github.com/jwebster45206/realmquest/pkg/item"
)

// Phase is where the session currently stands.
type Phase string

const (
	// PhaseSetup waits for the player to name the hero and pick a weapon.
	PhaseSetup Phase = "setup"
	// PhaseBossIntro presents the next boss before the fight starts.
	PhaseBossIntro Phase = "boss_intro"
	// PhaseBattle is an active battle awaiting the player's next action.
	PhaseBattle Phase = "battle"
	// PhaseVictory follows a won battle, before the next boss steps up.
	PhaseVictory Phase = "victory"
	// PhaseDefeat means the hero has fallen. Terminal.
	PhaseDefeat Phase = "defeat"
	// PhaseComplete means every boss is beaten. Terminal.
	PhaseComplete Phase = "complete"
)

var (
	// ErrWrongPhase means the requested action is not available right now.
	ErrWrongPhase = errors.New("action not available in this phase")
	// ErrGameOver means the session already reached a terminal phase.
	ErrGameOver = errors.New("the adventure is over")
	// ErrUnknownWeapon means the named weapon is not on the campaign's rack.
	ErrUnknownWeapon = errors.New("unknown weapon")
	// ErrItemNotUsable means the item has no use in battle.
	ErrItemNotUsable = errors.New("item cannot be used in battle")
)

// Session is one run of a campaign by one player.
type Session struct {
	ID uuid.UUID

	campaign *campaign.Campaign
	roller   *dice.Roller
	log      *combatlog.Log
	logger   *slog.Logger

	phase   Phase
	hero    *actor.Character
	pack    *item.Inventory
	enemy   *actor.Character
	bossIdx int
	round   int
}

// Round is the outcome of one battle round: the hero's exchange and, if the
// boss survived it, the boss's answer.
type Round struct {
	Number        int
	Player        combat.Exchange
	Enemy         combat.Exchange
	EnemyDefeated bool
	HeroDefeated  bool

	// Rewards is set when this round won the battle. It holds what was
	// actually granted, not what the campaign offered.
	Rewards *campaign.Reward
}

// NewSession prepares a fresh session for the given campaign. The roller
// drives every chance outcome; seed it for reproducible runs.
func NewSession(c *campaign.Campaign, roller *dice.Roller, lg *slog.Logger) *Session {
	if lg == nil {
		lg = slog.Default()
	}
	id := uuid.New()
	return &Session{
		ID:       id,
		campaign: c,
		roller:   roller,
		log:      combatlog.New(id.String(), lg),
		logger:   logger.WithSession(lg, id.String()),
		phase:    PhaseSetup,
	}
}

// Phase returns the session's current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Over reports whether the session reached a terminal phase.
func (s *Session) Over() bool {
	return s.phase == PhaseDefeat || s.phase == PhaseComplete
}

// Campaign returns the campaign this session is playing.
func (s *Session) Campaign() *campaign.Campaign {
	return s.campaign
}

// Hero returns the player character. Nil until Start succeeds.
func (s *Session) Hero() *actor.Character {
	return s.hero
}

// Enemy returns the boss currently staged. Nil until Start succeeds.
func (s *Session) Enemy() *actor.Character {
	return s.enemy
}

// Pack returns the hero's inventory. Nil until Start succeeds.
func (s *Session) Pack() *item.Inventory {
	return s.pack
}

// CombatLog returns the session's combat log.
func (s *Session) CombatLog() *combatlog.Log {
	return s.log
}

// RoundNumber returns how many rounds the current battle has run.
func (s *Session) RoundNumber() int {
	return s.round
}

// BossNumber returns the 1-based roster position of the current boss.
func (s *Session) BossNumber() int {
	return s.bossIdx + 1
}

// BossCount returns the size of the campaign's boss roster.
func (s *Session) BossCount() int {
	return len(s.campaign.Bosses)
}

// requirePhase gates an action on the session being in the given phase.
func (s *Session) requirePhase(want Phase) error {
	if s.phase == want {
		return nil
	}
	if s.Over() {
		return ErrGameOver
	}
	return fmt.Errorf("%w: %s", ErrWrongPhase, s.phase)
}

// Start names the hero, hands them the chosen weapon, stocks the pack, and
// stages the first boss. The name is validated and normalized before use.
func (s *Session) Start(rawName, weaponName string) error {
	if err := s.requirePhase(PhaseSetup); err != nil {
		return err
	}

	name, err := actor.ValidateName(rawName)
	if err != nil {
		return err
	}
	weapon, ok := s.campaign.WeaponByName(weaponName)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownWeapon, weaponName)
	}

	spec := s.campaign.Hero.Clone()
	spec.Name = name
	spec.Weapon = &weapon
	hero, err := actor.NewCharacter(spec)
	if err != nil {
		return fmt.Errorf("failed to create hero: %w", err)
	}

	pack := item.NewInventory(s.campaign.PackSlots)
	for _, it := range s.campaign.StartingItems {
		if err := pack.Add(it); err != nil {
			return fmt.Errorf("failed to stock pack: %w", err)
		}
	}
	pack.AddGold(s.campaign.StartingGold)

	s.hero = hero
	s.pack = pack
	if err := s.stageBoss(0); err != nil {
		return err
	}

	s.logger.Info("session started",
		"campaign", s.campaign.Name,
		"hero", hero.Name(),
		"weapon", weapon.Name)
	return nil
}

// stageBoss builds the boss at roster position i and moves to its intro.
func (s *Session) stageBoss(i int) error {
	spec := s.campaign.Bosses[i].Character.Clone()
	enemy, err := actor.NewCharacter(spec)
	if err != nil {
		return fmt.Errorf("failed to create boss %q: %w", spec.Name, err)
	}
	s.enemy = enemy
	s.bossIdx = i
	s.round = 0
	s.phase = PhaseBossIntro
	return nil
}

// BeginBattle moves from the boss intro into the battle itself.
func (s *Session) BeginBattle() error {
	if err := s.requirePhase(PhaseBossIntro); err != nil {
		return err
	}
	s.phase = PhaseBattle
	s.logger.Debug("battle started",
		"boss", s.enemy.Name(),
		"boss_number", s.BossNumber())
	return nil
}

// Attack plays one full round: the hero strikes first, and the boss answers
// only if it survives. Rewards are granted on the spot when the boss falls.
func (s *Session) Attack() (*Round, error) {
	if err := s.requirePhase(PhaseBattle); err != nil {
		return nil, err
	}

	s.round++
	round := &Round{Number: s.round}

	round.Player = combat.Resolve(s.roller, s.hero, s.enemy)
	s.record(round.Player)

	if s.enemy.IsDefeated() {
		round.EnemyDefeated = true
		s.log.Append(combatlog.Defeat(s.enemy.Name()))
		round.Rewards = s.grantRewards()
		s.phase = PhaseVictory
		s.logger.Info("battle won",
			"boss", s.enemy.Name(),
			"rounds", s.round,
			"hero_health", s.hero.Health())
		return round, nil
	}

	round.Enemy = combat.Resolve(s.roller, s.enemy, s.hero)
	s.record(round.Enemy)

	if s.hero.IsDefeated() {
		round.HeroDefeated = true
		s.log.Append(combatlog.Defeat(s.hero.Name()))
		s.phase = PhaseDefeat
		s.logger.Info("hero defeated",
			"boss", s.enemy.Name(),
			"rounds", s.round)
	}

	return round, nil
}

// record appends every strike in an exchange to the combat log.
func (s *Session) record(ex combat.Exchange) {
	for _, st := range ex.Strikes {
		if st.Special {
			s.log.Append(combatlog.Special(st.Attacker, st.Defender, st.Damage))
			continue
		}
		s.log.Append(combatlog.Attack(st.Attacker, st.Defender, st.Damage, st.Critical))
	}
}

// grantRewards pays out the fallen boss's reward. Items that do not fit in
// the pack are dropped with a warning rather than failing the battle.
func (s *Session) grantRewards() *campaign.Reward {
	reward := s.campaign.Bosses[s.bossIdx].Reward
	granted := campaign.Reward{Gold: reward.Gold}

	if reward.Gold > 0 {
		s.pack.AddGold(reward.Gold)
		s.log.Append(combatlog.Reward(s.hero.Name(), fmt.Sprintf("%d gold", reward.Gold)))
	}
	for _, it := range reward.Items {
		if err := s.pack.Add(it); err != nil {
			s.logger.Warn("reward item dropped",
				"item", it.Name,
				"error", err)
			continue
		}
		granted.Items = append(granted.Items, it)
		s.log.Append(combatlog.Reward(s.hero.Name(), it.Name))
	}

	return &granted
}

// UseItem spends a consumable from the pack. Items are free actions; using
// one does not give the boss a turn. The returned text describes what
// happened, even when the hero was already at full health.
func (s *Session) UseItem(name string) (string, error) {
	if err := s.requirePhase(PhaseBattle); err != nil {
		return "", err
	}

	it, ok := s.pack.Find(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", item.ErrItemNotFound, name)
	}
	if !it.Consumable() {
		return "", fmt.Errorf("%w: %q", ErrItemNotUsable, it.Name)
	}

	before := s.hero.Health()
	s.hero.Heal(it.Heal)
	healed := s.hero.Health() - before
	if _, err := s.pack.Remove(it.Name); err != nil {
		return "", fmt.Errorf("failed to spend %q: %w", it.Name, err)
	}

	effect := fmt.Sprintf("restored %d health", healed)
	s.log.Append(combatlog.ItemUse(s.hero.Name(), it.Name, effect))
	s.logger.Debug("item used",
		"item", it.Name,
		"healed", healed,
		"hero_health", s.hero.Health())
	return fmt.Sprintf("%s used %s and %s.", s.hero.Name(), it.Name, effect), nil
}

// NextBattle advances past a victory: either the next boss steps up or, when
// the roster is exhausted, the campaign is complete.
func (s *Session) NextBattle() error {
	if err := s.requirePhase(PhaseVictory); err != nil {
		return err
	}

	next := s.bossIdx + 1
	if next >= len(s.campaign.Bosses) {
		s.phase = PhaseComplete
		s.logger.Info("campaign complete",
			"campaign", s.campaign.Name,
			"hero", s.hero.Name(),
			"gold", s.pack.Gold())
		return nil
	}
	return s.stageBoss(next)
}

// Close releases the combat log's file handle, if one was attached.
func (s *Session) Close() error {
	return s.log.Close()
}
