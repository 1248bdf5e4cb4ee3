package game

import (
	"io"
	"log/slog"
	"testing"

	"github.com/jwebster45206/realmquest/pkg/actor"
	"github.com/jwebster45206/realmquest/pkg/campaign"
	"github.com/jwebster45206/realmquest/pkg/dice"
	"github.com/jwebster45206/realmquest/pkg/item"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCampaign mirrors the shipped campaign's numbers: two bosses, three
// weapons, one starting potion.
func testCampaign() *campaign.Campaign {
	return &campaign.Campaign{
		Name: "Realm of Trials",
		Hero: actor.CharacterSpec{
			ID:         "hero",
			Name:       "Adventurer",
			MaxHealth:  110,
			Attack:     10,
			AC:         12,
			CritChance: 0.1,
		},
		Weapons: []item.Weapon{
			{Name: "Rock", DamageBonus: 2},
			{Name: "Paper", DamageBonus: 3},
			{Name: "Scissors", DamageBonus: 4},
		},
		StartingItems: []item.Item{
			{Name: "Health Potion", Kind: item.KindPotion, Heal: 30},
		},
		PackSlots: 10,
		Bosses: []campaign.Boss{
			{
				Character: actor.CharacterSpec{
					ID:         "goblin_king",
					Name:       "Goblin King",
					Kind:       actor.KindBoss,
					MaxHealth:  50,
					Attack:     8,
					AC:         13,
					CritChance: 0.1,
					Weapon:     &item.Weapon{Name: "Boss Weapon", DamageBonus: 5},
					Boss:       &actor.BossTrait{BonusDamage: 1, FollowupChance: 0.2},
				},
				Intro: "The {enemy} blocks your path, {player}!",
				Reward: campaign.Reward{
					Gold:  50,
					Items: []item.Item{{Name: "Greater Health Potion", Kind: item.KindPotion, Heal: 50}},
				},
			},
			{
				Character: actor.CharacterSpec{
					ID:         "dark_sorcerer",
					Name:       "Dark Sorcerer",
					Kind:       actor.KindBoss,
					MaxHealth:  60,
					Attack:     9,
					AC:         14,
					CritChance: 0.1,
					Weapon:     &item.Weapon{Name: "Boss Weapon", DamageBonus: 5},
					Boss:       &actor.BossTrait{BonusDamage: 1, FollowupChance: 0.2},
				},
				Intro: "The {enemy} rises before {player}.",
				Reward: campaign.Reward{
					Gold:  100,
					Items: []item.Item{{Name: "Ancient Key", Kind: item.KindKey, Opens: "Final Door"}},
				},
			},
		},
		Messages: campaign.Messages{
			Welcome:   "Welcome to the realm.",
			Intro:     "Your quest begins, {player}.",
			BattleWon: "{player} has slain {enemy}!",
			Defeat:    "{player} has fallen to {enemy}.",
			GameWon:   "{player} saved the realm!",
			GameOver:  "The realm mourns {player}.",
			AttackFlavor: []string{
				"{attacker} hits {defender} with {weapon} for {damage} damage.",
			},
		},
	}
}

// deterministicCampaign removes every chance roll so battle math is exact.
func deterministicCampaign() *campaign.Campaign {
	c := testCampaign()
	c.Hero.CritChance = 0
	for i := range c.Bosses {
		c.Bosses[i].Character.CritChance = 0
		c.Bosses[i].Character.Boss.FollowupChance = 0
	}
	return c
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSession(t *testing.T, c *campaign.Campaign, seed int64) *Session {
	t.Helper()
	return NewSession(c, dice.NewRoller(seed), testLogger())
}

func TestSessionStart(t *testing.T) {
	s := newTestSession(t, testCampaign(), 1)
	assert.Equal(t, PhaseSetup, s.Phase())
	assert.Nil(t, s.Hero())

	require.NoError(t, s.Start("  aria ", "rock"))

	assert.Equal(t, PhaseBossIntro, s.Phase())
	require.NotNil(t, s.Hero())
	assert.Equal(t, "Aria", s.Hero().Name(), "name should be trimmed and title-cased")
	assert.Equal(t, 110, s.Hero().Health())
	assert.Equal(t, 12, s.Hero().AttackDamage(), "attack plus weapon bonus")

	w, ok := s.Hero().Weapon()
	require.True(t, ok)
	assert.Equal(t, "Rock", w.Name, "weapon lookup should ignore case")

	require.NotNil(t, s.Enemy())
	assert.Equal(t, "Goblin King", s.Enemy().Name())
	assert.Equal(t, 1, s.BossNumber())
	assert.Equal(t, 2, s.BossCount())

	require.NotNil(t, s.Pack())
	assert.Equal(t, 1, s.Pack().Len())
	assert.Equal(t, 0, s.Pack().Gold())
}

func TestSessionStartingGold(t *testing.T) {
	c := testCampaign()
	c.StartingGold = 25
	s := newTestSession(t, c, 1)
	require.NoError(t, s.Start("Aria", "Paper"))
	assert.Equal(t, 25, s.Pack().Gold())
}

func TestSessionStartRejections(t *testing.T) {
	tests := []struct {
		name    string
		rawName string
		weapon  string
		wantErr error
	}{
		{"short name", "ab", "Rock", actor.ErrNameLength},
		{"non-letter name", "ar1a", "Rock", actor.ErrNameLetters},
		{"blocked name", "dumbass", "Rock", actor.ErrNameBlocked},
		{"unknown weapon", "Aria", "Trebuchet", ErrUnknownWeapon},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(t, testCampaign(), 1)
			err := s.Start(tc.rawName, tc.weapon)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, PhaseSetup, s.Phase(), "failed start should not advance the phase")
		})
	}

	t.Run("double start", func(t *testing.T) {
		s := newTestSession(t, testCampaign(), 1)
		require.NoError(t, s.Start("Aria", "Rock"))
		assert.ErrorIs(t, s.Start("Brin", "Paper"), ErrWrongPhase)
	})
}

func TestSessionPhaseGuards(t *testing.T) {
	s := newTestSession(t, testCampaign(), 1)

	_, err := s.Attack()
	assert.ErrorIs(t, err, ErrWrongPhase)
	_, err = s.UseItem("Health Potion")
	assert.ErrorIs(t, err, ErrWrongPhase)
	assert.ErrorIs(t, s.BeginBattle(), ErrWrongPhase)
	assert.ErrorIs(t, s.NextBattle(), ErrWrongPhase)

	require.NoError(t, s.Start("Aria", "Rock"))
	_, err = s.Attack()
	assert.ErrorIs(t, err, ErrWrongPhase, "cannot attack during the boss intro")
}

// TestSessionFullPlaythrough drives a complete campaign with every chance
// roll removed, checking the exact battle math at each step.
func TestSessionFullPlaythrough(t *testing.T) {
	s := newTestSession(t, deterministicCampaign(), 1)
	require.NoError(t, s.Start("Aria", "Rock"))
	require.NoError(t, s.BeginBattle())

	// Hero deals 12 per round. The Goblin King answers with 13 plus a
	// 1 damage rider.
	wantHero := []int{96, 82, 68, 54}
	wantBoss := []int{38, 26, 14, 2}
	for i := 0; i < 4; i++ {
		round, err := s.Attack()
		require.NoError(t, err)
		assert.Equal(t, i+1, round.Number)
		assert.False(t, round.EnemyDefeated)
		assert.False(t, round.HeroDefeated)
		assert.Equal(t, wantBoss[i], s.Enemy().Health())
		assert.Equal(t, wantHero[i], s.Hero().Health())
	}

	// Round five fells the Goblin King before it can answer.
	round, err := s.Attack()
	require.NoError(t, err)
	assert.True(t, round.EnemyDefeated)
	assert.Empty(t, round.Enemy.Strikes, "a beaten boss gets no answer")
	assert.Equal(t, 0, s.Enemy().Health())
	assert.Equal(t, 54, s.Hero().Health())
	assert.Equal(t, PhaseVictory, s.Phase())

	require.NotNil(t, round.Rewards)
	assert.Equal(t, 50, round.Rewards.Gold)
	require.Len(t, round.Rewards.Items, 1)
	assert.Equal(t, "Greater Health Potion", round.Rewards.Items[0].Name)
	assert.Equal(t, 50, s.Pack().Gold())
	assert.Equal(t, 2, s.Pack().Len())

	// Second boss steps up.
	require.NoError(t, s.NextBattle())
	assert.Equal(t, PhaseBossIntro, s.Phase())
	assert.Equal(t, "Dark Sorcerer", s.Enemy().Name())
	assert.Equal(t, 2, s.BossNumber())
	assert.Equal(t, 0, s.RoundNumber())
	require.NoError(t, s.BeginBattle())

	// The Dark Sorcerer answers with 14 plus the rider.
	wantHero = []int{39, 24, 9}
	wantBoss = []int{48, 36, 24}
	for i := 0; i < 3; i++ {
		_, err := s.Attack()
		require.NoError(t, err)
		assert.Equal(t, wantBoss[i], s.Enemy().Health())
		assert.Equal(t, wantHero[i], s.Hero().Health())
	}

	// A potion buys enough health to finish the fight.
	msg, err := s.UseItem("Health Potion")
	require.NoError(t, err)
	assert.Equal(t, "Aria used Health Potion and restored 30 health.", msg)
	assert.Equal(t, 39, s.Hero().Health())
	assert.Equal(t, 3, s.RoundNumber(), "items must not consume a round")

	round, err = s.Attack()
	require.NoError(t, err)
	assert.False(t, round.EnemyDefeated)
	assert.Equal(t, 12, s.Enemy().Health())
	assert.Equal(t, 24, s.Hero().Health())

	round, err = s.Attack()
	require.NoError(t, err)
	assert.True(t, round.EnemyDefeated)
	assert.Equal(t, PhaseVictory, s.Phase())
	assert.Equal(t, 150, s.Pack().Gold())

	require.NoError(t, s.NextBattle())
	assert.Equal(t, PhaseComplete, s.Phase())
	assert.True(t, s.Over())

	// Final pack: reward potion and the key, starting potion spent.
	items := s.Pack().Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Greater Health Potion", items[0].Name)
	assert.Equal(t, "Ancient Key", items[1].Name)

	assert.Greater(t, s.CombatLog().Len(), 0)
	assert.Contains(t, s.CombatLog().Transcript(), "COMBAT:")
}

func TestSessionDefeat(t *testing.T) {
	c := deterministicCampaign()
	c.Hero.MaxHealth = 10
	c.Hero.Attack = 1

	s := newTestSession(t, c, 1)
	require.NoError(t, s.Start("Aria", "Rock"))
	require.NoError(t, s.BeginBattle())

	round, err := s.Attack()
	require.NoError(t, err)
	assert.True(t, round.HeroDefeated)
	assert.Equal(t, 0, s.Hero().Health())
	assert.Equal(t, PhaseDefeat, s.Phase())
	assert.True(t, s.Over())

	// The rider never lands on a downed hero.
	require.Len(t, round.Enemy.Strikes, 1)

	_, err = s.Attack()
	assert.ErrorIs(t, err, ErrGameOver)
	_, err = s.UseItem("Health Potion")
	assert.ErrorIs(t, err, ErrGameOver)
	assert.ErrorIs(t, s.BeginBattle(), ErrGameOver)
	assert.ErrorIs(t, s.NextBattle(), ErrGameOver)
	assert.ErrorIs(t, s.Start("Brin", "Rock"), ErrGameOver)
}

func TestSessionUseItem(t *testing.T) {
	newBattleSession := func(t *testing.T) *Session {
		t.Helper()
		c := deterministicCampaign()
		c.StartingItems = append(c.StartingItems,
			item.Item{Name: "Ancient Key", Kind: item.KindKey, Opens: "Final Door"})
		s := newTestSession(t, c, 1)
		require.NoError(t, s.Start("Aria", "Rock"))
		require.NoError(t, s.BeginBattle())
		return s
	}

	t.Run("unknown item", func(t *testing.T) {
		s := newBattleSession(t)
		_, err := s.UseItem("Elixir")
		assert.ErrorIs(t, err, item.ErrItemNotFound)
	})

	t.Run("key is not usable in battle", func(t *testing.T) {
		s := newBattleSession(t)
		_, err := s.UseItem("Ancient Key")
		assert.ErrorIs(t, err, ErrItemNotUsable)
		assert.Equal(t, 2, s.Pack().Len(), "failed use must not consume the item")
	})

	t.Run("potion at full health is still spent", func(t *testing.T) {
		s := newBattleSession(t)
		msg, err := s.UseItem("Health Potion")
		require.NoError(t, err)
		assert.Equal(t, "Aria used Health Potion and restored 0 health.", msg)
		assert.Equal(t, 1, s.Pack().Len())
	})

	t.Run("potion heals up to its power", func(t *testing.T) {
		s := newBattleSession(t)
		_, err := s.Attack()
		require.NoError(t, err)
		require.Equal(t, 96, s.Hero().Health())

		msg, err := s.UseItem("health potion")
		require.NoError(t, err)
		assert.Equal(t, "Aria used Health Potion and restored 14 health.", msg,
			"healing must cap at max health")
		assert.Equal(t, 110, s.Hero().Health())
	})
}

func TestSessionRewardPackFull(t *testing.T) {
	c := deterministicCampaign()
	c.PackSlots = 1

	s := newTestSession(t, c, 1)
	require.NoError(t, s.Start("Aria", "Rock"))
	require.NoError(t, s.BeginBattle())

	var round *Round
	for !s.Over() && s.Phase() == PhaseBattle {
		var err error
		round, err = s.Attack()
		require.NoError(t, err)
		if round.EnemyDefeated {
			break
		}
	}

	require.NotNil(t, round)
	require.True(t, round.EnemyDefeated)
	assert.Equal(t, 50, round.Rewards.Gold, "gold is granted even with a full pack")
	assert.Empty(t, round.Rewards.Items, "items that do not fit are dropped")
	assert.Equal(t, 1, s.Pack().Len())
	assert.Equal(t, 50, s.Pack().Gold())
}

// TestSessionInvariants plays full campaigns across seeds with the real
// chance values, checking health bounds and phase transitions throughout.
func TestSessionInvariants(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		s := newTestSession(t, testCampaign(), seed)
		require.NoError(t, s.Start("Aria", "Scissors"))

		for rounds := 0; !s.Over(); rounds++ {
			require.Less(t, rounds, 500, "seed %d: campaign should finish", seed)

			switch s.Phase() {
			case PhaseBossIntro:
				require.NoError(t, s.BeginBattle())
			case PhaseBattle:
				round, err := s.Attack()
				require.NoError(t, err)
				if round.EnemyDefeated {
					assert.Empty(t, round.Enemy.Strikes,
						"seed %d: a beaten boss gets no answer", seed)
					assert.Equal(t, PhaseVictory, s.Phase())
				}
			case PhaseVictory:
				require.NoError(t, s.NextBattle())
			default:
				t.Fatalf("seed %d: unexpected phase %s", seed, s.Phase())
			}

			assert.GreaterOrEqual(t, s.Hero().Health(), 0, "seed %d", seed)
			assert.LessOrEqual(t, s.Hero().Health(), s.Hero().MaxHealth(), "seed %d", seed)
			assert.GreaterOrEqual(t, s.Enemy().Health(), 0, "seed %d", seed)
			assert.LessOrEqual(t, s.Enemy().Health(), s.Enemy().MaxHealth(), "seed %d", seed)
		}

		if s.Phase() == PhaseComplete {
			assert.True(t, s.Enemy().IsDefeated(), "seed %d", seed)
		} else {
			assert.Equal(t, PhaseDefeat, s.Phase(), "seed %d", seed)
			assert.True(t, s.Hero().IsDefeated(), "seed %d", seed)
		}
	}
}
