package game

import (
	"fmt"
	"strconv"

	"github.com/jwebster45206/realmquest/pkg/actor"
	"github.com/jwebster45206/realmquest/pkg/campaign"
	"github.com/jwebster45206/realmquest/pkg/combat"
)

// vars builds the placeholder values for narration templates.
func (s *Session) vars() map[string]string {
	v := map[string]string{"player": "adventurer"}
	if s.hero != nil {
		v["player"] = s.hero.Name()
	}
	if s.enemy != nil {
		v["enemy"] = s.enemy.Name()
	}
	return v
}

// WelcomeText is shown on the campaign's title screen.
func (s *Session) WelcomeText() string {
	return campaign.Expand(s.campaign.Messages.Welcome, s.vars())
}

// IntroText opens the adventure once the hero is named.
func (s *Session) IntroText() string {
	return campaign.Expand(s.campaign.Messages.Intro, s.vars())
}

// BossIntroText presents the boss currently staged.
func (s *Session) BossIntroText() string {
	return campaign.Expand(s.campaign.Bosses[s.bossIdx].Intro, s.vars())
}

// BattleWonText celebrates the fallen boss.
func (s *Session) BattleWonText() string {
	return campaign.Expand(s.campaign.Messages.BattleWon, s.vars())
}

// DefeatText reports the hero's fall.
func (s *Session) DefeatText() string {
	return campaign.Expand(s.campaign.Messages.Defeat, s.vars())
}

// GameWonText closes out a completed campaign.
func (s *Session) GameWonText() string {
	return campaign.Expand(s.campaign.Messages.GameWon, s.vars())
}

// GameOverText closes out a lost campaign.
func (s *Session) GameOverText() string {
	return campaign.Expand(s.campaign.Messages.GameOver, s.vars())
}

// Narrate renders a resolved round as narration lines, using the campaign's
// attack flavor templates when it has any.
func (s *Session) Narrate(r *Round) []string {
	lines := s.narrateExchange(r.Player, s.hero)
	lines = append(lines, s.narrateExchange(r.Enemy, s.enemy)...)

	switch {
	case r.EnemyDefeated:
		lines = append(lines, fmt.Sprintf("%s falls!", s.enemy.Name()))
	case r.HeroDefeated:
		lines = append(lines, fmt.Sprintf("%s falls!", s.hero.Name()))
	}

	if r.Rewards != nil {
		if r.Rewards.Gold > 0 {
			lines = append(lines, fmt.Sprintf("%s receives %d gold.", s.hero.Name(), r.Rewards.Gold))
		}
		for _, it := range r.Rewards.Items {
			lines = append(lines, fmt.Sprintf("%s receives the %s.", s.hero.Name(), it.Name))
		}
	}

	return lines
}

func (s *Session) narrateExchange(ex combat.Exchange, attacker *actor.Character) []string {
	lines := make([]string, 0, len(ex.Strikes))
	for _, st := range ex.Strikes {
		lines = append(lines, s.narrateStrike(st, attacker))
	}
	return lines
}

// narrateStrike renders one strike. Bonus damage riders get a fixed line;
// everything else draws from the campaign's flavor templates.
func (s *Session) narrateStrike(st combat.Strike, attacker *actor.Character) string {
	if st.Special {
		return fmt.Sprintf("%s lands a special blow on %s for %d bonus damage!",
			st.Attacker, st.Defender, st.Damage)
	}

	weaponName := "bare hands"
	if w, ok := attacker.Weapon(); ok {
		weaponName = w.Name
	}

	var line string
	if flavor := s.campaign.Messages.AttackFlavor; len(flavor) > 0 {
		tmpl := flavor[s.roller.Pick(len(flavor))]
		line = campaign.Expand(tmpl, map[string]string{
			"attacker": st.Attacker,
			"defender": st.Defender,
			"weapon":   weaponName,
			"damage":   strconv.Itoa(st.Damage),
		})
	} else {
		line = fmt.Sprintf("%s strikes %s with %s for %d damage.",
			st.Attacker, st.Defender, weaponName, st.Damage)
	}

	if st.Critical {
		line += " CRITICAL HIT!"
	}
	if st.Followup {
		line = fmt.Sprintf("%s presses the attack! %s", st.Attacker, line)
	}
	return line
}
