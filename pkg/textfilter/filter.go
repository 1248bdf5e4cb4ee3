// Package textfilter screens player-provided text for family-friendly play.
package textfilter

import (
	"regexp"
)

// Common US English swear words that should be kept out of hero names
var blockedWords = []string{
	"fuck", "shit", "damn", "ass", "bitch", "bastard", "crap",
	"piss", "cock", "dick", "pussy", "tits", "whore", "slut",
	"fag", "retard", "nigger", "nigga", "spic", "chink", "kike",
	"motherfucker", "goddamn", "asshole", "dumbass", "jackass",
	"bullshit", "dipshit", "shithead", "dickhead", "prick",
	"douche", "douchebag",
}

// ProfanityFilter reports whether text contains blocked language.
type ProfanityFilter struct {
	regexes []*regexp.Regexp
}

// NewProfanityFilter creates a filter with its patterns precompiled.
// Matching is whole-word, so names that merely embed a blocked word
// (Cassandra, Hancock) pass.
func NewProfanityFilter() *ProfanityFilter {
	pf := &ProfanityFilter{
		regexes: make([]*regexp.Regexp, 0, len(blockedWords)),
	}

	for _, word := range blockedWords {
		pattern := `\b` + regexp.QuoteMeta(word) + `\b`
		pf.regexes = append(pf.regexes, regexp.MustCompile(`(?i)`+pattern))
	}

	return pf
}

// ContainsProfanity checks if the text contains any blocked language.
func (pf *ProfanityFilter) ContainsProfanity(text string) bool {
	for _, regex := range pf.regexes {
		if regex.MatchString(text) {
			return true
		}
	}
	return false
}
