package actor

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jwebster45206/realmquest/pkg/textfilter"
)

const (
	minNameLen = 3
	maxNameLen = 16
)

var (
	// ErrNameLength indicates a name outside the allowed length.
	ErrNameLength = errors.New("name must be 3 to 16 letters")
	// ErrNameLetters indicates a name with non-letter characters.
	ErrNameLetters = errors.New("name must contain only letters")
	// ErrNameBlocked indicates a name rejected by the profanity screen.
	ErrNameBlocked = errors.New("name contains blocked language")
)

var nameScreen = textfilter.NewProfanityFilter()

// ValidateName checks a player-entered hero name and returns its canonical
// title-cased form.
func ValidateName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if n := utf8.RuneCountInString(name); n < minNameLen || n > maxNameLen {
		return "", ErrNameLength
	}
	for _, r := range name {
		if !unicode.IsLetter(r) {
			return "", ErrNameLetters
		}
	}
	if nameScreen.ContainsProfanity(name) {
		return "", ErrNameBlocked
	}
	return cases.Title(language.English).String(strings.ToLower(name)), nil
}
