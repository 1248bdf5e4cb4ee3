package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jwebster45206/realmquest/pkg/campaign"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <campaign.json>\n", os.Args[0])
		os.Exit(1)
	}

	filename := os.Args[1]
	validator := &CampaignValidator{}

	if err := validator.validateFile(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Campaign file is valid!")
}

type CampaignValidator struct {
	errors []string
}

func (v *CampaignValidator) validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	// Validate filename format
	baseName := filepath.Base(filename)
	if !strings.HasSuffix(baseName, ".json") {
		return fmt.Errorf("campaign file must have .json extension: %s", baseName)
	}

	nameWithoutExt := strings.TrimSuffix(baseName, ".json")
	if !isValidCampaignFilename(nameWithoutExt) {
		return fmt.Errorf("campaign filename '%s' must be lowercase snake_case (e.g., my_campaign.json, not my-campaign.json or MyCampaign.json)", baseName)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	v.errors = nil

	if !json.Valid(data) {
		return fmt.Errorf("file %s contains invalid JSON", filename)
	}

	var c campaign.Campaign
	decoder := json.NewDecoder(strings.NewReader(string(data)))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&c); err != nil {
		return fmt.Errorf("file %s failed strict JSON unmarshaling: %w", filename, err)
	}

	v.validateCampaign(&c)

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}

	return nil
}

func (v *CampaignValidator) validateCampaign(c *campaign.Campaign) {
	if err := c.Validate(); err != nil {
		v.addError(err.Error())
	}

	// Validate character IDs
	v.validateIDFormat("hero ID", c.Hero.ID)
	seenIDs := map[string]string{}
	if c.Hero.ID != "" {
		seenIDs[c.Hero.ID] = "hero"
	}
	for i, b := range c.Bosses {
		label := fmt.Sprintf("boss %d", i+1)
		v.validateIDFormat(label+" ID", b.Character.ID)
		if id := b.Character.ID; id != "" {
			if prev, dup := seenIDs[id]; dup {
				v.addError(fmt.Sprintf("%s ID '%s' duplicates %s", label, id, prev))
			}
			seenIDs[id] = label
		}
		v.validatePlaceholders(label+" intro", b.Intro, narrationPlaceholders)
	}

	// Validate narration templates against the placeholders the game fills
	messages := map[string]string{
		"welcome":    c.Messages.Welcome,
		"intro":      c.Messages.Intro,
		"battle_won": c.Messages.BattleWon,
		"defeat":     c.Messages.Defeat,
		"game_won":   c.Messages.GameWon,
		"game_over":  c.Messages.GameOver,
	}
	for _, name := range []string{"welcome", "intro", "battle_won", "defeat", "game_won", "game_over"} {
		text := messages[name]
		if text == "" {
			v.addError(fmt.Sprintf("message '%s' is empty", name))
			continue
		}
		v.validatePlaceholders(fmt.Sprintf("message '%s'", name), text, narrationPlaceholders)
	}
	for i, tmpl := range c.Messages.AttackFlavor {
		v.validatePlaceholders(fmt.Sprintf("attack_flavor %d", i+1), tmpl, flavorPlaceholders)
	}
}

func (v *CampaignValidator) validatePlaceholders(fieldName, text string, allowed map[string]bool) {
	for _, match := range placeholderRegex.FindAllString(text, -1) {
		name := strings.Trim(match, "{}")
		if !allowed[name] {
			v.addError(fmt.Sprintf("%s has unknown placeholder '%s'", fieldName, match))
		}
	}
}

func (v *CampaignValidator) validateIDFormat(fieldName, id string) {
	if id == "" {
		return
	}

	if !isValidID(id) {
		v.addError(fmt.Sprintf("%s '%s' should be lowercase snake_case", fieldName, id))
	}
}

func (v *CampaignValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

var (
	validIDRegex       = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)
	validFilenameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)
	placeholderRegex   = regexp.MustCompile(`\{[a-z_]+\}`)

	// Placeholders the game fills in story text.
	narrationPlaceholders = map[string]bool{
		"player": true,
		"enemy":  true,
	}
	// Placeholders the game fills in attack flavor lines.
	flavorPlaceholders = map[string]bool{
		"attacker": true,
		"defender": true,
		"weapon":   true,
		"damage":   true,
	}
)

func isValidID(id string) bool {
	return validIDRegex.MatchString(id)
}

func isValidCampaignFilename(name string) bool {
	// Allow 'x.' prefix for experimental campaigns
	name = strings.TrimPrefix(name, "x.")
	return validFilenameRegex.MatchString(name)
}
