package campaign

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func writeCampaignFile(t *testing.T, dir, filename string, c *Campaign) string {
	t.Helper()
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("failed to marshal campaign: %v", err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write campaign file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("loads a valid campaign", func(t *testing.T) {
		dir := t.TempDir()
		path := writeCampaignFile(t, dir, "test_campaign.json", validCampaign())

		c, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Name != "Realm of Shadows" {
			t.Errorf("expected campaign name 'Realm of Shadows', got %q", c.Name)
		}
		if c.FileName != "test_campaign.json" {
			t.Errorf("expected file name to be set, got %q", c.FileName)
		}
		if len(c.Bosses) != 1 {
			t.Errorf("expected 1 boss, got %d", len(c.Bosses))
		}
	})

	t.Run("rejects an invalid campaign", func(t *testing.T) {
		dir := t.TempDir()
		broken := validCampaign()
		broken.Bosses = nil
		path := writeCampaignFile(t, dir, "broken.json", broken)

		if _, err := Load(path); err == nil {
			t.Error("expected an error for a campaign without bosses")
		}
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "garbage.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		if _, err := Load(path); err == nil {
			t.Error("expected an error for malformed JSON")
		}
	})

	t.Run("errors on a missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
			t.Error("expected an error for a missing file")
		}
	})

	t.Run("loads the shipped campaign", func(t *testing.T) {
		c, err := Load(filepath.Join("..", "..", "data", "campaigns", "realm_of_shadows.json"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Hero.MaxHealth != 110 {
			t.Errorf("expected hero max health 110, got %d", c.Hero.MaxHealth)
		}
		if len(c.Weapons) != 3 {
			t.Errorf("expected 3 weapons, got %d", len(c.Weapons))
		}
		if len(c.Bosses) != 2 {
			t.Errorf("expected 2 bosses, got %d", len(c.Bosses))
		}
	})
}

func TestList(t *testing.T) {
	t.Run("maps campaign names to filenames", func(t *testing.T) {
		dir := t.TempDir()
		campaignsDir := filepath.Join(dir, "campaigns")
		if err := os.MkdirAll(campaignsDir, 0o755); err != nil {
			t.Fatalf("failed to create campaigns dir: %v", err)
		}

		first := validCampaign()
		writeCampaignFile(t, campaignsDir, "realm_of_shadows.json", first)

		second := validCampaign()
		second.Name = "Crypt of Echoes"
		writeCampaignFile(t, campaignsDir, "crypt_of_echoes.json", second)

		campaigns, err := List(dir, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(campaigns) != 2 {
			t.Fatalf("expected 2 campaigns, got %d", len(campaigns))
		}
		if campaigns["Realm of Shadows"] != "realm_of_shadows.json" {
			t.Errorf("unexpected filename: %q", campaigns["Realm of Shadows"])
		}
		if campaigns["Crypt of Echoes"] != "crypt_of_echoes.json" {
			t.Errorf("unexpected filename: %q", campaigns["Crypt of Echoes"])
		}
	})

	t.Run("skips unparseable files", func(t *testing.T) {
		dir := t.TempDir()
		campaignsDir := filepath.Join(dir, "campaigns")
		if err := os.MkdirAll(campaignsDir, 0o755); err != nil {
			t.Fatalf("failed to create campaigns dir: %v", err)
		}

		writeCampaignFile(t, campaignsDir, "good.json", validCampaign())
		if err := os.WriteFile(filepath.Join(campaignsDir, "bad.json"), []byte("{oops"), 0o644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		campaigns, err := List(dir, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(campaigns) != 1 {
			t.Errorf("expected 1 campaign, got %d", len(campaigns))
		}
	})

	t.Run("returns an empty map for a missing directory", func(t *testing.T) {
		campaigns, err := List(filepath.Join(t.TempDir(), "nope"), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(campaigns) != 0 {
			t.Errorf("expected no campaigns, got %d", len(campaigns))
		}
	})
}
