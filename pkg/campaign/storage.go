package campaign

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Load reads and validates one campaign file.
func Load(path string) (*Campaign, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read campaign file: %w", err)
	}

	var c Campaign
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal campaign: %w", err)
	}
	c.FileName = filepath.Base(path)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid campaign %s: %w", c.FileName, err)
	}

	return &c, nil
}

// List walks the campaigns directory and returns a map of campaign names
// to filenames. Unreadable or malformed files are skipped with a warning.
func List(dataDir string, logger *slog.Logger) (map[string]string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	campaignsDir := filepath.Join(dataDir, "campaigns")
	campaigns := make(map[string]string)

	err := filepath.WalkDir(campaignsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}

		file, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("Failed to read campaign file", "path", path, "error", err)
			return nil
		}

		var c Campaign
		if err := json.Unmarshal(file, &c); err != nil {
			logger.Warn("Failed to unmarshal campaign file", "path", path, "error", err)
			return nil
		}

		campaigns[c.Name] = filepath.Base(path)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	return campaigns, nil
}
