// Package prefs persists non-authoritative UI preferences: the last active
// dashboard view and the theme. It is deliberately outside the data
// consistency core.
package prefs

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

// Preferences are the persisted UI settings.
type Preferences struct {
	ActiveView string `json:"active_view"`
	Theme      string `json:"theme"`
}

// Known views and themes.
const (
	ViewAnalytics = "analytics"
	ViewTable     = "table"
	ViewActions   = "actions"

	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Default returns the preferences used when nothing is persisted yet.
func Default() Preferences {
	return Preferences{ActiveView: ViewAnalytics, Theme: ThemeLight}
}

// ResolveDataDir returns the directory used for salesdash data.
// Order: SALESDASH_DATA_DIR env override, then OS-specific default.
func ResolveDataDir() (string, error) {
	if custom := os.Getenv("SALESDASH_DATA_DIR"); custom != "" {
		return custom, nil
	}

	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("APPDATA"); appdata != "" {
			return filepath.Join(appdata, "salesdash"), nil
		}
		return "", errors.New("APPDATA not set")
	case "darwin":
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			return filepath.Join(home, "Library", "Application Support", "salesdash"), nil
		}
		return "", errors.New("home directory not found")
	default: // linux and others
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			return filepath.Join(home, ".local", "share", "salesdash"), nil
		}
		return "", errors.New("home directory not found")
	}
}

func prefsPath() (string, error) {
	dir, err := ResolveDataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "prefs.json"), nil
}

// Load reads the persisted preferences, falling back to defaults when the
// file does not exist yet.
func Load() (Preferences, error) {
	path, err := prefsPath()
	if err != nil {
		return Default(), err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), err
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), err
	}
	return p, nil
}

// Save writes the preferences atomically (temp file + rename).
func Save(p Preferences) error {
	path, err := prefsPath()
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "prefs-*.tmp")
	if err != nil {
		return err
	}
	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&p); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
