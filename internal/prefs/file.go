package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	appName   = "btconf"
	prefsFile = "prefs.yaml"
)

// Mutex for thread-safe file operations
var fileMutex sync.Mutex

// GetConfigDir returns the OS-appropriate preferences directory:
//   - Linux: $XDG_CONFIG_HOME/btconf or $HOME/.config/btconf
//   - macOS: $HOME/.config/btconf
//   - Windows: %LOCALAPPDATA%\btconf
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetPath returns the full path to the preferences file.
func GetPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, prefsFile), nil
}

// Load reads preferences from the default location.
func Load() (*Prefs, error) {
	path, err := GetPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences path: %w", err)
	}
	return LoadFile(path)
}

// LoadFile reads preferences from path. A missing file yields defaults.
func LoadFile(path string) (*Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read preferences file: %w", err)
	}

	var p Prefs
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse preferences file: %w", err)
	}

	if p.Version != 0 && p.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported preferences version: %d (expected %d)", p.Version, CurrentVersion)
	}
	p.fillDefaults()

	return &p, nil
}

// Save writes p to the default location, creating the directory if needed.
func (p *Prefs) Save() error {
	path, err := GetPath()
	if err != nil {
		return fmt.Errorf("failed to get preferences path: %w", err)
	}
	return p.SaveFile(path)
}

// SaveFile writes p to path atomically.
func (p *Prefs) SaveFile(path string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	header := []byte("# btconf preferences\n# Command-line flags override these values.\n\n")
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary preferences file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save preferences file: %w", err)
	}

	return nil
}
