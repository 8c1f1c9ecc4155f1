// Package prefs manages btconf user preferences.
//
// Preferences live in a small YAML file in the platform's configuration
// directory:
//   - Linux: $XDG_CONFIG_HOME/btconf/prefs.yaml or $HOME/.config/btconf/prefs.yaml
//   - macOS: $HOME/.config/btconf/prefs.yaml
//   - Windows: %LOCALAPPDATA%\btconf\prefs.yaml
//
// A missing file is not an error; Load returns defaults. Command-line flags
// always take precedence over stored preferences.
//
// # Usage Example
//
//	p, err := prefs.Load()
//	if err != nil {
//	    return err
//	}
//	if err := p.Set("sort_keys", "true"); err != nil {
//	    return err
//	}
//	return p.Save()
//
// # Thread Safety
//
// Saves are serialized by a package mutex and written atomically.
package prefs
