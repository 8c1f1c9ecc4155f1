package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ArrowOS-Revived/android-vendor-qcom-opensource-system-bt/internal/browser"
	"github.com/ArrowOS-Revived/android-vendor-qcom-opensource-system-bt/internal/config"
	"github.com/ArrowOS-Revived/android-vendor-qcom-opensource-system-bt/internal/export"
	"github.com/ArrowOS-Revived/android-vendor-qcom-opensource-system-bt/internal/ui"
)

// Value types accepted by --type
const (
	typeString = "string"
	typeInt    = "int"
	typeUint16 = "uint16"
	typeUint64 = "uint64"
	typeBool   = "bool"
)

func validType(t string) error {
	switch t {
	case typeString, typeInt, typeUint16, typeUint64, typeBool:
		return nil
	default:
		return fmt.Errorf("invalid --type %q (allowed: string, int, uint16, uint64, bool)", t)
	}
}

func newGetCmd(app *App) *cobra.Command {
	var (
		valueType string
		def       string
	)

	cmd := &cobra.Command{
		Use:   "get <section> <key>",
		Short: "Print the value of a key",
		Long: `Print the value of a key, optionally converted to a type.

With --default, the default is printed when the key is missing or its value
does not convert to --type. Without it, both cases are errors.`,
		Example: `  # Read a string value
  btconf -f bt_config.conf get Adapter Name

  # Read an integer with a fallback
  btconf -f bt_config.conf get Adapter ScanMode --type int --default 0`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validType(valueType); err != nil {
				return err
			}
			cfg, _, err := app.load(false)
			if err != nil {
				return err
			}

			section, key := args[0], args[1]
			hasDefault := cmd.Flags().Changed("default")
			if !cfg.HasKey(section, key) && !hasDefault {
				return fmt.Errorf("key %q not found in section [%s]", key, section)
			}

			value, err := getTyped(cfg, section, key, valueType, def, hasDefault)
			if err != nil {
				return err
			}
			app.println(value)
			return nil
		},
	}

	cmd.Flags().StringVarP(&valueType, "type", "t", typeString, "Value type (string, int, uint16, uint64, bool)")
	cmd.Flags().StringVarP(&def, "default", "d", "", "Value to print when the key is missing or invalid")
	return cmd
}

// getTyped reads key through the typed accessor for typ. Conversion failure
// is detected by asking with two different defaults.
func getTyped(cfg *config.Config, section, key, typ, def string, hasDefault bool) (string, error) {
	invalid := func() error {
		raw, _ := cfg.Lookup(section, key)
		return fmt.Errorf("value %q of [%s] %s is not a valid %s", raw, section, key, typ)
	}

	switch typ {
	case typeInt:
		d := 0
		if hasDefault {
			n, err := strconv.ParseInt(def, 0, strconv.IntSize)
			if err != nil {
				return "", fmt.Errorf("--default: %w", err)
			}
			d = int(n)
		} else if cfg.GetInt(section, key, 0) == 0 && cfg.GetInt(section, key, 1) == 1 {
			return "", invalid()
		}
		return strconv.Itoa(cfg.GetInt(section, key, d)), nil

	case typeUint16:
		var d uint16
		if hasDefault {
			n, err := strconv.ParseUint(def, 0, 16)
			if err != nil {
				return "", fmt.Errorf("--default: %w", err)
			}
			d = uint16(n)
		} else if cfg.GetUint16(section, key, 0) == 0 && cfg.GetUint16(section, key, 1) == 1 {
			return "", invalid()
		}
		return strconv.FormatUint(uint64(cfg.GetUint16(section, key, d)), 10), nil

	case typeUint64:
		var d uint64
		if hasDefault {
			n, err := strconv.ParseUint(def, 0, 64)
			if err != nil {
				return "", fmt.Errorf("--default: %w", err)
			}
			d = n
		} else if cfg.GetUint64(section, key, 0) == 0 && cfg.GetUint64(section, key, 1) == 1 {
			return "", invalid()
		}
		return strconv.FormatUint(cfg.GetUint64(section, key, d), 10), nil

	case typeBool:
		d := false
		if hasDefault {
			b, err := strconv.ParseBool(def)
			if err != nil {
				return "", fmt.Errorf("--default: %w", err)
			}
			d = b
		} else if !cfg.GetBool(section, key, false) && cfg.GetBool(section, key, true) {
			return "", invalid()
		}
		return strconv.FormatBool(cfg.GetBool(section, key, d)), nil

	default:
		return cfg.GetString(section, key, def), nil
	}
}

func newSetCmd(app *App) *cobra.Command {
	var valueType string

	cmd := &cobra.Command{
		Use:   "set <section> <key> <value>",
		Short: "Set the value of a key",
		Long: `Set the value of a key, creating the section, the key and the file as
needed. Existing keys keep their position.

Text that would not read back unchanged is refused: line breaks, keys
containing '=' or starting with '#', ';' or '[', and keys or values with
leading or trailing whitespace.`,
		Example: `  btconf -f bt_config.conf set Adapter Name pixel
  btconf -f bt_config.conf set Adapter ScanMode 2 --type int --seal`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validType(valueType); err != nil {
				return err
			}
			section, key, value := args[0], args[1], args[2]
			if err := config.CheckEntry(section, key, value); err != nil {
				return err
			}

			cfg, path, err := app.load(true)
			if err != nil {
				return err
			}
			if err := setTyped(cfg, section, key, value, valueType); err != nil {
				return err
			}
			return app.save(cfg, path)
		},
	}

	cmd.Flags().StringVarP(&valueType, "type", "t", typeString, "Value type (string, int, uint16, uint64, bool)")
	return cmd
}

func setTyped(cfg *config.Config, section, key, value, typ string) error {
	switch typ {
	case typeInt:
		n, err := strconv.ParseInt(value, 0, strconv.IntSize)
		if err != nil {
			return fmt.Errorf("value %q is not a valid int", value)
		}
		cfg.SetInt(section, key, int(n))
	case typeUint16:
		n, err := strconv.ParseUint(value, 0, 16)
		if err != nil {
			return fmt.Errorf("value %q is not a valid uint16", value)
		}
		cfg.SetUint16(section, key, uint16(n))
	case typeUint64:
		n, err := strconv.ParseUint(value, 0, 64)
		if err != nil {
			return fmt.Errorf("value %q is not a valid uint64", value)
		}
		cfg.SetUint64(section, key, n)
	case typeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("value %q is not a valid bool", value)
		}
		cfg.SetBool(section, key, b)
	default:
		cfg.SetString(section, key, value)
	}
	return nil
}

func newUnsetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "unset <section> [key]",
		Short: "Remove a key or a whole section",
		Long: `Remove one key from a section, or the whole section when no key is given.
Removing the last key of a section removes the section too. Removing a
section asks for confirmation unless --yes is given.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := app.load(false)
			if err != nil {
				return err
			}
			section := args[0]

			if len(args) == 2 {
				if !cfg.RemoveKey(section, args[1]) {
					return fmt.Errorf("key %q not found in section [%s]", args[1], section)
				}
				return app.save(cfg, path)
			}

			if !cfg.HasSection(section) {
				return fmt.Errorf("section [%s] not found", section)
			}
			if !yes && !ui.ConfirmRemoveSection(cmd.InOrStdin(), cmd.OutOrStdout(), path, section, len(cfg.Keys(section))) {
				return errors.New("cancelled")
			}
			cfg.RemoveSection(section)
			return app.save(cfg, path)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func newSectionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List section names in file order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := app.load(false)
			if err != nil {
				return err
			}
			for it := cfg.Begin(); !it.Equal(cfg.End()); it = it.Next() {
				app.println(it.Name())
			}
			return nil
		},
	}
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [section]",
		Short: "Show the whole config or one section",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := app.load(false)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				if app.styled() {
					app.println(ui.RenderConfig(cfg))
				} else {
					app.printf("%s", cfg.Serialize())
				}
				return nil
			}

			section := args[0]
			if !cfg.HasSection(section) {
				return fmt.Errorf("section [%s] not found", section)
			}
			if app.styled() {
				app.printf("%s", ui.RenderSection(cfg, section))
				return nil
			}
			for _, key := range cfg.Keys(section) {
				app.printf("%s=%s\n", key, cfg.GetString(section, key, ""))
			}
			return nil
		},
	}
}

func newExportCmd(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the config as YAML, TOML, JSON or normalized INI",
		Example: `  btconf -f bt_config.conf export --format json | jq '.[].section'`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = app.Prefs.ExportFormat
			}
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			cfg, _, err := app.load(false)
			if err != nil {
				return err
			}
			return export.Write(cmd.OutOrStdout(), cfg, f)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Output format: ini, yaml, toml, json (default: export_format preference)")
	return cmd
}

func newNormalizeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize",
		Short: "Rewrite the file in canonical form",
		Long: `Load the file and save it again. Duplicate sections are merged, duplicate
keys collapse to their last value, empty sections, comments and malformed
lines are dropped. With --sort-keys, entries are sorted within each section.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := app.load(false)
			if err != nil {
				return err
			}
			if err := app.save(cfg, path); err != nil {
				return err
			}
			app.printf("Normalized %s (%d sections)\n", path, cfg.Len())
			return nil
		},
	}
}

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse sections interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := app.load(false)
			if err != nil {
				return err
			}
			if !ui.IsTerminal() {
				return errors.New("browse requires a terminal")
			}
			return browser.Run(path, cfg)
		},
	}
}
