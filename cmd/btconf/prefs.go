package main

import (
	"github.com/spf13/cobra"

	"github.com/ArrowOS-Revived/android-vendor-qcom-opensource-system-bt/internal/prefs"
)

func newPrefsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "View and change btconf preferences",
		Long: `View and change btconf preferences.

Preferences live in prefs.yaml under the platform config directory
(for example ~/.config/btconf/prefs.yaml). Use --prefs to select another file.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all preferences",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				for _, key := range prefs.Keys {
					value, err := app.Prefs.Get(key)
					if err != nil {
						return err
					}
					app.printf("%s=%s\n", key, value)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "get <key>",
			Short: "Print one preference",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				value, err := app.Prefs.Get(args[0])
				if err != nil {
					return err
				}
				app.println(value)
				return nil
			},
		},
		&cobra.Command{
			Use:     "set <key> <value>",
			Short:   "Change one preference",
			Example: "  btconf prefs set default_config /data/misc/bluedroid/bt_config.conf",
			Args:    cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Prefs.Set(args[0], args[1]); err != nil {
					return err
				}
				if app.PrefsPath != "" {
					return app.Prefs.SaveFile(app.PrefsPath)
				}
				return app.Prefs.Save()
			},
		},
	)
	return cmd
}
