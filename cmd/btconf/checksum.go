package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ArrowOS-Revived/android-vendor-qcom-opensource-system-bt/internal/config"
	"github.com/ArrowOS-Revived/android-vendor-qcom-opensource-system-bt/internal/integrity"
	"github.com/ArrowOS-Revived/android-vendor-qcom-opensource-system-bt/internal/ui"
)

func newChecksumCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checksum",
		Short: "Manage the checksum file of a config",
		Long: `Manage the checksum file stored next to a config file.

The checksum file holds the SHA-256 of the config file content. It lives at
<file><checksum_suffix> unless --checksum-file is given.`,
	}

	cmd.AddCommand(
		newChecksumSaveCmd(app),
		newChecksumVerifyCmd(app),
		newChecksumShowCmd(app),
	)
	return cmd
}

func newChecksumSaveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Compute the checksum of the config file and store it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := app.configPath()
			if err != nil {
				return err
			}
			sumPath := app.checksumPath(path)

			sum, err := integrity.Seal(path, sumPath)
			if err != nil {
				return err
			}

			if app.styled() {
				app.println(ui.NewSuccessResult("Checksum saved",
					ui.Detail{Key: "Config", Value: path},
					ui.Detail{Key: "Checksum file", Value: sumPath},
					ui.Detail{Key: "SHA-256", Value: sum},
				).Render())
				return nil
			}
			app.println(sum)
			return nil
		},
	}
}

func newChecksumVerifyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the config file against its stored checksum",
		Long: `Check the config file against its stored checksum.

Exits with status 1 when the checksum file is missing or does not match.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := app.configPath()
			if err != nil {
				return err
			}
			sumPath := app.checksumPath(path)

			verr := integrity.Verify(path, sumPath)
			if !app.styled() {
				if verr == nil {
					app.println("OK")
				}
				return verr
			}

			switch {
			case verr == nil:
				app.println(ui.NewSuccessResult("Checksum verified",
					ui.Detail{Key: "Config", Value: path},
					ui.Detail{Key: "Checksum file", Value: sumPath},
				).Render())
				return nil
			case errors.Is(verr, integrity.ErrMissingChecksum):
				app.println(ui.NewFailureResult("No checksum stored", verr,
					fmt.Sprintf("Run 'btconf -f %s checksum save' to create one", path),
				).Render())
			case errors.Is(verr, integrity.ErrMismatch):
				app.println(ui.NewFailureResult("Checksum mismatch", verr,
					"The file changed since the checksum was saved",
					"Inspect it with 'btconf show', then reseal with 'btconf checksum save'",
				).Render())
			default:
				app.println(ui.NewFailureResult("Verification failed", verr).Render())
			}
			return verr
		},
	}
}

func newChecksumShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored checksum",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := app.configPath()
			if err != nil {
				return err
			}
			sum, err := config.ReadChecksum(app.checksumPath(path))
			if err != nil {
				return err
			}
			app.println(sum)
			return nil
		},
	}
}
