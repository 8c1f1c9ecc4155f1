package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ArrowOS-Revived/android-vendor-qcom-opensource-system-bt/internal/config"
	"github.com/ArrowOS-Revived/android-vendor-qcom-opensource-system-bt/internal/integrity"
	"github.com/ArrowOS-Revived/android-vendor-qcom-opensource-system-bt/internal/logging"
	"github.com/ArrowOS-Revived/android-vendor-qcom-opensource-system-bt/internal/prefs"
	"github.com/ArrowOS-Revived/android-vendor-qcom-opensource-system-bt/internal/ui"
	"github.com/ArrowOS-Revived/android-vendor-qcom-opensource-system-bt/internal/version"
)

// App holds state shared by all commands.
type App struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	// Global flags
	File         string
	PrefsPath    string
	LogLevel     string
	ChecksumFile string
	SortKeys     bool
	Seal         bool
	Verify       bool
	Plain        bool

	Prefs *prefs.Prefs
}

// NewApp creates an App writing to the given streams.
func NewApp(in io.Reader, out, errOut io.Writer) *App {
	return &App{In: in, Out: out, Err: errOut}
}

func newRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "btconf",
		Short: "INI configuration file tool",
		Long: `Inspect and edit INI configuration files and their checksum files.

Entries before the first [section] header belong to the "Global" section.
Repeated sections are merged and repeated keys keep the last value.
Comments and formatting are not preserved when a file is saved.`,
		Version:       version.Full(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
	}

	root.CompletionOptions.DisableDefaultCmd = true
	root.SetIn(app.In)
	root.SetOut(app.Out)
	root.SetErr(app.Err)

	pf := root.PersistentFlags()
	pf.StringVarP(&app.File, "file", "f", "", "Config file (default: default_config preference)")
	pf.StringVar(&app.PrefsPath, "prefs", "", "Preferences file (default: platform config dir)")
	pf.StringVar(&app.LogLevel, "log-level", "", "Log level (debug, info, warn, error); silent when empty")
	pf.StringVar(&app.ChecksumFile, "checksum-file", "", "Checksum file (default: <file> + checksum_suffix)")
	pf.BoolVar(&app.SortKeys, "sort-keys", false, "Sort entries by key within each section before saving")
	pf.BoolVar(&app.Seal, "seal", false, "Rewrite the checksum file after saving")
	pf.BoolVar(&app.Verify, "verify", false, "Refuse to load a config file that does not match its checksum")
	pf.BoolVar(&app.Plain, "plain", false, "Disable styled output")

	root.AddCommand(
		newGetCmd(app),
		newSetCmd(app),
		newUnsetCmd(app),
		newSectionsCmd(app),
		newShowCmd(app),
		newExportCmd(app),
		newNormalizeCmd(app),
		newBrowseCmd(app),
		newChecksumCmd(app),
		newPrefsCmd(app),
		newVersionCmd(app),
	)

	return root
}

// init loads preferences and starts logging. Flags take precedence over
// preferences.
func (a *App) init(cmd *cobra.Command) error {
	var (
		p   *prefs.Prefs
		err error
	)
	if a.PrefsPath != "" {
		p, err = prefs.LoadFile(a.PrefsPath)
	} else {
		p, err = prefs.Load()
	}
	if err != nil {
		return err
	}
	a.Prefs = p

	level := a.LogLevel
	if level == "" {
		level = p.LogLevel
	}
	if err := logging.Initialize(level); err != nil {
		return err
	}

	if !cmd.Flags().Changed("sort-keys") {
		a.SortKeys = p.SortKeys
	}

	logging.Debug("Command starting",
		zap.String("command", cmd.CommandPath()),
		zap.String("file", a.File),
	)
	return nil
}

// configPath returns the file flag or the default_config preference.
func (a *App) configPath() (string, error) {
	if a.File != "" {
		return a.File, nil
	}
	if a.Prefs != nil && a.Prefs.DefaultConfig != "" {
		return a.Prefs.DefaultConfig, nil
	}
	return "", errors.New("no config file: pass --file or set the default_config preference")
}

// checksumPath returns the checksum file for configPath.
func (a *App) checksumPath(configPath string) string {
	if a.ChecksumFile != "" {
		return a.ChecksumFile
	}
	suffix := ""
	if a.Prefs != nil {
		suffix = a.Prefs.ChecksumSuffix
	}
	return integrity.SidecarPath(configPath, suffix)
}

// load reads the config file, checking it against its checksum first when
// --verify is set. With allowMissing, a missing file yields an empty config.
func (a *App) load(allowMissing bool) (*config.Config, string, error) {
	path, err := a.configPath()
	if err != nil {
		return nil, "", err
	}

	var cfg *config.Config
	if a.Verify {
		cfg, err = integrity.LoadVerified(path, a.checksumPath(path))
	} else {
		cfg, err = config.Load(path)
	}
	if err != nil {
		if allowMissing && errors.Is(err, fs.ErrNotExist) {
			logging.Info("Config file missing, starting empty", zap.String("path", path))
			return config.New(), path, nil
		}
		return nil, path, err
	}
	return cfg, path, nil
}

// save writes cfg to path, sorting and sealing as configured.
func (a *App) save(cfg *config.Config, path string) error {
	if a.SortKeys {
		cfg.SortSectionsByEntryKey(strings.Compare)
	}
	sumPath := a.checksumPath(path)
	if a.Seal {
		_, err := integrity.SaveConfig(cfg, path, sumPath)
		return err
	}
	if err := cfg.Save(path); err != nil {
		return err
	}

	if _, err := os.Stat(sumPath); err == nil {
		a.warnStaleChecksum(path, sumPath)
	}
	return nil
}

// warnStaleChecksum tells the user that a save left an existing checksum
// file behind.
func (a *App) warnStaleChecksum(path, sumPath string) {
	logging.Warn("Checksum file is stale after save",
		zap.String("config", path),
		zap.String("checksum_file", sumPath),
	)
	if a.styled() {
		fmt.Fprintln(a.Err, ui.NewWarningResult("Checksum no longer matches",
			ui.Detail{Key: "Config", Value: path},
			ui.Detail{Key: "Checksum file", Value: sumPath},
			ui.Detail{Key: "Fix", Value: "run 'btconf checksum save' or pass --seal"},
		).Render())
		return
	}
	fmt.Fprintf(a.Err, "warning: %s no longer matches %s; run 'btconf checksum save' or pass --seal\n", sumPath, path)
}

// styled reports whether output should use lipgloss rendering.
func (a *App) styled() bool {
	return !a.Plain && ui.IsTerminal()
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.Out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.Out, args...)
}

func newVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			app.printf("btconf %s\n", version.Full())
		},
	}
}
