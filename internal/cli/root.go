// Package cli wires the cobra command surface. Running the bare command
// opens the interactive grid; subcommands cover scriptable import/export.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/itsblakeyeon/smart-utm-builder/internal/clipboard"
	"github.com/itsblakeyeon/smart-utm-builder/internal/config"
	"github.com/itsblakeyeon/smart-utm-builder/internal/logger"
	"github.com/itsblakeyeon/smart-utm-builder/internal/store"
	"github.com/itsblakeyeon/smart-utm-builder/internal/tui"
)

type App struct {
	DataDir string
	LogFile string
}

// dataDir resolves the profile directory: --data, then $UTM_DATA_DIR, then
// the platform config dir.
func (a *App) dataDir() (string, error) {
	if strings.TrimSpace(a.DataDir) != "" {
		return a.DataDir, nil
	}
	if v := os.Getenv("UTM_DATA_DIR"); v != "" {
		return v, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "utm"), nil
}

func (a *App) openKV() (*store.SQLiteKV, error) {
	dir, err := a.dataDir()
	if err != nil {
		return nil, err
	}
	return store.OpenSQLite(dir)
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "utm",
		Short:        "Campaign link (UTM) grid editor",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Open the interactive grid
  utm

  # Print all campaign URLs
  utm links

  # Export the grid as TSV
  utm export > campaigns.tsv
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.DataDir, "data", "", "profile directory (default: user config dir)")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", "", "write logs to this file (TUI never logs to the terminal)")

	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newImportCmd(app))
	cmd.AddCommand(newLinksCmd(app))
	cmd.AddCommand(newResetCmd(app))

	return cmd
}

func runTUI(app *App) error {
	cfg := config.Load(config.Path())

	log, closeLog, err := logger.New(app.LogFile, cfg.Debug)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()

	kv, err := app.openKV()
	if err != nil {
		return err
	}
	defer kv.Close()

	return tui.Run(tui.Options{
		KV:         kv,
		MaxHistory: cfg.Grid.MaxHistory,
		Debounce:   time.Duration(cfg.Grid.DebounceMs) * time.Millisecond,
		Log:        log,
		Clipboard:  clipboard.System{},
	})
}
