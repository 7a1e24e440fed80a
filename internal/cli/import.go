package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/itsblakeyeon/smart-utm-builder/internal/grid"
	"github.com/itsblakeyeon/smart-utm-builder/internal/store"
)

func newImportCmd(app *App) *cobra.Command {
	var appendRows bool
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Read tab-separated rows from a file (or stdin) into the grid",
		Long: `Reads tab-separated values, one row per line, in schema order
(base URL, source, medium, campaign, term, content). A leading header row
is detected and skipped. By default the imported rows replace the grid;
--append keeps the existing rows.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			data, err := io.ReadAll(r)
			if err != nil {
				return err
			}

			imported := grid.DecodeTable(string(data))
			if len(imported) == 0 {
				return fmt.Errorf("no rows to import")
			}

			kv, err := app.openKV()
			if err != nil {
				return err
			}
			defer kv.Close()

			rows := imported
			if appendRows {
				existing, err := store.LoadRows(kv)
				if err != nil {
					return err
				}
				rows = append(existing, imported...)
			}
			if err := store.SaveRows(kv, rows); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d row(s)\n", len(imported))
			return nil
		},
	}
	cmd.Flags().BoolVar(&appendRows, "append", false, "append to the existing rows instead of replacing them")
	return cmd
}
