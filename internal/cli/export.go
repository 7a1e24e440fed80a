package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/itsblakeyeon/smart-utm-builder/internal/grid"
	"github.com/itsblakeyeon/smart-utm-builder/internal/model"
	"github.com/itsblakeyeon/smart-utm-builder/internal/store"
)

func newExportCmd(app *App) *cobra.Command {
	var (
		format string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the grid as TSV or CSV (with a header row)",
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := app.openKV()
			if err != nil {
				return err
			}
			defer kv.Close()

			rows, err := store.LoadRows(kv)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			switch format {
			case "tsv":
				_, err = io.WriteString(w, grid.EncodeTable(rows)+"\n")
				return err
			case "csv":
				return writeCSV(w, rows)
			default:
				return fmt.Errorf("unknown format %q (want tsv or csv)", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "tsv", "output format: tsv|csv")
	cmd.Flags().StringVarP(&out, "output", "o", "", "write to a file instead of stdout")
	return cmd
}

func writeCSV(w io.Writer, rows []model.Row) error {
	cw := csv.NewWriter(w)
	header := make([]string, len(model.Schema))
	for i, f := range model.Schema {
		header[i] = model.FieldLabels[f]
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		record := make([]string, len(model.Schema))
		for i, f := range model.Schema {
			record[i] = r.Get(f)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
