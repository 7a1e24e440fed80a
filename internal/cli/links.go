package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itsblakeyeon/smart-utm-builder/internal/store"
	"github.com/itsblakeyeon/smart-utm-builder/internal/utm"
)

func newLinksCmd(app *App) *cobra.Command {
	var checkedOnly bool
	cmd := &cobra.Command{
		Use:   "links",
		Short: "Print the built campaign URLs, one per line",
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
			for _, r := range rows {
				if checkedOnly && !r.Checked {
					continue
				}
				if u := utm.BuildURL(r); u != "" {
					fmt.Fprintln(cmd.OutOrStdout(), u)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&checkedOnly, "checked", false, "only rows checked in the grid")
	return cmd
}

func newResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear the persisted grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := app.openKV()
			if err != nil {
				return err
			}
			defer kv.Close()

			if err := store.ClearRows(kv); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "grid cleared")
			return nil
		},
	}
}
