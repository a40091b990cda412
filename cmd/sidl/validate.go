package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/eqforge/sidl/sdk/go/skin"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "Parse skin files and report every recoverable anomaly",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions()
			if err != nil {
				return err
			}
			parser := skin.NewParser(opts)

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"File", "Kind", "Element", "Detail"})

			total := 0
			for _, path := range args {
				s, err := parser.Load(path)
				if err != nil {
					return err
				}
				for _, e := range s.Diagnostics {
					t.AppendRow(table.Row{path, e.Kind.String(), e.Element, e.Detail})
					total++
				}
			}

			if total == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no issues found")
				return nil
			}

			style := table.StyleLight
			style.Options.DrawBorder = false
			t.SetStyle(style)
			t.SetColumnConfigs([]table.ColumnConfig{
				{Number: 1, AutoMerge: true},
			})
			t.Render()
			return nil
		},
	}
}
