package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eqforge/sidl/internal/core/element"
	"github.com/eqforge/sidl/sdk/go/skin"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the assembled element tree of a skin file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions()
			if err != nil {
				return err
			}
			s, err := skin.NewParser(opts).Load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, el := range s.Elements {
				printTree(out, el, 0)
			}
			fmt.Fprintf(out, "\n%d top-level, %d indexed, %d orphans, %d diagnostics\n",
				len(s.Elements), len(s.Assembly.Index), len(s.Orphans()), len(s.Diagnostics))
			return nil
		},
	}
}

func printTree(w io.Writer, el element.Element, depth int) {
	base := el.Base()
	fmt.Fprintf(w, "%s%s %s at %s size %s\n",
		strings.Repeat("  ", depth), el.Tag(), base.Identity(), base.Location, base.Size)
	if c, ok := el.(element.Container); ok {
		for _, child := range c.Children().Children() {
			printTree(w, child, depth+1)
		}
	}
}
