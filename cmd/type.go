package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/persona/internal/typedex"
	"github.com/abhisek/persona/internal/ui/markdown"
)

func newTypeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "type <CODE>",
		Short: "Show the report for a personality type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := typedex.Lookup(args[0])
			if err != nil {
				return err
			}

			style, _ := cmd.Flags().GetString("style")
			width, _ := cmd.Flags().GetInt("width")
			if raw, _ := cmd.Flags().GetBool("raw"); raw {
				fmt.Fprintln(out(cmd), t.Markdown())
				return nil
			}

			rendered, err := markdown.Render(t.Markdown(), width, style)
			if err != nil {
				return err
			}
			fmt.Fprintln(out(cmd), rendered)
			return nil
		},
	}
	cmd.Flags().String("style", markdown.StyleAuto, "Glamour style: auto, dark, light or notty")
	cmd.Flags().Int("width", 80, "Wrap width")
	cmd.Flags().Bool("raw", false, "Print the markdown source instead of rendering it")
	return cmd
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the 16 personality types",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := out(cmd)
			fmt.Fprintf(w, "%-4s  %-14s  %-10s  %s\n", "Code", "Nickname", "Group", "Tagline")
			fmt.Fprintln(w, strings.Repeat("─", 72))
			for _, t := range typedex.All() {
				fmt.Fprintf(w, "%-4s  %-14s  %-10s  %s\n", t.Code, t.Nickname, t.Group, t.Tagline)
			}
		},
	}
}
