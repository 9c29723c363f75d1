package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/folio/internal/ui/style"
)

func (c *CLI) newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert one markdown file without touching the build cache",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats, _ := cmd.Flags().GetStringSlice("formats")
			outDir, _ := cmd.Flags().GetString("output-dir")

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Converting %s...\n", args[0])
			results, err := c.app.Convert(cmd.Context(), args[0], formats, outDir)
			for _, r := range results {
				if r.Err != nil {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr(),
						style.Failure.Render(fmt.Sprintf("  %s %s: %v", style.Cross, r.Format, r.Err)))
					continue
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n", style.Arrow, r.Path)
			}
			return err
		},
	}
	cmd.Flags().StringSliceP("formats", "f", nil, "Output formats (default: html)")
	cmd.Flags().StringP("output-dir", "o", "", "Directory for the outputs (default: next to the file)")
	return cmd
}
