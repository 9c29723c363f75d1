package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/folio/internal/core/domain"
	"go.trai.ch/folio/internal/ui/style"
)

func (c *CLI) newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <title>",
		Short: "Create a new post or page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, _ := cmd.Flags().GetString("type")
			kind, err := domain.ParseContentKind(typ)
			if err != nil {
				return err
			}
			path, err := c.app.NewContent(cmd.Context(), kind, args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(),
				style.Success.Render(fmt.Sprintf("%s Created %s: %s", style.Check, kind, path)))
			return nil
		},
	}
	cmd.Flags().StringP("type", "t", string(domain.KindPost), "Content type: post or page")
	return cmd
}
