package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/folio/internal/ui/style"
)

func (c *CLI) newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Create a new site with a starter layout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			out := cmd.OutOrStdout()

			yes, _ := cmd.Flags().GetBool("yes")
			if !yes && !isEmptyDir(dir) &&
				!confirm(cmd, fmt.Sprintf("Directory %s is not empty. Continue?", dir)) {
				_, _ = fmt.Fprintln(out, "Aborted.")
				return nil
			}

			title, _ := cmd.Flags().GetString("title")
			_, _ = fmt.Fprintf(out, "Initializing new site at %s\n", dir)
			if _, err := c.app.Init(cmd.Context(), dir, title); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(out, style.Success.Render(style.Check+" Site initialized."))
			_, _ = fmt.Fprintln(out, "\nNext steps:")
			if filepath.Clean(dir) != "." {
				_, _ = fmt.Fprintf(out, "  cd %s\n", dir)
			}
			_, _ = fmt.Fprintln(out, "  folio build")
			_, _ = fmt.Fprintln(out, "  folio watch")
			return nil
		},
	}
	cmd.Flags().StringP("title", "t", "", "Site title (default \"My Site\")")
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt for non-empty directories")
	return cmd
}

// isEmptyDir reports whether dir is missing or has no entries.
func isEmptyDir(dir string) bool {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return true
	}
	return err == nil && len(entries) == 0
}
