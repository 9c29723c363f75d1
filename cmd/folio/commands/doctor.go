package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.trai.ch/folio/internal/core/domain"
	"go.trai.ch/folio/internal/ui/style"
)

func (c *CLI) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the build dependencies and the project layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, style.Heading.Render("Checking project..."))
			d, err := c.app.Doctor(cmd.Context())
			if d != nil {
				renderDiagnosis(out, d)
				_, _ = fmt.Fprintln(out, "\nCheck complete!")
			}
			return err
		},
	}
}

func renderDiagnosis(w io.Writer, d *domain.Diagnosis) {
	for _, check := range d.Checks {
		var glyph string
		var s lipgloss.Style
		switch check.Status {
		case domain.CheckOK:
			glyph, s = style.Check, style.Success
		case domain.CheckWarn:
			glyph, s = style.Warning, style.Notice
		default:
			glyph, s = style.Cross, style.Failure
		}
		_, _ = fmt.Fprintf(w, "%s %s: %s\n", s.Render(glyph), check.Name, check.Detail)
	}
}
