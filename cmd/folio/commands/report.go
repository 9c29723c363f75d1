package commands

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.trai.ch/folio/internal/core/domain"
	"go.trai.ch/folio/internal/ui/style"
)

func announce(cmd *cobra.Command, opts domain.BuildOptions) {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Building site (%s)...\n", buildKind(opts))
	_, _ = fmt.Fprintf(out, "Output formats: %s\n", formatList(opts))
}

// report prints the outcome of one build. Per-file failures are listed and
// turned into domain.ErrBuildExecutionFailed so they are not logged twice.
func report(cmd *cobra.Command, stats *domain.BuildStats, err error, detailed bool) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	if err != nil && !errors.Is(err, domain.ErrPartialBuild) {
		return err
	}

	if stats != nil {
		if detailed {
			_, _ = fmt.Fprintln(out, renderStats(stats))
		} else if err == nil {
			_, _ = fmt.Fprintln(out, style.Success.Render(fmt.Sprintf(
				"%s Site built: %d files, %d outputs", style.Check, stats.TotalFiles, stats.Outputs)))
		}
	}

	if err == nil {
		return nil
	}

	_, _ = fmt.Fprintln(errOut, style.Failure.Render(fmt.Sprintf(
		"%s Build finished with %d failed files", style.Cross, len(stats.Errors))))
	for _, fe := range stats.Errors {
		_, _ = fmt.Fprintf(errOut, "  %s %s: %v\n", style.Arrow, fe.Path, fe.Err)
	}
	return domain.ErrBuildExecutionFailed
}

func renderStats(stats *domain.BuildStats) string {
	heading := "Full build"
	if stats.CacheEnabled && stats.TotalFiles > 0 {
		heading = "Incremental build"
	}

	rows := []string{
		style.Heading.Render(fmt.Sprintf("%s (%s)", heading, stats.Mode)),
		style.Row("Files", strconv.Itoa(stats.TotalFiles)),
		style.Row("Rebuilt", strconv.Itoa(stats.Rebuilt)),
		style.Row("Cached", strconv.Itoa(stats.Cached)),
		style.Row("Removed", strconv.Itoa(stats.Removed)),
		style.Row("Outputs", strconv.Itoa(stats.Outputs)),
	}
	if stats.CacheEnabled {
		rows = append(rows, style.Row("Cache hit rate", fmt.Sprintf("%.1f%%", stats.HitRate())))
	}
	rows = append(rows, style.Row("Duration", stats.Duration.Round(time.Millisecond).String()))
	if saved := timeSaved(stats); saved > 0 {
		rows = append(rows, style.Row("Estimated saving", saved.Round(time.Millisecond).String()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// timeSaved estimates how much longer a full build would have taken,
// assuming cached files cost as much as rebuilt ones.
func timeSaved(stats *domain.BuildStats) time.Duration {
	if !stats.CacheEnabled || stats.Cached == 0 {
		return 0
	}
	perFile := stats.Duration / time.Duration(max(stats.Rebuilt, 1))
	return perFile*time.Duration(stats.TotalFiles) - stats.Duration
}
