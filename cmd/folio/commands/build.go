package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/folio/internal/core/domain"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the site into the output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := buildOptions(cmd)
			if watch, _ := cmd.Flags().GetBool("watch"); watch {
				return c.watch(cmd, opts)
			}

			announce(cmd, opts)
			stats, err := c.app.Build(cmd.Context(), opts)
			return report(cmd, stats, err, opts.CollectStats)
		},
	}
	addBuildFlags(cmd)
	cmd.Flags().BoolP("watch", "w", false, "Rebuild whenever the project changes")
	return cmd
}

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Build the site and rebuild on every change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.watch(cmd, buildOptions(cmd))
		},
	}
	addBuildFlags(cmd)
	return cmd
}

func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("formats", "f", nil, "Output formats to generate (html, plain, txt, xml, json)")
	cmd.Flags().Bool("full", false, "Rebuild every file without consulting the cache")
	cmd.Flags().Bool("clean", false, "Wipe the output directory and cache before building")
	cmd.Flags().BoolP("stats", "s", false, "Print build statistics")
}

func buildOptions(cmd *cobra.Command) domain.BuildOptions {
	formats, _ := cmd.Flags().GetStringSlice("formats")
	full, _ := cmd.Flags().GetBool("full")
	clean, _ := cmd.Flags().GetBool("clean")
	stats, _ := cmd.Flags().GetBool("stats")

	return domain.BuildOptions{
		Incremental:  !full,
		Clean:        clean,
		CollectStats: stats,
		Formats:      formats,
	}
}

func (c *CLI) watch(cmd *cobra.Command, opts domain.BuildOptions) error {
	announce(cmd, opts)
	err := c.app.Watch(cmd.Context(), opts, func(stats *domain.BuildStats, err error) {
		// A failed build must not end the session.
		_ = report(cmd, stats, err, opts.CollectStats)
	})
	if err != nil && !errors.Is(err, cmd.Context().Err()) {
		return err
	}
	return nil
}

// buildKind names the build the options ask for.
func buildKind(opts domain.BuildOptions) string {
	switch {
	case opts.Clean:
		return "clean"
	case !opts.Incremental:
		return "full"
	default:
		return "incremental"
	}
}

func formatList(opts domain.BuildOptions) string {
	if len(opts.Formats) == 0 {
		return "configured"
	}
	return strings.Join(opts.Formats, ", ")
}
