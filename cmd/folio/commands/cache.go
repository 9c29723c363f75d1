package commands

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.trai.ch/folio/internal/core/domain"
	"go.trai.ch/folio/internal/ui/style"
)

func (c *CLI) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the build cache",
		Args:  cobra.NoArgs,
	}
	cmd.AddCommand(c.newCacheInfoCmd())
	cmd.AddCommand(c.newCacheClearCmd())
	cmd.AddCommand(c.newCacheCleanCmd())
	return cmd
}

func (c *CLI) newCacheInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show cache statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := c.app.CacheInfo(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderCacheInfo(info))
			return nil
		},
	}
}

func renderCacheInfo(info *domain.CacheInfo) string {
	lastBuild := "Never"
	if info.LastBuild != nil {
		lastBuild = info.LastBuild.Local().Format(time.DateTime)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		style.Heading.Render("Build cache"),
		style.Row("Files tracked", strconv.Itoa(info.FilesTracked)),
		style.Row("Templates tracked", strconv.Itoa(info.TemplatesTracked)),
		style.Row("Disk cache size", fmt.Sprintf("%.2f MB", info.DiskMB())),
		style.Row("Memory cache size", fmt.Sprintf("%.2f MB", info.MemoryMB())),
		style.Row("Memory entries", strconv.Itoa(info.MemoryEntries)),
		style.Row("Last build", lastBuild),
	)
}

func (c *CLI) newCacheClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the build cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if yes, _ := cmd.Flags().GetBool("yes"); !yes && !confirm(cmd, "Are you sure you want to clear the cache?") {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
			if err := c.app.CacheClear(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), style.Success.Render(style.Check+" Cache cleared."))
			return nil
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func (c *CLI) newCacheCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove cache entries not rebuilt recently",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			days, _ := cmd.Flags().GetInt("older-than")
			removed, err := c.app.CacheClean(cmd.Context(), days)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if removed == 0 {
				_, _ = fmt.Fprintln(out, "No old cache entries to clean.")
				return nil
			}
			_, _ = fmt.Fprintln(out, style.Success.Render(fmt.Sprintf("%s Cleaned %d old cache entries.", style.Check, removed)))
			return nil
		},
	}
	cmd.Flags().Int("older-than", 0, "Remove entries older than N days (default: cache.max_age_days)")
	return cmd
}

// confirm asks a yes/no question on the command's streams. Anything but an
// explicit yes declines.
func confirm(cmd *cobra.Command, question string) bool {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", question)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
