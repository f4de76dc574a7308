package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/mdkeeper/internal/conflict"
	"github.com/iudanet/mdkeeper/internal/models"
)

// defaultContextLines строк контекста вокруг изменений
const defaultContextLines = 3

func (c *Cli) conflictsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conflicts",
		Short: "List unresolved sync conflicts",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.runConflicts()
		},
	}
}

func (c *Cli) conflictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conflict",
		Short: "Inspect a sync conflict",
	}

	var (
		aligned bool
		lines   int
	)
	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show local and server versions side by side as hunks",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return c.runConflictShow(args[0], aligned, lines)
		},
	}
	show.Flags().BoolVar(&aligned, "aligned", false, "align inserted and removed lines instead of comparing by position")
	show.Flags().IntVar(&lines, "context", defaultContextLines, "context lines around changes")

	cmd.AddCommand(show)
	return cmd
}

func (c *Cli) resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <id> <local|server|both>",
		Short: "Resolve a conflict",
		Long: `Resolve a conflict with one of the strategies:
  local   keep the local version and overwrite the server
  server  accept the server version and drop local edits
  both    keep the server version and save local edits as a new copy`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(models.ResolutionLocal), string(models.ResolutionServer), string(models.ResolutionBoth)},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runResolve(cmd.Context(), args[0], models.Resolution(args[1]))
		},
	}
}

func (c *Cli) runConflicts() error {
	conflicts := c.sync.Conflicts()
	if len(conflicts) == 0 {
		c.io.Println("No conflicts.")
		return nil
	}

	var activeID string
	if active := c.sync.ActiveConflict(); active != nil {
		activeID = active.DocumentID
	}

	c.io.Printf("Found %d conflict(s):\n", len(conflicts))
	for _, cf := range conflicts {
		mark := " "
		if cf.DocumentID == activeID {
			mark = ">"
		}
		c.io.Printf("%s %s  %s %q  detected %s\n",
			mark, shortID(cf.DocumentID), cf.Type, cf.LocalDocument.Name, formatTime(cf.DetectedAt))
		c.io.Printf("    %s\n", describeConflict(cf))
	}
	c.io.Println()
	c.io.Println("Use 'mdkeeper conflict show <id>' and 'mdkeeper resolve <id> local|server|both'.")
	return nil
}

// describeConflict краткое описание расхождения
func describeConflict(cf *models.SyncConflict) string {
	local, server := &cf.LocalDocument, &cf.ServerDocument
	switch {
	case server.IsDeleted():
		return "deleted on server, edited locally"
	case local.IsDeleted():
		return "deleted locally, edited on server"
	case cf.Type == models.EntityTypeFolder:
		return fmt.Sprintf("local %q %s, server %q %s", local.Name, local.Color, server.Name, server.Color)
	}

	stats := conflict.CalculateDiff(local.Content, server.Content)
	desc := fmt.Sprintf("+%d -%d lines (%.0f%% changed), local v%d, server v%d",
		stats.AddedLines, stats.RemovedLines, stats.ChangedPercentage, local.SyncVersion, server.SyncVersion)
	if local.Name != server.Name {
		desc += fmt.Sprintf(", title %q vs %q", local.Name, server.Name)
	}
	return desc
}

func (c *Cli) runConflictShow(ref string, aligned bool, contextLines int) error {
	cf, err := c.findConflict(ref)
	if err != nil {
		return err
	}
	if err := c.sync.SetActiveConflict(cf.DocumentID); err != nil {
		return err
	}

	local, server := &cf.LocalDocument, &cf.ServerDocument
	c.io.Printf("Conflict %s (%s)\n", cf.DocumentID, cf.Type)
	c.io.Printf("Local:  %q v%d, updated %s\n", local.Name, local.SyncVersion, formatTime(local.UpdatedAt))
	c.io.Printf("Server: %q v%d, updated %s\n", server.Name, server.SyncVersion, formatTime(server.UpdatedAt))
	c.io.Printf("%s\n\n", describeConflict(cf))

	if cf.Type != models.EntityTypeDocument || local.IsDeleted() || server.IsDeleted() {
		return nil
	}

	var hunks []conflict.Hunk
	if aligned {
		hunks = conflict.BuildAlignedHunks(local.Content, server.Content, contextLines)
	} else {
		hunks = conflict.BuildHunks(local.Content, server.Content, contextLines)
	}
	if len(hunks) == 0 {
		c.io.Println("Contents are identical.")
		return nil
	}

	c.io.Println("--- local")
	c.io.Println("+++ server")
	for _, h := range hunks {
		c.io.Printf("@@ -%d,%d +%d,%d @@\n", h.LocalStart, h.LocalLines, h.ServerStart, h.ServerLines)
		for _, line := range h.Lines {
			c.io.Printf("%s%s\n", linePrefix(line.Kind), line.Text)
		}
	}
	return nil
}

func linePrefix(kind conflict.LineKind) string {
	switch kind {
	case conflict.LineAdded:
		return "+"
	case conflict.LineRemoved:
		return "-"
	default:
		return " "
	}
}

func (c *Cli) runResolve(ctx context.Context, ref string, res models.Resolution) error {
	if !res.Valid() {
		return fmt.Errorf("unknown resolution %q: use local, server or both", res)
	}
	cf, err := c.findConflict(ref)
	if err != nil {
		return err
	}

	resolved, err := c.sync.ResolveConflict(ctx, cf.DocumentID, res, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to resolve conflict: %w", err)
	}
	c.io.Printf("✓ Conflict %s resolved: %s\n", shortID(resolved.DocumentID), resolved.Resolution)

	if res == models.ResolutionServer {
		return nil
	}
	result, err := c.sync.ProcessQueue(ctx)
	if err != nil {
		c.io.Printf("Changes are queued, push did not complete: %v\n", err)
		return nil
	}
	c.io.Printf("Pushed: %d\n", result.Pushed)
	return nil
}
