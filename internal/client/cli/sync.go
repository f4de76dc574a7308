package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	apperrors "github.com/iudanet/mdkeeper/internal/errors"
	"github.com/iudanet/mdkeeper/internal/models"
)

// ErrNoSuchConflict нет неразрешенного конфликта по ссылке
var ErrNoSuchConflict = errors.New("no such conflict")

func (c *Cli) syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Push pending changes and pull server updates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runSync(cmd.Context())
		},
	}
}

func (c *Cli) retryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "retry <id>",
		Short: "Retry a change that exhausted its attempts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRetry(cmd.Context(), args[0])
		},
	}
}

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")

	pushed, err := c.sync.ProcessQueue(ctx)
	if err != nil {
		return c.syncError("push", err)
	}
	c.io.Printf("Pushed: %d", pushed.Pushed)
	if pushed.CleanPulls > 0 {
		c.io.Printf(", replaced by server: %d", pushed.CleanPulls)
	}
	if pushed.Retried > 0 {
		c.io.Printf(", will retry: %d", pushed.Retried)
	}
	c.io.Println()

	pulled, err := c.sync.Pull(ctx)
	if err != nil {
		return c.syncError("pull", err)
	}
	c.io.Printf("Pulled: %d updated, %d deleted\n", pulled.Applied, pulled.Deleted)

	if n := c.sync.PendingCount(); n > 0 {
		c.io.Printf("⚠️  %d change(s) still pending\n", n)
	}
	if n := c.sync.ConflictCount(); n > 0 {
		c.io.Printf("⚠️  %d conflict(s) need attention, run 'mdkeeper conflicts'\n", n)
	} else if c.sync.PendingCount() == 0 {
		c.io.Println("✓ All data synchronized with server")
	}
	return nil
}

// syncError превращает ошибки синхронизации в понятные подсказки
func (c *Cli) syncError(stage string, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrUnauthorized):
		return fmt.Errorf("%s failed: session expired, run 'mdkeeper login': %w", stage, err)
	case errors.Is(err, apperrors.ErrTransient):
		return fmt.Errorf("%s failed: server unreachable, changes are kept locally: %w", stage, err)
	default:
		return fmt.Errorf("%s failed: %w", stage, err)
	}
}

func (c *Cli) runRetry(ctx context.Context, ref string) error {
	var id string
	for _, item := range c.sync.FailedItems() {
		if item.ID == ref || strings.HasPrefix(item.ID, ref) {
			if id != "" && id != item.ID {
				return fmt.Errorf("%q matches several failed changes", ref)
			}
			id = item.ID
		}
	}
	if id == "" {
		return fmt.Errorf("no failed change matches %q", ref)
	}

	if err := c.sync.RetryFailed(ctx, id); err != nil {
		return fmt.Errorf("retry failed: %w", err)
	}
	c.io.Printf("✓ %s queued again\n", shortID(id))

	if _, err := c.sync.ProcessQueue(ctx); err != nil {
		c.io.Printf("Push did not complete: %v\n", err)
	}
	return nil
}

// findConflict ищет конфликт по id или префиксу id
func (c *Cli) findConflict(ref string) (*models.SyncConflict, error) {
	if found, ok := c.sync.Conflict(ref); ok {
		return found, nil
	}

	var match *models.SyncConflict
	for _, cf := range c.sync.Conflicts() {
		if !strings.HasPrefix(cf.DocumentID, ref) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("%q matches several conflicts", ref)
		}
		match = cf
	}
	if match == nil {
		return nil, fmt.Errorf("%q: %w", ref, ErrNoSuchConflict)
	}
	return match, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(time.DateTime)
}
