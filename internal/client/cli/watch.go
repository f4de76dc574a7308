package cli

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/iudanet/mdkeeper/internal/client/mirror"
	clientsync "github.com/iudanet/mdkeeper/internal/client/sync"
)

// defaultPullInterval как часто watch забирает изменения с сервера
const defaultPullInterval = 30 * time.Second

func (c *Cli) watchCmd() *cobra.Command {
	var quiet, interval time.Duration
	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Mirror documents into a directory and sync edits both ways",
		Long: `Watch exports every document into <dir> as a markdown file with an id
front matter, imports edits made to those files, and keeps syncing with the
server in the background until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := mirror.New(afero.NewOsFs(), args[0], c.data, c.logger)
			return c.runWatch(cmd.Context(), m, quiet, interval)
		},
	}
	cmd.Flags().DurationVar(&quiet, "quiet", mirror.DefaultQuiet, "wait this long after the last write before importing a file")
	cmd.Flags().DurationVar(&interval, "interval", defaultPullInterval, "server pull interval")
	return cmd
}

// mirrorWatcher часть Mirror, нужная watch
type mirrorWatcher interface {
	Dir() string
	Export(ctx context.Context) (int, error)
	Watch(ctx context.Context, quiet time.Duration, refresh <-chan struct{}) error
}

func (c *Cli) runWatch(ctx context.Context, m mirrorWatcher, quiet, interval time.Duration) error {
	if interval <= 0 {
		interval = defaultPullInterval
	}

	c.bg.Start(ctx)
	defer c.bg.Stop()

	if _, err := c.sync.Pull(ctx); err != nil {
		c.logger.Warn("initial pull failed", "error", err)
	}
	n, err := m.Export(ctx)
	if err != nil {
		return fmt.Errorf("failed to export documents: %w", err)
	}
	c.io.Printf("Watching %s (%d document(s) written), press Ctrl+C to stop\n", m.Dir(), n)

	refresh := make(chan struct{}, 1)
	requestExport := func() {
		select {
		case refresh <- struct{}{}:
		default:
		}
	}

	// после каждого изменения состояния синхронизации файлы обновляются
	var (
		mu   sync.Mutex
		last clientsync.Status
	)
	unsubscribe := c.bg.Subscribe(func(st clientsync.Status) {
		mu.Lock()
		changed := !st.LastSyncedAt.Equal(last.LastSyncedAt) || st.Conflicts != last.Conflicts
		last = st
		mu.Unlock()
		if changed {
			requestExport()
		}
	})
	defer unsubscribe()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return m.Watch(gctx, quiet, refresh)
	})
	g.Go(func() error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case <-ticker.C:
				summary, err := c.sync.Pull(gctx)
				if err != nil {
					c.logger.Warn("periodic pull failed", "error", err)
					continue
				}
				if summary.Applied > 0 || summary.Deleted > 0 {
					requestExport()
				}
			}
		}
	})

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		c.io.Println("Stopped.")
		return nil
	}
	return err
}
