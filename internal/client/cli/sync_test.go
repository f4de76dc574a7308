package cli

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientsync "github.com/iudanet/mdkeeper/internal/client/sync"
	apperrors "github.com/iudanet/mdkeeper/internal/errors"
	"github.com/iudanet/mdkeeper/internal/models"
)

func TestCli_runSync_Success(t *testing.T) {
	tc := newTestCli()
	tc.sync.ProcessQueueFunc = func(context.Context) (clientsync.DrainResult, error) {
		return clientsync.DrainResult{Pushed: 3, CleanPulls: 1}, nil
	}
	tc.sync.PullFunc = func(context.Context) (clientsync.PullSummary, error) {
		return clientsync.PullSummary{Applied: 2, Deleted: 1}, nil
	}
	tc.sync.PendingCountFunc = func() int { return 0 }
	tc.sync.ConflictCountFunc = func() int { return 0 }

	require.NoError(t, tc.cli.runSync(context.Background()))

	out := tc.out.String()
	assert.Contains(t, out, "Pushed: 3, replaced by server: 1")
	assert.Contains(t, out, "Pulled: 2 updated, 1 deleted")
	assert.Contains(t, out, "All data synchronized")
}

func TestCli_runSync_WithConflicts(t *testing.T) {
	tc := newTestCli()
	tc.sync.ProcessQueueFunc = func(context.Context) (clientsync.DrainResult, error) {
		return clientsync.DrainResult{Conflicts: 1}, nil
	}
	tc.sync.PullFunc = func(context.Context) (clientsync.PullSummary, error) {
		return clientsync.PullSummary{}, nil
	}
	tc.sync.PendingCountFunc = func() int { return 1 }
	tc.sync.ConflictCountFunc = func() int { return 1 }

	require.NoError(t, tc.cli.runSync(context.Background()))

	out := tc.out.String()
	assert.Contains(t, out, "1 change(s) still pending")
	assert.Contains(t, out, "1 conflict(s) need attention")
	assert.NotContains(t, out, "All data synchronized")
}

func TestCli_runSync_Errors(t *testing.T) {
	tests := []struct {
		err     error
		name    string
		wantMsg string
	}{
		{name: "unauthorized", err: fmt.Errorf("push: %w", apperrors.ErrUnauthorized), wantMsg: "mdkeeper login"},
		{name: "offline", err: fmt.Errorf("dial: %w", apperrors.ErrTransient), wantMsg: "kept locally"},
		{name: "other", err: errors.New("disk full"), wantMsg: "push failed: disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestCli()
			tc.sync.ProcessQueueFunc = func(context.Context) (clientsync.DrainResult, error) {
				return clientsync.DrainResult{}, tt.err
			}

			err := tc.cli.runSync(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Empty(t, tc.sync.PullCalls(), "pull is skipped after a failed push")
		})
	}
}

func TestCli_runRetry(t *testing.T) {
	failed := []*models.SyncQueueItem{
		{ID: "aaaa1111-0000", Type: models.EntityTypeDocument},
		{ID: "bbbb2222-0000", Type: models.EntityTypeFolder},
	}

	t.Run("by prefix", func(t *testing.T) {
		tc := newTestCli()
		tc.sync.FailedItemsFunc = func() []*models.SyncQueueItem { return failed }
		tc.sync.RetryFailedFunc = func(context.Context, string) error { return nil }
		tc.sync.ProcessQueueFunc = func(context.Context) (clientsync.DrainResult, error) {
			return clientsync.DrainResult{Pushed: 1}, nil
		}

		require.NoError(t, tc.cli.runRetry(context.Background(), "bbbb"))
		require.Len(t, tc.sync.RetryFailedCalls(), 1)
		assert.Equal(t, "bbbb2222-0000", tc.sync.RetryFailedCalls()[0].ID)
		assert.Len(t, tc.sync.ProcessQueueCalls(), 1)
	})

	t.Run("unknown", func(t *testing.T) {
		tc := newTestCli()
		tc.sync.FailedItemsFunc = func() []*models.SyncQueueItem { return failed }

		err := tc.cli.runRetry(context.Background(), "cccc")
		require.Error(t, err)
		assert.Empty(t, tc.sync.RetryFailedCalls())
	})
}
