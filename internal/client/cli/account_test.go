package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/mdkeeper/internal/client/auth"
	"github.com/iudanet/mdkeeper/internal/client/storage"
	clientsync "github.com/iudanet/mdkeeper/internal/client/sync"
	"github.com/iudanet/mdkeeper/internal/models"
)

func TestCli_runRegister(t *testing.T) {
	t.Run("password from env skips confirmation", func(t *testing.T) {
		t.Setenv(PasswordEnv, "long-enough-password")
		tc := newTestCli()
		tc.auth.RegisterFunc = func(_ context.Context, username, password string) (*storage.AuthData, error) {
			return &storage.AuthData{Username: username, UserID: "user-1"}, nil
		}

		require.NoError(t, tc.cli.runRegister(context.Background(), []string{"alice"}))

		calls := tc.auth.RegisterCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "alice", calls[0].Username)
		assert.Equal(t, "long-enough-password", calls[0].Password)
		assert.Empty(t, tc.io.ReadPasswordCalls())
		assert.Contains(t, tc.out.String(), "Registration successful")
		assert.Contains(t, tc.out.String(), "user-1")
	})

	t.Run("interactive passwords must match", func(t *testing.T) {
		t.Setenv(PasswordEnv, "")
		tc := newTestCli()
		answers := []string{"first-password", "other-password"}
		tc.io.ReadInputFunc = func(string) (string, error) { return "alice", nil }
		tc.io.ReadPasswordFunc = func(string) (string, error) {
			next := answers[0]
			answers = answers[1:]
			return next, nil
		}

		err := tc.cli.runRegister(context.Background(), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "do not match")
		assert.Empty(t, tc.auth.RegisterCalls())
	})

	t.Run("server error", func(t *testing.T) {
		t.Setenv(PasswordEnv, "long-enough-password")
		tc := newTestCli()
		tc.auth.RegisterFunc = func(context.Context, string, string) (*storage.AuthData, error) {
			return nil, errors.New("username taken")
		}

		err := tc.cli.runRegister(context.Background(), []string{"alice"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "registration failed")
	})
}

func TestCli_runLogin(t *testing.T) {
	t.Setenv(PasswordEnv, "long-enough-password")
	tc := newTestCli()
	tc.io.ReadInputFunc = func(string) (string, error) { return "bob", nil }
	tc.auth.LoginFunc = func(_ context.Context, username, _ string) (*storage.AuthData, error) {
		return &storage.AuthData{Username: username}, nil
	}

	require.NoError(t, tc.cli.runLogin(context.Background(), nil))

	require.Len(t, tc.auth.LoginCalls(), 1)
	assert.Equal(t, "bob", tc.auth.LoginCalls()[0].Username)
	assert.Contains(t, tc.out.String(), "Login successful")
}

func TestCli_runLogout(t *testing.T) {
	tc := newTestCli()
	tc.auth.LogoutFunc = func(context.Context) error { return nil }
	tc.sync.PendingCountFunc = func() int { return 2 }

	require.NoError(t, tc.cli.runLogout(context.Background()))
	assert.Contains(t, tc.out.String(), "Logged out")
	assert.Contains(t, tc.out.String(), "2 change(s) remain queued")
}

func TestCli_runDisconnect(t *testing.T) {
	tc := newTestCli()
	tc.sync.PendingCountFunc = func() int { return 3 }
	tc.sync.ConflictCountFunc = func() int { return 1 }
	tc.sync.DisconnectFunc = func(context.Context) error { return nil }
	tc.auth.LogoutFunc = func(context.Context) error { return auth.ErrNotLoggedIn }

	require.NoError(t, tc.cli.runDisconnect(context.Background()))

	assert.Len(t, tc.sync.DisconnectCalls(), 1)
	assert.Len(t, tc.auth.LogoutCalls(), 1)
	assert.Contains(t, tc.out.String(), "Discarded 3 pending change(s) and 1 conflict(s)")
}

func TestCli_runStatus(t *testing.T) {
	syncedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("logged in with failed items", func(t *testing.T) {
		tc := newTestCli()
		tc.auth.CurrentFunc = func(context.Context) (*storage.AuthData, error) {
			return &storage.AuthData{Username: "alice", ExpiresAt: time.Now().Add(time.Hour).Unix()}, nil
		}
		tc.sync.StatusFunc = func() clientsync.Status {
			return clientsync.Status{
				State:        models.SyncStateError,
				LastSyncedAt: syncedAt,
				LastError:    errors.New("server unavailable"),
				Pending:      2,
				Conflicts:    1,
				Failed:       1,
			}
		}
		tc.sync.FailedItemsFunc = func() []*models.SyncQueueItem {
			return []*models.SyncQueueItem{{
				ID:      "0123456789abcdef",
				Type:    models.EntityTypeDocument,
				Data:    models.Entity{Name: "Notes"},
				Retries: 5,
			}}
		}

		require.NoError(t, tc.cli.runStatus(context.Background()))

		out := tc.out.String()
		assert.Contains(t, out, "Session: alice")
		assert.Contains(t, out, "Sync state: error")
		assert.Contains(t, out, "2026-01-02T03:04:05Z")
		assert.Contains(t, out, "server unavailable")
		assert.Contains(t, out, "Pending: 2, conflicts: 1, failed: 1")
		assert.Contains(t, out, "mdkeeper retry 01234567")
		assert.Contains(t, out, "mdkeeper conflicts")
	})

	t.Run("not logged in", func(t *testing.T) {
		tc := newTestCli()
		tc.auth.CurrentFunc = func(context.Context) (*storage.AuthData, error) {
			return nil, auth.ErrNotLoggedIn
		}
		tc.sync.StatusFunc = func() clientsync.Status { return clientsync.Status{State: models.SyncStateIdle} }
		tc.sync.FailedItemsFunc = func() []*models.SyncQueueItem { return nil }

		require.NoError(t, tc.cli.runStatus(context.Background()))
		assert.Contains(t, tc.out.String(), "not logged in")
		assert.Contains(t, tc.out.String(), "Last synced: never")
	})

	t.Run("storage error", func(t *testing.T) {
		tc := newTestCli()
		tc.auth.CurrentFunc = func(context.Context) (*storage.AuthData, error) {
			return nil, errors.New("bolt closed")
		}

		require.Error(t, tc.cli.runStatus(context.Background()))
	})
}
