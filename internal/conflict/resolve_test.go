package conflict

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/mdkeeper/internal/models"
)

func newConflict(t *testing.T) *models.SyncConflict {
	t.Helper()
	synced := time.Now().Add(-time.Hour)

	local := models.NewDocument("Plan", "folder-1", "local text", synced.Add(-time.Minute))
	local.SyncVersion = 3
	local.MarkSynced(synced)
	local.Touch(synced.Add(time.Minute))

	server := local.Clone()
	server.Content = "server text"
	server.SyncVersion = 4
	server.SyncedAt = nil

	c := Detect(local, server)
	require.NotNil(t, c)
	return c
}

func TestPlan_Local(t *testing.T) {
	c := newConflict(t)
	now := time.Now()

	plan, err := Plan(c, models.ResolutionLocal, now, nil)
	require.NoError(t, err)

	require.Len(t, plan.Enqueue, 1)
	pushed := plan.Enqueue[0]
	assert.Equal(t, c.DocumentID, pushed.ID)
	assert.Equal(t, "local text", pushed.Content)
	assert.Equal(t, int64(4), pushed.SyncVersion, "local payload goes on top of the server version")
	assert.True(t, pushed.HasUnsyncedChanges())
	assert.False(t, plan.DropQueued)
	require.Len(t, plan.Save, 1)
	assert.Equal(t, "server text", plan.Cache.Content)
}

func TestPlan_Server(t *testing.T) {
	c := newConflict(t)
	now := time.Now()

	plan, err := Plan(c, models.ResolutionServer, now, nil)
	require.NoError(t, err)

	assert.Empty(t, plan.Enqueue)
	assert.True(t, plan.DropQueued)
	require.Len(t, plan.Save, 1)
	adopted := plan.Save[0]
	assert.Equal(t, "server text", adopted.Content)
	require.NotNil(t, adopted.SyncedAt)
	assert.Equal(t, now, *adopted.SyncedAt)
	assert.False(t, adopted.HasUnsyncedChanges())
}

func TestPlan_BothKeepsBothVersions(t *testing.T) {
	c := newConflict(t)
	now := time.Now()

	plan, err := Plan(c, models.ResolutionBoth, now, func() string { return "copy-id" })
	require.NoError(t, err)

	require.Len(t, plan.Save, 2)
	original, cp := plan.Save[0], plan.Save[1]

	assert.Equal(t, c.DocumentID, original.ID)
	assert.Equal(t, "server text", original.Content)
	assert.Equal(t, int64(4), original.SyncVersion)

	assert.Equal(t, "copy-id", cp.ID)
	assert.Equal(t, "local text", cp.Content)
	assert.Equal(t, "Plan"+LocalCopySuffix, cp.Name)
	assert.Equal(t, "folder-1", cp.ParentID)
	assert.Zero(t, cp.SyncVersion)
	assert.Nil(t, cp.SyncedAt)

	require.Len(t, plan.Enqueue, 1)
	assert.Equal(t, "copy-id", plan.Enqueue[0].ID)
	assert.True(t, plan.DropQueued)
}

func TestPlan_Errors(t *testing.T) {
	c := newConflict(t)

	_, err := Plan(c, models.Resolution("merge"), time.Now(), nil)
	require.ErrorIs(t, err, ErrUnknownResolution)

	c.ServerDocument.ID = "other"
	_, err = Plan(c, models.ResolutionServer, time.Now(), nil)
	require.ErrorIs(t, err, ErrConflictMismatch)

	_, err = Plan(nil, models.ResolutionServer, time.Now(), nil)
	require.Error(t, err)
}
