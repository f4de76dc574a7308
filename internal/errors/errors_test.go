package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/mdkeeper/internal/models"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrTransient,
		ErrUnauthorized,
		ErrQuotaExceeded,
		ErrEntityGone,
		ErrRejected,
		ErrStorageFull,
	}
	for i := 0; i < len(sentinels); i++ {
		assert.NotEmpty(t, sentinels[i].Error())
		for j := i + 1; j < len(sentinels); j++ {
			assert.NotEqual(t, sentinels[i], sentinels[j],
				"sentinel errors should be distinct: %q vs %q", sentinels[i], sentinels[j])
		}
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		err  error
		name string
		want bool
	}{
		{name: "unauthorized", err: fmt.Errorf("push: %w", ErrUnauthorized), want: true},
		{name: "quota", err: fmt.Errorf("push: %w", ErrQuotaExceeded), want: true},
		{name: "gone", err: ErrEntityGone, want: true},
		{name: "rejected", err: ErrRejected, want: true},
		{name: "transient", err: fmt.Errorf("push: %w", ErrTransient), want: false},
		{name: "conflict", err: &VersionConflictError{}, want: false},
		{name: "plain", err: errors.New("boom"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFatal(tt.err))
		})
	}
}

func TestAsVersionConflict(t *testing.T) {
	server := models.Entity{ID: "d1", Type: models.EntityTypeDocument, SyncVersion: 2}
	err := fmt.Errorf("push failed: %w", &VersionConflictError{Server: server, ExpectedVersion: 1})

	vc, ok := AsVersionConflict(err)
	require.True(t, ok)
	assert.Equal(t, int64(2), vc.Server.SyncVersion)
	assert.Equal(t, int64(1), vc.ExpectedVersion)
	assert.Contains(t, err.Error(), "expected 1, server has 2")

	_, ok = AsVersionConflict(ErrTransient)
	assert.False(t, ok)
}
