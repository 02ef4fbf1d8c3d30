package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"subquest/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowListRepo_MissingFileIsEmpty(t *testing.T) {
	repo, err := NewAllowListRepo(filepath.Join(t.TempDir(), "paid_users.json"))
	require.NoError(t, err)

	allowed, err := repo.IsAllowed(context.Background(), 123)
	assert.NoError(t, err)
	assert.False(t, allowed)
	assert.Empty(t, repo.List())
}

func TestAllowListRepo_AddRemoveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paid_users.json")
	ctx := context.Background()

	repo, err := NewAllowListRepo(path)
	require.NoError(t, err)

	require.NoError(t, repo.Add(ctx, 123))
	allowed, _ := repo.IsAllowed(ctx, 123)
	assert.True(t, allowed)

	require.NoError(t, repo.Remove(ctx, 123))
	allowed, _ = repo.IsAllowed(ctx, 123)
	assert.False(t, allowed)
}

func TestAllowListRepo_PersistsAcrossRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paid_users.json")
	ctx := context.Background()

	repo, err := NewAllowListRepo(path)
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, 300))
	require.NoError(t, repo.Add(ctx, 100))
	require.NoError(t, repo.Add(ctx, 200))
	require.NoError(t, repo.Remove(ctx, 200))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[100, 300]`, string(data))

	reopened, err := NewAllowListRepo(path)
	require.NoError(t, err)
	assert.Equal(t, []int64{100, 300}, reopened.List())
}

func TestAllowListRepo_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paid_users.json")
	ctx := context.Background()

	repo, err := NewAllowListRepo(path)
	require.NoError(t, err)

	require.NoError(t, repo.Add(ctx, 1))
	require.NoError(t, repo.Add(ctx, 1))
	assert.Equal(t, []int64{1}, repo.List())

	require.NoError(t, repo.Remove(ctx, 2))
	require.NoError(t, repo.Remove(ctx, 1))
	require.NoError(t, repo.Remove(ctx, 1))
	assert.Empty(t, repo.List())
}

func TestAllowListRepo_ReloadPicksUpManualEdits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paid_users.json")
	ctx := context.Background()

	repo, err := NewAllowListRepo(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`[42]`), 0o644))
	require.NoError(t, repo.Reload(ctx))

	allowed, _ := repo.IsAllowed(ctx, 42)
	assert.True(t, allowed)
}

func TestAllowListRepo_MutationKeepsManualEdits(t *testing.T) {
	tests := []struct {
		name     string
		edited   string
		add      bool
		userID   int64
		expected []int64
	}{
		{name: "add after hand-added id", edited: `[1, 2]`, add: true, userID: 3, expected: []int64{1, 2, 3}},
		{name: "remove after hand-added id", edited: `[1, 2]`, add: false, userID: 1, expected: []int64{2}},
		{name: "add already hand-added id", edited: `[1, 3]`, add: true, userID: 3, expected: []int64{1, 3}},
		{name: "add after hand-removed id", edited: `[]`, add: true, userID: 3, expected: []int64{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "paid_users.json")
			ctx := context.Background()
			require.NoError(t, os.WriteFile(path, []byte(`[1]`), 0o644))

			repo, err := NewAllowListRepo(path)
			require.NoError(t, err)

			require.NoError(t, os.WriteFile(path, []byte(tt.edited), 0o644))
			if tt.add {
				require.NoError(t, repo.Add(ctx, tt.userID))
			} else {
				require.NoError(t, repo.Remove(ctx, tt.userID))
			}

			assert.Equal(t, tt.expected, repo.List())

			require.NoError(t, repo.Reload(ctx))
			assert.Equal(t, tt.expected, repo.List())
		})
	}
}

func TestAllowListRepo_MutationRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paid_users.json")
	ctx := context.Background()

	repo, err := NewAllowListRepo(path)
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, 5))

	require.NoError(t, os.WriteFile(path, []byte(`[5,`), 0o644))
	assert.ErrorIs(t, repo.Add(ctx, 6), domain.ErrStorageUnavailable)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `[5,`, string(data))
	assert.Equal(t, []int64{5}, repo.List())
}

func TestAllowListRepo_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paid_users.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	_, err := NewAllowListRepo(path)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestAllowListRepo_ReloadFailureKeepsSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paid_users.json")
	ctx := context.Background()

	repo, err := NewAllowListRepo(path)
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, 5))

	require.NoError(t, os.WriteFile(path, []byte(`[oops`), 0o644))
	assert.ErrorIs(t, repo.Reload(ctx), domain.ErrStorageUnavailable)

	allowed, _ := repo.IsAllowed(ctx, 5)
	assert.True(t, allowed)
}

func TestAllowListRepo_WriteFailureLeavesMembershipUnchanged(t *testing.T) {
	dir := t.TempDir()
	// the store path is a directory, so it can be neither read nor replaced
	path := filepath.Join(dir, "store")
	require.NoError(t, os.Mkdir(path, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(path, "keep"), nil, 0o644))

	repo := &AllowListRepo{path: path, ids: map[int64]struct{}{}}

	err := repo.Add(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	allowed, _ := repo.IsAllowed(context.Background(), 9)
	assert.False(t, allowed)
}
