//go:build sqlite

package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore_RoundTripAndReplace(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := Open(ctx, "sqlite", path, 2)
	require.NoError(t, err)

	first, err := s.Add(ctx, Entry{Start: "agumon", Goal: "greymon", Mode: "minSteps", MaxPaths: 5, Found: 1})
	require.NoError(t, err)
	_, err = s.Add(ctx, Entry{Start: "gabumon", Goal: "garurumon", Mode: "minSteps"})
	require.NoError(t, err)
	_, err = s.Add(ctx, Entry{Start: "agumon", Goal: "greymon", Mode: "minSteps", Found: 2})
	require.NoError(t, err)
	_, err = s.Add(ctx, Entry{Start: "patamon", Goal: "angemon", Mode: "minGate"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := Open(ctx, "sqlite", path, 2)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "patamon", got[0].Start)
	assert.Equal(t, 2, got[1].Found)
	assert.NotEqual(t, first.ID, got[1].ID)

	require.NoError(t, reopened.Clear(ctx))
	got, err = reopened.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSQLiteStore_RequiresPath(t *testing.T) {
	_, err := Open(context.Background(), "sqlite", "", 0)
	assert.Error(t, err)
}
