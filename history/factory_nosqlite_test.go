//go:build !sqlite

package history

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpen_SQLiteRequiresBuildTag(t *testing.T) {
	_, err := Open(context.Background(), "sqlite", "history.db", 0)
	assert.ErrorIs(t, err, ErrSQLiteUnavailable)
}
