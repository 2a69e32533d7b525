package dbopen

import (
	"context"
	"testing"

	"github.com/jusunglee/lipi/internal/db/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPostgres(t *testing.T) {
	assert.True(t, IsPostgres("postgres://u@localhost/lipi"))
	assert.True(t, IsPostgres("postgresql://u@localhost/lipi"))
	assert.False(t, IsPostgres("sqlite://lipi.db"))
	assert.False(t, IsPostgres("lipi.db"))
}

func TestOpenSQLite(t *testing.T) {
	repo, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	defer repo.Close()

	assert.IsType(t, &sqlite.Repository{}, repo)
}

func TestOpenEmpty(t *testing.T) {
	_, err := Open(context.Background(), "")
	assert.Error(t, err)
}
