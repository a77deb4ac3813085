package migrations

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	ups, err := fs.Glob(FS, "*.up.sql")
	require.NoError(t, err)
	require.Len(t, ups, Version)

	for v := 1; v <= Version; v++ {
		prefix := fmt.Sprintf("%06d_", v)
		for _, dir := range []string{"up", "down"} {
			matches, err := fs.Glob(FS, prefix+"*."+dir+".sql")
			require.NoError(t, err)
			assert.Len(t, matches, 1, "version %d %s migration", v, dir)
		}
	}

	raw, err := fs.ReadFile(FS, "000001_init.up.sql")
	require.NoError(t, err)
	for _, table := range []string{"campaigns", "allocations", "allocation_items"} {
		assert.Contains(t, string(raw), "CREATE TABLE IF NOT EXISTS "+table+" ")
	}
}
