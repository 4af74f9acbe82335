package pubid_repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arremate/internal/core/pubid"
)

func TestBuildResolve(t *testing.T) {
	repo := &MaskRepo{}

	sql, args, err := repo.buildResolve("t1", pubid.EntityAuction)
	require.NoError(t, err)

	assert.Equal(t, "SELECT mask FROM pubid_masks WHERE entity_type = $1 AND tenant_id = $2", sql)
	assert.ElementsMatch(t, []any{"t1", "auction"}, args)
}

func TestBuildUpsert(t *testing.T) {
	repo := &MaskRepo{}

	sql, args, err := repo.buildUpsert("t1", pubid.EntityLot, "LOTE-{YY}{MM}-{#####}")
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO pubid_masks (tenant_id,entity_type,mask) VALUES ($1,$2,$3) "+
			"ON CONFLICT (tenant_id, entity_type) DO UPDATE SET mask = EXCLUDED.mask, updated_at = now()",
		sql)
	assert.Equal(t, []any{"t1", "lot", "LOTE-{YY}{MM}-{#####}"}, args)
}
