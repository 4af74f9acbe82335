package pubid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEntityType(t *testing.T) {
	for _, e := range AllEntityTypes() {
		got, err := ParseEntityType(string(e))
		assert.NoError(t, err)
		assert.Equal(t, e, got)
	}

	_, err := ParseEntityType("invoice")
	assert.True(t, errors.Is(err, ErrInvalidEntityType))

	// case-sensitive
	_, err = ParseEntityType("Auction")
	assert.True(t, errors.Is(err, ErrInvalidEntityType))
}

func TestEntityTypePrefix(t *testing.T) {
	assert.Equal(t, "AUC", EntityAuction.Prefix())
	assert.Equal(t, "LOTE", EntityLot.Prefix())
	assert.Equal(t, "PJ", EntityJudicialProcess.Prefix())

	// every member has a non-empty prefix
	seen := make(map[string]bool)
	for _, e := range AllEntityTypes() {
		p := e.Prefix()
		assert.NotEmpty(t, p)
		assert.False(t, seen[p], "duplicate prefix %s", p)
		seen[p] = true
	}

	assert.Equal(t, "ID", EntityType("bogus").Prefix())
}

func TestEntityTypeValid(t *testing.T) {
	assert.True(t, EntityAuction.Valid())
	assert.False(t, EntityType("").Valid())
	assert.False(t, EntityType("bogus").Valid())
}
