// Package pubid_repo provides PostgreSQL implementations of the public
// identifier persistence contracts: the atomic counter store and the mask
// configuration repository.
package pubid_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"arremate/internal/core/pubid"
	"arremate/internal/infrastructure/storage/postgres"
)

// CounterRepo implements pubid.CounterStore on the shared pubid_counters
// table. The create-or-increment is a single UPSERT with RETURNING, so the
// row-level lock taken by Postgres makes the read-increment-write atomic
// with respect to concurrent callers on the same (tenant_id, entity_type)
// key. No two callers observe the same returned value.
type CounterRepo struct {
	txm *postgres.TxManager
	// staticQuerier bypasses the TxManager; used in tests
	staticQuerier postgres.Querier
}

// Ensure compile-time interface compliance.
var _ pubid.CounterStore = (*CounterRepo)(nil)

// NewCounterRepo creates a counter repository using the transaction manager.
// Operations pick up an ambient transaction from context when present.
func NewCounterRepo(txm *postgres.TxManager) *CounterRepo {
	return &CounterRepo{txm: txm}
}

// NewCounterRepoWithQuerier creates a counter repository bound to a fixed
// querier. Use in tests.
func NewCounterRepoWithQuerier(q postgres.Querier) *CounterRepo {
	return &CounterRepo{staticQuerier: q}
}

func (r *CounterRepo) querier(ctx context.Context) postgres.Querier {
	if r.staticQuerier != nil {
		return r.staticQuerier
	}
	return r.txm.GetQuerier(ctx)
}

// Next atomically creates-or-increments the counter for the key and returns
// the post-increment value (1 on first use). A failed call never advances
// the stored value: the statement either commits the increment together
// with the returned row or does nothing.
func (r *CounterRepo) Next(ctx context.Context, tenantID string, entity pubid.EntityType) (int64, error) {
	var val int64
	err := r.querier(ctx).QueryRow(ctx, `
		INSERT INTO pubid_counters (tenant_id, entity_type, current_val)
		VALUES ($1, $2, 1)
		ON CONFLICT (tenant_id, entity_type)
		DO UPDATE SET current_val = pubid_counters.current_val + 1
		RETURNING current_val
	`, tenantID, entity.String()).Scan(&val)
	if err != nil {
		return 0, fmt.Errorf("%w: next value for %s/%s: %v", pubid.ErrCounterUnavailable, tenantID, entity, err)
	}
	return val, nil
}

// Current returns the stored value without advancing it, 0 if the counter
// was never used.
func (r *CounterRepo) Current(ctx context.Context, tenantID string, entity pubid.EntityType) (int64, error) {
	var val int64
	err := r.querier(ctx).QueryRow(ctx, `
		SELECT current_val FROM pubid_counters
		WHERE tenant_id = $1 AND entity_type = $2
	`, tenantID, entity.String()).Scan(&val)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: current value for %s/%s: %v", pubid.ErrCounterUnavailable, tenantID, entity, err)
	}
	return val, nil
}

// Reset unconditionally sets the stored value to 0 (next issued value is 1).
func (r *CounterRepo) Reset(ctx context.Context, tenantID string, entity pubid.EntityType) error {
	_, err := r.querier(ctx).Exec(ctx, `
		INSERT INTO pubid_counters (tenant_id, entity_type, current_val)
		VALUES ($1, $2, 0)
		ON CONFLICT (tenant_id, entity_type)
		DO UPDATE SET current_val = 0
	`, tenantID, entity.String())
	if err != nil {
		return fmt.Errorf("%w: reset %s/%s: %v", pubid.ErrCounterUnavailable, tenantID, entity, err)
	}
	return nil
}
