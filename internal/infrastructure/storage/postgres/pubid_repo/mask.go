package pubid_repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"arremate/internal/core/pubid"
	domainpubid "arremate/internal/domain/pubid"
	"arremate/internal/infrastructure/storage/postgres"
)

// maskColumns are the columns read back for administrative views.
var maskColumns = []string{"tenant_id", "entity_type", "mask", "updated_at"}

// MaskRepo implements the mask configuration repository on pubid_masks.
// Resolve is the generation hot path; everything else serves settings
// screens and is read-modify-write under the ambient transaction.
type MaskRepo struct {
	txm *postgres.TxManager
	// staticQuerier bypasses the TxManager; used in tests
	staticQuerier postgres.Querier
}

// Ensure compile-time interface compliance.
var (
	_ pubid.MaskResolver         = (*MaskRepo)(nil)
	_ domainpubid.MaskRepository = (*MaskRepo)(nil)
)

// NewMaskRepo creates a mask repository using the transaction manager.
func NewMaskRepo(txm *postgres.TxManager) *MaskRepo {
	return &MaskRepo{txm: txm}
}

// NewMaskRepoWithQuerier creates a mask repository bound to a fixed querier.
// Use in tests.
func NewMaskRepoWithQuerier(q postgres.Querier) *MaskRepo {
	return &MaskRepo{staticQuerier: q}
}

func (r *MaskRepo) querier(ctx context.Context) postgres.Querier {
	if r.staticQuerier != nil {
		return r.staticQuerier
	}
	return r.txm.GetQuerier(ctx)
}

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func (r *MaskRepo) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *MaskRepo) buildResolve(tenantID string, entity pubid.EntityType) (string, []any, error) {
	return r.Builder().
		Select("mask").
		From("pubid_masks").
		Where(squirrel.Eq{"tenant_id": tenantID, "entity_type": entity.String()}).
		ToSql()
}

// Resolve returns the configured mask template for the key.
// A missing row, a NULL mask and a blank mask all read as "not configured";
// only storage failures surface, wrapped in ErrConfigUnavailable.
func (r *MaskRepo) Resolve(ctx context.Context, tenantID string, entity pubid.EntityType) (string, error) {
	sql, args, err := r.buildResolve(tenantID, entity)
	if err != nil {
		return "", fmt.Errorf("build resolve: %w", err)
	}

	var row struct {
		Mask *string `db:"mask"`
	}
	if err := pgxscan.Get(ctx, r.querier(ctx), &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return "", pubid.ErrMaskNotConfigured
		}
		return "", fmt.Errorf("%w: resolve mask for %s/%s: %v", pubid.ErrConfigUnavailable, tenantID, entity, err)
	}
	if row.Mask == nil || strings.TrimSpace(*row.Mask) == "" {
		return "", pubid.ErrMaskNotConfigured
	}
	return *row.Mask, nil
}

// Get returns the full configuration record for administrative screens.
func (r *MaskRepo) Get(ctx context.Context, tenantID string, entity pubid.EntityType) (*pubid.MaskConfig, error) {
	sql, args, err := r.Builder().
		Select(maskColumns...).
		From("pubid_masks").
		Where(squirrel.Eq{"tenant_id": tenantID, "entity_type": entity.String()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get: %w", err)
	}

	var cfg pubid.MaskConfig
	if err := pgxscan.Get(ctx, r.querier(ctx), &cfg, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, pubid.ErrMaskNotConfigured
		}
		return nil, fmt.Errorf("%w: get mask for %s/%s: %v", pubid.ErrConfigUnavailable, tenantID, entity, err)
	}
	return &cfg, nil
}

func (r *MaskRepo) buildUpsert(tenantID string, entity pubid.EntityType, mask string) (string, []any, error) {
	return r.Builder().
		Insert("pubid_masks").
		Columns("tenant_id", "entity_type", "mask").
		Values(tenantID, entity.String(), mask).
		Suffix("ON CONFLICT (tenant_id, entity_type) DO UPDATE SET mask = EXCLUDED.mask, updated_at = now()").
		ToSql()
}

// Upsert stores the mask template for the key, creating the row on first use.
func (r *MaskRepo) Upsert(ctx context.Context, tenantID string, entity pubid.EntityType, mask string) error {
	sql, args, err := r.buildUpsert(tenantID, entity, mask)
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}
	if _, err := r.querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("upsert mask for %s/%s: %w", tenantID, entity, err)
	}
	return nil
}

// Delete removes the mask configuration for the key. Deleting an absent
// row is not an error.
func (r *MaskRepo) Delete(ctx context.Context, tenantID string, entity pubid.EntityType) error {
	sql, args, err := r.Builder().
		Delete("pubid_masks").
		Where(squirrel.Eq{"tenant_id": tenantID, "entity_type": entity.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	if _, err := r.querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete mask for %s/%s: %w", tenantID, entity, err)
	}
	return nil
}

// List returns every configured mask for the tenant, ordered by entity type.
func (r *MaskRepo) List(ctx context.Context, tenantID string) ([]*pubid.MaskConfig, error) {
	sql, args, err := r.Builder().
		Select(maskColumns...).
		From("pubid_masks").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("entity_type").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list: %w", err)
	}

	var configs []*pubid.MaskConfig
	if err := pgxscan.Select(ctx, r.querier(ctx), &configs, sql, args...); err != nil {
		return nil, fmt.Errorf("list masks for %s: %w", tenantID, err)
	}
	return configs, nil
}
