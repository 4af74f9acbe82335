package pubid

import (
	"context"
	"time"
)

// Generator produces public identifiers. This is the domain contract;
// the implementation lives in internal/domain/pubid.
type Generator interface {
	// GeneratePublicID returns the public identifier for a new record of
	// the given entity type, scoped to the tenant.
	//
	// It never fails for infrastructure reasons: a missing mask or any
	// storage error routes to a fallback identifier (PREFIX-<uuid>).
	// The only error it returns is ErrInvalidEntityType.
	GeneratePublicID(ctx context.Context, tenantID string, entity EntityType) (string, error)
}

// MaskResolver reads the configured mask template for a (tenant, entity
// type) pair. Returns ErrMaskNotConfigured when no template exists and
// ErrConfigUnavailable on storage failure.
type MaskResolver interface {
	Resolve(ctx context.Context, tenantID string, entity EntityType) (string, error)
}

// CounterStore supplies sequential counter values for (tenant, entity type)
// keys. Implementations must make Next a single atomic unit per key: two
// concurrent callers never observe the same value, and a failed call must
// not have advanced the stored value.
type CounterStore interface {
	// Next atomically creates-or-increments the counter and returns the
	// post-increment value (1 on first use). Returns ErrCounterUnavailable
	// on storage failure.
	Next(ctx context.Context, tenantID string, entity EntityType) (int64, error)

	// Current returns the stored value without advancing it (0 if the
	// counter was never used).
	Current(ctx context.Context, tenantID string, entity EntityType) (int64, error)

	// Reset unconditionally sets the stored value to 0, so the next issued
	// value is 1. Administrative and test use only.
	Reset(ctx context.Context, tenantID string, entity EntityType) error
}

// MaskConfig is the per-tenant, per-entity-type mask record.
// Mutated only through administrative settings; read-only to generation.
type MaskConfig struct {
	TenantID   string     `db:"tenant_id" json:"tenantId"`
	EntityType EntityType `db:"entity_type" json:"entityType"`
	Mask       *string    `db:"mask" json:"mask"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updatedAt"`
}

// MockGenerator is a test implementation of Generator.
// Use in unit tests to avoid database dependencies.
type MockGenerator struct {
	GeneratePublicIDFunc func(ctx context.Context, tenantID string, entity EntityType) (string, error)
}

// GeneratePublicID implements Generator.
func (m *MockGenerator) GeneratePublicID(ctx context.Context, tenantID string, entity EntityType) (string, error) {
	if m.GeneratePublicIDFunc != nil {
		return m.GeneratePublicIDFunc(ctx, tenantID, entity)
	}
	return "MOCK-2026-00001", nil
}

// Ensure compile-time interface compliance.
var _ Generator = (*MockGenerator)(nil)
