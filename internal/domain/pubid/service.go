// Package pubid provides business logic for public identifier generation
// and mask configuration management.
package pubid

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"arremate/internal/core/apperror"
	corepubid "arremate/internal/core/pubid"
	"arremate/internal/core/tx"
	"arremate/pkg/logger"
)

// MaskRepository is the persistence contract for mask configurations.
// Resolve serves the generation hot path; the remaining methods serve
// administrative settings screens.
type MaskRepository interface {
	corepubid.MaskResolver

	Get(ctx context.Context, tenantID string, entity corepubid.EntityType) (*corepubid.MaskConfig, error)
	Upsert(ctx context.Context, tenantID string, entity corepubid.EntityType, mask string) error
	Delete(ctx context.Context, tenantID string, entity corepubid.EntityType) error
	List(ctx context.Context, tenantID string) ([]*corepubid.MaskConfig, error)
}

// Service orchestrates mask resolution, counter allocation and template
// expansion. It is the only entry point business callers use to obtain a
// public identifier.
//
// Generation is a two-branch state machine: the masked path (resolve →
// token scan → counter fetch → expand) and the fallback path. Any failure
// on the masked path routes immediately to fallback for that call; there
// is no retry loop.
type Service struct {
	masks    MaskRepository
	counters corepubid.CounterStore
	txm      tx.Manager
	log      *logger.Logger

	// now and newFallbackToken are overridable in tests
	now              func() time.Time
	newFallbackToken func() string
}

// Ensure compile-time interface compliance.
var _ corepubid.Generator = (*Service)(nil)

// NewService creates a new public identifier service.
func NewService(masks MaskRepository, counters corepubid.CounterStore, txm tx.Manager, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	return &Service{
		masks:            masks,
		counters:         counters,
		txm:              txm,
		log:              log.WithComponent("pubid"),
		now:              time.Now,
		newFallbackToken: uuid.NewString,
	}
}

// GeneratePublicID implements corepubid.Generator.
//
// The counter store is consulted exactly once per call, and only when the
// resolved mask contains a counter token. Every outward path returns a
// non-empty identifier; only ErrInvalidEntityType is surfaced, since it
// indicates caller misuse rather than a transient infrastructure failure.
func (s *Service) GeneratePublicID(ctx context.Context, tenantID string, entity corepubid.EntityType) (string, error) {
	if !entity.Valid() {
		return "", fmt.Errorf("%w: %q", corepubid.ErrInvalidEntityType, entity)
	}

	mask, err := s.masks.Resolve(ctx, tenantID, entity)
	if err != nil {
		if !errors.Is(err, corepubid.ErrMaskNotConfigured) {
			s.log.WithContext(ctx).Warnw("mask resolution failed, issuing fallback identifier",
				"tenant_id", tenantID,
				"entity_type", entity.String(),
				"error", err,
			)
		}
		return s.fallback(entity), nil
	}
	if strings.TrimSpace(mask) == "" {
		return s.fallback(entity), nil
	}

	var counter int64
	if corepubid.HasCounterToken(mask) {
		counter, err = s.counters.Next(ctx, tenantID, entity)
		if err != nil {
			// Fallback identifiers showing up where masked ones are expected
			// are the operator's signal that the mask path is failing.
			s.log.WithContext(ctx).Warnw("counter unavailable, issuing fallback identifier",
				"tenant_id", tenantID,
				"entity_type", entity.String(),
				"error", err,
			)
			return s.fallback(entity), nil
		}
	}

	return corepubid.Expand(mask, s.now(), counter), nil
}

// fallback produces PREFIX-<random token>. No counter access, so the
// fallback path has no concurrency hazard.
func (s *Service) fallback(entity corepubid.EntityType) string {
	return entity.Prefix() + "-" + s.newFallbackToken()
}

// --- Mask configuration (administrative) ---

// ValidateMask is the advisory check exposed to configuration screens.
func (s *Service) ValidateMask(template string) bool {
	return corepubid.IsValidMask(template)
}

// GetMask returns the configured mask for (tenant, entity type).
func (s *Service) GetMask(ctx context.Context, tenantID string, entity corepubid.EntityType) (*corepubid.MaskConfig, error) {
	if !entity.Valid() {
		return nil, apperror.NewValidation("unknown entity type").WithDetail("entityType", entity.String())
	}
	cfg, err := s.masks.Get(ctx, tenantID, entity)
	if err != nil {
		if errors.Is(err, corepubid.ErrMaskNotConfigured) {
			return nil, apperror.NewNotFound("mask configuration", entity.String())
		}
		return nil, apperror.NewInternal(err)
	}
	return cfg, nil
}

// ListMasks returns every configured mask for the tenant.
func (s *Service) ListMasks(ctx context.Context, tenantID string) ([]*corepubid.MaskConfig, error) {
	configs, err := s.masks.List(ctx, tenantID)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	return configs, nil
}

// UpsertMask stores a mask template after advisory validation. Rejecting a
// malformed mask here is the only gate; generation itself stays permissive.
func (s *Service) UpsertMask(ctx context.Context, tenantID string, entity corepubid.EntityType, mask string) error {
	if !entity.Valid() {
		return apperror.NewValidation("unknown entity type").WithDetail("entityType", entity.String())
	}
	if !corepubid.IsValidMask(mask) {
		return apperror.NewValidation("mask must not be empty").WithDetail("mask", mask)
	}

	err := s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.masks.Upsert(ctx, tenantID, entity, mask)
	})
	if err != nil {
		return apperror.NewInternal(err)
	}

	s.log.WithContext(ctx).Infow("mask configuration updated",
		"tenant_id", tenantID,
		"entity_type", entity.String(),
	)
	return nil
}

// DeleteMask removes the mask configuration; subsequent generation calls
// for the pair produce fallback identifiers.
func (s *Service) DeleteMask(ctx context.Context, tenantID string, entity corepubid.EntityType) error {
	if !entity.Valid() {
		return apperror.NewValidation("unknown entity type").WithDetail("entityType", entity.String())
	}
	err := s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.masks.Delete(ctx, tenantID, entity)
	})
	if err != nil {
		return apperror.NewInternal(err)
	}
	return nil
}

// --- Counter operations (administrative / ops) ---

// CurrentCounter returns the stored counter value without advancing it.
func (s *Service) CurrentCounter(ctx context.Context, tenantID string, entity corepubid.EntityType) (int64, error) {
	if !entity.Valid() {
		return 0, apperror.NewValidation("unknown entity type").WithDetail("entityType", entity.String())
	}
	val, err := s.counters.Current(ctx, tenantID, entity)
	if err != nil {
		return 0, apperror.NewInternal(err)
	}
	return val, nil
}

// ResetCounter sets the counter to 0, so the next issued value is 1.
// Test and ops use only; never called on the generation path.
func (s *Service) ResetCounter(ctx context.Context, tenantID string, entity corepubid.EntityType) error {
	if !entity.Valid() {
		return apperror.NewValidation("unknown entity type").WithDetail("entityType", entity.String())
	}
	if err := s.counters.Reset(ctx, tenantID, entity); err != nil {
		return apperror.NewInternal(err)
	}
	s.log.WithContext(ctx).Infow("counter reset",
		"tenant_id", tenantID,
		"entity_type", entity.String(),
	)
	return nil
}
