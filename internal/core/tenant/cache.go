package tenant

import (
	"context"
	"sync"
	"time"
)

// CachedRegistry wraps a Registry with an in-memory TTL cache for the
// lookups performed on every request. Writes go straight through and
// invalidate the affected entry, so a suspended tenant stops being served
// no later than one TTL after the status change.
type CachedRegistry struct {
	inner Registry
	ttl   time.Duration

	mu      sync.RWMutex
	entries map[string]cacheEntry

	// now is overridable for tests
	now func() time.Time
}

type cacheEntry struct {
	tenant    *Tenant
	expiresAt time.Time
}

// DefaultCacheTTL bounds how long a stale tenant record may be served.
const DefaultCacheTTL = time.Minute

// NewCachedRegistry creates a caching wrapper around inner.
// A non-positive ttl falls back to DefaultCacheTTL.
func NewCachedRegistry(inner Registry, ttl time.Duration) *CachedRegistry {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedRegistry{
		inner:   inner,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

var _ Registry = (*CachedRegistry)(nil)

func (c *CachedRegistry) GetByID(ctx context.Context, tenantID string) (*Tenant, error) {
	c.mu.RLock()
	entry, ok := c.entries[tenantID]
	c.mu.RUnlock()
	if ok && c.now().Before(entry.expiresAt) {
		return entry.tenant, nil
	}

	t, err := c.inner.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[tenantID] = cacheEntry{tenant: t, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return t, nil
}

func (c *CachedRegistry) GetBySlug(ctx context.Context, slug string) (*Tenant, error) {
	// Slug lookups are rare (CLI only), no caching.
	return c.inner.GetBySlug(ctx, slug)
}

func (c *CachedRegistry) ListAll(ctx context.Context) ([]*Tenant, error) {
	return c.inner.ListAll(ctx)
}

func (c *CachedRegistry) Create(ctx context.Context, t *Tenant) error {
	return c.inner.Create(ctx, t)
}

func (c *CachedRegistry) UpdateStatusByID(ctx context.Context, tenantID string, status Status) error {
	if err := c.inner.UpdateStatusByID(ctx, tenantID, status); err != nil {
		return err
	}
	c.Invalidate(tenantID)
	return nil
}

// Invalidate drops the cached entry for tenantID, if any.
func (c *CachedRegistry) Invalidate(tenantID string) {
	c.mu.Lock()
	delete(c.entries, tenantID)
	c.mu.Unlock()
}
