// Package tenant provides tenant metadata and request-scoped tenant context
// for the shared-database multi-tenant model. All tenant-scoped tables carry
// a tenant_id column; isolation is logical, not physical.
package tenant

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Status represents tenant lifecycle state.
type Status string

const (
	// StatusActive - tenant can accept requests
	StatusActive Status = "active"

	// StatusSuspended - tenant is temporarily disabled (e.g., payment issues)
	StatusSuspended Status = "suspended"

	// StatusDeleted - tenant is marked for deletion
	StatusDeleted Status = "deleted"
)

// Plan represents tenant subscription plan.
type Plan string

const (
	PlanStandard   Plan = "standard"
	PlanPremium    Plan = "premium"
	PlanEnterprise Plan = "enterprise"
)

// Tenant represents a tenant record.
type Tenant struct {
	ID          string    `db:"id"`
	Slug        string    `db:"slug"`         // URL-safe identifier
	DisplayName string    `db:"display_name"` // Human-readable name
	Status      Status    `db:"status"`
	Plan        Plan      `db:"plan"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// IsActive returns true if tenant can accept requests.
func (t *Tenant) IsActive() bool {
	return t.Status == StatusActive
}

var slugRe = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// CreateTenantInput contains data for creating a new tenant.
type CreateTenantInput struct {
	Slug        string
	DisplayName string
	Plan        Plan
}

// Validate checks if input is valid.
func (i *CreateTenantInput) Validate() error {
	if i.Slug == "" {
		return fmt.Errorf("slug is required")
	}
	i.Slug = strings.ToLower(i.Slug)
	if len(i.Slug) > 63 {
		return fmt.Errorf("slug must be at most 63 characters")
	}
	if !slugRe.MatchString(i.Slug) {
		return fmt.Errorf("slug must contain only lowercase letters, digits and hyphens")
	}
	if i.DisplayName == "" {
		return fmt.Errorf("display name is required")
	}
	if i.Plan == "" {
		i.Plan = PlanStandard
	}
	switch i.Plan {
	case PlanStandard, PlanPremium, PlanEnterprise:
	default:
		return fmt.Errorf("unknown plan: %s", i.Plan)
	}
	return nil
}
