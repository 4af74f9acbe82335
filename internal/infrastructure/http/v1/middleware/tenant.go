package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"arremate/internal/core/apperror"
	"arremate/internal/core/tenant"
	"arremate/pkg/logger"
)

const (
	// TenantHeader is the HTTP header for tenant identification.
	TenantHeader = "X-Tenant-ID"
)

// Tenant middleware resolves the tenant from the X-Tenant-ID header and
// injects it into the request context. It MUST run before any handler that
// touches tenant-scoped tables.
//
// The header value is trusted as-is once the tenant is known and active;
// membership checks belong to the host application's auth layer.
func Tenant(registry tenant.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		rawTenantID := c.GetHeader(TenantHeader)
		if rawTenantID == "" {
			_ = c.Error(
				apperror.NewValidation("tenant is required").
					WithDetail("header", TenantHeader),
			)
			c.Abort()
			return
		}

		tenantUUID, err := uuid.Parse(rawTenantID)
		if err != nil {
			_ = c.Error(
				apperror.NewValidation("invalid tenant id").
					WithDetail("header", TenantHeader).
					WithDetail("value", rawTenantID),
			)
			c.Abort()
			return
		}
		tenantID := tenantUUID.String()

		t, err := registry.GetByID(ctx, tenantID)
		if err != nil {
			logger.Warn(ctx, "tenant lookup error", "tenant_id", tenantID, "error", err)

			if errors.Is(err, tenant.ErrTenantNotFound) {
				_ = c.Error(apperror.NewNotFound("tenant", tenantID))
			} else {
				_ = c.Error(apperror.NewInternal(err).WithDetail("tenant_id", tenantID))
			}
			c.Abort()
			return
		}
		if !t.IsActive() {
			_ = c.Error(apperror.NewForbidden("tenant is not active").WithDetail("tenant_id", tenantID))
			c.Abort()
			return
		}

		ctx = tenant.WithTenant(ctx, t)
		c.Request = c.Request.WithContext(ctx)

		// Also set in Gin context for handlers that use c.Get()
		c.Set("tenant_uuid", t.ID)

		c.Next()
	}
}
