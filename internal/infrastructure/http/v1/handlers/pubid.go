package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"arremate/internal/core/apperror"
	"arremate/internal/core/pubid"
	"arremate/internal/infrastructure/http/v1/dto"
)

// PublicIDService is the domain surface the handler depends on.
// Implemented by internal/domain/pubid.Service; faked in tests.
type PublicIDService interface {
	GeneratePublicID(ctx context.Context, tenantID string, entity pubid.EntityType) (string, error)
	ValidateMask(template string) bool
	GetMask(ctx context.Context, tenantID string, entity pubid.EntityType) (*pubid.MaskConfig, error)
	ListMasks(ctx context.Context, tenantID string) ([]*pubid.MaskConfig, error)
	UpsertMask(ctx context.Context, tenantID string, entity pubid.EntityType, mask string) error
	DeleteMask(ctx context.Context, tenantID string, entity pubid.EntityType) error
	CurrentCounter(ctx context.Context, tenantID string, entity pubid.EntityType) (int64, error)
	ResetCounter(ctx context.Context, tenantID string, entity pubid.EntityType) error
}

// PublicIDHandler serves identifier generation plus the administrative mask
// and counter endpoints.
type PublicIDHandler struct {
	*BaseHandler
	svc PublicIDService
}

// NewPublicIDHandler creates a new public identifier handler.
func NewPublicIDHandler(base *BaseHandler, svc PublicIDService) *PublicIDHandler {
	return &PublicIDHandler{BaseHandler: base, svc: svc}
}

// entityType parses the :entityType path parameter against the closed
// enumeration and reports a 400 on anything outside it.
func (h *PublicIDHandler) entityType(c *gin.Context) (pubid.EntityType, bool) {
	entity, err := pubid.ParseEntityType(c.Param("entityType"))
	if err != nil {
		h.Error(c, apperror.NewValidation("unknown entity type").
			WithDetail("entityType", c.Param("entityType")))
		return "", false
	}
	return entity, true
}

// Generate issues a public identifier for a new record.
// POST /api/v1/public-ids/:entityType
func (h *PublicIDHandler) Generate(c *gin.Context) {
	entity, ok := h.entityType(c)
	if !ok {
		return
	}

	publicID, err := h.svc.GeneratePublicID(c.Request.Context(), h.GetTenantID(c), entity)
	if err != nil {
		// Only caller misuse reaches here; infrastructure failures were
		// already converted into a fallback identifier.
		h.Error(c, apperror.NewValidation("unknown entity type").
			WithDetail("entityType", entity.String()).WithCause(err))
		return
	}

	h.OK(c, dto.GeneratePublicIDResponse{
		PublicID:   publicID,
		EntityType: entity.String(),
	})
}

// ValidateMask gives advisory feedback for configuration screens.
// POST /api/v1/masks/validate
func (h *PublicIDHandler) ValidateMask(c *gin.Context) {
	var req dto.ValidateMaskRequest
	if !h.BindJSON(c, &req) {
		return
	}
	h.OK(c, dto.ValidateMaskResponse{Valid: h.svc.ValidateMask(req.Mask)})
}

// GetMask returns the configured mask for an entity type.
// GET /api/v1/masks/:entityType
func (h *PublicIDHandler) GetMask(c *gin.Context) {
	entity, ok := h.entityType(c)
	if !ok {
		return
	}

	cfg, err := h.svc.GetMask(c.Request.Context(), h.GetTenantID(c), entity)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, maskResponse(cfg))
}

// ListMasks returns every configured mask for the tenant.
// GET /api/v1/masks
func (h *PublicIDHandler) ListMasks(c *gin.Context) {
	configs, err := h.svc.ListMasks(c.Request.Context(), h.GetTenantID(c))
	if err != nil {
		h.Error(c, err)
		return
	}

	out := make([]dto.MaskResponse, 0, len(configs))
	for _, cfg := range configs {
		out = append(out, maskResponse(cfg))
	}
	h.OK(c, out)
}

// PutMask configures the mask for an entity type.
// PUT /api/v1/masks/:entityType
func (h *PublicIDHandler) PutMask(c *gin.Context) {
	entity, ok := h.entityType(c)
	if !ok {
		return
	}

	var req dto.MaskRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.svc.UpsertMask(c.Request.Context(), h.GetTenantID(c), entity, req.Mask); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "mask configured")
}

// DeleteMask removes the mask configuration for an entity type.
// DELETE /api/v1/masks/:entityType
func (h *PublicIDHandler) DeleteMask(c *gin.Context) {
	entity, ok := h.entityType(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteMask(c.Request.Context(), h.GetTenantID(c), entity); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// GetCounter returns the stored counter value for an entity type.
// GET /api/v1/counters/:entityType
func (h *PublicIDHandler) GetCounter(c *gin.Context) {
	entity, ok := h.entityType(c)
	if !ok {
		return
	}

	val, err := h.svc.CurrentCounter(c.Request.Context(), h.GetTenantID(c), entity)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.CounterResponse{EntityType: entity.String(), CurrentValue: val})
}

// ResetCounter sets the counter to 0. Test and ops use only.
// POST /api/v1/counters/:entityType/reset
func (h *PublicIDHandler) ResetCounter(c *gin.Context) {
	entity, ok := h.entityType(c)
	if !ok {
		return
	}

	if err := h.svc.ResetCounter(c.Request.Context(), h.GetTenantID(c), entity); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "counter reset")
}

func maskResponse(cfg *pubid.MaskConfig) dto.MaskResponse {
	resp := dto.MaskResponse{
		EntityType: cfg.EntityType.String(),
		UpdatedAt:  cfg.UpdatedAt,
	}
	if cfg.Mask != nil {
		resp.Mask = *cfg.Mask
	}
	return resp
}
