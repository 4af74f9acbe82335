package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arremate/internal/core/apperror"
	"arremate/internal/core/pubid"
	"arremate/internal/core/tenant"
	"arremate/internal/infrastructure/http/v1/dto"
	"arremate/internal/infrastructure/http/v1/middleware"
)

const testTenantID = "11111111-1111-1111-1111-111111111111"

type fakeService struct {
	generateFunc func(ctx context.Context, tenantID string, entity pubid.EntityType) (string, error)
	masks        map[pubid.EntityType]string
	counter      int64
	resetCalled  bool
}

func (f *fakeService) GeneratePublicID(ctx context.Context, tenantID string, entity pubid.EntityType) (string, error) {
	if f.generateFunc != nil {
		return f.generateFunc(ctx, tenantID, entity)
	}
	return "AUC-2024-0001", nil
}

func (f *fakeService) ValidateMask(template string) bool {
	return strings.TrimSpace(template) != ""
}

func (f *fakeService) GetMask(ctx context.Context, tenantID string, entity pubid.EntityType) (*pubid.MaskConfig, error) {
	mask, ok := f.masks[entity]
	if !ok {
		return nil, apperror.NewNotFound("mask configuration", entity.String())
	}
	return &pubid.MaskConfig{
		TenantID:   tenantID,
		EntityType: entity,
		Mask:       &mask,
		UpdatedAt:  time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
	}, nil
}

func (f *fakeService) ListMasks(ctx context.Context, tenantID string) ([]*pubid.MaskConfig, error) {
	var out []*pubid.MaskConfig
	for entity, mask := range f.masks {
		m := mask
		out = append(out, &pubid.MaskConfig{TenantID: tenantID, EntityType: entity, Mask: &m})
	}
	return out, nil
}

func (f *fakeService) UpsertMask(ctx context.Context, tenantID string, entity pubid.EntityType, mask string) error {
	if strings.TrimSpace(mask) == "" {
		return apperror.NewValidation("mask must not be empty")
	}
	if f.masks == nil {
		f.masks = make(map[pubid.EntityType]string)
	}
	f.masks[entity] = mask
	return nil
}

func (f *fakeService) DeleteMask(ctx context.Context, tenantID string, entity pubid.EntityType) error {
	delete(f.masks, entity)
	return nil
}

func (f *fakeService) CurrentCounter(ctx context.Context, tenantID string, entity pubid.EntityType) (int64, error) {
	return f.counter, nil
}

func (f *fakeService) ResetCounter(ctx context.Context, tenantID string, entity pubid.EntityType) error {
	f.resetCalled = true
	return nil
}

// injectTenant replaces the registry-backed middleware in tests.
func injectTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		t := &tenant.Tenant{ID: testTenantID, Slug: "acme", Status: tenant.StatusActive}
		c.Request = c.Request.WithContext(tenant.WithTenant(c.Request.Context(), t))
		c.Next()
	}
}

func newTestRouter(svc PublicIDService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())

	h := NewPublicIDHandler(NewBaseHandler(), svc)
	api := r.Group("/api/v1", injectTenant())
	{
		api.POST("/public-ids/:entityType", h.Generate)
		api.POST("/masks/validate", h.ValidateMask)
		api.GET("/masks", h.ListMasks)
		api.GET("/masks/:entityType", h.GetMask)
		api.PUT("/masks/:entityType", h.PutMask)
		api.DELETE("/masks/:entityType", h.DeleteMask)
		api.GET("/counters/:entityType", h.GetCounter)
		api.POST("/counters/:entityType/reset", h.ResetCounter)
	}
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerate(t *testing.T) {
	svc := &fakeService{
		generateFunc: func(ctx context.Context, tenantID string, entity pubid.EntityType) (string, error) {
			assert.Equal(t, testTenantID, tenantID)
			assert.Equal(t, pubid.EntityAuction, entity)
			return "AUC-2024-0042", nil
		},
	}
	r := newTestRouter(svc)

	w := doRequest(t, r, http.MethodPost, "/api/v1/public-ids/auction", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.GeneratePublicIDResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "AUC-2024-0042", resp.PublicID)
	assert.Equal(t, "auction", resp.EntityType)
}

func TestGenerate_UnknownEntityType(t *testing.T) {
	r := newTestRouter(&fakeService{})

	w := doRequest(t, r, http.MethodPost, "/api/v1/public-ids/invoice", "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, apperror.CodeValidation, resp["code"])
}

func TestValidateMask(t *testing.T) {
	r := newTestRouter(&fakeService{})

	w := doRequest(t, r, http.MethodPost, "/api/v1/masks/validate", `{"mask":"AUC-{YYYY}-{####}"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ValidateMaskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)

	w = doRequest(t, r, http.MethodPost, "/api/v1/masks/validate", `{"mask":"   "}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Valid)
}

func TestMaskLifecycle(t *testing.T) {
	svc := &fakeService{}
	r := newTestRouter(svc)

	// configure
	w := doRequest(t, r, http.MethodPut, "/api/v1/masks/lot", `{"mask":"LOTE-{YY}-{#####}"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// read back
	w = doRequest(t, r, http.MethodGet, "/api/v1/masks/lot", "")
	require.Equal(t, http.StatusOK, w.Code)
	var mask dto.MaskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mask))
	assert.Equal(t, "lot", mask.EntityType)
	assert.Equal(t, "LOTE-{YY}-{#####}", mask.Mask)

	// list
	w = doRequest(t, r, http.MethodGet, "/api/v1/masks", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []dto.MaskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	// delete
	w = doRequest(t, r, http.MethodDelete, "/api/v1/masks/lot", "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/v1/masks/lot", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPutMask_InvalidBody(t *testing.T) {
	r := newTestRouter(&fakeService{})

	// missing required mask field
	w := doRequest(t, r, http.MethodPut, "/api/v1/masks/auction", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// malformed JSON
	w = doRequest(t, r, http.MethodPut, "/api/v1/masks/auction", `{`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCounter(t *testing.T) {
	r := newTestRouter(&fakeService{counter: 17})

	w := doRequest(t, r, http.MethodGet, "/api/v1/counters/auction", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.CounterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "auction", resp.EntityType)
	assert.Equal(t, int64(17), resp.CurrentValue)
}

func TestResetCounter(t *testing.T) {
	svc := &fakeService{}
	r := newTestRouter(svc)

	w := doRequest(t, r, http.MethodPost, "/api/v1/counters/auction/reset", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.resetCalled)

	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestCounter_UnknownEntityType(t *testing.T) {
	r := newTestRouter(&fakeService{})

	w := doRequest(t, r, http.MethodGet, "/api/v1/counters/invoice", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
