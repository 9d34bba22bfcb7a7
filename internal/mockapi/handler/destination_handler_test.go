package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Didine-06/travel-agency-sub000/internal/domain"
	"github.com/Didine-06/travel-agency-sub000/internal/dto"
	"github.com/Didine-06/travel-agency-sub000/internal/mockapi/repository"
	"github.com/Didine-06/travel-agency-sub000/internal/mockapi/service"
	"github.com/Didine-06/travel-agency-sub000/pkg/response"
)

func setupDestinationRouter() (*gin.Engine, *service.DestinationService) {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryResourceRepository(func(d *domain.Destination) string { return d.ID })
	svc := service.NewDestinationService(repo)
	h := NewDestinationHandler(svc)

	router := gin.New()
	destinations := router.Group("/api/v1/destinations")
	{
		destinations.GET("", h.List)
		destinations.GET("/:id", h.Get)
		destinations.POST("", h.Create)
		destinations.PUT("/:id", h.Update)
		destinations.DELETE("/:id", h.Delete)
		destinations.POST("/bulk-delete", h.BulkDelete)
		destinations.PATCH("/:id/status", h.SetStatus)
	}
	return router, svc
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, response.Envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestDestinationHandler_Create(t *testing.T) {
	router, _ := setupDestinationRouter()

	w, env := doJSON(t, router, http.MethodPost, "/api/v1/destinations", dto.CreateDestinationRequest{
		Name:    "Paris",
		City:    "Paris",
		Country: "France",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.IsSuccess)
	assert.False(t, env.IsError)

	data, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Paris", data["name"])
	assert.Equal(t, string(domain.DestinationActive), data["status"])
	assert.NotEmpty(t, data["id"])
}

func TestDestinationHandler_CreateMissingFields(t *testing.T) {
	router, _ := setupDestinationRouter()

	w, env := doJSON(t, router, http.MethodPost, "/api/v1/destinations", map[string]string{
		"name": "Paris",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, env.IsError)
	assert.False(t, env.IsSuccess)
	assert.NotEmpty(t, env.Message)
}

func TestDestinationHandler_List(t *testing.T) {
	router, svc := setupDestinationRouter()
	ctx := context.Background()

	for _, name := range []string{"Paris", "Istanbul"} {
		_, err := svc.Create(ctx, &dto.CreateDestinationRequest{Name: name, City: name, Country: "X"})
		require.NoError(t, err)
	}

	w, env := doJSON(t, router, http.MethodGet, "/api/v1/destinations", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.IsSuccess)

	items, ok := env.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, items, 2)
}

func TestDestinationHandler_GetNotFound(t *testing.T) {
	router, _ := setupDestinationRouter()

	w, env := doJSON(t, router, http.MethodGet, "/api/v1/destinations/nope", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, env.IsError)
}

func TestDestinationHandler_Update(t *testing.T) {
	router, svc := setupDestinationRouter()

	created, err := svc.Create(context.Background(), &dto.CreateDestinationRequest{Name: "Paris", City: "Paris", Country: "France"})
	require.NoError(t, err)

	w, env := doJSON(t, router, http.MethodPut, "/api/v1/destinations/"+created.ID, dto.UpdateDestinationRequest{
		Description: "City of light",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	data, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "City of light", data["description"])
	assert.Equal(t, "Paris", data["name"])
}

func TestDestinationHandler_SetStatus(t *testing.T) {
	router, svc := setupDestinationRouter()

	created, err := svc.Create(context.Background(), &dto.CreateDestinationRequest{Name: "Paris", City: "Paris", Country: "France"})
	require.NoError(t, err)

	w, _ := doJSON(t, router, http.MethodPatch, "/api/v1/destinations/"+created.ID+"/status", dto.SetStatusRequest{
		Status: string(domain.DestinationInactive),
	})
	assert.Equal(t, http.StatusOK, w.Code)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DestinationInactive, got.Status)
}

func TestDestinationHandler_SetStatusInvalid(t *testing.T) {
	router, svc := setupDestinationRouter()

	created, err := svc.Create(context.Background(), &dto.CreateDestinationRequest{Name: "Paris", City: "Paris", Country: "France"})
	require.NoError(t, err)

	w, env := doJSON(t, router, http.MethodPatch, "/api/v1/destinations/"+created.ID+"/status", dto.SetStatusRequest{
		Status: "hidden",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, env.IsError)
}

func TestDestinationHandler_BulkDelete(t *testing.T) {
	router, svc := setupDestinationRouter()
	ctx := context.Background()

	var ids []string
	for _, name := range []string{"Paris", "Istanbul", "Reykjavik"} {
		created, err := svc.Create(ctx, &dto.CreateDestinationRequest{Name: name, City: name, Country: "X"})
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	w, env := doJSON(t, router, http.MethodPost, "/api/v1/destinations/bulk-delete", dto.BulkDeleteRequest{
		IDs: ids[:2],
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.IsSuccess)

	remaining, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, ids[2], remaining[0].ID)
}

func TestDestinationHandler_DeleteNotFound(t *testing.T) {
	router, _ := setupDestinationRouter()

	w, env := doJSON(t, router, http.MethodDelete, "/api/v1/destinations/nope", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, env.IsError)
}
