package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockroom/pagenav/internal/config"
	"github.com/stockroom/pagenav/internal/server"
)

func TestNewEngine_UsesConfiguredDefaults(t *testing.T) {
	cfg := config.New()
	cfg.Pagination.PageSize = 3
	cfg.Server.APIVersion = "/v2"
	config.SetGlobalConfig(cfg)
	t.Cleanup(func() { config.SetGlobalConfig(nil) })

	engine, err := newEngine(context.Background(), []string{"testdata/stock.yaml"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v2/items?page=3", nil)
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got server.ItemsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Data, 1)
	assert.Equal(t, "PAL-EU", got.Data[0].SKU)
	assert.Equal(t, 3, got.Pagination.TotalPages)
	assert.Equal(t, 7, got.Pagination.TotalItems)
}

func TestNewEngine_WithoutFilesServesEmptyListing(t *testing.T) {
	config.SetGlobalConfig(config.New())
	t.Cleanup(func() { config.SetGlobalConfig(nil) })

	engine, err := newEngine(context.Background(), nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/items", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestBrowseTitle(t *testing.T) {
	assert.Equal(t, "Inventory · a.yaml, b.json", browseTitle([]string{"dir/a.yaml", "/tmp/b.json"}))
}
