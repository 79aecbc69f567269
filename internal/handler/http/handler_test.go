package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ataverin/go-content-sync/internal/gateway"
	"github.com/ataverin/go-content-sync/internal/logger"
	"github.com/ataverin/go-content-sync/internal/mock"
	"github.com/ataverin/go-content-sync/internal/service"
	"github.com/ataverin/go-content-sync/models"
)

func newTestHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, *mock.MockSyncCoordinator) {
	t.Helper()
	coordinator := mock.NewMockSyncCoordinator(ctrl)
	return NewHandler(coordinator, logger.Nop()), coordinator
}

func doRequest(t *testing.T, h *Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, target, reader)
	recorder := httptest.NewRecorder()
	h.Init().ServeHTTP(recorder, request)
	return recorder
}

// ── catalogs ─────────────────────────────────────────────────────────────────

func TestDownloadCatalog_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, coordinator := newTestHandler(t, ctrl)
	handle := models.CatalogHandle{LocatorID: "cat-1", Keys: []string{"k1"}, Version: "v1"}

	coordinator.EXPECT().DownloadCatalog(gomock.Any(), "games/alpha", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, done service.CatalogCallback) bool {
			done(models.OKData(handle))
			return true
		})

	recorder := doRequest(t, h, http.MethodPost, "/api/catalogs/download", models.CatalogRequest{Path: "games/alpha"})

	require.Equal(t, http.StatusOK, recorder.Code)
	var got models.CatalogHandle
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	assert.Equal(t, handle, got)
}

func TestDownloadCatalog_ConflictWhenRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, coordinator := newTestHandler(t, ctrl)
	coordinator.EXPECT().DownloadCatalog(gomock.Any(), "games/alpha", gomock.Any()).Return(false)

	recorder := doRequest(t, h, http.MethodPost, "/api/catalogs/download", models.CatalogRequest{Path: "games/alpha"})

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestDownloadCatalog_BadRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	recorder := httptest.NewRecorder()
	h.Init().ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/catalogs/download", bytes.NewReader([]byte("{not json"))))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = doRequest(t, h, http.MethodPost, "/api/catalogs/download", models.CatalogRequest{})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestDownloadCatalog_MapsOriginError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, coordinator := newTestHandler(t, ctrl)
	coordinator.EXPECT().DownloadCatalog(gomock.Any(), "games/gone", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, done service.CatalogCallback) bool {
			done(models.FailData[models.CatalogHandle](fmt.Errorf("fetch catalog: %w", gateway.ErrCatalogNotFound)))
			return true
		})

	recorder := doRequest(t, h, http.MethodPost, "/api/catalogs/download", models.CatalogRequest{Path: "games/gone"})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestLoadCatalogFromCache_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, coordinator := newTestHandler(t, ctrl)
	handle := models.CatalogHandle{LocatorID: "cat-1", Version: "v1"}

	coordinator.EXPECT().LoadCatalogFromCache(gomock.Any(), "games/alpha", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, done service.CatalogCallback) bool {
			done(models.OKData(handle))
			return true
		})

	recorder := doRequest(t, h, http.MethodPost, "/api/catalogs/load", models.CatalogRequest{Path: "games/alpha"})

	require.Equal(t, http.StatusOK, recorder.Code)
	var got models.CatalogHandle
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	assert.Equal(t, handle, got)
}

func TestListCatalogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, coordinator := newTestHandler(t, ctrl)
	set := models.CatalogSet{
		{LocatorID: "cat-1", Version: "v1"},
		{LocatorID: "cat-2", Version: "v3"},
	}
	coordinator.EXPECT().Catalogs().Return(set)

	recorder := doRequest(t, h, http.MethodGet, "/api/catalogs/", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	var response models.CatalogListResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Length)
	assert.Equal(t, set, response.Catalogs)
}

// ── sync ─────────────────────────────────────────────────────────────────────

func TestEstimateDownloadSize_UpToDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, coordinator := newTestHandler(t, ctrl)
	coordinator.EXPECT().EstimateDownloadSize(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, done service.SizeCallback) bool {
			done(models.OKData(models.SizeEstimate{UpToDate: true}))
			return true
		})

	recorder := doRequest(t, h, http.MethodGet, "/api/sync/size", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	var estimate models.SizeEstimate
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &estimate))
	assert.True(t, estimate.UpToDate)
	assert.Zero(t, estimate.Bytes)
}

func TestEstimateDownloadSize_ConflictWhenEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, coordinator := newTestHandler(t, ctrl)
	coordinator.EXPECT().EstimateDownloadSize(gomock.Any(), gomock.Any()).Return(false)

	recorder := doRequest(t, h, http.MethodGet, "/api/sync/size", nil)

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestCheckForUpdates_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, coordinator := newTestHandler(t, ctrl)
	coordinator.EXPECT().CheckForUpdatedCatalogs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, done service.UpdatesCallback) bool {
			done(models.OKData([]string{"cat-1", "cat-2"}))
			return true
		})

	recorder := doRequest(t, h, http.MethodGet, "/api/sync/updates", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	var response models.UpdatesResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Length)
	assert.Equal(t, []string{"cat-1", "cat-2"}, response.LocatorIDs)
}

func TestApplyUpdates_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, coordinator := newTestHandler(t, ctrl)
	updated := models.CatalogHandle{LocatorID: "cat-1", Version: "v2"}
	coordinator.EXPECT().DownloadUpdatedCatalogs(gomock.Any(), []string{"cat-1"}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ []string, done service.CatalogsCallback) bool {
			done(models.OKData([]models.CatalogHandle{updated}))
			return true
		})

	recorder := doRequest(t, h, http.MethodPost, "/api/sync/apply", models.ApplyUpdatesRequest{LocatorIDs: []string{"cat-1"}, Length: 1})

	require.Equal(t, http.StatusOK, recorder.Code)
	var response models.CatalogListResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, models.CatalogSet{updated}, response.Catalogs)
}

func TestApplyUpdates_BadRequestWithoutIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	recorder := doRequest(t, h, http.MethodPost, "/api/sync/apply", models.ApplyUpdatesRequest{})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

// ── cache ────────────────────────────────────────────────────────────────────

func TestCacheExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, coordinator := newTestHandler(t, ctrl)
	coordinator.EXPECT().CacheExistsForAll(gomock.Any()).Return(true)

	recorder := doRequest(t, h, http.MethodGet, "/api/cache/exists", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	var response models.CacheExistsResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.True(t, response.Exists)
}

func TestClearCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, coordinator := newTestHandler(t, ctrl)
	coordinator.EXPECT().ClearCache(gomock.Any())

	recorder := doRequest(t, h, http.MethodDelete, "/api/cache", nil)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}
