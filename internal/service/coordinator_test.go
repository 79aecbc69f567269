package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ataverin/go-content-sync/internal/config"
	"github.com/ataverin/go-content-sync/internal/gateway"
	"github.com/ataverin/go-content-sync/internal/logger"
	"github.com/ataverin/go-content-sync/internal/mock"
	"github.com/ataverin/go-content-sync/internal/service"
	"github.com/ataverin/go-content-sync/internal/store"
	"github.com/ataverin/go-content-sync/models"
)

const callbackTimeout = 2 * time.Second

// newTestCoordinator builds a coordinator over a real catalog store and a
// mocked gateway, with a short progress interval so download tests finish
// quickly.
func newTestCoordinator(t *testing.T, ctrl *gomock.Controller) (service.SyncCoordinator, *mock.MockTransferGateway, store.CatalogStore) {
	t.Helper()

	mockGateway := mock.NewMockTransferGateway(ctrl)
	catalogStore := store.NewCatalogStore(logger.Nop())
	coordinator := service.NewSyncCoordinator(catalogStore, mockGateway, logger.Nop(), config.Sync{
		ProgressInterval: 5 * time.Millisecond,
	})

	return coordinator, mockGateway, catalogStore
}

func waitCatalogResult(t *testing.T, ch <-chan models.DataResult[models.CatalogHandle]) models.DataResult[models.CatalogHandle] {
	t.Helper()
	select {
	case result := <-ch:
		return result
	case <-time.After(callbackTimeout):
		t.Fatal("completion callback was not invoked")
		return models.DataResult[models.CatalogHandle]{}
	}
}

// ── DownloadCatalog ──────────────────────────────────────────────────────────

func TestSyncCoordinator_DownloadCatalog_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, mockGateway, _ := newTestCoordinator(t, ctrl)
	handle := models.CatalogHandle{LocatorID: "cat-1", Keys: []string{"k1"}, Version: "v1"}

	mockGateway.EXPECT().CatalogLoaded("games/alpha").Return(false)
	mockGateway.EXPECT().DownloadCatalog(gomock.Any(), "games/alpha").Return(handle, nil)

	resultCh := make(chan models.DataResult[models.CatalogHandle], 1)
	accepted := coordinator.DownloadCatalog(context.Background(), "games/alpha", func(r models.DataResult[models.CatalogHandle]) {
		resultCh <- r
	})
	require.True(t, accepted)

	result := waitCatalogResult(t, resultCh)
	require.True(t, result.Success)
	assert.Equal(t, handle, result.Data)

	// the handle must be committed before the callback fires
	require.True(t, coordinator.HasCatalogs())
	assert.Equal(t, models.CatalogSet{handle}, coordinator.Catalogs())
}

func TestSyncCoordinator_DownloadCatalog_RejectedWhenAlreadyLoaded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, mockGateway, _ := newTestCoordinator(t, ctrl)

	mockGateway.EXPECT().CatalogLoaded("games/alpha").Return(true)

	accepted := coordinator.DownloadCatalog(context.Background(), "games/alpha", func(models.DataResult[models.CatalogHandle]) {
		t.Error("rejected operation must not invoke its callback")
	})
	require.False(t, accepted)
	assert.False(t, coordinator.HasCatalogs())
}

func TestSyncCoordinator_DownloadCatalog_GatewayError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, mockGateway, _ := newTestCoordinator(t, ctrl)

	mockGateway.EXPECT().CatalogLoaded("games/alpha").Return(false)
	mockGateway.EXPECT().DownloadCatalog(gomock.Any(), "games/alpha").
		Return(models.CatalogHandle{}, gateway.ErrOriginUnavailable)

	resultCh := make(chan models.DataResult[models.CatalogHandle], 1)
	accepted := coordinator.DownloadCatalog(context.Background(), "games/alpha", func(r models.DataResult[models.CatalogHandle]) {
		resultCh <- r
	})
	require.True(t, accepted)

	result := waitCatalogResult(t, resultCh)
	require.False(t, result.Success)
	assert.Contains(t, result.Message, gateway.ErrOriginUnavailable.Error())
	assert.False(t, coordinator.HasCatalogs())
}

func TestSyncCoordinator_DownloadCatalog_DuplicateCommitFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, mockGateway, catalogStore := newTestCoordinator(t, ctrl)
	handle := models.CatalogHandle{LocatorID: "cat-1", Version: "v1"}
	require.NoError(t, catalogStore.Add(handle))

	mockGateway.EXPECT().CatalogLoaded("games/alpha").Return(false)
	mockGateway.EXPECT().DownloadCatalog(gomock.Any(), "games/alpha").Return(handle, nil)
	// The failed commit must roll back the gateway registration, otherwise
	// the path reports loaded forever and retries are rejected up front.
	mockGateway.EXPECT().ReleaseCatalog(handle).Return(nil)

	resultCh := make(chan models.DataResult[models.CatalogHandle], 1)
	require.True(t, coordinator.DownloadCatalog(context.Background(), "games/alpha", func(r models.DataResult[models.CatalogHandle]) {
		resultCh <- r
	}))

	result := waitCatalogResult(t, resultCh)
	require.False(t, result.Success)
	assert.Contains(t, result.Message, store.ErrDuplicateCatalog.Error())
	assert.Len(t, coordinator.Catalogs(), 1)
}

// ── LoadCatalogFromCache ─────────────────────────────────────────────────────

func TestSyncCoordinator_LoadCatalogFromCache_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, mockGateway, _ := newTestCoordinator(t, ctrl)
	handle := models.CatalogHandle{LocatorID: "cat-1", Version: "v1"}

	mockGateway.EXPECT().CacheExists(gomock.Any(), gomock.Nil()).Return(true)
	mockGateway.EXPECT().LoadCatalogFromCache(gomock.Any(), "games/alpha").Return(handle, nil)

	resultCh := make(chan models.DataResult[models.CatalogHandle], 1)
	require.True(t, coordinator.LoadCatalogFromCache(context.Background(), "games/alpha", func(r models.DataResult[models.CatalogHandle]) {
		resultCh <- r
	}))

	result := waitCatalogResult(t, resultCh)
	require.True(t, result.Success)
	assert.Equal(t, handle, result.Data)
	assert.True(t, coordinator.HasCatalogs())
}

func TestSyncCoordinator_LoadCatalogFromCache_RejectedWithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, mockGateway, _ := newTestCoordinator(t, ctrl)

	mockGateway.EXPECT().CacheExists(gomock.Any(), gomock.Nil()).Return(false)

	accepted := coordinator.LoadCatalogFromCache(context.Background(), "games/alpha", func(models.DataResult[models.CatalogHandle]) {
		t.Error("rejected operation must not invoke its callback")
	})
	require.False(t, accepted)
}

// ── EstimateDownloadSize ─────────────────────────────────────────────────────

func TestSyncCoordinator_EstimateDownloadSize_RejectedWhenEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// the precondition consults only the store, never the gateway
	mockStore := mock.NewMockCatalogStore(ctrl)
	mockStore.EXPECT().All().Return(models.CatalogSet{})
	coordinator := service.NewSyncCoordinator(mockStore, mock.NewMockTransferGateway(ctrl), logger.Nop(), config.Sync{})

	accepted := coordinator.EstimateDownloadSize(context.Background(), func(models.DataResult[models.SizeEstimate]) {
		t.Error("rejected operation must not invoke its callback")
	})
	require.False(t, accepted)
}

func TestSyncCoordinator_EstimateDownloadSize_UpToDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, mockGateway, catalogStore := newTestCoordinator(t, ctrl)
	handle := models.CatalogHandle{LocatorID: "cat-1", Version: "v1"}
	require.NoError(t, catalogStore.Add(handle))

	mockGateway.EXPECT().EstimateDownloadSize(gomock.Any(), models.CatalogSet{handle}).
		Return(models.SizeEstimate{UpToDate: true}, nil)

	resultCh := make(chan models.DataResult[models.SizeEstimate], 1)
	require.True(t, coordinator.EstimateDownloadSize(context.Background(), func(r models.DataResult[models.SizeEstimate]) {
		resultCh <- r
	}))

	select {
	case result := <-resultCh:
		require.True(t, result.Success)
		assert.True(t, result.Data.UpToDate)
		assert.Zero(t, result.Data.Bytes)
	case <-time.After(callbackTimeout):
		t.Fatal("completion callback was not invoked")
	}
}

// ── DownloadContent ──────────────────────────────────────────────────────────

// callbackRecorder captures the interleaving of progress and terminal
// callbacks of one content download.
type callbackRecorder struct {
	mu     sync.Mutex
	events []string
	result models.RequestResult
	doneCh chan struct{}
}

func newCallbackRecorder() *callbackRecorder {
	return &callbackRecorder{doneCh: make(chan struct{})}
}

func (r *callbackRecorder) progress(models.DownloadStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "progress")
}

func (r *callbackRecorder) done(result models.RequestResult) {
	r.mu.Lock()
	r.events = append(r.events, "done")
	r.result = result
	r.mu.Unlock()
	close(r.doneCh)
}

func (r *callbackRecorder) wait(t *testing.T) (models.RequestResult, []string) {
	t.Helper()
	select {
	case <-r.doneCh:
	case <-time.After(callbackTimeout):
		t.Fatal("terminal callback was not invoked")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.result, append([]string(nil), r.events...)
}

func TestSyncCoordinator_DownloadContent_ProgressThenResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, mockGateway, catalogStore := newTestCoordinator(t, ctrl)
	handle := models.CatalogHandle{LocatorID: "cat-1", Version: "v1"}
	require.NoError(t, catalogStore.Add(handle))

	transfer := mock.NewMockTransferHandle(ctrl)
	transfer.EXPECT().Status().Return(models.DownloadStatus{BytesDownloaded: 10, TotalBytes: 20}).AnyTimes()
	gomock.InOrder(
		transfer.EXPECT().Done().Return(false).Times(2),
		transfer.EXPECT().Done().Return(true),
	)
	transfer.EXPECT().Err().Return(nil)

	mockGateway.EXPECT().DownloadContent(gomock.Any(), models.CatalogSet{handle}).Return(transfer, nil)

	recorder := newCallbackRecorder()
	require.True(t, coordinator.DownloadContent(context.Background(), recorder.progress, recorder.done))

	result, events := recorder.wait(t)
	require.True(t, result.Success)

	require.GreaterOrEqual(t, len(events), 2)
	assert.Equal(t, "done", events[len(events)-1])
	assert.Equal(t, "progress", events[0])
	for _, event := range events[:len(events)-1] {
		assert.Equal(t, "progress", event)
	}
}

func TestSyncCoordinator_DownloadContent_TransferError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, mockGateway, catalogStore := newTestCoordinator(t, ctrl)
	require.NoError(t, catalogStore.Add(models.CatalogHandle{LocatorID: "cat-1"}))

	transfer := mock.NewMockTransferHandle(ctrl)
	transfer.EXPECT().Status().Return(models.DownloadStatus{BytesDownloaded: 3, TotalBytes: 20, Done: true}).AnyTimes()
	transfer.EXPECT().Done().Return(true).AnyTimes()
	transfer.EXPECT().Err().Return(gateway.ErrHashMismatch)

	mockGateway.EXPECT().DownloadContent(gomock.Any(), gomock.Any()).Return(transfer, nil)

	recorder := newCallbackRecorder()
	require.True(t, coordinator.DownloadContent(context.Background(), recorder.progress, recorder.done))

	result, events := recorder.wait(t)
	require.False(t, result.Success)
	assert.Contains(t, result.Message, gateway.ErrHashMismatch.Error())
	assert.GreaterOrEqual(t, len(events), 2)
}

func TestSyncCoordinator_DownloadContent_StartFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, mockGateway, catalogStore := newTestCoordinator(t, ctrl)
	require.NoError(t, catalogStore.Add(models.CatalogHandle{LocatorID: "cat-1"}))

	mockGateway.EXPECT().DownloadContent(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("no pending entries resolved"))

	recorder := newCallbackRecorder()
	require.True(t, coordinator.DownloadContent(context.Background(), recorder.progress, recorder.done))

	result, events := recorder.wait(t)
	require.False(t, result.Success)
	assert.Equal(t, []string{"progress", "done"}, events)
}

func TestSyncCoordinator_DownloadContent_RejectedWhenEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, _, _ := newTestCoordinator(t, ctrl)

	recorder := newCallbackRecorder()
	require.False(t, coordinator.DownloadContent(context.Background(), recorder.progress, recorder.done))
	assert.Empty(t, recorder.events)
}

// ── Update detection and application ─────────────────────────────────────────

func TestSyncCoordinator_CheckForUpdatedCatalogs_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, mockGateway, catalogStore := newTestCoordinator(t, ctrl)
	handle := models.CatalogHandle{LocatorID: "cat-1", Version: "v1"}
	require.NoError(t, catalogStore.Add(handle))

	mockGateway.EXPECT().CheckForUpdatedCatalogs(gomock.Any(), models.CatalogSet{handle}).
		Return([]string{"cat-1"}, nil)

	resultCh := make(chan models.DataResult[[]string], 1)
	require.True(t, coordinator.CheckForUpdatedCatalogs(context.Background(), func(r models.DataResult[[]string]) {
		resultCh <- r
	}))

	select {
	case result := <-resultCh:
		require.True(t, result.Success)
		assert.Equal(t, []string{"cat-1"}, result.Data)
	case <-time.After(callbackTimeout):
		t.Fatal("completion callback was not invoked")
	}
}

func TestSyncCoordinator_DownloadUpdatedCatalogs_ReplacesAndDropsUnmatched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, mockGateway, catalogStore := newTestCoordinator(t, ctrl)
	first := models.CatalogHandle{LocatorID: "cat-1", Version: "v1"}
	second := models.CatalogHandle{LocatorID: "cat-2", Version: "v1"}
	require.NoError(t, catalogStore.Add(first))
	require.NoError(t, catalogStore.Add(second))

	updatedSecond := models.CatalogHandle{LocatorID: "cat-2", Version: "v2"}
	stranger := models.CatalogHandle{LocatorID: "cat-9", Version: "v1"}
	mockGateway.EXPECT().DownloadUpdatedCatalogs(gomock.Any(), []string{"cat-2", "cat-9"}).
		Return([]models.CatalogHandle{updatedSecond, stranger}, nil)

	resultCh := make(chan models.DataResult[[]models.CatalogHandle], 1)
	require.True(t, coordinator.DownloadUpdatedCatalogs(context.Background(), []string{"cat-2", "cat-9"}, func(r models.DataResult[[]models.CatalogHandle]) {
		resultCh <- r
	}))

	select {
	case result := <-resultCh:
		require.True(t, result.Success)
		// the handle with no stored counterpart is dropped, not added
		assert.Equal(t, []models.CatalogHandle{updatedSecond}, result.Data)
	case <-time.After(callbackTimeout):
		t.Fatal("completion callback was not invoked")
	}

	// store order is preserved, only the matched slot is overwritten
	assert.Equal(t, models.CatalogSet{first, updatedSecond}, coordinator.Catalogs())
}

// ── Cache inspection and clearing ────────────────────────────────────────────

func TestSyncCoordinator_CacheExistsForAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, mockGateway, catalogStore := newTestCoordinator(t, ctrl)

	// empty store reports false without consulting the gateway
	assert.False(t, coordinator.CacheExistsForAll(context.Background()))

	handle := models.CatalogHandle{LocatorID: "cat-1", Version: "v1"}
	require.NoError(t, catalogStore.Add(handle))
	mockGateway.EXPECT().CacheExists(gomock.Any(), models.CatalogSet{handle}).Return(true)

	assert.True(t, coordinator.CacheExistsForAll(context.Background()))
}

func TestSyncCoordinator_ClearCache_ReleasesEveryHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, mockGateway, catalogStore := newTestCoordinator(t, ctrl)
	first := models.CatalogHandle{LocatorID: "cat-1", Version: "v1"}
	second := models.CatalogHandle{LocatorID: "cat-2", Version: "v1"}
	require.NoError(t, catalogStore.Add(first))
	require.NoError(t, catalogStore.Add(second))

	// a failing release does not keep the handle in the store
	mockGateway.EXPECT().ReleaseCatalog(first).Return(errors.New("descriptor file busy"))
	mockGateway.EXPECT().ReleaseCatalog(second).Return(nil)

	coordinator.ClearCache(context.Background())

	assert.False(t, coordinator.HasCatalogs())
	assert.Empty(t, coordinator.Catalogs())
}
