package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ataverin/go-content-sync/internal/logger"
	"github.com/ataverin/go-content-sync/internal/store"
	"github.com/ataverin/go-content-sync/internal/utils"
	"github.com/ataverin/go-content-sync/models"
)

// HTTPGatewayConfig carries the settings of the HTTP transfer gateway.
type HTTPGatewayConfig struct {
	BaseURL   string
	AuthToken string
	HashKey   string
	CacheDir  string
	Timeout   time.Duration
}

type httpTransferGateway struct {
	client   *resty.Client
	cacheDir string
	hashKey  string
	index    store.CatalogIndexRepository
	logger   *logger.Logger

	mu     sync.RWMutex
	token  string
	loaded map[string]models.CatalogDescriptor // keyed by catalog path
	paths  map[string]string                   // locator id -> path
}

// NewHTTPTransferGateway constructs the resty-backed gateway. The cache index
// repository records descriptor locations so cache queries survive restarts.
func NewHTTPTransferGateway(cfg HTTPGatewayConfig, index store.CatalogIndexRepository, log *logger.Logger) TransferGateway {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	g := &httpTransferGateway{
		client:   cli,
		cacheDir: cfg.CacheDir,
		hashKey:  cfg.HashKey,
		index:    index,
		logger:   log,
		loaded:   make(map[string]models.CatalogDescriptor),
		paths:    make(map[string]string),
	}
	g.SetToken(cfg.AuthToken)

	return g
}

// SetToken stores the bearer token attached to all subsequent origin
// requests. When the token is a JWT with an expiry in the past, a warning is
// logged; the request is still sent and the origin has the final say.
func (g *httpTransferGateway) SetToken(token string) {
	token = strings.TrimSpace(token)

	g.mu.Lock()
	g.token = token
	g.mu.Unlock()

	if token == "" {
		return
	}
	if exp, ok := tokenExpiry(token); ok && exp.Before(time.Now()) {
		g.logger.Warn().Time("expired_at", exp).Msg("origin bearer token is expired")
	}
}

// Token returns the bearer token currently stored in the gateway.
func (g *httpTransferGateway) Token() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.token
}

func (g *httpTransferGateway) CatalogLoaded(path string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.loaded[path]
	return ok
}

func (g *httpTransferGateway) DownloadCatalog(ctx context.Context, path string) (models.CatalogHandle, error) {
	resp, err := g.authedRequest(ctx).
		SetPathParam("path", path).
		Get("/api/catalogs/{path}")
	if err != nil {
		return models.CatalogHandle{}, fmt.Errorf("download catalog request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CatalogHandle{}, err
	}

	var descriptor models.CatalogDescriptor
	if err = json.Unmarshal(resp.Body(), &descriptor); err != nil {
		return models.CatalogHandle{}, fmt.Errorf("decode catalog descriptor: %w", err)
	}

	descriptorPath := g.descriptorPath(path)
	if err = os.MkdirAll(filepath.Dir(descriptorPath), 0o755); err != nil {
		return models.CatalogHandle{}, fmt.Errorf("create catalog cache dir: %w", err)
	}
	if err = os.WriteFile(descriptorPath, resp.Body(), 0o600); err != nil {
		return models.CatalogHandle{}, fmt.Errorf("cache catalog descriptor: %w", err)
	}

	entry := models.CatalogIndexEntry{
		LocatorID:      descriptor.LocatorID,
		Version:        descriptor.Version,
		KeysCount:      len(descriptor.Keys),
		DescriptorPath: descriptorPath,
		ContentBytes:   descriptorContentBytes(descriptor),
		CachedAt:       time.Now().UTC(),
	}
	if err = g.index.SaveEntry(ctx, entry); err != nil {
		return models.CatalogHandle{}, fmt.Errorf("index catalog descriptor: %w", err)
	}

	g.register(path, descriptor)
	return descriptor.Handle(), nil
}

func (g *httpTransferGateway) LoadCatalogFromCache(ctx context.Context, path string) (models.CatalogHandle, error) {
	raw, err := os.ReadFile(g.descriptorPath(path))
	if err != nil {
		if os.IsNotExist(err) {
			return models.CatalogHandle{}, ErrCacheMissing
		}
		return models.CatalogHandle{}, fmt.Errorf("read cached descriptor: %w", err)
	}

	var descriptor models.CatalogDescriptor
	if err = json.Unmarshal(raw, &descriptor); err != nil {
		return models.CatalogHandle{}, fmt.Errorf("decode cached descriptor: %w", err)
	}

	g.register(path, descriptor)
	return descriptor.Handle(), nil
}

func (g *httpTransferGateway) CacheExists(ctx context.Context, catalogs models.CatalogSet) bool {
	log := logger.FromContext(ctx)

	if len(catalogs) == 0 {
		entries, err := g.index.GetAllEntries(ctx)
		if err != nil {
			log.Err(err).Msg("cache existence query failed")
			return false
		}
		for _, entry := range entries {
			if fileExists(entry.DescriptorPath) {
				return true
			}
		}
		return false
	}

	entries, err := g.index.GetEntriesByID(ctx, catalogs.LocatorIDs())
	if err != nil {
		log.Err(err).Msg("cache existence query failed")
		return false
	}
	cached := make(map[string]bool, len(entries))
	for _, entry := range entries {
		cached[entry.LocatorID] = fileExists(entry.DescriptorPath)
	}

	for _, h := range catalogs {
		if !cached[h.LocatorID] {
			return false
		}
	}
	return true
}

func (g *httpTransferGateway) EstimateDownloadSize(ctx context.Context, catalogs models.CatalogSet) (models.SizeEstimate, error) {
	pending, err := g.pendingEntries(catalogs)
	if err != nil {
		return models.SizeEstimate{}, err
	}

	var total int64
	for _, entry := range pending {
		total += entry.Size
	}

	return models.SizeEstimate{Bytes: total, UpToDate: len(pending) == 0}, nil
}

func (g *httpTransferGateway) DownloadContent(ctx context.Context, catalogs models.CatalogSet) (TransferHandle, error) {
	pending, err := g.pendingEntries(catalogs)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, entry := range pending {
		total += entry.Size
	}

	contentDir := filepath.Join(g.cacheDir, "content")
	if err = os.MkdirAll(contentDir, 0o755); err != nil {
		return nil, fmt.Errorf("create content cache dir: %w", err)
	}

	transfer := newHTTPTransfer(total)
	go transfer.run(ctx, g.client, contentDir, pending, g.logger)

	return transfer, nil
}

func (g *httpTransferGateway) CheckForUpdatedCatalogs(ctx context.Context, catalogs models.CatalogSet) ([]string, error) {
	versions := make([]models.CatalogVersion, 0, len(catalogs))
	for _, h := range catalogs {
		versions = append(versions, models.CatalogVersion{LocatorID: h.LocatorID, Version: h.Version})
	}

	req := models.UpdateCheckRequest{Catalogs: versions, Length: len(versions)}
	req.Hash = transportHash(versions, g.hashKey)

	resp, err := g.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/catalogs/check")
	if err != nil {
		return nil, fmt.Errorf("update check request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var result models.UpdateCheckResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("decode update check response: %w", err)
	}

	return result.Updated, nil
}

func (g *httpTransferGateway) DownloadUpdatedCatalogs(ctx context.Context, locatorIDs []string) ([]models.CatalogHandle, error) {
	handles := make([]models.CatalogHandle, 0, len(locatorIDs))
	for _, id := range locatorIDs {
		handle, err := g.DownloadCatalog(ctx, g.pathFor(id))
		if err != nil {
			return nil, fmt.Errorf("download updated catalog %s: %w", id, err)
		}
		handles = append(handles, handle)
	}

	return handles, nil
}

func (g *httpTransferGateway) ReleaseCatalog(handle models.CatalogHandle) error {
	g.mu.Lock()
	path, ok := g.paths[handle.LocatorID]
	if ok {
		delete(g.loaded, path)
		delete(g.paths, handle.LocatorID)
	}
	g.mu.Unlock()

	if !ok {
		// Not registered in-process; the catalog may still sit in the
		// on-disk cache from an earlier run. Release via the index.
		return g.releaseFromIndex(handle.LocatorID)
	}

	if err := os.Remove(g.descriptorPath(path)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove cached descriptor: %w", err)
	}
	if err := g.index.DeleteEntry(context.Background(), handle.LocatorID); err != nil {
		return fmt.Errorf("remove index entry: %w", err)
	}

	return nil
}

func (g *httpTransferGateway) releaseFromIndex(locatorID string) error {
	ctx := context.Background()

	entry, err := g.index.GetEntry(ctx, locatorID)
	if err != nil {
		if errors.Is(err, store.ErrIndexEntryNotFound) {
			return ErrCatalogNotRegistered
		}
		return fmt.Errorf("look up index entry: %w", err)
	}

	if err := os.Remove(entry.DescriptorPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove cached descriptor: %w", err)
	}
	if err := g.index.DeleteEntry(ctx, locatorID); err != nil {
		return fmt.Errorf("remove index entry: %w", err)
	}

	return nil
}

func (g *httpTransferGateway) authedRequest(ctx context.Context) *resty.Request {
	req := g.client.R().SetContext(ctx)
	if token := g.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (g *httpTransferGateway) register(path string, descriptor models.CatalogDescriptor) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.loaded[path] = descriptor
	g.paths[descriptor.LocatorID] = path
}

// pathFor maps a locator id back to the origin path it was loaded from.
// An unregistered id falls back to the id itself as the path.
func (g *httpTransferGateway) pathFor(locatorID string) string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if path, ok := g.paths[locatorID]; ok {
		return path
	}
	return locatorID
}

// pendingEntries walks the registered descriptors of the given set and
// returns the content entries missing from (or stale in) the local cache.
func (g *httpTransferGateway) pendingEntries(catalogs models.CatalogSet) ([]models.ContentEntry, error) {
	g.mu.RLock()
	descriptors := make([]models.CatalogDescriptor, 0, len(catalogs))
	for _, h := range catalogs {
		path, ok := g.paths[h.LocatorID]
		if !ok {
			g.mu.RUnlock()
			return nil, fmt.Errorf("%w: %s", ErrCatalogNotRegistered, h.LocatorID)
		}
		descriptors = append(descriptors, g.loaded[path])
	}
	g.mu.RUnlock()

	contentDir := filepath.Join(g.cacheDir, "content")

	var pending []models.ContentEntry
	for _, descriptor := range descriptors {
		for _, entry := range descriptor.Entries {
			cached := filepath.Join(contentDir, entry.Hash)
			info, err := os.Stat(cached)
			if err == nil && info.Size() == entry.Size && g.cachedContentValid(cached, entry.Hash) {
				continue
			}
			pending = append(pending, entry)
		}
	}

	return pending, nil
}

// cachedContentValid re-hashes a cached content file. A size match alone does
// not prove integrity: a truncated-and-padded or bit-flipped file keeps the
// expected length.
func (g *httpTransferGateway) cachedContentValid(path, wantHash string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()

	sum, err := utils.ContentHashReader(f)
	if err != nil {
		g.logger.Warn().Err(err).Str("path", path).Msg("failed to hash cached content")
		return false
	}
	return sum == wantHash
}

func (g *httpTransferGateway) descriptorPath(path string) string {
	return filepath.Join(g.cacheDir, "catalogs", url.PathEscape(path)+".json")
}

func descriptorContentBytes(descriptor models.CatalogDescriptor) int64 {
	var total int64
	for _, entry := range descriptor.Entries {
		total += entry.Size
	}
	return total
}

func transportHash(v any, key string) string {
	if key == "" {
		return ""
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return utils.TransportHash(payload, key)
}

func tokenExpiry(token string) (time.Time, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
