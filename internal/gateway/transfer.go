package gateway

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/go-resty/resty/v2"

	"github.com/ataverin/go-content-sync/internal/logger"
	"github.com/ataverin/go-content-sync/internal/utils"
	"github.com/ataverin/go-content-sync/models"
)

// httpTransfer is the TransferHandle of the HTTP gateway. Progress counters
// are atomics so Status can be polled from any goroutine while run writes.
type httpTransfer struct {
	total      int64
	downloaded atomic.Int64
	done       atomic.Bool

	mu  sync.Mutex
	err error
}

func newHTTPTransfer(total int64) *httpTransfer {
	return &httpTransfer{total: total}
}

func (t *httpTransfer) Status() models.DownloadStatus {
	return models.DownloadStatus{
		BytesDownloaded: t.downloaded.Load(),
		TotalBytes:      t.total,
		Done:            t.done.Load(),
	}
}

func (t *httpTransfer) Done() bool {
	return t.done.Load()
}

func (t *httpTransfer) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// finish records the terminal error and marks the transfer done. The done
// flag is set last so a poller that observes Done also observes the error.
func (t *httpTransfer) finish(err error) {
	t.mu.Lock()
	t.err = err
	t.mu.Unlock()
	t.done.Store(true)
}

// run fetches every pending entry sequentially, verifying each content hash
// before committing the bytes to the cache. The first failure terminates the
// transfer.
func (t *httpTransfer) run(ctx context.Context, client *resty.Client, contentDir string, entries []models.ContentEntry, log *logger.Logger) {
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			t.finish(err)
			return
		}

		if err := t.fetchEntry(ctx, client, contentDir, entry); err != nil {
			log.Err(err).
				Str("key", entry.Key).
				Msg("content entry download failed")
			t.finish(err)
			return
		}

		t.downloaded.Add(entry.Size)
	}

	t.finish(nil)
}

func (t *httpTransfer) fetchEntry(ctx context.Context, client *resty.Client, contentDir string, entry models.ContentEntry) error {
	resp, err := client.R().SetContext(ctx).Get(entry.URL)
	if err != nil {
		return fmt.Errorf("fetch content %s: %w", entry.Key, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("fetch content %s: %w", entry.Key, err)
	}

	body := resp.Body()
	if got := utils.ContentHash(body); got != entry.Hash {
		return fmt.Errorf("%w: entry %s: want %s, got %s", ErrHashMismatch, entry.Key, entry.Hash, got)
	}

	if err = os.WriteFile(filepath.Join(contentDir, entry.Hash), body, 0o600); err != nil {
		return fmt.Errorf("cache content %s: %w", entry.Key, err)
	}

	return nil
}
