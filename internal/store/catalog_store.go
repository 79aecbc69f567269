package store

import (
	"github.com/ataverin/go-content-sync/internal/logger"
	"github.com/ataverin/go-content-sync/models"
)

// catalogStore keeps handles in a plain ordered slice. Linear scans by id are
// fine at the catalog counts this daemon handles; order must survive
// replacement, which rules out a plain map.
type catalogStore struct {
	handles []models.CatalogHandle
	logger  *logger.Logger
}

// NewCatalogStore returns an empty ordered catalog store.
func NewCatalogStore(logger *logger.Logger) CatalogStore {
	return &catalogStore{logger: logger}
}

func (s *catalogStore) HasCatalogs() bool {
	return len(s.handles) > 0
}

func (s *catalogStore) Add(handle models.CatalogHandle) error {
	for _, h := range s.handles {
		if h.LocatorID == handle.LocatorID {
			return ErrDuplicateCatalog
		}
	}

	s.handles = append(s.handles, handle)
	return nil
}

func (s *catalogStore) ReplaceByID(handles []models.CatalogHandle) []string {
	var unmatched []string

	for _, update := range handles {
		replaced := false
		for i := range s.handles {
			if s.handles[i].LocatorID == update.LocatorID {
				s.handles[i] = update
				replaced = true
				break
			}
		}
		if !replaced {
			unmatched = append(unmatched, update.LocatorID)
		}
	}

	return unmatched
}

func (s *catalogStore) Clear(release ReleaseHook) {
	for _, h := range s.handles {
		if release == nil {
			continue
		}
		if err := release(h); err != nil {
			s.logger.Warn().
				Err(err).
				Str("locator_id", h.LocatorID).
				Msg("release hook failed during cache clear")
		}
	}

	s.handles = nil
}

func (s *catalogStore) All() models.CatalogSet {
	snapshot := make(models.CatalogSet, len(s.handles))
	copy(snapshot, s.handles)
	return snapshot
}
