package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ataverin/go-content-sync/internal/logger"
	"github.com/ataverin/go-content-sync/models"
)

type catalogIndexRepository struct {
	*DB
	logger *logger.Logger
}

// NewCatalogIndexRepository returns the SQLite-backed cache index repository.
func NewCatalogIndexRepository(db *DB, logger *logger.Logger) CatalogIndexRepository {
	return &catalogIndexRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *catalogIndexRepository) SaveEntry(ctx context.Context, entry models.CatalogIndexEntry) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, saveIndexEntry,
		entry.LocatorID,
		entry.Version,
		entry.KeysCount,
		entry.DescriptorPath,
		entry.ContentBytes,
		entry.CachedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "catalogIndexRepository.SaveEntry").
			Str("locator_id", entry.LocatorID).
			Msg("failed to execute upsert for catalog index entry")
		return fmt.Errorf("failed to save index entry (locator_id=%s): %w", entry.LocatorID, err)
	}

	return nil
}

func (r *catalogIndexRepository) GetEntry(ctx context.Context, locatorID string) (models.CatalogIndexEntry, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getSingleIndexEntry, locatorID)

	entry, err := scanIndexEntry(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CatalogIndexEntry{}, ErrIndexEntryNotFound
		}
		log.Err(err).
			Str("func", "catalogIndexRepository.GetEntry").
			Str("locator_id", locatorID).
			Msg("failed to scan catalog index row")
		return models.CatalogIndexEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

func (r *catalogIndexRepository) GetAllEntries(ctx context.Context) ([]models.CatalogIndexEntry, error) {
	return r.queryEntries(ctx, getAllIndexEntries)
}

func (r *catalogIndexRepository) GetEntriesByID(ctx context.Context, locatorIDs []string) ([]models.CatalogIndexEntry, error) {
	log := logger.FromContext(ctx)

	if len(locatorIDs) == 0 {
		return nil, nil
	}

	query, args, err := buildGetEntriesByIDQuery(locatorIDs)
	if err != nil {
		log.Err(err).
			Str("func", "catalogIndexRepository.GetEntriesByID").
			Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryEntries(ctx, query, args...)
}

func (r *catalogIndexRepository) DeleteEntry(ctx context.Context, locatorID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteSingleIndexEntry, locatorID); err != nil {
		log.Err(err).
			Str("func", "catalogIndexRepository.DeleteEntry").
			Str("locator_id", locatorID).
			Msg("failed to delete catalog index entry")
		return fmt.Errorf("failed to delete index entry (locator_id=%s): %w", locatorID, err)
	}

	return nil
}

func (r *catalogIndexRepository) queryEntries(ctx context.Context, query string, args ...any) ([]models.CatalogIndexEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "catalogIndexRepository.queryEntries").
			Msg("failed to query catalog index")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.CatalogIndexEntry
	for rows.Next() {
		entry, err := scanIndexEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entries, nil
}

func scanIndexEntry(scan func(...any) error) (models.CatalogIndexEntry, error) {
	var entry models.CatalogIndexEntry
	err := scan(
		&entry.LocatorID,
		&entry.Version,
		&entry.KeysCount,
		&entry.DescriptorPath,
		&entry.ContentBytes,
		&entry.CachedAt,
	)
	return entry, err
}
