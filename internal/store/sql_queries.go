package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	saveIndexEntry = `
		INSERT INTO catalogs (
			locator_id,
			version,
			keys_count,
			descriptor_path,
			content_bytes,
			cached_at
		) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (locator_id) DO UPDATE SET
			version = excluded.version,
			keys_count = excluded.keys_count,
			descriptor_path = excluded.descriptor_path,
			content_bytes = excluded.content_bytes,
			cached_at = excluded.cached_at;`

	getSingleIndexEntry = `
		SELECT
			locator_id,
			version,
			keys_count,
			descriptor_path,
			content_bytes,
			cached_at
		FROM catalogs
		WHERE locator_id = ?;`

	getAllIndexEntries = `
		SELECT
			locator_id,
			version,
			keys_count,
			descriptor_path,
			content_bytes,
			cached_at
		FROM catalogs
		ORDER BY cached_at;`

	deleteSingleIndexEntry = `DELETE FROM catalogs WHERE locator_id = ?;`
)

// buildGetEntriesByIDQuery builds a SELECT with an IN clause over the given
// locator ids. squirrel expands the slice into one placeholder per id.
func buildGetEntriesByIDQuery(locatorIDs []string) (string, []any, error) {
	return sq.Select(
		"locator_id",
		"version",
		"keys_count",
		"descriptor_path",
		"content_bytes",
		"cached_at",
	).
		From("catalogs").
		Where(sq.Eq{"locator_id": locatorIDs}).
		OrderBy("cached_at").
		ToSql()
}
