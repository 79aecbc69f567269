package models

// CatalogHandle identifies one logical remote catalog loaded by the
// coordinator. LocatorID is the stable identity: a store never holds two
// handles with the same LocatorID. Version is an opaque token assigned by
// the origin; the coordinator only compares it for equality.
type CatalogHandle struct {
	// LocatorID uniquely identifies the catalog slot in the store.
	LocatorID string `json:"locator_id"`

	// Keys lists the addressable keys this catalog resolves.
	Keys []string `json:"keys"`

	// Version is the opaque origin-assigned version token.
	Version string `json:"version"`
}

// CatalogSet is the ordered sequence of currently loaded catalogs.
// Insertion order is preserved across replacements.
type CatalogSet []CatalogHandle

// LocatorIDs returns the locator ids of the set in order.
func (s CatalogSet) LocatorIDs() []string {
	ids := make([]string, 0, len(s))
	for _, h := range s {
		ids = append(ids, h.LocatorID)
	}
	return ids
}
