package variants

import "headcover-configurator/models"

// carriesSecondLeather reports whether a collection type's SKU has a second leather token
func carriesSecondLeather(t models.CollectionType) bool {
	switch t {
	case models.CollectionArgyle, models.CollectionAnimal, models.CollectionClassic, models.CollectionQClassic:
		return true
	}
	return false
}

// ValidateCollection checks the collection flags against its SKU layout.
// A per-shape leather is written into the second leather token, so collections
// without one cannot designate leathers per shape.
func ValidateCollection(c models.Collection) error {
	if c.NeedsColorDesignation && !carriesSecondLeather(c.Type) {
		return configurationErr("collection %q: %s SKUs have no leather token for a per-shape leather", c.ID, c.Type)
	}
	return nil
}
