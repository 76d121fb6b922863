package variants

import (
	"sort"

	"headcover-configurator/models"
)

// assignPositions orders regular variants by catalog display order and numbers them
// 1..R among the selected shapes only.
func assignPositions(items []regularItem, catalog *models.Catalog) {
	rank := make(map[string]int, len(catalog.Shapes))
	for i, shape := range catalog.ShapesByDisplayOrder() {
		rank[shape.ID] = i
	}
	sort.SliceStable(items, func(i, j int) bool {
		return rank[items[i].shape.ID] < rank[items[j].shape.ID]
	})
	for i := range items {
		items[i].variant.Position = i + 1
	}
}
