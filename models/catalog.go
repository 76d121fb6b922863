package models

import "sort"

// CollectionType identifies the pattern family of a collection
type CollectionType string

const (
	CollectionQuilted  CollectionType = "Quilted"
	CollectionArgyle   CollectionType = "Argyle"
	CollectionAnimal   CollectionType = "Animal"
	CollectionClassic  CollectionType = "Classic"
	CollectionQClassic CollectionType = "QClassic"
)

// Classification groups shapes that share pricing and customization rules
type Classification string

const (
	ClassificationWood   Classification = "WOOD"
	ClassificationPutter Classification = "PUTTER"
	ClassificationOther  Classification = "OTHER"
)

// NamePattern selects how a style renders a display name
type NamePattern string

const (
	NamePatternStandard   NamePattern = "STANDARD"
	NamePatternStyleFirst NamePattern = "STYLE_FIRST"
	NamePatternCustom     NamePattern = "CUSTOM"
)

// Synthetic shape that stands in for every WOOD-classified shape
const (
	FairwayShapeID      = "fairway"
	FairwayLabel        = "Fairway"
	FairwayAbbreviation = "Fairway"
)

// Collection represents a pattern collection and its requirement flags
type Collection struct {
	ID                    string         `json:"id" yaml:"id"`
	Type                  CollectionType `json:"type" yaml:"type"`
	Label                 string         `json:"label" yaml:"label"`
	NeedsStyle            bool           `json:"needsStyle" yaml:"needsStyle"`
	NeedsSecondaryLeather bool           `json:"needsSecondaryLeather" yaml:"needsSecondaryLeather"`
	NeedsStitchingColor   bool           `json:"needsStitchingColor" yaml:"needsStitchingColor"`
	NeedsColorDesignation bool           `json:"needsColorDesignation" yaml:"needsColorDesignation"` // Per-shape quilted leather
	SKUTemplate           string         `json:"skuTemplate,omitempty" yaml:"skuTemplate,omitempty"`
	TitleTemplate         string         `json:"titleTemplate,omitempty" yaml:"titleTemplate,omitempty"`
}

// Shape represents a physical headcover shape
type Shape struct {
	ID             string         `json:"id" yaml:"id"`
	Label          string         `json:"label" yaml:"label"`
	Abbreviation   string         `json:"abbreviation" yaml:"abbreviation"`
	Classification Classification `json:"classification" yaml:"classification"`
	DisplayOrder   int            `json:"displayOrder" yaml:"displayOrder"`
}

// Style represents a per-shape design style
type Style struct {
	ID                 string      `json:"id" yaml:"id"`
	Label              string      `json:"label" yaml:"label"`
	Abbreviation       string      `json:"abbreviation" yaml:"abbreviation"`
	NamePattern        NamePattern `json:"namePattern" yaml:"namePattern"`
	UseOppositeLeather bool        `json:"useOppositeLeather" yaml:"useOppositeLeather"`
	LeatherPhrase      string      `json:"leatherPhrase,omitempty" yaml:"leatherPhrase,omitempty"`
	CustomNamePattern  string      `json:"customNamePattern,omitempty" yaml:"customNamePattern,omitempty"`
}

// LeatherColor represents a leather color option
type LeatherColor struct {
	ID            string   `json:"id" yaml:"id"`
	Label         string   `json:"label" yaml:"label"`
	Abbreviation  string   `json:"abbreviation" yaml:"abbreviation"`
	LinkedNumbers []string `json:"linkedNumbers,omitempty" yaml:"linkedNumbers,omitempty"`
}

// ThreadColor represents a stitching or embroidery thread color
type ThreadColor struct {
	ID            string   `json:"id" yaml:"id"`
	Label         string   `json:"label" yaml:"label"`
	Abbreviation  string   `json:"abbreviation" yaml:"abbreviation"`
	LinkedNumbers []string `json:"linkedNumbers,omitempty" yaml:"linkedNumbers,omitempty"`
}

// Catalog holds the materialized reference data used by one generation run
type Catalog struct {
	Shapes   []Shape        `json:"shapes" yaml:"shapes"`
	Styles   []Style        `json:"styles" yaml:"styles"`
	Leathers []LeatherColor `json:"leathers" yaml:"leathers"`
	Threads  []ThreadColor  `json:"threads" yaml:"threads"`
}

// Shape returns the shape with the given ID
func (c *Catalog) Shape(id string) (Shape, bool) {
	for _, s := range c.Shapes {
		if s.ID == id {
			return s, true
		}
	}
	return Shape{}, false
}

// Style returns the style with the given ID
func (c *Catalog) Style(id string) (Style, bool) {
	for _, s := range c.Styles {
		if s.ID == id {
			return s, true
		}
	}
	return Style{}, false
}

// Leather returns the leather color with the given ID
func (c *Catalog) Leather(id string) (LeatherColor, bool) {
	for _, l := range c.Leathers {
		if l.ID == id {
			return l, true
		}
	}
	return LeatherColor{}, false
}

// Thread returns the thread color with the given ID
func (c *Catalog) Thread(id string) (ThreadColor, bool) {
	for _, t := range c.Threads {
		if t.ID == id {
			return t, true
		}
	}
	return ThreadColor{}, false
}

// ShapesByDisplayOrder returns a copy of the shapes sorted by display order, ties broken by ID
func (c *Catalog) ShapesByDisplayOrder() []Shape {
	shapes := make([]Shape, len(c.Shapes))
	copy(shapes, c.Shapes)
	sort.SliceStable(shapes, func(i, j int) bool {
		if shapes[i].DisplayOrder != shapes[j].DisplayOrder {
			return shapes[i].DisplayOrder < shapes[j].DisplayOrder
		}
		return shapes[i].ID < shapes[j].ID
	})
	return shapes
}
