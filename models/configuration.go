package models

// OfferingType distinguishes standard products from limited editions
type OfferingType string

const (
	OfferingStandard       OfferingType = "standard"
	OfferingLimitedEdition OfferingType = "limited_edition"
)

// Offering describes how the product family is sold
type Offering struct {
	Type     OfferingType `json:"type"`
	Quantity int          `json:"quantity,omitempty"` // Units available for a limited edition
}

// IsLimitedEdition reports whether the offering is a limited edition
func (o Offering) IsLimitedEdition() bool {
	return o.Type == OfferingLimitedEdition
}

// ThreadSelection holds thread color IDs chosen globally or per shape.
// A per-shape entry replaces the global list for that shape.
type ThreadSelection struct {
	Global   []string            `json:"global,omitempty"`
	PerShape map[string][]string `json:"perShape,omitempty"`
}

// Configuration is the validated operator selection for one product family
type Configuration struct {
	CollectionID       string            `json:"collectionId"`
	Weights            map[string]string `json:"weights"` // [shapeID] = weight; presence with a non-empty value means selected
	IndependentStyles  bool              `json:"independentStyles"`
	StyleID            string            `json:"styleId,omitempty"`
	ShapeStyles        map[string]string `json:"shapeStyles,omitempty"`   // [shapeID] = styleID, used in independent mode
	PrimaryLeatherID   string            `json:"primaryLeatherId"`
	SecondaryLeatherID string            `json:"secondaryLeatherId,omitempty"`
	ShapeLeathers      map[string]string `json:"shapeLeathers,omitempty"` // [shapeID] = quilted leather ID
	StitchingColorID   string            `json:"stitchingColorId,omitempty"`
	Threads            ThreadSelection   `json:"threads"`
	Offering           Offering          `json:"offering"`
}

// IsSelected reports whether the shape has a non-empty weight entry
func (c *Configuration) IsSelected(shapeID string) bool {
	w, ok := c.Weights[shapeID]
	return ok && w != ""
}

// SelectedCount returns the number of shapes with a non-empty weight entry
func (c *Configuration) SelectedCount() int {
	n := 0
	for _, w := range c.Weights {
		if w != "" {
			n++
		}
	}
	return n
}
