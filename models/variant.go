package models

// ThreadRef is a resolved thread color attached to a variant
type ThreadRef struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	Abbreviation string `json:"abbreviation"`
}

// Variant represents one purchasable configuration produced by the engine
type Variant struct {
	ShapeID           string      `json:"shapeId,omitempty"`
	ShapeLabel        string      `json:"shapeLabel,omitempty"`
	StyleID           string      `json:"styleId,omitempty"`
	ColorDesignation  string      `json:"colorDesignation,omitempty"`
	SKU               string      `json:"sku"`
	BaseSKU           string      `json:"baseSku"`
	Name              string      `json:"name"`
	Price             string      `json:"price"` // Two decimal places, e.g. "45.00"
	Weight            string      `json:"weight"`
	IsCustom          bool        `json:"isCustom"`
	IsSetBuilder      bool        `json:"isSetBuilder,omitempty"` // The "Create my own set" entry
	Threads           []ThreadRef `json:"threads,omitempty"`
	Position          int         `json:"position"`
	InventoryQuantity int         `json:"inventoryQuantity,omitempty"`
}

// SkippedItem describes a variant the engine could not build
type SkippedItem struct {
	ShapeID string `json:"shapeId"`
	Stage   string `json:"stage"`
	Reason  string `json:"reason"`
}

// VariantPreview is the response returned for preview and submit requests
type VariantPreview struct {
	CollectionID string        `json:"collectionId"`
	Variants     []Variant     `json:"variants"`
	Skipped      []SkippedItem `json:"skipped"`
	RegularCount int           `json:"regularCount"`
	CustomCount  int           `json:"customCount"`
}
