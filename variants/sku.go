package variants

import (
	"fmt"
	"strings"

	"headcover-configurator/models"
)

const (
	skuSeparator          = "-"
	limitedEditionToken   = "LE"
	customToken           = "Custom"
	collapsedCustomToken  = "Fairway-Custom"
	setBuilderFinalToken  = "Set"
	pieceCountTokenFormat = "%dPiece"
)

// SKUParts holds the inputs of one SKU
type SKUParts struct {
	CollectionType models.CollectionType
	Leather1       string // Primary leather abbreviation
	Leather2       string // Secondary (or per-shape quilted) leather abbreviation
	Stitching      string // Stitching color abbreviation
	FinalID        string // Shape abbreviation or piece-count token
	LimitedEdition bool
	Custom         bool
	CollapsedWood  bool // Custom variant standing in for every WOOD shape
}

// SKU is an assembled stock code and the grouping key shared with its custom counterpart
type SKU struct {
	Value string
	Base  string
}

// PieceCountToken returns the final identifier used for multi-shape limited editions
func PieceCountToken(n int) string {
	return fmt.Sprintf(pieceCountTokenFormat, n)
}

// SKUTokens returns the ordered collection-dependent tokens that precede the final identifier
func SKUTokens(p SKUParts) ([]string, error) {
	if p.Leather1 == "" {
		return nil, assemblyErr("primary leather abbreviation missing")
	}

	var tokens []string
	switch p.CollectionType {
	case models.CollectionQuilted:
		if p.Stitching == "" {
			return nil, assemblyErr("stitching abbreviation missing for %s", p.CollectionType)
		}
		tokens = []string{string(p.CollectionType), p.Leather1, p.Stitching}
	case models.CollectionArgyle:
		if p.Leather2 == "" {
			return nil, assemblyErr("secondary leather abbreviation missing for %s", p.CollectionType)
		}
		if p.Stitching == "" {
			return nil, assemblyErr("stitching abbreviation missing for %s", p.CollectionType)
		}
		tokens = []string{string(p.CollectionType), p.Leather1, p.Leather2, p.Stitching}
	case models.CollectionAnimal, models.CollectionClassic, models.CollectionQClassic:
		if p.Leather2 == "" {
			return nil, assemblyErr("secondary leather abbreviation missing for %s", p.CollectionType)
		}
		tokens = []string{string(p.CollectionType), p.Leather1, p.Leather2}
	default:
		return nil, assemblyErr("unknown collection type %q", p.CollectionType)
	}

	if p.LimitedEdition {
		tokens = append([]string{limitedEditionToken}, tokens...)
	}
	return tokens, nil
}

// AssembleSKU joins the tokens of a regular or custom variant.
// Base omits the customization suffix so a regular variant and its custom
// counterpart share it.
func AssembleSKU(p SKUParts) (SKU, error) {
	tokens, err := SKUTokens(p)
	if err != nil {
		return SKU{}, err
	}

	finalID := p.FinalID
	if p.CollapsedWood {
		finalID = models.FairwayAbbreviation
	}
	if finalID == "" {
		return SKU{}, assemblyErr("final identifier missing")
	}

	base := append(tokens, finalID)
	sku := SKU{Base: strings.Join(base, skuSeparator)}

	switch {
	case p.CollapsedWood:
		sku.Value = strings.Join(append(tokens, collapsedCustomToken), skuSeparator)
	case p.Custom:
		sku.Value = sku.Base + skuSeparator + customToken
	default:
		sku.Value = sku.Base
	}
	return sku, nil
}
