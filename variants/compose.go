package variants

import (
	"strings"

	"headcover-configurator/models"
)

const (
	setBuilderName   = "Create my own set"
	setBuilderPrice  = "0.00"
	setBuilderWeight = "0"
)

// compose produces the final ordered list: regular variants (1..R), the
// "Create my own set" entry (R+1) and custom variants in emission order.
// Nothing is composed when no regular variant could be built.
func compose(r *run, regular []regularItem, custom []models.Variant) ([]models.Variant, error) {
	if len(regular) == 0 {
		return []models.Variant{}, nil
	}

	setBuilder, err := setBuilderVariant(r)
	if err != nil {
		return nil, err
	}

	out := make([]models.Variant, 0, len(regular)+1+len(custom))
	for _, item := range regular {
		out = append(out, item.variant)
	}
	out = append(out, setBuilder)
	out = append(out, custom...)

	for i := range out {
		out[i].Position = i + 1
	}
	return out, nil
}

func setBuilderVariant(r *run) (models.Variant, error) {
	tokens, err := SKUTokens(r.skuParts())
	if err != nil {
		return models.Variant{}, err
	}
	sku := strings.Join(append(tokens, setBuilderFinalToken), skuSeparator)
	return models.Variant{
		SKU:               sku,
		BaseSKU:           sku,
		Name:              setBuilderName,
		Price:             setBuilderPrice,
		Weight:            setBuilderWeight,
		IsSetBuilder:      true,
		InventoryQuantity: r.inventoryQuantity(),
	}, nil
}
