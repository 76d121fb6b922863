package variants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"headcover-configurator/models"
)

func TestAssembleSKU_TokenOrder(t *testing.T) {
	tests := []struct {
		name  string
		parts SKUParts
		want  string
	}{
		{
			name:  "quilted",
			parts: SKUParts{CollectionType: models.CollectionQuilted, Leather1: "BLK", Leather2: "WHT", Stitching: "GLD", FinalID: "DR"},
			want:  "Quilted-BLK-GLD-DR",
		},
		{
			name:  "argyle",
			parts: SKUParts{CollectionType: models.CollectionArgyle, Leather1: "BLK", Leather2: "WHT", Stitching: "GLD", FinalID: "HY"},
			want:  "Argyle-BLK-WHT-GLD-HY",
		},
		{
			name:  "animal",
			parts: SKUParts{CollectionType: models.CollectionAnimal, Leather1: "BLK", Leather2: "WHT", Stitching: "GLD", FinalID: "Putter"},
			want:  "Animal-BLK-WHT-Putter",
		},
		{
			name:  "classic",
			parts: SKUParts{CollectionType: models.CollectionClassic, Leather1: "BLK", Leather2: "WHT", FinalID: "Fairway"},
			want:  "Classic-BLK-WHT-Fairway",
		},
		{
			name:  "qclassic",
			parts: SKUParts{CollectionType: models.CollectionQClassic, Leather1: "BLK", Leather2: "RED", FinalID: "HY"},
			want:  "QClassic-BLK-RED-HY",
		},
		{
			name:  "limited edition",
			parts: SKUParts{CollectionType: models.CollectionClassic, Leather1: "BLK", Leather2: "WHT", FinalID: "DR", LimitedEdition: true},
			want:  "LE-Classic-BLK-WHT-DR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sku, err := AssembleSKU(tt.parts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sku.Value)
			assert.Equal(t, tt.want, sku.Base, "regular SKU is its own base")
		})
	}
}

func TestAssembleSKU_CustomSuffixes(t *testing.T) {
	parts := SKUParts{CollectionType: models.CollectionClassic, Leather1: "BLK", Leather2: "WHT", FinalID: "HY", Custom: true}

	sku, err := AssembleSKU(parts)
	require.NoError(t, err)
	assert.Equal(t, "Classic-BLK-WHT-HY-Custom", sku.Value)
	assert.Equal(t, "Classic-BLK-WHT-HY", sku.Base)

	parts.CollapsedWood = true
	parts.FinalID = "DR"
	sku, err = AssembleSKU(parts)
	require.NoError(t, err)
	assert.Equal(t, "Classic-BLK-WHT-Fairway-Custom", sku.Value)
	assert.Equal(t, "Classic-BLK-WHT-Fairway", sku.Base)

	parts = SKUParts{CollectionType: models.CollectionQuilted, Leather1: "BLK", Stitching: "GLD", FinalID: PieceCountToken(3), Custom: true, LimitedEdition: true}
	sku, err = AssembleSKU(parts)
	require.NoError(t, err)
	assert.Equal(t, "LE-Quilted-BLK-GLD-3Piece-Custom", sku.Value)
	assert.Equal(t, "LE-Quilted-BLK-GLD-3Piece", sku.Base)
}

func TestAssembleSKU_MissingTokens(t *testing.T) {
	tests := []struct {
		name  string
		parts SKUParts
	}{
		{"no primary leather", SKUParts{CollectionType: models.CollectionClassic, Leather2: "WHT", FinalID: "DR"}},
		{"classic without secondary", SKUParts{CollectionType: models.CollectionClassic, Leather1: "BLK", FinalID: "DR"}},
		{"quilted without stitching", SKUParts{CollectionType: models.CollectionQuilted, Leather1: "BLK", FinalID: "DR"}},
		{"argyle without stitching", SKUParts{CollectionType: models.CollectionArgyle, Leather1: "BLK", Leather2: "WHT", FinalID: "DR"}},
		{"no final identifier", SKUParts{CollectionType: models.CollectionAnimal, Leather1: "BLK", Leather2: "WHT"}},
		{"unknown type", SKUParts{CollectionType: "Tartan", Leather1: "BLK", Leather2: "WHT", FinalID: "DR"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sku, err := AssembleSKU(tt.parts)
			require.ErrorIs(t, err, ErrAssembly)
			assert.Empty(t, sku.Value)
		})
	}
}
