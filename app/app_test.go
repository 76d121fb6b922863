package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"headcover-configurator/config"
)

func snapshotConfig() config.Config {
	return config.Config{
		CatalogSnapshot:       "../repository/testdata/catalog.yaml",
		GenerationConcurrency: 2,
	}
}

func TestInitialize_Snapshot(t *testing.T) {
	t.Setenv("DB_HOST", "")

	mux, err := Initialize(context.Background(), snapshotConfig(), zap.NewNop())
	require.NoError(t, err)

	body := `{"collectionId":"classic","weights":{"driver":"0.5","putter":"0.3"},` +
		`"primaryLeatherId":"black","secondaryLeatherId":"white","stitchingColorId":"gold"}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/variants/preview", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sku":"Classic-BLK-WHT-Fairway-Custom"`)
	assert.Contains(t, rec.Body.String(), `"sku":"Classic-BLK-WHT-Set"`)
}

func TestInitialize_HTMLSheet(t *testing.T) {
	t.Setenv("DB_HOST", "")

	mux, err := Initialize(context.Background(), snapshotConfig(), zap.NewNop())
	require.NoError(t, err)

	body := `{"collectionId":"classic","weights":{"putter":"0.3"},` +
		`"primaryLeatherId":"black","secondaryLeatherId":"white","stitchingColorId":"gold"}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/variants/sheet?format=html", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Classic-BLK-WHT-Putter-Custom")
}

func TestNewCatalogRepository_NoSource(t *testing.T) {
	t.Setenv("DB_HOST", "")

	_, err := NewCatalogRepository(context.Background(), config.Config{}, zap.NewNop())
	assert.Error(t, err)
}
