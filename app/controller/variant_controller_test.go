package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"headcover-configurator/models"
	"headcover-configurator/repository"
	"headcover-configurator/service"
	"headcover-configurator/variants"
)

type fakeGenerator struct {
	preview *models.VariantPreview
	err     error
	got     models.Configuration
}

func (f *fakeGenerator) Preview(_ context.Context, cfg models.Configuration) (*models.VariantPreview, error) {
	f.got = cfg
	if f.err != nil {
		return nil, f.err
	}
	return f.preview, nil
}

func (f *fakeGenerator) Submit(_ context.Context, cfg models.Configuration) (*models.VariantPreview, error) {
	f.got = cfg
	return f.preview, f.err
}

type fakeSheets struct {
	format, size string
	err          error
}

func (f *fakeSheets) Render(_ context.Context, _ *models.VariantPreview, format, size string) ([]byte, string, error) {
	f.format, f.size = format, size
	if f.err != nil {
		return nil, "", f.err
	}
	return []byte("%PDF-1.4"), "application/pdf", nil
}

func testPreview() *models.VariantPreview {
	return &models.VariantPreview{
		CollectionID: "classic",
		Variants: []models.Variant{
			{SKU: "Classic-BLK-WHT-Putter", Name: "Putter", Price: "40.00", Position: 1},
		},
		Skipped:      []models.SkippedItem{},
		RegularCount: 1,
	}
}

const validBody = `{"collectionId":"classic","weights":{"putter":"0.3"},"primaryLeatherId":"black","secondaryLeatherId":"white"}`

func newTestController(gen *fakeGenerator, sheets *fakeSheets) *VariantController {
	return NewVariantController(gen, sheets, zap.NewNop())
}

func TestVariantController_Preview(t *testing.T) {
	gen := &fakeGenerator{preview: testPreview()}
	c := newTestController(gen, &fakeSheets{})

	req := httptest.NewRequest(http.MethodPost, "/admin/variants/preview", strings.NewReader(validBody))
	rec := httptest.NewRecorder()
	c.Preview(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "black", gen.got.PrimaryLeatherID)
	assert.Equal(t, "0.3", gen.got.Weights["putter"])

	var body models.VariantPreview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "classic", body.CollectionID)
	require.Len(t, body.Variants, 1)
	assert.Equal(t, "Classic-BLK-WHT-Putter", body.Variants[0].SKU)
}

func TestVariantController_PreviewKeepsRequestID(t *testing.T) {
	c := newTestController(&fakeGenerator{preview: testPreview()}, &fakeSheets{})

	req := httptest.NewRequest(http.MethodPost, "/admin/variants/preview", strings.NewReader(validBody))
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	c.Preview(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))
}

func TestVariantController_PreviewErrors(t *testing.T) {
	tests := []struct {
		name   string
		method string
		body   string
		err    error
		status int
	}{
		{name: "wrong method", method: http.MethodGet, body: validBody, status: http.StatusMethodNotAllowed},
		{name: "malformed body", method: http.MethodPost, body: `{"collectionId":`, status: http.StatusBadRequest},
		{name: "unknown field", method: http.MethodPost, body: `{"collectionId":"classic","colour":"red"}`, status: http.StatusBadRequest},
		{name: "missing collection", method: http.MethodPost, body: `{"weights":{}}`, status: http.StatusBadRequest},
		{
			name: "configuration error", method: http.MethodPost, body: validBody,
			err: fmt.Errorf("%w: primary leather is required", variants.ErrConfiguration), status: http.StatusBadRequest,
		},
		{
			name: "unknown collection", method: http.MethodPost, body: validBody,
			err: fmt.Errorf("failed to load collection: %w", repository.ErrNotFound), status: http.StatusNotFound,
		},
		{
			name: "repository failure", method: http.MethodPost, body: validBody,
			err: errors.New("connection refused"), status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(&fakeGenerator{preview: testPreview(), err: tt.err}, &fakeSheets{})

			req := httptest.NewRequest(tt.method, "/admin/variants/preview", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			c.Preview(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestVariantController_Submit(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		c := newTestController(&fakeGenerator{preview: testPreview()}, &fakeSheets{})

		req := httptest.NewRequest(http.MethodPost, "/admin/variants/submit", strings.NewReader(validBody))
		rec := httptest.NewRecorder()
		c.Submit(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("incomplete", func(t *testing.T) {
		preview := testPreview()
		preview.Skipped = []models.SkippedItem{{ShapeID: "mallet", Stage: variants.StageRegular, Reason: "no price"}}
		gen := &fakeGenerator{preview: preview, err: fmt.Errorf("%w: 1 variant(s) skipped", service.ErrIncompleteVariantSet)}
		c := newTestController(gen, &fakeSheets{})

		req := httptest.NewRequest(http.MethodPost, "/admin/variants/submit", strings.NewReader(validBody))
		rec := httptest.NewRecorder()
		c.Submit(rec, req)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		var body models.VariantPreview
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Skipped, 1)
		assert.Equal(t, "mallet", body.Skipped[0].ShapeID)
	})
}

func TestVariantController_Sheet(t *testing.T) {
	sheets := &fakeSheets{}
	c := newTestController(&fakeGenerator{preview: testPreview()}, sheets)

	req := httptest.NewRequest(http.MethodPost, "/admin/variants/sheet?format=PDF", strings.NewReader(validBody))
	rec := httptest.NewRecorder()
	c.Sheet(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "variants-classic.pdf")
	assert.Equal(t, "%PDF-1.4", rec.Body.String())
	assert.Equal(t, "pdf", sheets.format)
	assert.Equal(t, "full", sheets.size)
}

func TestVariantController_SheetErrors(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		renderErr error
		status    int
	}{
		{name: "invalid format", query: "?format=docx", status: http.StatusBadRequest},
		{name: "invalid size", query: "?format=png&size=huge", status: http.StatusBadRequest},
		{name: "render failure", query: "?format=pdf", renderErr: errors.New("chrome missing"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(&fakeGenerator{preview: testPreview()}, &fakeSheets{err: tt.renderErr})

			req := httptest.NewRequest(http.MethodPost, "/admin/variants/sheet"+tt.query, strings.NewReader(validBody))
			rec := httptest.NewRecorder()
			c.Sheet(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
