package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"headcover-configurator/models"
	"headcover-configurator/repository"
	"headcover-configurator/service"
	"headcover-configurator/variants"
)

// maxRequestBytes bounds a decoded configuration body
const maxRequestBytes = 1 << 20

// VariantGenerator is implemented by service.VariantService
type VariantGenerator interface {
	Preview(ctx context.Context, cfg models.Configuration) (*models.VariantPreview, error)
	Submit(ctx context.Context, cfg models.Configuration) (*models.VariantPreview, error)
}

// SheetRenderer is implemented by service.SheetService
type SheetRenderer interface {
	Render(ctx context.Context, preview *models.VariantPreview, format, size string) ([]byte, string, error)
}

// VariantController handles HTTP requests for variant generation
type VariantController struct {
	generator VariantGenerator
	sheets    SheetRenderer
	logger    *zap.Logger
}

// NewVariantController creates a new VariantController
func NewVariantController(generator VariantGenerator, sheets SheetRenderer, logger *zap.Logger) *VariantController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VariantController{
		generator: generator,
		sheets:    sheets,
		logger:    logger,
	}
}

// validFormats is a map of valid sheet format values
var validFormats = map[string]bool{
	service.SheetFormatHTML: true,
	service.SheetFormatPDF:  true,
	service.SheetFormatPNG:  true,
}

// validSizes is a map of valid sheet size values
var validSizes = map[string]bool{
	service.SheetSizeFull:  true,
	service.SheetSizeThumb: true,
}

// Preview handles POST /admin/variants/preview
func (c *VariantController) Preview(w http.ResponseWriter, r *http.Request) {
	log, cfg, ok := c.decode(w, r, "Preview")
	if !ok {
		return
	}

	preview, err := c.generator.Preview(r.Context(), cfg)
	if err != nil {
		c.writeError(w, log, "Preview", err)
		return
	}

	log.Info("Preview: generated",
		zap.Int("variants", len(preview.Variants)),
		zap.Int("skipped", len(preview.Skipped)))
	writeJSON(w, log, http.StatusOK, preview)
}

// Submit handles POST /admin/variants/submit.
// An incomplete set is answered with 422 and the preview so the operator can see what was skipped.
func (c *VariantController) Submit(w http.ResponseWriter, r *http.Request) {
	log, cfg, ok := c.decode(w, r, "Submit")
	if !ok {
		return
	}

	preview, err := c.generator.Submit(r.Context(), cfg)
	if errors.Is(err, service.ErrIncompleteVariantSet) && preview != nil {
		log.Warn("Submit: rejected incomplete variant set", zap.Int("skipped", len(preview.Skipped)))
		writeJSON(w, log, http.StatusUnprocessableEntity, preview)
		return
	}
	if err != nil {
		c.writeError(w, log, "Submit", err)
		return
	}

	log.Info("Submit: accepted", zap.Int("variants", len(preview.Variants)))
	writeJSON(w, log, http.StatusOK, preview)
}

// Sheet handles POST /admin/variants/sheet?format=pdf|png|html&size=full|thumb
func (c *VariantController) Sheet(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	if format == "" {
		format = service.SheetFormatHTML
	}
	size := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("size")))
	if size == "" {
		size = service.SheetSizeFull
	}

	if !validFormats[format] {
		http.Error(w, "Invalid format. Valid formats: html, pdf, png", http.StatusBadRequest)
		return
	}
	if !validSizes[size] {
		http.Error(w, "Invalid size. Valid sizes: full, thumb", http.StatusBadRequest)
		return
	}

	log, cfg, ok := c.decode(w, r, "Sheet")
	if !ok {
		return
	}

	preview, err := c.generator.Preview(r.Context(), cfg)
	if err != nil {
		c.writeError(w, log, "Sheet", err)
		return
	}

	data, contentType, err := c.sheets.Render(r.Context(), preview, format, size)
	if err != nil {
		log.Error("Sheet: render failed", zap.String("format", format), zap.Error(err))
		http.Error(w, fmt.Sprintf("Failed to render sheet: %v", err), http.StatusInternalServerError)
		return
	}

	if format != service.SheetFormatHTML {
		filename := fmt.Sprintf("variants-%s.%s", preview.CollectionID, format)
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Error("Sheet: failed to write response", zap.Error(err))
	}
}

// decode checks the method, tags the request with an ID and decodes the configuration body
func (c *VariantController) decode(w http.ResponseWriter, r *http.Request, handler string) (*zap.Logger, models.Configuration, bool) {
	requestID := r.Header.Get("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	w.Header().Set("X-Request-ID", requestID)

	log := c.logger.With(zap.String("request_id", requestID), zap.String("handler", handler))
	log.Debug("received request", zap.String("method", r.Method), zap.String("path", r.URL.Path))

	var cfg models.Configuration
	if r.Method != http.MethodPost {
		log.Warn("method not allowed", zap.String("method", r.Method))
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return log, cfg, false
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		log.Warn("failed to decode request body", zap.Error(err))
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return log, cfg, false
	}

	cfg.CollectionID = strings.TrimSpace(cfg.CollectionID)
	if cfg.CollectionID == "" {
		http.Error(w, "collectionId is required", http.StatusBadRequest)
		return log, cfg, false
	}

	log = log.With(zap.String("collection", cfg.CollectionID))
	return log, cfg, true
}

// writeError maps service errors to HTTP status codes
func (c *VariantController) writeError(w http.ResponseWriter, log *zap.Logger, handler string, err error) {
	switch {
	case errors.Is(err, variants.ErrConfiguration):
		log.Warn(handler+": invalid configuration", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, repository.ErrNotFound):
		log.Warn(handler+": not found", zap.Error(err))
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		log.Error(handler+": generation failed", zap.Error(err))
		http.Error(w, "Failed to generate variants", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, log *zap.Logger, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("failed to encode response", zap.Error(err))
	}
}
