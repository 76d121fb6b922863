package service

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"os"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"headcover-configurator/metrics"
	"headcover-configurator/models"
	"headcover-configurator/utils"
)

// Sheet output formats
const (
	SheetFormatHTML = "html"
	SheetFormatPDF  = "pdf"
	SheetFormatPNG  = "png"
)

// Sheet sizes for PNG output
const (
	SheetSizeFull  = "full"
	SheetSizeThumb = "thumb"
)

//go:embed templates/variant_sheet.html
var sheetTemplates embed.FS

var sheetTemplate = template.Must(template.New("variant_sheet.html").Funcs(template.FuncMap{
	"money":      utils.FormatUSDString,
	"rowClass":   sheetRowClass,
	"threadList": sheetThreadList,
}).ParseFS(sheetTemplates, "templates/variant_sheet.html"))

// SheetService renders a generated variant set as a printable sheet
type SheetService struct {
	chromePath string
	timeout    time.Duration
	logger     *zap.Logger
}

// NewSheetService creates a new SheetService
func NewSheetService(chromePath string, timeout time.Duration, logger *zap.Logger) *SheetService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &SheetService{
		chromePath: chromePath,
		timeout:    timeout,
		logger:     logger,
	}
}

// detectChromePath returns the configured Chrome/Chromium path if it exists,
// then falls back to common installation paths
func detectChromePath(configured string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func sheetRowClass(v models.Variant) string {
	switch {
	case v.IsSetBuilder:
		return "set"
	case v.IsCustom:
		return "custom"
	default:
		return "regular"
	}
}

func sheetThreadList(threads []models.ThreadRef) string {
	labels := make([]string, 0, len(threads))
	for _, t := range threads {
		labels = append(labels, t.Label)
	}
	return strings.Join(labels, ", ")
}

// RenderHTML renders the variant sheet markup
func (s *SheetService) RenderHTML(preview *models.VariantPreview) (string, error) {
	if preview == nil {
		return "", fmt.Errorf("no variants to render")
	}

	showInventory := false
	for _, v := range preview.Variants {
		if v.InventoryQuantity > 0 {
			showInventory = true
			break
		}
	}

	data := struct {
		Title         string
		RegularCount  int
		CustomCount   int
		ShowInventory bool
		Variants      []models.Variant
		Skipped       []models.SkippedItem
	}{
		Title:         "Variants: " + preview.CollectionID,
		RegularCount:  preview.RegularCount,
		CustomCount:   preview.CustomCount,
		ShowInventory: showInventory,
		Variants:      preview.Variants,
		Skipped:       preview.Skipped,
	}

	var buf bytes.Buffer
	if err := sheetTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// Render produces the sheet in the requested format. PNG output may be reduced to a thumbnail.
// It returns the bytes and their content type.
func (s *SheetService) Render(ctx context.Context, preview *models.VariantPreview, format, size string) (data []byte, contentType string, err error) {
	defer func() {
		metrics.RecordSheet(format, err)
	}()

	html, err := s.RenderHTML(preview)
	if err != nil {
		return nil, "", err
	}

	switch format {
	case SheetFormatHTML, "":
		return []byte(html), "text/html; charset=utf-8", nil
	case SheetFormatPDF:
		data, err = s.GeneratePDF(ctx, html)
		return data, "application/pdf", err
	case SheetFormatPNG:
		data, err = s.GeneratePNG(ctx, html)
		if err != nil {
			return nil, "", err
		}
		if size == SheetSizeThumb {
			data, err = Thumbnail(data)
		}
		return data, "image/png", err
	default:
		return nil, "", fmt.Errorf("unsupported sheet format %q", format)
	}
}

// browser starts a headless Chrome context bound to the service timeout
func (s *SheetService) browser(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in containers
	)
	if chromePath := detectChromePath(s.chromePath); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	} else {
		s.logger.Warn("SheetService: no Chrome executable found, relying on chromedp auto-detection")
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	return browserCtx, func() {
		browserCancel()
		allocCancel()
		cancel()
	}
}

// loadContent replaces the blank page's document with the rendered sheet
func loadContent(html string) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		frameTree, err := page.GetFrameTree().Do(ctx)
		if err != nil {
			return err
		}
		return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
	})
}

// GeneratePDF prints the sheet to an A4 PDF
func (s *SheetService) GeneratePDF(ctx context.Context, html string) ([]byte, error) {
	browserCtx, cancel := s.browser(ctx)
	defer cancel()

	var pdfBuf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		loadContent(html),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0.4).
				WithMarginBottom(0.4).
				WithMarginLeft(0.4).
				WithMarginRight(0.4).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		s.logger.Error("SheetService: PDF generation failed", zap.Error(err))
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	s.logger.Info("SheetService: PDF generated", zap.Int("bytes", len(pdfBuf)))
	return pdfBuf, nil
}

// GeneratePNG captures the full sheet as a PNG screenshot
func (s *SheetService) GeneratePNG(ctx context.Context, html string) ([]byte, error) {
	browserCtx, cancel := s.browser(ctx)
	defer cancel()

	var buf []byte
	err := chromedp.Run(browserCtx,
		chromedp.EmulateViewport(1024, 768),
		chromedp.Navigate("about:blank"),
		loadContent(html),
		chromedp.WaitReady("body"),
		// Quality 100 keeps the capture lossless PNG
		chromedp.FullScreenshot(&buf, 100),
	)
	if err != nil {
		s.logger.Error("SheetService: PNG generation failed", zap.Error(err))
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	s.logger.Info("SheetService: PNG generated", zap.Int("bytes", len(buf)))
	return buf, nil
}
