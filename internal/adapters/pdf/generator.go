// Package pdf renders the one-page Blueprint Diagnostic summary of a lead
// submission: logo and brand header, company and date metadata, the six
// contact fields, and a short generated-by note.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/csg33k/blueprint-intake/internal/domain"
)

// Layout, in points on an A4 page.
const (
	margin      = 50.0
	logoX       = 50.0
	logoY       = 40.0
	logoW       = 140.0
	titleY      = 125.0
	brandY      = 150.0
	metaX       = 380.0
	metaY       = 130.0
	metaLineH   = 15.0
	ruleY       = 175.0
	ruleX2      = 545.0
	sectionY    = 205.0
	fieldLineH  = 15.0
	footerSpace = 28.0

	title = "Blueprint Diagnostic"
	brand = "Areté Soluciones"
	// DateLayout follows the es-ES short date convention (d/m/yyyy).
	DateLayout = "2/1/2006"
)

const (
	colorInk    = "#0b1b2b"
	colorAccent = "#3b6bd6"
	colorBody   = "#111827"
	colorRule   = "#e5e7eb"
	colorMuted  = "#6b7280"
)

// Renderer builds summary documents. It holds no per-request state and is
// safe for concurrent use.
type Renderer struct {
	logoPath string
	now      func() time.Time
	compress bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogo sets the image placed in the top-left corner. A path that is
// missing or unreadable at render time is skipped.
func WithLogo(path string) Option {
	return func(r *Renderer) { r.logoPath = path }
}

// WithClock overrides the time source used for the date line.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

// WithoutCompression writes content streams uncompressed.
func WithoutCompression() Option {
	return func(r *Renderer) { r.compress = false }
}

func New(opts ...Option) *Renderer {
	r := &Renderer{now: time.Now, compress: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render returns the PDF bytes for s.
func (r *Renderer) Render(ctx context.Context, s *domain.Submission) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRender, err)
	}
	var buf bytes.Buffer
	if err := r.Write(s, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write renders s to w. Nothing usable is written to w when it fails.
func (r *Renderer) Write(s *domain.Submission, w io.Writer) error {
	now := r.now()

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)
	pdf.SetCompression(r.compress)
	pdf.SetCreationDate(now)
	pdf.SetTitle(title, true)
	pdf.SetCreator("blueprint-intake", false)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	r.drawLogo(pdf)
	drawHeader(pdf, tr, s, now)
	drawFields(pdf, tr, s)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrRender, err)
	}
	return nil
}

// drawLogo places the logo if it can be loaded and reports whether it did.
// Load failures are cleared from pdf so they never reach Output.
func (r *Renderer) drawLogo(pdf *fpdf.Fpdf) bool {
	if r.logoPath == "" {
		return false
	}
	if _, err := os.Stat(r.logoPath); err != nil {
		return false
	}
	pdf.ImageOptions(r.logoPath, logoX, logoY, logoW, 0, false, fpdf.ImageOptions{ReadDpi: true}, 0, "")
	if pdf.Err() {
		pdf.ClearError()
		return false
	}
	return true
}

func drawHeader(pdf *fpdf.Fpdf, tr func(string) string, s *domain.Submission, now time.Time) {
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	contentW := pageW - left - right

	setTextColor(pdf, colorInk)
	pdf.SetFont("Helvetica", "", 18)
	pdf.SetXY(left, titleY)
	pdf.CellFormat(contentW/2, 22, tr(title), "", 0, "L", false, 0, "")

	setTextColor(pdf, colorAccent)
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetXY(left, brandY)
	pdf.CellFormat(contentW/2, 14, tr(brand), "", 0, "L", false, 0, "")

	metaW := pageW - right - metaX
	setTextColor(pdf, colorInk)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(metaX, metaY)
	pdf.CellFormat(metaW, metaLineH, tr("Empresa: "+domain.OrPlaceholder(s.Company)), "", 1, "L", false, 0, "")
	pdf.SetX(metaX)
	pdf.CellFormat(metaW, metaLineH, tr("Fecha: "+now.Format(DateLayout)), "", 1, "L", false, 0, "")

	setDrawColor(pdf, colorRule)
	pdf.SetLineWidth(1)
	pdf.Line(left, ruleY, ruleX2, ruleY)
}

func drawFields(pdf *fpdf.Fpdf, tr func(string) string, s *domain.Submission) {
	left, _, _, _ := pdf.GetMargins()

	setTextColor(pdf, colorBody)
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetXY(left, sectionY)
	pdf.Write(18, tr("Datos de contacto:"))
	pdf.Ln(18)

	for _, f := range s.Fields() {
		setTextColor(pdf, colorInk)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Write(fieldLineH, tr(f.Label+":"))

		setTextColor(pdf, colorBody)
		pdf.SetFont("Helvetica", "", 11)
		pdf.Write(fieldLineH, tr(" "+domain.OrPlaceholder(f.Value)))
		pdf.Ln(fieldLineH)
	}

	pdf.Ln(footerSpace)
	setTextColor(pdf, colorMuted)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Write(12, tr("Generado automáticamente desde Blueprint Diagnostic."))
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func setTextColor(pdf *fpdf.Fpdf, hex string) {
	r, g, b := hexRGB(hex)
	pdf.SetTextColor(r, g, b)
}

func setDrawColor(pdf *fpdf.Fpdf, hex string) {
	r, g, b := hexRGB(hex)
	pdf.SetDrawColor(r, g, b)
}

// hexRGB converts "#rrggbb" to its components. Malformed input yields black.
func hexRGB(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}
