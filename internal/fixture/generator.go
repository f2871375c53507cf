// Package fixture generates a synthetic feature dictionary document
// for demos and tests. Rows follow the canonical feature row format
// and values are drawn from a seeded random source so runs are
// reproducible.
package fixture

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/segmint-labs/featselect-cli/internal/core/domain"
	"github.com/segmint-labs/featselect-cli/internal/featurerow"
)

// DefaultRows matches the size of the original demo dictionary.
const DefaultRows = 1500

// category groups the base feature names of one dictionary category.
type category struct {
	name     string
	features []string
}

// categories is the full dictionary taxonomy. Order matters for
// seeded reproducibility.
var categories = []category{
	{"Digital Engagement", []string{
		"App Launch Frequency", "Session Duration", "Late Night Access", "Scroll Depth",
		"Search Keywords", "Cart Abandonment", "Login Attempts", "MyPage View",
		"Banner Click", "Widget Usage",
	}},
	{"Usage & Network", []string{
		"Voice Call Out", "Voice Call In", "Night/Weekend Call", "Data Usage Total",
		"5G Ratio", "WiFi vs Cellular", "Tethering Usage", "Roaming History",
	}},
	{"Content & Media", []string{
		"TV Watch Time", "VOD Purchase", "Genre Preference", "Binge Watching",
		"Content Search", "Kids Content", "Adult Content", "Playback Speed",
	}},
	{"Commerce & Finance", []string{
		"ARPU", "High Plan Retention", "Payment Risks", "Micropayment Amount",
		"Membership Usage", "Affiliate Card", "Auto Pay Method", "Family Combination",
	}},
	{"Location & Mobility", []string{
		"Home Base Time", "Work Base Time", "Daily Moving Dist", "Transport Mode",
		"POI Visit (Cafe/Mart)", "Travel Spot Visit", "Overseas Roaming",
	}},
	{"Device & Tech", []string{
		"Device Model", "Device Age", "Price Tier", "OS Version",
		"Battery Pattern", "Wearable Connection", "Change Cycle", "eSIM Usage",
	}},
	{"Service & Relation", []string{
		"VOC Cal Count", "Complaint Type", "Chatbot Usage", "Satisfaction Score",
		"Long-term Benefit", "SNS Follow", "Churn Defense History",
	}},
	{"Marketing Reaction", []string{
		"Push Click Rate", "SMS Link Click", "Response Latency", "Fatigue Level", "Opt-out History",
	}},
}

// Options configures dictionary generation.
type Options struct {
	// Rows is the number of feature rows (default 1500).
	Rows int

	// Seed drives the random source; the same seed reproduces the
	// same document.
	Seed int64

	// FontPath is a TTF font registered for PDF output. Without it
	// the PDF falls back to ASCII descriptions, because the core
	// fonts cannot encode the Korean description template.
	FontPath string
}

// Generate writes a feature dictionary to path. The format is chosen
// by extension: ".pdf" renders a document, anything else writes one
// row per line as plain text.
func Generate(path string, opts Options) error {
	if opts.Rows <= 0 {
		opts.Rows = DefaultRows
	}

	asPDF := strings.EqualFold(filepath.Ext(path), ".pdf")
	ascii := asPDF && opts.FontPath == ""
	rows := buildRows(opts.Rows, opts.Seed, ascii)

	if asPDF {
		return writePDF(path, rows, opts.FontPath)
	}
	return writeText(path, rows)
}

// buildRows produces the encoded row lines.
func buildRows(n int, seed int64, ascii bool) []string {
	rng := rand.New(rand.NewSource(seed))
	rows := make([]string, 0, n)

	for count := 1; count <= n; count++ {
		cat := categories[rng.Intn(len(categories))]
		base := cat.features[rng.Intn(len(cat.features))]

		desc := fmt.Sprintf("%s 카테고리의 %s 분석 지표", cat.name, base)
		if ascii {
			desc = fmt.Sprintf("%s metric in the %s category", base, cat.name)
		}

		rows = append(rows, featurerow.Format(domain.FeatureRecord{
			FeatureName: fmt.Sprintf("%s #%03d", base, count),
			Category:    cat.name,
			Description: desc,
			Value:       fmt.Sprintf("%d", rng.Intn(101)),
		}))
	}
	return rows
}

// writeText writes one row per line.
func writeText(path string, rows []string) error {
	var b strings.Builder
	b.WriteString("Marketing Feature Dictionary\n")
	for _, row := range rows {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0600); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}
	return nil
}

// writePDF renders the rows as an A4 document, one row per line so
// text extraction reproduces the row format exactly.
func writePDF(path string, rows []string, fontPath string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	titleFont, rowFont := "Helvetica", "Helvetica"
	if fontPath != "" {
		pdf.AddUTF8Font("dictionary", "", fontPath)
		titleFont, rowFont = "dictionary", "dictionary"
	}

	pdf.SetFont(titleFont, "", 16)
	pdf.CellFormat(0, 10, "Marketing Feature Dictionary", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(rowFont, "", 7)
	for _, row := range rows {
		pdf.CellFormat(0, 4, row, "", 1, "L", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf fixture: %w", err)
	}
	return nil
}
