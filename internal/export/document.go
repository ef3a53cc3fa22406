package export

import (
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/nickthelegend/podio-ai/internal/models"
	"github.com/nickthelegend/podio-ai/internal/render"
)

// Document export ignores timing entirely: one page per slide, each drawn
// with document-native primitives mirroring the settled slide templates,
// at a fixed page size chosen by aspect format. The document is only
// persisted after every page has been drawn successfully.

// ExportDocument writes the slide deck as a paginated document at outPath.
func ExportDocument(slides []models.Slide, brand *models.BrandKit,
	format models.AspectFormat, outPath string) error {

	if len(slides) == 0 {
		return fmt.Errorf("nothing to export: deck is empty")
	}

	width, height := format.Dimensions()
	orientation := "P"
	if format.Landscape() {
		orientation = "L"
	}

	size := gofpdf.SizeType{Wd: float64(width), Ht: float64(height)}
	if orientation == "L" {
		// gofpdf expects the portrait size and rotates it for landscape.
		size = gofpdf.SizeType{Wd: float64(height), Ht: float64(width)}
	}

	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: orientation,
		UnitStr:        "pt",
		Size:           size,
	})
	doc.SetAutoPageBreak(false, 0)
	doc.SetMargins(0, 0, 0)

	total := len(slides)
	for i, slide := range slides {
		drawPage(doc, slide, brand, i, total, float64(width), float64(height))
		if doc.Err() {
			// Pages already drawn stay intact in the in-memory document;
			// nothing has been written to disk yet.
			return fmt.Errorf("drawing page %d: %w", i+1, doc.Error())
		}
	}

	if err := doc.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	return nil
}

func pdfColor(doc *gofpdf.Fpdf, hex, fallback string, set func(r, g, b int)) {
	r, g, b := render.RGB(hex, fallback)
	set(r, g, b)
}

func drawPage(doc *gofpdf.Fpdf, slide models.Slide, brand *models.BrandKit,
	index, total int, w, h float64) {

	doc.AddPage()
	th := render.ResolveTheme(slide, brand)
	s := w / 1280.0

	// Background with the gradient approximated by its start color plus a
	// shaded band toward the bottom-right.
	pdfColor(doc, th.Background, render.DefaultBackground, doc.SetFillColor)
	doc.Rect(0, 0, w, h, "F")
	pdfColor(doc, th.BgShade, render.DefaultBackground, doc.SetFillColor)
	doc.SetAlpha(0.45, "Normal")
	doc.Polygon([]gofpdf.PointType{{X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}}, "F")
	doc.SetAlpha(1, "Normal")

	// Decorative accent circle, as on the live canvas.
	pdfColor(doc, th.Accent, render.DefaultAccent, doc.SetFillColor)
	doc.SetAlpha(0.10, "Normal")
	doc.Circle(w-100*s, 100*s, 200*s, "F")
	doc.SetAlpha(1, "Normal")

	tree := render.BuildTree(slide, brand, 0, render.Static)
	if tree.Markup != "" {
		drawMarkupPage(doc, tree, w, h, s)
	} else {
		switch slide.LayoutType {
		case models.LayoutTitle:
			drawTitlePage(doc, tree, w, h, s)
		case models.LayoutStatistics:
			drawStatisticsPage(doc, tree, w, h, s)
		case models.LayoutConclusion:
			drawConclusionPage(doc, tree, w, h, s)
		default:
			drawContentPage(doc, tree, w, h, s)
		}
	}

	// Footer: page index in one corner, brand name in the opposite one.
	doc.SetFont("Helvetica", "", 12*s)
	pdfColor(doc, th.Text, render.DefaultText, doc.SetTextColor)
	doc.SetAlpha(0.5, "Normal")
	footer := fmt.Sprintf("%d / %d", index+1, total)
	doc.Text(40*s, h-28*s, footer)
	if brand != nil && brand.Name != "" {
		bw := doc.GetStringWidth(brand.Name)
		doc.Text(w-40*s-bw, h-28*s, brand.Name)
	}
	doc.SetAlpha(1, "Normal")
}

func drawTitlePage(doc *gofpdf.Fpdf, tree render.Tree, w, h, s float64) {
	th := tree.Theme
	for _, el := range tree.Elements {
		switch el.Kind {
		case render.KindBadge:
			doc.SetFont("Helvetica", "B", 14*s)
			pdfColor(doc, th.Accent, render.DefaultAccent, doc.SetTextColor)
			bw := doc.GetStringWidth(el.Text)
			doc.Text(w/2-bw/2, h*0.30, el.Text)
		case render.KindHeading:
			doc.SetFont("Helvetica", "B", 64*s)
			pdfColor(doc, th.Text, render.DefaultText, doc.SetTextColor)
			doc.SetXY(130*s, h*0.38)
			doc.MultiCell(w-260*s, 72*s, el.Text, "", "C", false)
		case render.KindTagline:
			doc.SetFont("Helvetica", "", 24*s)
			pdfColor(doc, th.Text, render.DefaultText, doc.SetTextColor)
			doc.SetXY(w/2-350*s, h*0.64)
			doc.MultiCell(700*s, 34*s, el.Text, "", "C", false)
		}
	}
}

func drawStatisticsPage(doc *gofpdf.Fpdf, tree render.Tree, w, h, s float64) {
	th := tree.Theme
	var cards []render.Element
	for _, el := range tree.Elements {
		if el.Kind == render.KindStatCard {
			cards = append(cards, el)
		} else if el.Kind == render.KindHeading {
			doc.SetFont("Helvetica", "B", 44*s)
			pdfColor(doc, th.Text, render.DefaultText, doc.SetTextColor)
			doc.Text(80*s, 110*s, el.Text)
		}
	}

	cardW, cardH, gap := 260*s, 180*s, 30*s
	rowW := float64(len(cards))*cardW + float64(len(cards)-1)*gap
	x := (w - rowW) / 2
	y := h*0.58 - cardH/2

	for _, el := range cards {
		pdfColor(doc, th.Text, render.DefaultText, doc.SetFillColor)
		doc.SetAlpha(0.06, "Normal")
		doc.RoundedRect(x, y, cardW, cardH, 24*s, "1234", "F")
		doc.SetAlpha(1, "Normal")

		doc.SetFont("Helvetica", "B", 48*s)
		pdfColor(doc, th.Accent, render.DefaultAccent, doc.SetTextColor)
		vw := doc.GetStringWidth(el.Text)
		doc.Text(x+cardW/2-vw/2, y+cardH*0.42, el.Text)

		if el.Label != "" {
			doc.SetFont("Helvetica", "", 15*s)
			pdfColor(doc, th.Text, render.DefaultText, doc.SetTextColor)
			doc.SetXY(x+20*s, y+cardH*0.55)
			doc.MultiCell(cardW-40*s, 19*s, el.Label, "", "C", false)
		}
		x += cardW + gap
	}
}

func drawConclusionPage(doc *gofpdf.Fpdf, tree render.Tree, w, h, s float64) {
	th := tree.Theme
	var pills []render.Element
	for _, el := range tree.Elements {
		if el.Kind == render.KindTagPill {
			pills = append(pills, el)
		} else if el.Kind == render.KindHeading {
			doc.SetFont("Helvetica", "B", 52*s)
			pdfColor(doc, th.Text, render.DefaultText, doc.SetTextColor)
			doc.SetXY(130*s, h*0.30)
			doc.MultiCell(w-260*s, 58*s, el.Text, "", "C", false)
		}
	}

	doc.SetFont("Helvetica", "", 18*s)
	maxRow, pillH, gap := 900*s, 48*s, 12*s

	type placed struct {
		text string
		w    float64
	}
	var rows [][]placed
	var row []placed
	rowW := 0.0
	for _, el := range pills {
		pw := doc.GetStringWidth(el.Text) + 56*s
		if rowW+pw > maxRow && len(row) > 0 {
			rows = append(rows, row)
			row, rowW = nil, 0
		}
		row = append(row, placed{text: el.Text, w: pw})
		rowW += pw + gap
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	y := h * 0.52
	for _, row := range rows {
		total := -gap
		for _, p := range row {
			total += p.w + gap
		}
		x := (w - total) / 2
		for _, p := range row {
			pdfColor(doc, th.Text, render.DefaultText, doc.SetFillColor)
			doc.SetAlpha(0.08, "Normal")
			doc.RoundedRect(x, y, p.w, pillH, pillH/2, "1234", "F")
			doc.SetAlpha(1, "Normal")
			pdfColor(doc, th.Text, render.DefaultText, doc.SetTextColor)
			doc.Text(x+28*s, y+pillH*0.65, p.text)
			x += p.w + gap
		}
		y += pillH + gap
	}
}

func drawContentPage(doc *gofpdf.Fpdf, tree render.Tree, w, h, s float64) {
	th := tree.Theme
	var cards []render.Element
	for _, el := range tree.Elements {
		switch el.Kind {
		case render.KindAccentBar:
			pdfColor(doc, th.Accent, render.DefaultAccent, doc.SetFillColor)
			doc.Rect(0, 0, w, 4*s, "F")
		case render.KindHeading:
			doc.SetFont("Helvetica", "B", 44*s)
			pdfColor(doc, th.Text, render.DefaultText, doc.SetTextColor)
			doc.Text(80*s, 110*s, el.Text)
		case render.KindBulletCard:
			cards = append(cards, el)
		}
	}

	cols := 1
	if render.TwoColumn(len(cards)) {
		cols = 2
	}
	gap := 16 * s
	cardW := (w - 160*s - gap*float64(cols-1)) / float64(cols)
	cardH := 96 * s
	gridTop := 160 * s

	for _, el := range cards {
		col := el.Seq % cols
		rowIdx := el.Seq / cols
		x := 80*s + float64(col)*(cardW+gap)
		y := gridTop + float64(rowIdx)*(cardH+gap)

		pdfColor(doc, th.Text, render.DefaultText, doc.SetFillColor)
		doc.SetAlpha(0.05, "Normal")
		doc.RoundedRect(x, y, cardW, cardH, 16*s, "1234", "F")
		doc.SetAlpha(1, "Normal")
		pdfColor(doc, th.Accent, render.DefaultAccent, doc.SetFillColor)
		doc.Rect(x, y, 4*s, cardH, "F")

		chip := 28 * s
		doc.RoundedRect(x+20*s, y+cardH/2-chip/2, chip, chip, 8*s, "1234", "F")
		doc.SetFont("Helvetica", "B", 13*s)
		doc.SetTextColor(255, 255, 255)
		nw := doc.GetStringWidth(strconv.Itoa(el.Ordinal))
		doc.Text(x+20*s+chip/2-nw/2, y+cardH/2+5*s, strconv.Itoa(el.Ordinal))

		doc.SetFont("Helvetica", "", 17*s)
		pdfColor(doc, th.Text, render.DefaultText, doc.SetTextColor)
		doc.SetXY(x+64*s, y+18*s)
		doc.MultiCell(cardW-88*s, 24*s, el.Text, "", "L", false)
	}
}

func drawMarkupPage(doc *gofpdf.Fpdf, tree render.Tree, w, h, s float64) {
	text := render.MarkupText(tree.Markup)
	if text == "" {
		return
	}
	doc.SetFont("Helvetica", "", 24*s)
	pdfColor(doc, tree.Theme.Text, render.DefaultText, doc.SetTextColor)
	doc.SetXY(80*s, 80*s)
	doc.MultiCell(w-160*s, 36*s, text, "", "L", false)
}
