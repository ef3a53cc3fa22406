package render

import (
	"image"
	"image/color"
	"strconv"

	"github.com/fogleman/gg"
)

// Reference canvas the layout constants are authored against. Everything is
// scaled by width/refWidth so the same tree renders correctly at any of the
// fixed export resolutions.
const refWidth = 1280.0

// Rasterizer draws visual trees onto an RGBA canvas at a fixed resolution.
type Rasterizer struct {
	width  int
	height int
	scale  float64
}

func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		width:  width,
		height: height,
		scale:  float64(width) / refWidth,
	}
}

// Render rasterizes the tree. It is a pure function of the tree: malformed
// colors were already defused during theme resolution, so drawing cannot
// fail and two calls with equal trees produce pixel-identical output.
func (r *Rasterizer) Render(tree Tree) *image.RGBA {
	dc := gg.NewContext(r.width, r.height)
	w, h := float64(r.width), float64(r.height)
	s := r.scale

	r.drawBackdrop(dc, tree.Theme, w, h, s)

	if tree.Markup != "" {
		r.drawMarkupBlock(dc, tree, w, h, s)
	} else {
		switch {
		case hasKind(tree, KindBadge):
			r.drawTitleLayout(dc, tree, w, h, s)
		case hasKind(tree, KindStatCard):
			r.drawStatisticsLayout(dc, tree, w, h, s)
		case hasKind(tree, KindTagPill):
			r.drawConclusionLayout(dc, tree, w, h, s)
		default:
			r.drawContentLayout(dc, tree, w, h, s)
		}
	}

	return dc.Image().(*image.RGBA)
}

func hasKind(tree Tree, kind ElementKind) bool {
	for _, el := range tree.Elements {
		if el.Kind == kind {
			return true
		}
	}
	return false
}

func setColor(dc *gg.Context, hex, fallback string, alpha float64) {
	cr, cg, cb := RGB(hex, fallback)
	dc.SetRGBA(float64(cr)/255, float64(cg)/255, float64(cb)/255, alpha)
}

func (r *Rasterizer) drawBackdrop(dc *gg.Context, th Theme, w, h, s float64) {
	// 135deg background gradient.
	grad := gg.NewLinearGradient(0, 0, w, h)
	br, bg, bb := RGB(th.Background, DefaultBackground)
	sr, sg, sb := RGB(th.BgShade, DefaultBackground)
	grad.AddColorStop(0, colorOf(br, bg, bb, 1))
	grad.AddColorStop(1, colorOf(sr, sg, sb, 1))
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	// Decorative accent glows in opposite corners.
	setColor(dc, th.Accent, DefaultAccent, 0.10)
	dc.DrawCircle(w-100*s, 100*s, 200*s)
	dc.Fill()
	setColor(dc, th.Secondary, DefaultAccent, 0.08)
	dc.DrawCircle(75*s, h-75*s, 175*s)
	dc.Fill()

	// Faint grid pattern.
	setColor(dc, th.Text, DefaultText, 0.03)
	dc.SetLineWidth(1)
	step := 50 * s
	for x := step; x < w; x += step {
		dc.DrawLine(x, 0, x, h)
		dc.Stroke()
	}
	for y := step; y < h; y += step {
		dc.DrawLine(0, y, w, y)
		dc.Stroke()
	}
}

func (r *Rasterizer) drawTitleLayout(dc *gg.Context, tree Tree, w, h, s float64) {
	th := tree.Theme
	for _, el := range tree.Elements {
		y := el.OffsetY * s
		switch el.Kind {
		case KindBadge:
			dc.SetFontFace(fontFace(true, 14*s))
			tw, _ := dc.MeasureString(el.Text)
			bw, bh := tw+56*s, 36*s
			setColor(dc, th.Accent, DefaultAccent, 0.15*el.Opacity)
			dc.DrawRoundedRectangle(w/2-bw/2, h*0.30-bh/2+y, bw, bh, bh/2)
			dc.Fill()
			setColor(dc, th.Accent, DefaultAccent, el.Opacity)
			dc.DrawStringAnchored(el.Text, w/2, h*0.30+y, 0.5, 0.35)
		case KindHeading:
			dc.SetFontFace(fontFace(true, 72*s))
			setColor(dc, th.Text, DefaultText, el.Opacity)
			dc.DrawStringWrapped(el.Text, w/2, h*0.45+y, 0.5, 0.5, w-260*s, 1.1, gg.AlignCenter)
		case KindTagline:
			dc.SetFontFace(fontFace(false, 24*s))
			setColor(dc, th.Text, DefaultText, 0.6*el.Opacity)
			dc.DrawStringWrapped(el.Text, w/2, h*0.66+y, 0.5, 0, 700*s, 1.5, gg.AlignCenter)
		}
	}
}

func (r *Rasterizer) drawStatisticsLayout(dc *gg.Context, tree Tree, w, h, s float64) {
	th := tree.Theme
	var cards []Element
	for _, el := range tree.Elements {
		if el.Kind == KindStatCard {
			cards = append(cards, el)
		}
	}

	for _, el := range tree.Elements {
		if el.Kind != KindHeading {
			continue
		}
		dc.SetFontFace(fontFace(true, 48*s))
		setColor(dc, th.Text, DefaultText, el.Opacity)
		dc.DrawString(el.Text, 80*s, 110*s+el.OffsetY*s)
	}

	cardW, cardH, gap := 260*s, 180*s, 30*s
	total := float64(len(cards))*cardW + float64(len(cards)-1)*gap
	startX := (w - total) / 2
	baseY := h*0.58 - cardH/2

	for _, el := range cards {
		x := startX + float64(el.Seq)*(cardW+gap)
		y := baseY + el.OffsetY*s

		setColor(dc, th.Text, DefaultText, 0.05*el.Opacity)
		dc.DrawRoundedRectangle(x, y, cardW, cardH, 24*s)
		dc.Fill()
		setColor(dc, th.Text, DefaultText, 0.10*el.Opacity)
		dc.SetLineWidth(1)
		dc.DrawRoundedRectangle(x, y, cardW, cardH, 24*s)
		dc.Stroke()

		dc.SetFontFace(fontFace(true, 52*s))
		setColor(dc, th.Accent, DefaultAccent, el.Opacity)
		dc.DrawStringAnchored(el.Text, x+cardW/2, y+cardH*0.38, 0.5, 0.5)

		if el.Label != "" {
			dc.SetFontFace(fontFace(false, 16*s))
			setColor(dc, th.Text, DefaultText, 0.5*el.Opacity)
			dc.DrawStringWrapped(el.Label, x+cardW/2, y+cardH*0.62, 0.5, 0, cardW-40*s, 1.3, gg.AlignCenter)
		}
	}
}

func (r *Rasterizer) drawConclusionLayout(dc *gg.Context, tree Tree, w, h, s float64) {
	th := tree.Theme
	var pills []Element
	for _, el := range tree.Elements {
		switch el.Kind {
		case KindHeading:
			dc.SetFontFace(fontFace(true, 56*s))
			setColor(dc, th.Text, DefaultText, el.Opacity)
			dc.DrawStringWrapped(el.Text, w/2, h*0.35+el.OffsetY*s, 0.5, 0.5, w-260*s, 1.1, gg.AlignCenter)
		case KindTagPill:
			pills = append(pills, el)
		}
	}

	// Pills wrap across centered rows inside a fixed content width.
	dc.SetFontFace(fontFace(false, 18*s))
	maxRow := 900 * s
	pillH, gap := 48*s, 12*s

	type placed struct {
		el Element
		w  float64
	}
	var rows [][]placed
	var row []placed
	rowW := 0.0
	for _, el := range pills {
		tw, _ := dc.MeasureString(el.Text)
		pw := tw + 56*s
		if rowW+pw > maxRow && len(row) > 0 {
			rows = append(rows, row)
			row, rowW = nil, 0
		}
		row = append(row, placed{el: el, w: pw})
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
			py := y + p.el.OffsetY*s
			setColor(dc, th.Text, DefaultText, 0.06*p.el.Opacity)
			dc.DrawRoundedRectangle(x, py, p.w, pillH, pillH/2)
			dc.Fill()
			setColor(dc, th.Text, DefaultText, 0.12*p.el.Opacity)
			dc.SetLineWidth(1)
			dc.DrawRoundedRectangle(x, py, p.w, pillH, pillH/2)
			dc.Stroke()
			setColor(dc, th.Text, DefaultText, p.el.Opacity)
			dc.DrawStringAnchored(p.el.Text, x+p.w/2, py+pillH/2, 0.5, 0.35)
			x += p.w + gap
		}
		y += pillH + gap
	}
}

func (r *Rasterizer) drawContentLayout(dc *gg.Context, tree Tree, w, h, s float64) {
	th := tree.Theme
	var cards []Element
	cardCount := 0
	for _, el := range tree.Elements {
		if el.Kind == KindBulletCard {
			cardCount++
		}
	}

	for _, el := range tree.Elements {
		switch el.Kind {
		case KindAccentBar:
			setColor(dc, th.Accent, DefaultAccent, el.Opacity)
			dc.DrawRectangle(0, 0, w, 4*s)
			dc.Fill()
		case KindHeading:
			dc.SetFontFace(fontFace(true, 48*s))
			setColor(dc, th.Text, DefaultText, el.Opacity)
			dc.DrawString(el.Text, 80*s, 110*s+el.OffsetY*s)
		case KindBulletCard:
			cards = append(cards, el)
		}
	}

	cols := 1
	if TwoColumn(cardCount) {
		cols = 2
	}
	gap := 16 * s
	contentW := w - 160*s
	cardW := (contentW - gap*float64(cols-1)) / float64(cols)
	cardH := 96 * s
	gridTop := 160 * s

	for _, el := range cards {
		col := el.Seq % cols
		rowIdx := el.Seq / cols
		x := 80*s + float64(col)*(cardW+gap)
		y := gridTop + float64(rowIdx)*(cardH+gap) + el.OffsetY*s

		setColor(dc, th.Text, DefaultText, 0.03*el.Opacity)
		dc.DrawRoundedRectangle(x, y, cardW, cardH, 16*s)
		dc.Fill()
		setColor(dc, th.Accent, DefaultAccent, el.Opacity)
		dc.DrawRectangle(x, y, 4*s, cardH)
		dc.Fill()

		// Numbered chip.
		chip := 28 * s
		setColor(dc, th.Accent, DefaultAccent, el.Opacity)
		dc.DrawRoundedRectangle(x+20*s, y+cardH/2-chip/2, chip, chip, 8*s)
		dc.Fill()
		dc.SetFontFace(fontFace(true, 13*s))
		dc.SetRGBA(1, 1, 1, el.Opacity)
		dc.DrawStringAnchored(strconv.Itoa(el.Ordinal), x+20*s+chip/2, y+cardH/2, 0.5, 0.35)

		dc.SetFontFace(fontFace(false, 18*s))
		setColor(dc, th.Text, DefaultText, el.Opacity)
		dc.DrawStringWrapped(el.Text, x+64*s, y+18*s, 0, 0, cardW-88*s, 1.4, gg.AlignLeft)
	}
}

func (r *Rasterizer) drawMarkupBlock(dc *gg.Context, tree Tree, w, h, s float64) {
	// Verbatim container occupying the full bounds; the raster backend can
	// only draw the block's text content, not execute its markup.
	text := MarkupText(tree.Markup)
	if text == "" {
		return
	}
	dc.SetFontFace(fontFace(false, 24*s))
	setColor(dc, tree.Theme.Text, DefaultText, 1)
	dc.DrawStringWrapped(text, 80*s, 80*s, 0, 0, w-160*s, 1.5, gg.AlignLeft)
}

func colorOf(r, g, b int, a float64) color.Color {
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a * 255)}
}
