package render

import (
	"bytes"
	"testing"

	"github.com/nickthelegend/podio-ai/internal/models"
)

func TestRasterizeDeterministic(t *testing.T) {
	slide := models.Slide{
		LayoutType: models.LayoutContent,
		Title:      "Deterministic output",
		Bullets:    []string{"first point", "second point", "third point"},
	}
	r := NewRasterizer(320, 180)

	a := r.Render(BuildTree(slide, nil, 42, Animated))
	b := r.Render(BuildTree(slide, nil, 42, Animated))
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("two renders of the same tree differ pixel-wise")
	}
}

func TestRasterizeBounds(t *testing.T) {
	for _, f := range []models.AspectFormat{models.FormatWidescreen, models.FormatPortrait, models.FormatVertical} {
		w, h := f.Dimensions()
		r := NewRasterizer(w, h)
		img := r.Render(BuildTree(models.Slide{LayoutType: models.LayoutTitle, Title: "t"}, nil, 0, Static))
		if img.Bounds().Dx() != w || img.Bounds().Dy() != h {
			t.Errorf("%s: rendered %dx%d, want %dx%d",
				f, img.Bounds().Dx(), img.Bounds().Dy(), w, h)
		}
		if img.Stride != w*4 {
			t.Errorf("%s: stride %d not tightly packed", f, img.Stride)
		}
	}
}

func TestRasterizeMalformedColorsDoNotPanic(t *testing.T) {
	bad := "oklch(0.7 0.1 200)"
	slide := models.Slide{
		LayoutType:      models.LayoutStatistics,
		Title:           "broken styles",
		Bullets:         []string{"99%: still renders"},
		BackgroundColor: &bad,
		AccentColor:     &bad,
		TextColor:       &bad,
	}
	r := NewRasterizer(160, 90)
	img := r.Render(BuildTree(slide, nil, 10, Animated))
	if img == nil {
		t.Fatal("render returned nil image")
	}
}

func TestRasterizeAllLayouts(t *testing.T) {
	layouts := []models.LayoutType{
		models.LayoutTitle, models.LayoutContent, models.LayoutStatistics,
		models.LayoutTimeline, models.LayoutComparison, models.LayoutConclusion,
		models.LayoutQuote, models.LayoutImage,
	}
	r := NewRasterizer(160, 90)
	for _, lt := range layouts {
		slide := models.Slide{
			LayoutType: lt,
			Title:      "layout " + string(lt),
			Bullets:    []string{"one", "two", "three"},
		}
		if img := r.Render(BuildTree(slide, nil, 0, Static)); img == nil {
			t.Errorf("layout %s rendered nil", lt)
		}
	}
}
