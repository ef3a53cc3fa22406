package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nickthelegend/podio-ai/internal/models"
)

func testDeck() []models.Slide {
	gradient := "linear-gradient(135deg, #667eea 0%, #764ba2 100%)"
	return []models.Slide{
		{LayoutType: models.LayoutTitle, Title: "AI in 2026", Bullets: []string{"A field guide"}},
		{LayoutType: models.LayoutStatistics, Title: "Adoption", Bullets: []string{
			"85%: Companies adopting AI by 2025", "3x: Productivity gains",
		}},
		{LayoutType: models.LayoutContent, Title: "What changed", Gradient: &gradient, Bullets: []string{
			"Foundation models", "Cheap inference", "Tool use",
		}},
		{LayoutType: models.LayoutConclusion, Title: "Takeaways", Bullets: []string{
			"Start small", "Measure", "Iterate",
		}},
	}
}

func TestExportDocumentWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "deck.pdf")
	brand := &models.BrandKit{Name: "Acme Labs"}

	if err := ExportDocument(testDeck(), brand, models.FormatWidescreen, out); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("document not written: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("document is empty")
	}
}

func TestExportDocumentPortraitFormats(t *testing.T) {
	for _, f := range []models.AspectFormat{models.FormatPortrait, models.FormatVertical} {
		out := filepath.Join(t.TempDir(), string(f)+".pdf")
		// Portrait formats must not be forced into landscape pages.
		if f.Landscape() {
			t.Errorf("%s unexpectedly landscape", f)
		}
		if err := ExportDocument(testDeck(), nil, f, out); err != nil {
			t.Errorf("%s export failed: %v", f, err)
		}
	}
}

func TestExportDocumentEmptyDeck(t *testing.T) {
	out := filepath.Join(t.TempDir(), "empty.pdf")
	if err := ExportDocument(nil, nil, models.FormatWidescreen, out); err == nil {
		t.Fatal("empty deck should not produce a document")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("no file should be persisted for a failed export")
	}
}

func TestLoadEncoderProfileDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "encoder.yaml")
	os.WriteFile(path, []byte("codec: h264_nvenc\nbitrate_kbps: 4000\n"), 0644)

	profile, err := LoadEncoderProfile(path)
	if err != nil {
		t.Fatal(err)
	}
	if profile.Codec != "h264_nvenc" || profile.BitrateKbps != 4000 {
		t.Errorf("profile overrides not applied: %+v", profile)
	}
	if profile.PixelFormat != "yuv420p" || profile.Container != "mp4" {
		t.Errorf("unset fields should keep defaults: %+v", profile)
	}

	if _, err := LoadEncoderProfile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing profile file should error")
	}
}
