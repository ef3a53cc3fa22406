package validate

import (
	"strings"
	"testing"

	"github.com/nickthelegend/podio-ai/internal/models"
)

func strp(s string) *string { return &s }

func TestSlideCoercesUnknownLayout(t *testing.T) {
	s, err := Slide(models.Slide{LayoutType: "hero-banner", Title: "AI"}, Options{})
	if err != nil {
		t.Fatalf("Slide: %v", err)
	}
	if s.LayoutType != models.LayoutContent {
		t.Errorf("layout = %q, want %q", s.LayoutType, models.LayoutContent)
	}
}

func TestSlideRequiresTitle(t *testing.T) {
	_, err := Slide(models.Slide{LayoutType: models.LayoutTitle, Title: "   "}, Options{})
	if err == nil {
		t.Fatal("expected error for whitespace-only title")
	}
	if !strings.Contains(err.Error(), "Title") {
		t.Errorf("error = %v, want mention of Title", err)
	}
}

func TestSlideRejectsRawMarkupByDefault(t *testing.T) {
	s := models.Slide{
		LayoutType: models.LayoutContent,
		Title:      "Custom",
		RawMarkup:  strp("<div>anything</div>"),
	}
	if _, err := Slide(s, Options{}); err == nil {
		t.Fatal("expected raw markup to be rejected without AllowRawMarkup")
	}
	if _, err := Slide(s, Options{AllowRawMarkup: true}); err != nil {
		t.Fatalf("AllowRawMarkup: %v", err)
	}
}

func TestSlideCleansBullets(t *testing.T) {
	bullets := []string{" first ", "", "   ", "second"}
	s, err := Slide(models.Slide{LayoutType: models.LayoutContent, Title: "T", Bullets: bullets}, Options{})
	if err != nil {
		t.Fatalf("Slide: %v", err)
	}
	if len(s.Bullets) != 2 || s.Bullets[0] != "first" || s.Bullets[1] != "second" {
		t.Errorf("bullets = %v", s.Bullets)
	}
}

func TestSlideCapsBullets(t *testing.T) {
	bullets := make([]string, 12)
	for i := range bullets {
		bullets[i] = "point"
	}
	s, err := Slide(models.Slide{LayoutType: models.LayoutContent, Title: "T", Bullets: bullets}, Options{})
	if err != nil {
		t.Fatalf("Slide: %v", err)
	}
	if len(s.Bullets) != MaxBullets {
		t.Errorf("len(bullets) = %d, want %d", len(s.Bullets), MaxBullets)
	}
}

func TestSlideDropsNonPositiveDuration(t *testing.T) {
	d := -2.0
	s, err := Slide(models.Slide{LayoutType: models.LayoutContent, Title: "T", Duration: &d}, Options{})
	if err != nil {
		t.Fatalf("Slide: %v", err)
	}
	if s.Duration != nil {
		t.Errorf("duration = %v, want nil", *s.Duration)
	}
}

func TestSlideDropsEmptySubtitle(t *testing.T) {
	s, err := Slide(models.Slide{LayoutType: models.LayoutTitle, Title: "T", Subtitle: strp("  ")}, Options{})
	if err != nil {
		t.Fatalf("Slide: %v", err)
	}
	if s.Subtitle != nil {
		t.Errorf("subtitle = %q, want nil", *s.Subtitle)
	}
}

func TestDeckReportsEveryBadSlide(t *testing.T) {
	slides := []models.Slide{
		{LayoutType: models.LayoutTitle, Title: ""},
		{LayoutType: models.LayoutContent, Title: "fine"},
		{LayoutType: models.LayoutConclusion, Title: ""},
	}
	_, err := Deck(slides, Options{})
	if err == nil {
		t.Fatal("expected deck validation failure")
	}
	if !strings.Contains(err.Error(), "slide 0") || !strings.Contains(err.Error(), "slide 2") {
		t.Errorf("error should name slides 0 and 2: %v", err)
	}
}

func TestDeckCapsSlideCount(t *testing.T) {
	slides := make([]models.Slide, MaxSlides+5)
	for i := range slides {
		slides[i] = models.Slide{LayoutType: models.LayoutContent, Title: "T"}
	}
	out, err := Deck(slides, Options{})
	if err != nil {
		t.Fatalf("Deck: %v", err)
	}
	if len(out) != MaxSlides {
		t.Errorf("len = %d, want %d", len(out), MaxSlides)
	}
}

func TestDeckRejectsEmpty(t *testing.T) {
	if _, err := Deck(nil, Options{}); err == nil {
		t.Fatal("expected error for empty deck")
	}
}
