package render

import (
	"reflect"
	"testing"

	"github.com/nickthelegend/podio-ai/internal/models"
)

func str(s string) *string { return &s }

func TestSplitStat(t *testing.T) {
	cases := []struct {
		bullet    string
		wantValue string
		wantLabel string
	}{
		{"85%: Companies adopting AI by 2025", "85%", "Companies adopting AI by 2025"},
		{"Revolutionary growth", "Revolutionary growth", ""},
		{"$1.2B: Market size", "$1.2B", "Market size"},
		// Colon past the 20-character window stays part of the value.
		{"A very long statistic: label", "A very long statistic: label", ""},
		// Leading colon is not a separator.
		{":nothing before it", ":nothing before it", ""},
	}
	for _, tc := range cases {
		value, label := SplitStat(tc.bullet)
		if value != tc.wantValue || label != tc.wantLabel {
			t.Errorf("SplitStat(%q) = (%q, %q), want (%q, %q)",
				tc.bullet, value, label, tc.wantValue, tc.wantLabel)
		}
	}
}

func statsSlide() models.Slide {
	return models.Slide{
		LayoutType:   models.LayoutStatistics,
		Title:        "The Numbers",
		Bullets:      []string{"85%: Companies adopting AI by 2025", "3x: Productivity", "Revolutionary growth"},
		SpeakerNotes: "numbers speak for themselves",
	}
}

func TestBuildTreeStaticIdempotent(t *testing.T) {
	slide := statsSlide()
	a := BuildTree(slide, nil, 0, Static)
	b := BuildTree(slide, nil, 0, Static)
	if !reflect.DeepEqual(a, b) {
		t.Error("static trees for identical inputs differ")
	}
}

func TestBuildTreeConvergence(t *testing.T) {
	slide := statsSlide()
	static := BuildTree(slide, nil, 0, Static)

	// Far beyond the last delay (15 + 2*8 = 31) plus the settle window.
	settledFrame := 200
	animated := BuildTree(slide, nil, settledFrame, Animated)
	if !reflect.DeepEqual(static, animated) {
		t.Error("animated tree past settle window should equal static tree")
	}

	// At frame 0 the staggered cards have not appeared yet.
	early := BuildTree(slide, nil, 0, Animated)
	for _, el := range early.Elements {
		if el.Kind == KindStatCard && el.Opacity != 0 {
			t.Errorf("stat card %d visible at frame 0 (opacity %v)", el.Seq, el.Opacity)
		}
	}
}

func TestBuildTreeStaggeredDelays(t *testing.T) {
	tree := BuildTree(statsSlide(), nil, 0, Animated)
	var delays []int
	for _, el := range tree.Elements {
		if el.Kind == KindStatCard {
			delays = append(delays, el.Delay)
		}
	}
	if len(delays) != 3 {
		t.Fatalf("expected 3 stat cards, got %d", len(delays))
	}
	for i := 1; i < len(delays); i++ {
		if delays[i] <= delays[i-1] {
			t.Errorf("card %d delay %d not after card %d delay %d", i, delays[i], i-1, delays[i-1])
		}
	}
}

func TestBuildTreeStatisticsCapsAtFour(t *testing.T) {
	slide := statsSlide()
	slide.Bullets = []string{"1: a", "2: b", "3: c", "4: d", "5: e", "6: f"}
	tree := BuildTree(slide, nil, 0, Static)
	cards := 0
	for _, el := range tree.Elements {
		if el.Kind == KindStatCard {
			cards++
		}
	}
	if cards != 4 {
		t.Errorf("statistics layout rendered %d cards, want 4", cards)
	}
}

func TestBuildTreeRawMarkupBypassesTemplates(t *testing.T) {
	slide := statsSlide()
	slide.RawMarkup = str(`<div class="hero"><h1>Custom</h1></div>`)
	tree := BuildTree(slide, nil, 0, Animated)
	if tree.Markup == "" {
		t.Fatal("raw markup not carried into the tree")
	}
	if len(tree.Elements) != 0 {
		t.Errorf("raw markup slide still built %d template elements", len(tree.Elements))
	}
}

func TestBrandOverrideResolution(t *testing.T) {
	slide := models.Slide{
		LayoutType:  models.LayoutContent,
		Title:       "t",
		AccentColor: str("#336699"),
	}

	th := ResolveTheme(slide, nil)
	if th.Accent != "#336699" {
		t.Errorf("slide accent ignored: %q", th.Accent)
	}
	if th.Secondary != AdjustColor("#336699", -30) {
		t.Errorf("secondary should derive from accent, got %q", th.Secondary)
	}

	brand := &models.BrandKit{
		Name:         "Acme",
		PrimaryColor: str("#112233"),
		FontFamily:   str("Inter"),
	}
	th = ResolveTheme(slide, brand)
	if th.Accent != "#112233" {
		t.Errorf("brand primary should override slide accent, got %q", th.Accent)
	}
	if th.FontFamily != "Inter" {
		t.Errorf("brand font not applied, got %q", th.FontFamily)
	}
}

func TestGradientWinsOverBackground(t *testing.T) {
	slide := models.Slide{
		LayoutType:      models.LayoutContent,
		Title:           "t",
		BackgroundColor: str("#101010"),
		Gradient:        str("linear-gradient(135deg, #667eea 0%, #764ba2 100%)"),
	}
	th := ResolveTheme(slide, nil)
	if th.Background != "#667eea" || th.BgShade != "#764ba2" {
		t.Errorf("gradient stops not honored: %q -> %q", th.Background, th.BgShade)
	}

	// An unsupported gradient defuses to the flat background derivation
	// rather than erroring later in the rasterizer.
	slide.Gradient = str("conic-gradient(oklch(0.6 0.2 30), transparent)")
	th = ResolveTheme(slide, nil)
	if th.Background != "#101010" {
		t.Errorf("unsupported gradient should fall back to backgroundColor, got %q", th.Background)
	}
}

func TestMarkupText(t *testing.T) {
	got := MarkupText(`<div><h1>Hello</h1><p>world  &amp; co</p></div>`)
	if got != "Hello world &amp; co" {
		t.Errorf("MarkupText = %q", got)
	}
}
