package render

import "testing"

func TestAdjustColor(t *testing.T) {
	cases := []struct {
		name   string
		color  string
		amount int
		want   string
	}{
		{"darken 6-digit", "#808080", -30, "#626262"},
		{"lighten 6-digit", "#808080", 40, "#a8a8a8"},
		{"3-digit expands before arithmetic", "#abc", -30, "#8c9dae"},
		{"clamps low", "#0a0a0f", -30, "#000000"},
		{"clamps high", "#ffffff", 40, "#ffffff"},
		{"non-hex passes through", "tomato", -30, "tomato"},
		{"empty falls back", "", -30, "#1a1a2e"},
		{"malformed hex passes through", "#zzz", -30, "#zzz"},
	}
	for _, tc := range cases {
		if got := AdjustColor(tc.color, tc.amount); got != tc.want {
			t.Errorf("%s: AdjustColor(%q, %d) = %q, want %q",
				tc.name, tc.color, tc.amount, got, tc.want)
		}
	}
}

func TestParseHex(t *testing.T) {
	r, g, b, ok := ParseHex("#abc")
	if !ok || r != 0xaa || g != 0xbb || b != 0xcc {
		t.Errorf("#abc parsed to (%d,%d,%d,%v)", r, g, b, ok)
	}
	if _, _, _, ok := ParseHex("abc"); ok {
		t.Error("missing # should not parse")
	}
	if _, _, _, ok := ParseHex("#12345"); ok {
		t.Error("5-digit hex should not parse")
	}
}

func TestRGBMalformedFallsBack(t *testing.T) {
	r, g, b := RGB("rgb(255, 0, 0)", "#ec4899")
	if r != 0xec || g != 0x48 || b != 0x99 {
		t.Errorf("malformed color should use fallback channels, got (%d,%d,%d)", r, g, b)
	}
}

func TestExtractHexColors(t *testing.T) {
	stops := ExtractHexColors("linear-gradient(135deg, #667eea 0%, #764ba2 100%)")
	if len(stops) != 2 || stops[0] != "#667eea" || stops[1] != "#764ba2" {
		t.Errorf("gradient stops = %v", stops)
	}
	if got := ExtractHexColors("radial-gradient(oklch(0.7 0.1 200), transparent)"); len(got) != 0 {
		t.Errorf("unsupported color syntax should extract nothing, got %v", got)
	}
}
