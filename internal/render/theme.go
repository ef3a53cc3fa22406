package render

import "github.com/nickthelegend/podio-ai/internal/models"

const defaultFontFamily = "'Segoe UI', system-ui, -apple-system, sans-serif"

// Theme is the fully resolved color and font set for one slide. Both the
// raster backend and the document exporter draw from the same resolution so
// the two outputs stay visually consistent.
type Theme struct {
	Accent     string
	Secondary  string
	Text       string
	Background string // gradient start
	BgShade    string // gradient end, derived from Background
	FontFamily string
}

// ResolveTheme applies brand overrides atop per-slide styling: the brand's
// primary color and font win over the slide's, and the secondary defaults to
// a darkened variant of the accent.
func ResolveTheme(slide models.Slide, brand *models.BrandKit) Theme {
	th := Theme{
		Accent:     DefaultAccent,
		Text:       DefaultText,
		Background: DefaultBackground,
		FontFamily: defaultFontFamily,
	}

	if slide.AccentColor != nil && *slide.AccentColor != "" {
		th.Accent = *slide.AccentColor
	}
	if brand != nil && brand.PrimaryColor != nil && *brand.PrimaryColor != "" {
		th.Accent = *brand.PrimaryColor
	}

	th.Secondary = AdjustColor(th.Accent, -30)
	if brand != nil && brand.SecondaryColor != nil && *brand.SecondaryColor != "" {
		th.Secondary = *brand.SecondaryColor
	}

	if slide.TextColor != nil && *slide.TextColor != "" {
		th.Text = *slide.TextColor
	}
	if slide.BackgroundColor != nil && *slide.BackgroundColor != "" {
		th.Background = *slide.BackgroundColor
	}

	// A gradient wins over the flat background color. Only plain hex stops
	// are honored; anything the rasterizer cannot draw is dropped here so a
	// malformed gradient can never abort an export mid-frame.
	if slide.Gradient != nil && *slide.Gradient != "" {
		if stops := ExtractHexColors(*slide.Gradient); len(stops) > 0 {
			th.Background = stops[0]
			if len(stops) > 1 {
				th.BgShade = stops[len(stops)-1]
			}
		}
	}
	if th.BgShade == "" {
		th.BgShade = AdjustColor(th.Background, -30)
	}

	if brand != nil && brand.FontFamily != nil && *brand.FontFamily != "" {
		th.FontFamily = *brand.FontFamily
	}

	return th
}
