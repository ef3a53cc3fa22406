package models

// LayoutType selects which structural rendering template a slide uses.
type LayoutType string

const (
	LayoutTitle      LayoutType = "title"
	LayoutContent    LayoutType = "content"
	LayoutStatistics LayoutType = "statistics"
	LayoutTimeline   LayoutType = "timeline"
	LayoutComparison LayoutType = "comparison"
	LayoutConclusion LayoutType = "conclusion"
	LayoutQuote      LayoutType = "quote"
	LayoutImage      LayoutType = "image"
)

// KnownLayout reports whether lt is one of the supported layout variants.
func KnownLayout(lt LayoutType) bool {
	switch lt {
	case LayoutTitle, LayoutContent, LayoutStatistics, LayoutTimeline,
		LayoutComparison, LayoutConclusion, LayoutQuote, LayoutImage:
		return true
	}
	return false
}

// Slide is one unit of presentation content. Optional style fields use
// pointers so "not set" is distinguishable from an explicit empty value.
type Slide struct {
	LayoutType      LayoutType `json:"layoutType"`
	Title           string     `json:"title"`
	Subtitle        *string    `json:"subtitle,omitempty"`
	Bullets         []string   `json:"bullets"`
	SpeakerNotes    string     `json:"speakerNotes"`
	BackgroundColor *string    `json:"backgroundColor,omitempty"`
	TextColor       *string    `json:"textColor,omitempty"`
	AccentColor     *string    `json:"accentColor,omitempty"`
	Gradient        *string    `json:"gradient,omitempty"`
	RawMarkup       *string    `json:"rawMarkup,omitempty"`
	AudioURL        *string    `json:"audioUrl,omitempty"`
	Duration        *float64   `json:"duration,omitempty"` // seconds; nil means "not yet estimated"
}

// SlidePatch is a partial slide update. Only non-nil fields are applied,
// mirroring updateSlide(index, partial) semantics on the client.
type SlidePatch struct {
	LayoutType      *LayoutType `json:"layoutType,omitempty"`
	Title           *string     `json:"title,omitempty"`
	Subtitle        *string     `json:"subtitle,omitempty"`
	Bullets         *[]string   `json:"bullets,omitempty"`
	SpeakerNotes    *string     `json:"speakerNotes,omitempty"`
	BackgroundColor *string     `json:"backgroundColor,omitempty"`
	TextColor       *string     `json:"textColor,omitempty"`
	AccentColor     *string     `json:"accentColor,omitempty"`
	Gradient        *string     `json:"gradient,omitempty"`
	RawMarkup       *string     `json:"rawMarkup,omitempty"`
	AudioURL        *string     `json:"audioUrl,omitempty"`
	Duration        *float64    `json:"duration,omitempty"`
}

// Apply copies the patch's set fields onto s.
func (p SlidePatch) Apply(s *Slide) {
	if p.LayoutType != nil {
		s.LayoutType = *p.LayoutType
	}
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Subtitle != nil {
		s.Subtitle = p.Subtitle
	}
	if p.Bullets != nil {
		s.Bullets = *p.Bullets
	}
	if p.SpeakerNotes != nil {
		s.SpeakerNotes = *p.SpeakerNotes
	}
	if p.BackgroundColor != nil {
		s.BackgroundColor = p.BackgroundColor
	}
	if p.TextColor != nil {
		s.TextColor = p.TextColor
	}
	if p.AccentColor != nil {
		s.AccentColor = p.AccentColor
	}
	if p.Gradient != nil {
		s.Gradient = p.Gradient
	}
	if p.RawMarkup != nil {
		s.RawMarkup = p.RawMarkup
	}
	if p.AudioURL != nil {
		s.AudioURL = p.AudioURL
	}
	if p.Duration != nil {
		s.Duration = p.Duration
	}
}

// BrandKit is a cross-cutting visual theme applied atop per-slide styling.
// It never overrides a slide's raw markup.
type BrandKit struct {
	Name           string  `json:"name"`
	PrimaryColor   *string `json:"primaryColor,omitempty"`
	SecondaryColor *string `json:"secondaryColor,omitempty"`
	FontFamily     *string `json:"fontFamily,omitempty"`
	LogoURL        *string `json:"logoUrl,omitempty"`
}
