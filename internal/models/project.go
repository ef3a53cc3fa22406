package models

import (
	"time"

	"github.com/google/uuid"
)

// AspectFormat is the aspect-ratio format a project is authored in.
type AspectFormat string

const (
	FormatWidescreen AspectFormat = "16:9"
	FormatPortrait   AspectFormat = "4:5"
	FormatVertical   AspectFormat = "9:16"
)

// Dimensions returns the fixed pixel size for the format. Unknown formats
// fall back to widescreen so an export never runs with a zero canvas.
func (f AspectFormat) Dimensions() (width, height int) {
	switch f {
	case FormatPortrait:
		return 1080, 1350
	case FormatVertical:
		return 720, 1280
	default:
		return 1280, 720
	}
}

// Landscape reports whether document pages for this format are landscape.
// Only 16:9 is; the portrait formats keep portrait orientation.
func (f AspectFormat) Landscape() bool {
	w, h := f.Dimensions()
	return w > h
}

// Project is the persisted aggregate: topic, styling, brand and the full
// slide sequence. It is always read and written wholesale.
type Project struct {
	ID        uuid.UUID    `json:"id,omitempty"`
	UserID    *string      `json:"user_id,omitempty"`
	Topic     string       `json:"topic"`
	Style     string       `json:"style"`
	Format    AspectFormat `json:"format"`
	Brand     *BrandKit    `json:"brand,omitempty"`
	Slides    []Slide      `json:"slides"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// HasVideo reports whether at least one slide carries synthesized narration.
func (p Project) HasVideo() bool {
	for _, s := range p.Slides {
		if s.AudioURL != nil && *s.AudioURL != "" {
			return true
		}
	}
	return false
}

// DialogueLine is one speaker turn in a podcast script.
type DialogueLine struct {
	Speaker string `json:"speaker"`
	Line    string `json:"line"`
}
