// Package validate is the trust boundary for AI-produced slide payloads.
// Model output is parsed JSON but never trusted structure: every deck that
// enters the pipeline is normalized here first so the renderer downstream
// can assume well-formed slides.
package validate

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/nickthelegend/podio-ai/internal/models"
)

var validate = validator.New()

const (
	// MaxSlides caps deck size regardless of what the model returns.
	MaxSlides = 20
	// MaxBullets caps per-slide bullet count.
	MaxBullets = 8
)

// slideEnvelope mirrors the JSON shape the generation prompt asks for.
// Validation tags catch the structural failures we have actually seen in
// model output: missing titles, absent layout types, bullet strings that
// are only whitespace.
type slideEnvelope struct {
	LayoutType   string   `json:"layoutType" validate:"required"`
	Title        string   `json:"title" validate:"required,min=1,max=200"`
	Subtitle     *string  `json:"subtitle,omitempty"`
	Bullets      []string `json:"bullets" validate:"max=16,dive,max=500"`
	SpeakerNotes string   `json:"speakerNotes" validate:"max=4000"`
}

// Options controls deck normalization.
type Options struct {
	// AllowRawMarkup admits slides carrying pre-sanitized markup. Payloads
	// straight from the model never set this; only trusted internal
	// callers (re-loading a persisted project) do.
	AllowRawMarkup bool
}

// Deck validates and normalizes a full slide sequence in place of the raw
// model output. It returns the cleaned slides or an error describing every
// offending slide.
func Deck(slides []models.Slide, opts Options) ([]models.Slide, error) {
	if len(slides) == 0 {
		return nil, fmt.Errorf("deck is empty")
	}
	if len(slides) > MaxSlides {
		slides = slides[:MaxSlides]
	}

	var problems []string
	out := make([]models.Slide, 0, len(slides))
	for i, s := range slides {
		cleaned, err := Slide(s, opts)
		if err != nil {
			problems = append(problems, fmt.Sprintf("slide %d: %v", i, err))
			continue
		}
		out = append(out, cleaned)
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("deck validation failed: %s", strings.Join(problems, "; "))
	}
	return out, nil
}

// Slide validates and normalizes one slide. Unknown layout types coerce to
// the content layout rather than failing the whole deck; a missing title
// is a hard error because every layout renders one.
func Slide(s models.Slide, opts Options) (models.Slide, error) {
	env := slideEnvelope{
		LayoutType:   string(s.LayoutType),
		Title:        strings.TrimSpace(s.Title),
		Subtitle:     s.Subtitle,
		Bullets:      s.Bullets,
		SpeakerNotes: s.SpeakerNotes,
	}
	if err := validate.Struct(env); err != nil {
		return models.Slide{}, describeFirst(err)
	}

	if s.RawMarkup != nil && !opts.AllowRawMarkup {
		return models.Slide{}, fmt.Errorf("raw markup is not accepted from this source")
	}

	s.Title = env.Title
	if !models.KnownLayout(s.LayoutType) {
		s.LayoutType = models.LayoutContent
	}
	s.Bullets = cleanBullets(s.Bullets)
	s.SpeakerNotes = strings.TrimSpace(s.SpeakerNotes)

	if s.Subtitle != nil {
		sub := strings.TrimSpace(*s.Subtitle)
		if sub == "" {
			s.Subtitle = nil
		} else {
			s.Subtitle = &sub
		}
	}

	if s.Duration != nil && *s.Duration <= 0 {
		s.Duration = nil
	}

	return s, nil
}

// cleanBullets trims entries, drops empties and caps the count.
func cleanBullets(bullets []string) []string {
	out := make([]string, 0, len(bullets))
	for _, b := range bullets {
		b = strings.TrimSpace(b)
		if b == "" {
			continue
		}
		out = append(out, b)
		if len(out) == MaxBullets {
			break
		}
	}
	return out
}

func describeFirst(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}
	v := verrs[0]
	return fmt.Errorf("field '%s' failed on the '%s' tag", v.Field(), v.Tag())
}
