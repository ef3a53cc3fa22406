// Package deck is the single owner of a project's mutable state. Every
// mutation goes through its API so the timeline and renderer always see a
// consistent slide sequence; nothing else writes slide fields directly.
package deck

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nickthelegend/podio-ai/internal/models"
)

// Deck holds one project. Reads return copies so callers can never mutate
// shared state behind the container's back.
type Deck struct {
	mu      sync.RWMutex
	project models.Project
}

func New() *Deck {
	return &Deck{project: models.Project{
		ID:     uuid.New(),
		Style:  "Modern",
		Format: models.FormatWidescreen,
	}}
}

// FromProject wraps an existing project in a fresh container.
func FromProject(p models.Project) *Deck {
	d := &Deck{}
	d.LoadProject(p)
	return d
}

// SetSlides replaces the whole slide sequence.
func (d *Deck) SetSlides(slides []models.Slide) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.project.Slides = append([]models.Slide(nil), slides...)
	d.project.UpdatedAt = time.Now()
}

// UpdateSlide applies a partial update to the slide at index. Results of
// concurrent generation calls are written back by index, so completion
// order never misaddresses a slide.
func (d *Deck) UpdateSlide(index int, patch models.SlidePatch) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if index < 0 || index >= len(d.project.Slides) {
		return fmt.Errorf("slide index %d out of range (%d slides)", index, len(d.project.Slides))
	}
	patch.Apply(&d.project.Slides[index])
	d.project.UpdatedAt = time.Now()
	return nil
}

// ReplaceSlide swaps out the slide at index wholesale, used when a caller
// has normalized a patched slide before committing it.
func (d *Deck) ReplaceSlide(index int, s models.Slide) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if index < 0 || index >= len(d.project.Slides) {
		return fmt.Errorf("slide index %d out of range (%d slides)", index, len(d.project.Slides))
	}
	d.project.Slides[index] = s
	d.project.UpdatedAt = time.Now()
	return nil
}

// LoadProject replaces the container's contents wholesale.
func (d *Deck) LoadProject(p models.Project) {
	d.mu.Lock()
	defer d.mu.Unlock()
	p.Slides = append([]models.Slide(nil), p.Slides...)
	d.project = p
}

// Reset clears the container back to a fresh empty project.
func (d *Deck) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.project = models.Project{
		ID:     uuid.New(),
		Style:  "Modern",
		Format: models.FormatWidescreen,
	}
}

// SetMeta updates topic, style, format and brand together.
func (d *Deck) SetMeta(topic, style string, format models.AspectFormat, brand *models.BrandKit) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.project.Topic = topic
	if style != "" {
		d.project.Style = style
	}
	if format != "" {
		d.project.Format = format
	}
	d.project.Brand = brand
	d.project.UpdatedAt = time.Now()
}

// Slides returns a copy of the current slide sequence.
func (d *Deck) Slides() []models.Slide {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]models.Slide(nil), d.project.Slides...)
}

// Slide returns a copy of one slide.
func (d *Deck) Slide(index int) (models.Slide, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if index < 0 || index >= len(d.project.Slides) {
		return models.Slide{}, fmt.Errorf("slide index %d out of range (%d slides)", index, len(d.project.Slides))
	}
	return d.project.Slides[index], nil
}

// Snapshot returns a copy of the whole project, slides included.
func (d *Deck) Snapshot() models.Project {
	d.mu.RLock()
	defer d.mu.RUnlock()
	p := d.project
	p.Slides = append([]models.Slide(nil), d.project.Slides...)
	return p
}

// Len is the current slide count.
func (d *Deck) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.project.Slides)
}
