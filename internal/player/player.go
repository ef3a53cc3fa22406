// Package player drives the slide renderer across a built timeline: it
// resolves which slide owns a global frame, translates the frame into that
// slide's local offset and renders it. Seeking is arbitrary, not just
// forward playback.
package player

import (
	"fmt"
	"image"

	"github.com/nickthelegend/podio-ai/internal/models"
	"github.com/nickthelegend/podio-ai/internal/render"
	"github.com/nickthelegend/podio-ai/internal/timing"
)

// Player owns the single live canvas. Only one caller may seek or capture
// at a time; there is one thread of control, so no locking is needed.
type Player struct {
	timeline   timing.Timeline
	brand      *models.BrandKit
	rasterizer *render.Rasterizer
}

func New(tl timing.Timeline, brand *models.BrandKit, width, height int) *Player {
	return &Player{
		timeline:   tl,
		brand:      brand,
		rasterizer: render.NewRasterizer(width, height),
	}
}

// TotalFrames is the loop bound exporters must use.
func (p *Player) TotalFrames() int {
	return p.timeline.TotalFrames
}

// Frame seeks to the given global frame and renders the owning slide at its
// local offset. A frame exactly on a slide's start boundary belongs to that
// slide, not the previous one.
func (p *Player) Frame(global int) (*image.RGBA, error) {
	seg, ok := p.timeline.SegmentAt(global)
	if !ok {
		return nil, fmt.Errorf("frame %d outside timeline of %d frames", global, p.timeline.TotalFrames)
	}
	local := global - seg.StartFrame
	tree := render.BuildTree(seg.Slide, p.brand, local, render.Animated)
	return p.rasterizer.Render(tree), nil
}

// Still renders the slide at index in settled static mode, used for
// thumbnails and editor previews.
func (p *Player) Still(index int) (*image.RGBA, error) {
	if index < 0 || index >= len(p.timeline.Segments) {
		return nil, fmt.Errorf("slide index %d out of range", index)
	}
	tree := render.BuildTree(p.timeline.Segments[index].Slide, p.brand, 0, render.Static)
	return p.rasterizer.Render(tree), nil
}

// AudioCue names the narration audio that should be playing at a global
// frame, aligned to the owning slide's local frame 0.
type AudioCue struct {
	URL        string `json:"url"`
	SlideIndex int    `json:"slideIndex"`
	StartFrame int    `json:"startFrame"`
	LocalFrame int    `json:"localFrame"`
}

// AudioCueAt returns the active cue for a frame, or nil when the owning
// slide has no synthesized narration.
func (p *Player) AudioCueAt(global int) *AudioCue {
	seg, ok := p.timeline.SegmentAt(global)
	if !ok || seg.Slide.AudioURL == nil || *seg.Slide.AudioURL == "" {
		return nil
	}
	return &AudioCue{
		URL:        *seg.Slide.AudioURL,
		SlideIndex: seg.Index,
		StartFrame: seg.StartFrame,
		LocalFrame: global - seg.StartFrame,
	}
}

// ManifestSegment is the wire shape a web player needs to drive playback
// without re-deriving the timeline.
type ManifestSegment struct {
	Index      int     `json:"index"`
	StartFrame int     `json:"startFrame"`
	FrameCount int     `json:"frameCount"`
	AudioURL   *string `json:"audioUrl,omitempty"`
}

// Manifest describes the whole composition for the interactive preview.
type Manifest struct {
	FPS         int               `json:"fps"`
	TotalFrames int               `json:"totalFrames"`
	Segments    []ManifestSegment `json:"segments"`
}

func (p *Player) Manifest() Manifest {
	m := Manifest{
		FPS:         timing.FramesPerSecond,
		TotalFrames: p.timeline.TotalFrames,
		Segments:    make([]ManifestSegment, 0, len(p.timeline.Segments)),
	}
	for _, seg := range p.timeline.Segments {
		m.Segments = append(m.Segments, ManifestSegment{
			Index:      seg.Index,
			StartFrame: seg.StartFrame,
			FrameCount: seg.FrameCount,
			AudioURL:   seg.Slide.AudioURL,
		})
	}
	return m
}
