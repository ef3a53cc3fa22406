// Package timing derives playback durations from narration text and lays
// slides out on a contiguous, frame-indexed timeline.
package timing

import (
	"math"
	"strings"

	"github.com/nickthelegend/podio-ai/internal/models"
)

// The estimator floor and the timeline fallback are derived from the same
// pair of constants so the two can never drift apart.
const (
	FramesPerSecond = 30
	MinSlideSeconds = 5.0
	WordsPerSecond  = 2.5

	// FallbackFrames is the placement length for a slide whose duration
	// could not be resolved: MinSlideSeconds at FramesPerSecond.
	FallbackFrames = int(MinSlideSeconds) * FramesPerSecond
)

// EstimateDuration returns a playback duration in seconds for a slide.
// A known real audio duration is authoritative and returned unmodified.
// Otherwise the narration length is divided by the speaking rate, floored
// at MinSlideSeconds, so the result is always positive even for empty text.
func EstimateDuration(speakerNotes string, audioSeconds float64) float64 {
	if audioSeconds > 0 {
		return audioSeconds
	}
	words := len(strings.Fields(speakerNotes))
	seconds := float64(words) / WordsPerSecond
	if seconds < MinSlideSeconds {
		return MinSlideSeconds
	}
	return seconds
}

// ResolveDuration returns the duration the timeline should use for s:
// the slide's own duration when set, else the narration estimate.
func ResolveDuration(s models.Slide) float64 {
	if s.Duration != nil && *s.Duration > 0 {
		return *s.Duration
	}
	return EstimateDuration(s.SpeakerNotes, 0)
}

// Segment is one slide's contiguous frame range on the timeline.
type Segment struct {
	Slide      models.Slide
	Index      int
	StartFrame int
	FrameCount int
}

// Contains reports whether global frame f falls inside the segment. A frame
// exactly equal to StartFrame belongs to this segment, not the previous one.
func (seg Segment) Contains(f int) bool {
	return f >= seg.StartFrame && f < seg.StartFrame+seg.FrameCount
}

// Timeline is the derived placement of a slide sequence: ordered, gapless
// and non-overlapping. It is rebuilt from the slides, never stored.
type Timeline struct {
	Segments    []Segment
	TotalFrames int
}

// Build lays the slides out in array order. Each slide's start frame is the
// running total of all prior frame counts; frame count is ceil(duration*fps).
func Build(slides []models.Slide) Timeline {
	tl := Timeline{Segments: make([]Segment, 0, len(slides))}
	cursor := 0
	for i, s := range slides {
		frames := FallbackFrames
		if d := ResolveDuration(s); d > 0 {
			frames = int(math.Ceil(d * FramesPerSecond))
		}
		tl.Segments = append(tl.Segments, Segment{
			Slide:      s,
			Index:      i,
			StartFrame: cursor,
			FrameCount: frames,
		})
		cursor += frames
	}
	tl.TotalFrames = cursor
	return tl
}

// SegmentAt resolves the segment owning global frame f.
func (tl Timeline) SegmentAt(f int) (Segment, bool) {
	if f < 0 || f >= tl.TotalFrames {
		return Segment{}, false
	}
	// Segments are sorted by StartFrame; binary search the owner.
	lo, hi := 0, len(tl.Segments)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		seg := tl.Segments[mid]
		switch {
		case f < seg.StartFrame:
			hi = mid - 1
		case f >= seg.StartFrame+seg.FrameCount:
			lo = mid + 1
		default:
			return seg, true
		}
	}
	return Segment{}, false
}

// TotalSeconds is the timeline length in seconds at the fixed frame rate.
func (tl Timeline) TotalSeconds() float64 {
	return float64(tl.TotalFrames) / FramesPerSecond
}
