// Package export turns a built composition into deliverable artifacts: an
// encoded video walked frame by frame, or a paginated document drawn one
// page per slide.
package export

import (
	"fmt"
	"image"

	"github.com/nickthelegend/podio-ai/internal/models"
	"github.com/nickthelegend/podio-ai/internal/player"
	"github.com/nickthelegend/podio-ai/internal/timing"
)

// FrameSource yields rendered frames by global frame number. The player
// satisfies this.
type FrameSource interface {
	TotalFrames() int
	Frame(global int) (*image.RGBA, error)
}

var _ FrameSource = (*player.Player)(nil)

// FrameSink consumes frames in order. Close finalizes the output; Abort
// discards everything written so far.
type FrameSink interface {
	WriteFrame(*image.RGBA) error
	Close() error
	Abort()
}

// ProgressFunc observes export progress as captured/total frames. Reporting
// progress is part of the exporter's contract, not optional telemetry.
type ProgressFunc func(done, total int)

// CaptureFrames walks every global frame from 0 to the timeline length,
// rendering and appending each to the sink strictly in sequence. The loop
// is sequential by design: source and sink share the single live canvas
// and encoder session.
//
// Any single-frame failure aborts the whole export; no partial output
// survives. There is no degraded mode.
func CaptureFrames(src FrameSource, sink FrameSink, onProgress ProgressFunc) error {
	total := src.TotalFrames()
	if total == 0 {
		sink.Abort()
		return fmt.Errorf("nothing to export: timeline is empty")
	}

	for f := 0; f < total; f++ {
		img, err := src.Frame(f)
		if err != nil {
			sink.Abort()
			return fmt.Errorf("rendering frame %d: %w", f, err)
		}
		if err := sink.WriteFrame(img); err != nil {
			sink.Abort()
			return fmt.Errorf("capturing frame %d: %w", f, err)
		}
		if onProgress != nil {
			onProgress(f+1, total)
		}
	}

	if err := sink.Close(); err != nil {
		return fmt.Errorf("finalizing video stream: %w", err)
	}
	return nil
}

// ExportVideo renders the slide deck into an encoded video file at the
// pixel resolution fixed by the project's aspect format.
func ExportVideo(slides []models.Slide, brand *models.BrandKit, format models.AspectFormat,
	profile EncoderProfile, outPath string, onProgress ProgressFunc) error {

	width, height := format.Dimensions()
	tl := timing.Build(slides)
	p := player.New(tl, brand, width, height)

	sink, err := StartFFmpegSink(profile, width, height, outPath)
	if err != nil {
		return fmt.Errorf("opening encoder session: %w", err)
	}
	return CaptureFrames(p, sink, onProgress)
}
