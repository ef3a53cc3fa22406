package export

import (
	"errors"
	"fmt"
	"image"
	"testing"

	"github.com/nickthelegend/podio-ai/internal/models"
	"github.com/nickthelegend/podio-ai/internal/player"
	"github.com/nickthelegend/podio-ai/internal/timing"
)

type fakeSource struct {
	total  int
	failAt int // frame index whose render fails; -1 for never
}

func (f *fakeSource) TotalFrames() int { return f.total }

func (f *fakeSource) Frame(global int) (*image.RGBA, error) {
	if global == f.failAt {
		return nil, fmt.Errorf("rasterizer rejected frame %d", global)
	}
	return image.NewRGBA(image.Rect(0, 0, 4, 4)), nil
}

type fakeSink struct {
	frames  int
	closed  bool
	aborted bool
	failAt  int // frame ordinal whose write fails; -1 for never
}

func (f *fakeSink) WriteFrame(*image.RGBA) error {
	if f.frames == f.failAt {
		return errors.New("encoder pipe broke")
	}
	f.frames++
	return nil
}

func (f *fakeSink) Close() error { f.closed = true; return nil }
func (f *fakeSink) Abort()       { f.aborted = true }

func TestCaptureFramesComplete(t *testing.T) {
	src := &fakeSource{total: 300, failAt: -1}
	sink := &fakeSink{failAt: -1}

	var progress []float64
	err := CaptureFrames(src, sink, func(done, total int) {
		progress = append(progress, float64(done)/float64(total))
	})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if sink.frames != 300 {
		t.Errorf("captured %d frames, want 300", sink.frames)
	}
	if !sink.closed || sink.aborted {
		t.Errorf("sink closed=%v aborted=%v, want closed and not aborted", sink.closed, sink.aborted)
	}
	if len(progress) != 300 || progress[len(progress)-1] != 1.0 {
		t.Errorf("progress reported %d steps ending at %v", len(progress), progress[len(progress)-1])
	}
	// Progress fractions are monotonic.
	for i := 1; i < len(progress); i++ {
		if progress[i] <= progress[i-1] {
			t.Fatalf("progress not monotonic at step %d", i)
		}
	}
}

func TestCaptureFramesAbortsWholeExportOnRenderError(t *testing.T) {
	// Two 5s slides; the failure lands on slide 2's local frame 40.
	src := &fakeSource{total: 300, failAt: 150 + 40}
	sink := &fakeSink{failAt: -1}

	err := CaptureFrames(src, sink, nil)
	if err == nil {
		t.Fatal("export should fail when a frame render fails")
	}
	if !sink.aborted {
		t.Error("sink not aborted; slide 1's frames would leak into output")
	}
	if sink.closed {
		t.Error("sink must not be finalized after an abort")
	}
}

func TestCaptureFramesAbortsOnEncoderError(t *testing.T) {
	src := &fakeSource{total: 60, failAt: -1}
	sink := &fakeSink{failAt: 10}

	if err := CaptureFrames(src, sink, nil); err == nil {
		t.Fatal("export should fail when the encoder write fails")
	}
	if !sink.aborted || sink.closed {
		t.Errorf("sink aborted=%v closed=%v after encoder error", sink.aborted, sink.closed)
	}
}

func TestCaptureFramesEmptyTimeline(t *testing.T) {
	sink := &fakeSink{failAt: -1}
	if err := CaptureFrames(&fakeSource{total: 0, failAt: -1}, sink, nil); err == nil {
		t.Fatal("empty timeline should be an error, not a zero-length video")
	}
	if !sink.aborted {
		t.Error("sink should be discarded for an empty timeline")
	}
}

func TestPlayerDrivesCapture(t *testing.T) {
	d := 5.0
	tl := timing.Build([]models.Slide{
		{LayoutType: models.LayoutTitle, Title: "a", Duration: &d},
	})
	p := player.New(tl, nil, 64, 36)
	sink := &fakeSink{failAt: -1}

	if err := CaptureFrames(p, sink, nil); err != nil {
		t.Fatalf("player-driven capture failed: %v", err)
	}
	if sink.frames != tl.TotalFrames {
		t.Errorf("captured %d frames, want timeline length %d", sink.frames, tl.TotalFrames)
	}
}
