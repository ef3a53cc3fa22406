package player

import (
	"bytes"
	"testing"

	"github.com/nickthelegend/podio-ai/internal/models"
	"github.com/nickthelegend/podio-ai/internal/timing"
)

func testTimeline() timing.Timeline {
	d1, d2 := 5.0, 10.0
	audio := "https://cdn.example.com/a1.mp3"
	return timing.Build([]models.Slide{
		{LayoutType: models.LayoutTitle, Title: "one", Duration: &d1, AudioURL: &audio},
		{LayoutType: models.LayoutContent, Title: "two", Bullets: []string{"a", "b", "c"}, Duration: &d2},
	})
}

func TestFrameBoundaryOwnership(t *testing.T) {
	p := New(testTimeline(), nil, 128, 72)

	// Frame 150 is slide 2's start; its render must differ from slide 1's
	// last frame because a different slide is on the canvas.
	last, err := p.Frame(149)
	if err != nil {
		t.Fatal(err)
	}
	first, err := p.Frame(150)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(last.Pix, first.Pix) {
		t.Error("boundary frame rendered the previous slide")
	}
}

func TestSeekIsArbitrary(t *testing.T) {
	p := New(testTimeline(), nil, 128, 72)

	// Jump backward after seeking forward; output must depend only on the
	// requested frame, not on seek order.
	forward, err := p.Frame(200)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Frame(10); err != nil {
		t.Fatal(err)
	}
	again, err := p.Frame(200)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(forward.Pix, again.Pix) {
		t.Error("re-seeking the same frame produced different pixels")
	}
}

func TestFrameOutOfRange(t *testing.T) {
	p := New(testTimeline(), nil, 128, 72)
	if _, err := p.Frame(-1); err == nil {
		t.Error("negative frame should error")
	}
	if _, err := p.Frame(p.TotalFrames()); err == nil {
		t.Error("frame past the timeline should error")
	}
}

func TestAudioCueAlignment(t *testing.T) {
	p := New(testTimeline(), nil, 128, 72)

	cue := p.AudioCueAt(0)
	if cue == nil || cue.SlideIndex != 0 || cue.LocalFrame != 0 {
		t.Fatalf("cue at frame 0 = %+v", cue)
	}

	cue = p.AudioCueAt(60)
	if cue == nil || cue.LocalFrame != 60 {
		t.Fatalf("cue at frame 60 = %+v", cue)
	}

	// Slide 2 has no audio.
	if cue := p.AudioCueAt(150); cue != nil {
		t.Errorf("slide without audio returned cue %+v", cue)
	}
}

func TestManifest(t *testing.T) {
	p := New(testTimeline(), nil, 128, 72)
	m := p.Manifest()
	if m.FPS != timing.FramesPerSecond || m.TotalFrames != 450 {
		t.Errorf("manifest header = %+v", m)
	}
	if len(m.Segments) != 2 || m.Segments[1].StartFrame != 150 {
		t.Errorf("manifest segments = %+v", m.Segments)
	}
	if m.Segments[0].AudioURL == nil {
		t.Error("manifest dropped the slide audio url")
	}
}
