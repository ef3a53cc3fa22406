package timing

import (
	"strings"
	"testing"

	"github.com/nickthelegend/podio-ai/internal/models"
)

func dur(v float64) *float64 { return &v }

func TestEstimateDurationFloor(t *testing.T) {
	cases := []struct {
		name  string
		notes string
		want  float64
	}{
		{"empty", "", 5},
		{"whitespace only", "   \n\t ", 5},
		{"short note", "Short note", 5},
		{"25 words", strings.Repeat("word ", 25), 10},
		{"50 words", strings.Repeat("word ", 50), 20},
	}

	for _, tc := range cases {
		got := EstimateDuration(tc.notes, 0)
		if got != tc.want {
			t.Errorf("%s: EstimateDuration = %v, want %v", tc.name, got, tc.want)
		}
		if got < MinSlideSeconds {
			t.Errorf("%s: duration %v below floor", tc.name, got)
		}
	}
}

func TestEstimateDurationAudioAuthoritative(t *testing.T) {
	// Real audio length wins even when it is below the heuristic floor.
	if got := EstimateDuration(strings.Repeat("word ", 100), 3.2); got != 3.2 {
		t.Errorf("audio duration not authoritative: got %v", got)
	}
}

func TestFallbackMatchesEstimatorFloor(t *testing.T) {
	if FallbackFrames != int(MinSlideSeconds)*FramesPerSecond {
		t.Fatalf("FallbackFrames %d diverged from floor %v at %d fps",
			FallbackFrames, MinSlideSeconds, FramesPerSecond)
	}

	tl := Build([]models.Slide{{Title: "untimed", SpeakerNotes: ""}})
	if tl.Segments[0].FrameCount != FallbackFrames {
		t.Errorf("unset duration placed at %d frames, want %d",
			tl.Segments[0].FrameCount, FallbackFrames)
	}
}

func TestBuildScenario(t *testing.T) {
	slides := []models.Slide{
		{Title: "a", Duration: dur(5)},
		{Title: "b", Duration: dur(10)},
		{Title: "c", Duration: dur(7)},
	}
	tl := Build(slides)

	wantStarts := []int{0, 150, 450}
	wantCounts := []int{150, 300, 210}
	for i, seg := range tl.Segments {
		if seg.StartFrame != wantStarts[i] || seg.FrameCount != wantCounts[i] {
			t.Errorf("segment %d: [%d,%d) want [%d,%d)",
				i, seg.StartFrame, seg.StartFrame+seg.FrameCount,
				wantStarts[i], wantStarts[i]+wantCounts[i])
		}
	}
	if tl.TotalFrames != 660 {
		t.Errorf("TotalFrames = %d, want 660", tl.TotalFrames)
	}
}

func TestBuildContiguous(t *testing.T) {
	slides := []models.Slide{
		{Title: "a", Duration: dur(3.4)},
		{Title: "b"}, // unresolved, fallback
		{Title: "c", Duration: dur(12.01)},
		{Title: "d", SpeakerNotes: strings.Repeat("word ", 40)},
		{Title: "e", Duration: dur(0.2)},
	}
	tl := Build(slides)

	sum := 0
	for i, seg := range tl.Segments {
		if seg.StartFrame != sum {
			t.Errorf("segment %d starts at %d, running total is %d", i, seg.StartFrame, sum)
		}
		if seg.FrameCount <= 0 {
			t.Errorf("segment %d has non-positive frame count %d", i, seg.FrameCount)
		}
		sum += seg.FrameCount
	}
	if tl.TotalFrames != sum {
		t.Errorf("TotalFrames = %d, sum of segments = %d", tl.TotalFrames, sum)
	}
}

func TestSegmentAtBoundaries(t *testing.T) {
	tl := Build([]models.Slide{
		{Title: "a", Duration: dur(5)},
		{Title: "b", Duration: dur(10)},
	})

	// A frame exactly on a start boundary belongs to the starting slide.
	seg, ok := tl.SegmentAt(150)
	if !ok || seg.Index != 1 {
		t.Errorf("frame 150 resolved to segment %d, want 1", seg.Index)
	}

	seg, ok = tl.SegmentAt(149)
	if !ok || seg.Index != 0 {
		t.Errorf("frame 149 resolved to segment %d, want 0", seg.Index)
	}

	if _, ok := tl.SegmentAt(-1); ok {
		t.Error("negative frame should not resolve")
	}
	if _, ok := tl.SegmentAt(tl.TotalFrames); ok {
		t.Error("frame == TotalFrames should not resolve")
	}
	if seg, ok := tl.SegmentAt(0); !ok || seg.Index != 0 {
		t.Error("frame 0 should resolve to the first segment")
	}
}

func TestBuildEmpty(t *testing.T) {
	tl := Build(nil)
	if tl.TotalFrames != 0 || len(tl.Segments) != 0 {
		t.Errorf("empty deck should produce an empty timeline, got %d frames", tl.TotalFrames)
	}
}
