package tts

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/nickthelegend/podio-ai/internal/config"
	"github.com/nickthelegend/podio-ai/internal/deck"
	"github.com/nickthelegend/podio-ai/internal/models"
)

// Uploader stores one audio blob and returns its public URL.
type Uploader interface {
	UploadAudio(ctx context.Context, name string, audio []byte) (string, error)
}

// SynthesizeDeck generates narration for every slide that has speaker
// notes. Synthesis runs concurrently but each result is written back to
// its own slide index, so completion order cannot misaddress anything.
// One failed slide fails the whole pass; partial narration would produce
// a deck whose timeline mixes measured and estimated durations silently.
func SynthesizeDeck(ctx context.Context, c *Client, d *deck.Deck, up Uploader, concurrency int) error {
	if !c.Enabled() {
		return fmt.Errorf("tts is not configured")
	}
	if concurrency < 1 {
		concurrency = 1
	}

	slides := d.Slides()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i := range slides {
		i := i
		notes := slides[i].SpeakerNotes
		if notes == "" {
			continue
		}
		g.Go(func() error {
			audio, err := c.Synthesize(ctx, notes)
			if err != nil {
				return fmt.Errorf("slide %d: %w", i, err)
			}

			seconds, err := ProbeBytes(audio)
			if err != nil {
				return fmt.Errorf("slide %d: probing audio: %w", i, err)
			}

			url, err := up.UploadAudio(ctx, fmt.Sprintf("slide-%d.mp3", i), audio)
			if err != nil {
				return fmt.Errorf("slide %d: uploading audio: %w", i, err)
			}

			return d.UpdateSlide(i, models.SlidePatch{
				AudioURL: &url,
				Duration: &seconds,
			})
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	config.Log.WithField("slides", len(slides)).Info("Deck narration synthesized")
	return nil
}

// SpeakerVoices maps podcast speaker names to voice IDs. Unknown speakers
// fall back to the client's default voice.
type SpeakerVoices map[string]string

// SynthesizePodcast renders a dialogue line by line and returns the audio
// segments in script order, ready for concatenation.
func SynthesizePodcast(ctx context.Context, c *Client, lines []models.DialogueLine, voices SpeakerVoices, concurrency int) ([][]byte, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("tts is not configured")
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("script is empty")
	}
	if concurrency < 1 {
		concurrency = 1
	}

	segments := make([][]byte, len(lines))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			voice := voices[line.Speaker]
			var (
				audio []byte
				err   error
			)
			if voice == "" {
				audio, err = c.Synthesize(ctx, line.Line)
			} else {
				audio, err = c.SynthesizeVoice(ctx, line.Line, voice)
			}
			if err != nil {
				return fmt.Errorf("line %d (%s): %w", i, line.Speaker, err)
			}
			segments[i] = audio
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return segments, nil
}
