// Package tts synthesizes narration audio for slides and podcast scripts
// through an ElevenLabs-style REST API.
package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client calls the text-to-speech HTTP API.
type Client struct {
	apiKey  string
	baseURL string
	voiceID string
	http    *http.Client
}

// NewClient builds a TTS client. baseURL has no trailing slash.
func NewClient(apiKey, baseURL, voiceID string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		voiceID: voiceID,
		http:    &http.Client{Timeout: 90 * time.Second},
	}
}

// Enabled reports whether synthesis is configured.
func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != ""
}

type synthesizeRequest struct {
	Text          string         `json:"text"`
	ModelID       string         `json:"model_id"`
	VoiceSettings *voiceSettings `json:"voice_settings,omitempty"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

// Synthesize converts text to MP3 audio using the client's default voice.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	return c.SynthesizeVoice(ctx, text, c.voiceID)
}

// SynthesizeVoice converts text to MP3 audio with an explicit voice,
// used for multi-speaker podcast scripts.
func (c *Client) SynthesizeVoice(ctx context.Context, text, voiceID string) ([]byte, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("tts is not configured")
	}
	if text == "" {
		return nil, fmt.Errorf("nothing to synthesize")
	}

	payload, err := json.Marshal(synthesizeRequest{
		Text:    text,
		ModelID: "eleven_multilingual_v2",
		VoiceSettings: &voiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.75,
		},
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1/text-to-speech/%s", c.baseURL, voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling tts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("tts returned status %d: %s", resp.StatusCode, string(body))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading tts audio: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("tts returned empty audio")
	}
	return audio, nil
}
