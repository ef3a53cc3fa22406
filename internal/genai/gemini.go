// Package genai talks to the Gemini REST API. All content generation
// (slide decks, podcast scripts, refinements) goes through one client.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nickthelegend/podio-ai/internal/config"
	"github.com/nickthelegend/podio-ai/internal/models"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client is a Gemini generateContent client.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

// NewClient builds a Gemini client for the given API key and model.
func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 120 * time.Second},
	}
}

// generateContent request/response shapes, trimmed to the fields we use.

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature      float64 `json:"temperature,omitempty"`
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// generate sends one prompt and returns the first candidate's text.
func (c *Client) generate(ctx context.Context, prompt string, wantJSON bool) (string, error) {
	reqBody := generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	}
	if wantJSON {
		reqBody.GenerationConfig = &generationConfig{
			Temperature:      0.7,
			ResponseMIMEType: "application/json",
		}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshalling gemini request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling gemini: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading gemini response: %w", err)
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("unmarshalling gemini response: %w", err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("gemini error %d: %s", out.Error.Code, out.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

// GenerateSlides asks the model for a full deck on the topic. The result
// still has to pass validate.Deck before entering the pipeline.
func (c *Client) GenerateSlides(ctx context.Context, topic, style string, slideCount int) ([]models.Slide, error) {
	if slideCount <= 0 {
		slideCount = 6
	}
	prompt := slidesPrompt(topic, style, slideCount)

	text, err := c.generate(ctx, prompt, true)
	if err != nil {
		return nil, err
	}

	raw, err := ExtractJSON(text)
	if err != nil {
		return nil, fmt.Errorf("slide payload: %w", err)
	}

	var slides []models.Slide
	if err := json.Unmarshal([]byte(raw), &slides); err != nil {
		// Some responses wrap the array in {"slides": [...]}.
		var wrapped struct {
			Slides []models.Slide `json:"slides"`
		}
		if werr := json.Unmarshal([]byte(raw), &wrapped); werr != nil || len(wrapped.Slides) == 0 {
			return nil, fmt.Errorf("unmarshalling slides: %w", err)
		}
		slides = wrapped.Slides
	}

	config.Log.WithFields(map[string]interface{}{
		"topic":  topic,
		"slides": len(slides),
	}).Info("Generated slide deck")
	return slides, nil
}

// GeneratePodcastScript asks for a two-host dialogue on the topic.
func (c *Client) GeneratePodcastScript(ctx context.Context, topic string, minutes int) ([]models.DialogueLine, error) {
	if minutes <= 0 {
		minutes = 3
	}
	text, err := c.generate(ctx, podcastPrompt(topic, minutes), true)
	if err != nil {
		return nil, err
	}

	raw, err := ExtractJSON(text)
	if err != nil {
		return nil, fmt.Errorf("podcast payload: %w", err)
	}

	var lines []models.DialogueLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		var wrapped struct {
			Script []models.DialogueLine `json:"script"`
		}
		if werr := json.Unmarshal([]byte(raw), &wrapped); werr != nil || len(wrapped.Script) == 0 {
			return nil, fmt.Errorf("unmarshalling script: %w", err)
		}
		lines = wrapped.Script
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("model returned an empty script")
	}
	return lines, nil
}

// RefineScript rewrites an existing dialogue following an instruction,
// keeping the same speakers and line structure.
func (c *Client) RefineScript(ctx context.Context, lines []models.DialogueLine, instruction string) ([]models.DialogueLine, error) {
	current, err := json.Marshal(lines)
	if err != nil {
		return nil, err
	}
	text, err := c.generate(ctx, refinePrompt(string(current), instruction), true)
	if err != nil {
		return nil, err
	}

	raw, err := ExtractJSON(text)
	if err != nil {
		return nil, fmt.Errorf("refined payload: %w", err)
	}

	var refined []models.DialogueLine
	if err := json.Unmarshal([]byte(raw), &refined); err != nil {
		return nil, fmt.Errorf("unmarshalling refined script: %w", err)
	}
	if len(refined) == 0 {
		return nil, fmt.Errorf("model returned an empty refinement")
	}
	return refined, nil
}
