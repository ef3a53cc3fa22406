package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nickthelegend/podio-ai/internal/models"
	"github.com/nickthelegend/podio-ai/internal/system"
	"github.com/nickthelegend/podio-ai/internal/timing"
	"github.com/nickthelegend/podio-ai/internal/tts"
	"github.com/nickthelegend/podio-ai/internal/utils"
	"github.com/nickthelegend/podio-ai/internal/validate"
)

// GenerateSlidesRequest is the request body for deck generation.
type GenerateSlidesRequest struct {
	Topic      string              `json:"topic" validate:"required"`
	Style      string              `json:"style"`
	SlideCount int                 `json:"slideCount"`
	Format     models.AspectFormat `json:"format"`
	Brand      *models.BrandKit    `json:"brand,omitempty"`
}

// GenerateSlides godoc
// @Summary Generate a slide deck
// @Description Asks the model for a deck on the given topic, validates the payload and loads it into the working deck.
// @Tags slides
// @Accept  json
// @Produce  json
// @Param   request body GenerateSlidesRequest true "Topic and styling"
// @Success 201 {object} map[string]interface{} "Deck generated successfully"
// @Failure 400 {object} map[string]interface{} "Missing or malformed topic"
// @Failure 422 {object} map[string]interface{} "Generated deck failed validation"
// @Failure 502 {object} map[string]interface{} "Model call failed"
// @Router /slides/generate [post]
func (h *ApplicationHandler) GenerateSlides(c *fiber.Ctx) error {
	req := new(GenerateSlidesRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest,
			fmt.Sprintf("Cannot parse request JSON: %v", err))
	}

	req.Topic = utils.SanitizeInput(req.Topic)
	if req.Topic == "" {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Field 'topic' is required")
	}
	if req.Style == "" {
		req.Style = "Modern"
	}

	raw, err := h.Generator.GenerateSlides(c.Context(), req.Topic, req.Style, req.SlideCount)
	if err != nil {
		h.Logger.WithError(err).Error("Slide generation failed")
		return utils.RespondWithError(c, fiber.StatusBadGateway,
			fmt.Sprintf("Slide generation failed: %v", err))
	}

	slides, err := validate.Deck(raw, validate.Options{})
	if err != nil {
		h.Logger.WithError(err).Warn("Generated deck failed validation")
		return utils.RespondWithError(c, fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Generated deck failed validation: %v", err))
	}

	h.Deck.Reset()
	h.Deck.SetMeta(req.Topic, req.Style, req.Format, req.Brand)
	h.Deck.SetSlides(slides)

	return utils.RespondWithJSON(c, fiber.StatusCreated, "Deck generated successfully", fiber.Map{
		"slides":  slides,
		"project": h.Deck.Snapshot(),
	})
}

// GetSlides godoc
// @Summary Get the working deck
// @Description Returns the working deck with its resolved timeline.
// @Tags slides
// @Produce  json
// @Success 200 {object} map[string]interface{} "Deck retrieved successfully"
// @Router /slides [get]
func (h *ApplicationHandler) GetSlides(c *fiber.Ctx) error {
	slides := h.Deck.Slides()
	tl := timing.Build(slides)
	return utils.RespondWithJSON(c, fiber.StatusOK, "Deck retrieved successfully", fiber.Map{
		"slides":       slides,
		"totalFrames":  tl.TotalFrames,
		"totalSeconds": tl.TotalSeconds(),
	})
}

// UpdateSlide godoc
// @Summary Update one slide
// @Description Applies a partial update to one slide in the working deck. The patched slide passes the same validation as generated decks.
// @Tags slides
// @Accept  json
// @Produce  json
// @Param   index     path  int               true  "Slide index"
// @Param   sanitized query string            false "Must be true when the patch carries raw markup"
// @Param   patch     body  models.SlidePatch true  "Fields to update"
// @Success 200 {object} map[string]interface{} "Slide updated successfully"
// @Failure 400 {object} map[string]interface{} "Malformed patch or ungated raw markup"
// @Failure 404 {object} map[string]interface{} "Slide index out of range"
// @Failure 422 {object} map[string]interface{} "Patched slide failed validation"
// @Router /slides/{index} [patch]
func (h *ApplicationHandler) UpdateSlide(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest,
			fmt.Sprintf("Invalid slide index %q", c.Params("index")))
	}

	patch := new(models.SlidePatch)
	if err := c.BodyParser(patch); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest,
			fmt.Sprintf("Cannot parse patch JSON: %v", err))
	}

	// Raw markup through this endpoint comes from the editor, not the
	// model, so the caller must flag it explicitly.
	if patch.RawMarkup != nil && c.Query("sanitized") != "true" {
		return utils.RespondWithError(c, fiber.StatusBadRequest,
			"Raw markup updates require sanitized=true")
	}

	slide, err := h.Deck.Slide(index)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusNotFound, err.Error())
	}
	patch.Apply(&slide)

	// New markup was gated above; markup already on the slide entered
	// through a trusted path, so validation may admit it either way.
	cleaned, err := validate.Slide(slide, validate.Options{AllowRawMarkup: true})
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Patched slide failed validation: %v", err))
	}

	if err := h.Deck.ReplaceSlide(index, cleaned); err != nil {
		return utils.RespondWithError(c, fiber.StatusNotFound, err.Error())
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, "Slide updated successfully", cleaned)
}

// SynthesizeDeck godoc
// @Summary Synthesize deck narration
// @Description Generates narration audio for every slide with speaker notes, measures real durations and writes both back into the deck.
// @Tags slides
// @Produce  json
// @Success 200 {object} map[string]interface{} "Narration synthesized successfully"
// @Failure 400 {object} map[string]interface{} "Deck is empty"
// @Failure 502 {object} map[string]interface{} "Synthesis failed"
// @Failure 503 {object} map[string]interface{} "TTS is not configured"
// @Router /slides/synthesize [post]
func (h *ApplicationHandler) SynthesizeDeck(c *fiber.Ctx) error {
	if !h.TTS.Enabled() {
		return utils.RespondWithError(c, fiber.StatusServiceUnavailable, "TTS is not configured")
	}
	if h.Deck.Len() == 0 {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Deck is empty")
	}

	batch := h.BatchSize
	if batch <= 0 {
		batch = system.SynthesisBatchSize()
	}

	if err := tts.SynthesizeDeck(c.Context(), h.TTS, h.Deck, h.Store, batch); err != nil {
		h.Logger.WithError(err).Error("Deck synthesis failed")
		status := fiber.StatusBadGateway
		if strings.Contains(err.Error(), "not configured") {
			status = fiber.StatusServiceUnavailable
		}
		return utils.RespondWithError(c, status, fmt.Sprintf("Synthesis failed: %v", err))
	}

	slides := h.Deck.Slides()
	tl := timing.Build(slides)
	return utils.RespondWithJSON(c, fiber.StatusOK, "Deck synthesized successfully", fiber.Map{
		"slides":       slides,
		"totalFrames":  tl.TotalFrames,
		"totalSeconds": tl.TotalSeconds(),
	})
}
