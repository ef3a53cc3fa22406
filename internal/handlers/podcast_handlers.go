package handlers

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/nickthelegend/podio-ai/internal/models"
	"github.com/nickthelegend/podio-ai/internal/system"
	"github.com/nickthelegend/podio-ai/internal/tts"
	"github.com/nickthelegend/podio-ai/internal/utils"
	"github.com/nickthelegend/podio-ai/internal/validate"
)

// GenerateScriptRequest is the request body for podcast script generation.
type GenerateScriptRequest struct {
	Topic   string `json:"topic" validate:"required"`
	Minutes int    `json:"minutes"`
}

// GenerateScript godoc
// @Summary Generate a podcast script
// @Description Asks the model for a two-host dialogue on the topic.
// @Tags podcast
// @Accept  json
// @Produce  json
// @Param request body handlers.GenerateScriptRequest true "Topic and target length"
// @Success 201 {object} map[string]interface{} "Script generated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 422 {object} map[string]interface{} "Generated script failed validation"
// @Failure 502 {object} map[string]interface{} "Script generation failed"
// @Router /podcast/script [post]
func (h *ApplicationHandler) GenerateScript(c *fiber.Ctx) error {
	req := new(GenerateScriptRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest,
			fmt.Sprintf("Cannot parse request JSON: %v", err))
	}

	req.Topic = utils.SanitizeInput(req.Topic)
	if req.Topic == "" {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Field 'topic' is required")
	}

	raw, err := h.Generator.GeneratePodcastScript(c.Context(), req.Topic, req.Minutes)
	if err != nil {
		h.Logger.WithError(err).Error("Script generation failed")
		return utils.RespondWithError(c, fiber.StatusBadGateway,
			fmt.Sprintf("Script generation failed: %v", err))
	}

	script, err := validate.Script(raw)
	if err != nil {
		h.Logger.WithError(err).Warn("Generated script failed validation")
		return utils.RespondWithError(c, fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Generated script failed validation: %v", err))
	}

	return utils.RespondWithJSON(c, fiber.StatusCreated, "Script generated successfully", fiber.Map{
		"script": script,
	})
}

// RefineScriptRequest carries a script and a rewrite instruction.
type RefineScriptRequest struct {
	Script      []models.DialogueLine `json:"script" validate:"required"`
	Instruction string                `json:"instruction" validate:"required"`
}

// RefineScript godoc
// @Summary Refine a podcast script
// @Description Rewrites an existing dialogue per the instruction.
// @Tags podcast
// @Accept  json
// @Produce  json
// @Param request body handlers.RefineScriptRequest true "Script and rewrite instruction"
// @Success 200 {object} map[string]interface{} "Script refined successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 422 {object} map[string]interface{} "Refined script failed validation"
// @Failure 502 {object} map[string]interface{} "Script refinement failed"
// @Router /podcast/refine [post]
func (h *ApplicationHandler) RefineScript(c *fiber.Ctx) error {
	req := new(RefineScriptRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest,
			fmt.Sprintf("Cannot parse request JSON: %v", err))
	}
	if len(req.Script) == 0 {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Field 'script' is required")
	}
	req.Instruction = utils.SanitizeInput(req.Instruction)
	if req.Instruction == "" {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Field 'instruction' is required")
	}

	raw, err := h.Generator.RefineScript(c.Context(), req.Script, req.Instruction)
	if err != nil {
		h.Logger.WithError(err).Error("Script refinement failed")
		return utils.RespondWithError(c, fiber.StatusBadGateway,
			fmt.Sprintf("Script refinement failed: %v", err))
	}

	refined, err := validate.Script(raw)
	if err != nil {
		h.Logger.WithError(err).Warn("Refined script failed validation")
		return utils.RespondWithError(c, fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Refined script failed validation: %v", err))
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, "Script refined successfully", fiber.Map{
		"script": refined,
	})
}

// SynthesizePodcastRequest carries the final script, a language that
// selects per-speaker default voices, and optional explicit overrides.
type SynthesizePodcastRequest struct {
	Script   []models.DialogueLine `json:"script" validate:"required"`
	Language string                `json:"language,omitempty"`
	Voices   map[string]string     `json:"voices,omitempty"`
}

// SynthesizePodcast godoc
// @Summary Synthesize a podcast
// @Description Renders the dialogue to one MP3, uploads it and returns its URL.
// @Tags podcast
// @Accept  json
// @Produce  json
// @Param request body handlers.SynthesizePodcastRequest true "Script, language and voice overrides"
// @Success 201 {object} map[string]interface{} "Podcast synthesized successfully"
// @Failure 400 {object} map[string]interface{} "Invalid script"
// @Failure 502 {object} map[string]interface{} "Synthesis or upload failed"
// @Failure 503 {object} map[string]interface{} "TTS is not configured"
// @Router /podcast/synthesize [post]
//
// MP3 frames are self-delimiting, so the per-line segments concatenate
// directly in script order.
func (h *ApplicationHandler) SynthesizePodcast(c *fiber.Ctx) error {
	if !h.TTS.Enabled() {
		return utils.RespondWithError(c, fiber.StatusServiceUnavailable, "TTS is not configured")
	}

	req := new(SynthesizePodcastRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest,
			fmt.Sprintf("Cannot parse request JSON: %v", err))
	}
	script, err := validate.Script(req.Script)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest,
			fmt.Sprintf("Invalid script: %v", err))
	}

	batch := h.BatchSize
	if batch <= 0 {
		batch = system.SynthesisBatchSize()
	}

	voices := tts.ResolveVoices(req.Language, req.Voices)
	segments, err := tts.SynthesizePodcast(c.Context(), h.TTS, script, voices, batch)
	if err != nil {
		h.Logger.WithError(err).Error("Podcast synthesis failed")
		return utils.RespondWithError(c, fiber.StatusBadGateway,
			fmt.Sprintf("Podcast synthesis failed: %v", err))
	}

	combined := bytes.Join(segments, nil)
	url, err := h.Store.UploadAudio(c.Context(), "podcast.mp3", combined)
	if err != nil {
		h.Logger.WithError(err).Error("Podcast upload failed")
		return utils.RespondWithError(c, fiber.StatusBadGateway,
			fmt.Sprintf("Podcast upload failed: %v", err))
	}

	seconds, err := tts.ProbeBytes(combined)
	if err != nil {
		h.Logger.WithError(err).Warn("Could not probe podcast duration")
		seconds = 0
	}

	return utils.RespondWithJSON(c, fiber.StatusCreated, "Podcast synthesized successfully", fiber.Map{
		"audioUrl": url,
		"duration": seconds,
		"lines":    len(script),
	})
}
