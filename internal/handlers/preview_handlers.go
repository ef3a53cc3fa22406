package handlers

import (
	"bytes"
	"fmt"
	"image/png"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/nickthelegend/podio-ai/internal/player"
	"github.com/nickthelegend/podio-ai/internal/timing"
	"github.com/nickthelegend/podio-ai/internal/utils"
)

func (h *ApplicationHandler) newPlayer() *player.Player {
	snapshot := h.Deck.Snapshot()
	width, height := snapshot.Format.Dimensions()
	return player.New(timing.Build(snapshot.Slides), snapshot.Brand, width, height)
}

// PreviewManifest godoc
// @Summary Playback manifest for the working deck
// @Description Returns frame rate, total frames and per-segment boundaries with audio URLs.
// @Tags preview
// @Produce  json
// @Success 200 {object} map[string]interface{} "Manifest built successfully"
// @Failure 400 {object} map[string]interface{} "Deck is empty"
// @Router /preview/manifest [get]
func (h *ApplicationHandler) PreviewManifest(c *fiber.Ctx) error {
	if h.Deck.Len() == 0 {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Deck is empty")
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, "Manifest built successfully",
		h.newPlayer().Manifest())
}

// PreviewFrame godoc
// @Summary Render one composition frame
// @Description Renders one global frame of the composition as PNG.
// @Tags preview
// @Produce  png
// @Param frame path int true "Global frame number"
// @Success 200 {string} binary "PNG image"
// @Failure 400 {object} map[string]interface{} "Invalid frame number or empty deck"
// @Router /preview/frames/{frame} [get]
//
// Any frame is addressable directly, so scrubbing needs no playback state.
func (h *ApplicationHandler) PreviewFrame(c *fiber.Ctx) error {
	frame, err := strconv.Atoi(c.Params("frame"))
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest,
			fmt.Sprintf("Invalid frame number %q", c.Params("frame")))
	}
	if h.Deck.Len() == 0 {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Deck is empty")
	}

	img, err := h.newPlayer().Frame(frame)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, err.Error())
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError,
			fmt.Sprintf("Encoding frame: %v", err))
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(buf.Bytes())
}

// PreviewStill godoc
// @Summary Render a slide still
// @Description Renders a slide in its settled state, used for thumbnails and the editor's slide list.
// @Tags preview
// @Produce  png
// @Param index path int true "Slide index"
// @Success 200 {string} binary "PNG image"
// @Failure 400 {object} map[string]interface{} "Invalid slide index or empty deck"
// @Router /preview/stills/{index} [get]
func (h *ApplicationHandler) PreviewStill(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest,
			fmt.Sprintf("Invalid slide index %q", c.Params("index")))
	}
	if h.Deck.Len() == 0 {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Deck is empty")
	}

	img, err := h.newPlayer().Still(index)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, err.Error())
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError,
			fmt.Sprintf("Encoding still: %v", err))
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(buf.Bytes())
}
