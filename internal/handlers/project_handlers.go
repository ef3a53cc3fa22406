package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/nickthelegend/podio-ai/internal/store"
	"github.com/nickthelegend/podio-ai/internal/utils"
)

// SaveProject godoc
// @Summary Save the working deck
// @Description Persists the working deck as a project row.
// @Tags projects
// @Produce  json
// @Success 201 {object} map[string]interface{} "Project saved successfully"
// @Failure 400 {object} map[string]interface{} "Deck is empty"
// @Failure 503 {object} map[string]interface{} "Persistence is not configured"
// @Router /projects [post]
func (h *ApplicationHandler) SaveProject(c *fiber.Ctx) error {
	if !h.Store.Available() {
		return utils.RespondWithError(c, fiber.StatusServiceUnavailable, "Persistence is not configured")
	}
	if h.Deck.Len() == 0 {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Deck is empty")
	}

	saved, err := h.Store.SaveProject(h.Deck.Snapshot())
	if err != nil {
		h.Logger.WithError(err).Error("Project save failed")
		return utils.RespondWithError(c, fiber.StatusInternalServerError,
			fmt.Sprintf("Could not save project: %v", err))
	}

	h.Deck.LoadProject(saved)
	return utils.RespondWithJSON(c, fiber.StatusCreated, "Project saved successfully", saved)
}

// ListProjects godoc
// @Summary List all projects
// @Description Returns all persisted projects, newest first.
// @Tags projects
// @Produce  json
// @Success 200 {object} map[string]interface{} "Projects retrieved successfully"
// @Failure 503 {object} map[string]interface{} "Persistence is not configured"
// @Router /projects [get]
func (h *ApplicationHandler) ListProjects(c *fiber.Ctx) error {
	if !h.Store.Available() {
		return utils.RespondWithError(c, fiber.StatusServiceUnavailable, "Persistence is not configured")
	}

	projects, err := h.Store.ListProjects()
	if err != nil {
		h.Logger.WithError(err).Error("Project listing failed")
		return utils.RespondWithError(c, fiber.StatusInternalServerError,
			fmt.Sprintf("Could not retrieve projects: %v", err))
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, "Projects retrieved successfully", projects)
}

// GetProject godoc
// @Summary Get a project
// @Description Fetches one project by ID without touching the working deck.
// @Tags projects
// @Produce  json
// @Param   id path string true "Project ID"
// @Success 200 {object} map[string]interface{} "Project retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /projects/{id} [get]
func (h *ApplicationHandler) GetProject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest,
			fmt.Sprintf("Invalid project ID %q", c.Params("id")))
	}
	if !h.Store.Available() {
		return utils.RespondWithError(c, fiber.StatusServiceUnavailable, "Persistence is not configured")
	}

	project, err := h.Store.GetProject(id)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusNotFound, err.Error())
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, "Project retrieved successfully", project)
}

// LoadProject godoc
// @Summary Load a project into the working deck
// @Description Replaces the working deck with a persisted project.
// @Tags projects
// @Produce  json
// @Param   id path string true "Project ID"
// @Success 200 {object} map[string]interface{} "Project loaded successfully"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 503 {object} map[string]interface{} "Persistence is not configured"
// @Router /projects/{id}/load [post]
func (h *ApplicationHandler) LoadProject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest,
			fmt.Sprintf("Invalid project ID %q", c.Params("id")))
	}
	if !h.Store.Available() {
		return utils.RespondWithError(c, fiber.StatusServiceUnavailable, "Persistence is not configured")
	}

	project, err := h.Store.GetProject(id)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusNotFound, err.Error())
	}

	h.Deck.LoadProject(project)
	return utils.RespondWithJSON(c, fiber.StatusOK, "Project loaded successfully", project)
}

// DeleteProject godoc
// @Summary Delete a project
// @Description Removes a persisted project.
// @Tags projects
// @Produce  json
// @Param   id path string true "Project ID"
// @Success 200 {object} map[string]interface{} "Project deleted successfully"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /projects/{id} [delete]
func (h *ApplicationHandler) DeleteProject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest,
			fmt.Sprintf("Invalid project ID %q", c.Params("id")))
	}
	if !h.Store.Available() {
		return utils.RespondWithError(c, fiber.StatusServiceUnavailable, "Persistence is not configured")
	}

	if err := h.Store.DeleteProject(id); err != nil {
		h.Logger.WithError(err).Error("Project deletion failed")
		return utils.RespondWithError(c, fiber.StatusInternalServerError,
			fmt.Sprintf("Could not delete project: %v", err))
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, "Project deleted successfully", fiber.Map{
		"id": id,
	})
}

// ShareProject godoc
// @Summary Share a project
// @Description Returns the share link, or a QR code rendering of it when format=png.
// @Tags projects
// @Produce  json
// @Param   id path string true "Project ID"
// @Param   format query string false "Set to png for a QR code image"
// @Success 200 {object} map[string]interface{} "Share link generated"
// @Failure 400 {object} map[string]interface{} "Invalid project ID"
// @Router /projects/{id}/share [get]
func (h *ApplicationHandler) ShareProject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest,
			fmt.Sprintf("Invalid project ID %q", c.Params("id")))
	}

	if c.Query("format") == "png" {
		png, err := store.ShareQR(h.Cfg.ShareBaseURL, id, c.QueryInt("size", 256))
		if err != nil {
			return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
		}
		c.Set(fiber.HeaderContentType, "image/png")
		return c.Send(png)
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, "Share link generated", fiber.Map{
		"url": store.ShareURL(h.Cfg.ShareBaseURL, id),
	})
}
