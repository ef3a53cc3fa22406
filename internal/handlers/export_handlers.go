package handlers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/nickthelegend/podio-ai/internal/jobs"
	"github.com/nickthelegend/podio-ai/internal/models"
	"github.com/nickthelegend/podio-ai/internal/utils"
	"github.com/nickthelegend/podio-ai/internal/worker"
)

// ExportRequest optionally overrides the deck's aspect format.
type ExportRequest struct {
	Format models.AspectFormat `json:"format,omitempty"`
}

// ExportVideo godoc
// @Summary Export the deck as video
// @Description Submits a video export job for the working deck. The response is immediate; clients poll the job for progress.
// @Tags exports
// @Accept  json
// @Produce  json
// @Param   request body ExportRequest false "Optional format override"
// @Success 202 {object} map[string]interface{} "Export job submitted"
// @Failure 400 {object} map[string]interface{} "Deck is empty"
// @Failure 429 {object} map[string]interface{} "Job queue is full"
// @Router /export/video [post]
func (h *ApplicationHandler) ExportVideo(c *fiber.Ctx) error {
	return h.submitExport(c, models.JobTypeVideoExport)
}

// ExportDocument godoc
// @Summary Export the deck as PDF
// @Description Submits a PDF export job for the working deck.
// @Tags exports
// @Accept  json
// @Produce  json
// @Param   request body ExportRequest false "Optional format override"
// @Success 202 {object} map[string]interface{} "Export job submitted"
// @Failure 400 {object} map[string]interface{} "Deck is empty"
// @Router /export/document [post]
func (h *ApplicationHandler) ExportDocument(c *fiber.Ctx) error {
	return h.submitExport(c, models.JobTypeDocumentExport)
}

func (h *ApplicationHandler) submitExport(c *fiber.Ctx, jobType string) error {
	if h.Deck.Len() == 0 {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Deck is empty")
	}

	req := new(ExportRequest)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return utils.RespondWithError(c, fiber.StatusBadRequest,
				fmt.Sprintf("Cannot parse request JSON: %v", err))
		}
	}

	snapshot := h.Deck.Snapshot()
	format := snapshot.Format
	if req.Format != "" {
		format = req.Format
	}

	if err := os.MkdirAll(h.Cfg.ExportDir, 0o755); err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError,
			fmt.Sprintf("Could not prepare export directory: %v", err))
	}

	job := h.Registry.Create(jobType, snapshot.ID, format)

	var poolJob worker.Job
	switch jobType {
	case models.JobTypeVideoExport:
		poolJob = &jobs.ExportVideoJob{
			JobID:    job.ID,
			Slides:   snapshot.Slides,
			Brand:    snapshot.Brand,
			Format:   format,
			Profile:  h.Profile,
			OutPath:  filepath.Join(h.Cfg.ExportDir, job.ID.String()+".mp4"),
			Registry: h.Registry,
		}
	default:
		poolJob = &jobs.ExportDocumentJob{
			JobID:    job.ID,
			Slides:   snapshot.Slides,
			Brand:    snapshot.Brand,
			Format:   format,
			OutPath:  filepath.Join(h.Cfg.ExportDir, job.ID.String()+".pdf"),
			Registry: h.Registry,
		}
	}

	if err := h.Dispatcher.SubmitJob(poolJob); err != nil {
		h.Registry.MarkFailed(job.ID, err)
		return utils.RespondWithError(c, fiber.StatusTooManyRequests,
			fmt.Sprintf("Could not queue export: %v", err))
	}

	return utils.RespondWithJSON(c, fiber.StatusAccepted, "Export job submitted", job)
}

// GetJob godoc
// @Summary Get export job status
// @Description Returns the current state of an export job.
// @Tags exports
// @Produce  json
// @Param   id path string true "Job ID"
// @Success 200 {object} map[string]interface{} "Job retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Job not found"
// @Router /jobs/{id} [get]
func (h *ApplicationHandler) GetJob(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest,
			fmt.Sprintf("Invalid job ID %q", c.Params("id")))
	}

	job, err := h.Registry.Get(id)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusNotFound, err.Error())
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, "Job retrieved successfully", job)
}

// DownloadExport godoc
// @Summary Download an export's output
// @Description Streams a completed export's output file.
// @Tags export
// @Param id path string true "Job ID"
// @Success 200 {string} binary "Output file"
// @Failure 400 {object} map[string]interface{} "Invalid job ID"
// @Failure 404 {object} map[string]interface{} "Job not found"
// @Failure 409 {object} map[string]interface{} "Job is not completed"
// @Router /jobs/{id}/download [get]
func (h *ApplicationHandler) DownloadExport(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest,
			fmt.Sprintf("Invalid job ID %q", c.Params("id")))
	}

	job, err := h.Registry.Get(id)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusNotFound, err.Error())
	}
	if job.Status != models.JobStatusCompleted || job.OutputPath == nil {
		return utils.RespondWithError(c, fiber.StatusConflict,
			fmt.Sprintf("Job is %s, nothing to download", job.Status))
	}

	return c.SendFile(*job.OutputPath, true)
}
