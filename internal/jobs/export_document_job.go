package jobs

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/nickthelegend/podio-ai/internal/config"
	"github.com/nickthelegend/podio-ai/internal/export"
	"github.com/nickthelegend/podio-ai/internal/models"
)

// ExportDocumentJob renders a deck to a PDF on a pool worker. Documents
// are quick compared to video, but run on the same pool so a burst of
// exports still queues instead of spiking.
type ExportDocumentJob struct {
	JobID    uuid.UUID
	Slides   []models.Slide
	Brand    *models.BrandKit
	Format   models.AspectFormat
	OutPath  string
	Registry *Registry
}

func (j *ExportDocumentJob) ID() string {
	return j.JobID.String()
}

func (j *ExportDocumentJob) Execute() error {
	j.Registry.MarkProcessing(j.JobID)

	if err := export.ExportDocument(j.Slides, j.Brand, j.Format, j.OutPath); err != nil {
		j.Registry.MarkFailed(j.JobID, err)
		return fmt.Errorf("document export %s: %w", j.JobID, err)
	}

	j.Registry.MarkCompleted(j.JobID, j.OutPath)
	config.Log.WithFields(map[string]interface{}{
		"job_id": j.JobID,
		"output": j.OutPath,
	}).Info("Document export completed")
	return nil
}
