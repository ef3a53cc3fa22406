package jobs

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/nickthelegend/podio-ai/internal/config"
	"github.com/nickthelegend/podio-ai/internal/export"
	"github.com/nickthelegend/podio-ai/internal/models"
)

// ExportVideoJob renders a deck to an MP4 on a pool worker.
type ExportVideoJob struct {
	JobID    uuid.UUID
	Slides   []models.Slide
	Brand    *models.BrandKit
	Format   models.AspectFormat
	Profile  export.EncoderProfile
	OutPath  string
	Registry *Registry
}

// ID returns the job identifier.
func (j *ExportVideoJob) ID() string {
	return j.JobID.String()
}

// Execute runs the frame capture pipeline and keeps the registry current.
func (j *ExportVideoJob) Execute() error {
	j.Registry.MarkProcessing(j.JobID)

	err := export.ExportVideo(j.Slides, j.Brand, j.Format, j.Profile, j.OutPath,
		func(done, total int) {
			if total > 0 {
				j.Registry.SetProgress(j.JobID, float64(done)/float64(total))
			}
		})
	if err != nil {
		j.Registry.MarkFailed(j.JobID, err)
		return fmt.Errorf("video export %s: %w", j.JobID, err)
	}

	j.Registry.MarkCompleted(j.JobID, j.OutPath)
	config.Log.WithFields(map[string]interface{}{
		"job_id": j.JobID,
		"output": j.OutPath,
	}).Info("Video export completed")
	return nil
}
