// Package jobs defines the export job types the worker pool executes and
// the registry handlers poll for status.
package jobs

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/nickthelegend/podio-ai/internal/models"
)

// Registry tracks export jobs in memory. Completed jobs expire after a
// retention window so long-running servers do not accumulate records.
type Registry struct {
	jobs *gocache.Cache
}

// NewRegistry creates a registry with the given retention for finished jobs.
func NewRegistry(retention time.Duration) *Registry {
	return &Registry{
		jobs: gocache.New(retention, 10*time.Minute),
	}
}

// Create records a new pending job and returns it.
func (r *Registry) Create(jobType string, projectID uuid.UUID, format models.AspectFormat) models.ExportJob {
	job := models.ExportJob{
		ID:        uuid.New(),
		JobType:   jobType,
		ProjectID: projectID,
		Format:    format,
		Status:    models.JobStatusPending,
		CreatedAt: time.Now(),
	}
	// Pending and processing jobs never expire; expiry is set on completion.
	r.jobs.Set(job.ID.String(), job, gocache.NoExpiration)
	return job
}

// Get returns the job with the given ID.
func (r *Registry) Get(id uuid.UUID) (models.ExportJob, error) {
	v, ok := r.jobs.Get(id.String())
	if !ok {
		return models.ExportJob{}, fmt.Errorf("job %s not found", id)
	}
	return v.(models.ExportJob), nil
}

// MarkProcessing transitions a job to the processing state.
func (r *Registry) MarkProcessing(id uuid.UUID) {
	r.update(id, func(j *models.ExportJob) {
		now := time.Now()
		j.Status = models.JobStatusProcessing
		j.StartedAt = &now
	}, gocache.NoExpiration)
}

// SetProgress records a progress fraction in [0,1].
func (r *Registry) SetProgress(id uuid.UUID, fraction float64) {
	r.update(id, func(j *models.ExportJob) {
		j.Progress = &fraction
	}, gocache.NoExpiration)
}

// MarkCompleted records success and the output location.
func (r *Registry) MarkCompleted(id uuid.UUID, outputPath string) {
	r.update(id, func(j *models.ExportJob) {
		now := time.Now()
		one := 1.0
		j.Status = models.JobStatusCompleted
		j.Progress = &one
		j.OutputPath = &outputPath
		j.CompletedAt = &now
	}, gocache.DefaultExpiration)
}

// MarkFailed records failure with the error message.
func (r *Registry) MarkFailed(id uuid.UUID, cause error) {
	r.update(id, func(j *models.ExportJob) {
		now := time.Now()
		msg := cause.Error()
		j.Status = models.JobStatusFailed
		j.ErrorMessage = &msg
		j.CompletedAt = &now
	}, gocache.DefaultExpiration)
}

func (r *Registry) update(id uuid.UUID, fn func(*models.ExportJob), ttl time.Duration) {
	v, ok := r.jobs.Get(id.String())
	if !ok {
		return
	}
	job := v.(models.ExportJob)
	fn(&job)
	r.jobs.Set(id.String(), job, ttl)
}
