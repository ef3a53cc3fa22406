package jobs

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nickthelegend/podio-ai/internal/models"
)

func TestRegistryLifecycle(t *testing.T) {
	r := NewRegistry(time.Hour)
	job := r.Create(models.JobTypeVideoExport, uuid.New(), models.FormatWidescreen)

	got, err := r.Get(job.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != models.JobStatusPending {
		t.Errorf("status = %q, want pending", got.Status)
	}

	r.MarkProcessing(job.ID)
	got, _ = r.Get(job.ID)
	if got.Status != models.JobStatusProcessing || got.StartedAt == nil {
		t.Errorf("after MarkProcessing: status %q startedAt %v", got.Status, got.StartedAt)
	}

	r.SetProgress(job.ID, 0.5)
	got, _ = r.Get(job.ID)
	if got.Progress == nil || *got.Progress != 0.5 {
		t.Errorf("progress = %v, want 0.5", got.Progress)
	}

	r.MarkCompleted(job.ID, "/tmp/out.mp4")
	got, _ = r.Get(job.ID)
	if got.Status != models.JobStatusCompleted {
		t.Errorf("status = %q, want completed", got.Status)
	}
	if got.Progress == nil || *got.Progress != 1.0 {
		t.Errorf("completed progress = %v, want 1.0", got.Progress)
	}
	if got.OutputPath == nil || *got.OutputPath != "/tmp/out.mp4" {
		t.Errorf("output path = %v", got.OutputPath)
	}
	if got.CompletedAt == nil {
		t.Error("completedAt not set")
	}
}

func TestRegistryFailure(t *testing.T) {
	r := NewRegistry(time.Hour)
	job := r.Create(models.JobTypeDocumentExport, uuid.New(), models.FormatPortrait)

	r.MarkProcessing(job.ID)
	r.MarkFailed(job.ID, fmt.Errorf("encoder exploded"))

	got, err := r.Get(job.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != models.JobStatusFailed {
		t.Errorf("status = %q, want failed", got.Status)
	}
	if got.ErrorMessage == nil || *got.ErrorMessage != "encoder exploded" {
		t.Errorf("error message = %v", got.ErrorMessage)
	}
}

func TestRegistryUnknownJob(t *testing.T) {
	r := NewRegistry(time.Hour)
	if _, err := r.Get(uuid.New()); err == nil {
		t.Fatal("expected error for unknown job id")
	}
}
