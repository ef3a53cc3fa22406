package models

import (
	"time"

	"github.com/google/uuid"
)

// Export job lifecycle states. A job is only ever in one of these, so the
// UI can tell "still processing" apart from "done" and "error".
const (
	JobStatusPending    = "pending"
	JobStatusProcessing = "processing"
	JobStatusCompleted  = "completed"
	JobStatusFailed     = "failed"
)

const (
	JobTypeVideoExport    = "video_export"
	JobTypeDocumentExport = "document_export"
)

// ExportJob tracks one export operation end to end.
type ExportJob struct {
	ID           uuid.UUID    `json:"id"`
	JobType      string       `json:"job_type"`
	ProjectID    uuid.UUID    `json:"project_id"`
	Format       AspectFormat `json:"format"`
	Status       string       `json:"status"`
	Progress     *float64     `json:"progress,omitempty"`      // fraction in [0,1]
	ErrorMessage *string      `json:"error_message,omitempty"` // nullable TEXT
	OutputPath   *string      `json:"output_path,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	StartedAt    *time.Time   `json:"started_at,omitempty"`
	CompletedAt  *time.Time   `json:"completed_at,omitempty"`
}
