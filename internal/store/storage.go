package store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/nickthelegend/podio-ai/internal/config"
)

// UploadAudio pushes a narration MP3 into Supabase storage and returns
// its public URL. Object names get a UUID prefix so re-synthesizing a
// slide never collides with a cached older take.
func (s *Store) UploadAudio(ctx context.Context, name string, audio []byte) (string, error) {
	if s.supabaseURL == "" || s.supabaseKey == "" {
		return "", fmt.Errorf("storage is not configured")
	}

	objectPath := fmt.Sprintf("%s/%s", uuid.NewString(), name)
	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.supabaseURL, s.bucket, objectPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, bytes.NewReader(audio))
	if err != nil {
		return "", fmt.Errorf("creating upload request: %w", err)
	}
	req.Header.Set("Content-Type", "audio/mpeg")
	req.Header.Set("Authorization", "Bearer "+s.supabaseKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("uploading audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("audio upload failed with status %d: %s", resp.StatusCode, string(body))
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.supabaseURL, s.bucket, objectPath)
	config.Log.WithField("object", objectPath).Info("Audio uploaded")
	return publicURL, nil
}
