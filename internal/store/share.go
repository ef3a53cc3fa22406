package store

import (
	"fmt"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

// ShareURL builds the public viewer link for a project.
func ShareURL(baseURL string, projectID uuid.UUID) string {
	return fmt.Sprintf("%s/view/%s", baseURL, projectID)
}

// ShareQR renders the share link as a PNG QR code.
func ShareQR(baseURL string, projectID uuid.UUID, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	png, err := qrcode.Encode(ShareURL(baseURL, projectID), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encoding share QR: %w", err)
	}
	return png, nil
}
