package store

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestShareURL(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	got := ShareURL("https://podio.example.com", id)
	want := "https://podio.example.com/view/6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	if got != want {
		t.Errorf("ShareURL = %q, want %q", got, want)
	}
}

func TestShareQRProducesPNG(t *testing.T) {
	data, err := ShareQR("https://podio.example.com", uuid.New(), 256)
	if err != nil {
		t.Fatalf("ShareQR: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding QR PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 256 || bounds.Dy() != 256 {
		t.Errorf("QR size = %dx%d, want 256x256", bounds.Dx(), bounds.Dy())
	}
}

func TestShareQRDefaultSize(t *testing.T) {
	data, err := ShareQR("https://podio.example.com", uuid.New(), 0)
	if err != nil {
		t.Fatalf("ShareQR: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty QR output")
	}
	if !strings.HasPrefix(string(data[1:4]), "PNG") {
		t.Errorf("output is not a PNG")
	}
}
