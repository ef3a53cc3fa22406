package export

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"os"
	"os/exec"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nickthelegend/podio-ai/internal/timing"
)

// EncoderProfile is the fixed external encoder configuration: the session's
// codec and bitrate are deployment settings, never per-export variables.
type EncoderProfile struct {
	Codec       string `yaml:"codec"`
	PixelFormat string `yaml:"pixel_format"`
	BitrateKbps int    `yaml:"bitrate_kbps"`
	Preset      string `yaml:"preset"`
	Container   string `yaml:"container"`
}

// DefaultEncoderProfile is used when no profile file is configured.
func DefaultEncoderProfile() EncoderProfile {
	return EncoderProfile{
		Codec:       "libx264",
		PixelFormat: "yuv420p",
		BitrateKbps: 7500,
		Preset:      "medium",
		Container:   "mp4",
	}
}

// LoadEncoderProfile reads a profile from YAML, filling unset fields from
// the defaults.
func LoadEncoderProfile(path string) (EncoderProfile, error) {
	profile := DefaultEncoderProfile()
	data, err := os.ReadFile(path)
	if err != nil {
		return profile, fmt.Errorf("reading encoder profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return profile, fmt.Errorf("parsing encoder profile: %w", err)
	}
	if profile.Codec == "" {
		profile.Codec = "libx264"
	}
	if profile.PixelFormat == "" {
		profile.PixelFormat = "yuv420p"
	}
	if profile.Container == "" {
		profile.Container = "mp4"
	}
	return profile, nil
}

// FFmpegSink encodes raw RGBA frames into a video stream incrementally by
// piping them to an ffmpeg process over stdin. The stream is written to a
// temp file next to the destination and only renamed into place on Close,
// so a failed export never leaves partial output behind.
type FFmpegSink struct {
	cmd       *exec.Cmd
	stdin     *os.File
	stderr    bytes.Buffer
	tempPath  string
	finalPath string
	width     int
	height    int
	frames    int
}

// StartFFmpegSink launches the encoder session for the given resolution at
// the fixed timeline frame rate.
func StartFFmpegSink(profile EncoderProfile, width, height int, finalPath string) (*FFmpegSink, error) {
	tempPath := filepath.Join(filepath.Dir(finalPath),
		"."+filepath.Base(finalPath)+".part")

	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", width, height),
		"-framerate", fmt.Sprintf("%d", timing.FramesPerSecond),
		"-i", "-",
		"-c:v", profile.Codec,
		"-b:v", fmt.Sprintf("%dk", profile.BitrateKbps),
		"-pix_fmt", profile.PixelFormat,
		"-r", fmt.Sprintf("%d", timing.FramesPerSecond),
		"-f", profile.Container,
	}
	if profile.Preset != "" {
		args = append(args, "-preset", profile.Preset)
	}
	args = append(args, tempPath)

	cmd := exec.Command("ffmpeg", args...)
	sink := &FFmpegSink{
		cmd:       cmd,
		tempPath:  tempPath,
		finalPath: finalPath,
		width:     width,
		height:    height,
	}
	cmd.Stderr = &sink.stderr

	pr, pw, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("creating encoder pipe: %w", err)
	}
	cmd.Stdin = pr
	sink.stdin = pw

	if err := cmd.Start(); err != nil {
		pw.Close()
		pr.Close()
		return nil, fmt.Errorf("starting ffmpeg: %w", err)
	}
	pr.Close()
	return sink, nil
}

// WriteFrame appends one still image to the stream. The image must match
// the session resolution.
func (s *FFmpegSink) WriteFrame(img *image.RGBA) error {
	b := img.Bounds()
	if b.Dx() != s.width || b.Dy() != s.height {
		return fmt.Errorf("frame %dx%d does not match session %dx%d",
			b.Dx(), b.Dy(), s.width, s.height)
	}
	// ffmpeg expects tightly packed rows.
	if img.Stride != b.Dx()*4 || b.Min.X != 0 || b.Min.Y != 0 {
		packed := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(packed, packed.Bounds(), img, b.Min, draw.Src)
		img = packed
	}
	if _, err := s.stdin.Write(img.Pix); err != nil {
		return fmt.Errorf("writing frame %d to encoder: %w", s.frames, err)
	}
	s.frames++
	return nil
}

// Close flushes the stream, waits for the encoder to finish and moves the
// output into place.
func (s *FFmpegSink) Close() error {
	s.stdin.Close()
	if err := s.cmd.Wait(); err != nil {
		os.Remove(s.tempPath)
		return fmt.Errorf("ffmpeg exited with error: %w\n%s", err, s.stderr.String())
	}
	if err := os.Rename(s.tempPath, s.finalPath); err != nil {
		os.Remove(s.tempPath)
		return fmt.Errorf("moving encoded video into place: %w", err)
	}
	return nil
}

// Abort kills the encoder and discards the partial stream.
func (s *FFmpegSink) Abort() {
	s.stdin.Close()
	if s.cmd.Process != nil {
		s.cmd.Process.Kill()
	}
	s.cmd.Wait()
	os.Remove(s.tempPath)
}
