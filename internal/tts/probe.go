package tts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// ffprobeOutput holds the format.duration field from ffprobe JSON output.
type ffprobeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// ProbeDuration uses ffprobe to measure an audio file's duration in
// seconds. The measured value is what the timeline trusts; estimates only
// fill in until real audio exists.
func ProbeDuration(filePath string) (float64, error) {
	cmd := exec.Command("ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		filePath,
	)

	var out bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return 0, fmt.Errorf("ffprobe failed: %v\nStderr: %s", err, stderr.String())
	}

	var probed ffprobeOutput
	if err := json.Unmarshal(out.Bytes(), &probed); err != nil {
		return 0, fmt.Errorf("error unmarshalling ffprobe output: %v", err)
	}
	if probed.Format.Duration == "" {
		return 0, fmt.Errorf("ffprobe output has no duration")
	}

	seconds, err := strconv.ParseFloat(probed.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("error parsing duration %q: %v", probed.Format.Duration, err)
	}
	return seconds, nil
}

// ProbeBytes writes audio to a temp file and probes its duration.
func ProbeBytes(audio []byte) (float64, error) {
	tmp, err := os.CreateTemp("", "narration-*.mp3")
	if err != nil {
		return 0, err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(audio); err != nil {
		tmp.Close()
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		return 0, err
	}
	return ProbeDuration(tmp.Name())
}
