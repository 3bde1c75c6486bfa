package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os/exec"
	"strconv"
)

// DurationProber reads the rounded duration, in seconds, of a local video
// file.
type DurationProber interface {
	Duration(ctx context.Context, path string) (int, error)
}

// FFProbe probes durations by shelling out to ffprobe.
type FFProbe struct {
	Bin string
}

var _ DurationProber = (*FFProbe)(nil)

func NewFFProbe() *FFProbe {
	return &FFProbe{Bin: "ffprobe"}
}

type ffprobeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

func (f *FFProbe) Duration(ctx context.Context, path string) (int, error) {
	cmd := exec.CommandContext(ctx, f.Bin,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "json",
		path)

	var out bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return 0, fmt.Errorf("ffprobe error: %v, stderr: %s", err, stderr.String())
	}

	var probed ffprobeOutput
	if err := json.Unmarshal(out.Bytes(), &probed); err != nil {
		return 0, fmt.Errorf("json unmarshal error: %v", err)
	}

	secs, err := strconv.ParseFloat(probed.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("could not parse duration %q: %v", probed.Format.Duration, err)
	}

	return int(math.Round(secs)), nil
}
