package helper

import (
	"os/exec"
	"strconv"
	"strings"
)

// GetVideoDuration probes a local video file with ffprobe and returns the
// duration in whole seconds.
func GetVideoDuration(filePath string) (int64, error) {
	cmd := exec.Command("ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "csv=p=0",
		filePath,
	)
	out, err := cmd.Output()
	if err != nil {
		return 0, err
	}
	seconds, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, err
	}
	return int64(seconds), nil
}
