package stems

import (
	"fmt"
	"os/exec"
)

// Mix renders a drums-forward preview by layering the isolated stem over a
// quieter copy of the original file. The heavy lifting is an external
// ffmpeg filter graph; nothing is decoded in-process.
func Mix(originalPath, stemPath, outputPath string, stemGain float64) error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return fmt.Errorf("ffmpeg is not installed: %w", err)
	}

	filter := fmt.Sprintf(
		"[0:a]volume=0.3[bg];[1:a]volume=%.2f[fg];[bg][fg]amix=inputs=2:duration=longest",
		stemGain,
	)

	cmd := exec.Command("ffmpeg",
		"-y",
		"-i", originalPath,
		"-i", stemPath,
		"-filter_complex", filter,
		outputPath,
	)

	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg mix: %w: %s", err, out)
	}
	return nil
}
