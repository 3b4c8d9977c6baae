package video

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/drumtake-cli/drumtake/key"
	"github.com/drumtake-cli/drumtake/log"
)

// DownloadAudio extracts the track's audio via yt-dlp into outputPath.
//
// The download goes through a temp file and an atomic rename, so a partial
// download never shadows a good file. If outputPath already exists the
// function returns immediately.
func DownloadAudio(ctx context.Context, track *Track, outputPath string) error {
	if track.WebpageURL == "" {
		return errors.New("track has no webpage URL")
	}

	absOut, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("make abs path: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(absOut), fs.ModePerm); err != nil {
		return fmt.Errorf("mkdir output dir: %w", err)
	}

	if _, err := os.Stat(absOut); err == nil {
		log.Debugf("audio already downloaded at %s", absOut)
		return nil
	}

	format := viper.GetString(key.DownloaderFormat)
	quality := viper.GetString(key.DownloaderQuality)

	tmp, err := os.CreateTemp(filepath.Dir(absOut), "*."+format+".tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	_ = tmp.Close()
	defer os.Remove(tmp.Name())

	args := []string{
		"--extract-audio",
		"--audio-format", format,
		"--audio-quality", quality,
		"--force-overwrites",
		"--output", tmp.Name(),
		track.WebpageURL,
	}

	cmd := exec.CommandContext(ctx, "yt-dlp", args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("yt-dlp: %w: %s", err, out)
	}

	if err := os.Rename(tmp.Name(), absOut); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	log.Infof("downloaded audio for %q to %s", track.Title, absOut)
	return nil
}
