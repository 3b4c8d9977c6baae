package inline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/drumtake-cli/drumtake/key"
	"github.com/drumtake-cli/drumtake/video"
)

func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	var tracks []*video.Track
	for _, src := range options.Sources {
		found, err := src.Search(options.Query)
		if err != nil {
			return fmt.Errorf("search failed for %s: %w", src.Name(), err)
		}
		tracks = append(tracks, found...)
	}

	tracks = video.Rank(options.Query, tracks)

	var selected []*video.Track
	if picker, ok := options.TrackPicker.Get(); ok {
		if choice := picker(tracks); choice != nil {
			selected = []*video.Track{choice}
		}
	} else {
		selected = tracks
	}

	if len(selected) == 0 {
		if options.Json {
			return writeJson(options.Out, nil, options)
		}
		return nil
	}

	if options.Download {
		return download(options.Out, selected)
	}

	if options.Json {
		return writeJson(options.Out, selected, options)
	}

	for _, track := range selected {
		fmt.Fprintln(options.Out, track.Label())
		if track.WebpageURL != "" {
			fmt.Fprintln(options.Out, track.WebpageURL)
		}
	}

	return nil
}

func download(out io.Writer, tracks []*video.Track) error {
	format := viper.GetString(key.DownloaderFormat)

	for _, track := range tracks {
		folder, err := track.Path()
		if err != nil {
			return err
		}

		audioPath := filepath.Join(folder, "original."+format)
		if err := video.DownloadAudio(context.Background(), track, audioPath); err != nil {
			return err
		}

		fmt.Fprintln(out, audioPath)
	}

	return nil
}

func writeJson(out io.Writer, tracks []*video.Track, options *Options) error {
	data, err := asJson(tracks, options.Query)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
