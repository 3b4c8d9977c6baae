package video

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/samber/mo"
	"github.com/spf13/viper"

	"github.com/drumtake-cli/drumtake/internal/cache"
	"github.com/drumtake-cli/drumtake/key"
	"github.com/drumtake-cli/drumtake/log"
)

// YtdlpSourceID identifies the built-in yt-dlp search source.
const YtdlpSourceID = "ytdlp"

// Ytdlp is the built-in source backed by the yt-dlp binary.
// It searches the video platform and parses flat-playlist JSON entries.
type Ytdlp struct {
	// lookPath is overridable in tests.
	lookPath func(string) (string, error)
	// run executes yt-dlp and returns its stdout. Overridable in tests.
	run func(args ...string) ([]byte, error)
}

// NewYtdlp constructs the built-in yt-dlp source.
func NewYtdlp() *Ytdlp {
	return &Ytdlp{
		lookPath: exec.LookPath,
		run: func(args ...string) ([]byte, error) {
			cmd := exec.Command("yt-dlp", args...)
			var out, stderr bytes.Buffer
			cmd.Stdout = &out
			cmd.Stderr = &stderr
			if err := cmd.Run(); err != nil {
				return nil, fmt.Errorf("yt-dlp: %w: %s", err, strings.TrimSpace(stderr.String()))
			}
			return out.Bytes(), nil
		},
	}
}

func (y *Ytdlp) Name() string {
	return "yt-dlp"
}

func (y *Ytdlp) ID() string {
	return YtdlpSourceID
}

// searchEntry mirrors the fields of a yt-dlp flat-playlist JSON line.
type searchEntry struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Channel    string   `json:"channel"`
	Uploader   string   `json:"uploader"`
	Duration   *float64 `json:"duration"`
	URL        string   `json:"url"`
	WebpageURL string   `json:"webpage_url"`
}

// Search queries the video platform via yt-dlp's ytsearch pseudo-URL.
// Results are cached on disk keyed by the normalized query.
func (y *Ytdlp) Search(query string) ([]*Track, error) {
	if _, err := y.lookPath("yt-dlp"); err != nil {
		return nil, fmt.Errorf("yt-dlp is not installed: %w", err)
	}

	cacheKey := cache.GenerateKey(query, y.ID())
	var cachedEntries []searchEntry
	if cache.Read(cacheKey, &cachedEntries) {
		log.Debugf("search cache hit for %q", query)
		return y.tracksFrom(cachedEntries), nil
	}

	limit := viper.GetInt(key.SearchLimit)
	if limit <= 0 {
		limit = 10
	}

	out, err := y.run(
		"--dump-json",
		"--flat-playlist",
		fmt.Sprintf("ytsearch%d:%s", limit, query),
	)
	if err != nil {
		return nil, err
	}

	var entries []searchEntry
	scanner := bufio.NewScanner(bytes.NewReader(out))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var entry searchEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			log.Warnf("skipping malformed search entry: %v", err)
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if err := cache.Write(cacheKey, entries); err != nil {
		log.Warnf("failed to cache search results: %v", err)
	}

	return y.tracksFrom(entries), nil
}

func (y *Ytdlp) tracksFrom(entries []searchEntry) []*Track {
	tracks := make([]*Track, 0, len(entries))
	for _, entry := range entries {
		channel := entry.Channel
		if channel == "" {
			channel = entry.Uploader
		}

		url := entry.WebpageURL
		if url == "" {
			url = entry.URL
		}

		duration := mo.None[float64]()
		if entry.Duration != nil {
			duration = mo.Some(*entry.Duration)
		}

		tracks = append(tracks, &Track{
			ID:         entry.ID,
			Title:      entry.Title,
			Channel:    channel,
			WebpageURL: url,
			Source:     y,
			Duration:   duration,
		})
	}
	return tracks
}
