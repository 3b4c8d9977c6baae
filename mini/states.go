package mini

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"

	"github.com/drumtake-cli/drumtake/filesystem"
	"github.com/drumtake-cli/drumtake/key"
	"github.com/drumtake-cli/drumtake/open"
	"github.com/drumtake-cli/drumtake/player"
	"github.com/drumtake-cli/drumtake/provider"
	"github.com/drumtake-cli/drumtake/query"
	"github.com/drumtake-cli/drumtake/stems"
	"github.com/drumtake-cli/drumtake/takes"
	"github.com/drumtake-cli/drumtake/util"
	"github.com/drumtake-cli/drumtake/video"
)

type state int

const (
	searchState state = iota + 1
	trackSelectState
	sourceSelectState
	processState
	listenState
	takeSelectState
	quitState
)

func (m *mini) handleSourceSelectState() error {
	var err error

	if names := viper.GetStringSlice(key.DefaultSources); len(names) == 1 {
		p, ok := provider.Get(names[0])
		if !ok {
			return fmt.Errorf("unknown source \"%s\"", names[0])
		}

		m.selectedSource, err = p.CreateSource()
		if err != nil {
			return err
		}
	} else {
		providers := provider.All()

		slices.SortFunc(providers, func(a, b *provider.Provider) int {
			return strings.Compare(a.String(), b.String())
		})

		title("Select Source")
		b, p, err := menu(providers)
		if err != nil {
			return err
		}

		if quit.eq(b) {
			m.newState(quitState)
			return nil
		}

		erase := progress("Initializing Source..")
		m.selectedSource, err = p.CreateSource()
		if err != nil {
			return err
		}
		erase()
	}

	m.newState(searchState)
	return nil
}

func (m *mini) handleSearchState() error {
	var searchLoop func() error
	title("Search Song")

	var (
		suggest func(string) []string
		def     string
	)
	if viper.GetBool(key.SearchShowQuerySuggestions) {
		suggest = query.SuggestMany
		def = query.Suggest("").OrElse("")
	}

	searchLoop = func() error {
		in, err := getInput(func(s string) bool {
			return s != ""
		}, suggest, def)

		if err != nil {
			return err
		}

		q := in.value

		erase := progress("Searching Query..")
		found, err := m.selectedSource.Search(q)
		erase()
		if err != nil {
			return err
		}

		found = video.Rank(q, found)
		max := lo.Min([]int{len(found), viper.GetInt(key.MiniSearchLimit)})
		m.cachedTracks[q] = found[:max]

		if len(m.cachedTracks[q]) == 0 {
			fail("No search results found")
			return searchLoop()
		}

		m.query = q
		m.newState(trackSelectState)
		return nil
	}

	return searchLoop()
}

func (m *mini) handleTrackSelectState() error {
	tracks := m.cachedTracks[m.query]
	title(fmt.Sprintf("Query Results >> %s", util.Quantify(len(tracks), "track", "tracks")))
	b, t, err := menu(tracks)
	if err != nil {
		return err
	}

	if quit.eq(b) {
		m.newState(quitState)
		return nil
	}

	if err := query.Remember(m.query, 1); err != nil {
		return err
	}

	m.selectedTrack = t
	m.newState(processState)
	return nil
}

func (m *mini) handleProcessState() error {
	track := m.selectedTrack

	folder, err := track.Path()
	if err != nil {
		return err
	}

	format := viper.GetString(key.DownloaderFormat)
	stemKind := viper.GetString(key.SeparatorStem)
	stemPath := filepath.Join(folder, stemKind+"."+format)

	// An already separated take replays without hitting the network.
	if exists, _ := filesystem.API().Exists(stemPath); exists {
		m.stemPath = stemPath
		m.stemDuration = mo.None[float64]()
		m.newState(listenState)
		return nil
	}

	client, err := stems.NewClient()
	if err != nil {
		if errors.Is(err, stems.ErrNoServiceURL) {
			fail("No separation service configured, run: drumtake config set -k separator.url -v <url>")
			m.previousState()
			return nil
		}
		return err
	}

	audioPath := filepath.Join(folder, "original."+format)

	erase := progress(fmt.Sprintf("Downloading %s..", track.Label()))
	err = video.DownloadAudio(context.Background(), track, audioPath)
	erase()
	if err != nil {
		return err
	}

	erase = progress("Separating..")
	m.stemPath, err = client.Separate(audioPath, folder, func(job *stems.Job) {
		erase()
		erase = progress(fmt.Sprintf("Separating.. %.0f%%", job.Progress))
	})
	erase()
	if err != nil {
		fail(err.Error())
		m.previousState()
		return nil
	}

	if viper.GetBool(key.TakesSaveOnListen) {
		if err := takes.Save(m.query, track, m.stemPath, stemKind); err != nil {
			return err
		}
	}

	m.stemDuration = track.Duration
	m.newState(listenState)
	return nil
}

func (m *mini) handleListenState() error {
	duration := m.stemDuration
	if duration.IsAbsent() {
		duration = player.ProbeDuration(m.stemPath)
		m.stemDuration = duration
	}

	if _, err := m.session.Listen(m.stemPath, duration); err != nil {
		return err
	}

	for {
		b, _, err := menu([]fmt.Stringer{}, again, mix, open_, back, search)
		if err != nil {
			return err
		}

		switch b {
		case again:
			// Listen state is re-entered by the outer loop.
			return nil
		case mix:
			if err := m.listenMix(); err != nil {
				fail(err.Error())
			}
		case open_:
			if err := open.Start(filepath.Dir(m.stemPath)); err != nil {
				fail(err.Error())
			}
		case back:
			m.previousState()
			return nil
		case search:
			m.newState(searchState)
			return nil
		case quit:
			m.newState(quitState)
			return nil
		}
	}
}

// listenMix renders the stem over a quieter original and plays the result.
// Requires the original audio, which separator.keep_original preserves.
func (m *mini) listenMix() error {
	folder := filepath.Dir(m.stemPath)
	originalPath := filepath.Join(folder, "original"+filepath.Ext(m.stemPath))

	if exists, _ := filesystem.API().Exists(originalPath); !exists {
		return errors.New("original audio is missing, enable separator.keep_original and reprocess")
	}

	mixPath := filepath.Join(folder, "mix"+filepath.Ext(m.stemPath))
	if exists, _ := filesystem.API().Exists(mixPath); !exists {
		erase := progress("Rendering mix..")
		err := stems.Mix(originalPath, m.stemPath, mixPath, 1.5)
		erase()
		if err != nil {
			return err
		}
	}

	_, err := m.session.Listen(mixPath, player.ProbeDuration(mixPath))
	return err
}

func (m *mini) handleTakeSelectState() error {
	catalog, err := takes.Get()
	if err != nil {
		return err
	}

	saved := lo.Values(catalog)
	slices.SortFunc(saved, func(a, b *takes.Take) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	if len(saved) == 0 {
		fail("No saved takes yet")
		m.newState(sourceSelectState)
		return nil
	}

	title("Saved Takes >>")
	b, t, err := menu(saved)
	if err != nil {
		return err
	}

	if quit.eq(b) {
		m.newState(quitState)
		return nil
	}

	stemPath := t.StemPath()
	if exists, _ := filesystem.API().Exists(stemPath); !exists {
		fail("Take files are missing on disk, removing it from the catalog")
		if err := takes.Remove(t); err != nil {
			return err
		}
		return nil
	}

	m.stemPath = stemPath
	m.stemDuration = t.ProbedDuration()
	m.newState(listenState)
	return nil
}
