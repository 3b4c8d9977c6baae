package video

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/drumtake-cli/drumtake/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestYtdlpSearch(t *testing.T) {
	Convey("Ytdlp Search", t, func() {
		// Reset the in-memory fs so each Convey re-run starts with an
		// empty search cache and the run hook is always exercised.
		filesystem.SetMemMapFs()

		payload := strings.Join([]string{
			`{"id":"abc123","title":"Fool in the Rain","channel":"Led Zeppelin","duration":373.0,"url":"https://example.com/watch?v=abc123"}`,
			``,
			`{"id":"def456","title":"Fool in the Rain (Live)","uploader":"Bootlegs","webpage_url":"https://example.com/watch?v=def456"}`,
			`not json`,
		}, "\n")

		var gotArgs []string
		y := &Ytdlp{
			lookPath: func(string) (string, error) { return "/usr/bin/yt-dlp", nil },
			run: func(args ...string) ([]byte, error) {
				gotArgs = args
				return []byte(payload), nil
			},
		}

		// Unique query to dodge cache hits from other tests.
		tracks, err := y.Search("fool in the rain ytdlp_test_" + t.Name())

		Convey("It parses the well-formed entries and skips the rest", func() {
			So(err, ShouldBeNil)
			So(tracks, ShouldHaveLength, 2)
		})

		Convey("It requests a ytsearch pseudo-URL", func() {
			So(gotArgs[len(gotArgs)-1], ShouldStartWith, "ytsearch")
		})

		Convey("It maps duration into an Option", func() {
			So(tracks[0].Duration.IsPresent(), ShouldBeTrue)
			So(tracks[0].Duration.MustGet(), ShouldEqual, 373.0)
			So(tracks[1].Duration.IsAbsent(), ShouldBeTrue)
		})

		Convey("It falls back from channel to uploader and url to webpage_url", func() {
			So(tracks[0].Channel, ShouldEqual, "Led Zeppelin")
			So(tracks[0].WebpageURL, ShouldEqual, "https://example.com/watch?v=abc123")
			So(tracks[1].Channel, ShouldEqual, "Bootlegs")
			So(tracks[1].WebpageURL, ShouldEqual, "https://example.com/watch?v=def456")
		})

		Convey("Identity", func() {
			So(y.Name(), ShouldEqual, "yt-dlp")
			So(y.ID(), ShouldEqual, YtdlpSourceID)
		})
	})
}
