package takes

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/samber/mo"

	"github.com/drumtake-cli/drumtake/filesystem"
	"github.com/drumtake-cli/drumtake/video"
)

type testSource struct{}

func (testSource) Name() string {
	panic("")
}

func (testSource) Search(_ string) ([]*video.Track, error) {
	panic("")
}

func (testSource) ID() string {
	return "test source"
}

func init() {
	filesystem.SetMemMapFs()
}

func TestTakes(t *testing.T) {
	Convey("Given a processed track", t, func() {
		track := &video.Track{
			ID:         "abc123",
			Title:      "Fool in the Rain",
			Channel:    "Led Zeppelin",
			WebpageURL: "https://example.com/watch?v=abc123",
			Source:     testSource{},
			Duration:   mo.Some(373.0),
		}

		Convey("When saving the take", func() {
			err := Save("fool in the rain", track, "/takes/Fool_in_the_Rain/drums.mp3", "drums")
			Convey("Then the error should be nil", func() {
				So(err, ShouldBeNil)

				Convey("And the take should be saved", func() {
					saved, err := Get()
					So(err, ShouldBeNil)
					So(len(saved), ShouldBeGreaterThan, 0)

					take := saved[fmt.Sprintf("%s (%s)", track.ID, track.Source.ID())]
					So(take, ShouldNotBeNil)
					So(take.Title, ShouldEqual, track.Title)
					So(take.StemKind, ShouldEqual, "drums")
					So(take.ProbedDuration().MustGet(), ShouldEqual, 373.0)
					So(take.StemPath(), ShouldEqual, "/takes/Fool_in_the_Rain/drums.mp3")
				})

				Convey("And the stem path keeps the extension it was saved with", func() {
					So(Save("fool in the rain", track, "/takes/Fool_in_the_Rain/drums.opus", "drums"), ShouldBeNil)

					saved, err := Get()
					So(err, ShouldBeNil)
					take := saved[fmt.Sprintf("%s (%s)", track.ID, track.Source.ID())]
					So(take, ShouldNotBeNil)
					So(take.StemPath(), ShouldEqual, "/takes/Fool_in_the_Rain/drums.opus")
					So(take.Folder, ShouldEqual, "/takes/Fool_in_the_Rain")
				})

				Convey("And removing it leaves the catalog without it", func() {
					saved, _ := Get()
					take := saved[fmt.Sprintf("%s (%s)", track.ID, track.Source.ID())]
					So(Remove(take), ShouldBeNil)

					saved, err := Get()
					So(err, ShouldBeNil)
					_, exists := saved[take.encode()]
					So(exists, ShouldBeFalse)
				})
			})
		})
	})
}
