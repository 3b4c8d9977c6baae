package video

import (
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/drumtake-cli/drumtake/filesystem"
	"github.com/drumtake-cli/drumtake/where"
)

func TestTrack(t *testing.T) {
	Convey("Track", t, func() {
		tr := &Track{Title: "Fool in the Rain", Channel: "Led Zeppelin"}

		Convey("String", func() {
			So(tr.String(), ShouldEqual, "Fool in the Rain")
		})

		Convey("Dirname", func() {
			So(tr.Dirname(), ShouldEqual, "Fool_in_the_Rain")
		})

		Convey("Path creates the track folder under the takes directory", func() {
			path, err := tr.Path()
			So(err, ShouldBeNil)
			So(path, ShouldEqual, filepath.Join(where.Takes(), "Fool_in_the_Rain"))

			exists, err := filesystem.API().DirExists(path)
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)
		})

		Convey("Label", func() {
			So(tr.Label(), ShouldEqual, "Fool in the Rain (Led Zeppelin)")

			Convey("Omits the channel suffix when absent", func() {
				tr.Channel = ""
				So(tr.Label(), ShouldEqual, "Fool in the Rain")
			})
		})
	})
}
