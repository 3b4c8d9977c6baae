package video

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRank(t *testing.T) {
	Convey("Rank", t, func() {
		tracks := []*Track{
			{Title: "When the Levee Breaks (Remastered)"},
			{Title: "When the Levee Breaks"},
			{Title: "Levee Breaks Drum Cover"},
		}

		Convey("Closest title comes first", func() {
			ranked := Rank("when the levee breaks", tracks)
			So(ranked[0].Title, ShouldEqual, "When the Levee Breaks")
		})

		Convey("Input slice is not reordered", func() {
			_ = Rank("when the levee breaks", tracks)
			So(tracks[0].Title, ShouldEqual, "When the Levee Breaks (Remastered)")
		})

		Convey("Comparison ignores case and whitespace", func() {
			ranked := Rank("  WHEN THE LEVEE BREAKS  ", tracks)
			So(ranked[0].Title, ShouldEqual, "When the Levee Breaks")
		})
	})
}

func TestClosest(t *testing.T) {
	Convey("Closest", t, func() {
		Convey("Empty slice yields nil", func() {
			So(Closest("anything", nil), ShouldBeNil)
		})

		Convey("Single element is always closest", func() {
			only := &Track{Title: "Moby Dick"}
			So(Closest("whatever", []*Track{only}), ShouldEqual, only)
		})
	})
}
