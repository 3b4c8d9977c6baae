package inline

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/drumtake-cli/drumtake/video"
)

func TestWriteJson(t *testing.T) {
	Convey("writeJson", t, func() {
		Convey("Should produce valid JSON for an empty track list", func() {
			var buf bytes.Buffer
			opts := &Options{Query: "test", Json: true}
			err := writeJson(&buf, nil, opts)
			So(err, ShouldBeNil)

			var output Output
			err = json.Unmarshal(buf.Bytes(), &output)
			So(err, ShouldBeNil)
			So(output.Query, ShouldEqual, "test")
			So(output.Result, ShouldHaveLength, 0)
		})

		Convey("Should carry the track duration when known", func() {
			var buf bytes.Buffer
			track := &video.Track{
				ID:       "abc123",
				Title:    "Fool in the Rain",
				Duration: mo.Some(372.0),
			}

			err := writeJson(&buf, []*video.Track{track}, &Options{Query: "fool in the rain"})
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Result, ShouldHaveLength, 1)
			So(*output.Result[0].Duration, ShouldEqual, 372.0)
		})
	})
}

func TestParseTrackPicker(t *testing.T) {
	tracks := []*video.Track{
		{ID: "1", Title: "first title"},
		{ID: "2", Title: "second title"},
		{ID: "3", Title: "third title"},
	}

	Convey("ParseTrackPicker", t, func() {
		Convey("first", func() {
			picker, err := ParseTrackPicker("first", "")
			So(err, ShouldBeNil)
			So(picker(tracks).ID, ShouldEqual, "1")
		})

		Convey("last", func() {
			picker, err := ParseTrackPicker("last", "")
			So(err, ShouldBeNil)
			So(picker(tracks).ID, ShouldEqual, "3")
		})

		Convey("exact", func() {
			picker, err := ParseTrackPicker("exact", "second title")
			So(err, ShouldBeNil)
			So(picker(tracks).ID, ShouldEqual, "2")

			Convey("No match yields nil", func() {
				picker, err := ParseTrackPicker("exact", "missing")
				So(err, ShouldBeNil)
				So(picker(tracks), ShouldBeNil)
			})
		})

		Convey("closest", func() {
			picker, err := ParseTrackPicker("closest", "secnd title")
			So(err, ShouldBeNil)
			So(picker(tracks).ID, ShouldEqual, "2")

			Convey("No tracks yields nil", func() {
				So(picker(nil), ShouldBeNil)
			})
		})

		Convey("index", func() {
			picker, err := ParseTrackPicker("index", "1")
			So(err, ShouldBeNil)
			So(picker(tracks).ID, ShouldEqual, "2")

			Convey("Out of range clamps to the last track", func() {
				picker, err := ParseTrackPicker("index", "99")
				So(err, ShouldBeNil)
				So(picker(tracks).ID, ShouldEqual, "3")
			})

			Convey("Non-numeric value errors", func() {
				_, err := ParseTrackPicker("index", "abc")
				So(err, ShouldNotBeNil)
			})
		})

		Convey("Unknown kind errors", func() {
			_, err := ParseTrackPicker("middle", "")
			So(err, ShouldNotBeNil)
		})

		Convey("Empty input yields nil for positional pickers", func() {
			for _, kind := range []string{"first", "last", "index"} {
				picker, err := ParseTrackPicker(kind, "0")
				So(err, ShouldBeNil)
				So(picker(nil), ShouldBeNil)
			}
		})
	})
}
