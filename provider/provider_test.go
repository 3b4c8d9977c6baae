package provider

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGet(t *testing.T) {
	Convey("When trying to get an invalid provider", t, func() {
		_, ok := Get("kek")
		Convey("Then ok should be false", func() {
			So(ok, ShouldBeFalse)
		})
	})

	Convey("When getting the built-in provider", t, func() {
		p, ok := Get("yt-dlp")
		Convey("Then it should resolve", func() {
			So(ok, ShouldBeTrue)
			So(p.IsCustom, ShouldBeFalse)

			src, err := p.CreateSource()
			So(err, ShouldBeNil)
			So(src.ID(), ShouldEqual, "ytdlp")
		})
	})
}
