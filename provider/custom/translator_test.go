package custom

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	lua "github.com/yuin/gopher-lua"
)

func TestTrackFromTable(t *testing.T) {
	Convey("trackFromTable", t, func() {
		L := lua.NewState()
		defer L.Close()

		Convey("Should extract track from valid Lua table", func() {
			tbl := L.NewTable()
			tbl.RawSetString("title", lua.LString("Ramble On"))
			tbl.RawSetString("url", lua.LString("https://example.com/ramble-on"))
			tbl.RawSetString("channel", lua.LString("Led Zeppelin"))
			tbl.RawSetString("duration", lua.LNumber(273))

			track, err := trackFromTable(tbl)
			So(err, ShouldBeNil)
			So(track.Title, ShouldEqual, "Ramble On")
			So(track.WebpageURL, ShouldEqual, "https://example.com/ramble-on")
			So(track.Channel, ShouldEqual, "Led Zeppelin")
			So(track.Duration.MustGet(), ShouldEqual, 273.0)
		})

		Convey("Should accept 'name' as a title alias", func() {
			tbl := L.NewTable()
			tbl.RawSetString("name", lua.LString("Ramble On"))
			tbl.RawSetString("url", lua.LString("https://example.com/ramble-on"))

			track, err := trackFromTable(tbl)
			So(err, ShouldBeNil)
			So(track.Title, ShouldEqual, "Ramble On")
		})

		Convey("Should default the ID to the URL", func() {
			tbl := L.NewTable()
			tbl.RawSetString("title", lua.LString("Ramble On"))
			tbl.RawSetString("url", lua.LString("https://example.com/ramble-on"))

			track, err := trackFromTable(tbl)
			So(err, ShouldBeNil)
			So(track.ID, ShouldEqual, "https://example.com/ramble-on")
		})

		Convey("Should parse a numeric-string duration", func() {
			tbl := L.NewTable()
			tbl.RawSetString("title", lua.LString("Ramble On"))
			tbl.RawSetString("url", lua.LString("https://example.com/ramble-on"))
			tbl.RawSetString("duration", lua.LString("273.5"))

			track, err := trackFromTable(tbl)
			So(err, ShouldBeNil)
			So(track.Duration.MustGet(), ShouldEqual, 273.5)
		})

		Convey("Should leave duration absent when missing", func() {
			tbl := L.NewTable()
			tbl.RawSetString("title", lua.LString("Ramble On"))
			tbl.RawSetString("url", lua.LString("https://example.com/ramble-on"))

			track, err := trackFromTable(tbl)
			So(err, ShouldBeNil)
			So(track.Duration.IsAbsent(), ShouldBeTrue)
		})

		Convey("Should fail when required field 'url' is missing", func() {
			tbl := L.NewTable()
			tbl.RawSetString("title", lua.LString("Ramble On"))

			_, err := trackFromTable(tbl)
			So(err, ShouldNotBeNil)
		})
	})
}
