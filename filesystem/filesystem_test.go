package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBackendSwitching(t *testing.T) {
	Convey("Filesystem backend", t, func() {
		Convey("Defaults to the OS filesystem", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Switches to the in-memory filesystem", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")

			So(API().WriteFile("probe.txt", []byte("x"), 0655), ShouldBeNil)
			data, err := API().ReadFile("probe.txt")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "x")
		})

		Reset(func() {
			SetOsFs()
		})
	})
}
