package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		Convey("Equal versions", func() {
			c, err := Compare("1.2.3", "1.2.3")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, 0)
		})

		Convey("Leading v prefix is ignored", func() {
			c, err := Compare("v1.2.3", "1.2.3")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, 0)
		})

		Convey("Major beats minor and patch", func() {
			c, err := Compare("2.0.0", "1.9.9")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, 1)
		})

		Convey("Patch difference", func() {
			c, err := Compare("0.1.0", "0.1.1")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, -1)
		})

		Convey("Malformed version errors", func() {
			_, err := Compare("1.2", "1.2.3")
			So(err, ShouldNotBeNil)
		})
	})
}
