package query

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"

	"github.com/drumtake-cli/drumtake/filesystem"
	"github.com/drumtake-cli/drumtake/key"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.SearchShowQuerySuggestions, true)
}

func TestQuery(t *testing.T) {
	Convey("Given query history", t, func() {
		q1 := "kashmir"
		q2 := "kashmir live 1975"

		Convey("When remembering queries", func() {
			So(Remember(q1, 1), ShouldBeNil)
			So(Remember(q2, 10), ShouldBeNil)

			Convey("Then suggestions come back most popular first", func() {
				memo = make(map[string][]string)

				s := SuggestMany("kashmir")
				So(len(s), ShouldBeGreaterThanOrEqualTo, 2)
				So(s[0], ShouldEqual, "kashmir live 1975")
			})

			Convey("Suggest returns the top match only", func() {
				memo = make(map[string][]string)

				top := Suggest("kashmir")
				So(top.IsPresent(), ShouldBeTrue)
				So(top.MustGet(), ShouldEqual, "kashmir live 1975")
			})

			Convey("Equal ranks fall back to recency", func() {
				So(Remember("stairway", 3), ShouldBeNil)
				So(Remember("stairway to heaven", 3), ShouldBeNil)
				memo = make(map[string][]string)

				s := SuggestMany("stairway")
				So(len(s), ShouldBeGreaterThanOrEqualTo, 2)
				So(s[0], ShouldEqual, "stairway to heaven")
			})

			Convey("It normalizes input", func() {
				So(normalize("  KASHMIR  "), ShouldEqual, "kashmir")
			})

			Convey("Suggestions are suppressed when disabled", func() {
				viper.Set(key.SearchShowQuerySuggestions, false)
				So(SuggestMany("kashmir"), ShouldBeEmpty)
				viper.Set(key.SearchShowQuerySuggestions, true)
			})
		})
	})
}
