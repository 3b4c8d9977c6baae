package scripts

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUpdateSource(t *testing.T) {
	Convey("UpdateSource", t, func() {
		script := []byte(`function Search(query) return {} end`)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(script)
		}))
		defer srv.Close()

		localPath := filepath.Join(t.TempDir(), "source.lua")

		Convey("Fetches and writes a new script", func() {
			So(UpdateSource(srv.URL, localPath), ShouldBeNil)

			got, err := os.ReadFile(localPath)
			So(err, ShouldBeNil)
			So(string(got), ShouldEqual, string(script))
		})

		Convey("Reports up to date when the local hash matches", func() {
			So(os.WriteFile(localPath, script, 0644), ShouldBeNil)
			So(UpdateSource(srv.URL, localPath), ShouldEqual, ErrUpToDate)
		})

		Convey("Errors on a non-OK status", func() {
			bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			}))
			defer bad.Close()

			So(UpdateSource(bad.URL, localPath), ShouldNotBeNil)
		})
	})
}
