package stems

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"

	"github.com/drumtake-cli/drumtake/key"
	"github.com/drumtake-cli/drumtake/network"
)

func newTestClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    network.Client,
		sleep:   func(time.Duration) {},
	}
}

func TestJobState(t *testing.T) {
	Convey("JobState", t, func() {
		So(StateQueued.Terminal(), ShouldBeFalse)
		So(StateProcessing.Terminal(), ShouldBeFalse)
		So(StateDone.Terminal(), ShouldBeTrue)
		So(StateFailed.Terminal(), ShouldBeTrue)
	})
}

func TestNewClient(t *testing.T) {
	Convey("NewClient", t, func() {
		Convey("Fails without a configured URL", func() {
			viper.Set(key.SeparatorURL, "")
			_, err := NewClient()
			So(err, ShouldEqual, ErrNoServiceURL)
		})

		Convey("Succeeds with a URL", func() {
			viper.Set(key.SeparatorURL, "http://localhost:9999")
			c, err := NewClient()
			So(err, ShouldBeNil)
			So(c.baseURL, ShouldEqual, "http://localhost:9999")
		})
	})
}

func TestSubmitAndWait(t *testing.T) {
	Convey("Given a separation service", t, func() {
		var polls int64

		var server *httptest.Server
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.Method == http.MethodPost && r.URL.Path == "/jobs":
				if err := r.ParseMultipartForm(1 << 20); err != nil || r.FormValue("stem") != "drums" {
					http.Error(w, "bad upload", http.StatusBadRequest)
					return
				}
				_ = json.NewEncoder(w).Encode(Job{ID: "job-1", State: StateQueued})
			case r.Method == http.MethodGet && r.URL.Path == "/jobs/job-1":
				n := atomic.AddInt64(&polls, 1)
				job := Job{ID: "job-1", State: StateProcessing, Progress: 0.5}
				if n >= 3 {
					job.State = StateDone
					job.Progress = 1
					job.Stems = map[string]string{"drums": server.URL + "/files/drums.mp3"}
				}
				_ = json.NewEncoder(w).Encode(job)
			case r.URL.Path == "/files/drums.mp3":
				_, _ = w.Write([]byte("drum bytes"))
			default:
				http.NotFound(w, r)
			}
		}))
		defer server.Close()

		viper.Set(key.SeparatorStem, "drums")
		viper.Set(key.SeparatorPollInterval, 1)

		c := newTestClient(server.URL)

		audio := filepath.Join(t.TempDir(), "song.mp3")
		So(os.WriteFile(audio, []byte("audio bytes"), 0644), ShouldBeNil)

		Convey("Submit creates a queued job", func() {
			job, err := c.Submit(audio)
			So(err, ShouldBeNil)
			So(job.ID, ShouldEqual, "job-1")
			So(job.State, ShouldEqual, StateQueued)
		})

		Convey("Wait polls until the job is done", func() {
			var seen []JobState
			job, err := c.Wait("job-1", func(j *Job) {
				seen = append(seen, j.State)
			})
			So(err, ShouldBeNil)
			So(job.State, ShouldEqual, StateDone)
			So(len(seen), ShouldBeGreaterThanOrEqualTo, 2)
		})

		Convey("DownloadStem writes the stem file", func() {
			job := &Job{
				ID:    "job-1",
				State: StateDone,
				Stems: map[string]string{"drums": server.URL + "/files/drums.mp3"},
			}

			out := filepath.Join(t.TempDir(), "drums.mp3")
			So(c.DownloadStem(job, "drums", out), ShouldBeNil)

			data, err := os.ReadFile(out)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "drum bytes")
		})

		Convey("DownloadStem refuses unfinished jobs", func() {
			job := &Job{ID: "job-1", State: StateProcessing}
			err := c.DownloadStem(job, "drums", filepath.Join(t.TempDir(), "x.mp3"))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestWaitFailure(t *testing.T) {
	Convey("Given a job that fails remotely", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(Job{ID: "job-2", State: StateFailed, Error: "separation model crashed"})
		}))
		defer server.Close()

		viper.Set(key.SeparatorPollInterval, 1)
		c := newTestClient(server.URL)

		Convey("Wait surfaces the remote error", func() {
			_, err := c.Wait("job-2", nil)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "separation model crashed")
		})
	})
}
