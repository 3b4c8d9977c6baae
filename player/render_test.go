package player

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFormatTime(t *testing.T) {
	Convey("formatTime", t, func() {
		So(formatTime(mo.Some(0.0)), ShouldEqual, "00:00")
		So(formatTime(mo.Some(3.0)), ShouldEqual, "00:03")
		So(formatTime(mo.Some(125.4)), ShouldEqual, "02:05")
		So(formatTime(mo.Some(3600.0)), ShouldEqual, "60:00")

		Convey("Unknown durations render as dashes", func() {
			So(formatTime(mo.None[float64]()), ShouldEqual, "--:--")
		})
	})
}

func TestRenderBar(t *testing.T) {
	Convey("renderBar", t, func() {
		Convey("Empty at the start", func() {
			bar := renderBar(0, mo.Some(100.0))
			So(countFilled(bar), ShouldEqual, 0)
		})

		Convey("Full at the end", func() {
			bar := renderBar(100, mo.Some(100.0))
			So(countFilled(bar), ShouldEqual, barWidth)
		})

		Convey("Half way", func() {
			bar := renderBar(50, mo.Some(100.0))
			So(countFilled(bar), ShouldEqual, barWidth/2)
		})

		Convey("Overrun stays clamped", func() {
			bar := renderBar(150, mo.Some(100.0))
			So(countFilled(bar), ShouldEqual, barWidth)
		})

		Convey("Unknown duration degenerates to an all-empty bar", func() {
			bar := renderBar(42, mo.None[float64]())
			So(countFilled(bar), ShouldEqual, 0)
			So(len([]rune(bar)), ShouldEqual, barWidth)
		})
	})
}

func TestStatusLine(t *testing.T) {
	Convey("statusLine", t, func() {
		line := statusLine("song.mp3", 3, mo.Some(125.4), true, 1.0)

		So(line, ShouldStartWith, "listening to song.mp3 [")
		So(line, ShouldContainSubstring, "00:03 / 02:05")
		So(line, ShouldContainSubstring, "· playing ·")
		So(line, ShouldEndWith, "vol 100%")

		Convey("Paused state and volume percentage", func() {
			line := statusLine("song.mp3", 3, mo.Some(125.4), false, 0.5)
			So(line, ShouldContainSubstring, "· paused ·")
			So(line, ShouldEndWith, "vol 50%")
		})
	})
}

func TestParseKeys(t *testing.T) {
	Convey("parseKeys", t, func() {
		So(parseKeys([]byte(" ")), ShouldResemble, []keyEvent{keySpace})
		So(parseKeys([]byte("q")), ShouldResemble, []keyEvent{keyQuit})
		So(parseKeys([]byte("\r")), ShouldResemble, []keyEvent{keyQuit})
		So(parseKeys([]byte{0x03}), ShouldResemble, []keyEvent{keyInterrupt})
		So(parseKeys([]byte{0x1b}), ShouldResemble, []keyEvent{keyQuit})

		Convey("Arrow escape sequences", func() {
			So(parseKeys([]byte("\x1b[A")), ShouldResemble, []keyEvent{keyUp})
			So(parseKeys([]byte("\x1b[B")), ShouldResemble, []keyEvent{keyDown})
			So(parseKeys([]byte("\x1b[C")), ShouldResemble, []keyEvent{keyRight})
			So(parseKeys([]byte("\x1b[D")), ShouldResemble, []keyEvent{keyLeft})
		})

		Convey("Unmapped bytes are skipped", func() {
			So(parseKeys([]byte("xyz")), ShouldBeEmpty)
		})
	})
}

func TestReadKeys(t *testing.T) {
	Convey("readKeys", t, func() {
		r, w, err := os.Pipe()
		So(err, ShouldBeNil)
		defer r.Close()
		defer w.Close()

		ch := make(chan keyEvent, 8)
		stop := make(chan struct{})
		done := make(chan struct{})
		go func() {
			readKeys(r, ch, stop)
			close(done)
		}()

		Convey("Decodes and forwards input bytes", func() {
			_, err := w.Write([]byte("q"))
			So(err, ShouldBeNil)

			select {
			case key := <-ch:
				So(key, ShouldEqual, keyQuit)
			case <-time.After(time.Second):
				So("no key arrived", ShouldBeBlank)
			}

			close(stop)
			<-done
		})

		Convey("Exits on stop without consuming later input", func() {
			close(stop)
			select {
			case <-done:
			case <-time.After(time.Second):
				So("reader did not exit", ShouldBeBlank)
			}

			// A byte arriving after the reader exited belongs to whoever
			// reads the input next.
			_, err := w.Write([]byte(" "))
			So(err, ShouldBeNil)

			So(r.SetReadDeadline(time.Now().Add(time.Second)), ShouldBeNil)
			buf := make([]byte, 1)
			n, err := r.Read(buf)
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 1)
			So(buf[0], ShouldEqual, byte(' '))
		})
	})
}

func TestProbeDuration(t *testing.T) {
	Convey("probeDuration", t, func() {
		Convey("Numeric output becomes a known duration", func() {
			d := probeDuration("song.mp3", func(string) (string, error) {
				return "125.4\n", nil
			})
			So(d.MustGet(), ShouldEqual, 125.4)
		})

		Convey("Non-numeric output degrades to unknown", func() {
			d := probeDuration("song.mp3", func(string) (string, error) {
				return "N/A", nil
			})
			So(d.IsAbsent(), ShouldBeTrue)
		})

		Convey("Execution errors degrade to unknown", func() {
			d := probeDuration("song.mp3", func(string) (string, error) {
				return "", errors.New("ffprobe exploded")
			})
			So(d.IsAbsent(), ShouldBeTrue)
		})
	})
}
