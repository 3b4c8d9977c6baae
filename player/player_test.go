package player

import (
	"errors"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/samber/mo"
	"golang.org/x/term"
)

// fakeSpawner stands in for ffplay. It tracks how many fake decode
// processes are alive at once, which is the invariant most tests care about.
type fakeSpawner struct {
	mu       sync.Mutex
	live     int
	maxLive  int
	offsets  []float64
	volumes  []float64
	procs    []*fakeProc
	failNext bool
}

func (f *fakeSpawner) spawn(path string, offset, volume float64) (decodeProc, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failNext {
		return nil, errors.New("spawn refused")
	}

	f.offsets = append(f.offsets, offset)
	f.volumes = append(f.volumes, volume)
	f.live++
	if f.live > f.maxLive {
		f.maxLive = f.live
	}

	p := &fakeProc{spawner: f, done: make(chan struct{})}
	f.procs = append(f.procs, p)
	return p, nil
}

func (f *fakeSpawner) lastProc() *fakeProc {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.procs[len(f.procs)-1]
}

func (f *fakeSpawner) spawnCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.procs)
}

func (f *fakeSpawner) waitForSpawn(n int) {
	for f.spawnCount() < n {
		time.Sleep(time.Millisecond)
	}
}

type fakeProc struct {
	spawner *fakeSpawner
	done    chan struct{}
	once    sync.Once

	mu           sync.Mutex
	killExpected bool
}

func (p *fakeProc) Done() <-chan struct{} { return p.done }

func (p *fakeProc) Stop() {
	p.mu.Lock()
	p.killExpected = true
	p.mu.Unlock()
	p.exit()
}

func (p *fakeProc) KillExpected() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.killExpected
}

// finish simulates the decoder reaching end of stream on its own.
func (p *fakeProc) finish() { p.exit() }

func (p *fakeProc) exit() {
	p.once.Do(func() {
		p.spawner.mu.Lock()
		p.spawner.live--
		p.spawner.mu.Unlock()
		close(p.done)
	})
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Unix(1700000000, 0)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestSession(sp *fakeSpawner, clock *fakeClock, keys <-chan keyEvent) *Session {
	return &Session{
		out:         io.Discard,
		isTerminal:  func(int) bool { return true },
		probeFfplay: func() error { return nil },
		spawn:       sp.spawn,
		spawnBasic:  func(string) (decodeProc, error) { return sp.spawn("", 0, 1) },
		now:         clock.Now,
		makeRaw:     func(int) (*term.State, error) { return nil, nil },
		restore:     func(int, *term.State) error { return nil },
		keys:        keys,
	}
}

func TestSingleDecodeProcess(t *testing.T) {
	Convey("Given a busy sequence of transport actions", t, func() {
		sp := &fakeSpawner{}
		keys := make(chan keyEvent, 16)
		s := newTestSession(sp, newFakeClock(), keys)

		for _, k := range []keyEvent{keySpace, keySpace, keyRight, keyLeft, keyUp, keyDown, keyQuit} {
			keys <- k
		}

		completed, err := s.Listen("song.mp3", mo.Some(100.0))

		Convey("At most one decode process is ever alive", func() {
			So(err, ShouldBeNil)
			So(completed, ShouldBeFalse)
			So(sp.maxLive, ShouldEqual, 1)
			So(sp.live, ShouldEqual, 0)
		})
	})
}

func TestSeekClamping(t *testing.T) {
	Convey("Seeking with a known duration", t, func() {
		sp := &fakeSpawner{}
		keys := make(chan keyEvent, 16)
		s := newTestSession(sp, newFakeClock(), keys)

		keys <- keyLeft  // 0 - 5 clamps to 0
		keys <- keyRight // 0 + 5 = 5
		keys <- keyRight // 10
		keys <- keyRight // 15 clamps to 12
		keys <- keyQuit

		_, err := s.Listen("song.mp3", mo.Some(12.0))
		So(err, ShouldBeNil)

		Convey("Offsets clamp at zero and at the duration", func() {
			So(sp.offsets, ShouldResemble, []float64{0, 0, 5, 10, 12})
		})
	})

	Convey("Seeking with an unknown duration", t, func() {
		sp := &fakeSpawner{}
		keys := make(chan keyEvent, 16)
		s := newTestSession(sp, newFakeClock(), keys)

		keys <- keyRight
		keys <- keyRight
		keys <- keyRight
		keys <- keyQuit

		_, err := s.Listen("song.mp3", mo.None[float64]())
		So(err, ShouldBeNil)

		Convey("The upper bound is never clamped", func() {
			So(sp.offsets, ShouldResemble, []float64{0, 5, 10, 15})
		})
	})
}

func TestVolumeBounds(t *testing.T) {
	Convey("Volume adjustments are idempotent at the boundaries", t, func() {
		sp := &fakeSpawner{}
		keys := make(chan keyEvent, 256)
		s := newTestSession(sp, newFakeClock(), keys)

		for i := 0; i < 45; i++ {
			keys <- keyUp
		}
		for i := 0; i < 100; i++ {
			keys <- keyDown
		}
		keys <- keyQuit

		_, err := s.Listen("song.mp3", mo.Some(100.0))
		So(err, ShouldBeNil)

		for _, v := range sp.volumes {
			So(v, ShouldBeBetweenOrEqual, 0.0, 4.0)
		}
		So(sp.volumes[45], ShouldEqual, 4.0)                // after all the ups
		So(sp.volumes[len(sp.volumes)-1], ShouldEqual, 0.0) // after all the downs
	})
}

func TestPauseResumePosition(t *testing.T) {
	Convey("Pause then resume is a no-op on position", t, func() {
		sp := &fakeSpawner{}
		clock := newFakeClock()
		keys := make(chan keyEvent)
		s := newTestSession(sp, clock, keys)

		result := make(chan bool, 1)
		go func() {
			completed, _ := s.Listen("song.mp3", mo.Some(100.0))
			result <- completed
		}()

		// Unbuffered sends return only once the loop has picked the key up,
		// so the clock moves between settled actions.
		sp.waitForSpawn(1)
		clock.Advance(3 * time.Second)
		keys <- keySpace // pause at 3
		keys <- keySpace // resume
		keys <- keyQuit

		So(<-result, ShouldBeFalse)
		So(sp.offsets, ShouldResemble, []float64{0, 3})
	})
}

func TestCompletionSemantics(t *testing.T) {
	Convey("A decoder that exits on its own completes the session", t, func() {
		sp := &fakeSpawner{}
		keys := make(chan keyEvent)
		s := newTestSession(sp, newFakeClock(), keys)

		result := make(chan bool, 1)
		go func() {
			completed, _ := s.Listen("song.mp3", mo.Some(100.0))
			result <- completed
		}()

		// Wait for the spawn, then end the stream naturally.
		sp.waitForSpawn(1)
		sp.lastProc().finish()

		So(<-result, ShouldBeTrue)
	})

	Convey("A controller-issued kill reports completed=false", t, func() {
		sp := &fakeSpawner{}
		keys := make(chan keyEvent, 1)
		s := newTestSession(sp, newFakeClock(), keys)

		keys <- keyInterrupt
		completed, err := s.Listen("song.mp3", mo.Some(100.0))

		So(err, ShouldBeNil)
		So(completed, ShouldBeFalse)
		So(sp.lastProc().KillExpected(), ShouldBeTrue)
	})
}

func TestRenderScenario(t *testing.T) {
	Convey("Given a probed duration of 125.4", t, func() {
		sp := &fakeSpawner{}
		clock := newFakeClock()
		s := newTestSession(sp, clock, nil)

		c := &controller{
			session:  s,
			path:     "song.mp3",
			label:    "song.mp3",
			duration: mo.Some(125.4),
			out:      io.Discard,
			volume:   1.0,
		}
		So(c.restartAt(0), ShouldBeNil)

		Convey("After 3 simulated seconds the elapsed time reads 00:03", func() {
			clock.Advance(3 * time.Second)
			line := statusLine(c.label, c.position(), c.duration, c.playing, c.volume)
			So(line, ShouldContainSubstring, "00:03 / 02:05")
			So(line, ShouldContainSubstring, "playing")
			So(line, ShouldContainSubstring, "vol 100%")
		})

		Convey("Right-arrow advances the offset to 8 and refills the bar", func() {
			clock.Advance(3 * time.Second)
			So(c.apply(keyRight), ShouldBeNil)
			So(c.position(), ShouldEqual, 8.0)

			bar := renderBar(c.position(), c.duration)
			So(len([]rune(bar)), ShouldEqual, barWidth)
			// 8/125.4 of 20 cells rounds to a single filled cell.
			So(countFilled(bar), ShouldEqual, 1)
		})
	})
}

func TestNoTTYDelegation(t *testing.T) {
	Convey("Without a terminal the interactive decoder is never spawned", t, func() {
		sp := &fakeSpawner{}
		s := newTestSession(sp, newFakeClock(), nil)

		interactiveSpawns := 0
		s.isTerminal = func(int) bool { return false }
		s.spawn = func(string, float64, float64) (decodeProc, error) {
			interactiveSpawns++
			return nil, errors.New("must not be called")
		}

		result := make(chan bool, 1)
		go func() {
			completed, _ := s.Listen("song.mp3", mo.Some(10.0))
			result <- completed
		}()

		sp.waitForSpawn(1)
		sp.lastProc().finish()

		So(<-result, ShouldBeTrue)
		So(interactiveSpawns, ShouldEqual, 0)
	})
}

func TestBasicAdapterInterrupt(t *testing.T) {
	Convey("An interrupt mid-playback resolves without an error", t, func() {
		sp := &fakeSpawner{}
		interrupts := make(chan os.Signal, 1)
		s := newTestSession(sp, newFakeClock(), nil)
		s.isTerminal = func(int) bool { return false }
		s.interrupts = interrupts

		result := make(chan bool, 1)
		errs := make(chan error, 1)
		go func() {
			completed, err := s.Listen("song.mp3", mo.Some(10.0))
			result <- completed
			errs <- err
		}()

		sp.waitForSpawn(1)
		interrupts <- os.Interrupt

		So(<-result, ShouldBeFalse)
		So(<-errs, ShouldBeNil)
	})
}

func TestSpawnFailureFallback(t *testing.T) {
	Convey("When the interactive decoder fails at actual spawn time", t, func() {
		sp := &fakeSpawner{}
		s := newTestSession(sp, newFakeClock(), nil)
		s.spawn = func(string, float64, float64) (decodeProc, error) {
			return nil, errors.New("binary vanished")
		}

		result := make(chan bool, 1)
		go func() {
			completed, _ := s.Listen("song.mp3", mo.Some(10.0))
			result <- completed
		}()

		sp.waitForSpawn(1)
		sp.lastProc().finish()

		Convey("Playback falls through to the basic adapter", func() {
			So(<-result, ShouldBeTrue)
			So(s.noticeShown, ShouldBeTrue)
		})
	})
}

func countFilled(bar string) int {
	n := 0
	for _, r := range bar {
		if r == '█' {
			n++
		}
	}
	return n
}
