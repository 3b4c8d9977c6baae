package player

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/samber/mo"
)

const (
	seekStep   = 5.0
	volumeStep = 0.1
	maxVolume  = 4.0

	renderInterval = 125 * time.Millisecond
)

// keyEvent is one decoded transport keypress.
type keyEvent int

const (
	keySpace keyEvent = iota
	keyLeft
	keyRight
	keyUp
	keyDown
	keyQuit      // q, escape, enter
	keyInterrupt // ctrl+c
)

// controller owns the playback state of one interactive session.
type controller struct {
	session  *Session
	path     string
	label    string
	duration mo.Option[float64]
	out      io.Writer

	offset    float64
	startedAt time.Time
	playing   bool
	volume    float64

	proc  decodeProc
	drawn bool
}

func (s *Session) listenInteractive(path string, duration mo.Option[float64]) (bool, error) {
	c := &controller{
		session:  s,
		path:     path,
		label:    filepath.Base(path),
		duration: duration,
		out:      s.output(),
		volume:   1.0,
	}

	// Spawn before touching the terminal, so a binary that vanished since
	// the version probe degrades cleanly to the basic adapter.
	if err := c.restartAt(0); err != nil {
		return false, fmt.Errorf("%w: %v", errSpawnFailed, err)
	}

	fd := int(os.Stdin.Fd())
	prior, rawErr := s.makeRaw(fd)

	fmt.Fprint(c.out, "\x1b[?25l")

	keys := s.keys
	if keys == nil {
		ch := make(chan keyEvent)
		stop := make(chan struct{})
		defer close(stop)
		go readKeys(os.Stdin, ch, stop)
		keys = ch
	}

	completed, err := c.loop(keys)

	c.clear()
	fmt.Fprint(c.out, "\x1b[?25h")
	if rawErr == nil {
		_ = s.restore(fd, prior)
	}

	if err == nil {
		if completed {
			fmt.Fprintf(c.out, "done listening to %s.\n", c.label)
		} else {
			fmt.Fprintf(c.out, "stopped %s.\n", c.label)
		}
	}

	return completed, err
}

// loop is the single event loop of the session. Keys, the render ticker and
// decoder exits are all serialized here, which is what keeps the
// one-decoder-at-a-time invariant trivial to uphold.
func (c *controller) loop(keys <-chan keyEvent) (bool, error) {
	ticker := time.NewTicker(renderInterval)
	defer ticker.Stop()

	for {
		c.render()

		select {
		case key := <-keys:
			switch key {
			case keyQuit, keyInterrupt:
				c.stopProc()
				return false, nil
			default:
				if err := c.apply(key); err != nil {
					c.stopProc()
					return false, err
				}
			}

		case <-ticker.C:
			// Fall through to re-render.

		case <-c.procDone():
			// Expected kills are consumed inside stopProc, so an exit seen
			// here means the decoder finished (or died) on its own.
			c.proc = nil
			c.playing = false
			return true, nil
		}
	}
}

// apply executes one transport action. It returns only after the action has
// fully settled, including the mandatory kill-then-spawn ordering.
func (c *controller) apply(key keyEvent) error {
	switch key {
	case keySpace:
		if c.playing {
			c.offset = c.position()
			c.stopProc()
			c.playing = false
			return nil
		}
		return c.restartAt(c.offset)

	case keyLeft:
		return c.restartAt(c.clampOffset(c.position() - seekStep))

	case keyRight:
		return c.restartAt(c.clampOffset(c.position() + seekStep))

	case keyUp:
		c.volume = clampVolume(c.volume + volumeStep)
		return c.restartAt(c.position())

	case keyDown:
		c.volume = clampVolume(c.volume - volumeStep)
		return c.restartAt(c.position())
	}

	return nil
}

// restartAt tears down any live decoder and spawns a fresh one at offset.
func (c *controller) restartAt(offset float64) error {
	c.stopProc()

	proc, err := c.session.spawn(c.path, offset, c.volume)
	if err != nil {
		return err
	}

	c.proc = proc
	c.offset = offset
	c.startedAt = c.session.now()
	c.playing = true
	return nil
}

// stopProc kills the live decoder and waits for its exit acknowledgement.
// The wait is mandatory: two decoders must never race for audio output.
func (c *controller) stopProc() {
	if c.proc == nil {
		return
	}

	c.proc.Stop()
	<-c.proc.Done()
	c.proc = nil
}

func (c *controller) procDone() <-chan struct{} {
	if c.proc == nil {
		return nil
	}
	return c.proc.Done()
}

// position returns the live playback position in seconds.
func (c *controller) position() float64 {
	pos := c.offset
	if c.playing {
		pos += c.session.now().Sub(c.startedAt).Seconds()
	}
	return c.clampOffset(pos)
}

// clampOffset keeps an offset inside [0, duration]. An unknown duration
// only clamps at zero.
func (c *controller) clampOffset(offset float64) float64 {
	if offset < 0 {
		return 0
	}
	if total, ok := c.duration.Get(); ok && offset > total {
		return total
	}
	return offset
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > maxVolume {
		return maxVolume
	}
	return v
}

// render redraws the two-line status block in place.
func (c *controller) render() {
	if c.drawn {
		fmt.Fprint(c.out, "\x1b[2A")
	}

	fmt.Fprintf(c.out, "\r\x1b[K%s\r\n", statusLine(c.label, c.position(), c.duration, c.playing, c.volume))
	fmt.Fprintf(c.out, "\r\x1b[K%s\r\n", controlsLine)
	c.drawn = true
}

// clear erases the status block. Idempotent.
func (c *controller) clear() {
	if !c.drawn {
		return
	}
	fmt.Fprint(c.out, "\x1b[2A\r\x1b[J")
	c.drawn = false
}

// keyPollInterval bounds how long a stdin read may block before the reader
// re-checks the stop channel.
const keyPollInterval = 50 * time.Millisecond

// readKeys decodes raw input bytes into transport keys. Sends are
// non-blocking: a key arriving while a prior action is still settling is
// dropped, which serializes transport actions without any extra locking.
//
// Reads carry a short deadline so the goroutine exits promptly once stop
// closes, leaving unread bytes for whoever owns the terminal next.
func readKeys(in *os.File, ch chan<- keyEvent, stop <-chan struct{}) {
	defer func() { _ = in.SetReadDeadline(time.Time{}) }()

	buf := make([]byte, 16)
	for {
		select {
		case <-stop:
			return
		default:
		}

		pollable := in.SetReadDeadline(time.Now().Add(keyPollInterval)) == nil

		n, err := in.Read(buf)
		if err != nil {
			if pollable && errors.Is(err, os.ErrDeadlineExceeded) {
				continue
			}
			return
		}

		for _, key := range parseKeys(buf[:n]) {
			select {
			case ch <- key:
			default:
			}
		}
	}
}

func parseKeys(b []byte) []keyEvent {
	var out []keyEvent
	for i := 0; i < len(b); i++ {
		switch b[i] {
		case ' ':
			out = append(out, keySpace)
		case 'q', 'Q', '\r', '\n':
			out = append(out, keyQuit)
		case 0x03:
			out = append(out, keyInterrupt)
		case 0x1b:
			if i+2 < len(b) && b[i+1] == '[' {
				switch b[i+2] {
				case 'A':
					out = append(out, keyUp)
				case 'B':
					out = append(out, keyDown)
				case 'C':
					out = append(out, keyRight)
				case 'D':
					out = append(out, keyLeft)
				}
				i += 2
			} else {
				out = append(out, keyQuit) // bare escape
			}
		}
	}
	return out
}
