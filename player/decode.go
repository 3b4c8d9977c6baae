package player

import (
	"fmt"
	"os/exec"
	"strconv"
	"sync"
)

// spawnFunc starts a decode process playing path from offset seconds at the
// given volume multiplier.
type spawnFunc func(path string, offset, volume float64) (decodeProc, error)

// decodeProc is the handle to one live decoder. The controller owns at most
// one at a time and always awaits Done after Stop before spawning the next.
type decodeProc interface {
	// Done is closed when the process has fully exited.
	Done() <-chan struct{}

	// Stop marks the kill as expected and signals the process group.
	Stop()

	// KillExpected reports whether Stop preceded the exit.
	KillExpected() bool
}

// procHandle wraps one external audio process, for both the interactive
// decoder and the basic fallback player.
type procHandle struct {
	cmd    *exec.Cmd
	exited chan struct{}

	mu           sync.Mutex
	killExpected bool
}

// startProc launches a command detached from the parent process group and
// reaps it in the background to prevent zombies.
func startProc(cmd *exec.Cmd) (*procHandle, error) {
	cmd.SysProcAttr = sysProcAttr()
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	p := &procHandle{
		cmd:    cmd,
		exited: make(chan struct{}),
	}

	go func() {
		_ = cmd.Wait()
		close(p.exited)
	}()

	return p, nil
}

// spawnFfplay launches ffplay as a pure audio decoder: no window,
// exit at end of stream, start offset and volume applied up front.
func spawnFfplay(path string, offset, volume float64) (decodeProc, error) {
	args := []string{
		"-nodisp",
		"-autoexit",
		"-loglevel", "error",
		"-ss", strconv.FormatFloat(offset, 'f', 2, 64),
		"-af", fmt.Sprintf("volume=%.2f", volume),
		path,
	}

	return startProc(exec.Command("ffplay", args...))
}

func (p *procHandle) Done() <-chan struct{} {
	return p.exited
}

func (p *procHandle) Stop() {
	p.mu.Lock()
	p.killExpected = true
	p.mu.Unlock()

	_ = killProcess(p.cmd)
}

func (p *procHandle) KillExpected() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.killExpected
}
