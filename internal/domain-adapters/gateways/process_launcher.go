package gateways

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/ochairo/saclient/internal/domain/entities"
	"github.com/ochairo/saclient/internal/domain/interfaces/gateways"
)

// outputDrainDelay bounds how long output is drained after the process exits,
// in case a child it spawned still holds the pipe open
const outputDrainDelay = 5 * time.Second

// ProcessLauncher starts client scripts as subprocesses
type ProcessLauncher struct {
	env        []string
	drainDelay time.Duration
}

// NewProcessLauncher creates a launcher that passes env on top of the
// current environment
func NewProcessLauncher(env map[string]string) *ProcessLauncher {
	l := &ProcessLauncher{drainDelay: outputDrainDelay}
	for key, value := range env {
		l.env = append(l.env, fmt.Sprintf("%s=%s", key, value))
	}
	return l
}

// Start launches the invocation with stdout and stderr merged into one stream
func (l *ProcessLauncher) Start(inv entities.Invocation) (gateways.Process, error) {
	//nolint:gosec // G204: the client script path comes from the install directory
	cmd := exec.Command(inv.Script, inv.Args...)
	cmd.Dir = inv.WorkingDir
	cmd.WaitDelay = l.drainDelay
	if len(l.env) > 0 {
		cmd.Env = append(os.Environ(), l.env...)
	}

	pr, pw := io.Pipe()
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err := cmd.Start(); err != nil {
		_ = pw.Close()
		_ = pr.Close()
		return nil, fmt.Errorf("failed to start %s: %w", inv.Script, err)
	}

	p := &process{
		cmd:    cmd,
		output: pr,
		done:   make(chan struct{}),
	}
	go p.wait(pw)

	return p, nil
}

// process wraps a started exec.Cmd
type process struct {
	cmd    *exec.Cmd
	output *io.PipeReader
	done   chan struct{}

	mu       sync.Mutex
	exitCode int
	err      error
}

// wait reaps the process and closes the output stream once every byte the
// process wrote has been copied into it.
func (p *process) wait(pw *io.PipeWriter) {
	err := p.cmd.Wait()

	p.mu.Lock()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		p.exitCode = 0
	case errors.As(err, &exitErr):
		p.exitCode = exitErr.ExitCode()
	case errors.Is(err, exec.ErrWaitDelay) && p.cmd.ProcessState != nil:
		// the process exited but a child it spawned still holds the output
		p.exitCode = p.cmd.ProcessState.ExitCode()
	default:
		p.exitCode = -1
		p.err = err
	}
	p.mu.Unlock()

	_ = pw.Close()
	close(p.done)
}

func (p *process) Output() io.Reader {
	return p.output
}

func (p *process) Done() <-chan struct{} {
	return p.done
}

func (p *process) Result() (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.exitCode, p.err
}

// Kill terminates the process and closes the read side of its output so a
// pending copy into the pipe cannot keep Wait from returning.
func (p *process) Kill() error {
	err := p.cmd.Process.Kill()
	_ = p.output.CloseWithError(io.ErrClosedPipe)
	if err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("failed to kill process: %w", err)
	}
	return nil
}
