package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"
)

// ErrAlreadyRunning is returned by Start while a previous run is still in
// flight. The active run's status is left untouched.
var ErrAlreadyRunning = errors.New("a deployment is already running")

// Status is the observable state of the current (or most recent) run.
// Success is nil while the run is in flight and is always set before
// Running flips to false, so a poller never sees a finished run with an
// undecided outcome.
type Status struct {
	Running  bool   `json:"running"`
	Output   string `json:"output"`
	Success  *bool  `json:"success"`
	Command  string `json:"command,omitempty"`
	Template string `json:"template,omitempty"`
}

// Spec describes one run: the full argument vector, the working directory
// to execute in, and the template name the run applies to.
type Spec struct {
	Command  []string
	Dir      string
	Template string
}

// Runner owns the single execution slot. All status mutation happens under
// its mutex; readers get copies via Snapshot.
type Runner struct {
	logger *slog.Logger

	mu     sync.Mutex
	status Status
	cancel context.CancelFunc
	done   chan struct{}
}

// New returns an idle Runner.
func New(logger *slog.Logger) *Runner {
	return &Runner{logger: logger}
}

// Start launches the command asynchronously and returns immediately. It
// fails with ErrAlreadyRunning if a run is in flight. The subprocess is
// detached from the caller's context cancellation (an HTTP request ending
// must not kill the run); Cancel is the explicit way to abort.
func (r *Runner) Start(ctx context.Context, spec Spec) error {
	if len(spec.Command) == 0 {
		return errors.New("empty command")
	}

	r.mu.Lock()
	if r.status.Running {
		r.mu.Unlock()
		return ErrAlreadyRunning
	}
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	r.cancel = cancel
	done := make(chan struct{})
	r.done = done
	r.status = Status{
		Running:  true,
		Command:  strings.Join(spec.Command, " "),
		Template: spec.Template,
	}
	r.mu.Unlock()

	r.logger.Info("Starting deployment run.",
		"command", r.Snapshot().Command, "dir", spec.Dir, "template", spec.Template)
	go r.run(runCtx, spec, done)
	return nil
}

// Snapshot returns a copy of the current status. Safe to call at any
// frequency; it has no side effects.
func (r *Runner) Snapshot() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.status
	if r.status.Success != nil {
		ok := *r.status.Success
		st.Success = &ok
	}
	return st
}

// Cancel aborts the in-flight run by killing its subprocess. It reports
// whether there was a run to cancel. The run still finalizes through the
// normal path, ending with Success set to false.
func (r *Runner) Cancel() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.status.Running || r.cancel == nil {
		return false
	}
	r.cancel()
	return true
}

// Wait blocks until the current run finishes or ctx is done. It returns
// immediately when no run is active.
func (r *Runner) Wait(ctx context.Context) error {
	r.mu.Lock()
	done := r.done
	running := r.status.Running
	r.mu.Unlock()
	if !running || done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// pipeDrainGrace bounds how long a finished run waits for the output pipe
// to reach EOF. A killed shell can leave grandchildren holding the write
// end open; their output is forfeited after the grace period.
const pipeDrainGrace = 2 * time.Second

// run is the background half of Start. It streams merged stdout/stderr
// into the status line by line so pollers can watch output mid-run, then
// finalizes the status when the subprocess exits.
func (r *Runner) run(ctx context.Context, spec Spec, done chan struct{}) {
	defer close(done)

	cmd := exec.CommandContext(ctx, spec.Command[0], spec.Command[1:]...)
	cmd.Dir = spec.Dir

	pr, pw, err := os.Pipe()
	if err != nil {
		r.appendOutput(fmt.Sprintf("failed to create output pipe: %v\n", err))
		r.finalize(ctx, false)
		return
	}
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err := cmd.Start(); err != nil {
		pw.Close()
		pr.Close()
		// Launch failures (binary missing, permission denied) end in the
		// same terminal shape as a failing command.
		r.appendOutput(fmt.Sprintf("failed to start %q: %v\n", spec.Command[0], err))
		r.finalize(ctx, false)
		return
	}
	// The child holds its own copies of the write end.
	pw.Close()

	scanDone := make(chan struct{})
	go func() {
		defer close(scanDone)
		sc := bufio.NewScanner(pr)
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for sc.Scan() {
			r.appendOutput(sc.Text() + "\n")
		}
	}()

	err = cmd.Wait()
	if ctx.Err() != nil {
		// Force EOF on the scanner rather than waiting out whatever the
		// killed process left behind.
		pr.Close()
	}
	select {
	case <-scanDone:
	case <-time.After(pipeDrainGrace):
		pr.Close()
		<-scanDone
	}
	pr.Close()

	if ctx.Err() != nil {
		r.appendOutput("run cancelled\n")
	}
	r.finalize(ctx, err == nil)
}

// appendOutput appends text to the run's output under the lock.
func (r *Runner) appendOutput(text string) {
	r.mu.Lock()
	r.status.Output += text
	r.mu.Unlock()
}

// finalize records the outcome and releases the slot. Success is written
// before Running so the two are never observable out of order.
func (r *Runner) finalize(ctx context.Context, ok bool) {
	r.mu.Lock()
	r.status.Success = &ok
	r.status.Running = false
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	command := r.status.Command
	r.mu.Unlock()

	r.logger.Info("Deployment run finished.",
		"command", command, "success", ok, "cancelled", ctx.Err() != nil)
}
