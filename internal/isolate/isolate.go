// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package isolate runs untrusted or slow subprocesses under a hard
// deadline. The caller pipes input on stdin and receives stdout; when
// the deadline expires the process is force-killed and any partial
// output is discarded. Third-party converters are known to hang or
// crash on pathological input, so the kill path is the contract, not
// an edge case.
package isolate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"
)

// ErrDeadline is returned when the subprocess exceeded its deadline and
// was terminated. Output produced before the kill is never returned.
var ErrDeadline = errors.New("isolate: deadline exceeded")

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunPiped(ctx context.Context, name string, args []string, stdin io.Reader, stdout io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunPiped(ctx context.Context, name string, args []string, stdin io.Reader, stdout io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	// Give the process a short grace period after Cancel, then SIGKILL.
	// Wait still reaps the child on every path, so no zombie survives a
	// deadline expiry.
	cmd.WaitDelay = 3 * time.Second
	return cmd.Run()
}

var defaultExec executor = &osExecutor{}

// Runner invokes one subprocess command under a deadline.
type Runner struct {
	bin     string
	args    []string
	timeout time.Duration
	exec    executor
}

// NewRunner creates a Runner for the given binary and arguments. A zero
// timeout means the caller's context alone bounds execution.
func NewRunner(bin string, args []string, timeout time.Duration) *Runner {
	return &Runner{bin: bin, args: args, timeout: timeout, exec: defaultExec}
}

// Bin returns the binary the runner invokes.
func (r *Runner) Bin() string { return r.bin }

// Available reports whether the binary exists on PATH (or at its
// explicit path).
func (r *Runner) Available() bool {
	_, err := r.exec.LookPath(r.bin)
	return err == nil
}

// Call runs the subprocess with input on stdin and returns its stdout.
// On deadline expiry the process is killed and Call returns ErrDeadline;
// whatever the process wrote before dying is discarded.
func (r *Runner) Call(ctx context.Context, input []byte) ([]byte, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var out bytes.Buffer
	err := r.exec.RunPiped(ctx, r.bin, r.args, bytes.NewReader(input), &out)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %s after %s", ErrDeadline, r.bin, r.timeout)
		}
		return nil, fmt.Errorf("running %s: %w", r.bin, err)
	}
	return out.Bytes(), nil
}
