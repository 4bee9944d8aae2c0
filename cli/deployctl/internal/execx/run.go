package execx

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Shell is the interpreter used for step commands.
const Shell = "sh"

type Result struct {
	Code   int
	Stdout string
	Stderr string
	Err    error
}

// Executor runs one shell command line to completion.
type Executor interface {
	Shell(ctx context.Context, command string) Result
}

// Capturer runs a binary and returns its stdout.
type Capturer interface {
	Capture(ctx context.Context, name string, args ...string) (string, Result)
}

// Host executes commands on the local machine.
type Host struct{}

func (Host) Shell(ctx context.Context, command string) Result {
	return RunShell(ctx, command)
}

func (Host) Capture(ctx context.Context, name string, args ...string) (string, Result) {
	return Capture(ctx, name, args...)
}

func debug(name string, args ...string) {
	if os.Getenv("DEPLOYKIT_DEBUG") == "1" {
		fmt.Fprintf(os.Stderr, "+ %s\n", strings.Join(append([]string{name}, args...), " "))
	}
}

func exitCode(ctx context.Context, err error) int {
	if err == nil {
		return 0
	}
	if ee, ok := err.(*exec.ExitError); ok {
		return ee.ExitCode()
	}
	if ctx.Err() == context.DeadlineExceeded {
		return 124
	}
	return 1
}

// RunShell runs command through `sh -c` and blocks until it exits. Stdout and
// stderr are captured separately; nothing is streamed to the host.
func RunShell(ctx context.Context, command string) Result {
	debug(Shell, "-c", command)
	cmd := exec.CommandContext(ctx, Shell, "-c", command)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return Result{Code: exitCode(ctx, err), Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}

// Capture runs a command and returns stdout as string and exit code.
func Capture(ctx context.Context, name string, args ...string) (string, Result) {
	debug(name, args...)
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	return string(out), Result{Code: exitCode(ctx, err), Stdout: string(out), Err: err}
}
