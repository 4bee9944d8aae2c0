package testutil

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"deploykit/cli/deployctl/internal/execx"
)

// FakeExecutor records every command it is asked to run and answers from
// Results. Commands without a scripted result succeed with empty output.
type FakeExecutor struct {
	mu       sync.Mutex
	Results  map[string]execx.Result
	commands []string
}

func NewFakeExecutor() *FakeExecutor {
	return &FakeExecutor{Results: map[string]execx.Result{}}
}

// Fail scripts command to exit with code.
func (f *FakeExecutor) Fail(command string, code int, stderr string) *FakeExecutor {
	f.Results[command] = execx.Result{Code: code, Stderr: stderr}
	return f
}

func (f *FakeExecutor) Shell(_ context.Context, command string) execx.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands = append(f.commands, command)
	return f.Results[command]
}

// Commands returns the executed commands in order.
func (f *FakeExecutor) Commands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.commands...)
}

// DeployDir creates a temp directory, optionally containing marker, and
// returns its path.
func DeployDir(t *testing.T, marker string) string {
	t.Helper()
	dir := t.TempDir()
	if marker == "" {
		return dir
	}
	if err := os.WriteFile(filepath.Join(dir, marker), []byte("services: {}\n"), 0o644); err != nil {
		t.Fatalf("write marker: %v", err)
	}
	return dir
}
