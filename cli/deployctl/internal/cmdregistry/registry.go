package cmdregistry

import (
	"fmt"
	"io"
	"sort"

	log "github.com/sirupsen/logrus"

	"deploykit/cli/deployctl/internal/config"
	"deploykit/cli/deployctl/internal/execx"
	"deploykit/cli/deployctl/internal/plan"
)

// Context carries the pre-parsed data and handles that command handlers need.
type Context struct {
	DryRun    bool
	AssumeYes bool
	// Dir is the working directory the marker is checked in.
	Dir    string
	Args   []string
	Config config.HostConfig
	Steps  []plan.Step

	Exec   execx.Executor
	Probe  execx.Capturer
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Interactive is true when Stdin is a terminal.
	Interactive bool
	Log         *log.Logger
}

// Handler executes a command given the shared context.
type Handler func(*Context) error

// Registry maps command names to handlers.
type Registry struct {
	commands map[string]Handler
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{commands: make(map[string]Handler)}
}

// Register sets the handler for cmd. It panics if cmd already exists.
func (r *Registry) Register(cmd string, h Handler) {
	if _, exists := r.commands[cmd]; exists {
		panic(fmt.Sprintf("command %s already registered", cmd))
	}
	r.commands[cmd] = h
}

// Lookup returns the handler and whether it exists.
func (r *Registry) Lookup(cmd string) (Handler, bool) {
	h, ok := r.commands[cmd]
	return h, ok
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.commands))
	for name := range r.commands {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
