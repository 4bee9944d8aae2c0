package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"deploykit/cli/deployctl/internal/cmdregistry"
	deploycmd "deploykit/cli/deployctl/internal/commands/deploy"
	plancmd "deploykit/cli/deployctl/internal/commands/plancmd"
	preflightcmd "deploykit/cli/deployctl/internal/commands/preflight"
	"deploykit/cli/deployctl/internal/config"
	"deploykit/cli/deployctl/internal/confirm"
	"deploykit/cli/deployctl/internal/execx"
	"deploykit/cli/deployctl/internal/logging"
	"deploykit/cli/deployctl/internal/plan"
)

func usage(w io.Writer) {
	fmt.Fprintf(w, `deployctl: admin panel release helper
Usage: deployctl [flags] [command]

Commands:
  deploy      check marker, confirm, run every step, print summary (default)
  plan        print the steps and their commands without running them
  preflight   host checks: marker file, git, docker-compose

Flags:
  --dry-run       print commands instead of executing them
  -y, --yes       skip the confirmation prompt
  --plan <file>   YAML step list replacing the built-in sequence

Environment:
  DEPLOYKIT_CONFIG=path    host config (default: <config dir>/deploykit/config.yaml)
  DEPLOYKIT_LOG_LEVEL=lvl  logrus level for diagnostics on stderr
  DEPLOYKIT_DEBUG=1        debug logging and print executed commands
`)
}

// app holds the process-level handles so tests can swap them.
type app struct {
	dir    string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	exec   execx.Executor
	probe  execx.Capturer
}

func registry() *cmdregistry.Registry {
	r := cmdregistry.New()
	deploycmd.Register(r)
	plancmd.Register(r)
	preflightcmd.Register(r)
	return r
}

func (a app) run(args []string) int {
	var dryRun, assumeYes bool
	var planPath string

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "--dry-run":
			dryRun = true
		case "-y", "--yes":
			assumeYes = true
		case "--plan":
			if i+1 >= len(args) {
				fmt.Fprintln(a.stderr, "--plan requires value")
				return 2
			}
			planPath = args[i+1]
			i++
		case "-h", "--help", "help":
			usage(a.stdout)
			return 0
		default:
			if strings.HasPrefix(arg, "-") {
				fmt.Fprintf(a.stderr, "unknown flag %s\n", arg)
				usage(a.stderr)
				return 2
			}
			out = append(out, arg)
		}
	}
	cmd := "deploy"
	if len(out) > 0 {
		cmd = out[0]
		out = out[1:]
	}

	reg := registry()
	handler, ok := reg.Lookup(cmd)
	if !ok {
		fmt.Fprintf(a.stderr, "unknown command %q (want one of %s)\n", cmd, strings.Join(reg.Names(), ", "))
		return 2
	}

	cfg, base, err := config.ReadHostConfig()
	logger := logging.New(a.stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(a.stderr, err)
		return 1
	}
	if planPath == "" {
		planPath = cfg.ResolvePlan(base)
	}
	steps := plan.Default()
	if planPath != "" {
		if steps, err = plan.Load(planPath); err != nil {
			fmt.Fprintln(a.stderr, err)
			return 1
		}
		logger.WithField("plan", planPath).Debug("loaded plan file")
	}

	interactive := false
	if f, ok := a.stdin.(*os.File); ok {
		interactive = confirm.Interactive(f)
	}
	ctx := &cmdregistry.Context{
		DryRun:      dryRun,
		AssumeYes:   assumeYes,
		Dir:         a.dir,
		Args:        out,
		Config:      cfg,
		Steps:       steps,
		Exec:        a.exec,
		Probe:       a.probe,
		Stdin:       a.stdin,
		Stdout:      a.stdout,
		Stderr:      a.stderr,
		Interactive: interactive,
		Log:         logger,
	}
	if err := handler(ctx); err != nil {
		fmt.Fprintln(a.stderr, err)
		return 1
	}
	return 0
}

func main() {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	a := app{
		dir:    dir,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		exec:   execx.Host{},
		probe:  execx.Host{},
	}
	os.Exit(a.run(os.Args[1:]))
}
