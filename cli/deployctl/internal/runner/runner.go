package runner

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"deploykit/cli/deployctl/internal/execx"
	"deploykit/cli/deployctl/internal/logging"
	"deploykit/cli/deployctl/internal/plan"
)

// Separator frames each step header.
var Separator = strings.Repeat("=", 60)

type StepResult struct {
	Index    int
	Step     plan.Step
	Code     int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

func (r StepResult) Failed() bool { return r.Code != 0 }

// Outcome is what a run produced. OK turns false on any failed step, including
// ones allowed to continue. Aborted means steps were left unexecuted.
type Outcome struct {
	OK      bool
	Aborted bool
	Results []StepResult
}

type Runner struct {
	Exec execx.Executor
	// Out receives the operator-facing progress text.
	Out io.Writer
	// Trace receives the "+ sh -c ..." lines in dry-run mode.
	Trace  io.Writer
	Log    log.FieldLogger
	DryRun bool
}

// Run executes steps in order and blocks on each command until it exits.
func (r *Runner) Run(ctx context.Context, steps []plan.Step) Outcome {
	out := Outcome{OK: true}
	for i, s := range steps {
		res := r.runStep(ctx, i+1, s)
		out.Results = append(out.Results, res)
		if !res.Failed() {
			continue
		}
		out.OK = false
		if !s.ContinueOnFailure {
			out.Aborted = i < len(steps)-1
			if out.Aborted {
				r.logger().WithFields(log.Fields{"step": i + 1, "skipped": len(steps) - i - 1}).Warn("aborting remaining steps")
			}
			break
		}
		r.logger().WithField("step", i+1).Info("step allowed to fail, continuing")
	}
	return out
}

func (r *Runner) runStep(ctx context.Context, idx int, s plan.Step) StepResult {
	fmt.Fprintf(r.Out, "\n%s\n", Separator)
	fmt.Fprintf(r.Out, "▶️  %s\n", s.Description)
	fmt.Fprintln(r.Out, Separator)
	fmt.Fprintf(r.Out, "Comando: %s\n\n", s.Command)

	entry := r.logger().WithFields(log.Fields{"step": idx, "command": s.Command})
	if r.DryRun {
		if r.Trace != nil {
			fmt.Fprintf(r.Trace, "+ %s -c %s\n", execx.Shell, s.Command)
		}
		entry.Debug("dry-run, not executed")
		fmt.Fprintf(r.Out, "✅ %s - Completado\n", s.Description)
		return StepResult{Index: idx, Step: s}
	}

	start := time.Now()
	res := r.Exec.Shell(ctx, s.Command)
	sr := StepResult{
		Index:    idx,
		Step:     s,
		Code:     res.Code,
		Stdout:   res.Stdout,
		Stderr:   res.Stderr,
		Duration: time.Since(start),
	}
	if sr.Stdout != "" {
		fmt.Fprintln(r.Out, sr.Stdout)
	}
	if sr.Stderr != "" {
		fmt.Fprintln(r.Out, sr.Stderr)
	}
	entry = entry.WithFields(log.Fields{"code": sr.Code, "duration": sr.Duration.Round(time.Millisecond)})
	if sr.Failed() {
		if res.Err != nil {
			entry = entry.WithError(res.Err)
		}
		entry.Warn("step failed")
		fmt.Fprintf(r.Out, "❌ Error ejecutando: %s\n", s.Description)
		fmt.Fprintf(r.Out, "Código de salida: %d\n", sr.Code)
		return sr
	}
	entry.Debug("step completed")
	fmt.Fprintf(r.Out, "✅ %s - Completado\n", s.Description)
	return sr
}

func (r *Runner) logger() log.FieldLogger {
	if r.Log == nil {
		r.Log = logging.Discard()
	}
	return r.Log
}
