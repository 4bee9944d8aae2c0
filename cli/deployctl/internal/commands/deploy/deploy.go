package deploy

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"deploykit/cli/deployctl/internal/cmdregistry"
	"deploykit/cli/deployctl/internal/confirm"
	"deploykit/cli/deployctl/internal/preflight"
	"deploykit/cli/deployctl/internal/report"
	"deploykit/cli/deployctl/internal/runner"
)

// Register adds the deploy command to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register("deploy", handle)
}

func handle(ctx *cmdregistry.Context) error {
	cfg := ctx.Config
	logger := ctx.Log.WithField("run_id", uuid.NewString())

	report.Banner(ctx.Stdout)
	if err := preflight.CheckMarker(ctx.Dir, cfg.Marker); err != nil {
		if errors.Is(err, preflight.ErrMarkerMissing) {
			fmt.Fprintf(ctx.Stdout, "❌ Error: No se encontró %s\n", cfg.Marker)
			fmt.Fprintf(ctx.Stdout, "Por favor ejecuta este script desde el directorio %s\n", cfg.WorkdirHint)
		}
		return err
	}

	confirm.PrintPlan(ctx.Stdout, ctx.Steps)
	if ctx.AssumeYes {
		logger.Debug("confirmation skipped (--yes)")
	} else {
		if !ctx.Interactive {
			logger.Debug("stdin is not a terminal, reading confirmation from input stream")
		}
		ok, err := confirm.Ask(ctx.Stdin, ctx.Stdout)
		if err != nil {
			return errors.Wrap(err, "read confirmation")
		}
		if !ok {
			fmt.Fprintln(ctx.Stdout, "❌ Despliegue cancelado")
			logger.Info("deployment declined by operator")
			return nil
		}
	}

	logger.WithField("steps", len(ctx.Steps)).Info("starting deployment")
	r := &runner.Runner{
		Exec:   ctx.Exec,
		Out:    ctx.Stdout,
		Trace:  ctx.Stderr,
		Log:    logger,
		DryRun: ctx.DryRun,
	}
	outcome := r.Run(context.Background(), ctx.Steps)
	report.Summary(ctx.Stdout, outcome.OK, cfg.ServiceURL)
	logger.WithFields(log.Fields{
		"ok":       outcome.OK,
		"executed": len(outcome.Results),
		"aborted":  outcome.Aborted,
	}).Info("deployment finished")
	return nil
}
