package preflight

import (
	"context"
	"fmt"

	"deploykit/cli/deployctl/internal/cmdregistry"
	"deploykit/cli/deployctl/internal/preflight"
)

// Register adds the preflight command to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register("preflight", handle)
}

func handle(ctx *cmdregistry.Context) error {
	ok := true
	if err := preflight.CheckMarker(ctx.Dir, ctx.Config.Marker); err != nil {
		fmt.Fprintf(ctx.Stderr, "[preflight] %s not found in %s (expected %s)\n", ctx.Config.Marker, ctx.Dir, ctx.Config.WorkdirHint)
		ok = false
	} else {
		fmt.Fprintf(ctx.Stdout, "[preflight] %s: OK\n", ctx.Config.Marker)
	}
	for _, tool := range preflight.Tools(context.Background(), ctx.Probe) {
		if !tool.OK {
			fmt.Fprintf(ctx.Stderr, "[preflight] %s not available\n", tool.Name)
			ok = false
			continue
		}
		fmt.Fprintf(ctx.Stdout, "[preflight] %s: OK (%s)\n", tool.Name, tool.Version)
	}
	if !ok {
		return fmt.Errorf("preflight checks failed")
	}
	return nil
}
