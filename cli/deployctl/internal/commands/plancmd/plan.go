// Package plancmd implements "plan", which prints the step sequence with the
// exact commands and exits without running anything.
package plancmd

import (
	"fmt"

	"deploykit/cli/deployctl/internal/cmdregistry"
)

// Register adds the plan command to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register("plan", handle)
}

func handle(ctx *cmdregistry.Context) error {
	for i, s := range ctx.Steps {
		fmt.Fprintf(ctx.Stdout, "%d. %s\n", i+1, s.Description)
		suffix := ""
		if s.ContinueOnFailure {
			suffix = "  (continues on failure)"
		}
		fmt.Fprintf(ctx.Stdout, "   $ %s%s\n", s.Command, suffix)
	}
	return nil
}
