// Package preflight implements the "preflight" host diagnostics command.
// It checks for the deployment marker file and for the git and
// docker-compose binaries the plan invokes. Nothing is executed beyond
// version probes.
package preflight
