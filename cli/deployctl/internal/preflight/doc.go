// Package preflight verifies the process runs from the deployment directory
// before anything is executed, and probes the host binaries the plan calls.
package preflight
