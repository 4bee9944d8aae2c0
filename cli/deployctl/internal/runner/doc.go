// Package runner executes a deployment plan one step at a time.
//
// Each step is echoed before it runs, its captured output is replayed stdout
// first then stderr, and the first failure stops the sequence unless the step
// is marked continue-on-failure. There is no retry and no per-step timeout.
package runner
