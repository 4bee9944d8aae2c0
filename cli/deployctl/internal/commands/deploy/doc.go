// Package deploy implements the default "deploy" command: marker check, plan
// display, operator confirmation, step execution and the closing summary.
package deploy
