// Package bootstrap runs the ordered startup sequence for the server
// binary: preflight checks, setup hooks, dependency verification, schema
// migration, and finally the long-running HTTP server. The sequence is
// strictly fail-fast: the first failing step aborts startup and no later
// step runs.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

const banner = "========================================\n" +
	"  msghub unified messaging server\n" +
	"========================================"

const stoppedBanner = "Server stopped. Goodbye!"

// A Step is a single named stage of the startup sequence. Code is the exit
// code the process terminates with when the step fails.
type Step struct {
	Name string
	Code int
	Run  func(ctx context.Context) error
}

// Runner executes startup steps strictly in order.
type Runner struct {
	out   io.Writer
	log   *slog.Logger
	steps []Step
}

// NewRunner creates a runner writing its progress to out.
func NewRunner(out io.Writer, log *slog.Logger) *Runner {
	if out == nil {
		out = os.Stdout
	}
	return &Runner{out: out, log: log}
}

// Add appends a step to the sequence.
func (r *Runner) Add(name string, code int, fn func(ctx context.Context) error) {
	r.steps = append(r.steps, Step{Name: name, Code: code, Run: fn})
}

// Run prints the startup banner and the environment label, then executes
// every step in order. It returns the first failure, wrapped with the
// failing step's exit code; steps after a failed one never run.
//
// The stopped banner is printed only after the final step returns. For the
// server step that means after shutdown, never while serving.
func (r *Runner) Run(ctx context.Context, env string) error {
	fmt.Fprintln(r.out, banner)
	fmt.Fprintf(r.out, "Environment: %s\n", env)

	for _, step := range r.steps {
		fmt.Fprintf(r.out, "==> %s\n", step.Name)
		if r.log != nil {
			r.log.Info("startup step", "step", step.Name)
		}
		if err := step.Run(ctx); err != nil {
			return &StepError{Step: step.Name, Code: step.Code, Err: err}
		}
	}

	fmt.Fprintln(r.out, stoppedBanner)
	return nil
}
