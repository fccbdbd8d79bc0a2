package bootstrap

import (
	"context"
	"os"
	"os/exec"
)

// Command returns a step function that runs an external command, inheriting
// stdout and stderr. A non-zero exit status surfaces as the command's
// *exec.ExitError so ExitCode can propagate it, matching a shell script's
// stop-on-first-error behavior.
func Command(name string, args ...string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		cmd := exec.CommandContext(ctx, name, args...)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		return cmd.Run()
	}
}
