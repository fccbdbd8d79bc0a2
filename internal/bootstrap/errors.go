package bootstrap

import (
	"errors"
	"fmt"
	"os/exec"
)

// Exit codes for startup failures. The process exits with the code of the
// first step that fails.
const (
	ExitOK           = 0
	ExitGeneral      = 1
	ExitPreflight    = 2
	ExitDependencies = 3
	ExitMigration    = 4
	ExitServer       = 5
)

// StepError wraps a step failure with the exit code the process should
// terminate with.
type StepError struct {
	Step string
	Code int
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %q failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// ExitCode maps a startup error to the process exit code. Failures of
// external hook commands propagate the command's own exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var stepErr *StepError
	if errors.As(err, &stepErr) {
		var exitErr *exec.ExitError
		if errors.As(stepErr.Err, &exitErr) && exitErr.ExitCode() > 0 {
			return exitErr.ExitCode()
		}
		return stepErr.Code
	}

	return ExitGeneral
}
