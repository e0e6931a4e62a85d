package adapter

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"time"
)

// BuildRunnerAdapter compiles packages with the go command so that scope
// validation errors come straight from the compiler.
type BuildRunnerAdapter interface {
	// RunGoBuild runs 'go build' on target inside workDir.
	// Returns the combined stdout/stderr output and any error.
	RunGoBuild(ctx context.Context, workDir, target string) (output string, err error)
}

// LocalBuildRunnerAdapter provides a concrete implementation using os/exec.
type LocalBuildRunnerAdapter struct {
	timeout time.Duration
}

// NewLocalBuildRunnerAdapter constructs a LocalBuildRunnerAdapter with a default 2m timeout.
func NewLocalBuildRunnerAdapter() *LocalBuildRunnerAdapter {
	return &LocalBuildRunnerAdapter{
		timeout: 2 * time.Minute,
	}
}

// RunGoBuild runs 'go build -o <devnull> target' in workDir.
func (a *LocalBuildRunnerAdapter) RunGoBuild(ctx context.Context, workDir, target string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	// #nosec G204 - target is a package directory found by the scanner
	cmd := exec.CommandContext(ctx, "go", "build", "-o", os.DevNull, target)
	cmd.Dir = workDir

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	output := stdout.String() + stderr.String()

	return output, err
}
