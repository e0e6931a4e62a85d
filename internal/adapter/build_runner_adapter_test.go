package adapter

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalBuildRunnerAdapter_RunGoBuild(t *testing.T) {
	if testing.Short() {
		t.Skip("runs the go command")
	}

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "go.mod"), "module example.com/build\n\ngo 1.22\n")
	writeTestFile(t, filepath.Join(root, "ok", "ok.go"), "package ok\n\nvar X = 1\n")
	writeTestFile(t, filepath.Join(root, "bad", "bad.go"), "package bad\n\nvar Y = undefinedName\n")

	adapter := NewLocalBuildRunnerAdapter()

	if output, err := adapter.RunGoBuild(context.Background(), filepath.Join(root, "ok"), "."); err != nil {
		t.Fatalf("RunGoBuild(ok) error = %v\n%s", err, output)
	}

	output, err := adapter.RunGoBuild(context.Background(), filepath.Join(root, "bad"), ".")
	if err == nil {
		t.Fatalf("RunGoBuild(bad) expected error")
	}

	if !strings.Contains(output, "undefinedName") {
		t.Fatalf("RunGoBuild(bad) output = %q, want the compiler diagnostic", output)
	}
}

func TestLocalBuildRunnerAdapter_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewLocalBuildRunnerAdapter().RunGoBuild(ctx, t.TempDir(), "."); err == nil {
		t.Fatalf("RunGoBuild() expected error for a cancelled context")
	}
}
