// Package integration runs the built emptrack binary against a scratch
// config and data directory.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var (
	// emptrackBin is the path to the built emptrack binary.
	emptrackBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// TestEnv is an isolated config and data directory pair.
type TestEnv struct {
	t       *testing.T
	TempDir string
	Config  string
	DataDir string
}

// NewTestEnv creates a new isolated test environment with a sqlite config.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build emptrack: %v", buildErr)
	}
	if emptrackBin == "" {
		t.Fatal("emptrack binary not built")
	}

	tempDir := t.TempDir()
	dataDir := filepath.Join(tempDir, "data")
	configDir := filepath.Join(tempDir, "config")

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	content := "driver: sqlite\ndata_dir: " + dataDir + "\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{t: t, TempDir: tempDir, Config: configDir, DataDir: dataDir}
}

// CmdResult holds the result of one emptrack invocation.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Run executes emptrack with the environment's config dir and the given
// arguments. EMPTRACK_* variables from the caller's environment are dropped.
func (e *TestEnv) Run(args ...string) CmdResult {
	e.t.Helper()
	return e.RunWithInput("", args...)
}

// RunWithInput is Run with stdin fed from input.
func (e *TestEnv) RunWithInput(input string, args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config}, args...)
	cmd := exec.Command(emptrackBin, allArgs...)
	cmd.Env = cleanEnv()
	cmd.Stdin = strings.NewReader(input)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	exitCode := 0
	if err := cmd.Run(); err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			e.t.Fatalf("failed to run emptrack: %v", err)
		}
		exitCode = exitErr.ExitCode()
	}
	return CmdResult{Stdout: stdout.String(), Stderr: stderr.String(), ExitCode: exitCode}
}

// MustRun executes emptrack and fails the test on a non-zero exit.
func (e *TestEnv) MustRun(args ...string) CmdResult {
	e.t.Helper()
	result := e.Run(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("emptrack %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

func cleanEnv() []string {
	var env []string
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "EMPTRACK_") {
			continue
		}
		env = append(env, kv)
	}
	return env
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, s string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(s), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", s, err)
	}
	return result
}

// Department mirrors the JSON shape of list departments.
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Role mirrors the JSON shape of list roles.
type Role struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Salary       float64 `json:"salary"`
	DepartmentID int64   `json:"department_id"`
	Department   string  `json:"department"`
}

// EmployeeReport mirrors the JSON shape of list employees.
type EmployeeReport struct {
	ID         int64    `json:"id"`
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	Title      string   `json:"title"`
	Department string   `json:"department"`
	Salary     *float64 `json:"salary"`
	Manager    string   `json:"manager"`
}

// Budget mirrors the JSON shape of the budget command.
type Budget struct {
	DepartmentID int64   `json:"department_id"`
	Budget       float64 `json:"budget"`
}
