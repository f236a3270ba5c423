package acceptance_test

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// workspace is an isolated configuration location for one test.
type workspace struct {
	dir        string
	configFile string
}

func newWorkspace(t *testing.T) *workspace {
	t.Helper()
	dir := t.TempDir()
	return &workspace{dir: dir, configFile: filepath.Join(dir, "config.yaml")}
}

// env returns a process environment with the TKG_ variables removed and
// the config directory pointed at the workspace.
func (w *workspace) env(extra ...string) []string {
	var out []string
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "TKG_") || strings.HasPrefix(kv, "XDG_CONFIG_HOME=") {
			continue
		}
		out = append(out, kv)
	}
	out = append(out, "XDG_CONFIG_HOME="+w.dir, "TKG_CONFIG="+w.configFile)
	return append(out, extra...)
}

// runTkg executes the tkg binary and returns stdout, stderr, and exit code.
func runTkg(t *testing.T, w *workspace, extraEnv []string, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(tkgBinary, args...)
	cmd.Dir = w.dir
	cmd.Env = w.env(extraEnv...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("failed to run tkg: %v", err)
		}
	}
	return stdout.String(), stderr.String(), exitCode
}

// runTkgSuccess runs tkg expecting exit code 0 and returns stdout.
func runTkgSuccess(t *testing.T, w *workspace, args ...string) string {
	t.Helper()
	stdout, stderr, exitCode := runTkg(t, w, nil, args...)
	if exitCode != 0 {
		t.Fatalf("expected exit 0, got %d\nargs: %v\nstdout: %s\nstderr: %s", exitCode, args, stdout, stderr)
	}
	return stdout
}

// generateJSON runs tkg generate --json and parses the result.
func generateJSON(t *testing.T, w *workspace, args ...string) map[string]interface{} {
	t.Helper()
	stdout := runTkgSuccess(t, w, append([]string{"generate", "--json"}, args...)...)
	var result map[string]interface{}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\noutput: %s", err, stdout)
	}
	return result
}

// lines splits output into non-empty lines.
func lines(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

// onlyFrom reports whether every byte of s appears in chars.
func onlyFrom(s, chars string) bool {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(chars, s[i]) < 0 {
			return false
		}
	}
	return true
}
