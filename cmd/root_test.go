package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode"
)

func TestRootCommandUse(t *testing.T) {
	if got := NewRootCmd().Use; got != "tkg" {
		t.Errorf("Use = %q, want %q", got, "tkg")
	}
}

func TestMain_NoArgsPrintsHelp(t *testing.T) {
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)

	code := Main(context.Background(), []string{}, stdout, stderr)

	if code != ExitOK {
		t.Fatalf("code = %d, stderr = %q", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Available Commands") {
		t.Errorf("stdout = %q, want help text", stdout.String())
	}
}

func TestRootCommandPersistentFlags(t *testing.T) {
	cmd := NewRootCmd()

	for _, name := range []string{"verbose", "json", "config"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected --%s persistent flag to exist", name)
		}
	}
	if cmd.PersistentFlags().ShorthandLookup("v") == nil {
		t.Error("expected -v shorthand for --verbose")
	}
}

func TestGlobalFlagDefaults(t *testing.T) {
	NewRootCmd()

	if GetVerbose() {
		t.Error("GetVerbose() should default to false")
	}
	if GetJSON() {
		t.Error("GetJSON() should default to false")
	}
	if GetConfigPath() != "" {
		t.Errorf("GetConfigPath() = %q, want empty", GetConfigPath())
	}
}

func TestMain_Classes(t *testing.T) {
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)

	code := Main(context.Background(), []string{"classes"}, stdout, stderr)

	if code != ExitOK {
		t.Fatalf("code = %d, stderr = %q", code, stderr.String())
	}
	if !strings.HasPrefix(stdout.String(), "uppercase") {
		t.Errorf("stdout = %q, want class listing", stdout.String())
	}
}

// clearEnv unsets the TKG_ variables for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"TKG_CONFIG", "TKG_PROFILE", "TKG_LENGTH", "TKG_CLASSES"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestMain_GeneratesDigits(t *testing.T) {
	clearEnv(t)
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)

	code := Main(context.Background(), []string{"generate", "--config", configFile, "-l", "12", "-D", "-q"}, stdout, stderr)

	if code != ExitOK {
		t.Fatalf("code = %d, stderr = %q", code, stderr.String())
	}
	value := strings.TrimSuffix(stdout.String(), "\n")
	if len(value) != 12 {
		t.Fatalf("value = %q, want 12 characters", value)
	}
	for _, r := range value {
		if !unicode.IsDigit(r) {
			t.Errorf("value %q contains non-digit %q", value, r)
		}
	}
}

func TestMain_ExitCodes(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStderr string
	}{
		{"bad length argument", []string{"strength", "x"}, ExitUsage, "tkg: invalid argument"},
		{"empty class set", []string{"generate", "--config", configFile, "--upper=false"}, ExitUsage, "tkg: no character class selected"},
		{"zero length", []string{"generate", "--config", configFile, "-l", "0"}, ExitUsage, "tkg: invalid length: must be at least 1"},
		{"unknown profile", []string{"generate", "--config", configFile, "-p", "nope"}, ExitUsage, "tkg: unknown profile"},
		{"unknown command", []string{"frobnicate"}, ExitFailure, "tkg: unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)

			code := Main(context.Background(), tt.args, stdout, stderr)

			if code != tt.wantCode {
				t.Errorf("code = %d, want %d (stderr %q)", code, tt.wantCode, stderr.String())
			}
			if !strings.HasPrefix(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want prefix %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestMain_VerboseLogsMetadataOnly(t *testing.T) {
	clearEnv(t)
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)

	code := Main(context.Background(), []string{"generate", "-v", "-q", "--config", configFile, "-l", "10", "-D"}, stdout, stderr)

	if code != ExitOK {
		t.Fatalf("code = %d, stderr = %q", code, stderr.String())
	}
	value := strings.TrimSpace(stdout.String())
	if !strings.Contains(stderr.String(), "DEBUG generated") {
		t.Errorf("stderr = %q, want debug record", stderr.String())
	}
	if strings.Contains(stderr.String(), value) {
		t.Errorf("stderr %q leaks the generated value %q", stderr.String(), value)
	}
}
