package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Stdout: &stdout,
		Stderr: &stderr,
		Getenv: func(key string) string { return vars[key] },
	}
	return env, &stdout, &stderr
}

func TestRunNoArgs(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv(nil)
	if code := run([]string{"docpress"}, env); code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr.String(), "Usage:") {
		t.Error("usage not printed")
	}
}

func TestRunUnknownCommand(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv(nil)
	if code := run([]string{"docpress", "bogus"}, env); code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr.String(), "unknown command: bogus") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRunVersion(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv(nil)
	if code := run([]string{"docpress", "version"}, env); code != ExitSuccess {
		t.Errorf("exit code = %d", code)
	}
	if !strings.Contains(stdout.String(), "docpress") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunHelp(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv(nil)
	if code := run([]string{"docpress", "help"}, env); code != ExitSuccess {
		t.Errorf("exit code = %d", code)
	}
	if !strings.Contains(stdout.String(), "generate") {
		t.Error("help should list commands")
	}
}

func TestRunGenerateMissingSource(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv(nil)
	if code := run([]string{"docpress", "generate"}, env); code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr.String(), "--source is required") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRunSyncValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		vars    map[string]string
		wantErr string
	}{
		{
			name:    "missing source",
			args:    []string{"docpress", "sync"},
			wantErr: "--source is required",
		},
		{
			name:    "missing version",
			args:    []string{"docpress", "sync", "--source", "docs"},
			wantErr: "--version is required",
		},
		{
			name:    "missing api key",
			args:    []string{"docpress", "sync", "--source", "docs", "--version", "1.0.0"},
			wantErr: "README_API_KEY",
		},
		{
			name:    "missing image repo",
			args:    []string{"docpress", "sync", "--source", "docs", "--version", "1.0.0"},
			vars:    map[string]string{"README_API_KEY": "key"},
			wantErr: "IMAGE_REPO",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, stderr := testEnv(tt.vars)
			if code := run(tt.args, env); code != ExitUsage {
				t.Errorf("exit code = %d, want %d", code, ExitUsage)
			}
			if !strings.Contains(stderr.String(), tt.wantErr) {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.wantErr)
			}
		})
	}
}

func TestRunGenerateEndToEnd(t *testing.T) {
	t.Parallel()

	source := t.TempDir()
	if err := os.MkdirAll(filepath.Join(source, "overview"), 0o755); err != nil {
		t.Fatal(err)
	}
	hierarchy := "categories:\n  - slug: overview\n    title: Overview\n    children:\n      - slug: intro\n"
	if err := os.WriteFile(filepath.Join(source, "hierarchy.yaml"), []byte(hierarchy), 0o600); err != nil {
		t.Fatal(err)
	}
	doc := "---\ntitle: Intro\n---\nHello world.\n"
	if err := os.WriteFile(filepath.Join(source, "overview", "intro.md"), []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	output := t.TempDir()
	env, _, stderr := testEnv(nil)
	code := run([]string{"docpress", "generate", "--source", source, "--output", output, "--verbose"}, env)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}

	page, err := os.ReadFile(filepath.Join(output, "intro.html"))
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	if !strings.Contains(string(page), "Hello world.") {
		t.Error("generated page missing content")
	}
	if stderr.Len() == 0 {
		t.Error("--verbose should log progress")
	}
}

func TestRunIndexEndToEnd(t *testing.T) {
	t.Parallel()

	source := t.TempDir()
	doc := "---\ntitle: Intro\n---\nHello.\n"
	if err := os.WriteFile(filepath.Join(source, "intro.md"), []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "index.json")
	env, _, stderr := testEnv(nil)
	code := run([]string{"docpress", "index", "--source", source, "--output", out}, env)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	if !strings.Contains(string(data), `"intro"`) {
		t.Errorf("index = %s", data)
	}
}

func TestVerboseRequested(t *testing.T) {
	t.Parallel()

	if !verboseRequested([]string{"docpress", "generate", "--verbose"}) {
		t.Error("--verbose not detected")
	}
	if verboseRequested([]string{"docpress", "generate"}) {
		t.Error("false positive")
	}
}
