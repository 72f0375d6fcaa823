package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"egy-discovery/pkg/workflowfile"

	"github.com/spf13/cobra"
)

func setup(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	workflowsDir = t.TempDir()
	platform = ""
	description = ""
	t.Cleanup(func() { workflowsDir, platform, description = "workflows", "", "" })

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	return cmd, &out
}

func TestCreateThenList(t *testing.T) {
	cmd, out := setup(t)

	if err := os.MkdirAll(filepath.Join(workflowsDir, workflowfile.PlatformExamples), 0o755); err != nil {
		t.Fatal(err)
	}
	tmpl := filepath.Join(workflowsDir, workflowfile.PlatformExamples, workflowfile.TemplateFile)
	if err := os.WriteFile(tmpl, []byte(`{"nodes":[],"connections":{}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runCreate(cmd, []string{"Lead Intake"}); err == nil {
		t.Fatal("expected error without --platform")
	}

	platform = workflowfile.PlatformN8N
	if err := runCreate(cmd, []string{"Lead Intake"}); err != nil {
		t.Fatalf("runCreate: %v", err)
	}
	if !strings.Contains(out.String(), "lead-intake-v1.0.json") {
		t.Errorf("unexpected output %q", out.String())
	}

	out.Reset()
	if err := runList(cmd, nil); err != nil {
		t.Fatalf("runList: %v", err)
	}
	if !strings.Contains(out.String(), "Name: Lead Intake") {
		t.Errorf("expected created workflow in listing, got %q", out.String())
	}
}

func TestValidateReportsInvalid(t *testing.T) {
	cmd, out := setup(t)

	if err := os.MkdirAll(filepath.Join(workflowsDir, workflowfile.PlatformZapier), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(workflowsDir, workflowfile.PlatformZapier, "bad.json"), []byte(`[]`), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runValidate(cmd, nil); err == nil {
		t.Fatal("expected error for invalid workflow")
	}
	if !strings.Contains(out.String(), "Root must be a JSON object") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestStatsOutput(t *testing.T) {
	cmd, out := setup(t)

	if err := runStats(cmd, nil); err != nil {
		t.Fatalf("runStats: %v", err)
	}
	if !strings.Contains(out.String(), "Total files: 0") {
		t.Errorf("unexpected output %q", out.String())
	}
}
