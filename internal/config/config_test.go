package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Lint.MaxLineLength != 120 {
		t.Errorf("MaxLineLength = %d, want 120", cfg.Lint.MaxLineLength)
	}
	if cfg.Output.Report != "sv_lint.out" || cfg.Output.Log != "sv_lint.log" {
		t.Errorf("unexpected output defaults: %+v", cfg.Output)
	}
	if cfg.Output.Format != "markdown" {
		t.Errorf("Format = %q, want markdown", cfg.Output.Format)
	}
	if cfg.Analysis.Recursive == nil || !*cfg.Analysis.Recursive {
		t.Error("Recursive should default to true")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sv_lint.json")
	content := `{
  "lint": {
    "rules": {"tabs": "off"},
    "maxLineLength": 100
  },
  "analysis": {"maxParallelChecks": 4}
}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Lint.MaxLineLength != 100 {
		t.Errorf("MaxLineLength = %d, want 100", cfg.Lint.MaxLineLength)
	}
	if cfg.Analysis.MaxParallelChecks != 4 {
		t.Errorf("MaxParallelChecks = %d, want 4", cfg.Analysis.MaxParallelChecks)
	}
	// Defaults fill in what the file omits.
	if cfg.Output.Report != "sv_lint.out" {
		t.Errorf("Report = %q, want default", cfg.Output.Report)
	}
}

func TestLoadFileInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sv_lint.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	// An empty directory has no config file anywhere in its search path
	// except possibly the user config; point the run at a scratch dir.
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg == nil || cfg.Lint.MaxLineLength <= 0 {
		t.Fatalf("expected usable defaults, got %+v", cfg)
	}
}

func TestIsRuleEnabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Lint.Rules["tabs"] = "off"
	cfg.Lint.Rules["line-length"] = "on"

	if cfg.IsRuleEnabled("tabs") {
		t.Error("tabs should be disabled")
	}
	if !cfg.IsRuleEnabled("line-length") {
		t.Error("line-length should be enabled")
	}
	if !cfg.IsRuleEnabled("never-mentioned") {
		t.Error("unknown rules default to enabled")
	}
}

func TestShouldIgnoreFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Lint.IgnorePatterns = []string{"tb_*.sv", "*.gen.sv"}

	cases := []struct {
		path string
		want bool
	}{
		{"tb_core.sv", true},
		{"/abs/path/tb_core.sv", true},
		{"wrapper.gen.sv", true},
		{"core.sv", false},
	}
	for _, c := range cases {
		if got := cfg.ShouldIgnoreFile(c.path); got != c.want {
			t.Errorf("ShouldIgnoreFile(%q) = %v, want %v", c.path, got, c.want)
		}
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sv_lint.json")
	cfg := DefaultConfig()
	cfg.Lint.Rules["tabs"] = "off"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.IsRuleEnabled("tabs") {
		t.Error("saved rule setting lost in round trip")
	}
}
