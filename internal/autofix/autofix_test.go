package autofix

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestFix(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"trailing spaces", "module m;   \nendmodule\n", "module m;\nendmodule\n"},
		{"trailing tabs", "logic x;\t\t\n", "logic x;\n"},
		{"crlf", "module m;\r\nendmodule\r\n", "module m;\nendmodule\n"},
		{"missing final newline", "module m;", "module m;\n"},
		{"already clean", "module m;\nendmodule\n", "module m;\nendmodule\n"},
		{"empty", "", ""},
		{"internal whitespace kept", "    logic x;\n", "    logic x;\n"},
	}
	for _, c := range cases {
		if got := Fix(c.in); got != c.want {
			t.Errorf("%s: Fix(%q) = %q, want %q", c.name, c.in, got, c.want)
		}
	}
}

func TestApplyRewritesOnlyDirtyFiles(t *testing.T) {
	dir := t.TempDir()
	dirty := filepath.Join(dir, "dirty.sv")
	clean := filepath.Join(dir, "clean.sv")
	if err := os.WriteFile(dirty, []byte("module m;   \r\nendmodule\r\n"), 0o644); err != nil {
		t.Fatalf("write dirty: %v", err)
	}
	if err := os.WriteFile(clean, []byte("module m;\nendmodule\n"), 0o644); err != nil {
		t.Fatalf("write clean: %v", err)
	}

	res := Apply([]string{dirty, clean}, log.New(io.Discard))
	if len(res.Changed) != 1 || res.Changed[0] != dirty {
		t.Fatalf("Changed = %v, want only the dirty file", res.Changed)
	}
	if res.Skipped != 0 {
		t.Errorf("Skipped = %d, want 0", res.Skipped)
	}

	got, err := os.ReadFile(dirty)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != "module m;\nendmodule\n" {
		t.Errorf("fixed content = %q", got)
	}
}

func TestApplySkipsUnreadable(t *testing.T) {
	res := Apply([]string{filepath.Join(t.TempDir(), "missing.sv")}, log.New(io.Discard))
	if res.Skipped != 1 || len(res.Changed) != 0 {
		t.Errorf("result = %+v, want one skip and no changes", res)
	}
}
