package issues

import (
	"sync"
	"testing"
)

func TestRecordCreatesIssueAndSetsFail(t *testing.T) {
	s := NewStore()

	if s.Fail() {
		t.Fatalf("empty store must not fail")
	}
	if s.TotalIssues() != 0 {
		t.Fatalf("empty store total = %d, want 0", s.TotalIssues())
	}

	s.Record(Critical, KindTimescale, "Missing timescale directive", "/rtl/a.sv", "Add `timescale")

	if !s.Fail() {
		t.Fatalf("expected fail after record")
	}
	if got := s.TotalIssues(); got != 1 {
		t.Fatalf("total = %d, want 1", got)
	}

	iss := s.Issues(Critical)
	if len(iss) != 1 {
		t.Fatalf("critical issues = %d, want 1", len(iss))
	}
	if iss[0].Solution != "Add `timescale" {
		t.Fatalf("solution = %q", iss[0].Solution)
	}
	if iss[0].Kind != KindTimescale {
		t.Fatalf("kind = %v, want KindTimescale", iss[0].Kind)
	}
}

func TestRecordEmptyContentIsNoop(t *testing.T) {
	s := NewStore()
	s.Record(Style, KindTabs, "Tabs detected", "", "Replace tabs")

	if s.Fail() || s.TotalIssues() != 0 {
		t.Fatalf("empty content must not record: fail=%v total=%d", s.Fail(), s.TotalIssues())
	}
	if len(s.Issues(Style)) != 0 {
		t.Fatalf("expected no style issues")
	}
}

func TestRecordSameTitleAppendsContent(t *testing.T) {
	s := NewStore()
	s.Record(Style, KindTabs, "Tabs detected", "/rtl/a.sv:3: \tfoo", "Replace tabs")
	s.Record(Style, KindTabs, "Tabs detected", "/rtl/b.sv:7: \tbar", "ignored on append")

	if got := s.TotalIssues(); got != 1 {
		t.Fatalf("dedup by title: total = %d, want 1", got)
	}

	iss := s.Issues(Style)
	if len(iss) != 1 {
		t.Fatalf("style issues = %d, want 1", len(iss))
	}
	want := "/rtl/a.sv:3: \tfoo\n/rtl/b.sv:7: \tbar"
	if got := iss[0].Content(); got != want {
		t.Fatalf("content = %q, want %q", got, want)
	}
	if iss[0].Solution != "Replace tabs" {
		t.Fatalf("solution changed on append: %q", iss[0].Solution)
	}
}

func TestBucketsAreIndependent(t *testing.T) {
	s := NewStore()
	s.Record(Critical, KindTimescale, "Same title", "a", "x")
	s.Record(Style, KindTabs, "Same title", "b", "y")

	if got := s.TotalIssues(); got != 2 {
		t.Fatalf("total = %d, want 2 (per-category dedup)", got)
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	s := NewStore()
	s.Record(BestPractice, KindNoComments, "first", "a", "s")
	s.Record(BestPractice, KindMultipleModules, "second", "b", "s")
	s.Record(BestPractice, KindNoComments, "first", "c", "s")
	s.Record(BestPractice, KindNonANSIModule, "third", "d", "s")

	got := s.Titles(BestPractice)
	want := []string{"first", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("titles = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("titles = %v, want %v", got, want)
		}
	}
}

func TestConcurrentRecord(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Record(Performance, KindBlockingInClocked, "Blocking assignments in clocked logic", "line", "fix")
			}
		}()
	}
	wg.Wait()

	if got := s.TotalIssues(); got != 1 {
		t.Fatalf("total = %d, want 1", got)
	}
	iss := s.Issues(Performance)
	if got := len(iss[0].ContentLines()); got != 1600 {
		t.Fatalf("content blocks = %d, want 1600", got)
	}
}

func TestFindingString(t *testing.T) {
	cases := []struct {
		f    Finding
		want string
	}{
		{Finding{File: "/rtl/a.sv", Line: 12, Snippet: "if (a) {"}, "/rtl/a.sv:12: if (a) {"},
		{Finding{File: "/rtl/a.sv", Line: 9}, "/rtl/a.sv:9"},
		{Finding{File: "/rtl/a.sv", Snippet: "missing: // Company:, // File:"}, "/rtl/a.sv (missing: // Company:, // File:)"},
		{Finding{File: "/rtl/a.sv"}, "/rtl/a.sv"},
	}
	for _, tc := range cases {
		if got := tc.f.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestJoin(t *testing.T) {
	if got := Join(nil); got != "" {
		t.Fatalf("Join(nil) = %q, want empty", got)
	}
	got := Join([]Finding{{File: "a.sv", Line: 1, Snippet: "x"}, {File: "b.sv"}})
	want := "a.sv:1: x\nb.sv"
	if got != want {
		t.Fatalf("Join = %q, want %q", got, want)
	}
}
