// Package region tracks "inside a block" state while scanning a file line by
// line. Several detectors need to know whether the current line sits inside a
// clocked block, a combinational block, a generate block, a synthesis guard,
// or a module header; all of them share one toggling policy enforced here:
//
//   - an exit match binds to the current line: the line carrying the exit
//     marker is already outside the region when it is evaluated;
//   - an enter match takes effect on the next line, never retroactively on
//     the line carrying the opener;
//   - when one line carries both, textual order decides: an exit after the
//     enter closes the region before it ever activates (a one-line
//     "module m(input a);" header), while an enter after the exit reopens it
//     for the following line.
//
// Regions are independent of each other. Same-named nesting is not tracked:
// a second enter while the region is active is a no-op, and the region stays
// active until the next exit.
package region

import "regexp"

// Spec names a region and its enter/exit line patterns.
type Spec struct {
	Name  string
	Enter *regexp.Regexp
	Exit  *regexp.Regexp
}

// Tracker scans lines once and answers which regions are active for the line
// most recently passed to Advance. State is per file; call Reset between
// files.
type Tracker struct {
	specs   []Spec
	index   map[string]int
	active  []bool
	pending []bool
}

// NewTracker builds a tracker for the given region specs.
func NewTracker(specs ...Spec) *Tracker {
	t := &Tracker{
		specs:   specs,
		index:   make(map[string]int, len(specs)),
		active:  make([]bool, len(specs)),
		pending: make([]bool, len(specs)),
	}
	for i, s := range specs {
		t.index[s.Name] = i
	}
	return t
}

// Reset clears all region state. Region state never persists across files.
func (t *Tracker) Reset() {
	for i := range t.active {
		t.active[i] = false
		t.pending[i] = false
	}
}

// Advance consumes the next line. After it returns, Active reports region
// membership for that line: enters latched on earlier lines have taken
// effect, and exits matching this line have already been applied.
func (t *Tracker) Advance(line string) {
	for i := range t.specs {
		if t.pending[i] {
			t.active[i] = true
			t.pending[i] = false
		}
		exit := t.specs[i].Exit.FindStringIndex(line)
		if t.active[i] && exit != nil {
			t.active[i] = false
		}
		if t.active[i] {
			continue
		}
		enter := t.specs[i].Enter.FindStringIndex(line)
		if enter == nil {
			continue
		}
		// An exit later on the same line closes the region the enter would
		// have opened; only an enter following the exit survives to the
		// next line.
		if exit == nil || enter[0] > exit[0] {
			t.pending[i] = true
		}
	}
}

// Active reports whether the named region is active for the line most
// recently passed to Advance. Unknown names are never active.
func (t *Tracker) Active(name string) bool {
	i, ok := t.index[name]
	if !ok {
		return false
	}
	return t.active[i]
}
