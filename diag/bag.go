package diag

import (
	"fmt"
	"sort"
	"strings"
)

// Bag collects diagnostics in emission order. The library itself never
// reorders or deduplicates a bag; Sort and Dedup exist for callers that
// want a stable presentation order.
type Bag struct {
	items []Diagnostic
	max   int
}

// NewBag creates a bag capped at max diagnostics; max <= 0 means unlimited.
func NewBag(max int) *Bag {
	capHint := max
	if capHint <= 0 {
		capHint = 16
	}
	return &Bag{
		items: make([]Diagnostic, 0, capHint),
		max:   max,
	}
}

// Add appends d, honoring the cap. Returns false when the cap is reached
// and the diagnostic was dropped.
func (b *Bag) Add(d Diagnostic) bool {
	if b.max > 0 && len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Len() int { return len(b.items) }

// Items returns the diagnostics in emission order. The slice aliases the
// bag's storage; do not modify it.
func (b *Bag) Items() []Diagnostic { return b.items }

// HasErrors reports whether any diagnostic has severity SevError.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any diagnostic has severity >= SevWarning.
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevWarning {
			return true
		}
	}
	return false
}

// Merge appends the contents of another bag, growing the cap if needed.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	if b.max > 0 && len(b.items)+len(other.items) > b.max {
		b.max = len(b.items) + len(other.items)
	}
	b.items = append(b.items, other.items...)
}

// Sort orders diagnostics by file, start offset, end offset, severity
// (descending), then code. Caller-invoked only.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.File != dj.File {
			return di.File < dj.File
		}
		if di.Primary.ByteStart != dj.Primary.ByteStart {
			return di.Primary.ByteStart < dj.Primary.ByteStart
		}
		if di.Primary.ByteEnd != dj.Primary.ByteEnd {
			return di.Primary.ByteEnd < dj.Primary.ByteEnd
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}

// Dedup drops diagnostics that repeat an earlier code+span pair.
// Caller-invoked only.
func (b *Bag) Dedup() {
	seen := make(map[string]bool, len(b.items))
	out := b.items[:0]
	for _, d := range b.items {
		key := fmt.Sprintf("%s:%d:%d-%d", d.Code.ID(), d.Primary.ByteStart, d.Primary.ByteEnd, d.Severity)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, d)
	}
	b.items = out
}

// String joins one summary line per diagnostic, useful in test failures.
func (b *Bag) String() string {
	var sb strings.Builder
	for _, d := range b.items {
		fmt.Fprintf(&sb, "%s %s %d:%d %s\n", d.Severity, d.Code.ID(), d.Primary.LineStart, d.Primary.ColStart, d.Message)
	}
	return sb.String()
}
