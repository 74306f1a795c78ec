package patch

import (
	"fmt"
	"sort"
	"strings"
)

// apply removes the targeted lines from the buffer. Targets are processed in
// descending line order regardless of how the caller listed them; results are
// reported back in the caller's order, one per target.
func (op DeleteLines) apply(buf *Buffer, opts Options) []Result {
	results := make([]Result, len(op.Targets))

	// Remember submission order before sorting.
	order := make([]int, len(op.Targets))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return op.Targets[order[a]].Line > op.Targets[order[b]].Line
	})

	lines := buf.Lines()
	for _, idx := range order {
		target := op.Targets[idx]
		label := fmt.Sprintf("delete line %d", target.Line)

		if target.Line < 1 || target.Line > len(lines) {
			results[idx] = Result{Op: label, Outcome: OutcomeSkipped, Reason: "out of range"}
			continue
		}

		// The content guard keeps a stale line number from silently deleting
		// an unrelated line after earlier edits shifted content. A line
		// qualifies if it holds the run-wide marker or the expected fragment.
		line := lines[target.Line-1]
		markerHit := opts.Marker != "" && strings.Contains(line, opts.Marker)
		if !markerHit && !strings.Contains(line, target.Fragment) {
			results[idx] = Result{Op: label, Outcome: OutcomeSkipped, Reason: "content mismatch"}
			continue
		}

		lines = append(lines[:target.Line-1], lines[target.Line:]...)
		results[idx] = Result{Op: label, Outcome: OutcomeApplied}
	}

	buf.SetLines(lines)
	return results
}
