package patch

// 📊 Outcome represents the result of applying one operation
type Outcome int

const (
	OutcomeApplied Outcome = iota // Edit was made
	OutcomeSkipped                // Edit had nothing to do, buffer untouched
	OutcomeFailed                 // Edit could not be located
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 Result is the outcome of one edit against a buffer
type Result struct {
	Op           string  // Short description of the edit
	Outcome      Outcome // Applied, Skipped or Failed
	Reason       string  // Why the edit was skipped or failed
	Replacements int     // Number of replacements made (substitutions only)
}

// 📚 Report is the ordered sequence of results for one file-patch run,
// one entry per submitted edit, in submission order
type Report []Result

// ✅ Applied returns the number of applied edits
func (r Report) Applied() int {
	return r.count(OutcomeApplied)
}

// ⏭️ Skipped returns the number of skipped edits
func (r Report) Skipped() int {
	return r.count(OutcomeSkipped)
}

// ❌ Failed returns the number of failed edits
func (r Report) Failed() int {
	return r.count(OutcomeFailed)
}

// 🔍 Ok reports whether no edit failed
func (r Report) Ok() bool {
	return r.Failed() == 0
}

func (r Report) count(o Outcome) int {
	n := 0
	for _, res := range r {
		if res.Outcome == o {
			n++
		}
	}
	return n
}
