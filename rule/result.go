package rule

// Status is the analyzer's verdict for one run.
type Status int

const (
	// Passed means positive capability evidence was found on either channel.
	Passed Status = iota
	// Warning means the analysis completed but found no evidence.
	Warning
	// Failed means a required input was present but unparsable.
	Failed
	// Skipped means a required input was absent and the analysis could not
	// meaningfully run.
	Skipped
)

func (s Status) String() string {
	switch s {
	case Passed:
		return "passed"
	case Warning:
		return "warning"
	case Failed:
		return "failed"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Severity grades an Issue.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Issue is one actionable finding. Issues are immutable once created and
// keep their insertion order in the Result.
type Issue struct {
	Message        string
	Severity       Severity
	Recommendation string
}

// Result is the analyzer's sole output: a status, the ordered issues, and
// the evidence labels (matched package names or pattern labels) when the
// verdict is Passed.
type Result struct {
	Status   Status
	Issues   []Issue
	Evidence []string
}
