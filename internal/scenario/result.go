package scenario

// TraceEvent records the outcome of one step.
type TraceEvent struct {
	Seq int64  `json:"seq"`
	Op  string `json:"op"`

	// Lines is the rendered report, or the total line for total_area.
	// Empty for prune_below.
	Lines []string `json:"lines,omitempty"`

	// Count is the number of reported shapes, or of remaining shapes after prune_below.
	Count int `json:"count"`

	// Removed is the number of shapes dropped by prune_below.
	Removed int `json:"removed,omitempty"`

	total float64
}

// Result is the outcome of a scenario run.
type Result struct {
	// Pass is true when every expectation held.
	Pass bool `json:"pass"`

	// Trace holds one event per step, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors holds one message per failed expectation.
	Errors []string `json:"errors,omitempty"`

	// Fingerprint identifies the collection as the last step left it.
	Fingerprint string `json:"fingerprint"`
}

// NewResult creates a passing result with an empty trace.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError records a failed expectation and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
