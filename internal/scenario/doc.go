// Package scenario runs scripted sequences of queries against a shape
// collection and checks the outcome.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: sample
//	description: "Reference run over the built-in collection"
//	sample: true                  # or shapes_file: path, or shapes: [...]
//	steps:
//	  - op: total_area
//	    expect: {total: 91.54}
//	  - op: report_ascending
//	    expect: {kinds: [circle, circle, circle, circle, rectangle]}
//	  - op: prune_below
//	    threshold: 10
//	    expect: {count: 4}
//	  - op: report_containing
//	    point: {x: 3, y: 4}
//	    expect: {count: 2}
//
// Exactly one shape source is allowed. Inline shapes use the dataset file
// format; shapes_file is resolved relative to the scenario file.
//
// # Operations
//
//   - total_area: sums areas; expect.total is compared to two decimals
//   - report_ascending, report_left_to_right: sort in place and report
//   - prune_below: removes shapes below threshold; expect.count is the number remaining
//   - report_containing: reports shapes containing point
//   - list: reports the collection as is, under header
//   - group: reports the collection grouped by kinds, under header
//
// # Deterministic Transcripts
//
// Every step appends one TraceEvent with a logical seq number. Transcript
// renders the trace as canonical JSON, so the same scenario always produces
// the same bytes and can be compared against a golden file.
package scenario
