package batch

import "github.com/menta2k/photobatch/pkg/transform"

// Options configures one batch run. Transform options are shared read-only
// by every item; Workers bounds how many images are decoded at once (0
// means one per CPU).
type Options struct {
	Transform transform.Options
	Workers   int
}

// Outcome is the per-file result. Output is set on success, Err on failure;
// never both. Outcomes are reported in sorted input order regardless of
// which worker finished first.
type Outcome struct {
	Input  string
	Output string
	Err    error
}

// Summary are the run totals. A run with zero attempted files is a valid,
// successful run over an empty input set.
type Summary struct {
	Attempted int
	Succeeded int
	Failed    int
}

// ProgressUpdate streams incremental counters to a progress consumer.
type ProgressUpdate struct {
	TotalDelta     int
	ProcessedDelta int
	ErrorDelta     int
}
