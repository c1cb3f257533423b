package filter

import (
	"fmt"
)

// RecordKind names the kind of record a filter was evaluated against
type RecordKind string

const (
	RecordShow    RecordKind = "show"
	RecordEpisode RecordKind = "episode"
)

// CompilationError reports an expression that could not be compiled.
// Position is the column of the offending token, or -1 when expr did not report one.
type CompilationError struct {
	Expression string
	Reason     string
	Position   int
	Err        error
}

func (e *CompilationError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("invalid filter %q: %s", e.Expression, e.Reason)
	}
	return fmt.Sprintf("invalid filter %q at column %d: %s", e.Expression, e.Position, e.Reason)
}

func (e *CompilationError) Unwrap() error { return e.Err }

// EvaluationError reports a filter that failed while running against one record
type EvaluationError struct {
	Expression string
	Kind       RecordKind
	// Record identifies the record: a show name or an episode code
	Record string
	Reason string
	Err    error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("filter %q failed on %s %q: %s", e.Expression, e.Kind, e.Record, e.Reason)
}

func (e *EvaluationError) Unwrap() error { return e.Err }
