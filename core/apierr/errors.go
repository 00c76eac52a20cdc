// Package apierr defines the error taxonomy of the design engine (§7).
// Per-candidate anomalies are never raised through this package — they are
// reported as fields on the safety analysis instead. Only failures that
// stop a run (bad input, resource ceilings, a detected bug) are typed here.
package apierr

import "fmt"

// ValidationError is returned when a sequence fails ingestion validation:
// empty input, an out-of-bounds length, or a disallowed byte.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return "validation: " + e.Reason }

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// ResourceError is returned when an index's estimated memory footprint
// exceeds the configured ceiling before any allocation is attempted.
type ResourceError struct {
	Reason string
}

func (e *ResourceError) Error() string { return "resource: " + e.Reason }

func NewResourceError(format string, args ...any) *ResourceError {
	return &ResourceError{Reason: fmt.Sprintf(format, args...)}
}

// InternalInvariantViolation indicates a bug: a candidate escaped the
// filter chain in a state the pipeline's own invariants forbid. The
// orchestrator aborts the run rather than returning a result it cannot
// vouch for.
type InternalInvariantViolation struct {
	Reason string
}

func (e *InternalInvariantViolation) Error() string {
	return "internal invariant violated: " + e.Reason
}

func NewInvariantViolation(format string, args ...any) *InternalInvariantViolation {
	return &InternalInvariantViolation{Reason: fmt.Sprintf(format, args...)}
}
