package metrics

import (
	"errors"
	"fmt"
)

// ErrInvariantViolation marks programmer error in engine inputs: punches from
// another employee, negative timestamps, zero-length shifts. The aggregator
// isolates these per employee-day instead of failing the whole run.
var ErrInvariantViolation = errors.New("invariant violation")

var ErrUnknownReportKind = errors.New("unknown report kind")

// InvariantViolationf wraps ErrInvariantViolation with detail so errors.Is
// still matches.
func InvariantViolationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...))
}
