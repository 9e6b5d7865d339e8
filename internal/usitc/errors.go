package usitc

import (
	"errors"
	"fmt"
)

// StatusError reports a non-success status from the tariff database.
// Callers running a multi-keyword fan-out skip the failed keyword and
// continue; single lookups surface it as-is.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("USITC API returned status %d", e.Code)
}

// IsUpstreamError reports whether err is a tariff-database status failure.
func IsUpstreamError(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}
