package mopsclient

import "fmt"

// FetchError signals a systemic fetch problem (transport failure, timeout,
// response with no parseable table). It is retryable and must be kept apart
// from the legitimate "no record for this period" outcome, which is reported
// as a nil record with a nil error.
type FetchError struct {
	CompanyID string
	Year      int
	Month     int
	Err       error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("mops fetch failed for company %s period %d-%02d: %v", e.CompanyID, e.Year, e.Month, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Retryable marks the error as safe to retry on a later run
func (e *FetchError) Retryable() bool {
	return true
}
