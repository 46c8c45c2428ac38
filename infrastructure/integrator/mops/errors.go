package mops

import (
	"errors"

	"github.com/twmops/revenue-insight-api/infrastructure/integrator/mops/mopsclient"
)

// IsRetryable reports whether err is a transient fetch failure worth retrying
// on a later run, as opposed to a programming error.
func IsRetryable(err error) bool {
	var fetchErr *mopsclient.FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Retryable()
	}
	return false
}
