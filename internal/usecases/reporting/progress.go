package reporting

import (
	"github.com/sirupsen/logrus"

	"github.com/twmops/revenue-insight-api/internal/domain"
)

// ProgressObserver is notified once per attempted combination, whether or not
// the fetch produced a record. done counts attempted combinations so far,
// total is the full cross-product size.
type ProgressObserver func(done, total int, target domain.FetchTarget)

// LogrusProgressObserver reports collection progress through the service logs
func LogrusProgressObserver() ProgressObserver {
	return func(done, total int, target domain.FetchTarget) {
		logrus.WithFields(logrus.Fields{
			"done":       done,
			"total":      total,
			"company_id": target.CompanyID,
			"period":     target.Period(),
		}).Debug("revenue collection progress")
	}
}

// NopProgressObserver discards progress notifications, for tests and callers
// without an operator display.
func NopProgressObserver() ProgressObserver {
	return func(int, int, domain.FetchTarget) {}
}
