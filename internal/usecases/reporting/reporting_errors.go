package reporting

import "errors"

var (
	// ErrEmptyQuery means the parsed query enumerates zero combinations
	ErrEmptyQuery = errors.New("query enumerates no (company, year, month) combinations")

	// ErrMalformedRecord marks a record whose revenue field could not be
	// parsed as a number. Scoped to the single record: it is excluded from
	// averages, never aborts the report.
	ErrMalformedRecord = errors.New("record has non-numeric revenue")
)
