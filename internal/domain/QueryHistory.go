package domain

import "time"

// QueryHistoryEntry records one past report request so operators can replay
// earlier queries. Best effort only: the report flow never depends on it.
type QueryHistoryEntry struct {
	ID         string    `json:"id"`
	CompanyIDs []string  `json:"company_ids"`
	Years      []int     `json:"years"`
	Months     []int     `json:"months"`
	CreatedAt  time.Time `json:"created_at"`
}
