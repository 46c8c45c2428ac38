package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/twmops/revenue-insight-api/infrastructure/database/postgres"
	"github.com/twmops/revenue-insight-api/internal/domain"
	"github.com/twmops/revenue-insight-api/pkg/utils"
)

const queryHistoryTable = "query_history qh"

// QueryHistoryRepository persists past report request parameters so
// operators can replay earlier queries. Recording is best effort: callers
// log failures and move on.
type QueryHistoryRepository interface {
	Save(entry *domain.QueryHistoryEntry) error
	ListRecent(limit int) ([]*domain.QueryHistoryEntry, error)
}

type queryHistoryRepository struct {
	conn *postgres.Connection
}

func NewQueryHistoryRepository(conn *postgres.Connection) QueryHistoryRepository {
	return &queryHistoryRepository{
		conn: conn,
	}
}

func (r *queryHistoryRepository) Save(entry *domain.QueryHistoryEntry) error {
	if entry.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("generating history id: %w", err)
		}
		entry.ID = id
	}

	years := make([]int64, len(entry.Years))
	for i, y := range entry.Years {
		years[i] = int64(y)
	}
	months := make([]int64, len(entry.Months))
	for i, m := range entry.Months {
		months[i] = int64(m)
	}

	query := squirrel.StatementBuilder.
		Insert("query_history").
		Columns("id", "company_ids", "years", "months").
		Values(
			entry.ID,
			pq.Array(entry.CompanyIDs),
			pq.Array(years),
			pq.Array(months),
		).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("executing query: %w", err)
	}

	return nil
}

func (r *queryHistoryRepository) ListRecent(limit int) ([]*domain.QueryHistoryEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	sqlQuery, args, err := squirrel.
		Select("qh.id, qh.company_ids, qh.years, qh.months, qh.created_at").
		From(queryHistoryTable).
		OrderBy("qh.created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.QueryHistoryEntry, 0)
	for rows.Next() {
		entry := &domain.QueryHistoryEntry{}

		var companyIDs pq.StringArray
		var years, months pq.Int64Array
		var createdAt time.Time

		if err := rows.Scan(&entry.ID, &companyIDs, &years, &months, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}

		entry.CompanyIDs = companyIDs
		entry.Years = toInts(years)
		entry.Months = toInts(months)
		entry.CreatedAt = createdAt

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return entries, nil
}

func toInts(values pq.Int64Array) []int {
	ints := make([]int, len(values))
	for i, v := range values {
		ints[i] = int(v)
	}
	return ints
}
