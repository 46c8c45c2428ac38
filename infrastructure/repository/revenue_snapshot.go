package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/twmops/revenue-insight-api/infrastructure/database/postgres"
	"github.com/twmops/revenue-insight-api/internal/domain"
)

const revenueSnapshotsTable = "revenue_snapshots rs"

// RevenueSnapshotRepository persists per-(company, year) average revenue
// produced by the watchlist sync job.
type RevenueSnapshotRepository interface {
	SaveOrUpdate(snapshot *domain.RevenueSnapshot) error
	GetByCompanyID(companyID string) ([]*domain.RevenueSnapshot, error)
}

type revenueSnapshotRepository struct {
	conn *postgres.Connection
}

func NewRevenueSnapshotRepository(conn *postgres.Connection) RevenueSnapshotRepository {
	return &revenueSnapshotRepository{
		conn: conn,
	}
}

func (r *revenueSnapshotRepository) SaveOrUpdate(snapshot *domain.RevenueSnapshot) error {
	query := squirrel.StatementBuilder.
		Insert("revenue_snapshots").
		Columns("company_id", "company_name", "year", "average_revenue", "sample_months").
		Values(
			snapshot.CompanyID,
			snapshot.CompanyName,
			snapshot.Year,
			snapshot.AverageRevenue,
			snapshot.SampleMonths,
		).
		Suffix(`
			ON CONFLICT (company_id, year) DO UPDATE SET
				company_name = EXCLUDED.company_name,
				average_revenue = EXCLUDED.average_revenue,
				sample_months = EXCLUDED.sample_months,
				updated_at = NOW()
		`).
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

func (r *revenueSnapshotRepository) GetByCompanyID(companyID string) ([]*domain.RevenueSnapshot, error) {
	sqlQuery, args, err := squirrel.
		Select("rs.company_id, rs.company_name, rs.year, rs.average_revenue, rs.sample_months").
		From(revenueSnapshotsTable).
		Where(squirrel.Eq{"rs.company_id": companyID}).
		OrderBy("rs.year ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.RevenueSnapshot, 0)
	for rows.Next() {
		snapshot := &domain.RevenueSnapshot{}
		if err := rows.Scan(
			&snapshot.CompanyID,
			&snapshot.CompanyName,
			&snapshot.Year,
			&snapshot.AverageRevenue,
			&snapshot.SampleMonths,
		); err != nil {
			return nil, fmt.Errorf("scanning snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return snapshots, nil
}
