package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ardhian127/bike-rental-analyst/internal/domain"
)

// PostgresRepository implements domain.TableRepository
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// LoadDays reads the daily table from PostgreSQL
func (r *PostgresRepository) LoadDays(ctx context.Context) ([]domain.DayRecord, error) {
	query := `
		SELECT dateday, season, grand_total
		FROM days_data
		ORDER BY dateday
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query days data: %w", err)
	}
	defer rows.Close()

	var results []domain.DayRecord
	for rows.Next() {
		var (
			d      domain.DayRecord
			season string
		)
		if err := rows.Scan(&d.Date, &season, &d.Total); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan days row: %w", err)
		}
		d.Date = domain.DateOf(d.Date)
		d.Season = domain.ParseSeason(season)
		results = append(results, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to read days data: %w", err)
	}

	return results, nil
}

// LoadHours reads the hourly table from PostgreSQL
func (r *PostgresRepository) LoadHours(ctx context.Context) ([]domain.HourRecord, error) {
	query := `
		SELECT dateday, hours, grand_total
		FROM hours_data
		ORDER BY dateday, hours
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query hours data: %w", err)
	}
	defer rows.Close()

	var results []domain.HourRecord
	for rows.Next() {
		var h domain.HourRecord
		if err := rows.Scan(&h.Date, &h.Hour, &h.Total); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan hours row: %w", err)
		}
		h.Date = domain.DateOf(h.Date)
		results = append(results, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to read hours data: %w", err)
	}

	return results, nil
}

// Health checks database connectivity
func (r *PostgresRepository) Health(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}
