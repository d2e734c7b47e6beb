package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/SscSPs/statement_converter/internal/apperrors"
	"github.com/SscSPs/statement_converter/internal/core/domain"
	portsrepo "github.com/SscSPs/statement_converter/internal/core/ports/repositories"
	"github.com/SscSPs/statement_converter/internal/models"
	"github.com/SscSPs/statement_converter/internal/utils/mapping"
	"github.com/SscSPs/statement_converter/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const conversionRecordColumns = `conversion_id, from_format, to_format, status, error_kind, error_message,
		       entry_count, bytes_in, bytes_out, duration_ms, requested_by, created_at`

type PgxConversionRecordRepository struct {
	BaseRepository
}

// newPgxConversionRecordRepository creates a new repository for conversion history.
func newPgxConversionRecordRepository(pool *pgxpool.Pool) portsrepo.ConversionRecordRepositoryFacade {
	return &PgxConversionRecordRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ConversionRecordRepositoryFacade = (*PgxConversionRecordRepository)(nil)

// SaveConversionRecord inserts one record. Records are immutable once written.
func (r *PgxConversionRecordRepository) SaveConversionRecord(ctx context.Context, record domain.ConversionRecord) error {
	m := mapping.ToModelConversionRecord(record)
	query := `
		INSERT INTO conversion_records (` + conversionRecordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ConversionID,
		m.FromFormat,
		m.ToFormat,
		m.Status,
		m.ErrorKind,
		m.ErrorMessage,
		m.EntryCount,
		m.BytesIn,
		m.BytesOut,
		m.DurationMs,
		m.RequestedBy,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save conversion record %s: %w", m.ConversionID, err)
	}
	return nil
}

// FindConversionRecordByID retrieves one record by its ID.
func (r *PgxConversionRecordRepository) FindConversionRecordByID(ctx context.Context, conversionID string) (*domain.ConversionRecord, error) {
	query := `SELECT ` + conversionRecordColumns + ` FROM conversion_records WHERE conversion_id = $1;`

	m, err := scanConversionRecord(r.Pool.QueryRow(ctx, query, conversionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("conversion %s: %w", conversionID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find conversion record %s: %w", conversionID, err)
	}
	d := mapping.ToDomainConversionRecord(m)
	return &d, nil
}

// ListConversionRecords retrieves records newest first using token-based pagination.
// The returned token is nil on the last page.
func (r *PgxConversionRecordRepository) ListConversionRecords(ctx context.Context, limit int, nextToken *string) ([]domain.ConversionRecord, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// One extra row tells whether another page exists.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + conversionRecordColumns + ` FROM conversion_records`
	// conversion_id breaks ties between records created at the same instant.
	orderByClause := `ORDER BY created_at DESC, conversion_id DESC`

	args := []interface{}{}
	whereClause := ""
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, err
		}
		whereClause = `WHERE (created_at, conversion_id) < ($1, $2)`
		args = append(args, lastCreatedAt, lastID)
	}
	query := baseQuery + " " + whereClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query conversion records: %w", err)
	}
	defer rows.Close()

	records := make([]models.ConversionRecord, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanConversionRecord(rows)
		if scanErr != nil {
			return nil, nil, fmt.Errorf("failed to scan conversion record row: %w", scanErr)
		}
		records = append(records, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating conversion record rows: %w", err)
	}

	var nextTokenVal *string
	if len(records) > limit {
		last := records[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.ConversionID)
		nextTokenVal = &token
		records = records[:limit]
	}

	return mapping.ToDomainConversionRecordSlice(records), nextTokenVal, nil
}

func scanConversionRecord(row pgx.Row) (models.ConversionRecord, error) {
	var m models.ConversionRecord
	err := row.Scan(
		&m.ConversionID,
		&m.FromFormat,
		&m.ToFormat,
		&m.Status,
		&m.ErrorKind,
		&m.ErrorMessage,
		&m.EntryCount,
		&m.BytesIn,
		&m.BytesOut,
		&m.DurationMs,
		&m.RequestedBy,
		&m.CreatedAt,
	)
	return m, err
}
