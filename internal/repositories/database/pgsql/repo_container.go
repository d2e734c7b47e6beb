package pgsql

import (
	portsrepo "github.com/SscSPs/statement_converter/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ConversionRecordRepo: newPgxConversionRecordRepository(dbPool),
	}
}
