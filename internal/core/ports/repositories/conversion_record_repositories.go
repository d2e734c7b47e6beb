package repositories

import (
	"context"

	"github.com/SscSPs/statement_converter/internal/core/domain"
)

// ConversionRecordReader defines read operations for conversion history
type ConversionRecordReader interface {
	// FindConversionRecordByID retrieves one record by its ID.
	FindConversionRecordByID(ctx context.Context, conversionID string) (*domain.ConversionRecord, error)

	// ListConversionRecords returns records newest first, starting after nextToken when given.
	ListConversionRecords(ctx context.Context, limit int, nextToken *string) ([]domain.ConversionRecord, *string, error)
}

// ConversionRecordWriter defines write operations for conversion history
type ConversionRecordWriter interface {
	// SaveConversionRecord persists one record.
	SaveConversionRecord(ctx context.Context, record domain.ConversionRecord) error
}

// ConversionRecordRepositoryFacade combines all conversion history repository interfaces
type ConversionRecordRepositoryFacade interface {
	ConversionRecordReader
	ConversionRecordWriter
}
