package services

import (
	"context"
	"io"

	"github.com/SscSPs/statement_converter/internal/core/domain"
	"github.com/SscSPs/statement_converter/internal/dto"
)

// StatementTranscoderSvc maps between the camt.053 document model and the MT940 message model.
// Both directions are pure: each call either returns a fully populated result or an error.
type StatementTranscoderSvc interface {
	// ToMessage projects a statement document onto an MT940 message.
	ToMessage(doc *domain.StatementDocument) (*domain.StatementMessage, error)

	// ToDocument expands an MT940 message into a statement document.
	ToDocument(msg *domain.StatementMessage) (*domain.StatementDocument, error)
}

// ConversionSvc runs format conversions end to end: decode, transcode, encode.
type ConversionSvc interface {
	// ResolveRoute turns a pair of format tokens into a supported route.
	ResolveRoute(inFormat, outFormat string) (domain.Route, error)

	// Convert reads the source format from r and writes the target format to w.
	Convert(ctx context.Context, route domain.Route, r io.Reader, w io.Writer, requestedBy string) (*domain.ConversionResult, error)
}

// ConversionHistorySvc exposes the metadata kept about past conversions.
type ConversionHistorySvc interface {
	// HistoryEnabled reports whether conversion records are persisted.
	HistoryEnabled() bool

	// GetConversionRecord retrieves one conversion record.
	GetConversionRecord(ctx context.Context, conversionID string) (*domain.ConversionRecord, error)

	// ListConversionRecords lists conversion records newest first.
	ListConversionRecords(ctx context.Context, params dto.ListConversionRecordsParams) (*dto.ListConversionRecordsResponse, error)
}

// ConversionSvcFacade combines all conversion-related service interfaces
type ConversionSvcFacade interface {
	ConversionSvc
	ConversionHistorySvc
}
