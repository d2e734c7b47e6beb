package mapping

import (
	"time"

	"github.com/SscSPs/statement_converter/internal/core/domain"
	"github.com/SscSPs/statement_converter/internal/models"
)

// ToModelConversionRecord converts a domain ConversionRecord to a model ConversionRecord
func ToModelConversionRecord(d domain.ConversionRecord) models.ConversionRecord {
	return models.ConversionRecord{
		ConversionID: d.ConversionID,
		FromFormat:   string(d.From),
		ToFormat:     string(d.To),
		Status:       string(d.Status),
		ErrorKind:    nullableString(d.ErrorKind),
		ErrorMessage: nullableString(d.ErrorMessage),
		EntryCount:   d.EntryCount,
		BytesIn:      d.BytesIn,
		BytesOut:     d.BytesOut,
		DurationMs:   d.Duration.Milliseconds(),
		RequestedBy:  d.RequestedBy,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainConversionRecord converts a model ConversionRecord to a domain ConversionRecord
func ToDomainConversionRecord(m models.ConversionRecord) domain.ConversionRecord {
	d := domain.ConversionRecord{
		ConversionID: m.ConversionID,
		From:         domain.Format(m.FromFormat),
		To:           domain.Format(m.ToFormat),
		Status:       domain.ConversionStatus(m.Status),
		EntryCount:   m.EntryCount,
		BytesIn:      m.BytesIn,
		BytesOut:     m.BytesOut,
		Duration:     time.Duration(m.DurationMs) * time.Millisecond,
		RequestedBy:  m.RequestedBy,
		CreatedAt:    m.CreatedAt,
	}
	if m.ErrorKind != nil {
		d.ErrorKind = *m.ErrorKind
	}
	if m.ErrorMessage != nil {
		d.ErrorMessage = *m.ErrorMessage
	}
	return d
}

// ToDomainConversionRecordSlice converts a slice of model records to domain records
func ToDomainConversionRecordSlice(ms []models.ConversionRecord) []domain.ConversionRecord {
	if ms == nil {
		return nil
	}
	ds := make([]domain.ConversionRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainConversionRecord(m)
	}
	return ds
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
