package dto

import (
	"time"

	"github.com/SscSPs/statement_converter/internal/core/domain"
)

// ConvertParams holds the route tokens of a conversion request.
type ConvertParams struct {
	From string `uri:"from" binding:"required,oneof=camt053 mt940 csv stdout"`
	To   string `uri:"to" binding:"required,oneof=camt053 mt940 csv stdout"`
}

// GetConversionParams identifies one conversion record.
type GetConversionParams struct {
	ConversionID string `uri:"conversionID" binding:"required,uuid"`
}

// ListConversionRecordsParams defines parameters for listing conversion records with pagination
type ListConversionRecordsParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ConversionRecordResponse defines the data returned for one conversion.
type ConversionRecordResponse struct {
	ConversionID string    `json:"conversionID"`
	From         string    `json:"from"`
	To           string    `json:"to"`
	Status       string    `json:"status"`
	ErrorKind    string    `json:"errorKind,omitempty"`
	ErrorMessage string    `json:"errorMessage,omitempty"`
	EntryCount   int       `json:"entryCount"`
	BytesIn      int64     `json:"bytesIn"`
	BytesOut     int64     `json:"bytesOut"`
	DurationMs   int64     `json:"durationMs"`
	RequestedBy  string    `json:"requestedBy,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ListConversionRecordsResponse wraps a page of conversion records.
type ListConversionRecordsResponse struct {
	Conversions []ConversionRecordResponse `json:"conversions"`
	NextToken   *string                    `json:"nextToken,omitempty"`
}

// ErrorResponse is the body returned for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// ToConversionRecordResponse converts a domain.ConversionRecord to its DTO.
func ToConversionRecordResponse(r *domain.ConversionRecord) ConversionRecordResponse {
	return ConversionRecordResponse{
		ConversionID: r.ConversionID,
		From:         string(r.From),
		To:           string(r.To),
		Status:       string(r.Status),
		ErrorKind:    r.ErrorKind,
		ErrorMessage: r.ErrorMessage,
		EntryCount:   r.EntryCount,
		BytesIn:      r.BytesIn,
		BytesOut:     r.BytesOut,
		DurationMs:   r.Duration.Milliseconds(),
		RequestedBy:  r.RequestedBy,
		CreatedAt:    r.CreatedAt,
	}
}

// ToListConversionRecordsResponse converts a page of records to its DTO.
func ToListConversionRecordsResponse(records []domain.ConversionRecord, nextToken *string) *ListConversionRecordsResponse {
	list := make([]ConversionRecordResponse, len(records))
	for i := range records {
		list[i] = ToConversionRecordResponse(&records[i])
	}
	return &ListConversionRecordsResponse{Conversions: list, NextToken: nextToken}
}
