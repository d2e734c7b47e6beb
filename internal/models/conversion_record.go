package models

import "time"

// ConversionRecord is the stored row for one conversion attempt.
type ConversionRecord struct {
	ConversionID string    `json:"conversionID"` // Primary Key (UUID)
	FromFormat   string    `json:"fromFormat"`
	ToFormat     string    `json:"toFormat"`
	Status       string    `json:"status"`       // SUCCEEDED or FAILED
	ErrorKind    *string   `json:"errorKind"`    // Nullable
	ErrorMessage *string   `json:"errorMessage"` // Nullable
	EntryCount   int       `json:"entryCount"`
	BytesIn      int64     `json:"bytesIn"`
	BytesOut     int64     `json:"bytesOut"`
	DurationMs   int64     `json:"durationMs"`
	RequestedBy  string    `json:"requestedBy"`
	CreatedAt    time.Time `json:"createdAt"`
}
