package domain

import "time"

// Format is a data representation handled by the converter.
type Format string

const (
	FormatCAMT053 Format = "camt053"
	FormatMT940   Format = "mt940"
	FormatCSV     Format = "csv"
	// FormatStdout is a pseudo-format: as input it means the data is passed inline,
	// as output it means print to standard output. Either way the real format is
	// taken from the other side of the route.
	FormatStdout Format = "stdout"
)

// Route is a resolved conversion: the real source and target formats plus where
// the data comes from and goes to.
type Route struct {
	From        Format
	To          Format
	InlineInput bool
	ToStdout    bool
}

// ConversionStatus is the outcome of one conversion call.
type ConversionStatus string

const (
	ConversionSucceeded ConversionStatus = "SUCCEEDED"
	ConversionFailed    ConversionStatus = "FAILED"
)

// ConversionRecord is the metadata kept about a conversion. It never holds statement contents.
type ConversionRecord struct {
	ConversionID string           `json:"conversionID"`
	From         Format           `json:"from"`
	To           Format           `json:"to"`
	Status       ConversionStatus `json:"status"`
	ErrorKind    string           `json:"errorKind,omitempty"`
	ErrorMessage string           `json:"errorMessage,omitempty"`
	EntryCount   int              `json:"entryCount"`
	BytesIn      int64            `json:"bytesIn"`
	BytesOut     int64            `json:"bytesOut"`
	Duration     time.Duration    `json:"duration"`
	RequestedBy  string           `json:"requestedBy"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// ConversionResult summarises a successful conversion.
type ConversionResult struct {
	ConversionID string
	Route        Route
	EntryCount   int
	BytesIn      int64
	BytesOut     int64
	Duration     time.Duration
}
