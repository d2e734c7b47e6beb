// Package mt940 reads and writes SWIFT MT940 customer statement messages.
//
// Only block 4 (the text block) is interpreted. Basic, application and user
// header blocks are skipped when present; output is always a bare block 4.
package mt940

import (
	"github.com/SscSPs/statement_converter/internal/core/ports"
)

const (
	tagReference        = "20"
	tagRelatedReference = "21"
	tagAccount          = "25"
	tagStatementNumber  = "28C"
	tagOpeningFinal     = "60F"
	tagOpeningInterim   = "60M"
	tagStatementLine    = "61"
	tagNarrative        = "86"
	tagClosingFinal     = "62F"
	tagClosingInterim   = "62M"
	tagClosingAvailable = "64"

	swiftDateLayout = "060102"
	lineBreak       = "\r\n"
	noReference     = "NONREF"
)

// Codec is the MT940 text codec.
type Codec struct{}

// NewCodec creates an MT940 codec.
func NewCodec() *Codec {
	return &Codec{}
}

var _ ports.MessageCodec = (*Codec)(nil)
