// Package camt053 reads and writes camt.053 bank-to-customer statement XML.
package camt053

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/SscSPs/statement_converter/internal/apperrors"
	"github.com/SscSPs/statement_converter/internal/core/domain"
	"github.com/SscSPs/statement_converter/internal/core/ports"
)

const indent = "  "

// Codec is the camt.053 XML codec.
type Codec struct{}

// NewCodec creates a camt.053 codec.
func NewCodec() *Codec {
	return &Codec{}
}

var _ ports.DocumentCodec = (*Codec)(nil)

// Parse decodes one <Document> from r.
func (c *Codec) Parse(r io.Reader) (*domain.StatementDocument, error) {
	var doc domain.StatementDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty camt.053 document", apperrors.ErrMalformedInput)
		}
		return nil, fmt.Errorf("%w: camt.053: %v", apperrors.ErrMalformedInput, err)
	}
	return &doc, nil
}

// Serialize writes doc as indented XML with a declaration. Documents without a
// namespace get the camt.053.001.02 namespace.
func (c *Codec) Serialize(doc *domain.StatementDocument, w io.Writer) error {
	if doc == nil {
		return fmt.Errorf("%w: nil statement document", apperrors.ErrConversion)
	}
	out := *doc
	if out.Namespace == "" {
		out.Namespace = domain.CAMT053Namespace
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("%w: write camt.053: %v", apperrors.ErrMalformedInput, err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", indent)
	if err := enc.Encode(&out); err != nil {
		return fmt.Errorf("%w: encode camt.053: %v", apperrors.ErrMalformedInput, err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("%w: write camt.053: %v", apperrors.ErrMalformedInput, err)
	}
	return nil
}
