package ports

import (
	"io"

	"github.com/SscSPs/statement_converter/internal/core/domain"
)

// DocumentCodec reads and writes camt.053 statement documents.
type DocumentCodec interface {
	Parse(r io.Reader) (*domain.StatementDocument, error)
	Serialize(doc *domain.StatementDocument, w io.Writer) error
}

// MessageCodec reads and writes MT940 statement messages.
type MessageCodec interface {
	Parse(r io.Reader) (*domain.StatementMessage, error)
	// Serialize writes the message as a textual MT940 block 4.
	Serialize(msg *domain.StatementMessage, w io.Writer) error
}

// TransactionSetCodec reads and writes flat CSV transaction lists.
type TransactionSetCodec interface {
	Parse(r io.Reader) (*domain.TransactionSet, error)
	Serialize(set *domain.TransactionSet, w io.Writer) error
}

// Codecs bundles one codec per format.
type Codecs struct {
	Document    DocumentCodec
	Message     MessageCodec
	Transaction TransactionSetCodec
}
