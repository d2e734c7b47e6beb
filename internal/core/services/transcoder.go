package services

import (
	portssvc "github.com/SscSPs/statement_converter/internal/core/ports/services"
)

// Transcoder maps statement documents to messages and back. It holds no mutable
// state and is safe for concurrent use.
type Transcoder struct {
	clock                     Clock
	detailCurrencyFromAccount bool
}

// TranscoderOption is a functional option for configuring the transcoder
type TranscoderOption func(*Transcoder)

// WithClock sets the clock used for creation timestamps.
func WithClock(clock Clock) TranscoderOption {
	return func(t *Transcoder) {
		if clock != nil {
			t.clock = clock
		}
	}
}

// WithStatementCurrencyInDetails reports transaction detail amounts in the
// statement currency instead of EUR.
func WithStatementCurrencyInDetails() TranscoderOption {
	return func(t *Transcoder) {
		t.detailCurrencyFromAccount = true
	}
}

// NewTranscoder creates a transcoder with the provided options
func NewTranscoder(options ...TranscoderOption) *Transcoder {
	t := &Transcoder{clock: SystemClock{}}
	for _, option := range options {
		option(t)
	}
	return t
}

var _ portssvc.StatementTranscoderSvc = (*Transcoder)(nil)
