package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/SscSPs/statement_converter/internal/apperrors"
	"github.com/SscSPs/statement_converter/internal/core/domain"
	"github.com/SscSPs/statement_converter/internal/core/ports"
	portsrepo "github.com/SscSPs/statement_converter/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/statement_converter/internal/core/ports/services"
	"github.com/SscSPs/statement_converter/internal/dto"
	"github.com/google/uuid"
)

const defaultListLimit = 20

type routeKey struct {
	from, to domain.Format
}

// pipeline decodes r, converts, and encodes into w. It returns the number of
// transactions carried over.
type pipeline func(r io.Reader, w io.Writer) (int, error)

// conversionService implements the ConversionSvcFacade interface
type conversionService struct {
	BaseService
	codecs     ports.Codecs
	transcoder portssvc.StatementTranscoderSvc
	recordRepo portsrepo.ConversionRecordRepositoryFacade
	clock      Clock
	pipelines  map[routeKey]pipeline
}

// ConversionServiceOption is a functional option for configuring the conversion service
type ConversionServiceOption func(*conversionService)

// WithConversionRecordRepository enables conversion history.
func WithConversionRecordRepository(repo portsrepo.ConversionRecordRepositoryFacade) ConversionServiceOption {
	return func(s *conversionService) {
		s.recordRepo = repo
	}
}

// WithConversionClock sets the clock used for record timestamps and durations.
func WithConversionClock(clock Clock) ConversionServiceOption {
	return func(s *conversionService) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewConversionService creates a new conversion service with the provided options
func NewConversionService(codecs ports.Codecs, transcoder portssvc.StatementTranscoderSvc, options ...ConversionServiceOption) portssvc.ConversionSvcFacade {
	svc := &conversionService{
		codecs:     codecs,
		transcoder: transcoder,
		clock:      SystemClock{},
	}
	for _, option := range options {
		option(svc)
	}
	svc.pipelines = svc.buildPipelines()
	return svc
}

// Ensure conversionService implements the ConversionSvcFacade interface
var _ portssvc.ConversionSvcFacade = (*conversionService)(nil)

func (s *conversionService) buildPipelines() map[routeKey]pipeline {
	return map[routeKey]pipeline{
		{domain.FormatCAMT053, domain.FormatMT940}: func(r io.Reader, w io.Writer) (int, error) {
			doc, err := s.codecs.Document.Parse(r)
			if err != nil {
				return 0, err
			}
			msg, err := s.transcoder.ToMessage(doc)
			if err != nil {
				return 0, err
			}
			return len(msg.StatementLines), s.codecs.Message.Serialize(msg, w)
		},
		{domain.FormatMT940, domain.FormatCAMT053}: func(r io.Reader, w io.Writer) (int, error) {
			msg, err := s.codecs.Message.Parse(r)
			if err != nil {
				return 0, err
			}
			doc, err := s.transcoder.ToDocument(msg)
			if err != nil {
				return 0, err
			}
			return len(doc.Statement().Entries), s.codecs.Document.Serialize(doc, w)
		},
		{domain.FormatCAMT053, domain.FormatCAMT053}: func(r io.Reader, w io.Writer) (int, error) {
			doc, err := s.codecs.Document.Parse(r)
			if err != nil {
				return 0, err
			}
			return len(doc.Statement().Entries), s.codecs.Document.Serialize(doc, w)
		},
		{domain.FormatMT940, domain.FormatMT940}: func(r io.Reader, w io.Writer) (int, error) {
			msg, err := s.codecs.Message.Parse(r)
			if err != nil {
				return 0, err
			}
			return len(msg.StatementLines), s.codecs.Message.Serialize(msg, w)
		},
		{domain.FormatCSV, domain.FormatCSV}: func(r io.Reader, w io.Writer) (int, error) {
			set, err := s.codecs.Transaction.Parse(r)
			if err != nil {
				return 0, err
			}
			return len(set.Rows), s.codecs.Transaction.Serialize(set, w)
		},
		{domain.FormatCAMT053, domain.FormatCSV}: func(r io.Reader, w io.Writer) (int, error) {
			doc, err := s.codecs.Document.Parse(r)
			if err != nil {
				return 0, err
			}
			msg, err := s.transcoder.ToMessage(doc)
			if err != nil {
				return 0, err
			}
			return s.writeTransactions(msg, w)
		},
		{domain.FormatMT940, domain.FormatCSV}: func(r io.Reader, w io.Writer) (int, error) {
			msg, err := s.codecs.Message.Parse(r)
			if err != nil {
				return 0, err
			}
			return s.writeTransactions(msg, w)
		},
	}
}

func (s *conversionService) writeTransactions(msg *domain.StatementMessage, w io.Writer) (int, error) {
	set, err := ProjectTransactions(msg)
	if err != nil {
		return 0, err
	}
	return len(set.Rows), s.codecs.Transaction.Serialize(set, w)
}

// ResolveRoute turns the format tokens into a concrete route. "stdout" takes the
// format of the other side: as input it marks inline data, as output it marks
// printing to standard output.
func (s *conversionService) ResolveRoute(inFormat, outFormat string) (domain.Route, error) {
	from, err := parseFormat(inFormat)
	if err != nil {
		return domain.Route{}, err
	}
	to, err := parseFormat(outFormat)
	if err != nil {
		return domain.Route{}, err
	}

	route := domain.Route{From: from, To: to}
	switch {
	case from == domain.FormatStdout && to == domain.FormatStdout:
		return domain.Route{}, fmt.Errorf("%w: %s -> %s", apperrors.ErrUnsupportedFormat, inFormat, outFormat)
	case from == domain.FormatStdout:
		route.From, route.InlineInput = to, true
	case to == domain.FormatStdout:
		route.To, route.ToStdout = from, true
	}

	if _, ok := s.pipelines[routeKey{route.From, route.To}]; !ok {
		return domain.Route{}, fmt.Errorf("%w: %s -> %s", apperrors.ErrUnsupportedFormat, inFormat, outFormat)
	}
	return route, nil
}

func parseFormat(token string) (domain.Format, error) {
	switch f := domain.Format(strings.ToLower(strings.TrimSpace(token))); f {
	case domain.FormatCAMT053, domain.FormatMT940, domain.FormatCSV, domain.FormatStdout:
		return f, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q", apperrors.ErrUnsupportedFormat, token)
	}
}

// Convert runs the route end to end. Output is written to w only when the whole
// conversion succeeds.
func (s *conversionService) Convert(ctx context.Context, route domain.Route, r io.Reader, w io.Writer, requestedBy string) (*domain.ConversionResult, error) {
	run, ok := s.pipelines[routeKey{route.From, route.To}]
	if !ok {
		return nil, fmt.Errorf("%w: %s -> %s", apperrors.ErrUnsupportedFormat, route.From, route.To)
	}

	conversionID := uuid.NewString()
	started := s.clock.Now()
	s.LogDebug(ctx, "Conversion started",
		slog.String("conversion_id", conversionID),
		slog.String("from", string(route.From)),
		slog.String("to", string(route.To)))

	in := &countingReader{r: r}
	var out bytes.Buffer
	entries, err := run(in, &out)

	var written int64
	if err == nil {
		written, err = out.WriteTo(w)
		if err != nil {
			err = fmt.Errorf("%w: write output: %v", apperrors.ErrMalformedInput, err)
		}
	}

	record := domain.ConversionRecord{
		ConversionID: conversionID,
		From:         route.From,
		To:           route.To,
		Status:       domain.ConversionSucceeded,
		EntryCount:   entries,
		BytesIn:      in.n,
		BytesOut:     written,
		Duration:     s.clock.Now().Sub(started),
		RequestedBy:  requestedBy,
		CreatedAt:    started,
	}
	if err != nil {
		record.Status = domain.ConversionFailed
		record.ErrorKind = apperrors.Kind(err)
		record.ErrorMessage = err.Error()
		record.EntryCount = 0
		s.LogError(ctx, err, "Conversion failed",
			slog.String("conversion_id", conversionID),
			slog.String("kind", record.ErrorKind),
			slog.String("from", string(route.From)),
			slog.String("to", string(route.To)))
	} else {
		s.LogInfo(ctx, "Conversion finished",
			slog.String("conversion_id", conversionID),
			slog.String("from", string(route.From)),
			slog.String("to", string(route.To)),
			slog.Int("entries", entries),
			slog.Duration("duration", record.Duration))
	}

	s.saveRecord(ctx, record)

	if err != nil {
		return nil, err
	}
	return &domain.ConversionResult{
		ConversionID: conversionID,
		Route:        route,
		EntryCount:   entries,
		BytesIn:      record.BytesIn,
		BytesOut:     record.BytesOut,
		Duration:     record.Duration,
	}, nil
}

// saveRecord stores the record when history is enabled. A storage failure never
// fails the conversion itself.
func (s *conversionService) saveRecord(ctx context.Context, record domain.ConversionRecord) {
	if s.recordRepo == nil {
		return
	}
	if err := s.recordRepo.SaveConversionRecord(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to save conversion record",
			slog.String("conversion_id", record.ConversionID))
	}
}

func (s *conversionService) HistoryEnabled() bool {
	return s.recordRepo != nil
}

// GetConversionRecord retrieves one conversion record
func (s *conversionService) GetConversionRecord(ctx context.Context, conversionID string) (*domain.ConversionRecord, error) {
	if s.recordRepo == nil {
		return nil, fmt.Errorf("%w: conversion history is disabled", apperrors.ErrNotFound)
	}
	record, err := s.recordRepo.FindConversionRecordByID(ctx, conversionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find conversion record",
				slog.String("conversion_id", conversionID))
		}
		return nil, err
	}
	return record, nil
}

// ListConversionRecords lists conversion records newest first
func (s *conversionService) ListConversionRecords(ctx context.Context, params dto.ListConversionRecordsParams) (*dto.ListConversionRecordsResponse, error) {
	if s.recordRepo == nil {
		return nil, fmt.Errorf("%w: conversion history is disabled", apperrors.ErrNotFound)
	}
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	records, nextToken, err := s.recordRepo.ListConversionRecords(ctx, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list conversion records", slog.Int("limit", limit))
		return nil, err
	}

	s.LogDebug(ctx, "Conversion records listed successfully", slog.Int("count", len(records)))
	return dto.ToListConversionRecordsResponse(records, nextToken), nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
