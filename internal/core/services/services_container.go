package services

import (
	"github.com/SscSPs/statement_converter/internal/core/ports"
	portsrepo "github.com/SscSPs/statement_converter/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/statement_converter/internal/core/ports/services"
	"github.com/SscSPs/statement_converter/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, codecs ports.Codecs, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	var transcoderOpts []TranscoderOption
	if cfg.DetailCurrencyFromStatement {
		transcoderOpts = append(transcoderOpts, WithStatementCurrencyInDetails())
	}
	transcoder := NewTranscoder(transcoderOpts...)

	var conversionOpts []ConversionServiceOption
	if repos.ConversionRecordRepo != nil {
		conversionOpts = append(conversionOpts, WithConversionRecordRepository(repos.ConversionRecordRepo))
	}

	return &portssvc.ServiceContainer{
		Transcoder: transcoder,
		Conversion: NewConversionService(codecs, transcoder, conversionOpts...),
	}
}
