package services

// ServiceContainer holds instances of all the application services.
// It is the main entry point for accessing service functionality from the
// handlers and the CLI.
type ServiceContainer struct {
	Transcoder StatementTranscoderSvc
	Conversion ConversionSvcFacade
}
