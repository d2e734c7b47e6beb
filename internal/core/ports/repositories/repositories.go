package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// ConversionRecordRepo is nil when conversion history is disabled.
type RepositoryProvider struct {
	ConversionRecordRepo ConversionRecordRepositoryFacade
}
