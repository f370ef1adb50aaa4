package repositories

// RepositoryProvider holds all repository interfaces needed at startup.
type RepositoryProvider struct {
	CurrencyRepo CurrencyReader
}
