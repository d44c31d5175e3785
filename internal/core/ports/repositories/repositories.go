package repositories

// RepositoryProvider bundles the repository facades an engine instance is
// built on, so tests can construct isolated stores per test case.
type RepositoryProvider struct {
	Product  ProductRepositoryFacade
	Batch    BatchRepositoryFacade
	Sale     SaleRepositoryFacade
	Debt     DebtRepositoryFacade
	Journal  JournalRepositoryFacade
	Snapshot SnapshotStore
}
