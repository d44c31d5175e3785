package services

// ServiceContainer holds all service facades for dependency injection into
// the handler layer.
type ServiceContainer struct {
	Inventory  InventorySvcFacade
	Costing    CostingSvcFacade
	Sale       SaleSvcFacade
	Debt       DebtSvcFacade
	Allocation AllocationSvcFacade
	Journal    JournalSvcFacade
	Reporting  ReportingSvcFacade
	Snapshot   SnapshotSvcFacade
}
