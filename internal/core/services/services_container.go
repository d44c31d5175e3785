package services

import (
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
)

// NewServiceContainer wires the services over one repository provider. All
// mutating services share one operation gate, which is what gives every write
// path validate-then-commit atomicity against the others.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, snapshotRepo portsrepo.SnapshotRepository) *portssvc.ServiceContainer {
	gate := newOpGate()

	journalSvc := newJournalService(gate, repos.Journal)
	inventorySvc := newInventoryService(gate, repos.Product, repos.Batch, journalSvc)
	costingSvc := newCostingService(repos.Product, repos.Batch)
	debtSvc := newDebtService(gate, repos.Debt, journalSvc)
	saleSvc := newSaleService(gate, repos.Product, repos.Batch, repos.Sale, costingSvc, debtSvc, journalSvc)
	allocationSvc := newAllocationService(gate, repos.Debt, debtSvc)
	reportingSvc := newReportingService(repos.Snapshot)
	snapshotSvc := newSnapshotService(gate, repos.Snapshot, snapshotRepo)

	return &portssvc.ServiceContainer{
		Inventory:  inventorySvc,
		Costing:    costingSvc,
		Sale:       saleSvc,
		Debt:       debtSvc,
		Allocation: allocationSvc,
		Journal:    journalSvc,
		Reporting:  reportingSvc,
		Snapshot:   snapshotSvc,
	}
}
