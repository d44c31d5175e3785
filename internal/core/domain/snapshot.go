package domain

// Snapshot is the full engine state in a serializable form. The hosting
// layer exports one after each successful mutation and imports one at boot;
// the engine itself never performs I/O.
type Snapshot struct {
	Products []Product        `json:"products"`
	Batches  []InventoryBatch `json:"batches"`
	Sales    []SaleRecord     `json:"sales"`
	Debts    []Debt           `json:"debts"`
	Payments []Payment        `json:"payments"`
	Journal  []JournalEntry   `json:"journal"`
	// Counters preserved so restored state keeps deterministic ordering.
	BatchSequence   int64 `json:"batchSequence"`
	JournalSequence int64 `json:"journalSequence"`
}
