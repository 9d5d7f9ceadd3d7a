package models

// Inventory maps each accepted denomination to the number of notes currently
// held. Counts are never negative at rest.
type Inventory map[Denomination]int

// NewInventory returns an inventory holding notesPerDenom notes of every
// denomination in the set. This is the state the machine falls back to when
// no persisted state exists or the persisted state is corrupt.
func NewInventory(set DenominationSet, notesPerDenom int) Inventory {
	inv := make(Inventory, len(set))
	for _, d := range set {
		inv[d] = notesPerDenom
	}
	return inv
}

// TotalValue sums face value times note count over the whole inventory.
func (inv Inventory) TotalValue() int {
	total := 0
	for d, count := range inv {
		total += int(d) * count
	}
	return total
}

// Clone returns an independent copy of the inventory.
func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	for d, count := range inv {
		out[d] = count
	}
	return out
}

// WithdrawalPlan is the set of notes to dispense for a single withdrawal:
// denomination to positive note count, summing exactly to the requested
// amount.
type WithdrawalPlan map[Denomination]int

// TotalValue sums face value times note count over the plan.
func (p WithdrawalPlan) TotalValue() int {
	total := 0
	for d, count := range p {
		total += int(d) * count
	}
	return total
}
