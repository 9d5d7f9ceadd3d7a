package vault

import "github.com/mamadbah2/cashpoint/internal/domain/models"

// breakdown finds a combination of available notes summing exactly to amount,
// using a depth-first backtracking search over the denominations ordered
// descending by face value. A pure greedy pass can miss feasible plans when
// note counts are constrained, so every level tries its candidate counts from
// the maximum usable down to zero and the first branch that completes wins.
// That ordering deliberately prefers plans spending as many of the largest
// available notes as possible, which keeps the dispensed note count low.
//
// Returns the plan and true, or nil and false when no combination exists.
func breakdown(amount int, denoms models.DenominationSet, available models.Inventory) (models.WithdrawalPlan, bool) {
	var solve func(target, index int) (models.WithdrawalPlan, bool)
	solve = func(target, index int) (models.WithdrawalPlan, bool) {
		if target == 0 {
			return models.WithdrawalPlan{}, true
		}
		if index == len(denoms) {
			return nil, false
		}

		denom := denoms[index]
		maxUse := target / int(denom)
		if available[denom] < maxUse {
			maxUse = available[denom]
		}

		for count := maxUse; count >= 0; count-- {
			remainder := target - count*int(denom)
			plan, ok := solve(remainder, index+1)
			if ok {
				if count > 0 {
					plan[denom] = count
				}
				return plan, true
			}
		}

		return nil, false
	}

	return solve(amount, 0)
}
