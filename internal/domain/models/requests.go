package models

import "time"

// WithdrawalRequest is the body of a withdrawal call on the HTTP surface.
// Amount validation is owned by the vault service, not the binding layer, so
// rejected values produce the same error kinds as the console shell.
type WithdrawalRequest struct {
	Amount int `json:"amount"`
}

// WithdrawalResponse reports the dispensed notes, keyed by face value.
type WithdrawalResponse struct {
	Amount int            `json:"amount"`
	Notes  map[string]int `json:"notes"`
}

// AddCashRequest is the body of an admin cash load.
type AddCashRequest struct {
	Denomination int `json:"denomination"`
	Count        int `json:"count"`
}

// ReserveAlert is the payload posted to the operator webhook when total
// reserves fall below the configured threshold.
type ReserveAlert struct {
	TotalValue int            `json:"total_value"`
	Threshold  int            `json:"threshold"`
	Breakdown  map[string]int `json:"breakdown"`
	OccurredAt time.Time      `json:"occurred_at"`
}
