package models

import "errors"

// ErrInvalidAmount indicates user input failed a precondition: non-positive
// amount, wrong modulus, unknown denomination or negative note count. Always
// recoverable; callers should re-prompt.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInsufficientFunds indicates the machine cannot serve the request, either
// because aggregate cash is below the amount or because no combination of the
// available notes sums to it exactly.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrStorage indicates the persisted state could not be read or written. Load
// failures trigger a reset to defaults; save failures leave in-memory state
// ahead of disk and must never be swallowed.
var ErrStorage = errors.New("storage failure")
