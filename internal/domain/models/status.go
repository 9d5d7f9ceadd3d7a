package models

// DenominationStatus is one row of a status report.
type DenominationStatus struct {
	Denomination Denomination `json:"denomination"`
	Count        int          `json:"count"`
	Value        int          `json:"value"`
}

// StatusReport summarizes the vault contents, one row per denomination
// ordered descending by face value, plus the grand total.
type StatusReport struct {
	Rows  []DenominationStatus `json:"rows"`
	Total int                  `json:"total"`
}
