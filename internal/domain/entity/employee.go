package entity

import "time"

// Employee represents one part-time contract subject together with its
// position in the approval workflow. Date fields are carried as
// "YYYY-MM-DD" strings; the empty string is the explicit unset marker.
type Employee struct {
	ID              string    `json:"id"`
	NIP             string    `json:"nip"`
	Name            string    `json:"name"`
	PlaceOfBirth    string    `json:"place_of_birth"`
	DateOfBirth     string    `json:"date_of_birth"`
	Education       string    `json:"education"`
	Address         string    `json:"address"`
	Position        string    `json:"position"`
	Unit            string    `json:"unit"`
	PlacementUnit   string    `json:"placement_unit"`
	AgreementNumber string    `json:"agreement_number"`
	SalaryAmount    string    `json:"salary_amount"`
	SalaryText      string    `json:"salary_text"`
	Status          string    `json:"status"`
	SPMTNumber      string    `json:"spmt_number"`
	SKNumber        string    `json:"sk_number"`
	SKDate          string    `json:"sk_date"`
	TMTDate         string    `json:"tmt_date"`
	SPMTDate        string    `json:"spmt_date"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Printable reports whether contract-type documents may be produced for the
// record. Printing is gated on final approval only.
func (e *Employee) Printable() bool {
	return e.Status == StatusApproved
}
