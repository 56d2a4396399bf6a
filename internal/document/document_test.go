package document

import (
	"github.com/andikurnia/siperjaka/internal/domain/entity"
)

func testEmployee() *entity.Employee {
	return &entity.Employee{
		ID:              "1",
		NIP:             "198501012022011001",
		Name:            "Budi Santoso",
		PlaceOfBirth:    "Demak",
		DateOfBirth:     "1985-01-01",
		Education:       "S-1 Teknik Informatika",
		Address:         "Jl. Sultan Fatah No. 10, Demak",
		Position:        "Pranata Komputer Ahli Pertama",
		Unit:            "Sekretariat Daerah",
		PlacementUnit:   "Bagian Organisasi",
		AgreementNumber: "001",
		SalaryAmount:    "2.500.000",
		SalaryText:      "Dua Juta Lima Ratus Ribu Rupiah",
		Status:          entity.StatusApproved,
		SPMTNumber:      "821/001/2025",
		SKNumber:        "810/123/2025",
		SKDate:          "2025-09-01",
		TMTDate:         "2025-10-01",
		SPMTDate:        "2026-01-02",
	}
}

func testSettings() *entity.Settings {
	return entity.DefaultSettings()
}
