package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderContract_Substitutions(t *testing.T) {
	doc := RenderContract(testEmployee(), testSettings())

	assert.Contains(t, doc, "PERJANJIAN KERJA")
	assert.Contains(t, doc, "NOMOR : 810 / 001 / TAHUN 2025")

	// Signing date 2025-01-02 decomposed into the opening sentence
	assert.Contains(t, doc, "Pada hari ini, Kamis tanggal Dua bulan Januari tahun Dua Ribu Dua Puluh Lima (2-01-2025)")

	assert.Contains(t, doc, "H. AHMAD SUGIARTO, S.T., M.T.")
	assert.Contains(t, doc, "Jabatan  : Sekretaris Daerah")
	assert.Contains(t, doc, "BUDI SANTOSO")
	assert.Contains(t, doc, "198501012022011001")
	assert.Contains(t, doc, "PRANATA KOMPUTER AHLI PERTAMA")
	assert.Contains(t, doc, "1 Oktober 2025 s/d 30 September 2026")
	assert.Contains(t, doc, "0 tahun 0 bulan")
	assert.Contains(t, doc, "Rp. 2.500.000")
	assert.Contains(t, doc, "Dua Juta Lima Ratus Ribu Rupiah")
	assert.Contains(t, doc, "PIHAK KESATU")
	assert.Contains(t, doc, "PIHAK KEDUA")
}

func TestRenderContract_Deterministic(t *testing.T) {
	emp := testEmployee()
	set := testSettings()

	first := RenderContract(emp, set)
	second := RenderContract(emp, set)

	assert.Equal(t, first, second)
}

func TestRenderContract_UnsetFieldsUsePlaceholders(t *testing.T) {
	emp := testEmployee()
	emp.AgreementNumber = ""
	emp.SalaryAmount = ""
	emp.SalaryText = ""
	set := testSettings()
	set.SignatureDate = ""

	doc := RenderContract(emp, set)

	assert.Contains(t, doc, "NOMOR : 810 / ............ / TAHUN 2025")
	assert.Contains(t, doc, "Rp. ............")
	assert.Contains(t, doc, "Pada hari ini, ....................... tanggal")
}

func TestRenderContract_YearOutsideLookupFallsBack(t *testing.T) {
	set := testSettings()
	set.SignatureDate = "2030-06-15"

	doc := RenderContract(testEmployee(), set)

	assert.Contains(t, doc, "tahun 2030 (15-06-2030)")
}

func TestContractPDF(t *testing.T) {
	doc := RenderContract(testEmployee(), testSettings())

	pdf, err := ToPDF(doc)

	assert.NoError(t, err)
	assert.True(t, len(pdf) > 0)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
