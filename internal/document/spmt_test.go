package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderSPMT_Substitutions(t *testing.T) {
	doc := RenderSPMT(testEmployee(), testSettings())

	assert.Contains(t, doc, "SURAT PERNYATAAN MELAKSANAKAN TUGAS")
	assert.Contains(t, doc, "Nomor : 821 / 821/001/2025 / 2025")
	assert.Contains(t, doc, "H. AHMAD SUGIARTO, S.T., M.T.")
	assert.Contains(t, doc, "Pembina Utama Muda (IV/c)")
	assert.Contains(t, doc, "Budi Santoso")
	assert.Contains(t, doc, "BUPATI DEMAK")
	assert.Contains(t, doc, "810/123/2025")
	assert.Contains(t, doc, "1 September 2025")

	// Clause 4.d is the fixed contract period, never derived from the record
	assert.Contains(t, doc, "1 Oktober 2025 sampai dengan 30 September 2026")

	assert.Contains(t, doc, "melaksanakan tugas sejak tanggal 2 Januari 2026")
	assert.Contains(t, doc, "pada Bagian Organisasi Sekretariat Daerah Kabupaten Demak")
	assert.Contains(t, doc, "a.n. Sekretaris Daerah")
	assert.Contains(t, doc, "Pembina Utama Muda\n")
	assert.Contains(t, doc, "NIP 19700101 199003 1 001")
}

func TestRenderSPMT_Deterministic(t *testing.T) {
	emp := testEmployee()
	set := testSettings()

	assert.Equal(t, RenderSPMT(emp, set), RenderSPMT(emp, set))
}

func TestRenderSPMT_UnsetCommencementDateUsesPlaceholder(t *testing.T) {
	emp := testEmployee()
	emp.SPMTDate = ""

	doc := RenderSPMT(emp, testSettings())

	assert.Contains(t, doc, "melaksanakan tugas sejak tanggal .......................")
}

func TestRenderSPMT_UnsetNumbersUsePlaceholders(t *testing.T) {
	emp := testEmployee()
	emp.SPMTNumber = ""
	emp.SKNumber = ""
	emp.PlacementUnit = ""

	doc := RenderSPMT(emp, testSettings())

	assert.Contains(t, doc, "Nomor : 821 / ......................... / 2025")
	assert.Contains(t, doc, "b. Nomor                   : .....................................")
	assert.Contains(t, doc, "pada ............................................. Sekretariat Daerah")
}

func TestRankWithoutGrade(t *testing.T) {
	tests := []struct {
		name     string
		rank     string
		expected string
	}{
		{"rank with grade", "Pembina Utama Muda (IV/c)", "Pembina Utama Muda"},
		{"rank without grade", "Penata", "Penata"},
		{"empty falls back", "", "Pembina ............"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rankWithoutGrade(tt.rank))
		})
	}
}

func TestDelegatedPosition(t *testing.T) {
	assert.Equal(t, "", delegatedPosition("Sekretaris Daerah"))
	assert.Equal(t, "Asisten Administrasi Umum", delegatedPosition("Asisten Administrasi Umum Sekretaris Daerah"))
}
