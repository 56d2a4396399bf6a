package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testVerifier() VerifierInput {
	return VerifierInput{
		Name: "Siti Rahayu, S.E.",
		NIP:  "198203052010012004",
		Date: "2025-11-20",
	}
}

func TestRenderVerification_Substitutions(t *testing.T) {
	doc := RenderVerification(testEmployee(), testSettings(), testVerifier())

	assert.Contains(t, doc, "LEMBAR VERIFIKASI DATA KEPEGAWAIAN")
	assert.Contains(t, doc, "SEKRETARIAT DAERAH")
	assert.Contains(t, doc, "BUDI SANTOSO")
	assert.Contains(t, doc, "198501012022011001")
	assert.Contains(t, doc, "Demak, 1 Januari 1985")
	assert.Contains(t, doc, "S-1 Teknik Informatika")
	assert.Contains(t, doc, "Rp. 2.500.000")
	assert.Contains(t, doc, "Demak, 20 November 2025")
	assert.Contains(t, doc, "SITI RAHAYU, S.E.")
	assert.Contains(t, doc, "NIP. 198203052010012004")
}

func TestRenderVerification_ChecklistAlwaysPresent(t *testing.T) {
	// Checklist lines render for any input, including a mostly empty record
	doc := RenderVerification(testEmployee(), testSettings(), VerifierInput{})

	assert.Equal(t, 2, strings.Count(doc, "[v]"))
	assert.Contains(t, doc, "Data Pegawai telah sesuai dengan dokumen fisik/digital")
	assert.Contains(t, doc, "Pegawai telah menyetujui draft Perjanjian Kerja.")
}

func TestRenderVerification_MissingVerifierUsesPlaceholders(t *testing.T) {
	doc := RenderVerification(testEmployee(), testSettings(), VerifierInput{})

	assert.Contains(t, doc, "..................................")
	assert.Contains(t, doc, "Demak, .......................")
}

func TestRenderVerification_Deterministic(t *testing.T) {
	emp := testEmployee()
	set := testSettings()
	verifier := testVerifier()

	assert.Equal(t,
		RenderVerification(emp, set, verifier),
		RenderVerification(emp, set, verifier))
}
