package document

import (
	"strings"

	"github.com/andikurnia/siperjaka/internal/domain/entity"
	"github.com/andikurnia/siperjaka/internal/format"
)

// VerifierInput carries the verifier identity supplied at render time. It is
// deliberately not stored on the record.
type VerifierInput struct {
	Name string
	NIP  string
	Date string
}

var verificationTemplate = mustTemplate("verification", `PEMERINTAH KABUPATEN DEMAK
{{.OPDName}}
--------------------------------------------------------------------------------

                  LEMBAR VERIFIKASI DATA KEPEGAWAIAN
                       PPPK PARUH WAKTU TAHUN 2025

Telah dilakukan verifikasi dan validasi terhadap data pegawai tersebut di
bawah ini:

    Nama Lengkap           : {{.EmployeeName}}
    NIP / NI PPPK          : {{.NIP}}
    Jabatan                : {{.Position}}
    Unit Kerja             : {{.Unit}}
    Tempat, Tanggal Lahir  : {{.PlaceOfBirth}}, {{.DateOfBirth}}
    Pendidikan Terakhir    : {{.Education}}
    Gaji Pokok             : Rp. {{.SalaryAmount}}

Catatan Verifikasi:
    [v] Data Pegawai telah sesuai dengan dokumen fisik/digital yang
        dilampirkan.
    [v] Pegawai telah menyetujui draft Perjanjian Kerja.

    Pegawai Pemerintah dengan               Demak, {{.VerifyDate}}
    Perjanjian Kerja Paruh Waktu,           Verifikator Kepegawaian,



    {{.EmployeeName}}
    NI PPPK. {{.NIP}}                       {{.VerifierName}}
                                            NIP. {{.VerifierNIP}}
`)

type verificationData struct {
	OPDName      string
	EmployeeName string
	NIP          string
	Position     string
	Unit         string
	PlaceOfBirth string
	DateOfBirth  string
	Education    string
	SalaryAmount string
	VerifyDate   string
	VerifierName string
	VerifierNIP  string
}

// RenderVerification produces the verification sheet. The two confirmation
// checklist lines always render, regardless of input.
func RenderVerification(emp *entity.Employee, set *entity.Settings, verifier VerifierInput) string {
	return render(verificationTemplate, verificationData{
		OPDName:      strings.ToUpper(set.OPDName),
		EmployeeName: strings.ToUpper(emp.Name),
		NIP:          emp.NIP,
		Position:     emp.Position,
		Unit:         emp.Unit,
		PlaceOfBirth: emp.PlaceOfBirth,
		DateOfBirth:  format.LongDate(emp.DateOfBirth),
		Education:    emp.Education,
		SalaryAmount: orBlank(emp.SalaryAmount, blankNumber),
		VerifyDate:   format.LongDate(verifier.Date),
		VerifierName: strings.ToUpper(orBlank(verifier.Name, blankVerifier)),
		VerifierNIP:  orBlank(verifier.NIP, blankVerifier),
	})
}
