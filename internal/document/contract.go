package document

import (
	"strings"

	"github.com/andikurnia/siperjaka/internal/domain/entity"
	"github.com/andikurnia/siperjaka/internal/format"
)

// The contract's legal prose is fixed; only the named slots vary.
var contractTemplate = mustTemplate("contract", `                                PERJANJIAN KERJA
                    NOMOR : 810 / {{.AgreementNumber}} / TAHUN 2025

Pada hari ini, {{.Weekday}} tanggal {{.DayWords}} bulan {{.MonthName}} tahun {{.YearWords}} ({{.NumericDate}}) yang bertanda tangan di bawah ini :

I.  Nama     : {{.OfficialName}}
    Jabatan  : {{.OfficialPosition}}

    dalam hal ini bertindak untuk dan atas nama Bupati Demak, berdasarkan
    Surat Keputusan Bupati Demak Nomor 800/ 354 Tahun 2025 tanggal
    3 Desember 2025 tentang Penunjukan Pejabat Yang Diberi Kuasa Untuk
    Penandatanganan Perjanjian Kerja Pegawai Pemerintah Dengan Perjanjian
    Kerja Paruh Waktu untuk selanjutnya disebut PIHAK KESATU.

II. Nama                : {{.EmployeeName}}
    NI PPPK Paruh Waktu : {{.NIP}}
    Unit Kerja          : {{.Unit}}

    dalam hal ini bertindak dan atas nama diri sendiri, untuk selanjutnya
    disebut PIHAK KEDUA.

                                     Pasal 1
              MASA PERJANJIAN KERJA, JABATAN, DAN UNIT KERJA

PIHAK KESATU menerima dan mempekerjakan PIHAK KEDUA sebagai Pegawai
Pemerintah dengan Perjanjian Kerja Paruh Waktu (PPPK Paruh Waktu) dengan
ketentuan sebagai berikut:

    a. Masa Perjanjian Kerja   : 1 Oktober 2025 s/d 30 September 2026
    b. Jabatan                 : {{.Position}}
    c. Masa Kerja sebelumnya   : 0 tahun 0 bulan
    d. Unit Kerja              : {{.UnitUpper}}

                                     Pasal 2
                                      GAJI

PIHAK KEDUA berhak menerima gaji sebesar Rp. {{.SalaryAmount}}
({{.SalaryText}}) setiap bulan sesuai dengan ketentuan peraturan
perundang-undangan.

        PIHAK KEDUA                             PIHAK KESATU
                                                {{.OfficialPositionUpper}}



        {{.EmployeeName}}
        NI PPPK. {{.NIP}}                       {{.OfficialName}}
                                                NIP. {{.OfficialNIP}}
`)

type contractData struct {
	AgreementNumber       string
	Weekday               string
	DayWords              string
	MonthName             string
	YearWords             string
	NumericDate           string
	OfficialName          string
	OfficialNIP           string
	OfficialPosition      string
	OfficialPositionUpper string
	EmployeeName          string
	NIP                   string
	Unit                  string
	UnitUpper             string
	Position              string
	SalaryAmount          string
	SalaryText            string
}

// RenderContract produces the employment contract for the record. The
// signing date comes from the organization settings, decomposed into
// weekday, spelled-out day, month name, spelled-out year and numeric form.
func RenderContract(emp *entity.Employee, set *entity.Settings) string {
	return render(contractTemplate, contractData{
		AgreementNumber:       orBlank(emp.AgreementNumber, blankNumber),
		Weekday:               format.WeekdayName(set.SignatureDate),
		DayWords:              format.DayWords(set.SignatureDate),
		MonthName:             format.MonthName(set.SignatureDate),
		YearWords:             format.YearWords(set.SignatureDate),
		NumericDate:           format.NumericDate(set.SignatureDate),
		OfficialName:          set.OfficialName,
		OfficialNIP:           set.OfficialNIP,
		OfficialPosition:      set.OfficialPosition,
		OfficialPositionUpper: strings.ToUpper(set.OfficialPosition),
		EmployeeName:          strings.ToUpper(emp.Name),
		NIP:                   emp.NIP,
		Unit:                  emp.Unit,
		UnitUpper:             strings.ToUpper(emp.Unit),
		Position:              strings.ToUpper(emp.Position),
		SalaryAmount:          orBlank(emp.SalaryAmount, blankNumber),
		SalaryText:            orBlank(emp.SalaryText, format.PlaceholderLong),
	})
}
