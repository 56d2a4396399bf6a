package document

import (
	"strings"

	"github.com/andikurnia/siperjaka/internal/domain/entity"
	"github.com/andikurnia/siperjaka/internal/format"
)

var spmtTemplate = mustTemplate("spmt", `                       PEMERINTAH KABUPATEN DEMAK
                           SEKRETARIAT DAERAH
           Jalan Kyai Singkil Nomor 7, Demak, Jawa Tengah 59511
            Telepon (0291) 685877, Faksimile (0291) 685625
        Laman setda.demakkab.go.id, Pos-el setda@demakkab.go.id
================================================================================

                 SURAT PERNYATAAN MELAKSANAKAN TUGAS
                    Nomor : 821 / {{.SPMTNumber}} / 2025

Yang bertanda tangan dibawah ini :
    1. Nama                      : {{.OfficialName}}
    2. NIP                       : {{.OfficialNIP}}
    3. Pangkat / Golongan Ruang  : {{.OfficialRank}}
    4. Jabatan                   : {{.OfficialPosition}}

Dengan ini menyatakan bahwa :
    1. Nama                      : {{.EmployeeName}}
    2. NI PPPK Paruh Waktu       : {{.NIP}}
    3. Jabatan                   : {{.Position}}
    4. Surat Pengangkatan sebagai Pegawai Pemerintah dengan Perjanjian Kerja
       Paruh Waktu (PPPK Paruh Waktu) :
       a. Pejabat yang mengangkat : {{.SKOfficial}}
       b. Nomor                   : {{.SKNumber}}
       c. Tanggal                 : {{.SKDate}}
       d. Tanggal mulai berlakunya pengangkatan sebagai Pegawai Pemerintah
          dengan Perjanjian Kerja Paruh Waktu
                                  : 1 Oktober 2025 sampai dengan 30 September 2026

        telah secara nyata melaksanakan tugas sejak tanggal {{.SPMTDate}}
pada {{.PlacementUnit}} Sekretariat Daerah Kabupaten Demak.

        Demikian pernyataan ini dibuat dengan sesungguhnya untuk dapat
digunakan sebagaimana mestinya.

                                        Ditetapkan di Demak
                                        Pada Tanggal 31 Desember 2025

                                        Yang membuat pernyataan,
                                    a.n. Sekretaris Daerah
                                        {{.SigningPosition}}



                                        {{.OfficialName}}
                                        {{.OfficialRankPlain}}
                                        NIP {{.OfficialNIP}}
`)

type spmtData struct {
	SPMTNumber        string
	OfficialName      string
	OfficialNIP       string
	OfficialRank      string
	OfficialRankPlain string
	OfficialPosition  string
	SigningPosition   string
	EmployeeName      string
	NIP               string
	Position          string
	SKOfficial        string
	SKNumber          string
	SKDate            string
	SPMTDate          string
	PlacementUnit     string
}

// RenderSPMT produces the task-commencement statement. The service window in
// clause 4.d is the fixed contract-period literal, not derived from the
// record; only the actual commencement date comes from it.
func RenderSPMT(emp *entity.Employee, set *entity.Settings) string {
	return render(spmtTemplate, spmtData{
		SPMTNumber:        orBlank(emp.SPMTNumber, blankSPMT),
		OfficialName:      set.OfficialName,
		OfficialNIP:       set.OfficialNIP,
		OfficialRank:      orBlank(set.OfficialRank, blankSK),
		OfficialRankPlain: rankWithoutGrade(set.OfficialRank),
		OfficialPosition:  set.OfficialPosition,
		SigningPosition:   delegatedPosition(set.OfficialPosition),
		EmployeeName:      emp.Name,
		NIP:               emp.NIP,
		Position:          emp.Position,
		SKOfficial:        strings.ToUpper(orBlank(set.SKOfficial, "BUPATI DEMAK")),
		SKNumber:          orBlank(emp.SKNumber, blankSK),
		SKDate:            format.LongDate(emp.SKDate),
		SPMTDate:          format.LongDate(emp.SPMTDate),
		PlacementUnit:     orBlank(emp.PlacementUnit, blankPlacement),
	})
}

// rankWithoutGrade keeps the rank name and drops the parenthesised grade,
// e.g. "Pembina Utama Muda (IV/c)" becomes "Pembina Utama Muda".
func rankWithoutGrade(rank string) string {
	if rank == "" {
		return "Pembina ............"
	}
	name, _, _ := strings.Cut(rank, "(")
	return strings.TrimSpace(name)
}

// delegatedPosition strips the delegating office from the official's
// position so the signature block reads "a.n. Sekretaris Daerah" followed by
// the specific delegated title.
func delegatedPosition(position string) string {
	p := strings.ReplaceAll(position, "Sekretaris Daerah", "")
	p = strings.ReplaceAll(p, "Sekda", "")
	return strings.TrimSpace(p)
}
