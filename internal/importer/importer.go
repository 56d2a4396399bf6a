package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/andikurnia/siperjaka/internal/application/service"
)

// columnFields maps recognized header captions to row field setters. Headers
// are matched case-insensitively after trimming.
var columnFields = map[string]func(*service.BulkRow, string){
	"nip":              func(r *service.BulkRow, v string) { r.NIP = v },
	"nama":             func(r *service.BulkRow, v string) { r.Name = v },
	"tempat lahir":     func(r *service.BulkRow, v string) { r.PlaceOfBirth = v },
	"tanggal lahir":    func(r *service.BulkRow, v string) { r.DateOfBirth = v },
	"pendidikan":       func(r *service.BulkRow, v string) { r.Education = v },
	"alamat":           func(r *service.BulkRow, v string) { r.Address = v },
	"jabatan":          func(r *service.BulkRow, v string) { r.Position = v },
	"unit kerja":       func(r *service.BulkRow, v string) { r.Unit = v },
	"unit penempatan":  func(r *service.BulkRow, v string) { r.PlacementUnit = v },
	"nomor perjanjian": func(r *service.BulkRow, v string) { r.AgreementNumber = v },
	"gaji":             func(r *service.BulkRow, v string) { r.SalaryAmount = v },
}

// ParseWorkbook reads an xlsx workbook and turns the first sheet into bulk
// rows. The first row is the header; unrecognized columns are ignored so the
// sheet may carry extra bookkeeping columns.
func ParseWorkbook(r io.Reader) ([]service.BulkRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheets[0])
	}

	setters := make(map[int]func(*service.BulkRow, string))
	for i, caption := range rows[0] {
		if set, ok := columnFields[strings.ToLower(strings.TrimSpace(caption))]; ok {
			setters[i] = set
		}
	}
	if len(setters) == 0 {
		return nil, fmt.Errorf("sheet %q has no recognized columns", sheets[0])
	}

	out := make([]service.BulkRow, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		var row service.BulkRow
		for i, cell := range cells {
			if set, ok := setters[i]; ok {
				set(&row, strings.TrimSpace(cell))
			}
		}
		out = append(out, row)
	}
	return out, nil
}
