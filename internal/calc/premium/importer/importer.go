package importer

import (
	"Loudspeaker/internal/calc/premium/batch"
	"Loudspeaker/internal/calc/reactive"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

var ErrEmptySheet = errors.New("importer: sheet has no driver rows")

// ReadDrivers reads the first sheet of a workbook. Row 1 holds parameter
// names (mms, kms, bl, ...); a "name" column labels each driver. Cells
// are kept as typed so the evaluators can report bad values per field.
func ReadDrivers(r io.Reader) ([]batch.Driver, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrEmptySheet
	}
	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}

	var drivers []batch.Driver
	for i, row := range rows[1:] {
		d := batch.Driver{Fields: reactive.Fields{}}
		for j, cell := range row {
			if j >= len(header) || header[j] == "" {
				continue
			}
			if strings.EqualFold(header[j], "name") {
				d.Name = cell
				continue
			}
			d.Fields[header[j]] = cell
		}
		if len(d.Fields) == 0 {
			continue
		}
		if d.Name == "" {
			d.Name = fmt.Sprintf("row %d", i+2)
		}
		drivers = append(drivers, d)
	}
	if len(drivers) == 0 {
		return nil, ErrEmptySheet
	}
	return drivers, nil
}
