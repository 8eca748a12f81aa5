package report

import (
	"fmt"

	"github.com/ansel1/merry"
	"github.com/xuri/excelize/v2"

	"github.com/alexchoi94/tscheck/internal/check"
)

// WriteXLSX exports the check table and the named scalar fields of the
// result records to a spreadsheet.
func WriteXLSX(path string, rep *check.DesignReport) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Checks"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Limit state", "Demand", "Capacity", "Ratio", "Verdict"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for row, c := range rep.Checks {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row+2), c.Label())
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row+2), c.Demand)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row+2), c.Capacity)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row+2), c.Ratio)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row+2), c.Verdict.String())
	}

	const detail = "Results"
	if _, err := f.NewSheet(detail); err != nil {
		return merry.Wrap(err)
	}
	row := 1
	writeFields := func(title string, fields map[string]float64, keys []string) {
		f.SetCellValue(detail, fmt.Sprintf("A%d", row), title)
		row++
		for _, k := range keys {
			f.SetCellValue(detail, fmt.Sprintf("A%d", row), k)
			f.SetCellValue(detail, fmt.Sprintf("B%d", row), fields[k])
			row++
		}
		row++
	}

	writeFields("Y girder demand", rep.YDemand.Fields(), []string{"M_A", "M_B", "M_F", "R_A", "R_B"})
	writeFields("X girder demand", rep.XDemand.Fields(), []string{"M_A", "M_B", "M_F", "R_A", "R_B"})
	writeFields("Section properties", rep.Capacity.Props.Fields(),
		[]string{"A_angle", "A_f", "c", "c_inner", "d", "Z_x", "t_w", "A_w"})
	writeFields("Capacity", rep.Capacity.Fields(), []string{"M_n", "V_n"})

	if err := f.SaveAs(path); err != nil {
		return merry.Wrap(err)
	}
	log.Info("spreadsheet written", "path", path)
	return nil
}
