// Package report writes the speedup table to an XLSX workbook so timing runs
// can be archived and compared alongside the rendered chart.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/YimiaoHao/wator-project/src/speedup"
)

// SheetName is the single worksheet holding the speedup table.
const SheetName = "Speedup"

var header = []string{"Workers", "Elapsed (s)", "Speedup (x)", "Efficiency"}

// WriteWorkbook writes one row per measurement: worker count, elapsed
// seconds, speedup, and parallel efficiency. Measurements and points must be
// the matched output of speedup.ComputeSpeedups.
func WriteWorkbook(path string, ms []speedup.Measurement, pts []speedup.SpeedupPoint) error {
	if len(ms) == 0 || len(ms) != len(pts) {
		return fmt.Errorf("workbook input: %d measurements vs %d speedup points", len(ms), len(pts))
	}
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	for col, name := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, name); err != nil {
			return err
		}
	}
	for i, m := range ms {
		row := i + 2
		values := []interface{}{m.Workers, m.ElapsedSeconds, pts[i].Speedup, pts[i].Efficiency()}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return err
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
