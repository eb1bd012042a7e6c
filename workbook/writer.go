package workbook

import (
	"fmt"
	"strconv"

	"oilevels/levels"

	"github.com/xuri/excelize/v2"
)

// RenderOptions controls the purely visual treatment of a rendered grid.
type RenderOptions struct {
	// BoxDataBlocks draws a thin border grid around every contiguous run of
	// data columns (header row included) and strips borders from spacers.
	BoxDataBlocks bool
	// HideIndex hides the leading index column after rendering.
	HideIndex bool
}

const (
	headerRows   = 2
	firstDataRow = headerRows + 1
	widthPadding = 2
)

// RenderGrid writes a composite grid into the named sheet, replacing any
// existing sheet of that name. Layout: day labels on row 1, metric labels
// on row 2, data from row 3; column A is the index. No business values are
// computed here.
func RenderGrid(f *excelize.File, sheet string, grid levels.Grid, opts RenderOptions) error {
	if err := f.DeleteSheet(sheet); err != nil {
		return fmt.Errorf("failed to replace sheet %q: %w", sheet, err)
	}
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", sheet, err)
	}

	if err := writeHeaders(f, sheet, grid); err != nil {
		return err
	}
	if err := writeRows(f, sheet, grid); err != nil {
		return err
	}
	if opts.BoxDataBlocks {
		if err := styleBlocks(f, sheet, grid); err != nil {
			return err
		}
	}
	if err := fitColumnWidths(f, sheet, grid, opts.HideIndex); err != nil {
		return err
	}
	if opts.HideIndex {
		if err := f.SetColVisible(sheet, "A", false); err != nil {
			return fmt.Errorf("failed to hide index column: %w", err)
		}
	}
	return nil
}

func writeHeaders(f *excelize.File, sheet string, grid levels.Grid) error {
	if grid.IndexLabel != "" {
		if err := setCell(f, sheet, 1, headerRows, grid.IndexLabel); err != nil {
			return err
		}
	}
	for i, col := range grid.Columns {
		if col.Kind == levels.ColumnSpacer {
			continue
		}
		excelCol := i + 2
		if err := setCell(f, sheet, excelCol, 1, col.Day); err != nil {
			return err
		}
		if err := setCell(f, sheet, excelCol, 2, col.Label); err != nil {
			return err
		}
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, grid levels.Grid) error {
	for r, row := range grid.Rows {
		excelRow := firstDataRow + r
		if r < len(grid.Index) && grid.Index[r] != "" {
			// Strike indexes stay numeric in the sheet.
			var value interface{} = grid.Index[r]
			if f64, err := strconv.ParseFloat(grid.Index[r], 64); err == nil {
				value = f64
			}
			if err := setCell(f, sheet, 1, excelRow, value); err != nil {
				return err
			}
		}
		for c, cell := range row {
			if cell == nil {
				continue
			}
			if err := setCell(f, sheet, c+2, excelRow, *cell); err != nil {
				return err
			}
		}
	}
	return nil
}

// styleBlocks boxes every contiguous run of data columns from the metric
// header row down to the last data row and explicitly clears borders on
// spacer columns, including their header cells.
func styleBlocks(f *excelize.File, sheet string, grid levels.Grid) error {
	thin, err := f.NewStyle(&excelize.Style{
		Border: []excelize.Border{
			{Type: "left", Style: 1, Color: "000000"},
			{Type: "right", Style: 1, Color: "000000"},
			{Type: "top", Style: 1, Color: "000000"},
			{Type: "bottom", Style: 1, Color: "000000"},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create border style: %w", err)
	}
	plain, err := f.NewStyle(&excelize.Style{})
	if err != nil {
		return fmt.Errorf("failed to create plain style: %w", err)
	}

	lastRow := headerRows + len(grid.Rows)
	runStart := -1
	for i := 0; i <= len(grid.Columns); i++ {
		isData := i < len(grid.Columns) && grid.Columns[i].Kind == levels.ColumnData
		if isData {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		if runStart >= 0 {
			if err := styleRange(f, sheet, runStart+2, i+1, headerRows, lastRow, thin); err != nil {
				return err
			}
			runStart = -1
		}
		if i < len(grid.Columns) {
			if err := styleRange(f, sheet, i+2, i+2, 1, lastRow, plain); err != nil {
				return err
			}
		}
	}
	return nil
}

func styleRange(f *excelize.File, sheet string, colFrom, colTo, rowFrom, rowTo, style int) error {
	topLeft, err := excelize.CoordinatesToCellName(colFrom, rowFrom)
	if err != nil {
		return err
	}
	bottomRight, err := excelize.CoordinatesToCellName(colTo, rowTo)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, topLeft, bottomRight, style); err != nil {
		return fmt.Errorf("failed to style %s:%s: %w", topLeft, bottomRight, err)
	}
	return nil
}

// fitColumnWidths sets each visible column's width to its longest rendered
// value plus fixed padding.
func fitColumnWidths(f *excelize.File, sheet string, grid levels.Grid, skipIndex bool) error {
	if !skipIndex {
		width := len(grid.IndexLabel)
		for _, v := range grid.Index {
			if len(v) > width {
				width = len(v)
			}
		}
		if err := setWidth(f, sheet, 1, width); err != nil {
			return err
		}
	}

	for i, col := range grid.Columns {
		width := len(col.Day)
		if len(col.Label) > width {
			width = len(col.Label)
		}
		for _, row := range grid.Rows {
			if i >= len(row) || row[i] == nil {
				continue
			}
			if l := len(renderValue(*row[i])); l > width {
				width = l
			}
		}
		if err := setWidth(f, sheet, i+2, width); err != nil {
			return err
		}
	}
	return nil
}

func setWidth(f *excelize.File, sheet string, col, contentLen int) error {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, name, name, float64(contentLen+widthPadding)); err != nil {
		return fmt.Errorf("failed to set width of column %s: %w", name, err)
	}
	return nil
}

func renderValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func setCell(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("failed to write cell %s: %w", cell, err)
	}
	return nil
}
