package workbook

import (
	"fmt"
	"strconv"
	"strings"

	"oilevels/levels"

	"github.com/xuri/excelize/v2"
)

// Raw column headers as they appear in the exported option-chain sheets.
// The call side comes first; the put side repeats the same headers, which
// the normalizer disambiguates with a ".1" suffix.
const (
	colStrike  = "Strike"
	colMoney   = "Chg in OI Value"
	colVWAP    = "VWAP"
	colLTP     = "LTP (Chg %)"
	headerMark = "chg in oi value"
)

// ParseDaySheet turns one day sheet into typed records. The header row is
// located by scanning the first scanDepth rows for a cell equal to
// "strike" or "chg in oi value" (case-insensitive, trimmed). Rows without
// a numeric strike are dropped; duplicate strikes keep the first
// occurrence; unreadable cells in other columns count as zero.
func ParseDaySheet(f *excelize.File, sheet string, scanDepth int) ([]levels.DailyRecord, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if scanDepth <= 0 {
		scanDepth = 10
	}

	headerIdx := findHeaderRow(rows, scanDepth)
	if headerIdx < 0 {
		return nil, fmt.Errorf("no header row found in sheet %q", sheet)
	}

	cols := indexColumns(rows[headerIdx])

	strikeCol, ok := cols[colStrike]
	if !ok {
		return nil, fmt.Errorf("sheet %q is missing required column %q", sheet, colStrike)
	}
	moneyCol, ok := cols[colMoney]
	if !ok {
		return nil, fmt.Errorf("sheet %q is missing required column %q", sheet, colMoney)
	}

	// Put-side columns are the ".1" duplicates; any of these (and the call
	// price columns) may be absent and then contribute zero.
	vwapCol := columnOrMissing(cols, colVWAP)
	ltpCol := columnOrMissing(cols, colLTP)
	putMoneyCol := columnOrMissing(cols, colMoney+".1")
	putVWAPCol := columnOrMissing(cols, colVWAP+".1")
	putLTPCol := columnOrMissing(cols, colLTP+".1")

	var records []levels.DailyRecord
	seen := make(map[float64]bool)
	for _, row := range rows[headerIdx+1:] {
		strike, ok := cellFloat(row, strikeCol)
		if !ok {
			continue
		}
		if seen[strike] {
			continue
		}
		seen[strike] = true

		rec := levels.DailyRecord{Strike: strike}
		rec.CallMoney, _ = cellFloat(row, moneyCol)
		rec.CallVWAP, _ = cellFloat(row, vwapCol)
		rec.CallLTP, _ = cellFloat(row, ltpCol)
		rec.PutMoney, _ = cellFloat(row, putMoneyCol)
		rec.PutVWAP, _ = cellFloat(row, putVWAPCol)
		rec.PutLTP, _ = cellFloat(row, putLTPCol)
		records = append(records, rec)
	}
	return records, nil
}

func findHeaderRow(rows [][]string, scanDepth int) int {
	for i, row := range rows {
		if i >= scanDepth {
			break
		}
		for _, cell := range row {
			v := strings.ToLower(strings.TrimSpace(cell))
			if v == "strike" || v == headerMark {
				return i
			}
		}
	}
	return -1
}

// indexColumns maps trimmed header names to column positions. A repeated
// header name gets a numeric suffix (".1", ".2", ...), matching how the
// put-side duplicates are addressed.
func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, cell := range header {
		name := strings.TrimSpace(cell)
		if name == "" {
			continue
		}
		if _, exists := cols[name]; exists {
			for n := 1; ; n++ {
				suffixed := fmt.Sprintf("%s.%d", name, n)
				if _, taken := cols[suffixed]; !taken {
					cols[suffixed] = i
					break
				}
			}
			continue
		}
		cols[name] = i
	}
	return cols
}

func columnOrMissing(cols map[string]int, name string) int {
	if col, ok := cols[name]; ok {
		return col
	}
	return -1
}

// cellFloat coerces one cell to a number. Lookup misses and unparseable
// values report !ok so the caller can fall back to zero or drop the row.
// col < 0 means the column was absent from the sheet entirely.
func cellFloat(row []string, col int) (float64, bool) {
	if col < 0 || col >= len(row) {
		return 0, false
	}
	v := strings.TrimSpace(row[col])
	if v == "" {
		return 0, false
	}
	// Exported sheets often carry display formatting on numbers.
	v = strings.ReplaceAll(v, ",", "")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
