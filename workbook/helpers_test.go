package workbook

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// chainHeader mirrors the exported option-chain layout: call columns first,
// then the strike, then the put-side duplicates.
var chainHeader = []interface{}{
	"Chg in OI Value", "VWAP", "LTP (Chg %)",
	"Strike",
	"Chg in OI Value", "VWAP", "LTP (Chg %)",
}

// chainRow orders one record's values to match chainHeader.
func chainRow(strike, ceMoney, ceVWAP, ceLTP, peMoney, peVWAP, peLTP interface{}) []interface{} {
	return []interface{}{ceMoney, ceVWAP, ceLTP, strike, peMoney, peVWAP, peLTP}
}

// buildWorkbook creates an in-memory workbook with the given sheets, in
// order. Each sheet's rows start at A1.
func buildWorkbook(t *testing.T, order []string, sheets map[string][][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for _, name := range order {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
		for r, row := range sheets[name] {
			for c, value := range row {
				if value == nil {
					continue
				}
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				require.NoError(t, err)
				require.NoError(t, f.SetCellValue(name, cell, value))
			}
		}
	}
	require.NoError(t, f.DeleteSheet("Sheet1"))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func openOutput(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func cellValue(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, cell)
	require.NoError(t, err)
	return v
}
