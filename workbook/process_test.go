package workbook

import (
	"testing"

	"oilevels/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenarioWorkbook is the two-day forced-LTP series: strike 25000 has a
// zero call VWAP on day one, so LTP prices both days.
func scenarioWorkbook(t *testing.T) []byte {
	day1 := [][]interface{}{
		chainHeader,
		chainRow(25000, 50.0, 0.0, 10.0, 30.0, 5.0, 4.0),
		chainRow(25100, 20.0, 6.0, 5.5, 80.0, 7.0, 6.5),
	}
	day2 := [][]interface{}{
		chainHeader,
		chainRow(25000, -20.0, 12.0, 11.0, 10.0, 5.5, 4.5),
		chainRow(25100, 40.0, 6.5, 6.0, -30.0, 7.5, 7.0),
	}
	return buildWorkbook(t, []string{"tue6", "wed6"}, map[string][][]interface{}{
		"tue6": day1,
		"wed6": day2,
	})
}

func TestProcessEndToEnd(t *testing.T) {
	output, err := Process(scenarioWorkbook(t))
	require.NoError(t, err)

	f := openOutput(t, output)

	t.Run("input sheets survive and report sheets exist", func(t *testing.T) {
		sheets := f.GetSheetList()
		assert.Contains(t, sheets, "tue6")
		assert.Contains(t, sheets, "wed6")
		assert.Contains(t, sheets, "Total")
		assert.Contains(t, sheets, "Max")
	})

	t.Run("total sheet headers", func(t *testing.T) {
		assert.Equal(t, "Strike", cellValue(t, f, "Total", "A2"))
		assert.Equal(t, "tue6", cellValue(t, f, "Total", "B1"))
		assert.Equal(t, "CE BEP", cellValue(t, f, "Total", "B2"))
		assert.Equal(t, "CE Money", cellValue(t, f, "Total", "C2"))
		assert.Equal(t, "PE Money", cellValue(t, f, "Total", "D2"))
		assert.Equal(t, "PE BEP", cellValue(t, f, "Total", "E2"))
		// Column F is the spacer, day 2 starts at G.
		assert.Empty(t, cellValue(t, f, "Total", "F1"))
		assert.Empty(t, cellValue(t, f, "Total", "F2"))
		assert.Equal(t, "wed6", cellValue(t, f, "Total", "G1"))
	})

	t.Run("forced LTP cumulative math lands in the cells", func(t *testing.T) {
		// Strike 25000 row (universe ascending puts it first, row 3).
		assert.Equal(t, "25000", cellValue(t, f, "Total", "A3"))
		// Day 1: BEP 25010, money 50.
		assert.Equal(t, "25010", cellValue(t, f, "Total", "B3"))
		assert.Equal(t, "50", cellValue(t, f, "Total", "C3"))
		// Day 2: avg ref (10+11)/2 = 10.5, money 50-20 = 30.
		assert.Equal(t, "25010.5", cellValue(t, f, "Total", "G3"))
		assert.Equal(t, "30", cellValue(t, f, "Total", "H3"))
	})

	t.Run("max sheet ranks by cumulative money", func(t *testing.T) {
		assert.Equal(t, "CE Strike", cellValue(t, f, "Max", "B2"))
		assert.Equal(t, "PE Strike", cellValue(t, f, "Max", "G2"))
		// Day 1 call side: 25000 (50) over 25100 (20); display order is
		// strike descending so 25100 is row 3 and 25000 row 4.
		assert.Equal(t, "25100", cellValue(t, f, "Max", "B3"))
		assert.Equal(t, "25000", cellValue(t, f, "Max", "B4"))
		// Totals row: 50+20.
		assert.Equal(t, "70", cellValue(t, f, "Max", "C8"))
	})

	t.Run("max index column is hidden", func(t *testing.T) {
		visible, err := f.GetColVisible("Max", "A")
		require.NoError(t, err)
		assert.False(t, visible)
	})
}

func TestProcessIsRerunSafe(t *testing.T) {
	first, err := Process(scenarioWorkbook(t))
	require.NoError(t, err)

	// Processing the processed file must ignore Total/Max and produce the
	// same report values again.
	second, err := Process(first)
	require.NoError(t, err)

	f1 := openOutput(t, first)
	f2 := openOutput(t, second)
	assert.Equal(t, cellValue(t, f1, "Total", "H3"), cellValue(t, f2, "Total", "H3"))
	assert.Equal(t, cellValue(t, f1, "Max", "C8"), cellValue(t, f2, "Max", "C8"))
}

func TestProcessFailures(t *testing.T) {
	t.Run("corrupt workbook aborts with no output", func(t *testing.T) {
		output, err := Process([]byte("not a workbook"))
		require.Error(t, err)
		assert.Nil(t, output)
	})

	t.Run("no day sheets aborts with ErrNoDayData", func(t *testing.T) {
		data := buildWorkbook(t, []string{"summary"}, nil)
		output, err := Process(data)
		require.ErrorIs(t, err, ErrNoDayData)
		assert.Nil(t, output)
	})

	t.Run("an unparseable sheet is skipped, not fatal", func(t *testing.T) {
		day := [][]interface{}{
			chainHeader,
			chainRow(25000, 10.0, 2.0, 1.5, 5.0, 1.0, 0.5),
		}
		data := buildWorkbook(t, []string{"tue6", "wed6"}, map[string][][]interface{}{
			"tue6": day,
			"wed6": {{"nothing resembling a header"}},
		})

		output, err := Process(data)
		require.NoError(t, err)

		f := openOutput(t, output)
		// Only tue6 contributed a day block: no spacer, exactly 4 columns.
		assert.Equal(t, "tue6", cellValue(t, f, "Total", "B1"))
		assert.Empty(t, cellValue(t, f, "Total", "F1"))
		assert.Empty(t, cellValue(t, f, "Total", "F2"))
	})
}

func TestProcessorConfig(t *testing.T) {
	cfg := config.LevelsConfig{
		TopN:            3,
		TotalSheetName:  "Cumulative",
		MaxSheetName:    "Ranked",
		HeaderScanDepth: 10,
	}
	output, err := NewProcessor(cfg).Process(scenarioWorkbook(t))
	require.NoError(t, err)

	f := openOutput(t, output)
	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Cumulative")
	assert.Contains(t, sheets, "Ranked")
	assert.NotContains(t, sheets, "Total")
	// Three ranked rows plus totals: totals land on row 6.
	assert.Equal(t, "70", cellValue(t, f, "Ranked", "C6"))
}
