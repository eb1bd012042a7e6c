package workbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDaySheet(t *testing.T) {
	rows := [][]interface{}{
		{"NIFTY option chain"}, // title row above the header
		chainHeader,
		chainRow(25000, 50.5, 10.0, 9.5, 40.0, 8.0, 7.5),
		chainRow(25100, -20.0, 0.0, 11.0, 15.0, 0.0, 6.0),
	}
	data := buildWorkbook(t, []string{"tue6"}, map[string][][]interface{}{"tue6": rows})
	f := openOutput(t, data)

	records, err := ParseDaySheet(f, "tue6", 10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	t.Run("call and put sides map through the duplicate headers", func(t *testing.T) {
		assert.Equal(t, 25000.0, records[0].Strike)
		assert.Equal(t, 50.5, records[0].CallMoney)
		assert.Equal(t, 10.0, records[0].CallVWAP)
		assert.Equal(t, 9.5, records[0].CallLTP)
		assert.Equal(t, 40.0, records[0].PutMoney)
		assert.Equal(t, 8.0, records[0].PutVWAP)
		assert.Equal(t, 7.5, records[0].PutLTP)
	})

	t.Run("negative and zero values survive coercion", func(t *testing.T) {
		assert.Equal(t, -20.0, records[1].CallMoney)
		assert.Equal(t, 0.0, records[1].CallVWAP)
	})
}

func TestParseDaySheetDirtyRows(t *testing.T) {
	rows := [][]interface{}{
		chainHeader,
		chainRow("not a strike", 1.0, 1.0, 1.0, 1.0, 1.0, 1.0),
		chainRow(25000, "bad", 10.0, 9.5, nil, 8.0, 7.5),
		chainRow(25000, 99.0, 99.0, 99.0, 99.0, 99.0, 99.0), // duplicate strike
		chainRow("25,100", 5.0, 1.0, 1.0, 1.0, 1.0, 1.0),
	}
	data := buildWorkbook(t, []string{"wed6"}, map[string][][]interface{}{"wed6": rows})
	f := openOutput(t, data)

	records, err := ParseDaySheet(f, "wed6", 10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	t.Run("rows without a numeric strike are dropped", func(t *testing.T) {
		assert.Equal(t, 25000.0, records[0].Strike)
	})

	t.Run("unreadable cells count as zero without dropping the row", func(t *testing.T) {
		assert.Equal(t, 0.0, records[0].CallMoney)
		assert.Equal(t, 0.0, records[0].PutMoney)
		assert.Equal(t, 10.0, records[0].CallVWAP)
	})

	t.Run("duplicate strikes keep the first occurrence", func(t *testing.T) {
		assert.NotEqual(t, 99.0, records[0].CallVWAP)
	})

	t.Run("formatted numbers parse with separators stripped", func(t *testing.T) {
		assert.Equal(t, 25100.0, records[1].Strike)
	})
}

func TestParseDaySheetFailures(t *testing.T) {
	t.Run("header beyond the scan depth fails the sheet", func(t *testing.T) {
		rows := make([][]interface{}, 12)
		rows[11] = chainHeader
		data := buildWorkbook(t, []string{"thu6"}, map[string][][]interface{}{"thu6": rows})
		f := openOutput(t, data)

		_, err := ParseDaySheet(f, "thu6", 10)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no header row")
	})

	t.Run("missing required money column fails the sheet", func(t *testing.T) {
		rows := [][]interface{}{{"Strike", "VWAP", "LTP (Chg %)"}, {25000, 10.0, 9.5}}
		data := buildWorkbook(t, []string{"fri6"}, map[string][][]interface{}{"fri6": rows})
		f := openOutput(t, data)

		_, err := ParseDaySheet(f, "fri6", 10)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Chg in OI Value")
	})

	t.Run("missing put columns default to zero", func(t *testing.T) {
		rows := [][]interface{}{
			{"Strike", "Chg in OI Value", "VWAP", "LTP (Chg %)"},
			{25000, 42.0, 10.0, 9.5},
		}
		data := buildWorkbook(t, []string{"sat6"}, map[string][][]interface{}{"sat6": rows})
		f := openOutput(t, data)

		records, err := ParseDaySheet(f, "sat6", 10)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, 42.0, records[0].CallMoney)
		assert.Zero(t, records[0].PutMoney)
		assert.Zero(t, records[0].PutVWAP)
		assert.Zero(t, records[0].PutLTP)
	})
}
