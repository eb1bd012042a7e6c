package workbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaySheets(t *testing.T) {
	order := []string{"notes", "tue6", "WED6", "Total", "MAX", "Friday file", "max2"}
	data := buildWorkbook(t, order, nil)
	f := openOutput(t, data)

	t.Run("day prefixes match case-insensitively in file order", func(t *testing.T) {
		days := DaySheets(f, nil, []string{"Total", "Max"})
		assert.Equal(t, []string{"tue6", "WED6", "Friday file"}, days)
	})
}

func TestDaySheetsExclusion(t *testing.T) {
	// Re-runs must not ingest the engine's own output sheets.
	order := []string{"total", "Max", "tue6"}
	data := buildWorkbook(t, order, nil)
	f := openOutput(t, data)

	days := DaySheets(f, nil, []string{"Total", "Max"})
	assert.Equal(t, []string{"tue6"}, days)
}

func TestDaySheetsCustomPrefixes(t *testing.T) {
	order := []string{"expiry1", "tue6"}
	data := buildWorkbook(t, order, nil)
	f := openOutput(t, data)

	days := DaySheets(f, []string{"expiry"}, nil)
	require.Equal(t, []string{"expiry1"}, days)
}

func TestDaySheetsNoMatches(t *testing.T) {
	data := buildWorkbook(t, []string{"summary", "data"}, nil)
	f := openOutput(t, data)
	assert.Empty(t, DaySheets(f, nil, []string{"Total", "Max"}))
}
