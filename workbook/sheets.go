package workbook

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// defaultDayPrefixes are the day-of-week tokens a processable sheet name
// starts with, compared case-insensitively.
var defaultDayPrefixes = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

// DaySheets filters the workbook's sheets down to the day sheets, in the
// order they are stored in the file. That order is the chronological day
// order for the whole pipeline. Sheets named exactly like an output sheet
// are excluded so re-running on a processed file never ingests its own
// reports.
func DaySheets(f *excelize.File, prefixes []string, exclude []string) []string {
	if len(prefixes) == 0 {
		prefixes = defaultDayPrefixes
	}

	var days []string
	for _, name := range f.GetSheetList() {
		lower := strings.ToLower(name)
		if isExcluded(lower, exclude) {
			continue
		}
		for _, prefix := range prefixes {
			if strings.HasPrefix(lower, strings.ToLower(prefix)) {
				days = append(days, name)
				break
			}
		}
	}
	return days
}

func isExcluded(lowerName string, exclude []string) bool {
	for _, e := range exclude {
		if lowerName == strings.ToLower(e) {
			return true
		}
	}
	return false
}
