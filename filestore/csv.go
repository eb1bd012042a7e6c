package filestore

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"oilevels/levels"

	"github.com/gocarina/gocsv"
)

// LevelRow is one ranked support/resistance level flattened for CSV.
type LevelRow struct {
	Day      string  `csv:"day"`
	Side     string  `csv:"side"`
	Rank     int     `csv:"rank"`
	Strike   float64 `csv:"strike"`
	Money    float64 `csv:"money"`
	RefPrice float64 `csv:"ref_price"`
	BEP      float64 `csv:"bep"`
}

// ExportLevelsCSV flattens the per-day top-N tables into a single CSV
// report alongside the workbook archives. Padding and totals rows are not
// exported.
func (s *Store) ExportLevelsCSV(snapshots []levels.DaySnapshot, topN int) (string, error) {
	dir, err := s.exportDir()
	if err != nil {
		return "", err
	}

	var rows []*LevelRow
	for _, snap := range snapshots {
		for _, side := range []levels.Side{levels.SideCall, levels.SidePut} {
			table := levels.TopLevels(snap, side, topN)
			rank := 0
			for _, row := range table.Rows {
				if row.Strike == nil {
					continue
				}
				rank++
				rows = append(rows, &LevelRow{
					Day:      snap.Label,
					Side:     side.String(),
					Rank:     rank,
					Strike:   *row.Strike,
					Money:    *row.Money,
					RefPrice: *row.RefPrice,
					BEP:      *row.BEP,
				})
			}
		}
	}

	csvPath := filepath.Join(dir, fmt.Sprintf("levels_%s.csv", time.Now().Format("150405")))
	file, err := os.Create(csvPath)
	if err != nil {
		return "", fmt.Errorf("failed to create csv file: %w", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return "", fmt.Errorf("failed to write csv: %w", err)
	}

	s.log.Info("Exported ranked levels CSV", map[string]interface{}{
		"path": csvPath,
		"rows": len(rows),
	})
	return csvPath, nil
}
