package levels

import "strconv"

// formatStrike renders a strike for the index column without trailing zeros.
func formatStrike(strike float64) string {
	return strconv.FormatFloat(strike, 'f', -1, 64)
}

// ColumnKind separates real data columns from the blank spacers that only
// group blocks visually. Spacers never take part in any computation.
type ColumnKind int

const (
	ColumnData ColumnKind = iota
	ColumnSpacer
)

// Column is one column of a composite report grid with its two-level
// header: the day label on top, the metric label below.
type Column struct {
	Day   string
	Label string
	Kind  ColumnKind
}

// Grid is a fully assembled report table: an index column, the ordered
// column layout, and the data rows. Cells are nil where the layout calls
// for a blank (spacer columns, padding rows).
type Grid struct {
	IndexLabel string
	Index      []string
	Columns    []Column
	Rows       [][]*float64
}

func spacer() Column {
	return Column{Kind: ColumnSpacer}
}

// totalBlockLabels is the fixed metric order of one day block in the Total
// grid. Later blocks carry cumulative state through that day, not the day's
// isolated contribution.
var totalBlockLabels = [4]string{"CE BEP", "CE Money", "PE Money", "PE BEP"}

// AssembleTotal lays the day snapshots out as the cumulative-history grid:
// one four-column block per day, single spacer between consecutive blocks,
// rows indexed by strike ascending.
func AssembleTotal(snapshots []DaySnapshot, universe []float64) Grid {
	grid := Grid{IndexLabel: "Strike"}

	for d, snap := range snapshots {
		if d > 0 {
			grid.Columns = append(grid.Columns, spacer())
		}
		for _, label := range totalBlockLabels {
			grid.Columns = append(grid.Columns, Column{Day: snap.Label, Label: label})
		}
	}

	for i, strike := range universe {
		grid.Index = append(grid.Index, formatStrike(strike))
		var row []*float64
		for d, snap := range snapshots {
			if d > 0 {
				row = append(row, nil)
			}
			s := snap.Strikes[i]
			ceBEP, ceMoney, peMoney, peBEP := s.CallBEP, s.CallMoney, s.PutMoney, s.PutBEP
			row = append(row, &ceBEP, &ceMoney, &peMoney, &peBEP)
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid
}

// AssembleMax lays out the per-day ranked tables: per day a call block and
// a put block separated by one spacer, two spacers between days. Rows are
// the n ranked rows plus the totals row; the index column stays blank so
// the renderer can hide it.
func AssembleMax(snapshots []DaySnapshot, topN int) Grid {
	grid := Grid{}

	callLabels := [4]string{"CE Strike", "Money", "AVWAP", "CE BEP"}
	putLabels := [4]string{"PE Strike", "Money", "AVWAP", "PE BEP"}

	type dayTables struct {
		call RankedTable
		put  RankedTable
	}
	var tables []dayTables

	for d, snap := range snapshots {
		if d > 0 {
			grid.Columns = append(grid.Columns, spacer(), spacer())
		}
		for _, label := range callLabels {
			grid.Columns = append(grid.Columns, Column{Day: snap.Label, Label: label})
		}
		grid.Columns = append(grid.Columns, spacer())
		for _, label := range putLabels {
			grid.Columns = append(grid.Columns, Column{Day: snap.Label, Label: label})
		}
		tables = append(tables, dayTables{
			call: TopLevels(snap, SideCall, topN),
			put:  TopLevels(snap, SidePut, topN),
		})
	}

	for r := 0; r < topN+1; r++ {
		grid.Index = append(grid.Index, "")
		var row []*float64
		for d := range tables {
			if d > 0 {
				row = append(row, nil, nil)
			}
			row = appendRankedCells(row, tables[d].call.Rows[r])
			row = append(row, nil)
			row = appendRankedCells(row, tables[d].put.Rows[r])
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid
}

func appendRankedCells(row []*float64, r RankedRow) []*float64 {
	return append(row, r.Strike, r.Money, r.RefPrice, r.BEP)
}
