package levels

import "sort"

// RankedRow is one display row of a top-N table. Nil fields render as blank
// cells (padding rows and the totals row leave most fields unset).
type RankedRow struct {
	Strike   *float64
	Money    *float64
	RefPrice *float64
	BEP      *float64
}

// RankedTable is the per-day, per-side summary: n ranked rows (padded to n)
// plus a totals row holding only the sum of the selected money values.
type RankedTable struct {
	Side Side
	Rows []RankedRow
}

// TopLevels picks the n strikes with the largest cumulative money on one
// side of a day snapshot. Ties keep the strike-ascending order of the
// snapshot. The selected rows are re-sorted by strike descending purely for
// display; padding rows stay blank.
func TopLevels(day DaySnapshot, side Side, n int) RankedTable {
	ranked := make([]CumulativeSnapshot, len(day.Strikes))
	copy(ranked, day.Strikes)

	money := func(s CumulativeSnapshot) float64 {
		if side == SidePut {
			return s.PutMoney
		}
		return s.CallMoney
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return money(ranked[i]) > money(ranked[j])
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}

	// Display order only; ranking above already decided the selection.
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].Strike > ranked[j].Strike
	})

	table := RankedTable{Side: side, Rows: make([]RankedRow, 0, n+1)}
	var total float64
	for _, snap := range ranked {
		strike := snap.Strike
		m := money(snap)
		ref := snap.AvgCallRef
		bep := snap.CallBEP
		if side == SidePut {
			ref = snap.AvgPutRef
			bep = snap.PutBEP
		}
		total += m
		row := RankedRow{Strike: &strike, Money: &m}
		r, b := ref, bep
		row.RefPrice, row.BEP = &r, &b
		table.Rows = append(table.Rows, row)
	}
	for len(table.Rows) < n {
		table.Rows = append(table.Rows, RankedRow{})
	}
	table.Rows = append(table.Rows, RankedRow{Money: &total})
	return table
}
