package levels

// CumulativeSnapshot is the per-strike state after folding days 1..d.
// Money is a plain running sum and may decrease when a day contributes
// negative change-in-OI value. Running averages cover only the days whose
// reference price was strictly positive; with no such day yet they are 0.
type CumulativeSnapshot struct {
	Strike     float64
	CallMoney  float64
	PutMoney   float64
	AvgCallRef float64
	AvgPutRef  float64
	CallBEP    float64
	PutBEP     float64
}

// DaySnapshot is the complete cumulative picture as of one day, one entry
// per strike in the universe, ordered by strike ascending.
type DaySnapshot struct {
	Index   int
	Label   string
	Strikes []CumulativeSnapshot
}

// accumulator threads the fold state for a single strike across days.
type accumulator struct {
	callMoney    float64
	putMoney     float64
	callRefSum   float64
	callRefCount int
	putRefSum    float64
	putRefCount  int
}

func (a *accumulator) fold(mode PricingMode, rec DailyRecord) {
	a.callMoney += rec.CallMoney
	a.putMoney += rec.PutMoney

	if ref := ReferencePrice(mode, SideCall, rec); ref > 0 {
		a.callRefSum += ref
		a.callRefCount++
	}
	if ref := ReferencePrice(mode, SidePut, rec); ref > 0 {
		a.putRefSum += ref
		a.putRefCount++
	}
}

func (a *accumulator) snapshot(strike float64) CumulativeSnapshot {
	snap := CumulativeSnapshot{
		Strike:    strike,
		CallMoney: a.callMoney,
		PutMoney:  a.putMoney,
	}
	if a.callRefCount > 0 {
		snap.AvgCallRef = a.callRefSum / float64(a.callRefCount)
	}
	if a.putRefCount > 0 {
		snap.AvgPutRef = a.putRefSum / float64(a.putRefCount)
	}
	snap.CallBEP = strike + snap.AvgCallRef
	snap.PutBEP = strike - snap.AvgPutRef
	return snap
}

// Aggregate folds the day sheets, in order, into one DaySnapshot per day.
// Each snapshot is complete as of that day and independent of later days.
// A strike absent from a day keeps its cumulative money and reference
// counts untouched for that day.
func Aggregate(days []DaySheet) []DaySnapshot {
	universe := StrikeUniverse(days)

	modes := make(map[float64]PricingMode, len(universe))
	for _, strike := range universe {
		modes[strike] = ResolvePricingMode(days, strike)
	}

	accs := make(map[float64]*accumulator, len(universe))
	for _, strike := range universe {
		accs[strike] = &accumulator{}
	}

	snapshots := make([]DaySnapshot, 0, len(days))
	for idx, day := range days {
		records := day.byStrike()
		snap := DaySnapshot{
			Index:   idx,
			Label:   day.Label,
			Strikes: make([]CumulativeSnapshot, 0, len(universe)),
		}
		for _, strike := range universe {
			acc := accs[strike]
			if rec, ok := records[strike]; ok {
				acc.fold(modes[strike], rec)
			}
			snap.Strikes = append(snap.Strikes, acc.snapshot(strike))
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots
}
