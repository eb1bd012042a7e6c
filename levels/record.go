package levels

import "sort"

// Side selects the call or put leg of a strike.
type Side int

const (
	SideCall Side = iota
	SidePut
)

func (s Side) String() string {
	if s == SidePut {
		return "PE"
	}
	return "CE"
}

// DailyRecord is one normalized option-chain row for a single trading day.
// Money fields hold the day's change in OI value; prices are in index points.
type DailyRecord struct {
	Strike    float64
	CallMoney float64
	CallVWAP  float64
	CallLTP   float64
	PutMoney  float64
	PutVWAP   float64
	PutLTP    float64
}

// DaySheet holds all records parsed from one day sheet. Day order is the
// order sheets appear in the workbook, never parsed dates.
type DaySheet struct {
	Label   string
	Records []DailyRecord
}

// StrikeUniverse returns the sorted union of strikes across all days. The
// universe is fixed before any cumulative folding starts.
func StrikeUniverse(days []DaySheet) []float64 {
	seen := make(map[float64]bool)
	var strikes []float64
	for _, day := range days {
		for _, rec := range day.Records {
			if !seen[rec.Strike] {
				seen[rec.Strike] = true
				strikes = append(strikes, rec.Strike)
			}
		}
	}
	sort.Float64s(strikes)
	return strikes
}

func (d DaySheet) byStrike() map[float64]DailyRecord {
	m := make(map[float64]DailyRecord, len(d.Records))
	for _, rec := range d.Records {
		if _, ok := m[rec.Strike]; !ok {
			m[rec.Strike] = rec
		}
	}
	return m
}
