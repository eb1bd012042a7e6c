package levels

// PricingMode decides which reference price a strike uses for every day of
// the series. It is computed once from the first day and never re-evaluated.
type PricingMode int

const (
	// PricingStandard prefers VWAP, falling back to LTP when VWAP is not positive.
	PricingStandard PricingMode = iota
	// PricingForceLTP uses LTP for all days on both sides.
	PricingForceLTP
)

// ResolvePricingMode inspects a strike's record on the first day of the
// series. A non-positive call VWAP there forces LTP pricing for the whole
// series, on the call AND put side. Strikes with no first-day record stay
// on standard pricing.
func ResolvePricingMode(days []DaySheet, strike float64) PricingMode {
	if len(days) == 0 {
		return PricingStandard
	}
	for _, rec := range days[0].Records {
		if rec.Strike == strike {
			if rec.CallVWAP <= 0 {
				return PricingForceLTP
			}
			return PricingStandard
		}
	}
	return PricingStandard
}

// ReferencePrice derives the representative premium for one side of one
// day's record under the strike's fixed pricing mode.
func ReferencePrice(mode PricingMode, side Side, rec DailyRecord) float64 {
	var vwap, ltp float64
	switch side {
	case SidePut:
		vwap, ltp = rec.PutVWAP, rec.PutLTP
	default:
		vwap, ltp = rec.CallVWAP, rec.CallLTP
	}
	if mode == PricingForceLTP {
		return ltp
	}
	if vwap > 0 {
		return vwap
	}
	return ltp
}
