package repository

// Named history periods accepted by the API, matching what the
// market-data provider understands natively.
var validPeriods = map[string]struct{}{
	"1d": {}, "5d": {}, "1mo": {}, "3mo": {}, "6mo": {},
	"1y": {}, "2y": {}, "5y": {}, "10y": {}, "ytd": {}, "max": {},
}

// NormalizePeriod maps an empty or unknown period to the default "1y".
func NormalizePeriod(p string) string {
	if _, ok := validPeriods[p]; ok {
		return p
	}
	return "1y"
}
