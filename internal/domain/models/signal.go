package models

// Tier is the three-state interpretation attached to a signal.
type Tier string

const (
	TierGood    Tier = "good"
	TierWarning Tier = "warning"
	TierBad     Tier = "bad"
)

// Signal is a point-in-time reading of one indicator: the raw value at
// the last bar, its tier, and a human-readable explanation. For the
// death cross the value is 1 when the cross is present and 0 otherwise.
type Signal struct {
	Value       float64 `json:"value"`
	Tier        Tier    `json:"signal"`
	Explanation string  `json:"explanation"`
}

// SignalBundle is the indicator signal set returned by the indicators
// endpoint.
type SignalBundle struct {
	RSI        Signal `json:"rsi"`
	DeathCross Signal `json:"deathCross"`
	MACD       Signal `json:"macd"`
}
