package models

// Period is a provider-defined lookback window token.
//
// Tokens outside the known set are passed through to the provider
// untouched; whatever error it raises surfaces to the caller.
type Period string

const (
	Period1d  Period = "1d"
	Period5d  Period = "5d"
	Period1mo Period = "1mo"
	Period3mo Period = "3mo"
	Period6mo Period = "6mo"
	Period1y  Period = "1y"
)

// DefaultPeriod is used when a request does not specify a period.
const DefaultPeriod = Period5d

// Known reports whether the token is one of the enumerated lookback
// windows. Used for logging only, never for rejection.
func (p Period) Known() bool {
	switch p {
	case Period1d, Period5d, Period1mo, Period3mo, Period6mo, Period1y:
		return true
	}
	return false
}
