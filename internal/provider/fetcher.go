package provider

import (
	"context"
	"errors"

	"github.com/twliao/finwatch/internal/domain/models"
)

// ErrNoData marks a successful provider call that returned zero usable
// bars for the requested ticker/period. Callers distinguish it from
// transport or API failures with errors.Is.
var ErrNoData = errors.New("no data")

// Fetcher retrieves daily bar history for a ticker over a lookback period.
//
// Implementations must return an error wrapping ErrNoData for an
// empty-but-successful result, and a plain error for any transport,
// HTTP, or provider-side failure.
type Fetcher interface {
	FetchHistory(ctx context.Context, ticker string, period models.Period) (models.Series, error)
}
