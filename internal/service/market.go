package service

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/twliao/finwatch/internal/domain/dto"
	"github.com/twliao/finwatch/internal/domain/models"
	"github.com/twliao/finwatch/internal/logger"
	"github.com/twliao/finwatch/internal/provider"
)

// Tickers maps each dashboard series to its provider symbol. Injected at
// construction so tests can substitute fake instruments.
type Tickers struct {
	US10Y string
	JPYFX string
	Gold  string
	Oil   string
}

// Spread placeholder modes for the synthesized JP 10Y series.
const (
	SpreadModeConstant = "constant"
	SpreadModeScaled   = "scaled"
)

// SpreadPolicy controls how the Japanese 10-year yield is synthesized.
// The provider has no reliable JP 10Y source; this is a documented
// approximation of it, never fetched ground truth.
type SpreadPolicy struct {
	Mode     string  // SpreadModeConstant or SpreadModeScaled
	Constant float64 // fixed yield used in constant mode
	Scale    float64 // multiplier applied to the US close in scaled mode
}

// MarketService exposes the four dashboard data pipelines.
//
// Each call is a single-shot, non-retrying pipeline: fetch from the
// provider, reshape into rows sorted ascending by date, and return.
// Nothing is cached between calls.
type MarketService interface {
	BondSpread(ctx context.Context, period models.Period) ([]dto.SpreadRow, error)
	FX(ctx context.Context, period models.Period) ([]dto.FxRow, error)
	Commodities(ctx context.Context, period models.Period) (dto.CommoditySet, error)
	All(ctx context.Context, period models.Period) (dto.AllData, error)
}

type marketService struct {
	fetcher provider.Fetcher
	tickers Tickers
	spread  SpreadPolicy
}

// NewMarketService constructs a MarketService over the given provider
// client, ticker mapping, and spread placeholder policy.
func NewMarketService(fetcher provider.Fetcher, tickers Tickers, spread SpreadPolicy) MarketService {
	return &marketService{fetcher: fetcher, tickers: tickers, spread: spread}
}

// BondSpread fetches the US 10Y proxy, synthesizes the JP 10Y series per
// the configured policy, aligns the two by date, and emits spread rows
// rounded to 4 decimal places. A fetch failure or empty result aborts.
func (s *marketService) BondSpread(ctx context.Context, period models.Period) ([]dto.SpreadRow, error) {
	us, err := s.fetcher.FetchHistory(ctx, s.tickers.US10Y, period)
	if err != nil {
		logger.L().Error().Err(err).
			Str("ticker", s.tickers.US10Y).
			Str("period", string(period)).
			Msg("bond spread fetch failed")
		return nil, err
	}

	points := alignSeries(us, s.syntheticJP(us))

	rows := make([]dto.SpreadRow, 0, len(points))
	for _, p := range points {
		rows = append(rows, dto.SpreadRow{
			Date:   p.Date,
			US10Y:  roundTo(p.First, 4),
			JP10Y:  roundTo(p.Second, 4),
			Spread: roundTo(p.First-p.Second, 4),
		})
	}
	return rows, nil
}

// syntheticJP builds the placeholder JP 10Y series on the US series'
// dates so alignment behaves exactly as it would with a real source.
func (s *marketService) syntheticJP(us models.Series) models.Series {
	bars := make([]models.Bar, 0, len(us.Bars))
	for _, bar := range us.Bars {
		yield := s.spread.Constant
		if s.spread.Mode == SpreadModeScaled {
			yield = bar.Close * s.spread.Scale
		}
		bars = append(bars, models.Bar{Time: bar.Time, Open: yield, High: yield, Low: yield, Close: yield})
	}
	return models.Series{Ticker: "JP10Y", Bars: bars}
}

// FX fetches the USD/JPY series and reshapes it into rate/high/low rows
// rounded to 4 decimal places. A fetch failure or empty result aborts.
func (s *marketService) FX(ctx context.Context, period models.Period) ([]dto.FxRow, error) {
	series, err := s.fetcher.FetchHistory(ctx, s.tickers.JPYFX, period)
	if err != nil {
		logger.L().Error().Err(err).
			Str("ticker", s.tickers.JPYFX).
			Str("period", string(period)).
			Msg("fx fetch failed")
		return nil, err
	}

	rows := make([]dto.FxRow, 0, len(series.Bars))
	for _, bar := range series.Bars {
		rows = append(rows, dto.FxRow{
			Date: bar.DateKey(),
			Rate: roundTo(bar.Close, 4),
			High: roundTo(bar.High, 4),
			Low:  roundTo(bar.Low, 4),
		})
	}
	sortFxRows(rows)
	return rows, nil
}

// Commodities fetches gold and oil independently. A failure on either
// ticker is isolated: its key comes back as an empty list and the call
// still succeeds.
func (s *marketService) Commodities(ctx context.Context, period models.Period) (dto.CommoditySet, error) {
	return dto.CommoditySet{
		Gold: s.commodityRows(ctx, s.tickers.Gold, period),
		Oil:  s.commodityRows(ctx, s.tickers.Oil, period),
	}, nil
}

// commodityRows runs one isolated commodity fetch. Errors are logged
// and mapped to an empty (non-nil) slice so the JSON stays a list.
func (s *marketService) commodityRows(ctx context.Context, ticker string, period models.Period) []dto.CommodityRow {
	rows := make([]dto.CommodityRow, 0)

	series, err := s.fetcher.FetchHistory(ctx, ticker, period)
	if err != nil {
		logger.L().Error().Err(err).
			Str("ticker", ticker).
			Str("period", string(period)).
			Msg("commodity fetch failed, returning empty series")
		return rows
	}

	for _, bar := range series.Bars {
		rows = append(rows, dto.CommodityRow{
			Date:   bar.DateKey(),
			Price:  roundTo(bar.Close, 2),
			Change: roundTo(bar.Close-bar.Open, 2),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	return rows
}

// All runs the three pipelines concurrently and merges their data under
// named keys. Any abort-level failure in a sub-pipeline fails the whole
// call; commodities never aborts (its failures are isolated per ticker).
func (s *marketService) All(ctx context.Context, period models.Period) (dto.AllData, error) {
	var all dto.AllData

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.BondSpread(gctx, period)
		if err != nil {
			return fmt.Errorf("bond spread: %w", err)
		}
		all.BondSpread = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.FX(gctx, period)
		if err != nil {
			return fmt.Errorf("fx: %w", err)
		}
		all.Fx = rows
		return nil
	})
	g.Go(func() error {
		set, err := s.Commodities(gctx, period)
		if err != nil {
			return fmt.Errorf("commodities: %w", err)
		}
		all.Commodities = set
		return nil
	})

	if err := g.Wait(); err != nil {
		return dto.AllData{}, err
	}
	return all, nil
}

func sortFxRows(rows []dto.FxRow) {
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
}
