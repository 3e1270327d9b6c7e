package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/twliao/finwatch/internal/domain/models"
	"github.com/twliao/finwatch/internal/logger"
)

// YahooClient implements Fetcher against the Yahoo Finance v8 chart API.
type YahooClient struct {
	client  *http.Client
	baseURL string
}

// NewYahooClient creates a chart-API client for the given base URL
// (scheme and host, no trailing slash) with a per-request timeout.
func NewYahooClient(baseURL string, timeout time.Duration) *YahooClient {
	return &YahooClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// chartResponse mirrors the subset of the Yahoo chart payload we consume.
// Quote arrays use pointers because Yahoo emits null entries for days
// without trades.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open  []*float64 `json:"open"`
					High  []*float64 `json:"high"`
					Low   []*float64 `json:"low"`
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchHistory fetches the daily bar history for ticker over the given
// period token.
//
// Outcomes:
//   - transport/HTTP/provider error: plain error carrying the cause.
//   - decoded but empty: error wrapping ErrNoData ("No data for <ticker>",
//     the message the dashboard contract expects).
//   - success: bars sorted ascending by time, null bars (holidays)
//     skipped, at most one bar per calendar day (last one wins).
func (y *YahooClient) FetchHistory(ctx context.Context, ticker string, period models.Period) (models.Series, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=%s",
		y.baseURL, url.PathEscape(ticker), url.QueryEscape(string(period)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return models.Series{}, fmt.Errorf("yahoo request: %w", err)
	}
	// Yahoo rejects requests without a browser-like user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := y.client.Do(req)
	if err != nil {
		return models.Series{}, fmt.Errorf("yahoo fetch %s: %w", ticker, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return models.Series{}, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return models.Series{}, fmt.Errorf("yahoo %s: status %d", ticker, resp.StatusCode)
	}

	var chart chartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		return models.Series{}, fmt.Errorf("yahoo decode %s: %w", ticker, err)
	}
	if chart.Chart.Error != nil {
		return models.Series{}, fmt.Errorf("yahoo api error for %s: %s", ticker, chart.Chart.Error.Description)
	}

	series := models.Series{Ticker: ticker, Bars: extractBars(&chart)}
	if series.Empty() {
		return models.Series{}, fmt.Errorf("No data for %s: %w", ticker, ErrNoData)
	}

	logger.L().Debug().
		Str("ticker", ticker).
		Str("period", string(period)).
		Int("bars", len(series.Bars)).
		Msg("provider fetch")

	return series, nil
}

// extractBars converts a decoded chart payload into clean bars:
// null entries are dropped and duplicate calendar days are collapsed
// so downstream alignment sees at most one bar per date.
func extractBars(chart *chartResponse) []models.Bar {
	if len(chart.Chart.Result) == 0 {
		return nil
	}
	result := chart.Chart.Result[0]
	if len(result.Timestamp) == 0 || len(result.Indicators.Quote) == 0 {
		return nil
	}
	quote := result.Indicators.Quote[0]

	byDay := make(map[string]models.Bar, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Open) || i >= len(quote.High) || i >= len(quote.Low) || i >= len(quote.Close) {
			break
		}
		if quote.Open[i] == nil || quote.High[i] == nil || quote.Low[i] == nil || quote.Close[i] == nil {
			continue // holiday or halted session
		}
		bar := models.Bar{
			Time:  time.Unix(ts, 0),
			Open:  *quote.Open[i],
			High:  *quote.High[i],
			Low:   *quote.Low[i],
			Close: *quote.Close[i],
		}
		byDay[bar.DateKey()] = bar
	}

	bars := make([]models.Bar, 0, len(byDay))
	for _, bar := range byDay {
		bars = append(bars, bar)
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars
}

// CloseIdleConnections releases pooled upstream connections. Called on
// shutdown.
func (y *YahooClient) CloseIdleConnections() {
	y.client.CloseIdleConnections()
}
