package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/twliao/finwatch/internal/domain/models"
)

// chartJSON builds a minimal Yahoo chart payload. Null quote entries are
// encoded as the literal "null".
func chartJSON(timestamps []int64, opens, highs, lows, closes []string) string {
	ts := make([]string, len(timestamps))
	for i, t := range timestamps {
		ts[i] = fmt.Sprintf("%d", t)
	}
	return fmt.Sprintf(`{
		"chart": {
			"result": [{
				"timestamp": [%s],
				"indicators": {"quote": [{
					"open": [%s],
					"high": [%s],
					"low": [%s],
					"close": [%s]
				}]}
			}],
			"error": null
		}
	}`, strings.Join(ts, ","), strings.Join(opens, ","), strings.Join(highs, ","),
		strings.Join(lows, ","), strings.Join(closes, ","))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*YahooClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewYahooClient(srv.URL, 2*time.Second), srv
}

func TestFetchHistory_Success(t *testing.T) {
	base := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC).Unix()
	day := int64(24 * 3600)

	var gotPath, gotQuery string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		// second timestamp deliberately out of order
		_, _ = w.Write([]byte(chartJSON(
			[]int64{base + 2*day, base, base + day},
			[]string{"3.95", "3.90", "3.92"},
			[]string{"4.01", "3.98", "3.99"},
			[]string{"3.93", "3.88", "3.90"},
			[]string{"3.99", "3.952", "3.96"},
		)))
	})

	series, err := client.FetchHistory(context.Background(), "^TNX", models.Period5d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series.Ticker != "^TNX" {
		t.Fatalf("ticker = %q", series.Ticker)
	}
	if len(series.Bars) != 3 {
		t.Fatalf("expected 3 bars, got %d", len(series.Bars))
	}
	for i := 1; i < len(series.Bars); i++ {
		if !series.Bars[i-1].Time.Before(series.Bars[i].Time) {
			t.Fatalf("bars not ascending: %+v", series.Bars)
		}
	}
	if series.Bars[0].Close != 3.952 {
		t.Fatalf("first close = %v, want 3.952", series.Bars[0].Close)
	}
	if gotPath != "/v8/finance/chart/%5ETNX" && gotPath != "/v8/finance/chart/^TNX" {
		t.Fatalf("unexpected path: %q", gotPath)
	}
	if !strings.Contains(gotQuery, "interval=1d") || !strings.Contains(gotQuery, "range=5d") {
		t.Fatalf("unexpected query: %q", gotQuery)
	}
}

func TestFetchHistory_NullBarsSkipped(t *testing.T) {
	base := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC).Unix()
	day := int64(24 * 3600)

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chartJSON(
			[]int64{base, base + day, base + 2*day},
			[]string{"3.90", "null", "3.92"},
			[]string{"3.98", "null", "3.99"},
			[]string{"3.88", "null", "3.90"},
			[]string{"3.95", "null", "3.96"},
		)))
	})

	series, err := client.FetchHistory(context.Background(), "^TNX", models.Period5d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series.Bars) != 2 {
		t.Fatalf("expected null bar skipped, got %d bars", len(series.Bars))
	}
}

func TestFetchHistory_DuplicateDaysCollapsed(t *testing.T) {
	base := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC).Unix()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// two sessions on the same calendar day
		_, _ = w.Write([]byte(chartJSON(
			[]int64{base, base + 3600},
			[]string{"3.90", "3.91"},
			[]string{"3.98", "3.99"},
			[]string{"3.88", "3.89"},
			[]string{"3.95", "3.97"},
		)))
	})

	series, err := client.FetchHistory(context.Background(), "^TNX", models.Period1d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series.Bars) != 1 {
		t.Fatalf("expected duplicate day collapsed to 1 bar, got %d", len(series.Bars))
	}
	if series.Bars[0].Close != 3.97 {
		t.Fatalf("expected last bar to win, got close %v", series.Bars[0].Close)
	}
}

func TestFetchHistory_EmptyResultIsErrNoData(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "empty result array", body: `{"chart":{"result":[],"error":null}}`},
		{name: "no timestamps", body: `{"chart":{"result":[{"timestamp":[],"indicators":{"quote":[{}]}}],"error":null}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			})
			_, err := client.FetchHistory(context.Background(), "GC=F", models.Period5d)
			if !errors.Is(err, ErrNoData) {
				t.Fatalf("expected ErrNoData, got %v", err)
			}
			if err == nil || !strings.Contains(err.Error(), "No data for GC=F") {
				t.Fatalf("expected ticker in message, got %v", err)
			}
		})
	}
}

func TestFetchHistory_HTTPFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	_, err := client.FetchHistory(context.Background(), "CL=F", models.Period5d)
	if err == nil {
		t.Fatalf("expected error on HTTP 429")
	}
	if errors.Is(err, ErrNoData) {
		t.Fatalf("transport failure must not look like an empty result: %v", err)
	}
}

func TestFetchHistory_APIError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`))
	})
	_, err := client.FetchHistory(context.Background(), "BOGUS", models.Period5d)
	if err == nil || !strings.Contains(err.Error(), "delisted") {
		t.Fatalf("expected provider error description, got %v", err)
	}
	if errors.Is(err, ErrNoData) {
		t.Fatalf("api error must not look like an empty result")
	}
}

func TestFetchHistory_ContextCancelled(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := client.FetchHistory(ctx, "JPY=X", models.Period5d); err == nil {
		t.Fatalf("expected error when context deadline passes")
	}
}

func TestFetchHistory_UnknownPeriodPassedThrough(t *testing.T) {
	var gotRange string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotRange = r.URL.Query().Get("range")
		_, _ = w.Write([]byte(`{"chart":{"result":[],"error":null}}`))
	})

	_, _ = client.FetchHistory(context.Background(), "JPY=X", models.Period("42wk"))
	if gotRange != "42wk" {
		t.Fatalf("expected unknown period forwarded untouched, got %q", gotRange)
	}
}
