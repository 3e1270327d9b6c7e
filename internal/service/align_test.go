package service

import (
	"testing"
	"time"

	"github.com/twliao/finwatch/internal/domain/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seriesOf(ticker string, closes map[string]float64) models.Series {
	s := models.Series{Ticker: ticker}
	for date, cl := range closes {
		t, _ := time.Parse(models.DateFormat, date)
		s.Bars = append(s.Bars, models.Bar{Time: t, Open: cl, High: cl, Low: cl, Close: cl})
	}
	return s
}

func TestAlignSeries_Intersection(t *testing.T) {
	a := seriesOf("A", map[string]float64{
		"2024-01-01": 1.0,
		"2024-01-02": 2.0,
		"2024-01-03": 3.0,
	})
	b := seriesOf("B", map[string]float64{
		"2024-01-02": 20.0,
		"2024-01-03": 30.0,
		"2024-01-04": 40.0,
	})

	points := alignSeries(a, b)
	if len(points) != 2 {
		t.Fatalf("expected 2 aligned points, got %d", len(points))
	}
	if points[0].Date != "2024-01-02" || points[1].Date != "2024-01-03" {
		t.Fatalf("unexpected dates: %+v", points)
	}
	if points[0].First != 2.0 || points[0].Second != 20.0 {
		t.Fatalf("unexpected pairing on first point: %+v", points[0])
	}
	if points[1].First != 3.0 || points[1].Second != 30.0 {
		t.Fatalf("unexpected pairing on second point: %+v", points[1])
	}
}

func TestAlignSeries_Disjoint(t *testing.T) {
	a := seriesOf("A", map[string]float64{"2024-01-01": 1.0, "2024-01-02": 2.0})
	b := seriesOf("B", map[string]float64{"2024-02-01": 10.0})

	points := alignSeries(a, b)
	if points == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(points) != 0 {
		t.Fatalf("expected no aligned points, got %d", len(points))
	}
}

func TestAlignSeries_Empty(t *testing.T) {
	points := alignSeries(models.Series{}, seriesOf("B", map[string]float64{"2024-01-01": 1}))
	if len(points) != 0 {
		t.Fatalf("expected no points for empty input, got %d", len(points))
	}
}

func TestAlignSeries_Ascending(t *testing.T) {
	// Build an intentionally unsorted first series
	a := models.Series{Ticker: "A", Bars: []models.Bar{
		{Time: day(2024, 1, 5), Close: 5},
		{Time: day(2024, 1, 2), Close: 2},
		{Time: day(2024, 1, 4), Close: 4},
	}}
	b := seriesOf("B", map[string]float64{
		"2024-01-02": 1,
		"2024-01-04": 1,
		"2024-01-05": 1,
	})

	points := alignSeries(a, b)
	for i := 1; i < len(points); i++ {
		if points[i-1].Date >= points[i].Date {
			t.Fatalf("points not strictly ascending: %+v", points)
		}
	}
}

func TestRoundTo(t *testing.T) {
	cases := []struct {
		v      float64
		places int
		want   float64
	}{
		{1.23456, 4, 1.2346},
		{1.23454, 4, 1.2345},
		{2.5, 0, 3},
		{-2.5, 0, -3},
		{2064.399, 2, 2064.4},
		{148.5, 4, 148.5},
		{0, 4, 0},
	}
	for _, tc := range cases {
		if got := roundTo(tc.v, tc.places); got != tc.want {
			t.Fatalf("roundTo(%v, %d) = %v, want %v", tc.v, tc.places, got, tc.want)
		}
	}
}
