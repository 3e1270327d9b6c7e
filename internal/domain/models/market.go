package models

import "time"

// DateFormat is the calendar-day key used for row dates and series
// alignment. Lexicographic order on this format coincides with
// chronological order.
const DateFormat = "2006-01-02"

// Bar represents a single daily OHLC observation for an instrument.
type Bar struct {
	Time  time.Time
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// DateKey returns the calendar-day alignment key for the bar (YYYY-MM-DD).
func (b Bar) DateKey() string {
	return b.Time.Format(DateFormat)
}

// Series is the bar history for one ticker over one lookback period.
// Bars are ordered ascending by time; dates need not be contiguous
// (market holidays). No two bars share a calendar day.
type Series struct {
	Ticker string
	Bars   []Bar
}

// Empty reports whether the series contains no bars.
func (s Series) Empty() bool { return len(s.Bars) == 0 }

// AlignedPoint pairs the closing values of two series on a common date.
type AlignedPoint struct {
	Date   string  // YYYY-MM-DD
	First  float64 // close of the first series
	Second float64 // close of the second series
}
