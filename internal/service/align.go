package service

import (
	"math"
	"sort"

	"github.com/twliao/finwatch/internal/domain/models"
)

// alignSeries intersects two series by calendar date and pairs their
// closing values.
//
// Dates present in only one series are dropped; there is no
// interpolation or forward-fill. The result is ordered ascending by
// date and is empty (not nil-deref, not an error) when the date sets
// are disjoint.
func alignSeries(a, b models.Series) []models.AlignedPoint {
	other := make(map[string]float64, len(b.Bars))
	for _, bar := range b.Bars {
		other[bar.DateKey()] = bar.Close
	}

	points := make([]models.AlignedPoint, 0, len(a.Bars))
	for _, bar := range a.Bars {
		second, ok := other[bar.DateKey()]
		if !ok {
			continue
		}
		points = append(points, models.AlignedPoint{
			Date:   bar.DateKey(),
			First:  bar.Close,
			Second: second,
		})
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

// roundTo rounds v to the given number of decimal places, half away
// from zero. Applied consistently across every response.
func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
