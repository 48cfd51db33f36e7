package controllers

import (
	"fmt"
	"math"
	"time"
)

// Report ranges are trailing windows sized for trend charts: the last 7
// days, 12 weeks, 12 months or 5 years.
const (
	rangeDaily   = "daily"
	rangeWeekly  = "weekly"
	rangeMonthly = "monthly"
	rangeYearly  = "yearly"
)

// dayStat is one calendar day of delivered-order totals, as produced by the
// aggregation ("2006-01-02" keys).
type dayStat struct {
	Date    string  `bson:"_id"`
	Revenue float64 `bson:"revenue"`
	Orders  int     `bson:"orders"`
}

// chartPoint is one zero-filled bucket of the report series.
type chartPoint struct {
	Name     string  `json:"name"`
	FullDate string  `json:"fullDate"`
	Revenue  float64 `json:"revenue"`
	Orders   int     `json:"orders"`
}

type reportBucket struct {
	label string
	start time.Time
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// sundayWeek is the Sunday-based week-of-year number (days before the first
// Sunday fall in week 0).
func sundayWeek(t time.Time) int {
	return (t.YearDay() - 1 + 7 - int(t.Weekday())) / 7
}

// reportBuckets builds the bucket sequence for a range, oldest first, and
// returns the window start. Unknown ranges fall back to daily.
func reportBuckets(rangeKey string, now time.Time) (time.Time, []reportBucket) {
	today := startOfDay(now)

	switch rangeKey {
	case rangeWeekly:
		// Weeks start on Sunday.
		weekStart := today.AddDate(0, 0, -int(today.Weekday()))
		buckets := make([]reportBucket, 0, 12)
		for i := 11; i >= 0; i-- {
			start := weekStart.AddDate(0, 0, -7*i)
			buckets = append(buckets, reportBucket{
				label: fmt.Sprintf("Wk %02d", sundayWeek(start)),
				start: start,
			})
		}
		return buckets[0].start, buckets

	case rangeMonthly:
		monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		buckets := make([]reportBucket, 0, 12)
		for i := 11; i >= 0; i-- {
			start := monthStart.AddDate(0, -i, 0)
			buckets = append(buckets, reportBucket{
				label: start.Format("Jan"),
				start: start,
			})
		}
		return buckets[0].start, buckets

	case rangeYearly:
		yearStart := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
		buckets := make([]reportBucket, 0, 5)
		for i := 4; i >= 0; i-- {
			start := yearStart.AddDate(-i, 0, 0)
			buckets = append(buckets, reportBucket{
				label: start.Format("2006"),
				start: start,
			})
		}
		return buckets[0].start, buckets

	default: // daily
		buckets := make([]reportBucket, 0, 7)
		for i := 6; i >= 0; i-- {
			start := today.AddDate(0, 0, -i)
			buckets = append(buckets, reportBucket{
				label: start.Format("Mon"),
				start: start,
			})
		}
		return buckets[0].start, buckets
	}
}

// foldDayStats distributes per-day totals into the report buckets and
// zero-fills buckets no order fell into. Rows outside the window are
// dropped.
func foldDayStats(buckets []reportBucket, rows []dayStat, loc *time.Location) []chartPoint {
	points := make([]chartPoint, len(buckets))
	for i, b := range buckets {
		points[i] = chartPoint{
			Name:     b.label,
			FullDate: b.start.Format("2006-01-02"),
		}
	}

	for _, row := range rows {
		day, err := time.ParseInLocation("2006-01-02", row.Date, loc)
		if err != nil {
			continue
		}
		// Assign to the last bucket starting at or before the day.
		at := -1
		for i, b := range buckets {
			if !day.Before(b.start) {
				at = i
			}
		}
		if at < 0 {
			continue
		}
		points[at].Revenue += row.Revenue
		points[at].Orders += row.Orders
	}

	return points
}

// roundCurrency rounds a revenue figure to the nearest whole currency unit.
func roundCurrency(amount float64) float64 {
	return math.Round(amount)
}

// averageOrderValue is round(revenue/orders), 0 for an empty window.
func averageOrderValue(revenue float64, orders int) float64 {
	if orders <= 0 {
		return 0
	}
	return math.Round(revenue / float64(orders))
}
