package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-08-31 is a Monday.
var reportNow = time.Date(2026, time.August, 31, 15, 30, 0, 0, time.UTC)

func TestReportBucketsDaily(t *testing.T) {
	start, buckets := reportBuckets(rangeDaily, reportNow)

	require.Len(t, buckets, 7)
	assert.Equal(t, time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, "2026-08-25", buckets[0].start.Format("2006-01-02"))
	assert.Equal(t, "2026-08-31", buckets[6].start.Format("2006-01-02"))
	assert.Equal(t, "Tue", buckets[0].label)
	assert.Equal(t, "Mon", buckets[6].label)
}

func TestReportBucketsWeekly(t *testing.T) {
	start, buckets := reportBuckets(rangeWeekly, reportNow)

	require.Len(t, buckets, 12)
	for i, b := range buckets {
		assert.Equal(t, time.Sunday, b.start.Weekday(), "bucket %d starts on Sunday", i)
		if i > 0 {
			assert.Equal(t, 7*24*time.Hour, b.start.Sub(buckets[i-1].start))
		}
	}
	// Current week starts Sunday 2026-08-30; 11 weeks back is the window start.
	assert.Equal(t, time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC), buckets[11].start)
	assert.Equal(t, buckets[0].start, start)
}

func TestReportBucketsMonthly(t *testing.T) {
	start, buckets := reportBuckets(rangeMonthly, reportNow)

	require.Len(t, buckets, 12)
	assert.Equal(t, time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, "Sep", buckets[0].label)
	assert.Equal(t, "Aug", buckets[11].label)
	assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), buckets[11].start)
}

func TestReportBucketsYearly(t *testing.T) {
	start, buckets := reportBuckets(rangeYearly, reportNow)

	require.Len(t, buckets, 5)
	assert.Equal(t, time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, "2022", buckets[0].label)
	assert.Equal(t, "2026", buckets[4].label)
}

func TestReportBucketsUnknownRangeFallsBackToDaily(t *testing.T) {
	_, buckets := reportBuckets("fortnightly", reportNow)
	assert.Len(t, buckets, 7)
}

func TestFoldDayStatsDaily(t *testing.T) {
	_, buckets := reportBuckets(rangeDaily, reportNow)

	rows := []dayStat{
		{Date: "2026-08-29", Revenue: 100, Orders: 2},
		{Date: "2026-08-31", Revenue: 55, Orders: 1},
		{Date: "2026-08-10", Revenue: 999, Orders: 9}, // outside the window
	}

	points := foldDayStats(buckets, rows, time.UTC)
	require.Len(t, points, 7)

	var total float64
	for _, p := range points {
		total += p.Revenue
		switch p.FullDate {
		case "2026-08-29":
			assert.Equal(t, 100.0, p.Revenue)
			assert.Equal(t, 2, p.Orders)
		case "2026-08-31":
			assert.Equal(t, 55.0, p.Revenue)
			assert.Equal(t, 1, p.Orders)
		default:
			assert.Equal(t, 0.0, p.Revenue, "day %s should be zero-filled", p.FullDate)
			assert.Equal(t, 0, p.Orders)
		}
	}
	assert.Equal(t, 155.0, total, "out-of-window rows must be dropped")
}

func TestFoldDayStatsGroupsDaysIntoWeeks(t *testing.T) {
	_, buckets := reportBuckets(rangeWeekly, reportNow)

	// Both days fall in the week starting Sunday 2026-08-23.
	rows := []dayStat{
		{Date: "2026-08-24", Revenue: 40, Orders: 1},
		{Date: "2026-08-28", Revenue: 60, Orders: 2},
	}

	points := foldDayStats(buckets, rows, time.UTC)
	require.Len(t, points, 12)

	assert.Equal(t, "2026-08-23", points[10].FullDate)
	assert.Equal(t, 100.0, points[10].Revenue)
	assert.Equal(t, 3, points[10].Orders)

	assert.Equal(t, 0.0, points[11].Revenue, "current week has no orders")
}

func TestFoldDayStatsGroupsDaysIntoMonths(t *testing.T) {
	_, buckets := reportBuckets(rangeMonthly, reportNow)

	rows := []dayStat{
		{Date: "2026-07-04", Revenue: 20, Orders: 1},
		{Date: "2026-07-28", Revenue: 30, Orders: 1},
	}

	points := foldDayStats(buckets, rows, time.UTC)
	require.Len(t, points, 12)
	assert.Equal(t, "Jul", points[10].Name)
	assert.Equal(t, 50.0, points[10].Revenue)
	assert.Equal(t, 2, points[10].Orders)
}

func TestSundayWeek(t *testing.T) {
	// 2026-01-01 is a Thursday, so Jan 1-3 are week 0 and Sunday Jan 4
	// opens week 1.
	assert.Equal(t, 0, sundayWeek(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, sundayWeek(time.Date(2026, time.January, 3, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, sundayWeek(time.Date(2026, time.January, 4, 0, 0, 0, 0, time.UTC)))
}

func TestAverageOrderValue(t *testing.T) {
	assert.Equal(t, 0.0, averageOrderValue(0, 0))
	assert.Equal(t, 50.0, averageOrderValue(100, 2))
	assert.Equal(t, 33.0, averageOrderValue(100, 3)) // rounded
}

func TestRoundCurrency(t *testing.T) {
	assert.Equal(t, 100.0, roundCurrency(99.5))
	assert.Equal(t, 99.0, roundCurrency(99.4))
}
