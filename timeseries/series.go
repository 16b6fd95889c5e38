// Package timeseries builds per-region daily series out of the cumulative
// confirmed and deaths tables.
package timeseries

import (
	"github.com/bitmark-inc/corona-loader/schema"
)

const logPrefix = "timeseries"

// RegionKey - identity of a series. An empty province is the country as a
// whole; County is only set on sub-state rows.
type RegionKey struct {
	Country  string
	Province string
	County   string
}

// RegionTimeSeries - daily counts of one region, oldest first
type RegionTimeSeries struct {
	Key         RegionKey
	Latitude    float64
	Longitude   float64
	CasesByDate []schema.DailyCount
}

// Result - output of Build
type Result struct {
	Regions            []RegionTimeSeries
	Global             []schema.DailyCount
	Confirmed          int64
	Deaths             int64
	DaysSinceFirstCase int
	BadCells           int
}

// WithDeltas returns a copy of counts with the new cases of every day set
// to the increase over the day before. The first day has no new cases and a
// decreasing cumulative count yields zero, never a negative value.
func WithDeltas(counts []schema.DailyCount) []schema.DailyCount {
	result := make([]schema.DailyCount, len(counts))
	for i, c := range counts {
		c.ConfirmedNew = 0
		c.DeathsNew = 0
		if i > 0 {
			c.ConfirmedNew = nonNegative(c.Confirmed - counts[i-1].Confirmed)
			c.DeathsNew = nonNegative(c.Deaths - counts[i-1].Deaths)
		}
		result[i] = c
	}
	return result
}

// Sum adds series day by day, matching days by label. Days are ordered by
// first appearance; a series without a day contributes nothing to it. The
// new cases of the sum are derived again from the summed counts.
func Sum(series ...[]schema.DailyCount) []schema.DailyCount {
	acc := newDayAccumulator()
	for _, s := range series {
		for _, c := range s {
			acc.add(c.Day, c.Confirmed, c.Deaths)
		}
	}
	return WithDeltas(acc.counts())
}

// SecondToLast - the cumulative count of the day before the latest one,
// false if the series is shorter than two days
func SecondToLast(counts []schema.DailyCount) (schema.DailyCount, bool) {
	if len(counts) < 2 {
		return schema.DailyCount{}, false
	}
	return counts[len(counts)-2], true
}

func nonNegative(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}

type dayAccumulator struct {
	days  []schema.DailyCount
	index map[string]int
}

func newDayAccumulator() *dayAccumulator {
	return &dayAccumulator{index: map[string]int{}}
}

func (a *dayAccumulator) add(day string, confirmed, deaths int64) {
	i, ok := a.index[day]
	if !ok {
		i = len(a.days)
		a.index[day] = i
		a.days = append(a.days, schema.DailyCount{Day: day})
	}
	a.days[i].Confirmed += confirmed
	a.days[i].Deaths += deaths
}

func (a *dayAccumulator) counts() []schema.DailyCount {
	return a.days
}
