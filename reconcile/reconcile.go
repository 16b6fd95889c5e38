// Package reconcile joins the live snapshot with the time series and rolls
// the result up into per-location records and global totals.
package reconcile

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/corona-loader/schema"
	"github.com/bitmark-inc/corona-loader/timeseries"
)

const logPrefix = "reconcile"

// Input - everything one run reconciles
type Input struct {
	Snapshot           []schema.SnapshotRecord
	Series             []timeseries.RegionTimeSeries
	Global             []schema.DailyCount
	DaysSinceFirstCase int
	Totals             LiveTotals
	Today              string
	Now                time.Time
}

// Output - documents of both collections and run counters
type Output struct {
	Totals     schema.Totals
	Locations  []schema.LocationCases
	Matched    int
	Unmatched  int
	Aggregates int
}

// Reconcile builds the two aggregates of a run. Region records come first in
// series order, followed by one aggregate per split country.
func Reconcile(in Input) *Output {
	matches, unmatched := MatchSeries(in.Snapshot, in.Series)
	matches = applyCarveouts(matches)
	groups := groupByCountry(matches)

	aggregated := make(map[string]bool, len(groups))
	for _, g := range groups {
		aggregated[g.country] = g.aggregate
	}

	locations := make([]schema.LocationCases, 0, len(matches)+len(groups))
	children := make(map[string][]schema.LocationCases)
	for _, m := range matches {
		loc := buildLocation(m, aggregated[m.Record.Country])
		locations = append(locations, loc)
		if aggregated[loc.Country] {
			children[loc.Country] = append(children[loc.Country], loc)
		}
	}

	aggregates := 0
	for _, g := range groups {
		if !g.aggregate {
			continue
		}
		locations = append(locations, aggregateCountry(g.country, children[g.country]))
		aggregates++
	}

	totals := Rollup(locations, in.Totals, in.Global, in.DaysSinceFirstCase, in.Today, in.Now)

	log.WithFields(log.Fields{
		"prefix":     logPrefix,
		"locations":  len(locations),
		"countries":  len(totals.AllCountries),
		"aggregates": aggregates,
		"snapshot":   len(in.Snapshot),
		"series":     len(in.Series),
		"unmatched":  unmatched,
	}).Info("reconciled snapshot with time series")

	return &Output{
		Totals:     totals,
		Locations:  locations,
		Matched:    len(matches),
		Unmatched:  unmatched,
		Aggregates: aggregates,
	}
}
