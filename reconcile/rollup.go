package reconcile

import (
	"time"

	"github.com/bitmark-inc/corona-loader/schema"
	"github.com/bitmark-inc/corona-loader/timeseries"
)

// LiveTotals - global totals from the live feed
type LiveTotals struct {
	Confirmed int64
	Recovered int64
	Deaths    int64
}

type dayBuckets struct {
	days  []schema.DayCases
	index map[string]int
}

func (b *dayBuckets) add(day string, c schema.DayCase) {
	i, ok := b.index[day]
	if !ok {
		i = len(b.days)
		b.index[day] = i
		b.days = append(b.days, schema.DayCases{Day: day, CasesOfTheDay: []schema.DayCase{}})
	}
	b.days[i].CasesOfTheDay = append(b.days[i].CasesOfTheDay, c)
}

// topLevel - the aggregate of a split country, or the only record of a
// country that is not split, whatever its province
func topLevel(locations []schema.LocationCases) []schema.LocationCases {
	split := make(map[string]bool)
	for _, loc := range locations {
		if loc.HasProvince {
			split[loc.Country] = true
		}
	}

	top := make([]schema.LocationCases, 0, len(locations))
	for _, loc := range locations {
		if split[loc.Country] && !loc.HasProvince {
			continue
		}
		top = append(top, loc)
	}
	return top
}

// CrossSection lists, for every day, the counts of every top level location
// (countries and country aggregates, not their provinces). Days are ordered
// by first appearance. The today bucket holds live totals instead of the
// time series tail; an empty today skips it.
func CrossSection(locations []schema.LocationCases, today string) []schema.DayCases {
	buckets := &dayBuckets{index: map[string]int{}}
	locations = topLevel(locations)

	for _, loc := range locations {
		for _, d := range loc.CasesByDate {
			if d.Day == today {
				continue
			}
			buckets.add(d.Day, schema.DayCase{
				IDKey:          loc.IDKey,
				Country:        loc.Country,
				CountryCode:    loc.CountryCode,
				Confirmed:      d.Confirmed,
				Deaths:         d.Deaths,
				ConfirmedToday: d.ConfirmedNew,
				DeathsToday:    d.DeathsNew,
			})
		}
	}

	if today != "" {
		for _, loc := range locations {
			buckets.add(today, schema.DayCase{
				IDKey:          loc.IDKey,
				Country:        loc.Country,
				CountryCode:    loc.CountryCode,
				Confirmed:      loc.Confirmed,
				Deaths:         loc.Deaths,
				ConfirmedToday: loc.ConfirmedToday,
				DeathsToday:    loc.DeathsToday,
			})
		}
	}

	return buckets.days
}

// Rollup assembles the global totals document
func Rollup(locations []schema.LocationCases, live LiveTotals, global []schema.DailyCount, daysSinceFirstCase int, today string, now time.Time) schema.Totals {
	totals := schema.Totals{
		Confirmed:                  live.Confirmed,
		Recovered:                  live.Recovered,
		Deaths:                     live.Deaths,
		Active:                     live.Confirmed - (live.Recovered + live.Deaths),
		DaysSinceFirstCase:         daysSinceFirstCase,
		AllCountries:               allCountries(locations),
		TimeSeriesTotalCasesByDate: global,
		GlobalCasesByDate:          CrossSection(locations, today),
		TimeStamp:                  now,
	}
	if totals.TimeSeriesTotalCasesByDate == nil {
		totals.TimeSeriesTotalCasesByDate = []schema.DailyCount{}
	}

	if prev, ok := timeseries.SecondToLast(global); ok {
		totals.ConfirmedToday = live.Confirmed - prev.Confirmed
		totals.DeathsToday = live.Deaths - prev.Deaths
	}

	return totals
}

func allCountries(locations []schema.LocationCases) []string {
	seen := make(map[string]bool)
	countries := make([]string, 0)
	for _, loc := range locations {
		if seen[loc.Country] {
			continue
		}
		seen[loc.Country] = true
		countries = append(countries, loc.Country)
	}
	return countries
}
