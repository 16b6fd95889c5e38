package reconcile

import (
	"github.com/bitmark-inc/corona-loader/consts"
	"github.com/bitmark-inc/corona-loader/schema"
	"github.com/bitmark-inc/corona-loader/timeseries"
	"github.com/bitmark-inc/corona-loader/utils"
)

type countryGroup struct {
	country   string
	members   []Match
	aggregate bool
}

// groupByCountry groups matches by country in order of first appearance and
// decides which countries are published as aggregates: those with two or
// more records, and forced countries with at least one province record.
func groupByCountry(matches []Match) []*countryGroup {
	groups := make([]*countryGroup, 0)
	byCountry := make(map[string]*countryGroup)

	for _, m := range matches {
		g, ok := byCountry[m.Record.Country]
		if !ok {
			g = &countryGroup{country: m.Record.Country}
			byCountry[m.Record.Country] = g
			groups = append(groups, g)
		}
		g.members = append(g.members, m)
	}

	for _, g := range groups {
		if len(g.members) >= 2 {
			g.aggregate = true
			continue
		}
		if consts.ForceAggregate(g.country) && g.members[0].Record.Province != nil {
			g.aggregate = true
		}
	}

	return groups
}

// buildLocation computes the final record of one matched region. The
// whole-country record of an aggregated country is labelled mainland so it
// is listed as a province and keeps an identifier of its own.
func buildLocation(m Match, aggregated bool) schema.LocationCases {
	r := m.Record

	var province *string
	label := ""
	switch {
	case r.Province != nil && *r.Province != "":
		p := *r.Province
		province, label = &p, p
	case aggregated:
		p := consts.Mainland
		province, label = &p, p
	}

	cases := make([]schema.DailyCount, len(m.Series.CasesByDate))
	copy(cases, m.Series.CasesByDate)

	loc := schema.LocationCases{
		IDKey:         utils.IDKey(r.Country, label),
		Country:       r.Country,
		Province:      province,
		CountryCode:   consts.CountryCode(r.Country),
		Confirmed:     r.Confirmed,
		Active:        r.Active,
		Recovered:     r.Recovered,
		Deaths:        r.Deaths,
		LastUpdate:    r.LastUpdate,
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
		ProvincesList: []schema.ProvinceRef{},
		CasesByDate:   cases,
	}
	loc.ConfirmedToday, loc.DeathsToday = todayDeltas(loc.Confirmed, loc.Deaths, loc.CasesByDate)

	return loc
}

// aggregateCountry folds the province records of a country into one
// country level record.
func aggregateCountry(country string, children []schema.LocationCases) schema.LocationCases {
	agg := schema.LocationCases{
		IDKey:         utils.IDKey(country, ""),
		Country:       country,
		CountryCode:   consts.CountryCode(country),
		HasProvince:   true,
		ProvincesList: make([]schema.ProvinceRef, 0, len(children)),
	}

	series := make([][]schema.DailyCount, 0, len(children))
	for i, c := range children {
		if i == 0 {
			agg.Latitude = c.Latitude
			agg.Longitude = c.Longitude
		}
		if c.LastUpdate > agg.LastUpdate {
			agg.LastUpdate = c.LastUpdate
		}

		agg.Confirmed += c.Confirmed
		agg.Active += c.Active
		agg.Recovered += c.Recovered
		agg.Deaths += c.Deaths

		province := ""
		if c.Province != nil {
			province = *c.Province
		}
		agg.ProvincesList = append(agg.ProvincesList, schema.ProvinceRef{
			IDKey:    c.IDKey,
			Province: province,
		})
		series = append(series, c.CasesByDate)
	}

	agg.CasesByDate = timeseries.Sum(series...)
	agg.ConfirmedToday, agg.DeathsToday = todayDeltas(agg.Confirmed, agg.Deaths, agg.CasesByDate)

	return agg
}

// todayDeltas - live totals against the cumulative counts of the day before
// the latest day of the series; zero without such a day. A live total
// below the history gives a negative delta.
func todayDeltas(confirmed, deaths int64, counts []schema.DailyCount) (int64, int64) {
	prev, ok := timeseries.SecondToLast(counts)
	if !ok {
		return 0, 0
	}
	return confirmed - prev.Confirmed, deaths - prev.Deaths
}
