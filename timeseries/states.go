package timeseries

import (
	log "github.com/sirupsen/logrus"
)

// ConsolidateStates sums sub-state series (counties) into one series per
// state, keyed by country and state with no county. Days are matched by label,
// so a county lacking a day adds zero to that day. States keep the order in
// which they first appear and take the coordinates of their first county
// with known coordinates.
func ConsolidateStates(counties []RegionTimeSeries) []RegionTimeSeries {
	type state struct {
		series RegionTimeSeries
		acc    *dayAccumulator
	}

	order := make([]RegionKey, 0)
	states := make(map[RegionKey]*state)

	for _, c := range counties {
		key := RegionKey{Country: c.Key.Country, Province: c.Key.Province}
		s, ok := states[key]
		if !ok {
			s = &state{
				series: RegionTimeSeries{Key: key},
				acc:    newDayAccumulator(),
			}
			states[key] = s
			order = append(order, key)
		}

		if s.series.Latitude == 0 && s.series.Longitude == 0 {
			s.series.Latitude = c.Latitude
			s.series.Longitude = c.Longitude
		}

		for _, day := range c.CasesByDate {
			s.acc.add(day.Day, day.Confirmed, day.Deaths)
		}
	}

	result := make([]RegionTimeSeries, 0, len(order))
	for _, key := range order {
		s := states[key]
		s.series.CasesByDate = WithDeltas(s.acc.counts())
		result = append(result, s.series)
	}

	log.WithFields(log.Fields{
		"prefix":   logPrefix,
		"counties": len(counties),
		"states":   len(result),
	}).Debug("consolidate states")

	return result
}
