package reconcile

import (
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/corona-loader/consts"
	"github.com/bitmark-inc/corona-loader/schema"
	"github.com/bitmark-inc/corona-loader/timeseries"
)

// Match - a snapshot record joined with its time series
type Match struct {
	Record schema.SnapshotRecord
	Series timeseries.RegionTimeSeries
}

type snapshotKey struct {
	country  string
	province string
	whole    bool
}

func keyOfRecord(r schema.SnapshotRecord) snapshotKey {
	if r.Province == nil || *r.Province == "" {
		return snapshotKey{country: r.Country, whole: true}
	}
	return snapshotKey{country: r.Country, province: *r.Province}
}

// candidates lists the snapshot keys a series may join, in preference
// order. The time series marks a whole country either with an empty
// province or by repeating the country name as province.
func candidates(k timeseries.RegionKey) []snapshotKey {
	switch k.Province {
	case "":
		return []snapshotKey{{country: k.Country, whole: true}}
	case k.Country:
		return []snapshotKey{
			{country: k.Country, province: k.Province},
			{country: k.Country, whole: true},
		}
	default:
		return []snapshotKey{{country: k.Country, province: k.Province}}
	}
}

// MatchSeries joins snapshot records with time series by country and
// province. A record joins at most one series and a series at most one
// record; the first series in order wins. Matches follow series order.
// Records repeating an already seen region, and records without a series,
// are left out and counted as unmatched.
func MatchSeries(snapshot []schema.SnapshotRecord, series []timeseries.RegionTimeSeries) ([]Match, int) {
	index := make(map[snapshotKey]int, len(snapshot))
	for i, r := range snapshot {
		k := keyOfRecord(r)
		if _, ok := index[k]; ok {
			log.WithFields(log.Fields{
				"prefix":   logPrefix,
				"country":  k.country,
				"province": k.province,
			}).Warn("duplicate snapshot region")
			continue
		}
		index[k] = i
	}

	used := make([]bool, len(snapshot))
	matches := make([]Match, 0, len(index))
	for _, s := range series {
		for _, k := range candidates(s.Key) {
			i, ok := index[k]
			if !ok || used[i] {
				continue
			}
			used[i] = true
			matches = append(matches, Match{Record: snapshot[i], Series: s})
			break
		}
	}

	unmatched := len(snapshot) - len(matches)
	if unmatched > 0 {
		for i, r := range snapshot {
			if used[i] {
				continue
			}
			k := keyOfRecord(r)
			log.WithFields(log.Fields{
				"prefix":   logPrefix,
				"country":  k.country,
				"province": k.province,
			}).Debug("snapshot region without time series")
		}
	}

	return matches, unmatched
}

// applyCarveouts re-homes regions published as countries of their own. A
// carve-out is skipped when the target country is already present as a
// whole-country record, so each region keeps a single record.
func applyCarveouts(matches []Match) []Match {
	present := make(map[string]bool)
	for _, m := range matches {
		if m.Record.Province == nil {
			present[m.Record.Country] = true
		}
	}

	result := make([]Match, 0, len(matches))
	for _, m := range matches {
		if m.Record.Province == nil {
			result = append(result, m)
			continue
		}

		c, ok := consts.FindCarveout(m.Record.Country, *m.Record.Province)
		if !ok {
			result = append(result, m)
			continue
		}

		if present[c.Country] {
			log.WithFields(log.Fields{
				"prefix":  logPrefix,
				"country": c.Country,
			}).Warn("carve-out target already reported as a country")
			result = append(result, m)
			continue
		}

		record := m.Record
		record.Country = c.Country
		record.Province = nil
		present[c.Country] = true

		log.WithFields(log.Fields{
			"prefix":    logPrefix,
			"sovereign": c.Sovereign,
			"country":   c.Country,
		}).Debug("carve out region")

		result = append(result, Match{Record: record, Series: m.Series})
	}

	return result
}
