package timeseries

import (
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/corona-loader/schema"
	"github.com/bitmark-inc/corona-loader/tabular"
)

var (
	ErrLengthMismatch = fmt.Errorf("confirmed and deaths tables differ in length")
	ErrRowMismatch    = fmt.Errorf("confirmed and deaths rows describe different regions")
)

// Build merges the confirmed and deaths tables into one series per region.
//
// Row i of confirmed and row i of deaths must describe the same region; both
// tables are expected to be sorted with tabular.SortByProvincePresence. The
// pairing is checked on every row and Build fails without output on the
// first mismatch, as it does when the tables differ in length.
//
// Run totals come from the last date column only. A negative cell is logged
// and kept as reported.
func Build(confirmed, deaths []tabular.RegionRow) (*Result, error) {
	if len(confirmed) != len(deaths) {
		log.WithFields(log.Fields{
			"prefix":    logPrefix,
			"confirmed": len(confirmed),
			"deaths":    len(deaths),
		}).Error("csv data from multiple sources differs in length")
		return nil, fmt.Errorf("%w: %d confirmed rows, %d deaths rows", ErrLengthMismatch, len(confirmed), len(deaths))
	}

	result := &Result{
		Regions: make([]RegionTimeSeries, 0, len(confirmed)),
	}
	global := newDayAccumulator()

	for i := range confirmed {
		c, d := confirmed[i], deaths[i]
		key := keyOf(c)
		if key != keyOf(d) {
			log.WithFields(log.Fields{
				"prefix":    logPrefix,
				"row":       i,
				"confirmed": key,
				"deaths":    keyOf(d),
			}).Error("rows are not aligned")
			return nil, fmt.Errorf("%w: row %d %v != %v", ErrRowMismatch, i, key, keyOf(d))
		}

		deathCells := make(map[string]string, len(d.Cells))
		for _, cell := range d.Cells {
			deathCells[cell.Day] = cell.Raw
		}

		series := RegionTimeSeries{
			Key:       key,
			Latitude:  c.Latitude,
			Longitude: c.Longitude,
		}

		for j, cell := range c.Cells {
			confirmedCount := parseCount(cell.Raw, key, cell.Day)
			deathCount := parseCount(deathCells[cell.Day], key, cell.Day)

			if confirmedCount < 0 || deathCount < 0 {
				result.BadCells++
				log.WithFields(log.Fields{
					"prefix":    logPrefix,
					"country":   key.Country,
					"province":  key.Province,
					"county":    key.County,
					"day":       cell.Day,
					"confirmed": confirmedCount,
					"deaths":    deathCount,
				}).Warn("negative count")
			}

			series.CasesByDate = append(series.CasesByDate, schema.DailyCount{
				Day:       cell.Day,
				Confirmed: confirmedCount,
				Deaths:    deathCount,
			})
			global.add(cell.Day, confirmedCount, deathCount)

			if j == len(c.Cells)-1 {
				result.Confirmed += confirmedCount
				result.Deaths += deathCount
			}
		}

		series.CasesByDate = WithDeltas(series.CasesByDate)
		result.Regions = append(result.Regions, series)

		if len(c.Cells) > result.DaysSinceFirstCase {
			result.DaysSinceFirstCase = len(c.Cells)
		}
	}

	if result.BadCells > 0 {
		log.WithFields(log.Fields{"prefix": logPrefix, "cells": result.BadCells}).Warn("found bad cells")
	}

	result.Global = WithDeltas(global.counts())
	return result, nil
}

func keyOf(r tabular.RegionRow) RegionKey {
	return RegionKey{
		Country:  r.Country,
		Province: r.Province,
		County:   r.County,
	}
}

// parseCount reads a cell as an integer. Empty cells are zero, decimals are
// truncated and anything else is logged and counted as zero.
func parseCount(raw string, key RegionKey, day string) int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}

	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return int64(f)
	}

	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"country": key.Country,
		"day":     day,
		"value":   raw,
	}).Warn("unparsable count")
	return 0
}
