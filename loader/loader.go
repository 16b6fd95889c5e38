// Package loader runs the fetch, reconcile and persist pipeline, on a
// schedule or on demand.
package loader

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
	"golang.org/x/sync/singleflight"

	"github.com/bitmark-inc/corona-loader/external/github"
	"github.com/bitmark-inc/corona-loader/external/gis"
	"github.com/bitmark-inc/corona-loader/reconcile"
	"github.com/bitmark-inc/corona-loader/schema"
	"github.com/bitmark-inc/corona-loader/store"
	"github.com/bitmark-inc/corona-loader/tabular"
	"github.com/bitmark-inc/corona-loader/timeseries"
	"github.com/bitmark-inc/corona-loader/utils"
)

const (
	logPrefix = "loader"
	runKey    = "run"
)

var ErrGuard = fmt.Errorf("source data incomplete")

// Outcome - how a run ended
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// Report - summary of one run
type Report struct {
	RunID      string    `json:"runId"`
	Start      time.Time `json:"start"`
	Seconds    float64   `json:"seconds"`
	Outcome    Outcome   `json:"outcome"`
	Error      string    `json:"error,omitempty"`
	Snapshot   int       `json:"snapshot"`
	Series     int       `json:"series"`
	Locations  int       `json:"locations"`
	Countries  int       `json:"countries"`
	Aggregates int       `json:"aggregates"`
	Unmatched  int       `json:"unmatched"`
	BadCells   int       `json:"badCells"`
}

// Loader - interface of the run pipeline
type Loader interface {
	Run(ctx context.Context) (*Report, error)
	Trigger(ctx context.Context) (*Report, error)
	Schedule(ctx context.Context)
	LastReport() *Report
}

type loader struct {
	snapshot gis.SnapshotSource
	series   github.SeriesSource
	store    store.CasesStore
	scope    tally.Scope

	interval time.Duration
	timeout  time.Duration
	location *time.Location
	now      func() time.Time

	group singleflight.Group
	lock  sync.RWMutex
	last  *Report
}

// fetched - raw inputs of a run, defaults where a source failed
type fetched struct {
	snapshot        []schema.SnapshotRecord
	confirmed       int64
	recovered       int64
	deaths          int64
	confirmedGlobal []byte
	deathsGlobal    []byte
	confirmedUS     []byte
	deathsUS        []byte
}

// Run - one full rebuild. Nothing is persisted unless every step succeeds;
// the returned report is set in every case.
func (l *loader) Run(ctx context.Context) (*Report, error) {
	start := l.now()
	report := &Report{
		RunID: uuid.New().String(),
		Start: start,
	}

	logger := log.WithFields(log.Fields{"prefix": logPrefix, "run": report.RunID})
	logger.Info("run started")

	err := l.run(ctx, report)

	report.Seconds = l.now().Sub(start).Seconds()
	switch {
	case nil == err:
		report.Outcome = OutcomeSuccess
		logger.WithFields(log.Fields{
			"locations": report.Locations,
			"countries": report.Countries,
			"seconds":   report.Seconds,
		}).Info("run finished")
	case errors.Is(err, ErrGuard):
		report.Outcome = OutcomeSkipped
		report.Error = err.Error()
		logger.WithError(err).Warn("run skipped")
	default:
		report.Outcome = OutcomeFailed
		report.Error = err.Error()
		logger.WithError(err).Error("run failed")
		sentry.CaptureException(err)
	}

	l.scope.Tagged(map[string]string{"outcome": string(report.Outcome)}).Counter("runs").Inc(1)
	l.scope.Timer("run_duration").Record(l.now().Sub(start))

	l.lock.Lock()
	l.last = report
	l.lock.Unlock()

	return report, err
}

func (l *loader) run(ctx context.Context, report *Report) error {
	in := l.fetch(ctx)
	report.Snapshot = len(in.snapshot)

	var global *timeseries.Result
	if in.confirmedGlobal != nil && in.deathsGlobal != nil {
		r, err := buildSeries(in.confirmedGlobal, in.deathsGlobal)
		if nil != err {
			return fmt.Errorf("global time series: %w", err)
		}
		global = r
		report.BadCells += r.BadCells
	}

	if err := guard(in, global); nil != err {
		return err
	}

	series := global.Regions
	if in.confirmedUS != nil && in.deathsUS != nil {
		r, err := buildSeries(in.confirmedUS, in.deathsUS)
		if nil != err {
			return fmt.Errorf("US time series: %w", err)
		}
		report.BadCells += r.BadCells
		series = append(series, timeseries.ConsolidateStates(r.Regions)...)
	} else {
		log.WithFields(log.Fields{"prefix": logPrefix}).Warn("US time series unavailable, states omitted")
	}
	report.Series = len(series)

	// today takes the label format of the series columns
	reference := ""
	if n := len(global.Global); n > 0 {
		reference = global.Global[n-1].Day
	}

	now := l.now()
	out := reconcile.Reconcile(reconcile.Input{
		Snapshot:           in.snapshot,
		Series:             series,
		Global:             global.Global,
		DaysSinceFirstCase: global.DaysSinceFirstCase,
		Totals: reconcile.LiveTotals{
			Confirmed: in.confirmed,
			Recovered: in.recovered,
			Deaths:    in.deaths,
		},
		Today: utils.DayLabelLike(now, l.location, reference),
		Now:   now,
	})

	report.Locations = len(out.Locations)
	report.Countries = len(out.Totals.AllCountries)
	report.Aggregates = out.Aggregates
	report.Unmatched = out.Unmatched

	l.scope.Gauge("locations").Update(float64(report.Locations))
	l.scope.Gauge("countries").Update(float64(report.Countries))
	l.scope.Counter("unmatched").Inc(int64(report.Unmatched))
	l.scope.Counter("bad_cells").Inc(int64(report.BadCells))

	if err := l.store.ReplaceCases(out.Totals, out.Locations); nil != err {
		return fmt.Errorf("persist: %w", err)
	}

	return nil
}

// fetch reads every source, substituting the default of a source that
// fails
func (l *loader) fetch(ctx context.Context) fetched {
	var in fetched

	l.step(ctx, "snapshot", func(ctx context.Context) (err error) {
		in.snapshot, err = l.snapshot.Cases(ctx)
		return
	})

	totals := []struct {
		total gis.Total
		value *int64
	}{
		{gis.TotalConfirmed, &in.confirmed},
		{gis.TotalRecovered, &in.recovered},
		{gis.TotalDeaths, &in.deaths},
	}
	for _, t := range totals {
		t := t
		l.step(ctx, string(t.total), func(ctx context.Context) (err error) {
			*t.value, err = l.snapshot.Total(ctx, t.total)
			return
		})
	}

	datasets := []struct {
		ds      github.Dataset
		payload *[]byte
	}{
		{github.ConfirmedGlobal, &in.confirmedGlobal},
		{github.DeathsGlobal, &in.deathsGlobal},
		{github.ConfirmedUS, &in.confirmedUS},
		{github.DeathsUS, &in.deathsUS},
	}
	for _, d := range datasets {
		d := d
		l.step(ctx, string(d.ds), func(ctx context.Context) (err error) {
			*d.payload, err = l.series.Get(ctx, d.ds)
			return
		})
	}

	return in
}

// step runs one fetch under the per-step timeout. A failed fetch leaves the
// zero value in place.
func (l *loader) step(ctx context.Context, source string, fn func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	if err := fn(ctx); nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "source": source, "error": err}).Error("fetch failed, using default")
		l.scope.Tagged(map[string]string{"source": source}).Counter("fetch_errors").Inc(1)
	}
}

// guard refuses runs with incomplete inputs, the previous data stays
func guard(in fetched, global *timeseries.Result) error {
	switch {
	case len(in.snapshot) == 0:
		return fmt.Errorf("%w: empty snapshot", ErrGuard)
	case global == nil:
		return fmt.Errorf("%w: no time series", ErrGuard)
	case in.confirmed <= 0 || in.recovered <= 0 || in.deaths <= 0:
		return fmt.Errorf("%w: totals confirmed %d, recovered %d, deaths %d", ErrGuard, in.confirmed, in.recovered, in.deaths)
	}
	return nil
}

func buildSeries(confirmed, deaths []byte) (*timeseries.Result, error) {
	confirmedRows, err := regions(confirmed)
	if nil != err {
		return nil, fmt.Errorf("confirmed: %w", err)
	}

	deathsRows, err := regions(deaths)
	if nil != err {
		return nil, fmt.Errorf("deaths: %w", err)
	}

	return timeseries.Build(confirmedRows, deathsRows)
}

func regions(payload []byte) ([]tabular.RegionRow, error) {
	t, err := tabular.Parse(payload)
	if nil != err {
		return nil, err
	}

	rows, err := t.Regions()
	if nil != err {
		return nil, err
	}
	tabular.SortByProvincePresence(rows)

	return rows, nil
}

// Trigger - run unless a run is in progress, in which case wait for that
// one and share its result
func (l *loader) Trigger(ctx context.Context) (*Report, error) {
	v, err, shared := l.group.Do(runKey, func() (interface{}, error) {
		return l.Run(ctx)
	})
	if shared {
		log.WithFields(log.Fields{"prefix": logPrefix}).Debug("joined run in progress")
	}

	report, _ := v.(*Report)
	return report, err
}

// Schedule - run now and then once every interval until ctx is done
func (l *loader) Schedule(ctx context.Context) {
	var wg sync.WaitGroup
	defer wg.Wait()

	trigger := func() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = l.Trigger(ctx)
		}()
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "interval": l.interval}).Info("schedule started")
	trigger()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.WithFields(log.Fields{"prefix": logPrefix}).Info("schedule stopped")
			return
		case <-ticker.C:
			trigger()
		}
	}
}

// LastReport - report of the latest finished run, nil before the first one
func (l *loader) LastReport() *Report {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.last
}

// New - new loader
func New(cfg Config, snapshot gis.SnapshotSource, series github.SeriesSource, s store.CasesStore, scope tally.Scope) Loader {
	if scope == nil {
		scope = tally.NoopScope
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = DefaultFetchTimeout
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}

	return &loader{
		snapshot: snapshot,
		series:   series,
		store:    s,
		scope:    scope.SubScope(logPrefix),
		interval: cfg.Interval,
		timeout:  cfg.FetchTimeout,
		location: cfg.Location,
		now:      time.Now,
	}
}
