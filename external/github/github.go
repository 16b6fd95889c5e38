// Package github reads the JHU CSSE time series files from their github
// repository.
package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/corona-loader/external"
)

const (
	logPrefix = "github"

	// DefaultBaseURL - raw content of the CSSE time series directory
	DefaultBaseURL = "https://raw.githubusercontent.com/CSSEGISandData/COVID-19/master/csse_covid_19_data/csse_covid_19_time_series"
)

var ErrUnknownDataset = fmt.Errorf("unknown dataset")

// Dataset - one time series file
type Dataset string

const (
	ConfirmedGlobal Dataset = "confirmed_global"
	DeathsGlobal    Dataset = "deaths_global"
	ConfirmedUS     Dataset = "confirmed_US"
	DeathsUS        Dataset = "deaths_US"
)

// SeriesSource - interface to read time series files
type SeriesSource interface {
	Get(ctx context.Context, ds Dataset) ([]byte, error)
}

type github struct {
	client  *http.Client
	baseURL string
}

// URL - location of a dataset file
func (g github) URL(ds Dataset) string {
	return fmt.Sprintf("%s/time_series_covid19_%s.csv", g.baseURL, ds)
}

// Get - raw csv payload of a dataset
func (g github) Get(ctx context.Context, ds Dataset) ([]byte, error) {
	switch ds {
	case ConfirmedGlobal, DeathsGlobal, ConfirmedUS, DeathsUS:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDataset, ds)
	}

	url := g.URL(ds)
	data, err := external.Get(ctx, g.client, url)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "dataset": ds, "error": err}).Error("get time series")
		return nil, err
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "dataset": ds, "bytes": len(data)}).Debug("time series")

	return data, nil
}

// New - new time series client, an empty base url falls back to the CSSE
// repository
func New(client *http.Client, baseURL string) SeriesSource {
	u := DefaultBaseURL
	if baseURL != "" {
		u = strings.TrimRight(baseURL, "/")
	}

	if client == nil {
		client = http.DefaultClient
	}

	return &github{
		client:  client,
		baseURL: u,
	}
}
