// Package gis reads the live snapshot feed: current totals per region and
// the three global totals, as published by the JHU feature service.
package gis

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/corona-loader/external"
	"github.com/bitmark-inc/corona-loader/schema"
)

const (
	logPrefix = "gis"
)

var (
	ErrNoFeatures = fmt.Errorf("no features in response")
	ErrUnknownURL = fmt.Errorf("no url for total")
)

// Total - one of the global totals endpoints
type Total string

const (
	TotalConfirmed Total = "confirmed"
	TotalRecovered Total = "recovered"
	TotalDeaths    Total = "deaths"
)

// URLs - feature service queries of the snapshot feed
type URLs struct {
	Cases     string `validate:"required,url"`
	Confirmed string `validate:"required,url"`
	Recovered string `validate:"required,url"`
	Deaths    string `validate:"required,url"`
}

// SnapshotSource - interface to read the live snapshot
type SnapshotSource interface {
	Cases(ctx context.Context) ([]schema.SnapshotRecord, error)
	Total(ctx context.Context, t Total) (int64, error)
}

type caseAttributes struct {
	Country    string   `json:"Country_Region"`
	Province   *string  `json:"Province_State"`
	Confirmed  *float64 `json:"Confirmed"`
	Active     *float64 `json:"Active"`
	Recovered  *float64 `json:"Recovered"`
	Deaths     *float64 `json:"Deaths"`
	LastUpdate *float64 `json:"Last_Update"`
	Latitude   *float64 `json:"Lat"`
	Longitude  *float64 `json:"Long_"`
}

type totalAttributes struct {
	Value *float64 `json:"value"`
}

type caseResponse struct {
	Features []struct {
		Attributes caseAttributes `json:"attributes"`
	} `json:"features"`
}

type totalResponse struct {
	Features []struct {
		Attributes totalAttributes `json:"attributes"`
	} `json:"features"`
}

type gis struct {
	client *http.Client
	urls   URLs
}

// Cases - current totals per region. A blank province is reported as nil,
// records carrying a negative count are dropped.
func (g gis) Cases(ctx context.Context) ([]schema.SnapshotRecord, error) {
	data, err := external.Get(ctx, g.client, g.urls.Cases)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": g.urls.Cases, "error": err}).Error("get snapshot cases")
		return nil, err
	}

	var r caseResponse
	if err := json.Unmarshal(data, &r); nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("decode snapshot cases")
		return nil, err
	}

	records := make([]schema.SnapshotRecord, 0, len(r.Features))
	for _, f := range r.Features {
		a := f.Attributes
		record := schema.SnapshotRecord{
			Country:    strings.TrimSpace(a.Country),
			Province:   province(a.Province),
			Confirmed:  count(a.Confirmed),
			Active:     count(a.Active),
			Recovered:  count(a.Recovered),
			Deaths:     count(a.Deaths),
			LastUpdate: count(a.LastUpdate),
			Latitude:   coordinate(a.Latitude),
			Longitude:  coordinate(a.Longitude),
		}

		if record.Country == "" {
			log.WithFields(log.Fields{"prefix": logPrefix}).Warn("snapshot record without country")
			continue
		}

		if record.Confirmed < 0 || record.Recovered < 0 || record.Deaths < 0 {
			log.WithFields(log.Fields{
				"prefix":    logPrefix,
				"country":   record.Country,
				"confirmed": record.Confirmed,
				"recovered": record.Recovered,
				"deaths":    record.Deaths,
			}).Warn("negative count in snapshot record")
			continue
		}

		records = append(records, record)
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "records": len(records)}).Debug("snapshot cases")

	return records, nil
}

// Total - one global total, the value of the first feature
func (g gis) Total(ctx context.Context, t Total) (int64, error) {
	var url string
	switch t {
	case TotalConfirmed:
		url = g.urls.Confirmed
	case TotalRecovered:
		url = g.urls.Recovered
	case TotalDeaths:
		url = g.urls.Deaths
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownURL, t)
	}

	data, err := external.Get(ctx, g.client, url)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "total": t, "error": err}).Error("get total")
		return 0, err
	}

	var r totalResponse
	if err := json.Unmarshal(data, &r); nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "total": t, "error": err}).Error("decode total")
		return 0, err
	}

	if len(r.Features) == 0 {
		return 0, fmt.Errorf("%w: %s", ErrNoFeatures, t)
	}

	return count(r.Features[0].Attributes.Value), nil
}

func province(p *string) *string {
	if p == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*p)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func count(v *float64) int64 {
	if v == nil {
		return 0
	}
	return int64(*v)
}

func coordinate(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// New - new snapshot feed client
func New(client *http.Client, urls URLs) SnapshotSource {
	if client == nil {
		client = http.DefaultClient
	}

	return &gis{
		client: client,
		urls:   urls,
	}
}
