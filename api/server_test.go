package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/corona-loader/api/mocks"
	"github.com/bitmark-inc/corona-loader/loader"
	"github.com/bitmark-inc/corona-loader/schema"
	"github.com/bitmark-inc/corona-loader/store"
)

const adminKey = "admin-key"

type testServer struct {
	ctl    *gomock.Controller
	store  *mocks.MockMongoStore
	loader *mocks.MockLoader
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)
	viper.Set("server.apikey.admin", adminKey)

	ctl := gomock.NewController(t)
	m := mocks.NewMockMongoStore(ctl)
	l := mocks.NewMockLoader(ctl)

	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("corona_loader_runs 1\n"))
	})

	s := NewServer(m, l, metrics)
	return &testServer{
		ctl:    ctl,
		store:  m,
		loader: l,
		router: s.setupRouter(),
	}
}

func (ts *testServer) do(method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	return resp
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	defer ts.ctl.Finish()

	ts.store.EXPECT().Ping().Return(nil).Times(1)
	w := ts.do("GET", "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	ts.store.EXPECT().Ping().Return(fmt.Errorf("server selection timeout")).Times(1)
	w = ts.do("GET", "/healthz", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code, "wrong status code")
	assert.Equal(t, errorInternalServer, decodeError(t, w), "wrong error")
}

func TestGetTotals(t *testing.T) {
	ts := newTestServer(t)
	defer ts.ctl.Finish()

	totals := schema.Totals{
		Confirmed:    240,
		Recovered:    32,
		Deaths:       13,
		Active:       195,
		AllCountries: []string{"France", "Italy"},
		TimeStamp:    time.Date(2020, 3, 4, 12, 0, 0, 0, time.UTC),
	}
	ts.store.EXPECT().GetTotals().Return(&totals, nil).Times(1)

	w := ts.do("GET", "/api/totals", nil)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp schema.Totals
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, totals.Confirmed, jResp.Confirmed, "wrong data")
	assert.Equal(t, totals.AllCountries, jResp.AllCountries, "wrong data")
	assert.True(t, totals.TimeStamp.Equal(jResp.TimeStamp), "wrong time stamp")
}

func TestGetTotalsBeforeFirstRun(t *testing.T) {
	ts := newTestServer(t)
	defer ts.ctl.Finish()

	ts.store.EXPECT().GetTotals().Return(nil, store.ErrNoTotals).Times(1)

	w := ts.do("GET", "/api/totals", nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
	assert.Equal(t, errorNoTotals, decodeError(t, w), "wrong error")
}

func TestGetLocations(t *testing.T) {
	ts := newTestServer(t)
	defer ts.ctl.Finish()

	mainland := "mainland"
	locations := []schema.LocationCases{
		{IDKey: "france", Country: "France", Confirmed: 132, HasProvince: true},
		{IDKey: "france-mainland", Country: "France", Province: &mainland, Confirmed: 120},
	}
	ts.store.EXPECT().GetLocations("France").Return(locations, nil).Times(1)
	ts.store.EXPECT().GetLocations("").Return([]schema.LocationCases{}, nil).Times(1)

	w := ts.do("GET", "/api/locations?country=France", nil)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Locations []schema.LocationCases `json:"locations"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Len(t, jResp.Locations, 2, "wrong data")
	assert.Nil(t, jResp.Locations[0].Province, "wrong province")
	assert.Equal(t, "mainland", *jResp.Locations[1].Province, "wrong province")

	w = ts.do("GET", "/api/locations", nil)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	assert.JSONEq(t, `{"locations":[]}`, w.Body.String())
}

func TestGetLocation(t *testing.T) {
	ts := newTestServer(t)
	defer ts.ctl.Finish()

	ts.store.EXPECT().GetLocation("korea-south").Return(&schema.LocationCases{
		IDKey:       "korea-south",
		Country:     "Korea, South",
		CountryCode: "KOR",
	}, nil).Times(1)
	ts.store.EXPECT().GetLocation("atlantis").Return(nil, store.ErrLocationNotFound).Times(1)

	w := ts.do("GET", "/api/locations/Korea-South", nil)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp schema.LocationCases
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "KOR", jResp.CountryCode, "wrong data")

	w = ts.do("GET", "/api/locations/atlantis", nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
	assert.Equal(t, errorLocationNotFound, decodeError(t, w), "wrong error")
}

func TestStatus(t *testing.T) {
	ts := newTestServer(t)
	defer ts.ctl.Finish()

	gomock.InOrder(
		ts.loader.EXPECT().LastReport().Return(nil),
		ts.loader.EXPECT().LastReport().Return(&loader.Report{
			RunID:     "a8f5f167-f44f-4964-a6c8-5f1b2f3c4d5e",
			Outcome:   loader.OutcomeSuccess,
			Locations: 6,
		}),
	)

	w := ts.do("GET", "/api/status", nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
	assert.Equal(t, errorNoReport, decodeError(t, w), "wrong error")

	w = ts.do("GET", "/api/status", nil)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp loader.Report
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, loader.OutcomeSuccess, jResp.Outcome, "wrong data")
	assert.Equal(t, 6, jResp.Locations, "wrong data")
}

func TestRefresh(t *testing.T) {
	ts := newTestServer(t)
	defer ts.ctl.Finish()

	w := ts.do("POST", "/secret/refresh", nil)
	assert.Equal(t, http.StatusForbidden, w.Code, "missing token")

	w = ts.do("POST", "/secret/refresh", map[string]string{"Api-Token": "wrong"})
	assert.Equal(t, http.StatusForbidden, w.Code, "wrong token")

	gomock.InOrder(
		ts.loader.EXPECT().Trigger(gomock.Any()).Return(&loader.Report{Outcome: loader.OutcomeSuccess}, nil),
		ts.loader.EXPECT().Trigger(gomock.Any()).Return(&loader.Report{Outcome: loader.OutcomeSkipped}, loader.ErrGuard),
	)

	w = ts.do("POST", "/secret/refresh", map[string]string{"Api-Token": adminKey})
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	w = ts.do("POST", "/secret/refresh", map[string]string{"Api-Token": adminKey})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code, "wrong status code")

	var jResp struct {
		Error  ErrorResponse `json:"error"`
		Report loader.Report `json:"report"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorRunIncomplete, jResp.Error, "wrong error")
	assert.Equal(t, loader.OutcomeSkipped, jResp.Report.Outcome, "wrong data")
}

func TestMetrics(t *testing.T) {
	ts := newTestServer(t)
	defer ts.ctl.Finish()

	w := ts.do("GET", "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	assert.Contains(t, w.Body.String(), "corona_loader_runs")
}
