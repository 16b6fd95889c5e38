package schema

import (
	"time"
)

const (
	TotalsCollection          = "totals"
	CasesByLocationCollection = "casesByLocation"
)

// DailyCount - cumulative counts of one day and the new cases derived from
// the day before
type DailyCount struct {
	Day          string `json:"day" bson:"day"`
	Confirmed    int64  `json:"confirmed" bson:"confirmed"`
	Deaths       int64  `json:"deaths" bson:"deaths"`
	ConfirmedNew int64  `json:"confirmedNew" bson:"confirmedNew"`
	DeathsNew    int64  `json:"deathsNew" bson:"deathsNew"`
}

// SnapshotRecord - current totals of one region from the live feed. A nil
// province is the country as a whole.
type SnapshotRecord struct {
	Country    string
	Province   *string
	Confirmed  int64
	Active     int64
	Recovered  int64
	Deaths     int64
	LastUpdate int64
	Latitude   float64
	Longitude  float64
}

type ProvinceRef struct {
	IDKey    string `json:"idKey" bson:"idKey"`
	Province string `json:"province" bson:"province"`
}

// LocationCases - a document of the casesByLocation collection. It is either
// a single region of the snapshot or a country aggregate of its provinces,
// in which case HasProvince is set and ProvincesList lists the children.
type LocationCases struct {
	IDKey          string        `json:"idKey" bson:"idKey"`
	Country        string        `json:"country" bson:"country"`
	Province       *string       `json:"province" bson:"province"`
	CountryCode    string        `json:"countryCode" bson:"countryCode"`
	Confirmed      int64         `json:"confirmed" bson:"confirmed"`
	Active         int64         `json:"active" bson:"active"`
	Recovered      int64         `json:"recovered" bson:"recovered"`
	Deaths         int64         `json:"deaths" bson:"deaths"`
	ConfirmedToday int64         `json:"confirmedToday" bson:"confirmedToday"`
	DeathsToday    int64         `json:"deathsToday" bson:"deathsToday"`
	LastUpdate     int64         `json:"lastUpdate" bson:"lastUpdate"`
	Latitude       float64       `json:"latitude" bson:"latitude"`
	Longitude      float64       `json:"longitude" bson:"longitude"`
	HasProvince    bool          `json:"hasProvince" bson:"hasProvince"`
	ProvincesList  []ProvinceRef `json:"provincesList" bson:"provincesList"`
	CasesByDate    []DailyCount  `json:"casesByDate" bson:"casesByDate"`
}

// DayCase - one location on one day of the cross-sectional view
type DayCase struct {
	IDKey          string `json:"idKey" bson:"idKey"`
	Country        string `json:"country" bson:"country"`
	CountryCode    string `json:"countryCode" bson:"countryCode"`
	Confirmed      int64  `json:"confirmed" bson:"confirmed"`
	Deaths         int64  `json:"deaths" bson:"deaths"`
	ConfirmedToday int64  `json:"confirmedToday" bson:"confirmedToday"`
	DeathsToday    int64  `json:"deathsToday" bson:"deathsToday"`
}

type DayCases struct {
	Day           string    `json:"day" bson:"day"`
	CasesOfTheDay []DayCase `json:"casesOfTheDay" bson:"casesOfTheDay"`
}

// Totals - the single document of the totals collection
type Totals struct {
	Confirmed                  int64        `json:"confirmed" bson:"confirmed"`
	Recovered                  int64        `json:"recovered" bson:"recovered"`
	Deaths                     int64        `json:"deaths" bson:"deaths"`
	Active                     int64        `json:"active" bson:"active"`
	ConfirmedToday             int64        `json:"confirmedToday" bson:"confirmedToday"`
	DeathsToday                int64        `json:"deathsToday" bson:"deathsToday"`
	DaysSinceFirstCase         int          `json:"daysSinceFirstCase" bson:"daysSinceFirstCase"`
	AllCountries               []string     `json:"allCountries" bson:"allCountries"`
	TimeSeriesTotalCasesByDate []DailyCount `json:"timeSeriesTotalCasesByDate" bson:"timeSeriesTotalCasesByDate"`
	GlobalCasesByDate          []DayCases   `json:"globalCasesByDate" bson:"globalCasesByDate"`
	TimeStamp                  time.Time    `json:"timeStamp" bson:"timeStamp"`
}
