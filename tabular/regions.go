package tabular

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// date columns are labelled M/D/YY, newer files use M/D/YYYY
var datePattern = regexp.MustCompile(`^\d{1,2}/\d{1,2}/(\d{2}|\d{4})$`)

// metadata column titles, both naming generations of the time series files
var (
	countryColumns  = []string{"Country/Region", "Country_Region"}
	provinceColumns = []string{"Province/State", "Province_State"}
	countyColumns   = []string{"Admin2"}
	latColumns      = []string{"Lat"}
	longColumns     = []string{"Long", "Long_"}
)

// Cell - a raw count of one date column
type Cell struct {
	Day string
	Raw string
}

// RegionRow - one region of a time series table
type RegionRow struct {
	Country   string
	Province  string
	County    string
	Latitude  float64
	Longitude float64
	Cells     []Cell
}

// IsDateColumn - true if the title is a date label
func IsDateColumn(title string) bool {
	return datePattern.MatchString(title)
}

// DateColumns - date titles in header order
func (t *Table) DateColumns() []string {
	days := make([]string, 0, len(t.Headers))
	for _, h := range t.Headers {
		if IsDateColumn(h) {
			days = append(days, h)
		}
	}
	return days
}

// Regions splits every row into its region identity and its date cells.
// Columns which are neither metadata nor dates (UID, FIPS, Population, ...)
// are ignored.
func (t *Table) Regions() ([]RegionRow, error) {
	country, ok := t.Column(countryColumns...)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(countryColumns, " or "))
	}
	province, hasProvince := t.Column(provinceColumns...)
	county, hasCounty := t.Column(countyColumns...)
	lat, hasLat := t.Column(latColumns...)
	long, hasLong := t.Column(longColumns...)

	days := t.DateColumns()
	if len(days) == 0 {
		return nil, ErrNoDateColumns
	}

	regions := make([]RegionRow, 0, len(t.Rows))
	for _, row := range t.Rows {
		r := RegionRow{
			Country: strings.TrimSpace(row[country]),
			Cells:   make([]Cell, 0, len(days)),
		}
		if hasProvince {
			r.Province = strings.TrimSpace(row[province])
		}
		if hasCounty {
			r.County = strings.TrimSpace(row[county])
		}
		if hasLat {
			r.Latitude = parseCoordinate(row[lat])
		}
		if hasLong {
			r.Longitude = parseCoordinate(row[long])
		}
		for _, d := range days {
			r.Cells = append(r.Cells, Cell{Day: d, Raw: row[d]})
		}
		regions = append(regions, r)
	}

	return regions, nil
}

// SortByProvincePresence orders rows so that whole-country rows (empty
// province) come first, then by country, province and county. Both tables of
// a confirmed/deaths pair must go through this sort before they are built
// into series; row i of one table then describes the same region as row i
// of the other.
func SortByProvincePresence(rows []RegionRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if (a.Province == "") != (b.Province == "") {
			return a.Province == ""
		}
		if a.Country != b.Country {
			return a.Country < b.Country
		}
		if a.Province != b.Province {
			return a.Province < b.Province
		}
		return a.County < b.County
	})
}

func parseCoordinate(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
