package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var gmtOffset = regexp.MustCompile(`^GMT([+-])(\d{1,2})(?::(\d{2}))?$`)

// GetLocation returns a location of a GMT-X format timezone, e.g. GMT+8 or
// GMT-9:30. An empty timezone is UTC, an unknown format returns nil.
func GetLocation(timezone string) *time.Location {
	timezone = strings.ToUpper(strings.TrimSpace(timezone))
	if timezone == "" || timezone == "UTC" || timezone == "GMT" {
		return time.UTC
	}

	m := gmtOffset.FindStringSubmatch(timezone)
	if m == nil {
		return nil
	}

	hours, _ := strconv.Atoi(m[2])
	minutes := 0
	if m[3] != "" {
		minutes, _ = strconv.Atoi(m[3])
	}
	if hours > 14 || minutes >= 60 {
		return nil
	}

	offset := hours*3600 + minutes*60
	if m[1] == "-" {
		offset = -offset
	}
	return time.FixedZone(timezone, offset)
}

// DayLabel formats a date the way the time series feeds label their columns,
// a short M/D/YY date, so a live value can be keyed next to historical ones.
func DayLabel(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return fmt.Sprintf("%d/%d/%02d", int(t.Month()), t.Day(), t.Year()%100)
}

// DayLabelLike formats a date as DayLabel does, in the year width of
// reference, a label of the same feed: M/D/YYYY when reference carries a
// four digit year.
func DayLabelLike(t time.Time, loc *time.Location, reference string) string {
	if loc != nil {
		t = t.In(loc)
	}
	if i := strings.LastIndex(reference, "/"); i >= 0 && len(reference)-i-1 == 4 {
		return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
	}
	return DayLabel(t, nil)
}
