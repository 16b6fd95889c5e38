package consts

// Mainland is the province label given to a country's own record once the
// country is split into provinces.
const Mainland = "mainland"

// CountryPolicy - per country reconciliation rules
type CountryPolicy struct {
	// ForceAggregate countries are always published as an aggregate of their
	// regions, even when only one region record is present in the snapshot.
	ForceAggregate bool
}

// CountryPolicies - countries which the feeds always report with regional
// breakdowns
var CountryPolicies = map[string]CountryPolicy{
	"US":        {ForceAggregate: true},
	"China":     {ForceAggregate: true},
	"Canada":    {ForceAggregate: true},
	"Australia": {ForceAggregate: true},
}

// Carveout - a region reported as a province of its sovereign which is
// published as a country of its own
type Carveout struct {
	Sovereign string
	Province  string
	Country   string
	Code      string
}

// Carveouts - regions extracted from their sovereign's aggregate
var Carveouts = []Carveout{
	{Sovereign: "Denmark", Province: "Greenland", Country: "Greenland", Code: "GRL"},
}

// ForceAggregate - returns true if the country is always published as an
// aggregate of its regions
func ForceAggregate(country string) bool {
	p, ok := CountryPolicies[country]
	return ok && p.ForceAggregate
}

// FindCarveout - look up the carve-out rule for a country/province pair
func FindCarveout(country, province string) (Carveout, bool) {
	for _, c := range Carveouts {
		if c.Sovereign == country && c.Province == province {
			return c, true
		}
	}
	return Carveout{}, false
}

// CountryCode - ISO alpha-3 code of a country name as named by the feeds.
// Carve-outs win over the exceptions table, which wins over the ISO table.
// Unknown names return an empty string.
func CountryCode(country string) string {
	for _, c := range Carveouts {
		if c.Country == country {
			return c.Code
		}
	}

	if code, ok := CountryCodeExceptions[country]; ok {
		return code
	}

	return CountryISO3[country]
}
