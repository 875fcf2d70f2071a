package geo

import "strings"

// CountryInfo carries the country-level facts used to derive per-country
// transportation strategies.
type CountryInfo struct {
	// AreaKM2 is the land area in square kilometers.
	AreaKM2 float64
	// Population is the approximate population.
	Population float64
	// Region is the broad geographic region.
	Region string
}

// countryTable is the built-in country fact table, keyed by normalized name.
var countryTable = map[string]CountryInfo{
	"sri lanka":            {AreaKM2: 65610, Population: 22.2e6, Region: "South Asia"},
	"japan":                {AreaKM2: 377975, Population: 125.7e6, Region: "East Asia"},
	"united states":        {AreaKM2: 9833520, Population: 331.9e6, Region: "North America"},
	"united kingdom":       {AreaKM2: 243610, Population: 67.3e6, Region: "Western Europe"},
	"france":               {AreaKM2: 551695, Population: 67.8e6, Region: "Western Europe"},
	"germany":              {AreaKM2: 357588, Population: 83.2e6, Region: "Western Europe"},
	"italy":                {AreaKM2: 301340, Population: 59.1e6, Region: "Southern Europe"},
	"spain":                {AreaKM2: 505990, Population: 47.4e6, Region: "Southern Europe"},
	"netherlands":          {AreaKM2: 41850, Population: 17.5e6, Region: "Western Europe"},
	"portugal":             {AreaKM2: 92212, Population: 10.3e6, Region: "Southern Europe"},
	"switzerland":          {AreaKM2: 41285, Population: 8.7e6, Region: "Western Europe"},
	"greece":               {AreaKM2: 131957, Population: 10.6e6, Region: "Southern Europe"},
	"thailand":             {AreaKM2: 513120, Population: 71.6e6, Region: "Southeast Asia"},
	"singapore":            {AreaKM2: 728, Population: 5.5e6, Region: "Southeast Asia"},
	"malaysia":             {AreaKM2: 330803, Population: 33.6e6, Region: "Southeast Asia"},
	"indonesia":            {AreaKM2: 1904569, Population: 273.8e6, Region: "Southeast Asia"},
	"india":                {AreaKM2: 3287263, Population: 1407.6e6, Region: "South Asia"},
	"united arab emirates": {AreaKM2: 83600, Population: 9.4e6, Region: "Middle East"},
	"south korea":          {AreaKM2: 100210, Population: 51.7e6, Region: "East Asia"},
	"china":                {AreaKM2: 9596960, Population: 1412.4e6, Region: "East Asia"},
	"australia":            {AreaKM2: 7692024, Population: 25.7e6, Region: "Oceania"},
	"new zealand":          {AreaKM2: 268021, Population: 5.1e6, Region: "Oceania"},
	"canada":               {AreaKM2: 9984670, Population: 38.2e6, Region: "North America"},
	"mexico":               {AreaKM2: 1964375, Population: 126.7e6, Region: "North America"},
	"brazil":               {AreaKM2: 8515767, Population: 214.3e6, Region: "South America"},
	"argentina":            {AreaKM2: 2780400, Population: 45.8e6, Region: "South America"},
	"peru":                 {AreaKM2: 1285216, Population: 33.7e6, Region: "South America"},
	"egypt":                {AreaKM2: 1010408, Population: 109.3e6, Region: "North Africa"},
	"kenya":                {AreaKM2: 580367, Population: 53.0e6, Region: "East Africa"},
	"south africa":         {AreaKM2: 1221037, Population: 59.9e6, Region: "Southern Africa"},
	"morocco":              {AreaKM2: 446550, Population: 37.1e6, Region: "North Africa"},
}

// LookupCountry returns the fact entry for a country and whether it exists.
func LookupCountry(country string) (CountryInfo, bool) {
	info, ok := countryTable[strings.ToLower(strings.TrimSpace(country))]
	return info, ok
}
