// Package geo resolves place names to airport codes, countries, and
// coordinates, and computes great-circle distances. It stands in for the
// external geocoding collaborators the planner consumes; lookups go through
// process-wide memo caches that are safe for concurrent requests.
package geo

// place is one gazetteer entry. Cities without their own international
// airport map to the nearest serving airport code (e.g. Galle → CMB).
type place struct {
	Airport string
	Country string
	Lat     float64
	Lon     float64
}

// gazetteer is the built-in place table, keyed by normalized city name.
var gazetteer = map[string]place{
	// Sri Lanka
	"colombo": {Airport: "CMB", Country: "Sri Lanka", Lat: 6.9271, Lon: 79.8612},
	"galle":   {Airport: "CMB", Country: "Sri Lanka", Lat: 6.0535, Lon: 80.2210},
	"kandy":   {Airport: "CMB", Country: "Sri Lanka", Lat: 7.2906, Lon: 80.6337},
	"jaffna":  {Airport: "JAF", Country: "Sri Lanka", Lat: 9.6615, Lon: 80.0255},

	// Japan
	"tokyo": {Airport: "TYO", Country: "Japan", Lat: 35.6762, Lon: 139.6503},
	"osaka": {Airport: "OSA", Country: "Japan", Lat: 34.6937, Lon: 135.5023},
	"kyoto": {Airport: "OSA", Country: "Japan", Lat: 35.0116, Lon: 135.7681},

	// United States
	"new york":      {Airport: "NYC", Country: "United States", Lat: 40.7128, Lon: -74.0060},
	"los angeles":   {Airport: "LAX", Country: "United States", Lat: 34.0522, Lon: -118.2437},
	"san francisco": {Airport: "SFO", Country: "United States", Lat: 37.7749, Lon: -122.4194},
	"chicago":       {Airport: "CHI", Country: "United States", Lat: 41.8781, Lon: -87.6298},
	"miami":         {Airport: "MIA", Country: "United States", Lat: 25.7617, Lon: -80.1918},

	// Europe
	"london":    {Airport: "LON", Country: "United Kingdom", Lat: 51.5074, Lon: -0.1278},
	"paris":     {Airport: "PAR", Country: "France", Lat: 48.8566, Lon: 2.3522},
	"nice":      {Airport: "NCE", Country: "France", Lat: 43.7102, Lon: 7.2620},
	"berlin":    {Airport: "BER", Country: "Germany", Lat: 52.5200, Lon: 13.4050},
	"munich":    {Airport: "MUC", Country: "Germany", Lat: 48.1351, Lon: 11.5820},
	"rome":      {Airport: "ROM", Country: "Italy", Lat: 41.9028, Lon: 12.4964},
	"milan":     {Airport: "MIL", Country: "Italy", Lat: 45.4642, Lon: 9.1900},
	"madrid":    {Airport: "MAD", Country: "Spain", Lat: 40.4168, Lon: -3.7038},
	"barcelona": {Airport: "BCN", Country: "Spain", Lat: 41.3874, Lon: 2.1686},
	"amsterdam": {Airport: "AMS", Country: "Netherlands", Lat: 52.3676, Lon: 4.9041},
	"lisbon":    {Airport: "LIS", Country: "Portugal", Lat: 38.7223, Lon: -9.1393},
	"zurich":    {Airport: "ZRH", Country: "Switzerland", Lat: 47.3769, Lon: 8.5417},
	"athens":    {Airport: "ATH", Country: "Greece", Lat: 37.9838, Lon: 23.7275},

	// Asia
	"bangkok":      {Airport: "BKK", Country: "Thailand", Lat: 13.7563, Lon: 100.5018},
	"phuket":       {Airport: "HKT", Country: "Thailand", Lat: 7.8804, Lon: 98.3923},
	"singapore":    {Airport: "SIN", Country: "Singapore", Lat: 1.3521, Lon: 103.8198},
	"kuala lumpur": {Airport: "KUL", Country: "Malaysia", Lat: 3.1390, Lon: 101.6869},
	"bali":         {Airport: "DPS", Country: "Indonesia", Lat: -8.3405, Lon: 115.0920},
	"delhi":        {Airport: "DEL", Country: "India", Lat: 28.7041, Lon: 77.1025},
	"mumbai":       {Airport: "BOM", Country: "India", Lat: 19.0760, Lon: 72.8777},
	"goa":          {Airport: "GOI", Country: "India", Lat: 15.2993, Lon: 74.1240},
	"dubai":        {Airport: "DXB", Country: "United Arab Emirates", Lat: 25.2048, Lon: 55.2708},
	"seoul":        {Airport: "SEL", Country: "South Korea", Lat: 37.5665, Lon: 126.9780},
	"beijing":      {Airport: "BJS", Country: "China", Lat: 39.9042, Lon: 116.4074},
	"shanghai":     {Airport: "SHA", Country: "China", Lat: 31.2304, Lon: 121.4737},

	// Oceania
	"sydney":    {Airport: "SYD", Country: "Australia", Lat: -33.8688, Lon: 151.2093},
	"melbourne": {Airport: "MEL", Country: "Australia", Lat: -37.8136, Lon: 144.9631},
	"perth":     {Airport: "PER", Country: "Australia", Lat: -31.9523, Lon: 115.8613},
	"auckland":  {Airport: "AKL", Country: "New Zealand", Lat: -36.8509, Lon: 174.7645},

	// Americas (non-US)
	"toronto":        {Airport: "YTO", Country: "Canada", Lat: 43.6532, Lon: -79.3832},
	"vancouver":      {Airport: "YVR", Country: "Canada", Lat: 49.2827, Lon: -123.1207},
	"mexico city":    {Airport: "MEX", Country: "Mexico", Lat: 19.4326, Lon: -99.1332},
	"rio de janeiro": {Airport: "RIO", Country: "Brazil", Lat: -22.9068, Lon: -43.1729},
	"sao paulo":      {Airport: "SAO", Country: "Brazil", Lat: -23.5505, Lon: -46.6333},
	"buenos aires":   {Airport: "BUE", Country: "Argentina", Lat: -34.6037, Lon: -58.3816},
	"lima":           {Airport: "LIM", Country: "Peru", Lat: -12.0464, Lon: -77.0428},

	// Africa
	"cairo":        {Airport: "CAI", Country: "Egypt", Lat: 30.0444, Lon: 31.2357},
	"nairobi":      {Airport: "NBO", Country: "Kenya", Lat: -1.2921, Lon: 36.8219},
	"cape town":    {Airport: "CPT", Country: "South Africa", Lat: -33.9249, Lon: 18.4241},
	"johannesburg": {Airport: "JNB", Country: "South Africa", Lat: -26.2041, Lon: 28.0473},
	"marrakech":    {Airport: "RAK", Country: "Morocco", Lat: 31.6295, Lon: -7.9811},
}
