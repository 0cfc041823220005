package flight

// airports holds sample reference data for well-known airports.
var airports = map[string]Airport{
	"LAX": {
		Code:      "LAX",
		Name:      "Los Angeles International Airport",
		City:      "Los Angeles",
		Country:   "United States",
		Timezone:  "America/Los_Angeles",
		Latitude:  33.9425,
		Longitude: -118.4081,
	},
	"JFK": {
		Code:      "JFK",
		Name:      "John F. Kennedy International Airport",
		City:      "New York",
		Country:   "United States",
		Timezone:  "America/New_York",
		Latitude:  40.6413,
		Longitude: -73.7781,
	},
	"LHR": {
		Code:      "LHR",
		Name:      "London Heathrow Airport",
		City:      "London",
		Country:   "United Kingdom",
		Timezone:  "Europe/London",
		Latitude:  51.4700,
		Longitude: -0.4543,
	},
	"NRT": {
		Code:      "NRT",
		Name:      "Narita International Airport",
		City:      "Tokyo",
		Country:   "Japan",
		Timezone:  "Asia/Tokyo",
		Latitude:  35.7719,
		Longitude: 140.3928,
	},
}

// AirportByCode looks up sample airport data for a validated IATA code.
func AirportByCode(code string) (Airport, bool) {
	a, ok := airports[code]
	return a, ok
}
