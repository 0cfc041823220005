package flight

import "fmt"

// airlineNames maps IATA carrier codes to display names for offers.
var airlineNames = map[string]string{
	"AA": "American Airlines",
	"DL": "Delta Air Lines",
	"UA": "United Airlines",
	"WN": "Southwest Airlines",
	"B6": "JetBlue Airways",
	"LH": "Lufthansa",
	"BA": "British Airways",
	"AF": "Air France",
	"KL": "KLM",
	"LX": "Swiss International Air Lines",
}

// AirlineName resolves a carrier code to a display name, falling back to
// "Airline XX" for codes outside the table.
func AirlineName(code string) string {
	if name, ok := airlineNames[code]; ok {
		return name
	}
	return fmt.Sprintf("Airline %s", code)
}

// airlines holds sample reference data for well-known carriers.
var airlines = map[string]Airline{
	"AA": {
		Code:         "AA",
		Name:         "American Airlines",
		Country:      "United States",
		Founded:      1930,
		Hub:          "Dallas/Fort Worth International Airport",
		FleetSize:    "850+",
		Destinations: "350+",
	},
	"DL": {
		Code:         "DL",
		Name:         "Delta Air Lines",
		Country:      "United States",
		Founded:      1924,
		Hub:          "Hartsfield-Jackson Atlanta International Airport",
		FleetSize:    "800+",
		Destinations: "325+",
	},
	"UA": {
		Code:         "UA",
		Name:         "United Airlines",
		Country:      "United States",
		Founded:      1926,
		Hub:          "Chicago O'Hare International Airport",
		FleetSize:    "800+",
		Destinations: "340+",
	},
	"LH": {
		Code:         "LH",
		Name:         "Lufthansa",
		Country:      "Germany",
		Founded:      1953,
		Hub:          "Frankfurt Airport",
		FleetSize:    "300+",
		Destinations: "220+",
	},
}

// AirlineByCode looks up sample airline data for a validated carrier code.
func AirlineByCode(code string) (Airline, bool) {
	a, ok := airlines[code]
	return a, ok
}
