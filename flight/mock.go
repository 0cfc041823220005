package flight

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
)

// mockAirlines is the roster the sample generator draws carriers from.
var mockAirlines = []struct {
	Code string
	Name string
}{
	{"AA", "American Airlines"},
	{"DL", "Delta Air Lines"},
	{"UA", "United Airlines"},
	{"WN", "Southwest Airlines"},
	{"B6", "JetBlue Airways"},
}

var (
	statusValues = []string{"On Time", "Delayed", "Boarding", "Departed", "Arrived", "Cancelled"}
	statusGates  = []string{"A12", "B7", "C14", "D9", "E23"}
)

// MockSource serves randomized sample data in the same shape the live
// source produces. It is selected at startup when no API credentials
// are configured.
type MockSource struct{}

// NewMockSource returns a sample data source.
func NewMockSource() *MockSource {
	return &MockSource{}
}

// SearchFlights generates five sample offers for the criteria, sorted by
// ascending total price.
func (m *MockSource) SearchFlights(_ context.Context, criteria SearchCriteria) ([]Offer, error) {
	offers := make([]Offer, 0, 5)
	for i := 0; i < 5; i++ {
		airline := mockAirlines[rand.Intn(len(mockAirlines))]
		basePrice := float64(rand.Intn(601) + 200)
		amount := basePrice * float64(criteria.Adults)

		stops := 0
		if rand.Float64() <= 0.4 {
			stops = 1
		}

		offers = append(offers, Offer{
			Airline:       airline.Name,
			FlightNumber:  fmt.Sprintf("%s%d", airline.Code, rand.Intn(9000)+1000),
			Origin:        criteria.Origin,
			Destination:   criteria.Destination,
			DepartureDate: criteria.DepartureDate,
			DepartureTime: fmt.Sprintf("%02d:%02d", rand.Intn(17)+6, rand.Intn(60)),
			ArrivalTime:   fmt.Sprintf("%02d:%02d", rand.Intn(16)+8, rand.Intn(60)),
			Duration:      fmt.Sprintf("%dh %dm", rand.Intn(9)+2, rand.Intn(60)),
			Price: Price{
				Amount:    amount,
				Currency:  "USD",
				PerPerson: amount / float64(criteria.Adults),
			},
			Stops:        stops,
			TravelClass:  criteria.Class,
			Aircraft:     "Boeing 737-800",
			BookingClass: "V",
		})
	}

	sort.Slice(offers, func(i, j int) bool {
		return offers[i].Price.Amount < offers[j].Price.Amount
	})
	return offers, nil
}

// AirportInfo serves the static record for the code, if one exists.
func (m *MockSource) AirportInfo(_ context.Context, code string) (Airport, error) {
	airport, ok := AirportByCode(code)
	if !ok {
		return Airport{}, NotFoundf("Airport information not found for code: %s", code)
	}
	return airport, nil
}

// MockStatus reports a randomized status for a flight on a date. Status
// lookups have no live counterpart, so every source shares this.
func MockStatus(flightNumber, date string) Status {
	s := Status{
		FlightNumber: flightNumber,
		Date:         date,
		State:        statusValues[rand.Intn(len(statusValues))],
	}
	if s.Cancelled() {
		return s
	}

	s.Gate = statusGates[rand.Intn(len(statusGates))]
	s.ScheduledDeparture = "14:30"
	switch s.State {
	case "Delayed":
		s.EstimatedDeparture = "15:15"
		s.DelayReason = "Weather conditions"
	case "Departed", "Arrived":
		s.ActualTime = "14:35"
	}
	return s
}
