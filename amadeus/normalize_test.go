package amadeus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/technicalerikchan/flight-mcp-server/flight"
)

func searchCriteria(t *testing.T, adults int) flight.SearchCriteria {
	t.Helper()
	return flight.SearchCriteria{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2030-05-01",
		Adults:        adults,
		Class:         flight.ClassEconomy,
	}
}

// twoSegmentOffer is a well-formed raw offer with one connection.
func twoSegmentOffer() FlightOffer {
	return FlightOffer{
		ID: "1",
		Itineraries: []Itinerary{{
			Duration: "PT7H30M",
			Segments: []Segment{
				{
					Departure:   FlightEndPoint{IataCode: "JFK", At: "2030-05-01T08:15:00"},
					Arrival:     FlightEndPoint{IataCode: "ORD", At: "2030-05-01T10:05:00"},
					CarrierCode: "AA",
					Number:      "100",
					Aircraft:    Aircraft{Code: "Boeing 777-300ER"},
					Class:       "K",
				},
				{
					Departure:   FlightEndPoint{IataCode: "ORD", At: "2030-05-01T11:00:00"},
					Arrival:     FlightEndPoint{IataCode: "LHR", At: "2030-05-01T15:45:00"},
					CarrierCode: "AA",
					Number:      "200",
				},
			},
		}},
		Price: Price{Currency: "USD", Total: "500.00"},
	}
}

func TestNormalizeOffer(t *testing.T) {
	t.Run("TwoSegmentRoundTrip", func(t *testing.T) {
		offer, ok := NormalizeOffer(twoSegmentOffer(), searchCriteria(t, 2))
		require.True(t, ok)

		assert.Equal(t, "American Airlines", offer.Airline)
		assert.Equal(t, "AA100", offer.FlightNumber)
		assert.Equal(t, "JFK", offer.Origin)
		assert.Equal(t, "LHR", offer.Destination)
		assert.Equal(t, "2030-05-01", offer.DepartureDate)
		assert.Equal(t, "08:15", offer.DepartureTime)
		assert.Equal(t, "15:45", offer.ArrivalTime) // last segment's arrival
		assert.Equal(t, "7h 30m", offer.Duration)
		assert.Equal(t, 500.0, offer.Price.Amount)
		assert.Equal(t, "USD", offer.Price.Currency)
		assert.Equal(t, 250.0, offer.Price.PerPerson)
		assert.Equal(t, 1, offer.Stops)
		assert.Equal(t, flight.ClassEconomy, offer.TravelClass)
		assert.Equal(t, "Boeing 777-300ER", offer.Aircraft)
		assert.Equal(t, "K", offer.BookingClass)
	})

	t.Run("SkipsMalformedOffers", func(t *testing.T) {
		noItineraries := twoSegmentOffer()
		noItineraries.Itineraries = nil
		_, ok := NormalizeOffer(noItineraries, searchCriteria(t, 1))
		assert.False(t, ok)

		noSegments := twoSegmentOffer()
		noSegments.Itineraries[0].Segments = nil
		_, ok = NormalizeOffer(noSegments, searchCriteria(t, 1))
		assert.False(t, ok)

		noPrice := twoSegmentOffer()
		noPrice.Price = Price{}
		_, ok = NormalizeOffer(noPrice, searchCriteria(t, 1))
		assert.False(t, ok)

		badTotal := twoSegmentOffer()
		badTotal.Price.Total = "five hundred"
		_, ok = NormalizeOffer(badTotal, searchCriteria(t, 1))
		assert.False(t, ok)
	})

	t.Run("FillsMissingSegmentFields", func(t *testing.T) {
		raw := FlightOffer{
			Itineraries: []Itinerary{{
				Segments: []Segment{{}},
			}},
			Price: Price{Currency: "EUR", Total: "123.45"},
		}

		offer, ok := NormalizeOffer(raw, searchCriteria(t, 1))
		require.True(t, ok)

		assert.Equal(t, "Airline XX", offer.Airline)
		assert.Equal(t, "XX0000", offer.FlightNumber)
		assert.Equal(t, "00:00", offer.DepartureTime)
		assert.Equal(t, "00:00", offer.ArrivalTime)
		assert.Equal(t, "0h 0m", offer.Duration)
		assert.Equal(t, "Unknown", offer.Aircraft)
		assert.Equal(t, "Y", offer.BookingClass)
		assert.Equal(t, 0, offer.Stops)
		assert.Equal(t, 123.45, offer.Price.Amount)
		assert.Equal(t, 123.45, offer.Price.PerPerson)
	})

	t.Run("UnknownCarrierRendersAsCode", func(t *testing.T) {
		raw := twoSegmentOffer()
		raw.Itineraries[0].Segments[0].CarrierCode = "QQ"

		offer, ok := NormalizeOffer(raw, searchCriteria(t, 1))
		require.True(t, ok)
		assert.Equal(t, "Airline QQ", offer.Airline)
		assert.Equal(t, "QQ100", offer.FlightNumber)
	})
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"PT2H30M", "2h 30m"},
		{"PT7H", "7h 0m"},
		{"PT45M", "0h 45m"},
		{"PT0H0M", "0h 0m"},
		{"PT", "0h 0m"},
		{"", "0h 0m"},
		{"garbage", "0h 0m"},
		{"PT2H3H10M", "0h 0m"},
		{"P1DT2H", "0h 0m"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, formatDuration(tc.in), "input %q", tc.in)
	}
}

func TestClockTime(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2030-05-01T08:15:00", "08:15"},
		{"2030-05-01T23:59", "23:59"},
		{"14:30:00", "14:30"},
		{"T9:1", "00:00"},
		{"", "00:00"},
		{"T", "00:00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, clockTime(tc.in), "input %q", tc.in)
	}
}
