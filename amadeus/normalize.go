package amadeus

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/technicalerikchan/flight-mcp-server/flight"
)

// NormalizeOffer converts a raw API offer into the canonical record. The
// boolean is false when the offer lacks itinerary, price, or segment data;
// callers skip such records instead of failing the whole search.
func NormalizeOffer(offer FlightOffer, criteria flight.SearchCriteria) (flight.Offer, bool) {
	if len(offer.Itineraries) == 0 || offer.Price.Total == "" {
		return flight.Offer{}, false
	}

	itinerary := offer.Itineraries[0]
	if len(itinerary.Segments) == 0 {
		return flight.Offer{}, false
	}
	first := itinerary.Segments[0]
	last := itinerary.Segments[len(itinerary.Segments)-1]

	amount, err := strconv.ParseFloat(offer.Price.Total, 64)
	if err != nil {
		return flight.Offer{}, false
	}

	carrier := first.CarrierCode
	if carrier == "" {
		carrier = "XX"
	}
	number := first.Number
	if number == "" {
		number = "0000"
	}
	aircraft := first.Aircraft.Code
	if aircraft == "" {
		aircraft = "Unknown"
	}
	bookingClass := first.Class
	if bookingClass == "" {
		bookingClass = "Y"
	}

	return flight.Offer{
		Airline:       flight.AirlineName(carrier),
		FlightNumber:  carrier + number,
		Origin:        criteria.Origin,
		Destination:   criteria.Destination,
		DepartureDate: criteria.DepartureDate,
		DepartureTime: clockTime(first.Departure.At),
		ArrivalTime:   clockTime(last.Arrival.At),
		Duration:      formatDuration(itinerary.Duration),
		Price: flight.Price{
			Amount:    amount,
			Currency:  offer.Price.Currency,
			PerPerson: amount / float64(criteria.Adults),
		},
		Stops:        len(itinerary.Segments) - 1,
		TravelClass:  criteria.Class,
		Aircraft:     aircraft,
		BookingClass: bookingClass,
	}, true
}

// formatDuration renders an ISO 8601 PT2H30M token as "2h 30m". Anything
// unparsable renders as "0h 0m".
func formatDuration(iso string) string {
	s := strings.ReplaceAll(iso, "PT", "")
	hours, minutes := 0, 0

	if strings.Contains(s, "H") {
		parts := strings.SplitN(s, "H", 2)
		h, err := strconv.Atoi(parts[0])
		if err != nil {
			return "0h 0m"
		}
		hours = h
		s = parts[1]
	}
	if strings.Contains(s, "M") {
		part := strings.ReplaceAll(s, "M", "")
		if part != "" {
			m, err := strconv.Atoi(part)
			if err != nil {
				return "0h 0m"
			}
			minutes = m
		}
	}

	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// clockTime extracts HH:MM from a combined date-time string, defaulting to
// "00:00" when the input is malformed or too short.
func clockTime(s string) string {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[i+1:]
	}
	if len(s) >= 5 {
		return s[:5]
	}
	return "00:00"
}
