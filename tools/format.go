package tools

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/technicalerikchan/flight-mcp-server/flight"
)

// formatOffers renders search results as a numbered text block. live selects
// the data-source banner and the trailing sample-data note.
func formatOffers(offers []flight.Offer, criteria flight.SearchCriteria, live bool) string {
	var b strings.Builder

	b.WriteString("Flight Search Results\n")
	fmt.Fprintf(&b, "Route: %s → %s\n", criteria.Origin, criteria.Destination)
	fmt.Fprintf(&b, "Departure Date: %s\n", criteria.DepartureDate)
	if criteria.ReturnDate != "" {
		fmt.Fprintf(&b, "Return Date: %s\n", criteria.ReturnDate)
	}
	if live {
		b.WriteString("Live data from Amadeus API\n\n")
	} else {
		b.WriteString("Sample data (configure API for real results)\n\n")
	}

	for i, offer := range offers {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, offer.Airline, offer.FlightNumber)
		fmt.Fprintf(&b, "   Time: %s → %s (%s)\n", offer.DepartureTime, offer.ArrivalTime, offer.Duration)
		fmt.Fprintf(&b, "   Price: %s %.2f total (%s %.2f/person)\n",
			offer.Price.Currency, offer.Price.Amount, offer.Price.Currency, offer.Price.PerPerson)

		aircraft := offer.Aircraft
		if aircraft == "" {
			aircraft = "Aircraft info unavailable"
		}
		stops := "Direct"
		if offer.Stops > 0 {
			stops = fmt.Sprintf("%d stop(s)", offer.Stops)
		}
		fmt.Fprintf(&b, "   Aircraft: %s | %s\n", aircraft, stops)

		fmt.Fprintf(&b, "   Class: %s", offer.TravelClass)
		if offer.BookingClass != "" {
			fmt.Fprintf(&b, " (%s)", offer.BookingClass)
		}
		b.WriteString("\n\n")
	}

	if !live {
		b.WriteString("Note: These are sample results. Real Amadeus API integration is available with valid credentials.\n")
	}

	return b.String()
}

func formatAirport(a flight.Airport, live bool) string {
	source := "Sample data"
	if live {
		source = "Data from Amadeus API"
	}

	return fmt.Sprintf(
		"Airport Information\n\n"+
			"Code: %s\n"+
			"Name: %s\n"+
			"City: %s\n"+
			"Country: %s\n"+
			"Timezone: %s\n"+
			"Coordinates: %s, %s\n\n"+
			"%s",
		a.Code, a.Name, a.City, a.Country, a.Timezone,
		coord(a.Latitude), coord(a.Longitude), source,
	)
}

// coord renders a coordinate without trailing zeros.
func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatStatus(s flight.Status) string {
	var b strings.Builder

	b.WriteString("Flight Status\n\n")
	fmt.Fprintf(&b, "Flight: %s\n", s.FlightNumber)
	fmt.Fprintf(&b, "Date: %s\n", s.Date)
	fmt.Fprintf(&b, "Status: %s\n", s.State)

	if s.Cancelled() {
		b.WriteString("Flight has been cancelled. Please contact your airline for rebooking options.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Gate: %s\n", s.Gate)
	fmt.Fprintf(&b, "Scheduled Departure: %s\n", s.ScheduledDeparture)
	if s.EstimatedDeparture != "" {
		fmt.Fprintf(&b, "Estimated Departure: %s\n", s.EstimatedDeparture)
		fmt.Fprintf(&b, "Delay Reason: %s\n", s.DelayReason)
	}
	if s.ActualTime != "" {
		fmt.Fprintf(&b, "Actual Time: %s\n", s.ActualTime)
	}

	return b.String()
}

func formatAirline(a flight.Airline) string {
	return fmt.Sprintf(
		"Airline Information\n\n"+
			"Code: %s\n"+
			"Name: %s\n"+
			"Country: %s\n"+
			"Founded: %d\n"+
			"Main Hub: %s\n"+
			"Fleet Size: %s\n"+
			"Destinations: %s",
		a.Code, a.Name, a.Country, a.Founded, a.Hub, a.FleetSize, a.Destinations,
	)
}
