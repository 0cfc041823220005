package amadeus

import (
	"context"

	"github.com/technicalerikchan/flight-mcp-server/flight"
)

// maxOffers caps how many raw offers one search normalizes.
const maxOffers = 5

// Source serves live flight data from the Amadeus API. It implements
// flight.Source.
type Source struct {
	client *Client
}

// NewSource wraps a client as a live flight data source.
func NewSource(client *Client) *Source {
	return &Source{client: client}
}

// SearchFlights runs an offer search and normalizes the first five results.
// Raw offers that fail normalization are dropped.
func (s *Source) SearchFlights(ctx context.Context, criteria flight.SearchCriteria) ([]flight.Offer, error) {
	resp, err := s.client.SearchFlightOffers(ctx, criteria)
	if err != nil {
		return nil, &flight.UpstreamError{Op: "flight search", Err: err}
	}

	raw := resp.Data
	if len(raw) > maxOffers {
		raw = raw[:maxOffers]
	}

	offers := make([]flight.Offer, 0, len(raw))
	for _, o := range raw {
		if offer, ok := NormalizeOffer(o, criteria); ok {
			offers = append(offers, offer)
		}
	}
	return offers, nil
}

// AirportInfo looks up live airport reference data for an IATA code.
// Missing response fields fall back to placeholder values.
func (s *Source) AirportInfo(ctx context.Context, code string) (flight.Airport, error) {
	resp, err := s.client.SearchAirport(ctx, code)
	if err != nil {
		return flight.Airport{}, &flight.UpstreamError{Op: "airport lookup", Err: err}
	}
	if len(resp.Data) == 0 {
		return flight.Airport{}, flight.NotFoundf("Airport information not found for code: %s", code)
	}

	loc := resp.Data[0]
	airport := flight.Airport{
		Code:      loc.IataCode,
		Name:      loc.Name,
		City:      loc.Address.CityName,
		Country:   loc.Address.CountryName,
		Timezone:  loc.TimeZoneOffset,
		Latitude:  loc.GeoCode.Latitude,
		Longitude: loc.GeoCode.Longitude,
	}
	if airport.Code == "" {
		airport.Code = code
	}
	if airport.Name == "" {
		airport.Name = "Unknown Airport"
	}
	if airport.City == "" {
		airport.City = "Unknown City"
	}
	if airport.Country == "" {
		airport.Country = "Unknown Country"
	}
	if airport.Timezone == "" {
		airport.Timezone = "Unknown"
	}
	return airport, nil
}
