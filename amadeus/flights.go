package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/technicalerikchan/flight-mcp-server/flight"
)

// FlightSearchResponse wraps the flight-offers search payload.
type FlightSearchResponse struct {
	Data []FlightOffer `json:"data"`
}

// FlightOffer is one raw offer as the API returns it. Only the fields the
// normalizer reads are mapped.
type FlightOffer struct {
	ID          string      `json:"id"`
	Itineraries []Itinerary `json:"itineraries"`
	Price       Price       `json:"price"`
}

type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

type Segment struct {
	Departure   FlightEndPoint `json:"departure"`
	Arrival     FlightEndPoint `json:"arrival"`
	CarrierCode string         `json:"carrierCode"`
	Number      string         `json:"number"`
	Aircraft    Aircraft       `json:"aircraft"`
	Class       string         `json:"class"`
}

type Aircraft struct {
	Code string `json:"code"`
}

type FlightEndPoint struct {
	IataCode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

type Price struct {
	Currency string `json:"currency"`
	Total    string `json:"total"`
}

// travelClasses maps tool-facing class names onto Amadeus fare classes.
var travelClasses = map[flight.TravelClass]string{
	flight.ClassEconomy:        "ECONOMY",
	flight.ClassPremiumEconomy: "PREMIUM_ECONOMY",
	flight.ClassBusiness:       "BUSINESS",
	flight.ClassFirst:          "FIRST",
}

func apiTravelClass(class flight.TravelClass) string {
	if v, ok := travelClasses[class]; ok {
		return v
	}
	return "ECONOMY"
}

// SearchFlightOffers queries the flight-offers search endpoint.
func (c *Client) SearchFlightOffers(ctx context.Context, criteria flight.SearchCriteria) (*FlightSearchResponse, error) {
	data := url.Values{}
	data.Set("originLocationCode", criteria.Origin)
	data.Set("destinationLocationCode", criteria.Destination)
	data.Set("departureDate", criteria.DepartureDate)
	data.Set("adults", strconv.Itoa(criteria.Adults))
	data.Set("travelClass", apiTravelClass(criteria.Class))
	if criteria.ReturnDate != "" {
		data.Set("returnDate", criteria.ReturnDate)
	}

	endpoint := fmt.Sprintf("/v2/shopping/flight-offers?%s", data.Encode())
	resp, err := c.doRequest(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("flight search failed: %s", resp.Status)
	}

	var searchResp FlightSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, err
	}

	return &searchResp, nil
}
