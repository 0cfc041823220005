package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/technicalerikchan/flight-mcp-server/log"
)

// LocationSearchResponse wraps the API response for locations
type LocationSearchResponse struct {
	Data []LocationData `json:"data"`
}

// LocationData represents a single location result from Amadeus
type LocationData struct {
	SubType        string  `json:"subType"`
	Name           string  `json:"name"`
	IataCode       string  `json:"iataCode"`
	TimeZoneOffset string  `json:"timeZoneOffset"`
	Address        Address `json:"address"`
	GeoCode        GeoCode `json:"geoCode"`
}

// Address contains location details
type Address struct {
	CityName    string `json:"cityName"`
	CityCode    string `json:"cityCode"`
	CountryName string `json:"countryName"`
	CountryCode string `json:"countryCode"`
}

type GeoCode struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SearchAirport looks up airport reference data by IATA code keyword.
func (c *Client) SearchAirport(ctx context.Context, code string) (*LocationSearchResponse, error) {
	data := url.Values{}
	data.Set("keyword", code)
	data.Set("subType", "AIRPORT")

	endpoint := fmt.Sprintf("/v1/reference-data/locations?%s", data.Encode())
	resp, err := c.doRequest(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Errorf(ctx, "SearchAirport: API returned status %s", resp.Status)
		return nil, fmt.Errorf("location search failed: %s", resp.Status)
	}

	var result LocationSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}
