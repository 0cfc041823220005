package amadeus

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/technicalerikchan/flight-mcp-server/flight"
)

// mockAmadeusServer creates a test server that mocks the Amadeus endpoints.
// When lastQuery is non-nil it captures the query of the most recent data
// request.
func mockAmadeusServer(lastQuery *url.Values) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/v1/security/oauth2/token":
			json.NewEncoder(w).Encode(AuthToken{
				AccessToken: "test_token",
				ExpiresIn:   1800,
				TokenType:   "Bearer",
			})
		case "/v2/shopping/flight-offers":
			if lastQuery != nil {
				*lastQuery = r.URL.Query()
			}
			json.NewEncoder(w).Encode(FlightSearchResponse{
				Data: []FlightOffer{twoSegmentOffer()},
			})
		case "/v1/reference-data/locations":
			if lastQuery != nil {
				*lastQuery = r.URL.Query()
			}
			json.NewEncoder(w).Encode(LocationSearchResponse{
				Data: []LocationData{{
					SubType:        "AIRPORT",
					Name:           "JOHN F KENNEDY INTL",
					IataCode:       "JFK",
					TimeZoneOffset: "-05:00",
					Address: Address{
						CityName:    "NEW YORK",
						CityCode:    "NYC",
						CountryName: "UNITED STATES OF AMERICA",
						CountryCode: "US",
					},
					GeoCode: GeoCode{Latitude: 40.63983, Longitude: -73.77874},
				}},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func newTestClient(baseURL string) *Client {
	c := NewClient("id", "secret", false, 5, 100)
	c.BaseURL = baseURL
	return c
}

func TestClientAuthenticate(t *testing.T) {
	ts := mockAmadeusServer(nil)
	defer ts.Close()

	client := newTestClient(ts.URL)

	err := client.Authenticate(context.Background())
	require.NoError(t, err)
	require.NotNil(t, client.token)
	assert.Equal(t, "test_token", client.token.AccessToken)
	assert.True(t, client.token.Expiry.After(time.Now()))
}

func TestSearchFlightOffers(t *testing.T) {
	var query url.Values
	ts := mockAmadeusServer(&query)
	defer ts.Close()

	client := newTestClient(ts.URL)

	resp, err := client.SearchFlightOffers(context.Background(), flight.SearchCriteria{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2030-05-01",
		ReturnDate:    "2030-05-10",
		Adults:        2,
		Class:         flight.ClassBusiness,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Data)

	assert.Equal(t, "JFK", query.Get("originLocationCode"))
	assert.Equal(t, "LHR", query.Get("destinationLocationCode"))
	assert.Equal(t, "2030-05-01", query.Get("departureDate"))
	assert.Equal(t, "2030-05-10", query.Get("returnDate"))
	assert.Equal(t, "2", query.Get("adults"))
	assert.Equal(t, "BUSINESS", query.Get("travelClass"))
}

func TestSearchFlightOffersOneWay(t *testing.T) {
	var query url.Values
	ts := mockAmadeusServer(&query)
	defer ts.Close()

	client := newTestClient(ts.URL)

	_, err := client.SearchFlightOffers(context.Background(), searchCriteria(t, 1))
	require.NoError(t, err)

	assert.Equal(t, "ECONOMY", query.Get("travelClass"))
	assert.False(t, query.Has("returnDate"))
}

func TestSourceSearchFlights(t *testing.T) {
	// Six raw offers: the malformed second one must be dropped and the
	// sixth lies beyond the five-offer cap.
	raw := []FlightOffer{
		twoSegmentOffer(),
		{ID: "malformed"},
		twoSegmentOffer(),
		twoSegmentOffer(),
		twoSegmentOffer(),
		twoSegmentOffer(),
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v1/security/oauth2/token":
			json.NewEncoder(w).Encode(AuthToken{AccessToken: "test_token", ExpiresIn: 1800})
		case "/v2/shopping/flight-offers":
			json.NewEncoder(w).Encode(FlightSearchResponse{Data: raw})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	source := NewSource(newTestClient(ts.URL))

	offers, err := source.SearchFlights(context.Background(), searchCriteria(t, 2))
	require.NoError(t, err)
	require.Len(t, offers, 4)

	for _, o := range offers {
		assert.Equal(t, "American Airlines", o.Airline)
		assert.Equal(t, 500.0, o.Price.Amount)
		assert.Equal(t, 250.0, o.Price.PerPerson)
		assert.Equal(t, 1, o.Stops)
	}
}

func TestSourceSearchFlightsUpstreamFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/security/oauth2/token" {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(AuthToken{AccessToken: "test_token", ExpiresIn: 1800})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	source := NewSource(newTestClient(ts.URL))

	_, err := source.SearchFlights(context.Background(), searchCriteria(t, 1))
	require.Error(t, err)

	var upstream *flight.UpstreamError
	assert.ErrorAs(t, err, &upstream)
}

func TestSourceAirportInfo(t *testing.T) {
	t.Run("MapsLocationRecord", func(t *testing.T) {
		var query url.Values
		ts := mockAmadeusServer(&query)
		defer ts.Close()

		source := NewSource(newTestClient(ts.URL))

		airport, err := source.AirportInfo(context.Background(), "JFK")
		require.NoError(t, err)

		assert.Equal(t, "JFK", query.Get("keyword"))
		assert.Equal(t, "AIRPORT", query.Get("subType"))

		assert.Equal(t, "JFK", airport.Code)
		assert.Equal(t, "JOHN F KENNEDY INTL", airport.Name)
		assert.Equal(t, "NEW YORK", airport.City)
		assert.Equal(t, "UNITED STATES OF AMERICA", airport.Country)
		assert.Equal(t, "-05:00", airport.Timezone)
		assert.Equal(t, 40.63983, airport.Latitude)
		assert.Equal(t, -73.77874, airport.Longitude)
	})

	t.Run("EmptyResultIsNotFound", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if r.URL.Path == "/v1/security/oauth2/token" {
				json.NewEncoder(w).Encode(AuthToken{AccessToken: "test_token", ExpiresIn: 1800})
				return
			}
			json.NewEncoder(w).Encode(LocationSearchResponse{})
		}))
		defer ts.Close()

		source := NewSource(newTestClient(ts.URL))

		_, err := source.AirportInfo(context.Background(), "XYZ")
		require.Error(t, err)

		var nf *flight.NotFoundError
		assert.ErrorAs(t, err, &nf)
		assert.EqualError(t, err, "Airport information not found for code: XYZ")
	})

	t.Run("FillsMissingFields", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if r.URL.Path == "/v1/security/oauth2/token" {
				json.NewEncoder(w).Encode(AuthToken{AccessToken: "test_token", ExpiresIn: 1800})
				return
			}
			json.NewEncoder(w).Encode(LocationSearchResponse{Data: []LocationData{{}}})
		}))
		defer ts.Close()

		source := NewSource(newTestClient(ts.URL))

		airport, err := source.AirportInfo(context.Background(), "XYZ")
		require.NoError(t, err)

		assert.Equal(t, "XYZ", airport.Code)
		assert.Equal(t, "Unknown Airport", airport.Name)
		assert.Equal(t, "Unknown City", airport.City)
		assert.Equal(t, "Unknown Country", airport.Country)
		assert.Equal(t, "Unknown", airport.Timezone)
		assert.Equal(t, 0.0, airport.Latitude)
		assert.Equal(t, 0.0, airport.Longitude)
	})

	t.Run("UpstreamFailure", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/v1/security/oauth2/token" {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(AuthToken{AccessToken: "test_token", ExpiresIn: 1800})
				return
			}
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		source := NewSource(newTestClient(ts.URL))

		_, err := source.AirportInfo(context.Background(), "JFK")
		require.Error(t, err)

		var upstream *flight.UpstreamError
		assert.ErrorAs(t, err, &upstream)
	})
}
