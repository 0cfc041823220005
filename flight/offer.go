package flight

// Price is the cost of an offer in a single currency.
type Price struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	PerPerson float64 `json:"per_person"`
}

// Offer is one normalized flight search result. Live and sample
// sources both produce this shape.
type Offer struct {
	Airline       string      `json:"airline"`
	FlightNumber  string      `json:"flight_number"`
	Origin        string      `json:"origin"`
	Destination   string      `json:"destination"`
	DepartureDate string      `json:"departure_date"`
	DepartureTime string      `json:"departure_time"`
	ArrivalTime   string      `json:"arrival_time"`
	Duration      string      `json:"duration"`
	Price         Price       `json:"price"`
	Stops         int         `json:"stops"`
	TravelClass   TravelClass `json:"travel_class"`
	Aircraft      string      `json:"aircraft"`
	BookingClass  string      `json:"booking_class"`
}

// Airport is reference data for a single IATA airport code.
type Airport struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Timezone  string  `json:"timezone"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Status describes one flight on one day. Fields beyond the first three
// are populated only when they apply to the reported state.
type Status struct {
	FlightNumber       string `json:"flight_number"`
	Date               string `json:"date"`
	State              string `json:"status"`
	Gate               string `json:"gate,omitempty"`
	ScheduledDeparture string `json:"scheduled_departure,omitempty"`
	EstimatedDeparture string `json:"estimated_departure,omitempty"`
	DelayReason        string `json:"delay_reason,omitempty"`
	ActualTime         string `json:"actual_time,omitempty"`
}

// Cancelled reports whether the flight will not operate.
func (s Status) Cancelled() bool {
	return s.State == "Cancelled"
}

// Airline is reference data for a single IATA carrier code.
type Airline struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Country      string `json:"country"`
	Founded      int    `json:"founded"`
	Hub          string `json:"hub"`
	FleetSize    string `json:"fleet_size"`
	Destinations string `json:"destinations"`
}
