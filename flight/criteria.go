package flight

// TravelClass is a fare tier accepted by the search tools.
type TravelClass string

const (
	ClassEconomy        TravelClass = "economy"
	ClassPremiumEconomy TravelClass = "premium_economy"
	ClassBusiness       TravelClass = "business"
	ClassFirst          TravelClass = "first"
)

// SearchArgs carries raw, unvalidated tool arguments. Each field holds
// whatever JSON value the caller supplied (string, number, nil, ...).
type SearchArgs struct {
	Origin        any
	Destination   any
	DepartureDate any
	ReturnDate    any
	Adults        any
	TravelClass   any
}

// SearchCriteria is a fully validated flight search request. Construct it
// only through NewSearchCriteria so every field has passed its validator.
type SearchCriteria struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string // empty for one-way trips
	Adults        int
	Class         TravelClass
}

// NewSearchCriteria runs every field validator and the cross-field rules:
// origin and destination must differ, and a return date must be strictly
// after the departure date.
func NewSearchCriteria(args SearchArgs) (SearchCriteria, error) {
	var c SearchCriteria
	var err error

	if c.Origin, err = ValidateAirportCode(args.Origin); err != nil {
		return SearchCriteria{}, err
	}
	if c.Destination, err = ValidateAirportCode(args.Destination); err != nil {
		return SearchCriteria{}, err
	}
	if c.DepartureDate, err = ValidateDate(args.DepartureDate, "departure_date"); err != nil {
		return SearchCriteria{}, err
	}
	if c.Adults, err = ValidatePassengerCount(args.Adults); err != nil {
		return SearchCriteria{}, err
	}
	if c.Class, err = ValidateTravelClass(args.TravelClass); err != nil {
		return SearchCriteria{}, err
	}

	hasReturn := args.ReturnDate != nil
	if s, ok := args.ReturnDate.(string); ok && s == "" {
		hasReturn = false
	}
	if hasReturn {
		if c.ReturnDate, err = ValidateDate(args.ReturnDate, "return_date"); err != nil {
			return SearchCriteria{}, err
		}
		// Validated ISO dates compare correctly as strings.
		if c.ReturnDate <= c.DepartureDate {
			return SearchCriteria{}, validationErr(ErrReturnNotAfterDeparture, "Return date must be after departure date")
		}
	}

	if c.Origin == c.Destination {
		return SearchCriteria{}, validationErr(ErrSameAirports, "Origin and destination airports must be different")
	}
	return c, nil
}
