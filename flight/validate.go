package flight

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	dateRE         = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	flightNumberRE = regexp.MustCompile(`^[A-Z]{2,3}\d{1,4}$`)
	lettersRE      = regexp.MustCompile(`^[A-Z]+$`)
)

// ValidateAirportCode normalizes a 3-letter IATA airport code to upper case.
func ValidateAirportCode(v any) (string, error) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", validationErr(ErrInvalidAirportCode, "Airport code is required and must be a string")
	}
	code := strings.ToUpper(strings.TrimSpace(s))
	if len(code) != 3 || !lettersRE.MatchString(code) {
		return "", validationErr(ErrInvalidAirportCode, "Airport code must be exactly 3 letters (e.g., LAX, JFK, LHR)")
	}
	return code, nil
}

// ValidateDate checks the strict YYYY-MM-DD format, that the calendar date
// exists, and that it is not before today. "Today" is the UTC calendar date;
// today itself is allowed.
func ValidateDate(v any, field string) (string, error) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", validationErr(ErrInvalidDateFormat, "%s is required and must be a string", field)
	}
	if !dateRE.MatchString(s) {
		return "", validationErr(ErrInvalidDateFormat, "%s must be in YYYY-MM-DD format", field)
	}
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		return "", validationErr(ErrInvalidDateValue, "Invalid %s: %s", field, s)
	}
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if parsed.Before(today) {
		return "", validationErr(ErrDateInPast, "%s cannot be in the past", field)
	}
	return s, nil
}

// ValidatePassengerCount coerces the adult passenger count, defaulting to 1
// when the argument is absent. Only whole numbers in [1,9] are accepted.
func ValidatePassengerCount(v any) (int, error) {
	if v == nil {
		return 1, nil
	}
	var count int
	switch n := v.(type) {
	case int:
		count = n
	case float64:
		// JSON numbers arrive as float64; reject fractional values.
		if n != math.Trunc(n) {
			return 0, validationErr(ErrInvalidPassengerCount, "Passenger count must be a number")
		}
		count = int(n)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, validationErr(ErrInvalidPassengerCount, "Passenger count must be a number")
		}
		count = parsed
	default:
		return 0, validationErr(ErrInvalidPassengerCount, "Passenger count must be a number")
	}
	if count < 1 || count > 9 {
		return 0, validationErr(ErrPassengerCountRange, "Passenger count must be between 1 and 9")
	}
	return count, nil
}

// ValidateTravelClass canonicalizes the fare tier, defaulting to economy
// when the argument is absent.
func ValidateTravelClass(v any) (TravelClass, error) {
	if v == nil {
		return ClassEconomy, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", validationErr(ErrInvalidTravelClass, "Travel class must be a string")
	}
	class := TravelClass(strings.TrimSpace(strings.ToLower(s)))
	switch class {
	case ClassEconomy, ClassPremiumEconomy, ClassBusiness, ClassFirst:
		return class, nil
	}
	return "", validationErr(ErrInvalidTravelClass, "Travel class must be one of: economy, premium_economy, business, first")
}

// ValidateFlightNumber normalizes a flight designator such as AA123: a 2-3
// letter carrier code followed by 1-4 digits.
func ValidateFlightNumber(v any) (string, error) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", validationErr(ErrInvalidFlightNumber, "Flight number is required and must be a string")
	}
	number := strings.ToUpper(strings.TrimSpace(s))
	if !flightNumberRE.MatchString(number) {
		return "", validationErr(ErrInvalidFlightNumber, "Flight number must be in format like AA123, DL456, etc.")
	}
	return number, nil
}

// ValidateAirlineCode normalizes a 2- or 3-letter IATA airline code.
func ValidateAirlineCode(v any) (string, error) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", validationErr(ErrInvalidAirlineCode, "Airline code is required and must be a string")
	}
	code := strings.ToUpper(strings.TrimSpace(s))
	if len(code) < 2 || len(code) > 3 || !lettersRE.MatchString(code) {
		return "", validationErr(ErrInvalidAirlineCode, "Airline code must be 2-3 letters (e.g., AA, DL, UA)")
	}
	return code, nil
}
