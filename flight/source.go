// Package flight holds the domain core: validated search criteria, offer
// and reference records, the failure taxonomy, and the data-source seam.
package flight

import "context"

// Source supplies flight offers and airport reference data. Two
// implementations exist: the Amadeus-backed live source and MockSource.
// Handlers hold a single Source and stay agnostic to which one is wired.
type Source interface {
	SearchFlights(ctx context.Context, criteria SearchCriteria) ([]Offer, error)
	AirportInfo(ctx context.Context, code string) (Airport, error)
}
