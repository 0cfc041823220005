package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	appctx "github.com/technicalerikchan/flight-mcp-server/context"
	"github.com/technicalerikchan/flight-mcp-server/flight"
	"github.com/technicalerikchan/flight-mcp-server/log"
)

func searchFlightsTool() mcp.Tool {
	return mcp.NewTool("search_flights",
		mcp.WithDescription("Search for flights between two airports"),
		mcp.WithString("origin",
			mcp.Required(),
			mcp.Description("Origin airport code (IATA 3-letter code, e.g., NYC, LAX)"),
		),
		mcp.WithString("destination",
			mcp.Required(),
			mcp.Description("Destination airport code (IATA 3-letter code, e.g., NYC, LAX)"),
		),
		mcp.WithString("departure_date",
			mcp.Required(),
			mcp.Description("Departure date in YYYY-MM-DD format"),
		),
		mcp.WithString("return_date",
			mcp.Description("Return date in YYYY-MM-DD format (optional for one-way flights)"),
		),
		mcp.WithNumber("adults",
			mcp.Description("Number of adult passengers (default: 1)"),
			mcp.Min(1),
			mcp.Max(9),
		),
		mcp.WithString("travel_class",
			mcp.Description("Travel class preference"),
			mcp.Enum("economy", "premium_economy", "business", "first"),
		),
	)
}

func (t *Toolset) handleSearchFlights(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx = appctx.EnsureRequestID(ctx)
	args := req.GetArguments()

	criteria, err := flight.NewSearchCriteria(flight.SearchArgs{
		Origin:        args["origin"],
		Destination:   args["destination"],
		DepartureDate: args["departure_date"],
		ReturnDate:    args["return_date"],
		Adults:        args["adults"],
		TravelClass:   args["travel_class"],
	})
	if err != nil {
		return errorResult(ctx, err, "Failed to search for flights"), nil
	}

	log.Infof(ctx, "searching flights %s -> %s on %s", criteria.Origin, criteria.Destination, criteria.DepartureDate)

	offers, err := t.source.SearchFlights(ctx, criteria)
	if err != nil {
		return errorResult(ctx, err, "Failed to search for flights"), nil
	}
	if len(offers) == 0 {
		err := flight.NotFoundf("No flights found for the specified criteria")
		return errorResult(ctx, err, "Failed to search for flights"), nil
	}

	return mcp.NewToolResultText(formatOffers(offers, criteria, t.live)), nil
}
