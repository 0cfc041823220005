package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	appctx "github.com/technicalerikchan/flight-mcp-server/context"
	"github.com/technicalerikchan/flight-mcp-server/flight"
	"github.com/technicalerikchan/flight-mcp-server/log"
)

func airportInfoTool() mcp.Tool {
	return mcp.NewTool("get_airport_info",
		mcp.WithDescription("Get information about an airport by its code"),
		mcp.WithString("airport_code",
			mcp.Required(),
			mcp.Description("Airport IATA code (3-letter code, e.g., LAX, JFK)"),
		),
	)
}

func (t *Toolset) handleAirportInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx = appctx.EnsureRequestID(ctx)
	args := req.GetArguments()

	code, err := flight.ValidateAirportCode(args["airport_code"])
	if err != nil {
		return errorResult(ctx, err, "Failed to get airport information"), nil
	}

	log.Infof(ctx, "looking up airport %s", code)

	airport, err := t.source.AirportInfo(ctx, code)
	if err != nil {
		return errorResult(ctx, err, "Failed to get airport information"), nil
	}

	return mcp.NewToolResultText(formatAirport(airport, t.live)), nil
}
