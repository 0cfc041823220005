package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	appctx "github.com/technicalerikchan/flight-mcp-server/context"
	"github.com/technicalerikchan/flight-mcp-server/flight"
	"github.com/technicalerikchan/flight-mcp-server/log"
)

func airlineInfoTool() mcp.Tool {
	return mcp.NewTool("get_airline_info",
		mcp.WithDescription("Get information about an airline"),
		mcp.WithString("airline_code",
			mcp.Required(),
			mcp.Description("Airline IATA code (2-letter code, e.g., AA, DL, UA)"),
		),
	)
}

func (t *Toolset) handleAirlineInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx = appctx.EnsureRequestID(ctx)
	args := req.GetArguments()

	code, err := flight.ValidateAirlineCode(args["airline_code"])
	if err != nil {
		return errorResult(ctx, err, "Failed to get airline information"), nil
	}

	log.Infof(ctx, "looking up airline %s", code)

	airline, ok := flight.AirlineByCode(code)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("Airline information not found for code: %s", code)), nil
	}

	return mcp.NewToolResultText(formatAirline(airline)), nil
}
