package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	appctx "github.com/technicalerikchan/flight-mcp-server/context"
	"github.com/technicalerikchan/flight-mcp-server/flight"
	"github.com/technicalerikchan/flight-mcp-server/log"
)

func flightStatusTool() mcp.Tool {
	return mcp.NewTool("get_flight_status",
		mcp.WithDescription("Get real-time status of a specific flight"),
		mcp.WithString("flight_number",
			mcp.Required(),
			mcp.Description("Flight number (e.g., AA123, DL456)"),
		),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Flight date in YYYY-MM-DD format"),
		),
	)
}

func (t *Toolset) handleFlightStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx = appctx.EnsureRequestID(ctx)
	args := req.GetArguments()

	number, err := flight.ValidateFlightNumber(args["flight_number"])
	if err != nil {
		return errorResult(ctx, err, "Failed to get flight status"), nil
	}
	date, err := flight.ValidateDate(args["date"], "date")
	if err != nil {
		return errorResult(ctx, err, "Failed to get flight status"), nil
	}

	log.Infof(ctx, "reporting status for %s on %s", number, date)

	return mcp.NewToolResultText(formatStatus(flight.MockStatus(number, date))), nil
}
