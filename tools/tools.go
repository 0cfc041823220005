// Package tools exposes the flight tools over MCP: flight search, airport
// lookup, flight status, and airline info.
package tools

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/technicalerikchan/flight-mcp-server/flight"
	"github.com/technicalerikchan/flight-mcp-server/log"
)

// Toolset wires the four flight tools to a data source.
type Toolset struct {
	source flight.Source
	live   bool
}

// NewToolset builds the toolset around a data source. live marks whether
// offers come from the Amadeus API; it only changes how results are labeled.
func NewToolset(source flight.Source, live bool) *Toolset {
	return &Toolset{source: source, live: live}
}

// Register adds all flight tools to the MCP server.
func (t *Toolset) Register(s *server.MCPServer) {
	s.AddTool(searchFlightsTool(), t.handleSearchFlights)
	s.AddTool(airportInfoTool(), t.handleAirportInfo)
	s.AddTool(flightStatusTool(), t.handleFlightStatus)
	s.AddTool(airlineInfoTool(), t.handleAirlineInfo)
}

// errorResult maps a handler failure to a caller-facing tool result.
// Validation and not-found messages pass through verbatim; anything else is
// logged with detail and replaced by the generic message.
func errorResult(ctx context.Context, err error, generic string) *mcp.CallToolResult {
	var vErr *flight.ValidationError
	if errors.As(err, &vErr) {
		return mcp.NewToolResultError(vErr.Error())
	}
	var nfErr *flight.NotFoundError
	if errors.As(err, &nfErr) {
		return mcp.NewToolResultError(nfErr.Error())
	}

	log.Errorf(ctx, "%s: %v", generic, err)
	return mcp.NewToolResultError(generic)
}
