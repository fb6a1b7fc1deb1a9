package ghl

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	pkgLog "jewelry-concierge/pkg/log"
)

// Client is the GoHighLevel MCP client. Every method issues one tool call
// and translates the reply into a uniform Result; transport failures never
// surface as errors, they come back as Result{Success: false}.
type Client struct {
	rest       *resty.Client
	locationID string
	l          pkgLog.Logger
}

// Config for the MCP client.
type Config struct {
	PITToken   string // Private Integration Token
	LocationID string // sub-account id
	BaseURL    string // optional custom MCP endpoint
}

// New creates the client and eagerly probes connectivity with a
// lightweight calendar listing. A failed probe is logged but does not
// prevent later calls from being attempted: the integration is
// best-effort available.
func New(l pkgLog.Logger, cfg Config) (*Client, error) {
	if cfg.PITToken == "" || cfg.LocationID == "" {
		return nil, fmt.Errorf("ghl: PIT token and location id are required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	rest := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout).
		SetHeader("Authorization", "Bearer "+cfg.PITToken).
		SetHeader("locationId", cfg.LocationID).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", userAgent)

	c := &Client{
		rest:       rest,
		locationID: cfg.LocationID,
		l:          l,
	}

	if probe := c.TestConnection(context.Background()); !probe.Success {
		c.l.Warnf(context.Background(), "ghl: connection validation failed: %s", probe.Error)
	}

	return c, nil
}

// makeRequest posts one tool-call envelope and normalizes the reply.
func (c *Client) makeRequest(ctx context.Context, tool string, args map[string]any) Result {
	if args == nil {
		args = map[string]any{}
	}

	c.l.Debugf(ctx, "ghl: calling tool %s", tool)

	var parsed mcpResponse
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(mcpRequest{ToolName: tool, Arguments: args}).
		SetResult(&parsed).
		Post("")
	if err != nil {
		c.l.Errorf(ctx, "ghl: request failed for %s: %v", tool, err)
		return Result{Success: false, Error: fmt.Sprintf("request failed: %v", err), Tool: tool}
	}

	if resp.IsError() {
		c.l.Errorf(ctx, "ghl: HTTP error for %s: %d", tool, resp.StatusCode())
		return Result{Success: false, Error: fmt.Sprintf("HTTP error %d", resp.StatusCode()), Tool: tool}
	}

	if !parsed.Success {
		errMsg := parsed.Error
		if errMsg == "" {
			errMsg = "unknown error"
		}
		return Result{Success: false, Error: errMsg, Tool: tool}
	}

	return Result{Success: true, Data: parsed.Result, Tool: tool}
}

// TestConnection probes the MCP endpoint with a lightweight call.
func (c *Client) TestConnection(ctx context.Context) Result {
	return c.makeRequest(ctx, toolListCalendars, nil)
}
