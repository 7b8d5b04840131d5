// Package mcpserver exposes the opacity controller as MCP tools, so an
// agent can dim or restore the target window.
package mcpserver

import (
	"context"
	"encoding/json"
	"io"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/shu-go/rog"

	"github.com/shu-go/opac/opacity"
)

const (
	SetOpacityTool     = "set_opacity"
	RestoreOpacityTool = "restore_opacity"
)

// Controller is the part of *opacity.Controller the tools call.
type Controller interface {
	SetOpacity(percent int) (opacity.Outcome, error)
	Restore() (opacity.Outcome, error)
}

type Server struct {
	server *mcp.Server
	ctl    Controller
}

func New(name, version string, target string, ctl Controller) *Server {
	s := &Server{
		server: mcp.NewServer(&mcp.Implementation{Name: name, Version: version}, nil),
		ctl:    ctl,
	}

	s.server.AddTool(&mcp.Tool{
		Name: SetOpacityTool,
		Description: "Set the opacity of the " + target + " window. " +
			"Use a percentage value from 0 (fully transparent) to 100 (fully opaque).",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"percent": {
					"type": "integer",
					"minimum": 0,
					"maximum": 100,
					"description": "Opacity percentage (0 = fully transparent, 100 = fully opaque)"
				}
			},
			"required": ["percent"]
		}`),
	}, s.setOpacity)

	s.server.AddTool(&mcp.Tool{
		Name:        RestoreOpacityTool,
		Description: "Make the " + target + " window fully opaque again.",
		InputSchema: json.RawMessage(`{"type": "object"}`),
	}, s.restoreOpacity)

	return s
}

// Serve blocks until ctx is cancelled or the transport closes.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	transport := &mcp.IOTransport{
		Reader: io.NopCloser(in),
		Writer: nopWriteCloser{out},
	}
	return s.run(ctx, transport)
}

func (s *Server) run(ctx context.Context, transport mcp.Transport) error {
	return s.server.Run(ctx, transport)
}

type setOpacityArgs struct {
	Percent *float64 `json:"percent"`
}

func (s *Server) setOpacity(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args setOpacityArgs
	if raw := req.Params.Arguments; len(raw) != 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return errorResult("setting", &opacity.Error{Kind: opacity.ErrInvalidPercent, Detail: "percent should be an integer", Err: err}), nil
		}
	}
	if args.Percent == nil {
		return errorResult("setting", &opacity.Error{Kind: opacity.ErrInvalidPercent, Detail: "percent is required"}), nil
	}

	percent, err := opacity.PercentFromFloat(*args.Percent)
	if err != nil {
		return errorResult("setting", err), nil
	}

	out, err := s.ctl.SetOpacity(percent)
	if err != nil {
		return errorResult("setting", err), nil
	}
	return textResult(out.String()), nil
}

func (s *Server) restoreOpacity(_ context.Context, _ *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := s.ctl.Restore()
	if err != nil {
		return errorResult("restoring", err), nil
	}
	return textResult(out.String()), nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// errorResult renders err as "Error <doing> opacity: ...".
func errorResult(doing string, err error) *mcp.CallToolResult {
	rog.Debug("tool error: ", err)
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: "Error " + doing + " opacity: " + err.Error()}},
		IsError: true,
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
