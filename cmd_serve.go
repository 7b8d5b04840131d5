package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/shu-go/opac/mcpserver"
	"github.com/shu-go/opac/opacity"
)

type serveCmd struct {
	Target string `cli:"target, t" help:"target process name"`
}

func (c serveCmd) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	target := c.Target
	if target == "" {
		target = currentConfig().Target
	}
	verbose.Printf("serving MCP tools for %q on stdio", target)

	s := mcpserver.New("opac", Version, target, desktopController{target: target})
	return s.Serve(ctx, os.Stdin, os.Stdout)
}

// desktopController opens the desktop on every call, so an unavailable
// window API is reported per call instead of stopping the server.
type desktopController struct {
	target string
}

func (d desktopController) SetOpacity(percent int) (opacity.Outcome, error) {
	if err := opacity.ValidatePercent(percent); err != nil {
		return opacity.Outcome{}, err
	}
	ctl, err := newController(d.target)
	if err != nil {
		return opacity.Outcome{}, err
	}
	return ctl.SetOpacity(percent)
}

func (d desktopController) Restore() (opacity.Outcome, error) {
	ctl, err := newController(d.target)
	if err != nil {
		return opacity.Outcome{}, err
	}
	return ctl.Restore()
}
