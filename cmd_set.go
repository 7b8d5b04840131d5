package main

import (
	"fmt"
	"time"

	"github.com/shu-go/gli"
	"github.com/shu-go/retry"

	"github.com/shu-go/opac/opacity"
)

const waitInterval = 250 * time.Millisecond

type setCmd struct {
	Target string       `cli:"target, t" help:"target process name (Code if not configured)"`
	Wait   gli.Duration `cli:"wait" help:"wait up to this long for the target window to appear"`
}

func (c setCmd) Run(args []string) error {
	percent := currentConfig().Percent
	switch len(args) {
	case 0:
	case 1:
		p, err := opacity.ParsePercent(args[0])
		if err != nil {
			return err
		}
		percent = p
	default:
		return fmt.Errorf("too many arguments: %q", args)
	}

	ctl, err := newController(c.Target)
	if err != nil {
		return err
	}

	if c.Wait > 0 {
		waitForWindow(ctl, c.Wait.Duration())
	}

	out, err := ctl.SetOpacity(percent)
	if err != nil {
		return err
	}
	fmt.Println(out)

	return nil
}

// waitForWindow returns once a main window exists or timeout passes.
// SetOpacity reports what is still missing.
func waitForWindow(ctl *opacity.Controller, timeout time.Duration) {
	verbose.Printf("waiting up to %v for %q", timeout, ctl.Target)
	retry.Wait(timeout, waitInterval, func() bool {
		wins, err := ctl.MainWindows()
		return err == nil && len(wins) > 0
	})
}
