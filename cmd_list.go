package main

import (
	"fmt"
)

type listCmd struct {
	Target string `cli:"target, t" help:"target process name"`
}

func (c listCmd) Run(args []string) error {
	target := c.Target
	if len(args) > 0 {
		target = args[0]
	}

	ctl, err := newController(target)
	if err != nil {
		return err
	}

	states, err := ctl.Inspect()
	if err != nil {
		return err
	}
	if len(states) == 0 {
		fmt.Printf("no main window of %q\n", ctl.Target)
		return nil
	}

	for _, s := range states {
		alpha := "-"
		if s.AlphaKnown {
			alpha = fmt.Sprintf("%d/255", s.Alpha)
		}
		fmt.Printf("  %s(%d) hwnd=%#x layered=%v alpha=%s\n", s.Process.Name, s.Process.PID, uintptr(s.Handle), s.Layered, alpha)
	}

	return nil
}
