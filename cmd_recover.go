package main

import "fmt"

type recoverCmd struct {
	Target string `cli:"target, t" help:"target process name"`
}

func (c recoverCmd) Run() error {
	ctl, err := newController(c.Target)
	if err != nil {
		return err
	}

	out, err := ctl.Restore()
	if err != nil {
		return err
	}
	fmt.Println(out)

	return nil
}
