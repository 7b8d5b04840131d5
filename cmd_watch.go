package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/shu-go/elapsed"
	"github.com/shu-go/gli"
	"github.com/shu-go/rog"

	"github.com/shu-go/opac/opacity"
)

type watchCmd struct {
	Target   string       `cli:"target, t" help:"target process name"`
	Percent  string       `cli:"percent, p" help:"opacity by % (from config if omitted)"`
	Interval gli.Duration `cli:"interval, i" help:"watch interval (from config if omitted)"`
	Timeout  gli.Duration `help:"stop watching after this (0 for never)"`
	Restore  bool         `cli:"restore, r" help:"make the windows opaque again on exit"`
}

func (c *watchCmd) Before() error {
	if c.Percent != "" {
		if _, err := opacity.ParsePercent(c.Percent); err != nil {
			return fmt.Errorf("--percent: %w", err)
		}
	}
	if c.Interval < 0 || c.Timeout < 0 {
		return fmt.Errorf("--interval and --timeout should not be negative")
	}
	return nil
}

func (c *watchCmd) Run() error {
	rog.Debug("watch")

	cfg := currentConfig()
	percent := cfg.Percent
	if c.Percent != "" {
		p, err := opacity.ParsePercent(c.Percent)
		if err != nil {
			return err
		}
		percent = p
	}
	interval := cfg.Interval
	if c.Interval > 0 {
		interval = c.Interval.Duration()
	}

	ctl, err := newController(c.Target)
	if err != nil {
		return err
	}

	fmt.Println("Press Ctrl+C to cancel.")

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer signal.Stop(signalChan)

	if c.Timeout != 0 {
		go func() {
			time.Sleep(c.Timeout.Duration())
			signalChan <- os.Interrupt
		}()
	}

	var applied string // windows last brought to percent

watchLoop:
	for {
		tm := elapsed.Start()

		wins, err := ctl.MainWindows()
		switch {
		case errors.Is(err, opacity.ErrNoTargetProcess):
			verbose.Printf("waiting for %q", ctl.Target)
			applied = ""
		case err != nil:
			return err
		default:
			if key := windowsKey(wins); key != applied {
				out, err := ctl.SetOpacity(percent)
				if err != nil {
					verbose.Print(err)
				} else {
					fmt.Println(out)
					applied = key
				}
			}
		}
		verbose.Print("checked ", len(wins), " window(s) ", tm.Elapsed())

		select {
		case <-time.After(interval):
			//continue
		case <-signalChan:
			break watchLoop
		}
	}

	if c.Restore {
		out, err := ctl.Restore()
		if err != nil {
			return err
		}
		fmt.Println(out)
	}

	return nil
}

// windowsKey identifies a set of windows regardless of enumeration order.
func windowsKey(wins []opacity.Window) string {
	hs := make([]string, 0, len(wins))
	for _, w := range wins {
		hs = append(hs, fmt.Sprintf("%x", uintptr(w.Handle)))
	}
	sort.Strings(hs)
	return strings.Join(hs, ",")
}
