package opacity

import (
	"fmt"

	"github.com/shu-go/rog"
)

// LayeredStyle is WS_EX_LAYERED, the extended style bit that enables
// whole-window alpha.
const LayeredStyle uint32 = 0x80000

type (
	// Handle is a top-level window. Zero means no window.
	Handle uintptr

	Process struct {
		PID  int32
		Name string
	}

	Window struct {
		Process Process
		Handle  Handle
	}

	// WindowState is a snapshot of one main window, reported by Inspect.
	WindowState struct {
		Window
		Style      uint32
		Layered    bool
		Alpha      uint8
		AlphaKnown bool
	}
)

// ProcessProvider lists live processes by image name and resolves their
// main windows.
type ProcessProvider interface {
	FindProcesses(name string) ([]Process, error)
	MainWindow(p Process) (Handle, error)
}

// WindowAPI is the windowing subsystem. Set* calls are expected in the
// order ExStyle, SetExStyle, SetLayeredAlpha.
type WindowAPI interface {
	ExStyle(h Handle) (uint32, error)
	SetExStyle(h Handle, style uint32) error
	SetLayeredAlpha(h Handle, alpha uint8) error
	// LayeredAlpha reports the current alpha; ok is false when the window
	// has no alpha set.
	LayeredAlpha(h Handle) (alpha uint8, ok bool, err error)
}

type Controller struct {
	Target  string
	Procs   ProcessProvider
	Windows WindowAPI
}

func NewController(target string, procs ProcessProvider, windows WindowAPI) *Controller {
	return &Controller{Target: target, Procs: procs, Windows: windows}
}

// Outcome is the result of a successful SetOpacity or Restore.
type Outcome struct {
	Target   string
	Percent  int
	Alpha    uint8
	Windows  int
	Restored bool
}

func (o Outcome) String() string {
	if o.Restored {
		return fmt.Sprintf("restored %q opacity to 100%% on %d window(s)", o.Target, o.Windows)
	}
	return fmt.Sprintf("set %q opacity to %d%% (%d/255) on %d window(s)", o.Target, o.Percent, o.Alpha, o.Windows)
}

// SetOpacity applies percent to the main window of every target process.
// Failures on single windows only lower the count.
func (c *Controller) SetOpacity(percent int) (Outcome, error) {
	alpha, err := Alpha(percent)
	if err != nil {
		return Outcome{}, err
	}

	n, err := c.eachMainWindow(func(w Window) error {
		if err := ensureLayered(c.Windows, w.Handle); err != nil {
			return err
		}
		return c.Windows.SetLayeredAlpha(w.Handle, alpha)
	})
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{Target: c.Target, Percent: percent, Alpha: alpha, Windows: n}, nil
}

// Restore makes the target's main windows fully opaque and drops the
// layered style. Windows without the layered style already are opaque and
// count as restored.
func (c *Controller) Restore() (Outcome, error) {
	n, err := c.eachMainWindow(func(w Window) error {
		style, err := c.Windows.ExStyle(w.Handle)
		if err != nil {
			return fmt.Errorf("read style: %w", err)
		}
		if style&LayeredStyle == 0 {
			// never dimmed, or already restored
			return nil
		}
		if err := c.Windows.SetLayeredAlpha(w.Handle, 255); err != nil {
			return err
		}
		return clearLayered(c.Windows, w.Handle)
	})
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{Target: c.Target, Percent: MaxPercent, Alpha: 255, Windows: n, Restored: true}, nil
}

// MainWindows resolves the main window of each target process, leaving
// out processes that have none.
func (c *Controller) MainWindows() ([]Window, error) {
	procs, err := c.Procs.FindProcesses(c.Target)
	if err != nil {
		return nil, Environment(fmt.Errorf("list processes: %w", err))
	}
	if len(procs) == 0 {
		return nil, &Error{
			Kind:   ErrNoTargetProcess,
			Detail: fmt.Sprintf("no %q process is running; launch it first", c.Target),
		}
	}

	var wins []Window
	for _, p := range procs {
		h, err := c.Procs.MainWindow(p)
		if err != nil {
			rog.Debug("main window of ", p.Name, "(", p.PID, "): ", err)
			continue
		}
		if h == 0 {
			rog.Debug("no main window: ", p.Name, "(", p.PID, ")")
			continue
		}
		wins = append(wins, Window{Process: p, Handle: h})
	}
	return wins, nil
}

func (c *Controller) Inspect() ([]WindowState, error) {
	wins, err := c.MainWindows()
	if err != nil {
		return nil, err
	}

	states := make([]WindowState, 0, len(wins))
	for _, w := range wins {
		s := WindowState{Window: w}
		style, err := c.Windows.ExStyle(w.Handle)
		if err != nil {
			rog.Debug("style of ", w.Handle, ": ", err)
			continue
		}
		s.Style = style
		s.Layered = style&LayeredStyle != 0
		if s.Layered {
			a, ok, err := c.Windows.LayeredAlpha(w.Handle)
			if err != nil {
				rog.Debug("alpha of ", w.Handle, ": ", err)
			}
			s.Alpha, s.AlphaKnown = a, ok && err == nil
		}
		states = append(states, s)
	}
	return states, nil
}

func (c *Controller) eachMainWindow(apply func(Window) error) (int, error) {
	wins, err := c.MainWindows()
	if err != nil {
		return 0, err
	}

	modified := 0
	for _, w := range wins {
		if err := apply(w); err != nil {
			rog.Debug("skip ", w.Process.Name, "(", w.Process.PID, ") hwnd=", w.Handle, ": ", err)
			continue
		}
		modified++
	}

	if modified == 0 {
		return 0, &Error{
			Kind:   ErrNoUsableWindow,
			Detail: fmt.Sprintf("no %q window accepted the change; it may be minimized or hidden", c.Target),
		}
	}
	return modified, nil
}

// ensureLayered sets WS_EX_LAYERED, keeping every other bit. Read and write
// stay together here; nothing may run between them.
func ensureLayered(api WindowAPI, h Handle) error {
	style, err := api.ExStyle(h)
	if err != nil {
		return fmt.Errorf("read style: %w", err)
	}
	if style&LayeredStyle != 0 {
		return nil
	}
	if err := api.SetExStyle(h, style|LayeredStyle); err != nil {
		return fmt.Errorf("write style: %w", err)
	}
	return nil
}

func clearLayered(api WindowAPI, h Handle) error {
	style, err := api.ExStyle(h)
	if err != nil {
		return fmt.Errorf("read style: %w", err)
	}
	if style&LayeredStyle == 0 {
		return nil
	}
	if err := api.SetExStyle(h, style&^LayeredStyle); err != nil {
		return fmt.Errorf("write style: %w", err)
	}
	return nil
}
