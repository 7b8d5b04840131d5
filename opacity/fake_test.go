package opacity

import (
	"errors"
	"fmt"
)

type fakeProcs struct {
	procs   []Process
	windows map[int32]Handle
	err     error
	calls   int
}

func (f *fakeProcs) FindProcesses(name string) ([]Process, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var ps []Process
	for _, p := range f.procs {
		if p.Name == name {
			ps = append(ps, p)
		}
	}
	return ps, nil
}

func (f *fakeProcs) MainWindow(p Process) (Handle, error) {
	f.calls++
	return f.windows[p.PID], nil
}

type fakeWindow struct {
	style    uint32
	alpha    uint8
	alphaSet bool
}

type fakeWindows struct {
	wins map[Handle]*fakeWindow

	// calls records every platform call in order, e.g. "ExStyle(2)".
	calls  []string
	writes []uint32

	failStyle map[Handle]bool
	failAlpha map[Handle]bool
}

func newFakeWindows() *fakeWindows {
	return &fakeWindows{
		wins:      map[Handle]*fakeWindow{},
		failStyle: map[Handle]bool{},
		failAlpha: map[Handle]bool{},
	}
}

var (
	errPlatform   = errors.New("platform call failed")
	errNotLayered = errors.New("window is not layered")
)

func (f *fakeWindows) win(h Handle) (*fakeWindow, error) {
	w, found := f.wins[h]
	if !found {
		return nil, fmt.Errorf("invalid window handle %d", h)
	}
	return w, nil
}

func (f *fakeWindows) ExStyle(h Handle) (uint32, error) {
	f.calls = append(f.calls, fmt.Sprintf("ExStyle(%d)", h))
	if f.failStyle[h] {
		return 0, errPlatform
	}
	w, err := f.win(h)
	if err != nil {
		return 0, err
	}
	return w.style, nil
}

func (f *fakeWindows) SetExStyle(h Handle, style uint32) error {
	f.calls = append(f.calls, fmt.Sprintf("SetExStyle(%d)", h))
	w, err := f.win(h)
	if err != nil {
		return err
	}
	f.writes = append(f.writes, style)
	w.style = style
	return nil
}

func (f *fakeWindows) SetLayeredAlpha(h Handle, alpha uint8) error {
	f.calls = append(f.calls, fmt.Sprintf("SetLayeredAlpha(%d)", h))
	if f.failAlpha[h] {
		return errPlatform
	}
	w, err := f.win(h)
	if err != nil {
		return err
	}
	if w.style&LayeredStyle == 0 {
		// SetLayeredWindowAttributes fails on non-layered windows
		return errNotLayered
	}
	w.alpha, w.alphaSet = alpha, true
	return nil
}

func (f *fakeWindows) LayeredAlpha(h Handle) (uint8, bool, error) {
	f.calls = append(f.calls, fmt.Sprintf("LayeredAlpha(%d)", h))
	w, err := f.win(h)
	if err != nil {
		return 0, false, err
	}
	return w.alpha, w.alphaSet, nil
}
